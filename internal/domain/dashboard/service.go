package dashboard

import (
	"context"
	"time"

	"chitfund-app-go/pkg/money"
)

const (
	statusPaid    = "paid"
	statusPending = "pending"
)

type Service struct {
	repo     Repository
	location *time.Location
	now      func() time.Time
}

func NewService(repo Repository, location *time.Location) *Service {
	if location == nil {
		location = time.UTC
	}
	return &Service{repo: repo, location: location, now: time.Now}
}

// Metrics gathers the headline figures. Monthly collections are scoped to
// the current calendar month, the payment summary is all-time.
func (s *Service) Metrics(ctx context.Context) (Metrics, error) {
	now := s.now()
	from, to := MonthWindow(now, s.location)

	var (
		metrics Metrics
		err     error
	)
	if metrics.TotalMembers, err = s.repo.CountActiveMembers(ctx); err != nil {
		return Metrics{}, err
	}
	if metrics.ActiveGroups, err = s.repo.CountActiveGroups(ctx); err != nil {
		return Metrics{}, err
	}
	if metrics.MonthlyCollections, err = s.repo.SumPaidBetween(ctx, from, to); err != nil {
		return Metrics{}, err
	}
	if metrics.PendingAuctions, err = s.repo.CountScheduledAuctions(ctx); err != nil {
		return Metrics{}, err
	}
	if metrics.Payments.Collected, err = s.repo.SumByStatus(ctx, statusPaid); err != nil {
		return Metrics{}, err
	}
	if metrics.Payments.Pending, err = s.repo.SumByStatus(ctx, statusPending); err != nil {
		return Metrics{}, err
	}
	if metrics.Payments.Overdue, err = s.repo.SumPendingDueBy(ctx, now.UTC()); err != nil {
		return Metrics{}, err
	}

	whole := metrics.Payments.Collected.Add(metrics.Payments.Pending)
	metrics.Payments.CollectionRate = money.Rate(metrics.Payments.Collected, whole)
	return metrics, nil
}

// MonthWindow returns [first day of the month, first day of the next month)
// for now as seen in location.
func MonthWindow(now time.Time, location *time.Location) (time.Time, time.Time) {
	local := now.In(location)
	start := time.Date(local.Year(), local.Month(), 1, 0, 0, 0, 0, location)
	return start, start.AddDate(0, 1, 0)
}
