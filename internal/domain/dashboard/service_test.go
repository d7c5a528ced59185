package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"chitfund-app-go/pkg/money"
	"github.com/shopspring/decimal"
)

type fakeDashboardRepo struct {
	activeMembers int64
	activeGroups  int64
	scheduled     int64
	paidInWindow  decimal.Decimal
	byStatus      map[string]decimal.Decimal
	overdue       decimal.Decimal
	windowFrom    time.Time
	windowTo      time.Time
	overdueAsOf   time.Time
	failOn        string
}

func (r *fakeDashboardRepo) CountActiveMembers(ctx context.Context) (int64, error) {
	if r.failOn == "members" {
		return 0, errors.New("members query failed")
	}
	return r.activeMembers, nil
}

func (r *fakeDashboardRepo) CountActiveGroups(ctx context.Context) (int64, error) {
	return r.activeGroups, nil
}

func (r *fakeDashboardRepo) CountScheduledAuctions(ctx context.Context) (int64, error) {
	return r.scheduled, nil
}

func (r *fakeDashboardRepo) SumPaidBetween(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	r.windowFrom, r.windowTo = from, to
	return r.paidInWindow, nil
}

func (r *fakeDashboardRepo) SumByStatus(ctx context.Context, status string) (decimal.Decimal, error) {
	return r.byStatus[status], nil
}

func (r *fakeDashboardRepo) SumPendingDueBy(ctx context.Context, asOf time.Time) (decimal.Decimal, error) {
	r.overdueAsOf = asOf
	return r.overdue, nil
}

func TestMetrics(t *testing.T) {
	repo := &fakeDashboardRepo{
		activeMembers: 42,
		activeGroups:  3,
		scheduled:     2,
		paidInWindow:  decimal.NewFromInt(125000),
		byStatus: map[string]decimal.Decimal{
			"paid":    decimal.NewFromInt(700000),
			"pending": decimal.NewFromInt(300000),
		},
		overdue: decimal.NewFromInt(45000),
	}
	kolkata := time.FixedZone("IST", 5*3600+1800)
	svc := NewService(repo, kolkata)
	now := time.Date(2026, 2, 28, 20, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	metrics, err := svc.Metrics(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if metrics.TotalMembers != 42 || metrics.ActiveGroups != 3 || metrics.PendingAuctions != 2 {
		t.Fatalf("unexpected counts %+v", metrics)
	}
	if metrics.Payments.CollectionRate != 70.0 {
		t.Fatalf("expected collection rate 70.0, got %v", metrics.Payments.CollectionRate)
	}
	if got := money.Lakh(metrics.MonthlyCollections); got != "1.3L" {
		t.Fatalf("expected monthly 1.3L, got %q", got)
	}
	if got := money.Lakh(metrics.Payments.Overdue); got != "0.5L" {
		t.Fatalf("expected overdue 0.5L, got %q", got)
	}

	// 20:00 UTC on Feb 28 is already March 1 in Kolkata.
	wantFrom := time.Date(2026, 3, 1, 0, 0, 0, 0, kolkata)
	wantTo := time.Date(2026, 4, 1, 0, 0, 0, 0, kolkata)
	if !repo.windowFrom.Equal(wantFrom) || !repo.windowTo.Equal(wantTo) {
		t.Fatalf("expected window %v..%v, got %v..%v", wantFrom, wantTo, repo.windowFrom, repo.windowTo)
	}
	if !repo.overdueAsOf.Equal(now) {
		t.Fatalf("expected overdue cutoff %v, got %v", now, repo.overdueAsOf)
	}
}

func TestMetricsCollectionRateEdges(t *testing.T) {
	cases := []struct {
		name      string
		collected decimal.Decimal
		pending   decimal.Decimal
		want      float64
	}{
		{name: "no payments", collected: decimal.Zero, pending: decimal.Zero, want: 0},
		{name: "nothing pending", collected: decimal.NewFromInt(5000), pending: decimal.Zero, want: 100},
		{name: "nothing collected", collected: decimal.Zero, pending: decimal.NewFromInt(5000), want: 0},
		{name: "one third", collected: decimal.NewFromInt(1), pending: decimal.NewFromInt(2), want: 33.3},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &fakeDashboardRepo{byStatus: map[string]decimal.Decimal{"paid": tc.collected, "pending": tc.pending}}
			metrics, err := NewService(repo, nil).Metrics(context.Background())
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if metrics.Payments.CollectionRate != tc.want {
				t.Fatalf("expected rate %v, got %v", tc.want, metrics.Payments.CollectionRate)
			}
		})
	}
}

func TestMetricsPropagatesErrors(t *testing.T) {
	repo := &fakeDashboardRepo{failOn: "members"}
	if _, err := NewService(repo, time.UTC).Metrics(context.Background()); err == nil {
		t.Fatalf("expected error")
	}
}

func TestMonthWindowDecember(t *testing.T) {
	from, to := MonthWindow(time.Date(2026, 12, 31, 23, 59, 0, 0, time.UTC), time.UTC)
	if !from.Equal(time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected start %v", from)
	}
	if !to.Equal(time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected end %v", to)
	}
}
