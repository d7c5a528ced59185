package dashboard

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type Repository interface {
	CountActiveMembers(ctx context.Context) (int64, error)
	CountActiveGroups(ctx context.Context) (int64, error)
	CountScheduledAuctions(ctx context.Context) (int64, error)
	SumPaidBetween(ctx context.Context, from, to time.Time) (decimal.Decimal, error)
	SumByStatus(ctx context.Context, status string) (decimal.Decimal, error)
	SumPendingDueBy(ctx context.Context, asOf time.Time) (decimal.Decimal, error)
}
