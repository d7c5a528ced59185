package dashboard

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) CountActiveMembers(ctx context.Context) (int64, error) {
	return r.count(ctx, "members", "status = ?", "active")
}

func (r *PostgresRepository) CountActiveGroups(ctx context.Context) (int64, error) {
	return r.count(ctx, "chit_groups", "status = ?", "active")
}

func (r *PostgresRepository) CountScheduledAuctions(ctx context.Context) (int64, error) {
	return r.count(ctx, "auctions", "status = ?", "scheduled")
}

func (r *PostgresRepository) SumPaidBetween(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	return r.sumAmount(ctx, "status = ? AND paid_date >= ? AND paid_date < ?", "paid", from, to)
}

func (r *PostgresRepository) SumByStatus(ctx context.Context, status string) (decimal.Decimal, error) {
	return r.sumAmount(ctx, "status = ?", status)
}

func (r *PostgresRepository) SumPendingDueBy(ctx context.Context, asOf time.Time) (decimal.Decimal, error) {
	return r.sumAmount(ctx, "status = ? AND due_date <= ?", "pending", asOf)
}

func (r *PostgresRepository) count(ctx context.Context, table, where string, args ...interface{}) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Table(table).
		Where(where, args...).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *PostgresRepository) sumAmount(ctx context.Context, where string, args ...interface{}) (decimal.Decimal, error) {
	var row struct {
		Total decimal.Decimal `gorm:"column:total"`
	}
	if err := r.db.WithContext(ctx).
		Table("transactions").
		Select("COALESCE(SUM(amount), 0) AS total").
		Where(where, args...).
		Scan(&row).Error; err != nil {
		return decimal.Zero, err
	}
	return row.Total, nil
}
