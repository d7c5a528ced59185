package ledger

import (
	"context"
	"fmt"
	"strings"

	ledgerdomain "chitfund-app-go/internal/domain/ledger"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ListEntries(ctx context.Context, filter ledgerdomain.Filter) ([]ledgerdomain.Row, error) {
	conditions, args := buildTransactionWhere(filter.GroupID, filter.MemberID)
	if filter.From != nil {
		conditions = append(conditions, "t.created_at >= ?")
		args = append(args, *filter.From)
	}
	if filter.To != nil {
		conditions = append(conditions, "t.created_at <= ?")
		args = append(args, *filter.To)
	}

	query := "SELECT t.id, t.created_at, t.type, t.status, t.amount, t.receipt_number, t.notes, " +
		"m.first_name AS member_first_name, m.last_name AS member_last_name, g.group_name " +
		"FROM transactions t " +
		"LEFT JOIN members m ON m.id = t.member_id " +
		"LEFT JOIN chit_groups g ON g.id = t.group_id" +
		whereClause(conditions) +
		" ORDER BY t.created_at DESC, t.id DESC"

	var rows []ledgerdomain.Row
	if err := r.db.WithContext(ctx).Raw(query, args...).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *PostgresRepository) TypeTotals(ctx context.Context, filter ledgerdomain.SummaryFilter) ([]ledgerdomain.TypeTotal, error) {
	conditions, args := buildTransactionWhere(filter.GroupID, filter.MemberID)
	query := fmt.Sprintf("SELECT t.type, COALESCE(SUM(t.amount), 0) AS total, COUNT(*) AS count FROM transactions t%s GROUP BY t.type ORDER BY t.type", whereClause(conditions))

	var rows []ledgerdomain.TypeTotal
	if err := r.db.WithContext(ctx).Raw(query, args...).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func buildTransactionWhere(groupID, memberID string) ([]string, []interface{}) {
	conditions := make([]string, 0, 4)
	args := make([]interface{}, 0, 4)
	if groupID != "" {
		conditions = append(conditions, "t.group_id = ?")
		args = append(args, groupID)
	}
	if memberID != "" {
		conditions = append(conditions, "t.member_id = ?")
		args = append(args, memberID)
	}
	return conditions, args
}

func whereClause(conditions []string) string {
	if len(conditions) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(conditions, " AND ")
}
