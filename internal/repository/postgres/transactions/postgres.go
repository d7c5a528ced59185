package transactions

import (
	"context"
	"errors"

	transactionsdomain "chitfund-app-go/internal/domain/transactions"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ListTransactions(ctx context.Context) ([]transactionsdomain.Transaction, error) {
	var items []transactionsdomain.Transaction
	if err := r.db.WithContext(ctx).
		Order("created_at desc, id desc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *PostgresRepository) ListTransactionsByMember(ctx context.Context, memberID string) ([]transactionsdomain.Transaction, error) {
	var items []transactionsdomain.Transaction
	if err := r.db.WithContext(ctx).
		Where("member_id = ?", memberID).
		Order("created_at desc, id desc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *PostgresRepository) GetTransactionByID(ctx context.Context, transactionID string) (*transactionsdomain.Transaction, error) {
	var transaction transactionsdomain.Transaction
	if err := r.db.WithContext(ctx).
		Where("id = ?", transactionID).
		First(&transaction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, transactionsdomain.ErrTransactionNotFound
		}
		return nil, err
	}
	return &transaction, nil
}

func (r *PostgresRepository) CreateTransaction(ctx context.Context, transaction *transactionsdomain.Transaction) error {
	return r.db.WithContext(ctx).Create(transaction).Error
}

func (r *PostgresRepository) UpdateTransaction(ctx context.Context, transaction *transactionsdomain.Transaction) error {
	result := r.db.WithContext(ctx).
		Model(&transactionsdomain.Transaction{}).
		Where("id = ?", transaction.ID).
		Updates(map[string]interface{}{
			"member_id":  transaction.MemberID,
			"group_id":   transaction.GroupID,
			"amount":     transaction.Amount,
			"type":       transaction.Type,
			"status":     transaction.Status,
			"due_date":   transaction.DueDate,
			"paid_date":  transaction.PaidDate,
			"notes":      transaction.Notes,
			"updated_at": transaction.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return transactionsdomain.ErrTransactionNotFound
	}
	return nil
}

func (r *PostgresRepository) DeleteTransaction(ctx context.Context, transactionID string) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&transactionsdomain.Transaction{}, "id = ?", transactionID)
	return result.RowsAffected > 0, result.Error
}
