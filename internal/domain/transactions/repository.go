package transactions

import "context"

type Repository interface {
	ListTransactions(ctx context.Context) ([]Transaction, error)
	ListTransactionsByMember(ctx context.Context, memberID string) ([]Transaction, error)
	GetTransactionByID(ctx context.Context, transactionID string) (*Transaction, error)
	CreateTransaction(ctx context.Context, transaction *Transaction) error
	UpdateTransaction(ctx context.Context, transaction *Transaction) error
	DeleteTransaction(ctx context.Context, transactionID string) (bool, error)
}
