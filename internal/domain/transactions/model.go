package transactions

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	TypePayment    = "payment"
	TypeWithdrawal = "withdrawal"
	TypeFine       = "fine"
	TypeBonus      = "bonus"
)

const (
	StatusPaid    = "paid"
	StatusPending = "pending"
	StatusOverdue = "overdue"
)

type Transaction struct {
	ID            string          `gorm:"primaryKey"`
	MemberID      string          `gorm:"column:member_id;not null"`
	GroupID       string          `gorm:"column:group_id;not null"`
	Amount        decimal.Decimal `gorm:"column:amount;type:numeric(15,2);not null"`
	Type          string          `gorm:"column:type;not null"`
	Status        string          `gorm:"column:status;not null"`
	DueDate       *time.Time      `gorm:"column:due_date"`
	PaidDate      *time.Time      `gorm:"column:paid_date"`
	ReceiptNumber *string         `gorm:"column:receipt_number"`
	Notes         *string         `gorm:"column:notes"`
	CreatedBy     *string         `gorm:"column:created_by"`
	CreatedAt     time.Time       `gorm:"autoCreateTime"`
	UpdatedAt     time.Time       `gorm:"autoUpdateTime"`
}

type CreateTransactionInput struct {
	MemberID  string
	GroupID   string
	Amount    decimal.Decimal
	Type      string
	Status    string
	DueDate   *time.Time
	PaidDate  *time.Time
	Notes     *string
	CreatedBy string
}

// UpdateTransactionInput is a partial update. The Clear flags remove stored
// dates; an empty Notes string clears the notes.
type UpdateTransactionInput struct {
	ID            string
	MemberID      *string
	GroupID       *string
	Amount        *decimal.Decimal
	Type          *string
	Status        *string
	DueDate       *time.Time
	ClearDueDate  bool
	PaidDate      *time.Time
	ClearPaidDate bool
	Notes         *string
}

func IsValidType(value string) bool {
	switch value {
	case TypePayment, TypeWithdrawal, TypeFine, TypeBonus:
		return true
	}
	return false
}

func IsValidStatus(value string) bool {
	switch value {
	case StatusPaid, StatusPending, StatusOverdue:
		return true
	}
	return false
}
