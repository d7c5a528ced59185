package ledger

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	typePayment    = "payment"
	typeWithdrawal = "withdrawal"
	typeFine       = "fine"
	typeBonus      = "bonus"
)

// Filter narrows ledger entries. Empty ids and nil dates are ignored; both
// dates are inclusive bounds on the transaction creation time.
type Filter struct {
	GroupID  string
	MemberID string
	From     *time.Time
	To       *time.Time
}

type SummaryFilter struct {
	GroupID  string
	MemberID string
}

// Row is a transaction joined with its member and group names.
type Row struct {
	ID              string          `gorm:"column:id"`
	CreatedAt       time.Time       `gorm:"column:created_at"`
	Type            string          `gorm:"column:type"`
	Status          string          `gorm:"column:status"`
	Amount          decimal.Decimal `gorm:"column:amount"`
	ReceiptNumber   *string         `gorm:"column:receipt_number"`
	Notes           *string         `gorm:"column:notes"`
	MemberFirstName *string         `gorm:"column:member_first_name"`
	MemberLastName  *string         `gorm:"column:member_last_name"`
	GroupName       *string         `gorm:"column:group_name"`
}

type Entry struct {
	ID            string
	Date          time.Time
	Description   string
	Type          string
	Amount        decimal.Decimal
	Status        string
	ReceiptNumber *string
	Notes         *string
	MemberName    *string
	GroupName     *string
}

type TypeTotal struct {
	Type  string          `gorm:"column:type"`
	Total decimal.Decimal `gorm:"column:total"`
	Count int64           `gorm:"column:count"`
}

type Summary struct {
	TotalCredits     decimal.Decimal
	TotalDebits      decimal.Decimal
	Balance          decimal.Decimal
	TransactionCount int64
}

// Describe maps a transaction type to its ledger wording.
func Describe(transactionType string) string {
	switch transactionType {
	case typePayment:
		return "Payment Received"
	case typeWithdrawal:
		return "Chit Amount Disbursed"
	case typeFine:
		return "Fine Applied"
	case typeBonus:
		return "Bonus Applied"
	default:
		return transactionType
	}
}

func isCredit(transactionType string) bool {
	return transactionType == typePayment || transactionType == typeBonus
}

func isDebit(transactionType string) bool {
	return transactionType == typeWithdrawal || transactionType == typeFine
}
