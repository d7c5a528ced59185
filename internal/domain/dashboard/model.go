package dashboard

import "github.com/shopspring/decimal"

type Metrics struct {
	TotalMembers       int64
	ActiveGroups       int64
	MonthlyCollections decimal.Decimal
	PendingAuctions    int64
	Payments           PaymentSummary
}

// PaymentSummary holds all-time totals; Overdue is the pending subset whose
// due date has passed.
type PaymentSummary struct {
	Collected      decimal.Decimal
	Pending        decimal.Decimal
	Overdue        decimal.Decimal
	CollectionRate float64
}
