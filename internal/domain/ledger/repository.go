package ledger

import "context"

type Repository interface {
	ListEntries(ctx context.Context, filter Filter) ([]Row, error)
	TypeTotals(ctx context.Context, filter SummaryFilter) ([]TypeTotal, error)
}
