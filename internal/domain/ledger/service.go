package ledger

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListEntries(ctx context.Context, filter Filter) ([]Entry, error) {
	filter.GroupID = strings.TrimSpace(filter.GroupID)
	filter.MemberID = strings.TrimSpace(filter.MemberID)
	if filter.From != nil && filter.To != nil && filter.From.After(*filter.To) {
		return nil, fmt.Errorf("%w: startDate is after endDate", ErrInvalidFilter)
	}

	rows, err := s.repo.ListEntries(ctx, filter)
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, Entry{
			ID:            row.ID,
			Date:          row.CreatedAt,
			Description:   Describe(row.Type),
			Type:          row.Type,
			Amount:        row.Amount,
			Status:        row.Status,
			ReceiptNumber: row.ReceiptNumber,
			Notes:         row.Notes,
			MemberName:    memberName(row.MemberFirstName, row.MemberLastName),
			GroupName:     row.GroupName,
		})
	}
	return entries, nil
}

func (s *Service) Summary(ctx context.Context, filter SummaryFilter) (Summary, error) {
	filter.GroupID = strings.TrimSpace(filter.GroupID)
	filter.MemberID = strings.TrimSpace(filter.MemberID)

	totals, err := s.repo.TypeTotals(ctx, filter)
	if err != nil {
		return Summary{}, err
	}
	return Summarize(totals), nil
}

// Summarize folds per-type totals into credits and debits. Unknown types count
// towards the transaction count only.
func Summarize(totals []TypeTotal) Summary {
	summary := Summary{
		TotalCredits: decimal.Zero,
		TotalDebits:  decimal.Zero,
	}
	for _, total := range totals {
		summary.TransactionCount += total.Count
		switch {
		case isCredit(total.Type):
			summary.TotalCredits = summary.TotalCredits.Add(total.Total)
		case isDebit(total.Type):
			summary.TotalDebits = summary.TotalDebits.Add(total.Total)
		}
	}
	summary.Balance = summary.TotalCredits.Sub(summary.TotalDebits)
	return summary
}

func memberName(firstName, lastName *string) *string {
	if firstName == nil && lastName == nil {
		return nil
	}
	var first, last string
	if firstName != nil {
		first = *firstName
	}
	if lastName != nil {
		last = *lastName
	}
	name := first + " " + last
	return &name
}
