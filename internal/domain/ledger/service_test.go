package ledger

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"chitfund-app-go/pkg/money"
	"github.com/shopspring/decimal"
)

type fakeRecord struct {
	row      Row
	groupID  string
	memberID string
}

type fakeLedgerRepo struct {
	records []fakeRecord
}

func (r *fakeLedgerRepo) matches(record fakeRecord, groupID, memberID string) bool {
	if groupID != "" && record.groupID != groupID {
		return false
	}
	if memberID != "" && record.memberID != memberID {
		return false
	}
	return true
}

func (r *fakeLedgerRepo) ListEntries(ctx context.Context, filter Filter) ([]Row, error) {
	rows := make([]Row, 0)
	for _, record := range r.records {
		if !r.matches(record, filter.GroupID, filter.MemberID) {
			continue
		}
		if filter.From != nil && record.row.CreatedAt.Before(*filter.From) {
			continue
		}
		if filter.To != nil && record.row.CreatedAt.After(*filter.To) {
			continue
		}
		rows = append(rows, record.row)
	}
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].CreatedAt.After(rows[j].CreatedAt)
	})
	return rows, nil
}

func (r *fakeLedgerRepo) TypeTotals(ctx context.Context, filter SummaryFilter) ([]TypeTotal, error) {
	byType := make(map[string]*TypeTotal)
	order := make([]string, 0)
	for _, record := range r.records {
		if !r.matches(record, filter.GroupID, filter.MemberID) {
			continue
		}
		total, ok := byType[record.row.Type]
		if !ok {
			total = &TypeTotal{Type: record.row.Type, Total: decimal.Zero}
			byType[record.row.Type] = total
			order = append(order, record.row.Type)
		}
		total.Total = total.Total.Add(record.row.Amount)
		total.Count++
	}
	totals := make([]TypeTotal, 0, len(order))
	for _, key := range order {
		totals = append(totals, *byType[key])
	}
	return totals, nil
}

func strPtr(value string) *string {
	return &value
}

func scenarioRepo() *fakeLedgerRepo {
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	return &fakeLedgerRepo{records: []fakeRecord{
		{groupID: "G1", memberID: "M1", row: Row{
			ID: "tx-1", CreatedAt: base, Type: "payment", Status: "paid",
			Amount: decimal.NewFromInt(50000), ReceiptNumber: strPtr("RC1"),
			MemberFirstName: strPtr("Asha"), MemberLastName: strPtr("Rao"), GroupName: strPtr("Gold"),
		}},
		{groupID: "G1", memberID: "M2", row: Row{
			ID: "tx-2", CreatedAt: base.Add(24 * time.Hour), Type: "withdrawal", Status: "paid",
			Amount: decimal.NewFromInt(20000), MemberFirstName: strPtr("Vikram"), MemberLastName: strPtr("Shah"), GroupName: strPtr("Gold"),
		}},
		{groupID: "G1", memberID: "M1", row: Row{
			ID: "tx-3", CreatedAt: base.Add(48 * time.Hour), Type: "fine", Status: "pending",
			Amount: decimal.NewFromInt(5000), Notes: strPtr("late"), GroupName: strPtr("Gold"),
		}},
		{groupID: "G2", memberID: "M3", row: Row{
			ID: "tx-4", CreatedAt: base.Add(72 * time.Hour), Type: "bonus", Status: "paid",
			Amount: decimal.RequireFromString("1234.56"), MemberFirstName: strPtr("Neha"), MemberLastName: strPtr("Iyer"),
		}},
	}}
}

func TestListEntriesMapsRows(t *testing.T) {
	svc := NewService(scenarioRepo())

	entries, err := svc.ListEntries(context.Background(), Filter{GroupID: "G1"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	if entries[0].ID != "tx-3" || entries[2].ID != "tx-1" {
		t.Fatalf("expected newest first, got %s..%s", entries[0].ID, entries[2].ID)
	}

	wantDescriptions := map[string]string{
		"tx-1": "Payment Received",
		"tx-2": "Chit Amount Disbursed",
		"tx-3": "Fine Applied",
	}
	for _, entry := range entries {
		if entry.Description != wantDescriptions[entry.ID] {
			t.Fatalf("expected description %q for %s, got %q", wantDescriptions[entry.ID], entry.ID, entry.Description)
		}
	}

	if entries[2].MemberName == nil || *entries[2].MemberName != "Asha Rao" {
		t.Fatalf("expected member name Asha Rao, got %v", entries[2].MemberName)
	}
	if entries[0].MemberName != nil {
		t.Fatalf("expected no member name without linked member, got %q", *entries[0].MemberName)
	}
	if entries[0].GroupName == nil || *entries[0].GroupName != "Gold" {
		t.Fatalf("expected group name Gold, got %v", entries[0].GroupName)
	}
}

func TestListEntriesDateRange(t *testing.T) {
	svc := NewService(scenarioRepo())
	from := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 3, 3, 9, 0, 0, 0, time.UTC)

	entries, err := svc.ListEntries(context.Background(), Filter{From: &from, To: &to})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(entries) != 2 || entries[0].ID != "tx-3" || entries[1].ID != "tx-2" {
		t.Fatalf("expected tx-3 and tx-2 with inclusive bounds, got %+v", entries)
	}

	if _, err := svc.ListEntries(context.Background(), Filter{From: &to, To: &from}); !errors.Is(err, ErrInvalidFilter) {
		t.Fatalf("expected ErrInvalidFilter, got %v", err)
	}
}

func TestSummaryScenario(t *testing.T) {
	svc := NewService(scenarioRepo())

	summary, err := svc.Summary(context.Background(), SummaryFilter{GroupID: "G1"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !summary.TotalCredits.Equal(decimal.NewFromInt(50000)) {
		t.Fatalf("expected credits 50000, got %s", summary.TotalCredits)
	}
	if !summary.TotalDebits.Equal(decimal.NewFromInt(25000)) {
		t.Fatalf("expected debits 25000, got %s", summary.TotalDebits)
	}
	if summary.TransactionCount != 3 {
		t.Fatalf("expected 3 transactions, got %d", summary.TransactionCount)
	}
	if got := money.Lakh(summary.Balance); got != "0.3L" {
		t.Fatalf("expected balance 0.3L, got %q", got)
	}
	if got := money.Lakh(summary.TotalCredits); got != "0.5L" {
		t.Fatalf("expected credits 0.5L, got %q", got)
	}
}

func TestSummaryBalanceIdentity(t *testing.T) {
	svc := NewService(scenarioRepo())
	filters := []SummaryFilter{{}, {GroupID: "G1"}, {GroupID: "G2"}, {MemberID: "M1"}, {GroupID: "G1", MemberID: "M2"}}

	for _, filter := range filters {
		summary, err := svc.Summary(context.Background(), filter)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !summary.Balance.Equal(summary.TotalCredits.Sub(summary.TotalDebits)) {
			t.Fatalf("balance identity broken for %+v: %+v", filter, summary)
		}

		entries, err := svc.ListEntries(context.Background(), Filter{GroupID: filter.GroupID, MemberID: filter.MemberID})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		sum := decimal.Zero
		for _, entry := range entries {
			sum = sum.Add(entry.Amount)
		}
		if !sum.Equal(summary.TotalCredits.Add(summary.TotalDebits)) {
			t.Fatalf("expected entry sum %s to equal credits+debits for %+v", sum, filter)
		}
		if int64(len(entries)) != summary.TransactionCount {
			t.Fatalf("expected count %d, got %d", len(entries), summary.TransactionCount)
		}
	}
}

func TestSummaryEmptyGroup(t *testing.T) {
	svc := NewService(scenarioRepo())

	entries, err := svc.ListEntries(context.Background(), Filter{GroupID: "nothing"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected no entries, got %d", len(entries))
	}

	summary, err := svc.Summary(context.Background(), SummaryFilter{GroupID: "nothing"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if summary.TransactionCount != 0 {
		t.Fatalf("expected zero count, got %d", summary.TransactionCount)
	}
	if got := money.Lakh(summary.Balance); got != "0.0L" {
		t.Fatalf("expected 0.0L, got %q", got)
	}
}

func TestSummarizeIgnoresUnknownTypesInSums(t *testing.T) {
	summary := Summarize([]TypeTotal{
		{Type: "payment", Total: decimal.NewFromInt(100), Count: 1},
		{Type: "adjustment", Total: decimal.NewFromInt(999), Count: 2},
	})
	if summary.TransactionCount != 3 {
		t.Fatalf("expected count 3, got %d", summary.TransactionCount)
	}
	if !summary.Balance.Equal(decimal.NewFromInt(100)) {
		t.Fatalf("expected balance 100, got %s", summary.Balance)
	}
}

func TestDescribe(t *testing.T) {
	if got := Describe("bonus"); got != "Bonus Applied" {
		t.Fatalf("expected Bonus Applied, got %q", got)
	}
	if got := Describe("refund"); got != "refund" {
		t.Fatalf("expected raw type, got %q", got)
	}
}
