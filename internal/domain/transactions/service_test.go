package transactions

import (
	"context"
	"errors"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

type fakeTransactionsRepo struct {
	transactions map[string]*Transaction
}

func newFakeTransactionsRepo() *fakeTransactionsRepo {
	return &fakeTransactionsRepo{transactions: make(map[string]*Transaction)}
}

func (r *fakeTransactionsRepo) ListTransactions(ctx context.Context) ([]Transaction, error) {
	items := make([]Transaction, 0, len(r.transactions))
	for _, transaction := range r.transactions {
		items = append(items, *transaction)
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	return items, nil
}

func (r *fakeTransactionsRepo) ListTransactionsByMember(ctx context.Context, memberID string) ([]Transaction, error) {
	all, _ := r.ListTransactions(ctx)
	items := make([]Transaction, 0)
	for _, transaction := range all {
		if transaction.MemberID == memberID {
			items = append(items, transaction)
		}
	}
	return items, nil
}

func (r *fakeTransactionsRepo) GetTransactionByID(ctx context.Context, transactionID string) (*Transaction, error) {
	transaction, ok := r.transactions[transactionID]
	if !ok {
		return nil, ErrTransactionNotFound
	}
	copied := *transaction
	return &copied, nil
}

func (r *fakeTransactionsRepo) CreateTransaction(ctx context.Context, transaction *Transaction) error {
	copied := *transaction
	r.transactions[transaction.ID] = &copied
	return nil
}

func (r *fakeTransactionsRepo) UpdateTransaction(ctx context.Context, transaction *Transaction) error {
	if _, ok := r.transactions[transaction.ID]; !ok {
		return ErrTransactionNotFound
	}
	copied := *transaction
	r.transactions[transaction.ID] = &copied
	return nil
}

func (r *fakeTransactionsRepo) DeleteTransaction(ctx context.Context, transactionID string) (bool, error) {
	if _, ok := r.transactions[transactionID]; !ok {
		return false, nil
	}
	delete(r.transactions, transactionID)
	return true, nil
}

func TestCreateTransactionDefaults(t *testing.T) {
	repo := newFakeTransactionsRepo()
	svc := NewService(repo)

	created, err := svc.CreateTransaction(context.Background(), CreateTransactionInput{
		MemberID:  "mem-1",
		GroupID:   "grp-1",
		Amount:    decimal.NewFromInt(5000),
		Type:      "Payment",
		CreatedBy: "staff-1",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if created.Status != StatusPending {
		t.Fatalf("expected pending status, got %q", created.Status)
	}
	if created.Type != TypePayment {
		t.Fatalf("expected payment type, got %q", created.Type)
	}
	if created.ReceiptNumber == nil || !strings.HasPrefix(*created.ReceiptNumber, "RC") {
		t.Fatalf("expected RC receipt number, got %v", created.ReceiptNumber)
	}
	if created.PaidDate != nil {
		t.Fatalf("expected no paid date for pending row")
	}
	if created.CreatedBy == nil || *created.CreatedBy != "staff-1" {
		t.Fatalf("expected created by staff-1, got %v", created.CreatedBy)
	}
	if repo.transactions[created.ID] == nil {
		t.Fatalf("transaction not stored")
	}
}

func TestCreatePaidTransactionStampsPaidDate(t *testing.T) {
	svc := NewService(newFakeTransactionsRepo())
	fixed := time.Date(2026, 5, 10, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	created, err := svc.CreateTransaction(context.Background(), CreateTransactionInput{
		MemberID: "mem-1",
		GroupID:  "grp-1",
		Amount:   decimal.NewFromInt(5000),
		Type:     TypePayment,
		Status:   StatusPaid,
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if created.PaidDate == nil || !created.PaidDate.Equal(fixed) {
		t.Fatalf("expected paid date %v, got %v", fixed, created.PaidDate)
	}
}

func TestCreateTransactionValidation(t *testing.T) {
	base := CreateTransactionInput{MemberID: "mem-1", GroupID: "grp-1", Amount: decimal.NewFromInt(1), Type: TypeFine}
	cases := []struct {
		name   string
		mutate func(*CreateTransactionInput)
	}{
		{name: "missing member", mutate: func(in *CreateTransactionInput) { in.MemberID = "" }},
		{name: "missing group", mutate: func(in *CreateTransactionInput) { in.GroupID = "" }},
		{name: "zero amount", mutate: func(in *CreateTransactionInput) { in.Amount = decimal.Zero }},
		{name: "negative amount", mutate: func(in *CreateTransactionInput) { in.Amount = decimal.NewFromInt(-5) }},
		{name: "bad type", mutate: func(in *CreateTransactionInput) { in.Type = "refund" }},
		{name: "bad status", mutate: func(in *CreateTransactionInput) { in.Status = "void" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := base
			tc.mutate(&input)
			_, err := NewService(newFakeTransactionsRepo()).CreateTransaction(context.Background(), input)
			if !errors.Is(err, ErrInvalidTransaction) {
				t.Fatalf("expected ErrInvalidTransaction, got %v", err)
			}
		})
	}
}

func TestUpdateTransactionMarksPaid(t *testing.T) {
	repo := newFakeTransactionsRepo()
	receipt := "RC1"
	repo.transactions["tx-1"] = &Transaction{
		ID:            "tx-1",
		MemberID:      "mem-1",
		GroupID:       "grp-1",
		Amount:        decimal.NewFromInt(2000),
		Type:          TypePayment,
		Status:        StatusPending,
		ReceiptNumber: &receipt,
	}
	svc := NewService(repo)
	fixed := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }
	status := StatusPaid
	notes := "cash"

	updated, err := svc.UpdateTransaction(context.Background(), UpdateTransactionInput{ID: "tx-1", Status: &status, Notes: &notes})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if updated.Status != StatusPaid {
		t.Fatalf("expected paid, got %q", updated.Status)
	}
	if updated.PaidDate == nil || !updated.PaidDate.Equal(fixed) {
		t.Fatalf("expected paid date stamped, got %v", updated.PaidDate)
	}
	if updated.Notes == nil || *updated.Notes != "cash" {
		t.Fatalf("expected notes cash, got %v", updated.Notes)
	}
	if *updated.ReceiptNumber != "RC1" {
		t.Fatalf("expected receipt unchanged, got %q", *updated.ReceiptNumber)
	}
	if !updated.Amount.Equal(decimal.NewFromInt(2000)) {
		t.Fatalf("expected amount unchanged, got %s", updated.Amount)
	}
}

func TestUpdateTransactionNotFound(t *testing.T) {
	svc := NewService(newFakeTransactionsRepo())
	_, err := svc.UpdateTransaction(context.Background(), UpdateTransactionInput{ID: "missing"})
	if !errors.Is(err, ErrTransactionNotFound) {
		t.Fatalf("expected ErrTransactionNotFound, got %v", err)
	}
}

func TestListMemberTransactions(t *testing.T) {
	repo := newFakeTransactionsRepo()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	repo.transactions["tx-1"] = &Transaction{ID: "tx-1", MemberID: "mem-1", CreatedAt: base}
	repo.transactions["tx-2"] = &Transaction{ID: "tx-2", MemberID: "mem-2", CreatedAt: base.Add(time.Hour)}
	repo.transactions["tx-3"] = &Transaction{ID: "tx-3", MemberID: "mem-1", CreatedAt: base.Add(2 * time.Hour)}
	svc := NewService(repo)

	items, err := svc.ListMemberTransactions(context.Background(), "mem-1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(items) != 2 || items[0].ID != "tx-3" || items[1].ID != "tx-1" {
		t.Fatalf("expected tx-3, tx-1 newest first, got %+v", items)
	}
}

func TestDeleteTransaction(t *testing.T) {
	repo := newFakeTransactionsRepo()
	repo.transactions["tx-1"] = &Transaction{ID: "tx-1"}
	svc := NewService(repo)

	if err := svc.DeleteTransaction(context.Background(), "tx-1"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if err := svc.DeleteTransaction(context.Background(), "tx-1"); !errors.Is(err, ErrTransactionNotFound) {
		t.Fatalf("expected ErrTransactionNotFound, got %v", err)
	}
}
