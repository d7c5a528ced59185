package transactions

import (
	"context"
	"fmt"
	"strings"
	"time"

	"chitfund-app-go/pkg/idgen"
)

const receiptPrefix = "RC"

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

func (s *Service) ListTransactions(ctx context.Context) ([]Transaction, error) {
	return s.repo.ListTransactions(ctx)
}

func (s *Service) ListMemberTransactions(ctx context.Context, memberID string) ([]Transaction, error) {
	return s.repo.ListTransactionsByMember(ctx, memberID)
}

func (s *Service) GetTransaction(ctx context.Context, transactionID string) (*Transaction, error) {
	return s.repo.GetTransactionByID(ctx, transactionID)
}

func (s *Service) CreateTransaction(ctx context.Context, input CreateTransactionInput) (*Transaction, error) {
	transaction := Transaction{
		MemberID: strings.TrimSpace(input.MemberID),
		GroupID:  strings.TrimSpace(input.GroupID),
		Amount:   input.Amount,
		Type:     strings.ToLower(strings.TrimSpace(input.Type)),
		Status:   strings.ToLower(strings.TrimSpace(input.Status)),
		DueDate:  utcPtr(input.DueDate),
		PaidDate: utcPtr(input.PaidDate),
		Notes:    optionalString(input.Notes),
	}
	if transaction.Status == "" {
		transaction.Status = StatusPending
	}
	if createdBy := strings.TrimSpace(input.CreatedBy); createdBy != "" {
		transaction.CreatedBy = &createdBy
	}
	s.stampPaidDate(&transaction)

	if err := validateTransaction(transaction); err != nil {
		return nil, err
	}

	receipt, err := idgen.NewCode(receiptPrefix)
	if err != nil {
		return nil, fmt.Errorf("generate receipt number: %w", err)
	}
	transaction.ID = idgen.NewID()
	transaction.ReceiptNumber = &receipt

	if err := s.repo.CreateTransaction(ctx, &transaction); err != nil {
		return nil, err
	}
	return &transaction, nil
}

func (s *Service) UpdateTransaction(ctx context.Context, input UpdateTransactionInput) (*Transaction, error) {
	transaction, err := s.repo.GetTransactionByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.MemberID != nil {
		transaction.MemberID = strings.TrimSpace(*input.MemberID)
	}
	if input.GroupID != nil {
		transaction.GroupID = strings.TrimSpace(*input.GroupID)
	}
	if input.Amount != nil {
		transaction.Amount = *input.Amount
	}
	if input.Type != nil {
		transaction.Type = strings.ToLower(strings.TrimSpace(*input.Type))
	}
	if input.Status != nil {
		transaction.Status = strings.ToLower(strings.TrimSpace(*input.Status))
	}
	if input.ClearDueDate {
		transaction.DueDate = nil
	} else if input.DueDate != nil {
		transaction.DueDate = utcPtr(input.DueDate)
	}
	if input.ClearPaidDate {
		transaction.PaidDate = nil
	} else if input.PaidDate != nil {
		transaction.PaidDate = utcPtr(input.PaidDate)
	}
	if input.Notes != nil {
		transaction.Notes = optionalString(input.Notes)
	}
	s.stampPaidDate(transaction)

	if err := validateTransaction(*transaction); err != nil {
		return nil, err
	}
	transaction.UpdatedAt = s.now().UTC()

	if err := s.repo.UpdateTransaction(ctx, transaction); err != nil {
		return nil, err
	}
	return transaction, nil
}

func (s *Service) DeleteTransaction(ctx context.Context, transactionID string) error {
	deleted, err := s.repo.DeleteTransaction(ctx, transactionID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrTransactionNotFound
	}
	return nil
}

// stampPaidDate records the settlement time for paid rows that arrive
// without one, so monthly collection figures can see them.
func (s *Service) stampPaidDate(transaction *Transaction) {
	if transaction.Status == StatusPaid && transaction.PaidDate == nil {
		paid := s.now().UTC()
		transaction.PaidDate = &paid
	}
}

func validateTransaction(transaction Transaction) error {
	if transaction.MemberID == "" {
		return fmt.Errorf("%w: member id is required", ErrInvalidTransaction)
	}
	if transaction.GroupID == "" {
		return fmt.Errorf("%w: group id is required", ErrInvalidTransaction)
	}
	if !transaction.Amount.IsPositive() {
		return fmt.Errorf("%w: amount must be positive", ErrInvalidTransaction)
	}
	if !IsValidType(transaction.Type) {
		return fmt.Errorf("%w: unknown type %q", ErrInvalidTransaction, transaction.Type)
	}
	if !IsValidStatus(transaction.Status) {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidTransaction, transaction.Status)
	}
	return nil
}

func utcPtr(value *time.Time) *time.Time {
	if value == nil {
		return nil
	}
	utc := value.UTC()
	return &utc
}

func optionalString(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
