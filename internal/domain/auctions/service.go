package auctions

import (
	"context"
	"fmt"
	"strings"
	"time"

	"chitfund-app-go/pkg/idgen"
	"github.com/shopspring/decimal"
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

func (s *Service) ListAuctions(ctx context.Context) ([]Auction, error) {
	return s.repo.ListAuctions(ctx)
}

// ListUpcoming returns scheduled auctions dated now or later, soonest first.
func (s *Service) ListUpcoming(ctx context.Context) ([]Auction, error) {
	return s.repo.ListUpcomingAuctions(ctx, s.now().UTC())
}

func (s *Service) GetAuction(ctx context.Context, auctionID string) (*Auction, error) {
	return s.repo.GetAuctionByID(ctx, auctionID)
}

func (s *Service) CreateAuction(ctx context.Context, input CreateAuctionInput) (*Auction, error) {
	auction := Auction{
		GroupID:        strings.TrimSpace(input.GroupID),
		RoundNumber:    input.RoundNumber,
		AuctionDate:    input.AuctionDate.UTC(),
		ChitAmount:     input.ChitAmount,
		DiscountAmount: decimal.Zero,
		WinnerID:       optionalString(input.WinnerID),
		Status:         strings.ToLower(strings.TrimSpace(input.Status)),
	}
	if input.DiscountAmount != nil {
		auction.DiscountAmount = *input.DiscountAmount
	}
	if auction.Status == "" {
		auction.Status = StatusScheduled
	}

	if err := validateAuction(auction); err != nil {
		return nil, err
	}
	auction.ID = idgen.NewID()

	if err := s.repo.CreateAuction(ctx, &auction); err != nil {
		return nil, err
	}
	return &auction, nil
}

func (s *Service) UpdateAuction(ctx context.Context, input UpdateAuctionInput) (*Auction, error) {
	auction, err := s.repo.GetAuctionByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.GroupID != nil {
		auction.GroupID = strings.TrimSpace(*input.GroupID)
	}
	if input.RoundNumber != nil {
		auction.RoundNumber = *input.RoundNumber
	}
	if input.AuctionDate != nil {
		auction.AuctionDate = input.AuctionDate.UTC()
	}
	if input.ChitAmount != nil {
		auction.ChitAmount = *input.ChitAmount
	}
	if input.DiscountAmount != nil {
		auction.DiscountAmount = *input.DiscountAmount
	}
	if input.WinnerID != nil {
		auction.WinnerID = optionalString(input.WinnerID)
	}
	if input.Status != nil {
		auction.Status = strings.ToLower(strings.TrimSpace(*input.Status))
	}

	if err := validateAuction(*auction); err != nil {
		return nil, err
	}
	auction.UpdatedAt = s.now().UTC()

	if err := s.repo.UpdateAuction(ctx, auction); err != nil {
		return nil, err
	}
	return auction, nil
}

func (s *Service) DeleteAuction(ctx context.Context, auctionID string) error {
	deleted, err := s.repo.DeleteAuction(ctx, auctionID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrAuctionNotFound
	}
	return nil
}

func validateAuction(auction Auction) error {
	if auction.GroupID == "" {
		return fmt.Errorf("%w: group id is required", ErrInvalidAuction)
	}
	if auction.RoundNumber < 1 {
		return fmt.Errorf("%w: round number must be at least 1", ErrInvalidAuction)
	}
	if auction.AuctionDate.IsZero() {
		return fmt.Errorf("%w: auction date is required", ErrInvalidAuction)
	}
	if !auction.ChitAmount.IsPositive() {
		return fmt.Errorf("%w: chit amount must be positive", ErrInvalidAuction)
	}
	if auction.DiscountAmount.IsNegative() {
		return fmt.Errorf("%w: discount must not be negative", ErrInvalidAuction)
	}
	if auction.DiscountAmount.GreaterThan(auction.ChitAmount) {
		return fmt.Errorf("%w: discount exceeds chit amount", ErrInvalidAuction)
	}
	if !IsValidStatus(auction.Status) {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidAuction, auction.Status)
	}
	return nil
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
