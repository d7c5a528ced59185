package auctions

import (
	"context"
	"errors"
	"time"

	auctionsdomain "chitfund-app-go/internal/domain/auctions"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ListAuctions(ctx context.Context) ([]auctionsdomain.Auction, error) {
	var items []auctionsdomain.Auction
	if err := r.db.WithContext(ctx).
		Order("auction_date asc, round_number asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *PostgresRepository) ListUpcomingAuctions(ctx context.Context, from time.Time) ([]auctionsdomain.Auction, error) {
	var items []auctionsdomain.Auction
	if err := r.db.WithContext(ctx).
		Where("status = ? AND auction_date >= ?", auctionsdomain.StatusScheduled, from).
		Order("auction_date asc, round_number asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *PostgresRepository) GetAuctionByID(ctx context.Context, auctionID string) (*auctionsdomain.Auction, error) {
	var auction auctionsdomain.Auction
	if err := r.db.WithContext(ctx).
		Where("id = ?", auctionID).
		First(&auction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, auctionsdomain.ErrAuctionNotFound
		}
		return nil, err
	}
	return &auction, nil
}

func (r *PostgresRepository) CreateAuction(ctx context.Context, auction *auctionsdomain.Auction) error {
	return r.db.WithContext(ctx).Create(auction).Error
}

func (r *PostgresRepository) UpdateAuction(ctx context.Context, auction *auctionsdomain.Auction) error {
	result := r.db.WithContext(ctx).
		Model(&auctionsdomain.Auction{}).
		Where("id = ?", auction.ID).
		Updates(map[string]interface{}{
			"group_id":        auction.GroupID,
			"round_number":    auction.RoundNumber,
			"auction_date":    auction.AuctionDate,
			"chit_amount":     auction.ChitAmount,
			"discount_amount": auction.DiscountAmount,
			"winner_id":       auction.WinnerID,
			"status":          auction.Status,
			"updated_at":      auction.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return auctionsdomain.ErrAuctionNotFound
	}
	return nil
}

func (r *PostgresRepository) DeleteAuction(ctx context.Context, auctionID string) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&auctionsdomain.Auction{}, "id = ?", auctionID)
	return result.RowsAffected > 0, result.Error
}
