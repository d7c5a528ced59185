package auctions

import (
	"context"
	"time"
)

type Repository interface {
	ListAuctions(ctx context.Context) ([]Auction, error)
	ListUpcomingAuctions(ctx context.Context, from time.Time) ([]Auction, error)
	GetAuctionByID(ctx context.Context, auctionID string) (*Auction, error)
	CreateAuction(ctx context.Context, auction *Auction) error
	UpdateAuction(ctx context.Context, auction *Auction) error
	DeleteAuction(ctx context.Context, auctionID string) (bool, error)
}
