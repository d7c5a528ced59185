package auctions

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	StatusScheduled = "scheduled"
	StatusPending   = "pending"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

type Auction struct {
	ID             string          `gorm:"primaryKey"`
	GroupID        string          `gorm:"column:group_id;not null"`
	RoundNumber    int             `gorm:"column:round_number;not null"`
	AuctionDate    time.Time       `gorm:"column:auction_date;not null"`
	ChitAmount     decimal.Decimal `gorm:"column:chit_amount;type:numeric(15,2);not null"`
	DiscountAmount decimal.Decimal `gorm:"column:discount_amount;type:numeric(15,2);not null"`
	WinnerID       *string         `gorm:"column:winner_id"`
	Status         string          `gorm:"column:status;not null"`
	CreatedAt      time.Time       `gorm:"autoCreateTime"`
	UpdatedAt      time.Time       `gorm:"autoUpdateTime"`
}

type CreateAuctionInput struct {
	GroupID        string
	RoundNumber    int
	AuctionDate    time.Time
	ChitAmount     decimal.Decimal
	DiscountAmount *decimal.Decimal
	WinnerID       *string
	Status         string
}

// UpdateAuctionInput is a partial update; an empty WinnerID clears the winner.
type UpdateAuctionInput struct {
	ID             string
	GroupID        *string
	RoundNumber    *int
	AuctionDate    *time.Time
	ChitAmount     *decimal.Decimal
	DiscountAmount *decimal.Decimal
	WinnerID       *string
	Status         *string
}

func IsValidStatus(status string) bool {
	switch status {
	case StatusScheduled, StatusPending, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}
