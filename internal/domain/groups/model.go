package groups

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	StatusActive    = "active"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

const (
	FrequencyWeekly      = "weekly"
	FrequencyBiWeekly    = "bi-weekly"
	FrequencyMonthly     = "monthly"
	FrequencyTriMonthly  = "tri-monthly"
	defaultCurrentRound  = 1
	contributionDecimals = 2
)

type ChitGroup struct {
	ID                  string          `gorm:"primaryKey"`
	GroupName           string          `gorm:"column:group_name;not null"`
	GroupCode           string          `gorm:"column:group_code;uniqueIndex;not null"`
	ChitAmount          decimal.Decimal `gorm:"column:chit_amount;type:numeric(15,2);not null"`
	Duration            int             `gorm:"column:duration;not null"`
	Frequency           string          `gorm:"column:frequency;not null"`
	TotalMembers        int             `gorm:"column:total_members;not null"`
	CurrentRound        int             `gorm:"column:current_round;not null"`
	MonthlyContribution decimal.Decimal `gorm:"column:monthly_contribution;type:numeric(15,2);not null"`
	StartDate           time.Time       `gorm:"column:start_date;not null"`
	EndDate             *time.Time      `gorm:"column:end_date"`
	Status              string          `gorm:"column:status;not null"`
	CreatedBy           *string         `gorm:"column:created_by"`
	CreatedAt           time.Time       `gorm:"autoCreateTime"`
	UpdatedAt           time.Time       `gorm:"autoUpdateTime"`
}

type GroupMember struct {
	ID           string    `gorm:"primaryKey"`
	GroupID      string    `gorm:"column:group_id;not null"`
	MemberID     string    `gorm:"column:member_id;not null"`
	JoinedAt     time.Time `gorm:"column:joined_at;not null"`
	IsWinner     bool      `gorm:"column:is_winner;not null"`
	WinningRound *int      `gorm:"column:winning_round"`
}

type CreateGroupInput struct {
	GroupName           string
	ChitAmount          decimal.Decimal
	Duration            int
	Frequency           string
	TotalMembers        int
	CurrentRound        *int
	MonthlyContribution *decimal.Decimal
	StartDate           time.Time
	EndDate             *time.Time
	Status              string
	CreatedBy           string
}

// UpdateGroupInput is a partial update. ClearEndDate removes a stored end date.
type UpdateGroupInput struct {
	ID                  string
	GroupName           *string
	ChitAmount          *decimal.Decimal
	Duration            *int
	Frequency           *string
	TotalMembers        *int
	CurrentRound        *int
	MonthlyContribution *decimal.Decimal
	StartDate           *time.Time
	EndDate             *time.Time
	ClearEndDate        bool
	Status              *string
}

type AddMemberInput struct {
	GroupID  string
	MemberID string
}

func IsValidStatus(status string) bool {
	switch status {
	case StatusActive, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

func IsValidFrequency(frequency string) bool {
	switch frequency {
	case FrequencyWeekly, FrequencyBiWeekly, FrequencyMonthly, FrequencyTriMonthly:
		return true
	}
	return false
}

// Contribution is the per-member installment for a pot split across
// totalMembers, rounded to paise.
func Contribution(chitAmount decimal.Decimal, totalMembers int) decimal.Decimal {
	if totalMembers <= 0 {
		return decimal.Zero
	}
	return chitAmount.DivRound(decimal.NewFromInt(int64(totalMembers)), contributionDecimals)
}
