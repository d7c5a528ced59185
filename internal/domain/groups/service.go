package groups

import (
	"context"
	"fmt"
	"strings"
	"time"

	"chitfund-app-go/pkg/idgen"
	"github.com/shopspring/decimal"
)

const groupCodePrefix = "CG"

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

func (s *Service) ListGroups(ctx context.Context) ([]ChitGroup, error) {
	return s.repo.ListGroups(ctx)
}

func (s *Service) GetGroup(ctx context.Context, groupID string) (*ChitGroup, error) {
	return s.repo.GetGroupByID(ctx, groupID)
}

func (s *Service) CreateGroup(ctx context.Context, input CreateGroupInput) (*ChitGroup, error) {
	group := ChitGroup{
		GroupName:    strings.TrimSpace(input.GroupName),
		ChitAmount:   input.ChitAmount,
		Duration:     input.Duration,
		Frequency:    strings.ToLower(strings.TrimSpace(input.Frequency)),
		TotalMembers: input.TotalMembers,
		CurrentRound: defaultCurrentRound,
		StartDate:    input.StartDate.UTC(),
		EndDate:      utcPtr(input.EndDate),
		Status:       strings.ToLower(strings.TrimSpace(input.Status)),
	}
	if input.CurrentRound != nil {
		group.CurrentRound = *input.CurrentRound
	}
	if group.Status == "" {
		group.Status = StatusActive
	}
	if input.MonthlyContribution != nil {
		group.MonthlyContribution = *input.MonthlyContribution
	} else {
		group.MonthlyContribution = Contribution(group.ChitAmount, group.TotalMembers)
	}
	if createdBy := strings.TrimSpace(input.CreatedBy); createdBy != "" {
		group.CreatedBy = &createdBy
	}

	if err := validateGroup(group); err != nil {
		return nil, err
	}

	code, err := idgen.NewCode(groupCodePrefix)
	if err != nil {
		return nil, fmt.Errorf("generate group code: %w", err)
	}
	group.ID = idgen.NewID()
	group.GroupCode = code

	if err := s.repo.CreateGroup(ctx, &group); err != nil {
		return nil, err
	}
	return &group, nil
}

func (s *Service) UpdateGroup(ctx context.Context, input UpdateGroupInput) (*ChitGroup, error) {
	group, err := s.repo.GetGroupByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.GroupName != nil {
		group.GroupName = strings.TrimSpace(*input.GroupName)
	}
	if input.ChitAmount != nil {
		group.ChitAmount = *input.ChitAmount
	}
	if input.Duration != nil {
		group.Duration = *input.Duration
	}
	if input.Frequency != nil {
		group.Frequency = strings.ToLower(strings.TrimSpace(*input.Frequency))
	}
	if input.TotalMembers != nil {
		group.TotalMembers = *input.TotalMembers
	}
	if input.CurrentRound != nil {
		group.CurrentRound = *input.CurrentRound
	}
	if input.MonthlyContribution != nil {
		group.MonthlyContribution = *input.MonthlyContribution
	}
	if input.StartDate != nil {
		group.StartDate = input.StartDate.UTC()
	}
	if input.ClearEndDate {
		group.EndDate = nil
	} else if input.EndDate != nil {
		group.EndDate = utcPtr(input.EndDate)
	}
	if input.Status != nil {
		group.Status = strings.ToLower(strings.TrimSpace(*input.Status))
	}

	if err := validateGroup(*group); err != nil {
		return nil, err
	}
	group.UpdatedAt = s.now().UTC()

	if err := s.repo.UpdateGroup(ctx, group); err != nil {
		return nil, err
	}
	return group, nil
}

func (s *Service) DeleteGroup(ctx context.Context, groupID string) error {
	deleted, err := s.repo.DeleteGroup(ctx, groupID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrGroupNotFound
	}
	return nil
}

func (s *Service) ListMembers(ctx context.Context, groupID string) ([]GroupMember, error) {
	if _, err := s.repo.GetGroupByID(ctx, groupID); err != nil {
		return nil, err
	}
	return s.repo.ListGroupMembers(ctx, groupID)
}

func (s *Service) AddMember(ctx context.Context, input AddMemberInput) (*GroupMember, error) {
	memberID := strings.TrimSpace(input.MemberID)
	if memberID == "" {
		return nil, fmt.Errorf("%w: member id is required", ErrInvalidGroup)
	}

	var groupMember *GroupMember
	err := s.repo.Transaction(ctx, func(tx Repository) error {
		group, err := tx.LockGroup(ctx, input.GroupID)
		if err != nil {
			return err
		}

		exists, err := tx.MemberExists(ctx, memberID)
		if err != nil {
			return err
		}
		if !exists {
			return ErrMemberNotFound
		}

		already, err := tx.IsGroupMember(ctx, group.ID, memberID)
		if err != nil {
			return err
		}
		if already {
			return ErrAlreadyInGroup
		}

		count, err := tx.CountGroupMembers(ctx, group.ID)
		if err != nil {
			return err
		}
		if count >= int64(group.TotalMembers) {
			return ErrGroupFull
		}

		groupMember = &GroupMember{
			ID:       idgen.NewID(),
			GroupID:  group.ID,
			MemberID: memberID,
			JoinedAt: s.now().UTC(),
		}
		return tx.CreateGroupMember(ctx, groupMember)
	})
	if err != nil {
		return nil, err
	}
	return groupMember, nil
}

func validateGroup(group ChitGroup) error {
	if group.GroupName == "" {
		return fmt.Errorf("%w: group name is required", ErrInvalidGroup)
	}
	if !group.ChitAmount.IsPositive() {
		return fmt.Errorf("%w: chit amount must be positive", ErrInvalidGroup)
	}
	if group.Duration <= 0 {
		return fmt.Errorf("%w: duration must be positive", ErrInvalidGroup)
	}
	if !IsValidFrequency(group.Frequency) {
		return fmt.Errorf("%w: unknown frequency %q", ErrInvalidGroup, group.Frequency)
	}
	if group.TotalMembers <= 0 {
		return fmt.Errorf("%w: total members must be positive", ErrInvalidGroup)
	}
	if group.CurrentRound < 1 {
		return fmt.Errorf("%w: current round must be at least 1", ErrInvalidGroup)
	}
	if group.MonthlyContribution.LessThan(decimal.Zero) {
		return fmt.Errorf("%w: monthly contribution must not be negative", ErrInvalidGroup)
	}
	if group.StartDate.IsZero() {
		return fmt.Errorf("%w: start date is required", ErrInvalidGroup)
	}
	if group.EndDate != nil && group.EndDate.Before(group.StartDate) {
		return fmt.Errorf("%w: end date is before start date", ErrInvalidGroup)
	}
	if !IsValidStatus(group.Status) {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidGroup, group.Status)
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
