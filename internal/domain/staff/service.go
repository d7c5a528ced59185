package staff

import (
	"context"
	"fmt"
	"strings"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) GetUser(ctx context.Context, userID string) (*User, error) {
	return s.repo.GetUserByID(ctx, userID)
}

// UpsertUser records the acting staff user so created_by and uploaded_by
// references resolve.
func (s *Service) UpsertUser(ctx context.Context, input UpsertUserInput) error {
	userID := strings.TrimSpace(input.ID)
	if userID == "" {
		return fmt.Errorf("%w: user id is required", ErrInvalidUser)
	}

	role := strings.ToLower(strings.TrimSpace(input.Role))
	if role == "" {
		role = RoleStaff
	}
	if !IsValidRole(role) {
		return fmt.Errorf("%w: unknown role %q", ErrInvalidUser, role)
	}

	user := User{
		ID:        userID,
		Email:     optional(input.Email),
		FirstName: optional(input.FirstName),
		LastName:  optional(input.LastName),
		Role:      role,
		IsActive:  true,
	}
	return s.repo.UpsertUser(ctx, &user)
}

func optional(value string) *string {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	return &value
}
