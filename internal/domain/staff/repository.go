package staff

import "context"

type Repository interface {
	GetUserByID(ctx context.Context, userID string) (*User, error)
	UpsertUser(ctx context.Context, user *User) error
}
