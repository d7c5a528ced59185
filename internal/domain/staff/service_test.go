package staff

import (
	"context"
	"errors"
	"testing"
)

type fakeStaffRepo struct {
	users map[string]*User
}

func (r *fakeStaffRepo) GetUserByID(ctx context.Context, userID string) (*User, error) {
	user, ok := r.users[userID]
	if !ok {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (r *fakeStaffRepo) UpsertUser(ctx context.Context, user *User) error {
	r.users[user.ID] = user
	return nil
}

func TestUpsertUser(t *testing.T) {
	repo := &fakeStaffRepo{users: make(map[string]*User)}
	svc := NewService(repo)

	err := svc.UpsertUser(context.Background(), UpsertUserInput{ID: "staff-1", Email: "test@example.com", FirstName: "Test", Role: "Admin"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	user, err := svc.GetUser(context.Background(), "staff-1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if user.Role != RoleAdmin || !user.IsActive {
		t.Fatalf("expected active admin, got %+v", user)
	}
	if user.Email == nil || *user.Email != "test@example.com" {
		t.Fatalf("expected email stored, got %v", user.Email)
	}
	if user.LastName != nil {
		t.Fatalf("expected empty last name dropped, got %q", *user.LastName)
	}
}

func TestUpsertUserDefaultsRole(t *testing.T) {
	repo := &fakeStaffRepo{users: make(map[string]*User)}
	if err := NewService(repo).UpsertUser(context.Background(), UpsertUserInput{ID: "staff-2"}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if repo.users["staff-2"].Role != RoleStaff {
		t.Fatalf("expected staff role, got %q", repo.users["staff-2"].Role)
	}
}

func TestUpsertUserValidation(t *testing.T) {
	svc := NewService(&fakeStaffRepo{users: make(map[string]*User)})

	if err := svc.UpsertUser(context.Background(), UpsertUserInput{ID: " "}); !errors.Is(err, ErrInvalidUser) {
		t.Fatalf("expected ErrInvalidUser for empty id, got %v", err)
	}
	if err := svc.UpsertUser(context.Background(), UpsertUserInput{ID: "x", Role: "owner"}); !errors.Is(err, ErrInvalidUser) {
		t.Fatalf("expected ErrInvalidUser for bad role, got %v", err)
	}
}
