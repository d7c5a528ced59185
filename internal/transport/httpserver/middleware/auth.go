package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"chitfund-app-go/internal/config"
	staffdomain "chitfund-app-go/internal/domain/staff"
	"chitfund-app-go/pkg/logger"
)

// MockAuth attaches the configured staff user to every request. It stands in
// for real authentication, which the admin API does not implement yet.
type MockAuth struct {
	staff    StaffSaver
	log      logger.Logger
	mockUser User
}

type contextKey int

const (
	userIDKey contextKey = iota
	userKey
)

type User struct {
	ID        string
	Email     string
	FirstName string
	LastName  string
	Role      string
}

type StaffSaver interface {
	UpsertUser(ctx context.Context, input staffdomain.UpsertUserInput) error
}

func NewMockAuth(cfg config.AuthConfig, staff StaffSaver, log logger.Logger) *MockAuth {
	return &MockAuth{
		staff: staff,
		log:   log,
		mockUser: User{
			ID:        strings.TrimSpace(cfg.MockUserID),
			Email:     strings.TrimSpace(cfg.MockUserEmail),
			FirstName: strings.TrimSpace(cfg.MockUserFirstName),
			LastName:  strings.TrimSpace(cfg.MockUserLastName),
			Role:      strings.ToLower(strings.TrimSpace(cfg.MockUserRole)),
		},
	}
}

func (a *MockAuth) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user := a.mockUser
		if user.ID == "" {
			writeError(w, http.StatusInternalServerError, "auth_not_configured", "auth mock user id not configured")
			return
		}

		if a.staff != nil {
			err := a.staff.UpsertUser(r.Context(), staffdomain.UpsertUserInput{
				ID:        user.ID,
				Email:     user.Email,
				FirstName: user.FirstName,
				LastName:  user.LastName,
				Role:      user.Role,
			})
			if err != nil && a.log != nil {
				a.log.InternalError("auth: upsert staff user failed", err, "user_id", user.ID)
			}
		}

		ctx := WithUser(r.Context(), user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func WithUser(ctx context.Context, user User) context.Context {
	ctx = context.WithValue(ctx, userKey, user)
	return context.WithValue(ctx, userIDKey, user.ID)
}

func UserFromContext(ctx context.Context) (User, bool) {
	value := ctx.Value(userKey)
	user, ok := value.(User)
	if !ok || user.ID == "" {
		return User{}, false
	}
	return user, true
}

func UserIDFromContext(ctx context.Context) (string, bool) {
	value := ctx.Value(userIDKey)
	userID, ok := value.(string)
	if !ok || userID == "" {
		return "", false
	}
	return userID, true
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"message": message,
		"code":    code,
	})
}
