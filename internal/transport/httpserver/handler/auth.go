package handler

import (
	"errors"
	"net/http"

	staffdomain "chitfund-app-go/internal/domain/staff"
	"chitfund-app-go/internal/transport/httpserver/middleware"
)

type authUserResponse struct {
	ID        string  `json:"id"`
	Email     *string `json:"email"`
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Role      string  `json:"role"`
}

func (h *Handlers) AuthUser(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "Unauthorized")
		return
	}

	stored, err := h.Staff.GetUser(r.Context(), user.ID)
	if err != nil {
		if !errors.Is(err, staffdomain.ErrUserNotFound) {
			h.fail(w, "auth.user: get staff user failed", err, "user_id", user.ID)
			return
		}
		writeJSON(w, http.StatusOK, authUserResponse{
			ID:        user.ID,
			Email:     optional(user.Email),
			FirstName: optional(user.FirstName),
			LastName:  optional(user.LastName),
			Role:      user.Role,
		})
		return
	}

	writeJSON(w, http.StatusOK, authUserResponse{
		ID:        stored.ID,
		Email:     stored.Email,
		FirstName: stored.FirstName,
		LastName:  stored.LastName,
		Role:      stored.Role,
	})
}

func optional(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
