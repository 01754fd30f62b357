package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/mozzey/partyline/internal/domain"
	"github.com/mozzey/partyline/internal/service"
	"github.com/mozzey/partyline/internal/view"
)

// ProfileHandler handles user profile pages.
type ProfileHandler struct {
	auth  *service.AuthService
	users domain.UserRepository
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(auth *service.AuthService, users domain.UserRepository) *ProfileHandler {
	return &ProfileHandler{auth: auth, users: users}
}

// HandleProfile renders a user's profile page.
// GET /user/{username}
func (h *ProfileHandler) HandleProfile(w http.ResponseWriter, r *http.Request) {
	viewer, rd := h.auth.GetUser(r.Context(), r)
	if rd != nil {
		rd.Apply(w, r)
		return
	}
	if viewer == nil {
		h.auth.Logout(r).Apply(w, r)
		return
	}

	username := r.PathValue("username")
	profile, err := h.users.GetByUsername(r.Context(), username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		slog.Error("get profile user", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	view.ProfilePage(viewer.Username, profile.Username).Render(r.Context(), w)
}
