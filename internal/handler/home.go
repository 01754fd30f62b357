package handler

import (
	"net/http"

	"github.com/mozzey/partyline/internal/service"
)

// HomeHandler handles the index route.
type HomeHandler struct {
	auth *service.AuthService
}

// NewHomeHandler creates a new HomeHandler.
func NewHomeHandler(auth *service.AuthService) *HomeHandler {
	return &HomeHandler{auth: auth}
}

// HandleHome redirects logged-in visitors to the feed and everyone else to
// the login page.
// GET /
func (h *HomeHandler) HandleHome(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	user, rd := h.auth.GetUser(r.Context(), r)
	if rd != nil {
		rd.Apply(w, r)
		return
	}
	if user != nil {
		http.Redirect(w, r, "/feed", http.StatusFound)
		return
	}
	http.Redirect(w, r, "/login", http.StatusFound)
}
