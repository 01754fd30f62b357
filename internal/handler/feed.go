package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/mozzey/partyline/internal/domain"
	"github.com/mozzey/partyline/internal/service"
	"github.com/mozzey/partyline/internal/view"
)

// FeedHandler handles the party feed and party creation.
type FeedHandler struct {
	auth    *service.AuthService
	parties *service.PartyService
}

// NewFeedHandler creates a new FeedHandler.
func NewFeedHandler(auth *service.AuthService, parties *service.PartyService) *FeedHandler {
	return &FeedHandler{auth: auth, parties: parties}
}

// HandleFeed renders the feed of recent parties.
// GET /feed
func (h *FeedHandler) HandleFeed(w http.ResponseWriter, r *http.Request) {
	user, rd := h.auth.GetUser(r.Context(), r)
	if rd != nil {
		rd.Apply(w, r)
		return
	}
	if user == nil {
		h.auth.Logout(r).Apply(w, r)
		return
	}

	items, err := h.parties.Feed(r.Context())
	if err != nil {
		slog.Error("list feed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	view.FeedPage(user.Username, items).Render(r.Context(), w)
}

// HandleCreateParty creates a party for the logged-in user and returns to
// the feed.
// POST /parties
func (h *FeedHandler) HandleCreateParty(w http.ResponseWriter, r *http.Request) {
	userID := UserIDFromContext(r.Context())
	if userID == "" {
		h.auth.Logout(r).Apply(w, r)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Form not submitted correctly", http.StatusBadRequest)
		return
	}

	if _, err := h.parties.Create(r.Context(), r.PostFormValue("name"), userID); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			http.Redirect(w, r, "/feed", http.StatusFound)
			return
		}
		slog.Error("create party", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/feed", http.StatusFound)
}
