package handler

import (
	"net/http"

	"github.com/mozzey/partyline/internal/domain"
	"github.com/mozzey/partyline/internal/service"
)

// RegisterRoutes sets up all HTTP routes on the given mux.
func RegisterRoutes(mux *http.ServeMux, auth *service.AuthService, parties *service.PartyService, users domain.UserRepository) {
	authHandler := NewAuthHandler(auth)
	feed := NewFeedHandler(auth, parties)
	profile := NewProfileHandler(auth, users)

	mux.HandleFunc("GET /healthz", HandleHealthz)
	mux.HandleFunc("GET /", NewHomeHandler(auth).HandleHome)

	mux.HandleFunc("GET /login", authHandler.HandleLoginPage)
	mux.HandleFunc("POST /login", authHandler.HandleLogin)
	mux.HandleFunc("GET /register", authHandler.HandleRegisterPage)
	mux.HandleFunc("POST /register", authHandler.HandleRegister)
	mux.HandleFunc("POST /logout", authHandler.HandleLogout)

	mux.Handle("GET /feed", RequireUser(auth, http.HandlerFunc(feed.HandleFeed)))
	mux.Handle("POST /parties", RequireUser(auth, http.HandlerFunc(feed.HandleCreateParty)))
	mux.Handle("GET /user/{username}", RequireUser(auth, http.HandlerFunc(profile.HandleProfile)))
}
