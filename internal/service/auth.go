package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/mozzey/partyline/internal/domain"
	"github.com/mozzey/partyline/internal/session"
)

// Redirect instructs the caller to issue an HTTP redirect, optionally
// committing or destroying the session via Cookie. It is a value, not an
// error: callers that receive one apply it and stop.
type Redirect struct {
	Location string
	Cookie   *http.Cookie
}

// Apply writes the redirect (and its Set-Cookie, if any) to the response.
func (rd *Redirect) Apply(w http.ResponseWriter, r *http.Request) {
	if rd.Cookie != nil {
		http.SetCookie(w, rd.Cookie)
	}
	http.Redirect(w, r, rd.Location, http.StatusFound)
}

// AuthService implements registration, login, logout, and session-based
// identity resolution.
type AuthService struct {
	users    domain.UserRepository
	sessions *session.Store
	hasher   *PasswordHasher
}

// NewAuthService creates a new AuthService.
func NewAuthService(users domain.UserRepository, sessions *session.Store, hasher *PasswordHasher) *AuthService {
	return &AuthService{users: users, sessions: sessions, hasher: hasher}
}

// GetUserID returns the user id from the request's session, or "" when the
// request carries no valid session. It never touches the repository.
func (s *AuthService) GetUserID(r *http.Request) string {
	return s.sessions.Read(r).UserID()
}

// GetUser resolves the session's user against the repository. It returns
// (nil, nil) for a request that simply isn't logged in. When the session
// references a user that can no longer be resolved (deleted account,
// unreachable repository) it returns a forced-logout redirect instead of a
// partial result.
func (s *AuthService) GetUser(ctx context.Context, r *http.Request) (*domain.UserSummary, *Redirect) {
	userID := s.GetUserID(r)
	if userID == "" {
		return nil, nil
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, s.Logout(r)
	}
	return user.Summary(), nil
}

// RequireUserID returns the session's user id, or a redirect to the login
// page carrying redirectTo (defaulting to the request path) so the login
// flow can send the user back where they were headed.
func (s *AuthService) RequireUserID(r *http.Request, redirectTo string) (string, *Redirect) {
	if userID := s.GetUserID(r); userID != "" {
		return userID, nil
	}

	if redirectTo == "" {
		redirectTo = r.URL.Path
	}
	params := url.Values{"redirectTo": {redirectTo}}
	return "", &Redirect{Location: "/login?" + params.Encode()}
}

// Login verifies the credentials and returns the user's summary. An unknown
// username and a wrong password both return (nil, nil); callers cannot tell
// them apart. The error is non-nil only when the repository itself fails.
func (s *AuthService) Login(ctx context.Context, username, password string) (*domain.UserSummary, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	ok, err := s.hasher.Verify(password, user.PasswordHash)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	return user.Summary(), nil
}

// Register hashes the password and creates the user. Inputs are assumed
// already validated by the form layer; a duplicate username or email
// propagates as the repository's sentinel error.
func (s *AuthService) Register(ctx context.Context, username, email, password string) (*domain.UserSummary, error) {
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{Username: username, Email: email, PasswordHash: hash}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	return user.Summary(), nil
}

// CreateUserSession mints a fresh session for the user and returns a
// redirect to redirectTo carrying the session cookie.
func (s *AuthService) CreateUserSession(userID, redirectTo string) (*Redirect, error) {
	cookie, err := s.sessions.Cookie(domain.Session{domain.SessionKeyUserID: userID})
	if err != nil {
		return nil, err
	}
	return &Redirect{Location: redirectTo, Cookie: cookie}, nil
}

// Logout returns a redirect to the login page that destroys the session
// cookie.
func (s *AuthService) Logout(r *http.Request) *Redirect {
	return &Redirect{Location: "/login", Cookie: s.sessions.Destroy()}
}
