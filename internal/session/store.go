package session

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/mozzey/partyline/internal/domain"
)

// CookieName is the name of the session cookie.
const CookieName = "__session"

// MaxAge is the session cookie lifetime: 30 days.
const MaxAge = 30 * 24 * 60 * 60

// Store reads the session from inbound requests and mints Set-Cookie values
// for outbound responses. The cookie policy (HttpOnly, Secure, SameSite=Lax,
// Path=/) is part of the security contract and is not tunable per request.
type Store struct {
	codec *Codec
}

// NewStore creates a session store signing with the given secret. An empty
// secret is refused; the process must not run with a default key.
func NewStore(secret string) (*Store, error) {
	if secret == "" {
		return nil, errors.New("session secret must not be empty")
	}
	return &Store{codec: NewCodec([]byte(secret), MaxAge*time.Second)}, nil
}

// Read extracts and decodes the session cookie. Missing, malformed,
// tampered, and expired cookies all yield an empty session.
func (s *Store) Read(r *http.Request) domain.Session {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return domain.Session{}
	}
	sess := s.codec.Decode(cookie.Value)
	if sess == nil {
		return domain.Session{}
	}
	return sess
}

// Cookie encodes the session into its Set-Cookie form.
func (s *Store) Cookie(sess domain.Session) (*http.Cookie, error) {
	value, err := s.codec.Encode(sess)
	if err != nil {
		return nil, fmt.Errorf("encode session: %w", err)
	}
	return &http.Cookie{
		Name:     CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   MaxAge,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	}, nil
}

// Destroy returns a Set-Cookie that immediately expires the session cookie.
func (s *Store) Destroy() *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	}
}
