// Package session implements the signed cookie session: a small key-value
// mapping serialized into an HMAC-signed token and carried by the client.
// The cookie is the session; nothing is stored server-side.
package session

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/mozzey/partyline/internal/domain"
)

// Codec serializes sessions to signed cookie values and back.
type Codec struct {
	secret []byte
	maxAge time.Duration
}

// NewCodec creates a codec signing with the given secret. Encoded values
// expire maxAge after encoding.
func NewCodec(secret []byte, maxAge time.Duration) *Codec {
	return &Codec{secret: secret, maxAge: maxAge}
}

// Encode serializes the session into a signed compact token. The session
// entries become claims alongside issued-at and expiry.
func (c *Codec) Encode(sess domain.Session) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"iat": now.Unix(),
		"exp": now.Add(c.maxAge).Unix(),
	}
	for k, v := range sess {
		claims[k] = v
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(c.secret)
}

// Decode verifies the token and reconstructs the session. It returns nil
// for anything that does not verify: empty or malformed input, a bad or
// foreign signature, a non-HMAC algorithm, or an expired token. A tampered
// cookie is indistinguishable from no cookie at all.
func (c *Codec) Decode(value string) domain.Session {
	if value == "" {
		return nil
	}

	token, err := jwt.Parse(value, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return c.secret, nil
	})
	if err != nil || !token.Valid {
		return nil
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil
	}

	sess := domain.Session{}
	for k, v := range claims {
		if k == "iat" || k == "exp" {
			continue
		}
		if s, ok := v.(string); ok {
			sess[k] = s
		}
	}
	return sess
}
