package domain

import (
	"context"
	"time"
)

// User represents a registered account. The password hash never leaves the
// repository/service layers; anything rendered or put in a session carries a
// UserSummary instead.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// UserSummary is the projection of a User that is safe to hand outward.
type UserSummary struct {
	ID       string
	Username string
}

// Summary projects the user to its public fields.
func (u *User) Summary() *UserSummary {
	return &UserSummary{ID: u.ID, Username: u.Username}
}

// UserRepository defines persistence operations for users.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
}
