package domain

import (
	"context"
	"time"
)

// Party is an event created by a user. Parties show up on the feed,
// newest first.
type Party struct {
	ID        string
	Name      string
	CreatorID string
	CreatedAt time.Time
}

// PartyFeedItem is a party joined with its creator's username for display.
type PartyFeedItem struct {
	Party
	CreatorName string
}

// PartyRepository defines persistence operations for parties.
type PartyRepository interface {
	Create(ctx context.Context, party *Party) error
	ListRecent(ctx context.Context, limit int) ([]PartyFeedItem, error)
}
