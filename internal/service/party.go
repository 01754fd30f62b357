package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/mozzey/partyline/internal/domain"
)

const feedPageSize = 20

// PartyService handles party creation and the feed listing.
type PartyService struct {
	parties domain.PartyRepository
}

// NewPartyService creates a new PartyService.
func NewPartyService(parties domain.PartyRepository) *PartyService {
	return &PartyService{parties: parties}
}

// Feed returns the most recent parties with their creators' names.
func (s *PartyService) Feed(ctx context.Context) ([]domain.PartyFeedItem, error) {
	return s.parties.ListRecent(ctx, feedPageSize)
}

// Create adds a party for the given creator.
func (s *PartyService) Create(ctx context.Context, name, creatorID string) (*domain.Party, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: party name is required", domain.ErrInvalidInput)
	}

	party := &domain.Party{Name: name, CreatorID: creatorID}
	if err := s.parties.Create(ctx, party); err != nil {
		return nil, fmt.Errorf("create party: %w", err)
	}
	return party, nil
}
