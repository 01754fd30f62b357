package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/mozzey/partyline/internal/domain"
	"github.com/mozzey/partyline/internal/repository/sqlite"
	"github.com/mozzey/partyline/internal/service"
)

// seedDemoData registers the demo accounts and throws a party for each.
// Already-seeded users are skipped, so reruns are harmless.
func seedDemoData(ctx context.Context, auth *service.AuthService, parties *service.PartyService, db *sqlite.DB) error {
	demo := []struct {
		username string
		email    string
		password string
	}{
		{"mozzey", "magick.mozzey@gmail.com", "twixrox"},
		{"matt", "luxary99@gmail.com", "twixrox"},
	}

	for _, u := range demo {
		if _, err := db.Users().GetByUsername(ctx, u.username); err == nil {
			continue
		} else if !errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("check seed user %s: %w", u.username, err)
		}

		user, err := auth.Register(ctx, u.username, u.email, u.password)
		if err != nil {
			return fmt.Errorf("seed user %s: %w", u.username, err)
		}

		if _, err := parties.Create(ctx, user.Username+"'s Party", user.ID); err != nil {
			return fmt.Errorf("seed party for %s: %w", u.username, err)
		}
	}

	return nil
}
