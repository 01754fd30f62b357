package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mozzey/partyline/internal/domain"
)

// partyRepo implements domain.PartyRepository using SQLite.
type partyRepo struct {
	db *sql.DB
}

func (r *partyRepo) Create(ctx context.Context, party *domain.Party) error {
	id := uuid.NewString()
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO parties (id, name, creator_id, created_at) VALUES (?, ?, ?, ?)`,
		id, party.Name, party.CreatorID, now,
	)
	if err != nil {
		return fmt.Errorf("insert party: %w", err)
	}

	party.ID = id
	party.CreatedAt = now
	return nil
}

func (r *partyRepo) ListRecent(ctx context.Context, limit int) ([]domain.PartyFeedItem, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT p.id, p.name, p.creator_id, p.created_at, u.username
		 FROM parties p
		 JOIN users u ON u.id = p.creator_id
		 ORDER BY p.created_at DESC
		 LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query recent parties: %w", err)
	}
	defer rows.Close()

	var items []domain.PartyFeedItem
	for rows.Next() {
		var item domain.PartyFeedItem
		if err := rows.Scan(&item.ID, &item.Name, &item.CreatorID, &item.CreatedAt, &item.CreatorName); err != nil {
			return nil, fmt.Errorf("scan party: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
