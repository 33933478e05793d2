package repository

import (
	"context"
	"fmt"

	"github.com/fortuna/hoops/internal/store"
)

// AwardRepository handles award data access
type AwardRepository struct {
	db *store.Database
}

// NewAwardRepository creates a new award repository
func NewAwardRepository(db *store.Database) *AwardRepository {
	return &AwardRepository{db: db}
}

// GetAll returns every award ordered by year descending, then award name
func (r *AwardRepository) GetAll(ctx context.Context) ([]*store.Award, error) {
	query := `
		SELECT p.player_name, s.year, a.award_name, a.award_value
		FROM player_awards a
		JOIN players p ON a.player_id = p.player_id
		JOIN seasons s ON a.season_id = s.season_id
		ORDER BY s.year DESC, a.award_name
	`

	rows, err := r.db.DB().QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying awards: %w", err)
	}
	defer rows.Close()

	awards := []*store.Award{}
	for rows.Next() {
		a := &store.Award{}
		if err := rows.Scan(&a.PlayerName, &a.Year, &a.AwardName, &a.AwardValue); err != nil {
			return nil, fmt.Errorf("scanning award: %w", err)
		}
		awards = append(awards, a)
	}

	return awards, rows.Err()
}
