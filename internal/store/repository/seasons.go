package repository

import (
	"context"
	"fmt"

	"github.com/fortuna/hoops/internal/store"
)

// SeasonRepository handles season data access
type SeasonRepository struct {
	db *store.Database
}

// NewSeasonRepository creates a new season repository
func NewSeasonRepository(db *store.Database) *SeasonRepository {
	return &SeasonRepository{db: db}
}

// GetAll returns every season, most recent first
func (r *SeasonRepository) GetAll(ctx context.Context) ([]*store.Season, error) {
	rows, err := r.db.DB().QueryContext(ctx, `SELECT season_id, year FROM seasons ORDER BY year DESC`)
	if err != nil {
		return nil, fmt.Errorf("querying seasons: %w", err)
	}
	defer rows.Close()

	seasons := []*store.Season{}
	for rows.Next() {
		s := &store.Season{}
		if err := rows.Scan(&s.SeasonID, &s.Year); err != nil {
			return nil, fmt.Errorf("scanning season: %w", err)
		}
		seasons = append(seasons, s)
	}

	return seasons, rows.Err()
}
