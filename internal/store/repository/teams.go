package repository

import (
	"context"
	"fmt"

	"github.com/fortuna/hoops/internal/store"
)

// TeamRepository handles team data access
type TeamRepository struct {
	db *store.Database
}

// NewTeamRepository creates a new team repository
func NewTeamRepository(db *store.Database) *TeamRepository {
	return &TeamRepository{db: db}
}

// GetAll returns every team sorted by name
func (r *TeamRepository) GetAll(ctx context.Context) ([]*store.Team, error) {
	rows, err := r.db.DB().QueryContext(ctx, `SELECT team_code, team_name FROM teams ORDER BY team_name`)
	if err != nil {
		return nil, fmt.Errorf("querying teams: %w", err)
	}
	defer rows.Close()

	teams := []*store.Team{}
	for rows.Next() {
		team := &store.Team{}
		if err := rows.Scan(&team.TeamCode, &team.TeamName); err != nil {
			return nil, fmt.Errorf("scanning team: %w", err)
		}
		teams = append(teams, team)
	}

	return teams, rows.Err()
}
