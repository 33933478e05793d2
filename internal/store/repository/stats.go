package repository

import (
	"context"
	"fmt"

	"github.com/fortuna/hoops/internal/store"
)

const (
	// StatsLimit caps the filtered stats listing
	StatsLimit = 200
	// LeaderboardMinGames is the games-played threshold for leaderboard rows
	LeaderboardMinGames = 20
	// DefaultLeaderboardLimit applies when no limit is requested
	DefaultLeaderboardLimit = 20
)

// LeaderboardStats lists the stat names a leaderboard can rank by
var LeaderboardStats = []string{"pts", "ast", "trb", "stl", "blk", "fg_pct", "three_pt_pct"}

// leaderboardValue picks the ranked column from a bound stat name, so the
// name never becomes part of the statement text.
const leaderboardValue = `CASE %s::text
			WHEN 'pts' THEN ps.pts
			WHEN 'ast' THEN ps.ast
			WHEN 'trb' THEN ps.trb
			WHEN 'stl' THEN ps.stl
			WHEN 'blk' THEN ps.blk
			WHEN 'fg_pct' THEN ps.fg_pct
			WHEN 'three_pt_pct' THEN ps.three_pt_pct
		END`

// IsLeaderboardStat reports whether stat is rankable
func IsLeaderboardStat(stat string) bool {
	for _, s := range LeaderboardStats {
		if s == stat {
			return true
		}
	}
	return false
}

// LeaderboardQuery selects what to rank. A nil Season means all seasons;
// Limit is bound as given.
type LeaderboardQuery struct {
	Stat   string
	Season *int
	Limit  int
}

// StatsFilter narrows the stats listing. Empty strings and a nil Season mean "no filter".
type StatsFilter struct {
	Player   string
	TeamCode string
	Season   *int
}

// StatsRepository handles player_stats listings
type StatsRepository struct {
	db *store.Database
}

// NewStatsRepository creates a new stats repository
func NewStatsRepository(db *store.Database) *StatsRepository {
	return &StatsRepository{db: db}
}

// Leaderboard ranks non-total player-season rows with at least
// LeaderboardMinGames games by the chosen stat, highest first.
func (r *StatsRepository) Leaderboard(ctx context.Context, q LeaderboardQuery) ([]*store.LeaderboardEntry, error) {
	if !IsLeaderboardStat(q.Stat) {
		return nil, fmt.Errorf("unknown leaderboard stat %q", q.Stat)
	}
	if q.Limit < 0 {
		return nil, fmt.Errorf("negative leaderboard limit %d", q.Limit)
	}

	var b whereBuilder
	value := fmt.Sprintf(leaderboardValue, b.bind(q.Stat))
	b.addRaw("ps.is_total_row = FALSE")
	b.add("ps.games_played >= $%d", LeaderboardMinGames)
	if q.Season != nil {
		b.add("s.year = $%d", *q.Season)
	}

	query := `
		SELECT p.player_name, t.team_name, s.year, ` + value + ` AS stat_value, ps.games_played
		FROM player_stats ps
		JOIN players p ON ps.player_id = p.player_id
		JOIN teams t ON ps.team_code = t.team_code
		JOIN seasons s ON ps.season_id = s.season_id` + b.where() + `
		ORDER BY stat_value DESC NULLS LAST
		LIMIT ` + b.bind(q.Limit)

	rows, err := r.db.DB().QueryContext(ctx, query, b.args...)
	if err != nil {
		return nil, fmt.Errorf("querying leaderboard: %w", err)
	}
	defer rows.Close()

	entries := []*store.LeaderboardEntry{}
	for rows.Next() {
		e := &store.LeaderboardEntry{}
		if err := rows.Scan(&e.PlayerName, &e.TeamName, &e.Year, &e.Value, &e.GamesPlayed); err != nil {
			return nil, fmt.Errorf("scanning leaderboard entry: %w", err)
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

// List returns at most StatsLimit non-total rows matching f, ordered by
// year descending then points descending.
func (r *StatsRepository) List(ctx context.Context, f StatsFilter) ([]*store.StatLine, error) {
	var b whereBuilder
	b.addRaw("ps.is_total_row = FALSE")
	if f.Player != "" {
		b.add("p.player_name ILIKE $%d", containsPattern(f.Player))
	}
	if f.TeamCode != "" {
		b.add("t.team_code = $%d", f.TeamCode)
	}
	if f.Season != nil {
		b.add("s.year = $%d", *f.Season)
	}

	query := `
		SELECT
			p.player_id, p.player_name, t.team_name, t.team_code, s.year,
			ps.pts, ps.ast, ps.trb, ps.games_played, ps.minutes_played,
			ps.fg_pct, ps.three_pt_pct, ps.ft_pct, ps.stl, ps.blk, ps.pos
		FROM player_stats ps
		JOIN players p ON ps.player_id = p.player_id
		JOIN teams t ON ps.team_code = t.team_code
		JOIN seasons s ON ps.season_id = s.season_id` + b.where() + `
		ORDER BY s.year DESC, ps.pts DESC NULLS LAST
		LIMIT ` + b.bind(StatsLimit)

	rows, err := r.db.DB().QueryContext(ctx, query, b.args...)
	if err != nil {
		return nil, fmt.Errorf("querying stats: %w", err)
	}
	defer rows.Close()

	lines := []*store.StatLine{}
	for len(lines) < StatsLimit && rows.Next() {
		l := &store.StatLine{}
		err := rows.Scan(
			&l.PlayerID, &l.PlayerName, &l.TeamName, &l.TeamCode, &l.Year,
			&l.Points, &l.Assists, &l.Rebounds, &l.GamesPlayed, &l.MinutesPlayed,
			&l.FGPct, &l.ThreePtPct, &l.FTPct, &l.Steals, &l.Blocks, &l.Position,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning stat line: %w", err)
		}
		lines = append(lines, l)
	}

	return lines, rows.Err()
}
