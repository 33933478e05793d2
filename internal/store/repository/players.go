package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/fortuna/hoops/internal/store"
	"github.com/lib/pq"
)

// SearchLimit caps name search results
const SearchLimit = 20

// PlayerFilter narrows the player listing. Empty TeamCode and nil Season mean "no filter".
type PlayerFilter struct {
	TeamCode string
	Season   *int
}

// PlayerRepository handles player data access
type PlayerRepository struct {
	db *store.Database
}

// NewPlayerRepository creates a new player repository
func NewPlayerRepository(db *store.Database) *PlayerRepository {
	return &PlayerRepository{db: db}
}

// List returns distinct players sorted by name, restricted to those with a
// stat row for the given team and/or season year when set.
func (r *PlayerRepository) List(ctx context.Context, f PlayerFilter) ([]*store.Player, error) {
	query := `SELECT player_id, player_name FROM players ORDER BY player_name`
	var b whereBuilder

	if f.TeamCode != "" || f.Season != nil {
		query = `
		SELECT DISTINCT p.player_id, p.player_name
		FROM players p
		JOIN player_stats ps ON p.player_id = ps.player_id`

		if f.TeamCode != "" {
			query += `
		JOIN teams t ON ps.team_code = t.team_code`
			b.add("t.team_code = $%d", f.TeamCode)
		}
		if f.Season != nil {
			query += `
		JOIN seasons s ON ps.season_id = s.season_id`
			b.add("s.year = $%d", *f.Season)
		}

		query += b.where() + `
		ORDER BY p.player_name`
	}

	rows, err := r.db.DB().QueryContext(ctx, query, b.args...)
	if err != nil {
		return nil, fmt.Errorf("querying players: %w", err)
	}
	defer rows.Close()

	return scanPlayers(rows, 0)
}

// GetDetail returns a player's identity and every non-total season row,
// newest first. Both statements run on one pinned connection.
func (r *PlayerRepository) GetDetail(ctx context.Context, playerID int) (*store.PlayerDetail, error) {
	conn, err := r.db.DB().Conn(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquiring connection: %w", err)
	}
	defer conn.Close()

	detail := &store.PlayerDetail{Stats: []*store.SeasonStat{}}
	err = conn.QueryRowContext(ctx,
		`SELECT player_id, player_name FROM players WHERE player_id = $1`, playerID,
	).Scan(&detail.Player.PlayerID, &detail.Player.PlayerName)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("player %d: %w", playerID, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("querying player: %w", err)
	}

	query := `
		SELECT s.year, ps.pts, ps.ast, ps.trb, ps.minutes_played,
			ps.games_played, ps.games_started,
			ps.fg_pct, ps.three_pt_pct, ps.two_pt_pct, ps.ft_pct, ps.efg_pct,
			ps.orb, ps.drb, ps.stl, ps.blk, ps.tov, ps.pf,
			t.team_name, ps.pos
		FROM player_stats ps
		JOIN seasons s ON ps.season_id = s.season_id
		LEFT JOIN teams t ON ps.team_code = t.team_code
		WHERE ps.player_id = $1 AND ps.is_total_row = FALSE
		ORDER BY s.year DESC
	`

	rows, err := conn.QueryContext(ctx, query, playerID)
	if err != nil {
		return nil, fmt.Errorf("querying season stats: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		st := &store.SeasonStat{}
		err := rows.Scan(
			&st.Year, &st.Points, &st.Assists, &st.Rebounds, &st.MinutesPlayed,
			&st.GamesPlayed, &st.GamesStarted,
			&st.FGPct, &st.ThreePtPct, &st.TwoPtPct, &st.FTPct, &st.EFGPct,
			&st.OffRebounds, &st.DefRebounds, &st.Steals, &st.Blocks, &st.Turnovers, &st.PersonalFouls,
			&st.TeamName, &st.Position,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning season stats: %w", err)
		}
		detail.Stats = append(detail.Stats, st)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating season stats: %w", err)
	}

	return detail, nil
}

// GetCareer aggregates a player's non-total rows. ErrNotFound means the
// player has no such rows (or does not exist).
func (r *PlayerRepository) GetCareer(ctx context.Context, playerID int) (*store.CareerStats, error) {
	query := `
		SELECT
			COUNT(DISTINCT ps.season_id) AS seasons_played,
			SUM(ps.games_played) AS total_games,
			ROUND(AVG(ps.pts)::numeric, 1) AS avg_ppg,
			ROUND(AVG(ps.ast)::numeric, 1) AS avg_apg,
			ROUND(AVG(ps.trb)::numeric, 1) AS avg_rpg,
			ROUND(AVG(ps.fg_pct)::numeric, 3) AS avg_fg_pct,
			ROUND(AVG(ps.three_pt_pct)::numeric, 3) AS avg_3p_pct,
			MAX(ps.pts) AS best_ppg_season,
			MIN(s.year) AS first_season,
			MAX(s.year) AS last_season
		FROM player_stats ps
		JOIN seasons s ON ps.season_id = s.season_id
		WHERE ps.player_id = $1 AND ps.is_total_row = FALSE
		GROUP BY ps.player_id
	`

	c := &store.CareerStats{}
	err := r.db.DB().QueryRowContext(ctx, query, playerID).Scan(
		&c.SeasonsPlayed, &c.TotalGames, &c.AvgPPG, &c.AvgAPG, &c.AvgRPG,
		&c.AvgFGPct, &c.Avg3PPct, &c.BestPPG, &c.FirstSeason, &c.LastSeason,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("career stats for player %d: %w", playerID, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("querying career stats: %w", err)
	}

	return c, nil
}

// Compare returns one averaged row per distinct player in playerIDs.
// Players without non-total rows are absent from the result.
func (r *PlayerRepository) Compare(ctx context.Context, playerIDs []int64) ([]*store.Comparison, error) {
	query := `
		SELECT
			p.player_id,
			p.player_name,
			ROUND(AVG(ps.pts)::numeric, 1) AS avg_ppg,
			ROUND(AVG(ps.ast)::numeric, 1) AS avg_apg,
			ROUND(AVG(ps.trb)::numeric, 1) AS avg_rpg,
			ROUND(AVG(ps.stl)::numeric, 1) AS avg_spg,
			ROUND(AVG(ps.blk)::numeric, 1) AS avg_bpg,
			ROUND(AVG(ps.fg_pct)::numeric, 3) AS avg_fg_pct,
			ROUND(AVG(ps.three_pt_pct)::numeric, 3) AS avg_3p_pct,
			COUNT(DISTINCT ps.season_id) AS seasons
		FROM player_stats ps
		JOIN players p ON ps.player_id = p.player_id
		WHERE ps.player_id = ANY($1) AND ps.is_total_row = FALSE
		GROUP BY p.player_id, p.player_name
		ORDER BY p.player_name
	`

	rows, err := r.db.DB().QueryContext(ctx, query, pq.Int64Array(playerIDs))
	if err != nil {
		return nil, fmt.Errorf("querying comparison: %w", err)
	}
	defer rows.Close()

	result := []*store.Comparison{}
	for rows.Next() {
		c := &store.Comparison{}
		err := rows.Scan(
			&c.PlayerID, &c.PlayerName, &c.AvgPPG, &c.AvgAPG, &c.AvgRPG,
			&c.AvgSPG, &c.AvgBPG, &c.AvgFGPct, &c.Avg3PPct, &c.Seasons,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning comparison: %w", err)
		}
		result = append(result, c)
	}

	return result, rows.Err()
}

// Search finds players whose name contains q, case-insensitively
func (r *PlayerRepository) Search(ctx context.Context, q string) ([]*store.Player, error) {
	query := `
		SELECT player_id, player_name
		FROM players
		WHERE player_name ILIKE $1
		ORDER BY player_name
		LIMIT $2
	`

	rows, err := r.db.DB().QueryContext(ctx, query, containsPattern(q), SearchLimit)
	if err != nil {
		return nil, fmt.Errorf("searching players: %w", err)
	}
	defer rows.Close()

	return scanPlayers(rows, SearchLimit)
}

// scanPlayers reads at most limit rows; limit 0 reads them all
func scanPlayers(rows *sql.Rows, limit int) ([]*store.Player, error) {
	players := []*store.Player{}
	for (limit == 0 || len(players) < limit) && rows.Next() {
		p := &store.Player{}
		if err := rows.Scan(&p.PlayerID, &p.PlayerName); err != nil {
			return nil, fmt.Errorf("scanning player: %w", err)
		}
		players = append(players, p)
	}

	return players, rows.Err()
}
