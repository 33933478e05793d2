package rest

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/fortuna/hoops/internal/logging"
	"github.com/fortuna/hoops/internal/metrics"
	"github.com/fortuna/hoops/internal/store"
	"github.com/fortuna/hoops/internal/store/repository"
	"github.com/gorilla/mux"
)

// Handler contains dependencies for HTTP handlers
type Handler struct {
	db      *store.Database
	version string
	players *repository.PlayerRepository
	teams   *repository.TeamRepository
	seasons *repository.SeasonRepository
	stats   *repository.StatsRepository
	awards  *repository.AwardRepository
}

// NewHandler creates a new handler
func NewHandler(db *store.Database, version string) *Handler {
	return &Handler{
		db:      db,
		version: version,
		players: repository.NewPlayerRepository(db),
		teams:   repository.NewTeamRepository(db),
		seasons: repository.NewSeasonRepository(db),
		stats:   repository.NewStatsRepository(db),
		awards:  repository.NewAwardRepository(db),
	}
}

// Home reports that the API is up
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"message": "NBA API is running!",
		"version": h.version,
	})
}

// HealthCheck pings the connection pool
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	if err := h.db.HealthCheck(r.Context()); err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("health check failed")
		respondError(w, http.StatusInternalServerError, "Database unavailable")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "hoops",
		"version": h.version,
	})
}

// GetPlayers lists players, optionally filtered by team code and season year
func (h *Handler) GetPlayers(w http.ResponseWriter, r *http.Request) {
	filter, err := parsePlayersParams(r.URL.Query())
	if err != nil {
		h.fail(w, r, err, "")
		return
	}

	players, err := h.players.List(r.Context(), filter)
	if err != nil {
		h.fail(w, r, err, "")
		return
	}

	respondJSON(w, http.StatusOK, players)
}

// GetPlayer returns a player with all non-total season rows
func (h *Handler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	playerID, ok := h.playerID(w, r)
	if !ok {
		return
	}

	detail, err := h.players.GetDetail(r.Context(), playerID)
	if err != nil {
		h.fail(w, r, err, "Player not found")
		return
	}

	respondJSON(w, http.StatusOK, detail)
}

// GetCareer returns a player's aggregated career stats
func (h *Handler) GetCareer(w http.ResponseWriter, r *http.Request) {
	playerID, ok := h.playerID(w, r)
	if !ok {
		return
	}

	career, err := h.players.GetCareer(r.Context(), playerID)
	if err != nil {
		h.fail(w, r, err, "No career stats found")
		return
	}

	respondJSON(w, http.StatusOK, career)
}

// ComparePlayers returns averaged stats for two or more players
func (h *Handler) ComparePlayers(w http.ResponseWriter, r *http.Request) {
	ids, err := parseCompareParams(r.URL.Query())
	if err != nil {
		h.fail(w, r, err, "")
		return
	}

	comparison, err := h.players.Compare(r.Context(), ids)
	if err != nil {
		h.fail(w, r, err, "")
		return
	}

	respondJSON(w, http.StatusOK, comparison)
}

// GetTeams returns all teams
func (h *Handler) GetTeams(w http.ResponseWriter, r *http.Request) {
	teams, err := h.teams.GetAll(r.Context())
	if err != nil {
		h.fail(w, r, err, "")
		return
	}

	respondJSON(w, http.StatusOK, teams)
}

// GetSeasons returns all seasons, newest first
func (h *Handler) GetSeasons(w http.ResponseWriter, r *http.Request) {
	seasons, err := h.seasons.GetAll(r.Context())
	if err != nil {
		h.fail(w, r, err, "")
		return
	}

	respondJSON(w, http.StatusOK, seasons)
}

// GetLeaderboard ranks player-seasons by one stat
func (h *Handler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	q, err := parseLeaderboardParams(r.URL.Query())
	if err != nil {
		h.fail(w, r, err, "")
		return
	}

	entries, err := h.stats.Leaderboard(r.Context(), q)
	if err != nil {
		h.fail(w, r, err, "")
		return
	}

	// the ranked value is keyed by the stat name, e.g. {"pts": 30.1}
	payload := make([]map[string]interface{}, 0, len(entries))
	for _, e := range entries {
		payload = append(payload, map[string]interface{}{
			"playerName":   e.PlayerName,
			"teamName":     e.TeamName,
			"year":         e.Year,
			q.Stat:         e.Value,
			"games_played": e.GamesPlayed,
		})
	}

	respondJSON(w, http.StatusOK, payload)
}

// GetStats returns the filtered stat listing
func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	filter, err := parseStatsParams(r.URL.Query())
	if err != nil {
		h.fail(w, r, err, "")
		return
	}

	lines, err := h.stats.List(r.Context(), filter)
	if err != nil {
		h.fail(w, r, err, "")
		return
	}

	respondJSON(w, http.StatusOK, lines)
}

// GetAwards returns all awards
func (h *Handler) GetAwards(w http.ResponseWriter, r *http.Request) {
	awards, err := h.awards.GetAll(r.Context())
	if err != nil {
		h.fail(w, r, err, "")
		return
	}

	respondJSON(w, http.StatusOK, awards)
}

// SearchPlayers matches player names by substring
func (h *Handler) SearchPlayers(w http.ResponseWriter, r *http.Request) {
	term, ok := searchTerm(r.URL.Query())
	if !ok {
		respondJSON(w, http.StatusOK, []*store.Player{})
		return
	}

	players, err := h.players.Search(r.Context(), term)
	if err != nil {
		h.fail(w, r, err, "")
		return
	}

	respondJSON(w, http.StatusOK, players)
}

// NotFound answers unmatched routes and methods
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	respondError(w, http.StatusNotFound, "Resource not found")
}

// playerID reads the {playerID} path variable, answering 400 itself when it is unusable
func (h *Handler) playerID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(mux.Vars(r)["playerID"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid player ID")
		return 0, false
	}
	return id, true
}

// fail maps err to a response: parameter errors are 400, repository.ErrNotFound
// is 404 with notFoundMsg, anything else is a logged 500 with a generic body.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error, notFoundMsg string) {
	var perr *paramError
	switch {
	case errors.As(err, &perr):
		respondError(w, http.StatusBadRequest, perr.message)
	case notFoundMsg != "" && errors.Is(err, repository.ErrNotFound):
		respondError(w, http.StatusNotFound, notFoundMsg)
	default:
		endpoint := routeTemplate(r)
		metrics.RecordQueryError(endpoint)
		logging.Ctx(r.Context()).Error().Err(err).Str("endpoint", endpoint).Msg("request failed")
		respondError(w, http.StatusInternalServerError, msgInternalError)
	}
}
