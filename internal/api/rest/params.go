package rest

import (
	"errors"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/fortuna/hoops/internal/store/repository"
	"github.com/go-playground/validator/v10"
)

// MinSearchLength is the shortest query /search sends to the database
const MinSearchLength = 2

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// paramError is a client error reported as 400 with its message
type paramError struct {
	message string
}

func (e *paramError) Error() string {
	return e.message
}

func badParam(message string) error {
	return &paramError{message: message}
}

// fieldMessages maps a struct field to the message shown when it fails validation
var fieldMessages = map[string]string{
	"Stat":      "Invalid stat parameter",
	"Season":    "Invalid season parameter",
	"Limit":     "Invalid limit parameter",
	"PlayerIDs": "Please provide at least 2 player IDs",
}

// validateParams runs struct validation and converts the first failure into a paramError
func validateParams(p interface{}) error {
	err := getValidator().Struct(p)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		if msg, ok := fieldMessages[verrs[0].StructField()]; ok {
			return badParam(msg)
		}
		return badParam("Invalid " + strings.ToLower(verrs[0].Field()) + " parameter")
	}
	return err
}

// optionalInt parses an integer query parameter; absent or empty yields def
func optionalInt(q url.Values, name string, def int) (int, error) {
	raw := strings.TrimSpace(q.Get(name))
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, badParam("Invalid " + name + " parameter")
	}
	return v, nil
}

// optionalSeason parses the season year. Any integer is accepted; a year
// with no rows simply matches nothing.
func optionalSeason(q url.Values) (*int, error) {
	raw := strings.TrimSpace(q.Get("season"))
	if raw == "" {
		return nil, nil
	}
	year, err := strconv.Atoi(raw)
	if err != nil {
		return nil, badParam(fieldMessages["Season"])
	}
	return &year, nil
}

func parsePlayersParams(q url.Values) (repository.PlayerFilter, error) {
	season, err := optionalSeason(q)
	if err != nil {
		return repository.PlayerFilter{}, err
	}
	return repository.PlayerFilter{TeamCode: strings.TrimSpace(q.Get("team")), Season: season}, nil
}

type compareParams struct {
	PlayerIDs []int64 `validate:"min=2"`
}

// parseCompareParams requires at least two playerID values and returns the
// distinct ones in request order
func parseCompareParams(q url.Values) ([]int64, error) {
	var ids []int64
	for _, raw := range q["playerID"] {
		id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
		if err != nil || id <= 0 {
			return nil, badParam("Invalid playerID parameter")
		}
		ids = append(ids, id)
	}

	if err := validateParams(compareParams{PlayerIDs: ids}); err != nil {
		return nil, err
	}

	seen := make(map[int64]bool, len(ids))
	distinct := ids[:0]
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			distinct = append(distinct, id)
		}
	}
	return distinct, nil
}

type leaderboardParams struct {
	Limit int `validate:"min=0"`
}

func parseLeaderboardParams(q url.Values) (repository.LeaderboardQuery, error) {
	stat := q.Get("stat")
	if _, present := q["stat"]; !present {
		stat = "pts"
	}
	// the stat check comes first so an invalid stat is a 400 whatever else is sent
	if !repository.IsLeaderboardStat(stat) {
		return repository.LeaderboardQuery{}, badParam(fieldMessages["Stat"])
	}

	season, err := optionalSeason(q)
	if err != nil {
		return repository.LeaderboardQuery{}, err
	}
	limit, err := optionalInt(q, "limit", repository.DefaultLeaderboardLimit)
	if err != nil {
		return repository.LeaderboardQuery{}, err
	}

	if err := validateParams(leaderboardParams{Limit: limit}); err != nil {
		return repository.LeaderboardQuery{}, err
	}
	return repository.LeaderboardQuery{Stat: stat, Season: season, Limit: limit}, nil
}

func parseStatsParams(q url.Values) (repository.StatsFilter, error) {
	season, err := optionalSeason(q)
	if err != nil {
		return repository.StatsFilter{}, err
	}
	return repository.StatsFilter{
		Player:   strings.TrimSpace(q.Get("player")),
		TeamCode: strings.TrimSpace(q.Get("team")),
		Season:   season,
	}, nil
}

// searchTerm returns q and whether it is long enough to query
func searchTerm(q url.Values) (string, bool) {
	term := q.Get("q")
	return term, utf8.RuneCountInString(term) >= MinSearchLength
}
