package store

// JSON keys match the field names the web frontend reads.

// Player is a player's identity
type Player struct {
	PlayerID   int    `json:"playerID"`
	PlayerName string `json:"playerName"`
}

// Team is a franchise keyed by its short code
type Team struct {
	TeamCode string `json:"teamCode"`
	TeamName string `json:"teamName"`
}

// Season is a league season identified by its ending year
type Season struct {
	SeasonID int `json:"seasonID"`
	Year     int `json:"year"`
}

// SeasonStat is one non-total player_stats row for a single player
type SeasonStat struct {
	Year          int         `json:"year"`
	Points        NullFloat64 `json:"pts"`
	Assists       NullFloat64 `json:"ast"`
	Rebounds      NullFloat64 `json:"reb"`
	MinutesPlayed NullFloat64 `json:"mp"`
	GamesPlayed   NullInt64   `json:"games_played"`
	GamesStarted  NullInt64   `json:"games_started"`
	FGPct         NullFloat64 `json:"fg_pct"`
	ThreePtPct    NullFloat64 `json:"three_pt_pct"`
	TwoPtPct      NullFloat64 `json:"two_pt_pct"`
	FTPct         NullFloat64 `json:"ft_pct"`
	EFGPct        NullFloat64 `json:"efg_pct"`
	OffRebounds   NullFloat64 `json:"orb"`
	DefRebounds   NullFloat64 `json:"drb"`
	Steals        NullFloat64 `json:"stl"`
	Blocks        NullFloat64 `json:"blk"`
	Turnovers     NullFloat64 `json:"tov"`
	PersonalFouls NullFloat64 `json:"pf"`
	TeamName      NullString  `json:"teamName"`
	Position      NullString  `json:"pos"`
}

// PlayerDetail is a player with every non-total season row, newest first
type PlayerDetail struct {
	Player Player        `json:"player"`
	Stats  []*SeasonStat `json:"stats"`
}

// CareerStats aggregates a player's non-total rows
type CareerStats struct {
	SeasonsPlayed int         `json:"seasons_played"`
	TotalGames    NullInt64   `json:"total_games"`
	AvgPPG        NullFloat64 `json:"avg_ppg"`
	AvgAPG        NullFloat64 `json:"avg_apg"`
	AvgRPG        NullFloat64 `json:"avg_rpg"`
	AvgFGPct      NullFloat64 `json:"avg_fg_pct"`
	Avg3PPct      NullFloat64 `json:"avg_3p_pct"`
	BestPPG       NullFloat64 `json:"best_ppg_season"`
	FirstSeason   int         `json:"first_season"`
	LastSeason    int         `json:"last_season"`
}

// Comparison is one player's averages across their non-total rows
type Comparison struct {
	PlayerID   int         `json:"playerID"`
	PlayerName string      `json:"playerName"`
	AvgPPG     NullFloat64 `json:"avg_ppg"`
	AvgAPG     NullFloat64 `json:"avg_apg"`
	AvgRPG     NullFloat64 `json:"avg_rpg"`
	AvgSPG     NullFloat64 `json:"avg_spg"`
	AvgBPG     NullFloat64 `json:"avg_bpg"`
	AvgFGPct   NullFloat64 `json:"avg_fg_pct"`
	Avg3PPct   NullFloat64 `json:"avg_3p_pct"`
	Seasons    int         `json:"seasons"`
}

// LeaderboardEntry is one player-season ranked by a single stat
type LeaderboardEntry struct {
	PlayerName  string
	TeamName    string
	Year        int
	Value       NullFloat64
	GamesPlayed int
}

// StatLine is a row of the filtered stats listing
type StatLine struct {
	PlayerID      int         `json:"playerID"`
	PlayerName    string      `json:"playerName"`
	TeamName      string      `json:"teamName"`
	TeamCode      string      `json:"teamCode"`
	Year          int         `json:"year"`
	Points        NullFloat64 `json:"pts"`
	Assists       NullFloat64 `json:"ast"`
	Rebounds      NullFloat64 `json:"reb"`
	GamesPlayed   NullInt64   `json:"games_played"`
	MinutesPlayed NullFloat64 `json:"minutes_played"`
	FGPct         NullFloat64 `json:"fg_pct"`
	ThreePtPct    NullFloat64 `json:"three_pt_pct"`
	FTPct         NullFloat64 `json:"ft_pct"`
	Steals        NullFloat64 `json:"stl"`
	Blocks        NullFloat64 `json:"blk"`
	Position      NullString  `json:"pos"`
}

// Award is a season award won by a player
type Award struct {
	PlayerName string     `json:"playerName"`
	Year       int        `json:"year"`
	AwardName  string     `json:"awardName"`
	AwardValue NullString `json:"awardValue"`
}
