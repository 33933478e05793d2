package repository

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTeamsGetAll(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT team_code, team_name FROM teams ORDER BY team_name")).
		WillReturnRows(sqlmock.NewRows([]string{"team_code", "team_name"}).
			AddRow("ATL", "Atlanta Hawks").
			AddRow("BOS", "Boston Celtics"))

	teams, err := NewTeamRepository(db).GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, teams, 2)
	assert.Equal(t, "BOS", teams[1].TeamCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSeasonsGetAll(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT season_id, year FROM seasons ORDER BY year DESC")).
		WillReturnRows(sqlmock.NewRows([]string{"season_id", "year"}).
			AddRow(3, 2024).
			AddRow(2, 2023))

	seasons, err := NewSeasonRepository(db).GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, seasons, 2)
	assert.Equal(t, 2024, seasons[0].Year)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAwardsGetAll(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`FROM player_awards a .*ORDER BY s.year DESC, a.award_name`).
		WillReturnRows(sqlmock.NewRows([]string{"player_name", "year", "award_name", "award_value"}).
			AddRow("Nikola Jokic", 2024, "MVP", "1").
			AddRow("Victor Wembanyama", 2024, "ROY", nil))

	awards, err := NewAwardRepository(db).GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, awards, 2)
	assert.Equal(t, "MVP", awards[0].AwardName)
	assert.True(t, awards[0].AwardValue.Valid)
	assert.False(t, awards[1].AwardValue.Valid)
	assert.NoError(t, mock.ExpectationsWereMet())
}
