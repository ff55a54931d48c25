package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/squadra/internal/models"
)

func newStatsFixture() (*MockPlayerRepository, *MockMatchRepository, *MockEventRepository, *MockFormationRecordRepository, *StatsService) {
	players := new(MockPlayerRepository)
	matches := new(MockMatchRepository)
	events := new(MockEventRepository)
	records := new(MockFormationRecordRepository)
	svc := NewStatsService(players, matches, events, records, time.Minute, testLogger())
	return players, matches, events, records, svc
}

func TestSeasonStatsComputesFromRepositories(t *testing.T) {
	players, matches, events, records, svc := newStatsFixture()

	own, opp := 2, 1
	playerID := uuid.New()
	match := &models.Match{
		ID:            uuid.New(),
		Kickoff:       time.Now().Add(-24 * time.Hour),
		Opponent:      "US Ponte",
		Status:        models.MatchStatusCompleted,
		OwnScore:      &own,
		OpponentScore: &opp,
	}

	players.On("GetAll", mock.Anything).Return([]*models.Player{
		{ID: playerID, FirstName: "Marco", LastName: "Rossi", Role: "Attaccante"},
	}, nil)
	matches.On("GetAll", mock.Anything).Return([]*models.Match{match}, nil)
	events.On("GetAll", mock.Anything).Return([]*models.MatchEvent{
		{ID: uuid.New(), MatchID: match.ID, PlayerID: &playerID, Type: models.EventGoal, Minute: 12, Half: 1},
	}, nil)
	records.On("GetAll", mock.Anything).Return([]*models.FormationRecord{
		{ID: uuid.New(), MatchID: match.ID, PlayerID: playerID, Status: models.StatusStarter, MinutesPlayed: 90},
	}, nil)

	all, err := svc.SeasonStats(context.Background())

	require.NoError(t, err)
	require.Contains(t, all, playerID)
	assert.Equal(t, 1, all[playerID].Goals)
	assert.Equal(t, 90, all[playerID].MinutesPlayed)
	assert.Equal(t, 1, all[playerID].Wins)
}

func TestSeasonStatsUsesCache(t *testing.T) {
	players, matches, events, records, svc := newStatsFixture()

	players.On("GetAll", mock.Anything).Return([]*models.Player{}, nil).Once()
	matches.On("GetAll", mock.Anything).Return([]*models.Match{}, nil).Once()
	events.On("GetAll", mock.Anything).Return([]*models.MatchEvent{}, nil).Once()
	records.On("GetAll", mock.Anything).Return([]*models.FormationRecord{}, nil).Once()

	_, err := svc.SeasonStats(context.Background())
	require.NoError(t, err)

	// Second read must be served from cache; the Once expectations above
	// fail the test if the repositories are hit again.
	_, err = svc.SeasonStats(context.Background())
	require.NoError(t, err)

	players.AssertExpectations(t)
	matches.AssertExpectations(t)
	events.AssertExpectations(t)
	records.AssertExpectations(t)
}

func TestInvalidateForcesRecompute(t *testing.T) {
	players, matches, events, records, svc := newStatsFixture()

	players.On("GetAll", mock.Anything).Return([]*models.Player{}, nil).Twice()
	matches.On("GetAll", mock.Anything).Return([]*models.Match{}, nil).Twice()
	events.On("GetAll", mock.Anything).Return([]*models.MatchEvent{}, nil).Twice()
	records.On("GetAll", mock.Anything).Return([]*models.FormationRecord{}, nil).Twice()

	_, err := svc.SeasonStats(context.Background())
	require.NoError(t, err)

	svc.Invalidate()

	_, err = svc.SeasonStats(context.Background())
	require.NoError(t, err)

	players.AssertExpectations(t)
}

func TestPlayerStatsZeroRowForInactivePlayer(t *testing.T) {
	players, matches, events, records, svc := newStatsFixture()

	playerID := uuid.New()
	players.On("GetByID", mock.Anything, playerID).Return(&models.Player{ID: playerID, FirstName: "Nino", LastName: "Gialli"}, nil)
	players.On("GetAll", mock.Anything).Return([]*models.Player{}, nil)
	matches.On("GetAll", mock.Anything).Return([]*models.Match{}, nil)
	events.On("GetAll", mock.Anything).Return([]*models.MatchEvent{}, nil)
	records.On("GetAll", mock.Anything).Return([]*models.FormationRecord{}, nil)

	st, err := svc.PlayerStats(context.Background(), playerID)

	require.NoError(t, err)
	assert.Equal(t, playerID, st.PlayerID)
	assert.Zero(t, st.MinutesPlayed)
	assert.Nil(t, st.AverageRating)
}

func TestPlayerStatsUnknownPlayer(t *testing.T) {
	players, _, _, _, svc := newStatsFixture()

	playerID := uuid.New()
	players.On("GetByID", mock.Anything, playerID).Return(nil, models.ErrNotFound)

	_, err := svc.PlayerStats(context.Background(), playerID)

	assert.ErrorIs(t, err, models.ErrNotFound)
}
