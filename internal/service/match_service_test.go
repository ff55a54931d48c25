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

func newMatchFixture() (*MockMatchRepository, *MockEventRepository, *MockFormationRecordRepository, *MatchService) {
	matches := new(MockMatchRepository)
	events := new(MockEventRepository)
	records := new(MockFormationRecordRepository)
	svc := NewMatchService(matches, events, records, testLogger())
	return matches, events, records, svc
}

func TestCreateMatchDefaultsStatus(t *testing.T) {
	matches, _, _, svc := newMatchFixture()
	matches.On("Create", mock.Anything, mock.AnythingOfType("*models.Match")).Return(nil)

	match := &models.Match{Kickoff: time.Now().Add(48 * time.Hour), Opponent: "US Ponte"}
	err := svc.CreateMatch(context.Background(), match)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, match.ID)
	assert.Equal(t, models.MatchStatusScheduled, match.Status)
	matches.AssertExpectations(t)
}

func TestRecordEventVerifiesMatch(t *testing.T) {
	matches, events, _, svc := newMatchFixture()

	matchID := uuid.New()
	matches.On("GetByID", mock.Anything, matchID).Return(nil, models.ErrNotFound)

	playerID := uuid.New()
	err := svc.RecordEvent(context.Background(), &models.MatchEvent{
		MatchID:  matchID,
		PlayerID: &playerID,
		Type:     models.EventGoal,
		Minute:   30,
		Half:     1,
	})

	assert.ErrorIs(t, err, models.ErrNotFound)
	events.AssertNotCalled(t, "Create")
}

func TestRecordEventPersists(t *testing.T) {
	matches, events, _, svc := newMatchFixture()

	match := &models.Match{ID: uuid.New(), Opponent: "US Ponte", Status: models.MatchStatusInProgress}
	matches.On("GetByID", mock.Anything, match.ID).Return(match, nil)
	events.On("Create", mock.Anything, mock.AnythingOfType("*models.MatchEvent")).Return(nil)

	playerID := uuid.New()
	event := &models.MatchEvent{MatchID: match.ID, PlayerID: &playerID, Type: models.EventYellowCard, Minute: 55, Half: 2}
	err := svc.RecordEvent(context.Background(), event)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, event.ID)
	events.AssertExpectations(t)
}

func TestSetCallUpVerifiesMatch(t *testing.T) {
	matches, _, records, svc := newMatchFixture()

	matchID := uuid.New()
	matches.On("GetByID", mock.Anything, matchID).Return(nil, models.ErrNotFound)

	err := svc.SetCallUp(context.Background(), &models.FormationRecord{
		MatchID:  matchID,
		PlayerID: uuid.New(),
		Status:   models.StatusStarter,
	})

	assert.ErrorIs(t, err, models.ErrNotFound)
	records.AssertNotCalled(t, "Upsert")
}

func TestSummaryRollsUpMatchData(t *testing.T) {
	matches, events, records, svc := newMatchFixture()

	own, opp := 3, 1
	match := &models.Match{
		ID:            uuid.New(),
		Opponent:      "US Ponte",
		Status:        models.MatchStatusCompleted,
		OwnScore:      &own,
		OpponentScore: &opp,
	}
	scorer := uuid.New()

	matches.On("GetByID", mock.Anything, match.ID).Return(match, nil)
	events.On("GetByMatch", mock.Anything, match.ID).Return([]*models.MatchEvent{
		{ID: uuid.New(), MatchID: match.ID, PlayerID: &scorer, Type: models.EventGoal, Minute: 10, Half: 1},
		{ID: uuid.New(), MatchID: match.ID, PlayerID: &scorer, Type: models.EventGoal, Minute: 70, Half: 2},
	}, nil)
	records.On("GetByMatch", mock.Anything, match.ID).Return([]*models.FormationRecord{
		{ID: uuid.New(), MatchID: match.ID, PlayerID: scorer, Status: models.StatusStarter, MinutesPlayed: 90},
	}, nil)

	summary, err := svc.Summary(context.Background(), match.ID)

	require.NoError(t, err)
	require.Len(t, summary.Scorers, 1)
	assert.Equal(t, 2, summary.Scorers[0].Goals)
	assert.Equal(t, 1, summary.Starters)
	require.NotNil(t, summary.Outcome)
	assert.Equal(t, models.OutcomeWin, *summary.Outcome)
}
