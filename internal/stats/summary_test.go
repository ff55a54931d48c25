package stats

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/squadra/internal/models"
)

func TestSummarizeRollup(t *testing.T) {
	m := completedMatch(3, 1)
	scorer := uuid.New()
	other := uuid.New()
	unrelated := completedMatch(0, 0)

	benchIn := record(m.ID, other, models.StatusBench, 15)

	sum := Summarize(m,
		[]*models.MatchEvent{
			event(m.ID, scorer, models.EventGoal),
			event(m.ID, scorer, models.EventGoal),
			event(m.ID, other, models.EventGoal),
			event(m.ID, other, models.EventYellowCard),
			// Belongs to another match, must be ignored.
			event(unrelated.ID, scorer, models.EventRedCard),
		},
		[]*models.FormationRecord{
			record(m.ID, scorer, models.StatusStarter, 90),
			benchIn,
			record(m.ID, uuid.New(), models.StatusUnavailable, 0),
			record(unrelated.ID, scorer, models.StatusStarter, 90),
		},
	)

	assert.True(t, sum.Registered)
	require.NotNil(t, sum.Outcome)
	assert.Equal(t, models.OutcomeWin, *sum.Outcome)

	require.Len(t, sum.Scorers, 2)
	assert.Equal(t, ScorerLine{PlayerID: scorer, Goals: 2}, sum.Scorers[0])
	assert.Equal(t, ScorerLine{PlayerID: other, Goals: 1}, sum.Scorers[1])

	assert.Equal(t, 1, sum.YellowCards)
	assert.Equal(t, 0, sum.RedCards)
	assert.Equal(t, 1, sum.Starters)
	assert.Equal(t, 1, sum.BenchUsed)
	assert.Equal(t, 1, sum.Unavailable)
}

func TestSummarizeScheduledMatch(t *testing.T) {
	m := &models.Match{ID: uuid.New(), Status: models.MatchStatusScheduled}

	sum := Summarize(m, nil, nil)

	assert.False(t, sum.Registered)
	assert.Nil(t, sum.Outcome)
	assert.Empty(t, sum.Scorers)
}
