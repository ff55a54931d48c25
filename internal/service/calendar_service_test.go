package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/squadra/internal/models"
)

func TestImportFixturesCountsCreatedAndUpdated(t *testing.T) {
	source := new(MockFixturesSource)
	matches := new(MockMatchRepository)
	svc := NewCalendarService(source, matches, testSeason, testLogger())

	fresh := &models.Match{Kickoff: time.Now().Add(7 * 24 * time.Hour), Opponent: "US Ponte"}
	known := &models.Match{Kickoff: time.Now().Add(14 * 24 * time.Hour), Opponent: "AC Collina"}

	source.On("FetchFixtures", mock.Anything, testSeason).Return([]*models.Match{fresh, known}, nil)
	matches.On("UpsertFixture", mock.Anything, fresh).Return(true, nil)
	matches.On("UpsertFixture", mock.Anything, known).Return(false, nil)

	result, err := svc.ImportFixtures(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, result.Total)
	assert.Equal(t, 1, result.Created)
	assert.Equal(t, 1, result.Updated)
	assert.Zero(t, result.Skipped)
	matches.AssertExpectations(t)
}

func TestImportFixturesSkipsFailedUpserts(t *testing.T) {
	source := new(MockFixturesSource)
	matches := new(MockMatchRepository)
	svc := NewCalendarService(source, matches, testSeason, testLogger())

	good := &models.Match{Kickoff: time.Now().Add(7 * 24 * time.Hour), Opponent: "US Ponte"}
	bad := &models.Match{Kickoff: time.Now().Add(14 * 24 * time.Hour), Opponent: "AC Collina"}

	source.On("FetchFixtures", mock.Anything, testSeason).Return([]*models.Match{good, bad}, nil)
	matches.On("UpsertFixture", mock.Anything, good).Return(true, nil)
	matches.On("UpsertFixture", mock.Anything, bad).Return(false, errors.New("constraint violation"))

	result, err := svc.ImportFixtures(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, result.Created)
	assert.Equal(t, 1, result.Skipped)
}

func TestImportFixturesFeedFailure(t *testing.T) {
	source := new(MockFixturesSource)
	matches := new(MockMatchRepository)
	svc := NewCalendarService(source, matches, testSeason, testLogger())

	source.On("FetchFixtures", mock.Anything, testSeason).Return(nil, errors.New("feed unavailable"))

	_, err := svc.ImportFixtures(context.Background())

	assert.Error(t, err)
	matches.AssertNotCalled(t, "UpsertFixture")
}
