package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/squadra/internal/models"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return logger
}

func TestCreatePlayerAssignsID(t *testing.T) {
	repo := new(MockPlayerRepository)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*models.Player")).Return(nil)

	svc := NewRosterService(repo, testLogger())
	player := &models.Player{FirstName: "Marco", LastName: "Rossi", Role: "Difensore Centrale"}

	err := svc.CreatePlayer(context.Background(), player)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, player.ID)
	repo.AssertExpectations(t)
}

func TestCreatePlayerRequiresName(t *testing.T) {
	repo := new(MockPlayerRepository)
	svc := NewRosterService(repo, testLogger())

	err := svc.CreatePlayer(context.Background(), &models.Player{Role: "Portiere"})

	assert.ErrorIs(t, err, models.ErrPlayerNameRequired)
	repo.AssertNotCalled(t, "Create")
}

func TestCreatePlayerRejectsBadSpecializations(t *testing.T) {
	repo := new(MockPlayerRepository)
	svc := NewRosterService(repo, testLogger())

	player := &models.Player{
		FirstName: "Luca",
		LastName:  "Bianchi",
		Role:      "Centrocampista Centrale",
		RoleSpecializations: []models.RoleWeight{
			{Role: "Centrocampista Centrale", Weight: 60},
			{Role: "Trequartista", Weight: 30},
		},
	}

	err := svc.CreatePlayer(context.Background(), player)

	assert.ErrorIs(t, err, models.ErrInvalidSpecializations)
	repo.AssertNotCalled(t, "Create")
}

func TestUpdatePlayerValidatesSpecializations(t *testing.T) {
	repo := new(MockPlayerRepository)
	svc := NewRosterService(repo, testLogger())

	player := &models.Player{
		ID:        uuid.New(),
		FirstName: "Luca",
		LastName:  "Bianchi",
		RoleSpecializations: []models.RoleWeight{
			{Role: "Attaccante", Weight: 150},
		},
	}

	err := svc.UpdatePlayer(context.Background(), player)

	assert.ErrorIs(t, err, models.ErrInvalidSpecializations)
	repo.AssertNotCalled(t, "Update")
}

func TestAssignFormationReportsUnassigned(t *testing.T) {
	keeper := &models.Player{ID: uuid.New(), FirstName: "Gigi", LastName: "Neri", Role: "Portiere"}
	striker := &models.Player{ID: uuid.New(), FirstName: "Pippo", LastName: "Verdi", Role: "Attaccante"}
	// No role and no overrides, so nothing can place this player.
	drifter := &models.Player{ID: uuid.New(), FirstName: "Nino", LastName: "Gialli"}

	repo := new(MockPlayerRepository)
	repo.On("GetAll", mock.Anything).Return([]*models.Player{keeper, striker, drifter}, nil)

	svc := NewRosterService(repo, testLogger())
	result, err := svc.AssignFormation(context.Background(), "4-4-2")

	require.NoError(t, err)
	assert.Equal(t, "4-4-2", result.FormationID)
	assert.Equal(t, models.SlotPortiere, result.Assignments[keeper.ID])
	assert.Equal(t, models.SlotAttaccante, result.Assignments[striker.ID])
	assert.Equal(t, []uuid.UUID{drifter.ID}, result.Unassigned)
}

func TestAssignFormationUnknownFormation(t *testing.T) {
	player := &models.Player{ID: uuid.New(), FirstName: "Gigi", LastName: "Neri", Role: "Portiere"}

	repo := new(MockPlayerRepository)
	repo.On("GetAll", mock.Anything).Return([]*models.Player{player}, nil)

	svc := NewRosterService(repo, testLogger())
	result, err := svc.AssignFormation(context.Background(), "9-9-9")

	require.NoError(t, err)
	assert.Empty(t, result.Assignments)
	assert.Equal(t, []uuid.UUID{player.ID}, result.Unassigned)
}
