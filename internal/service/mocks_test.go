package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/yourusername/squadra/internal/models"
)

// MockPlayerRepository is a mock implementation of PlayerRepository
type MockPlayerRepository struct {
	mock.Mock
}

func (m *MockPlayerRepository) Create(ctx context.Context, player *models.Player) error {
	args := m.Called(ctx, player)
	return args.Error(0)
}

func (m *MockPlayerRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Player, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Player), args.Error(1)
}

func (m *MockPlayerRepository) GetAll(ctx context.Context) ([]*models.Player, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Player), args.Error(1)
}

func (m *MockPlayerRepository) Update(ctx context.Context, player *models.Player) error {
	args := m.Called(ctx, player)
	return args.Error(0)
}

func (m *MockPlayerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockMatchRepository is a mock implementation of MatchRepository
type MockMatchRepository struct {
	mock.Mock
}

func (m *MockMatchRepository) Create(ctx context.Context, match *models.Match) error {
	args := m.Called(ctx, match)
	return args.Error(0)
}

func (m *MockMatchRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Match, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Match), args.Error(1)
}

func (m *MockMatchRepository) GetAll(ctx context.Context) ([]*models.Match, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Match), args.Error(1)
}

func (m *MockMatchRepository) GetUpcoming(ctx context.Context, limit int) ([]*models.Match, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Match), args.Error(1)
}

func (m *MockMatchRepository) GetByDateRange(ctx context.Context, start, end time.Time) ([]*models.Match, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Match), args.Error(1)
}

func (m *MockMatchRepository) Update(ctx context.Context, match *models.Match) error {
	args := m.Called(ctx, match)
	return args.Error(0)
}

func (m *MockMatchRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockMatchRepository) UpsertFixture(ctx context.Context, match *models.Match) (bool, error) {
	args := m.Called(ctx, match)
	return args.Bool(0), args.Error(1)
}

// MockEventRepository is a mock implementation of EventRepository
type MockEventRepository struct {
	mock.Mock
}

func (m *MockEventRepository) Create(ctx context.Context, event *models.MatchEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockEventRepository) GetByMatch(ctx context.Context, matchID uuid.UUID) ([]*models.MatchEvent, error) {
	args := m.Called(ctx, matchID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.MatchEvent), args.Error(1)
}

func (m *MockEventRepository) GetAll(ctx context.Context) ([]*models.MatchEvent, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.MatchEvent), args.Error(1)
}

func (m *MockEventRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockFormationRecordRepository is a mock implementation of
// FormationRecordRepository
type MockFormationRecordRepository struct {
	mock.Mock
}

func (m *MockFormationRecordRepository) Upsert(ctx context.Context, record *models.FormationRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockFormationRecordRepository) GetByMatch(ctx context.Context, matchID uuid.UUID) ([]*models.FormationRecord, error) {
	args := m.Called(ctx, matchID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.FormationRecord), args.Error(1)
}

func (m *MockFormationRecordRepository) GetAll(ctx context.Context) ([]*models.FormationRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.FormationRecord), args.Error(1)
}

func (m *MockFormationRecordRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockFeeRepository is a mock implementation of FeeRepository
type MockFeeRepository struct {
	mock.Mock
}

func (m *MockFeeRepository) Create(ctx context.Context, payment *models.FeePayment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

func (m *MockFeeRepository) GetByPlayer(ctx context.Context, playerID uuid.UUID, season string) ([]*models.FeePayment, error) {
	args := m.Called(ctx, playerID, season)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.FeePayment), args.Error(1)
}

func (m *MockFeeRepository) GetBySeason(ctx context.Context, season string) ([]*models.FeePayment, error) {
	args := m.Called(ctx, season)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.FeePayment), args.Error(1)
}

// MockFixturesSource is a mock implementation of FixturesSource
type MockFixturesSource struct {
	mock.Mock
}

func (m *MockFixturesSource) FetchFixtures(ctx context.Context, season string) ([]*models.Match, error) {
	args := m.Called(ctx, season)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Match), args.Error(1)
}
