package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/yourusername/squadra/internal/models"
	"github.com/yourusername/squadra/internal/repository"
)

// ErrNonPositiveAmount is returned when a fee payment amount is zero or
// negative
var ErrNonPositiveAmount = errors.New("payment amount must be positive")

// FeesService tracks membership fee payments against the configured
// season fee
type FeesService struct {
	fees      repository.FeeRepository
	players   repository.PlayerRepository
	seasonFee decimal.Decimal
	season    string
	logger    *logrus.Logger
}

// NewFeesService creates a new fees service. seasonFee is the full
// amount due per player for the configured season.
func NewFeesService(
	fees repository.FeeRepository,
	players repository.PlayerRepository,
	seasonFee decimal.Decimal,
	season string,
	logger *logrus.Logger,
) *FeesService {
	return &FeesService{
		fees:      fees,
		players:   players,
		seasonFee: seasonFee,
		season:    season,
		logger:    logger,
	}
}

// RecordPayment persists a fee installment for a player
func (s *FeesService) RecordPayment(ctx context.Context, payment *models.FeePayment) error {
	if payment.ID == uuid.Nil {
		payment.ID = uuid.New()
	}
	if payment.Season == "" {
		payment.Season = s.season
	}
	if payment.PaidAt.IsZero() {
		payment.PaidAt = time.Now()
	}
	if !payment.Amount.IsPositive() {
		return ErrNonPositiveAmount
	}

	if _, err := s.players.GetByID(ctx, payment.PlayerID); err != nil {
		return fmt.Errorf("failed to verify player: %w", err)
	}

	if err := s.fees.Create(ctx, payment); err != nil {
		return err
	}

	s.logger.WithFields(logrus.Fields{
		"player_id": payment.PlayerID,
		"amount":    payment.Amount.String(),
		"season":    payment.Season,
	}).Info("Fee payment recorded")

	return nil
}

// Balance returns a player's fee position for the configured season
func (s *FeesService) Balance(ctx context.Context, playerID uuid.UUID) (*models.FeeBalance, error) {
	if _, err := s.players.GetByID(ctx, playerID); err != nil {
		return nil, err
	}

	payments, err := s.fees.GetByPlayer(ctx, playerID, s.season)
	if err != nil {
		return nil, fmt.Errorf("failed to load payments: %w", err)
	}

	paid := decimal.Zero
	for _, p := range payments {
		paid = paid.Add(p.Amount)
	}

	outstanding := s.seasonFee.Sub(paid)
	if outstanding.IsNegative() {
		outstanding = decimal.Zero
	}

	return &models.FeeBalance{
		PlayerID:    playerID,
		Season:      s.season,
		Due:         s.seasonFee,
		Paid:        paid,
		Outstanding: outstanding,
	}, nil
}

// SeasonBalances returns balances for every rostered player
func (s *FeesService) SeasonBalances(ctx context.Context) ([]*models.FeeBalance, error) {
	players, err := s.players.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load players: %w", err)
	}

	payments, err := s.fees.GetBySeason(ctx, s.season)
	if err != nil {
		return nil, fmt.Errorf("failed to load payments: %w", err)
	}

	paidByPlayer := make(map[uuid.UUID]decimal.Decimal)
	for _, p := range payments {
		paidByPlayer[p.PlayerID] = paidByPlayer[p.PlayerID].Add(p.Amount)
	}

	balances := make([]*models.FeeBalance, 0, len(players))
	for _, player := range players {
		paid := paidByPlayer[player.ID]
		outstanding := s.seasonFee.Sub(paid)
		if outstanding.IsNegative() {
			outstanding = decimal.Zero
		}
		balances = append(balances, &models.FeeBalance{
			PlayerID:    player.ID,
			Season:      s.season,
			Due:         s.seasonFee,
			Paid:        paid,
			Outstanding: outstanding,
		})
	}

	return balances, nil
}
