// Package service wires repositories, the position resolver, and the stats
// aggregator into the operations the API and CLIs expose.
package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/yourusername/squadra/internal/formation"
	"github.com/yourusername/squadra/internal/metrics"
	"github.com/yourusername/squadra/internal/models"
	"github.com/yourusername/squadra/internal/repository"
)

// RosterService manages the player roster and formation assignments
type RosterService struct {
	players repository.PlayerRepository
	logger  *logrus.Logger
}

// NewRosterService creates a new roster service
func NewRosterService(players repository.PlayerRepository, logger *logrus.Logger) *RosterService {
	return &RosterService{players: players, logger: logger}
}

// ListPlayers returns the full roster
func (s *RosterService) ListPlayers(ctx context.Context) ([]*models.Player, error) {
	players, err := s.players.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}
	metrics.UpdateRosterSize(len(players))
	return players, nil
}

// GetPlayer returns one player by id
func (s *RosterService) GetPlayer(ctx context.Context, id uuid.UUID) (*models.Player, error) {
	return s.players.GetByID(ctx, id)
}

// CreatePlayer validates and persists a new player
func (s *RosterService) CreatePlayer(ctx context.Context, player *models.Player) error {
	if player.ID == uuid.Nil {
		player.ID = uuid.New()
	}
	if player.FirstName == "" && player.LastName == "" {
		return models.ErrPlayerNameRequired
	}
	// The resolver tolerates partial specialization data; the write
	// boundary does not.
	if err := player.ValidateSpecializations(); err != nil {
		return err
	}

	if err := s.players.Create(ctx, player); err != nil {
		return err
	}

	s.logger.WithFields(logrus.Fields{
		"player_id": player.ID,
		"name":      player.FullName(),
	}).Info("Player created")

	return nil
}

// UpdatePlayer validates and persists changes to an existing player
func (s *RosterService) UpdatePlayer(ctx context.Context, player *models.Player) error {
	if err := player.ValidateSpecializations(); err != nil {
		return err
	}
	return s.players.Update(ctx, player)
}

// DeletePlayer removes a player from the roster
func (s *RosterService) DeletePlayer(ctx context.Context, id uuid.UUID) error {
	if err := s.players.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.WithField("player_id", id).Info("Player deleted")
	return nil
}

// AssignmentResult is the outcome of a formation assignment run, including
// the players no rule could place.
type AssignmentResult struct {
	FormationID string               `json:"formation_id"`
	Assignments formation.Assignment `json:"assignments"`
	Unassigned  []uuid.UUID          `json:"unassigned"`
}

// AssignFormation maps the current roster onto the given formation.
// Unassigned players are reported, not an error: the board renders them as
// the bench list.
func (s *RosterService) AssignFormation(ctx context.Context, formationID string) (*AssignmentResult, error) {
	players, err := s.players.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load roster: %w", err)
	}

	assigned := formation.AssignAll(players, formationID)

	result := &AssignmentResult{
		FormationID: formationID,
		Assignments: assigned,
	}
	for _, p := range players {
		if _, ok := assigned[p.ID]; !ok {
			result.Unassigned = append(result.Unassigned, p.ID)
		}
	}

	metrics.RecordAssignment(len(result.Unassigned))

	s.logger.WithFields(logrus.Fields{
		"formation":  formationID,
		"assigned":   len(assigned),
		"unassigned": len(result.Unassigned),
	}).Debug("Formation assignment computed")

	return result, nil
}
