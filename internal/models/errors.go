package models

import "errors"

// Custom errors
var (
	ErrNotFound         = errors.New("record not found")
	ErrDuplicateKey     = errors.New("duplicate key violation")
	ErrInvalidID        = errors.New("invalid ID format")
	ErrPlayerNameRequired = errors.New("player name is required")
	ErrInvalidSpecializations = errors.New("role specialization weights must sum to 100")
)
