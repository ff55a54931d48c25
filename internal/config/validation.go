// Package config provides configuration management for the Squadra application.
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/yourusername/squadra/internal/formation"
)

// CustomValidator wraps the validator with custom validation rules
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator creates a new validator with custom validation functions
func NewValidator() *CustomValidator {
	v := validator.New()

	// Registration only fails for an empty tag, which cannot happen here.
	_ = v.RegisterValidation("environment", validateEnvironment)
	_ = v.RegisterValidation("loglevel", validateLogLevel)
	_ = v.RegisterValidation("formation", validateFormation)

	return &CustomValidator{validator: v}
}

// Validate validates the entire configuration
func Validate(cfg *Config) error {
	cv := NewValidator()
	return cv.Validate(cfg)
}

// Validate validates the configuration using registered validation rules
func (cv *CustomValidator) Validate(cfg *Config) error {
	err := cv.validator.Struct(cfg)
	if err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			return formatValidationErrors(validationErrors)
		}
		return fmt.Errorf("validation failed: %w", err)
	}

	return validateCrossField(cfg)
}

// validateEnvironment validates the environment field
func validateEnvironment(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "development", "staging", "production":
		return true
	default:
		return false
	}
}

// validateLogLevel validates the log level field
func validateLogLevel(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "debug", "info", "warn", "error":
		return true
	default:
		return false
	}
}

// validateFormation checks the identifier against the static formation table
func validateFormation(fl validator.FieldLevel) bool {
	return formation.IsKnown(fl.Field().String())
}

// validateCrossField performs validations spanning multiple sections
func validateCrossField(cfg *Config) error {
	if cfg.FixturesFeed.Enabled && cfg.FixturesFeed.URL == "" {
		return fmt.Errorf("fixtures_feed.url is required when the fixtures feed is enabled")
	}
	if cfg.Server.Port == cfg.Server.HealthPort {
		return fmt.Errorf("server.port and server.health_port must differ")
	}
	return nil
}

// formatValidationErrors converts validator errors into a readable message
func formatValidationErrors(errs validator.ValidationErrors) error {
	messages := make([]string, 0, len(errs))
	for _, e := range errs {
		messages = append(messages, fmt.Sprintf("%s failed on '%s'", e.Namespace(), e.Tag()))
	}
	return fmt.Errorf("invalid configuration: %s", strings.Join(messages, "; "))
}
