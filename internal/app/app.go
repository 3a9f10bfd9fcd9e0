// Package app implements the application layer for semvercheck.
package app

import (
	"context"

	"go.trai.ch/semvercheck/internal/core/domain"
	"go.trai.ch/semvercheck/internal/core/ports"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	validator ports.Validator
}

// New creates a new App instance.
func New(validator ports.Validator) *App {
	return &App{validator: validator}
}

// Check validates a single candidate version.
// It returns nil for a match, an error wrapping domain.ErrPatternMismatch for
// a mismatch, and an error wrapping ctx.Err() if ctx is already done.
func (a *App) Check(ctx context.Context, candidate domain.CandidateVersion) error {
	if err := ctx.Err(); err != nil {
		return zerr.With(zerr.Wrap(err, "version check aborted"), domain.CandidateKey, candidate.String())
	}

	return a.validator.Validate(candidate)
}

// Components bundles everything the entry point needs.
type Components struct {
	App    *App
	Logger ports.Logger
}

// NewComponents creates a new Components bundle.
func NewComponents(app *App, log ports.Logger) *Components {
	return &Components{
		App:    app,
		Logger: log,
	}
}
