// Package ports defines the interfaces between the application core and its adapters.
package ports

import "go.trai.ch/semvercheck/internal/core/domain"

// Validator decides whether a candidate is an acceptable version string.
//
//go:generate mockgen -source=validator.go -destination=mocks/mock_validator.go -package=mocks
type Validator interface {
	// Validate returns nil when the candidate matches and an error wrapping
	// domain.ErrPatternMismatch when it does not.
	Validate(candidate domain.CandidateVersion) error
}
