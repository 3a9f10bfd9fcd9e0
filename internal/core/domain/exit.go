package domain

import "errors"

const (
	// ExitValid is the status for a candidate that matches the pattern.
	ExitValid = 0

	// ExitInvalid is the status for a candidate that does not match, or for an internal failure.
	ExitInvalid = 1

	// ExitUsage is the status for an invocation without a candidate.
	ExitUsage = 2
)

// ExitStatusFor maps the outcome of a check onto a process exit status.
func ExitStatusFor(err error) int {
	switch {
	case err == nil:
		return ExitValid
	case errors.Is(err, ErrMissingArgument):
		return ExitUsage
	default:
		return ExitInvalid
	}
}
