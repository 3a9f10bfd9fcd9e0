// Package semver implements the version validator with a regular expression.
package semver

import (
	"regexp"

	"go.trai.ch/semvercheck/internal/core/domain"
	"go.trai.ch/zerr"
)

// Pattern is the accepted version shape. Without the (?m) flag RE2 treats
// ^ and $ as start and end of text, so a trailing newline is rejected.
const Pattern = `^[0-9]+\.[0-9]+\.[0-9]+$`

var versionRegex = regexp.MustCompile(Pattern)

// Matcher implements ports.Validator for the major.minor.patch pattern.
type Matcher struct {
	re *regexp.Regexp
}

// NewMatcher creates a new Matcher.
func NewMatcher() *Matcher {
	return &Matcher{re: versionRegex}
}

// Validate checks the candidate against Pattern.
func (m *Matcher) Validate(candidate domain.CandidateVersion) error {
	if m.re.MatchString(candidate.String()) {
		return nil
	}
	return zerr.With(
		zerr.Wrap(domain.ErrPatternMismatch, "invalid version"),
		domain.CandidateKey, candidate.String(),
	)
}
