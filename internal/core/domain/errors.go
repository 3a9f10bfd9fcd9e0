package domain

import "go.trai.ch/zerr"

var (
	// ErrMissingArgument is returned when no candidate version was supplied on the command line.
	ErrMissingArgument = zerr.New("missing version argument")

	// ErrPatternMismatch is returned when a candidate does not match the major.minor.patch pattern.
	ErrPatternMismatch = zerr.New("version does not match semantic versioning pattern major.minor.patch")
)
