// Package output builds termenv outputs with a consistent color profile.
package output

import (
	"io"
	"os"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Mode describes where output is going.
type Mode int

const (
	// ModePlain is a pipe or file outside CI.
	ModePlain Mode = iota
	// ModeTerminal is an interactive terminal.
	ModeTerminal
	// ModeCI is a CI job log, which renders ANSI colors but is not a TTY.
	ModeCI
)

// fder is implemented by *os.File.
type fder interface {
	Fd() uintptr
}

// DetectMode inspects the CI variable and whether w is a terminal.
func DetectMode(w io.Writer) Mode {
	if ci := os.Getenv("CI"); ci == "true" || ci == "1" {
		return ModeCI
	}
	if f, ok := w.(fder); ok && term.IsTerminal(int(f.Fd())) { //nolint:gosec // fd fits in int
		return ModeTerminal
	}
	return ModePlain
}

// ColorProfile returns the profile for mode. NO_COLOR always wins.
func ColorProfile(mode Mode) termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}

	switch mode {
	case ModeCI:
		return termenv.ANSI
	case ModeTerminal:
		return termenv.EnvColorProfile()
	default:
		return termenv.Ascii
	}
}

// New creates a termenv.Output on w, defaulting to stderr when w is nil.
func New(w io.Writer, opts ...termenv.OutputOption) *termenv.Output {
	if w == nil {
		w = os.Stderr
	}

	opts = append(opts,
		termenv.WithProfile(ColorProfile(DetectMode(w))),
		termenv.WithTTY(true),
	)

	return termenv.NewOutput(w, opts...)
}
