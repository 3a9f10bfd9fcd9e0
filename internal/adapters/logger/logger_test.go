package logger_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/semvercheck/internal/adapters/logger"
	"go.trai.ch/semvercheck/internal/core/domain"
	"go.trai.ch/zerr"
)

// newTestLogger creates a logger writing to a buffer with colors disabled.
func newTestLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	lg, ok := logger.New().(*logger.Logger)
	require.True(t, ok)
	lg.SetOutput(buf)
	return lg, buf
}

func TestLogger_Error(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		goldenName string
	}{
		{
			name:       "aborted check",
			err:        zerr.Wrap(context.Canceled, "version check aborted"),
			goldenName: "error_aborted",
		},
		{
			name: "mismatch with metadata",
			err: zerr.With(
				zerr.Wrap(domain.ErrPatternMismatch, "invalid version"),
				domain.CandidateKey, "v1.0.0",
			),
			goldenName: "error_mismatch",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, buf := newTestLogger(t)
			lg.Error(tt.err)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestLogger_Error_Nil(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Error(nil)
	assert.Empty(t, buf.String())
}

func TestLogger_SetOutput(t *testing.T) {
	lg, first := newTestLogger(t)

	second := &bytes.Buffer{}
	lg.SetOutput(second)
	lg.Error(domain.ErrMissingArgument)

	assert.Empty(t, first.String())
	assert.Equal(t, "✗ Error: missing version argument\n", second.String())
}
