package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/semvercheck/internal/core/domain"
)

const (
	usageFormat    = "Usage: %s <VERSION>\n"
	mismatchFormat = "Version '%s' does not match semantic versioning pattern major.minor.patch\n"
)

// runCheck validates the first command line argument. Extra arguments are ignored.
func (c *CLI) runCheck(cmd *cobra.Command, _ []string) error {
	if len(c.args) == 0 {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), usageFormat, c.programName)
		return domain.ErrMissingArgument
	}

	candidate := domain.CandidateVersion(c.args[0])
	err := c.app.Check(cmd.Context(), candidate)
	if errors.Is(err, domain.ErrPatternMismatch) {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), mismatchFormat, candidate)
	}
	return err
}
