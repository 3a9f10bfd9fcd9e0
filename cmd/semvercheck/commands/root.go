// Package commands implements the CLI for semvercheck.
package commands

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/semvercheck/internal/core/domain"
)

// defaultProgramName is used in the usage line when no invocation name was set.
const defaultProgramName = "semvercheck"

// CLI represents the command line interface for semvercheck.
type CLI struct {
	app         Application
	rootCmd     *cobra.Command
	programName string
	args        []string
}

// Application represents the application logic interface.
type Application interface {
	Check(ctx context.Context, candidate domain.CandidateVersion) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	c := &CLI{
		app:         a,
		programName: defaultProgramName,
		args:        []string{},
	}

	// Candidates are kept on the CLI and never handed to cobra, so no
	// argument can be taken for a flag or a hidden completion command.
	rootCmd := &cobra.Command{
		Use:                "semvercheck <version>",
		Short:              "Check that a version string matches major.minor.patch",
		Args:               cobra.NoArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE:               c.runCheck,
	}
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SetArgs([]string{})

	c.rootCmd = rootCmd
	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	return c.rootCmd.ExecuteContext(ctx)
}

// SetArgs sets the command line arguments, without the program name.
func (c *CLI) SetArgs(args []string) {
	if args == nil {
		args = []string{}
	}
	c.args = args
}

// SetProgramName sets the invocation name shown in the usage line.
func (c *CLI) SetProgramName(name string) {
	if name != "" {
		c.programName = name
	}
}

// SetOutput sets the output and error streams for the root command.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
