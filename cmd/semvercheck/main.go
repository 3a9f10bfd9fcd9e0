// Package main is the entry point for the semvercheck CI gate.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/semvercheck/cmd/semvercheck/commands"
	"go.trai.ch/semvercheck/internal/app"
	"go.trai.ch/semvercheck/internal/core/domain"
	_ "go.trai.ch/semvercheck/internal/wiring"
)

// ComponentProvider is a function that returns the application components.
type ComponentProvider func(context.Context) (*app.Components, func(), error)

// outputSetter is implemented by loggers whose destination can be redirected.
type outputSetter interface {
	SetOutput(w io.Writer)
}

func main() {
	os.Exit(run(context.Background(), os.Args, os.Stdout, os.Stderr, graftComponents))
}

func graftComponents(ctx context.Context) (*app.Components, func(), error) {
	c, _, err := graft.ExecuteFor[*app.Components](ctx)
	return c, func() {}, err
}

// run executes the gate for argv (program name first) and returns the exit status.
func run(
	ctx context.Context,
	argv []string,
	stdout, stderr io.Writer,
	provider ComponentProvider,
) int {
	// 0. Context with signal handling
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// 1. Initialize application components
	components, cleanup, err := provider(ctx)
	if err != nil {
		// Logger is not available yet if initialization failed
		_, _ = fmt.Fprintln(stderr, "Error: "+err.Error())
		return domain.ExitInvalid
	}
	defer cleanup()

	if l, ok := components.Logger.(outputSetter); ok {
		l.SetOutput(stderr)
	}

	// 2. Interface - CLI
	programName, args := splitArgv(argv)
	cli := commands.New(components.App)
	cli.SetProgramName(programName)
	cli.SetArgs(args)
	cli.SetOutput(stdout, stderr)

	// 3. Execution
	err = cli.Execute(ctx)
	if err != nil && !isDiagnosed(err) {
		components.Logger.Error(err)
	}
	return domain.ExitStatusFor(err)
}

// isDiagnosed reports whether the CLI already wrote a diagnostic for err.
func isDiagnosed(err error) bool {
	return errors.Is(err, domain.ErrPatternMismatch) || errors.Is(err, domain.ErrMissingArgument)
}

func splitArgv(argv []string) (string, []string) {
	if len(argv) == 0 {
		return "", []string{}
	}
	return argv[0], argv[1:]
}
