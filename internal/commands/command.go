// Package commands provides the command interface and implementations.
package commands

import (
	"context"
	"flag"
	"io"

	"tracklet/internal/config"
	"tracklet/internal/scheduler"
)

// Command defines the interface for tracker commands. Commands drive the
// Scheduler only through its public operations; the Scheduler writes its
// own feedback lines, commands write everything else.
type Command interface {
	// Name returns the primary command name.
	Name() string

	// Aliases returns alternative names for the command.
	Aliases() []string

	// Synopsis returns a short description for help output.
	Synopsis() string

	// Usage returns the usage string for help output.
	Usage() string

	// RegisterFlags registers command-specific flags.
	RegisterFlags(fs *flag.FlagSet)

	// Run executes the command against the scheduler.
	// args contains positional arguments after flag parsing.
	// Returns an exit code.
	Run(ctx context.Context, cfg *config.Config, sched *scheduler.Scheduler, args []string, out, errOut io.Writer) int
}
