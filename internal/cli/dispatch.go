// Package cli parses input and dispatches commands, both for one-shot
// argv invocations and for the interactive prompt.
package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"tracklet/internal/commands"
	"tracklet/internal/config"
	"tracklet/internal/exitcode"
	"tracklet/internal/scheduler"
)

// Dispatcher resolves a verb against the command registry and runs it.
type Dispatcher struct {
	registry *commands.Registry
}

// NewDispatcher creates a dispatcher over the given registry.
func NewDispatcher(registry *commands.Registry) *Dispatcher {
	return &Dispatcher{registry: registry}
}

// Dispatch looks up the named command, parses its flags and runs it.
// Returns the exit code.
func (d *Dispatcher) Dispatch(ctx context.Context, cfg *config.Config, sched *scheduler.Scheduler, name string, args []string, out, errOut io.Writer) int {
	cmd, ok := d.registry.Find(name)
	if !ok {
		fmt.Fprintf(errOut, "error: unknown command: %s\n", name)
		return exitcode.UserError
	}

	fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
	fs.SetOutput(io.Discard) // errors are reported below
	cmd.RegisterFlags(fs)

	if err := fs.Parse(args); err != nil {
		errStr := err.Error()
		if strings.HasPrefix(errStr, "flag provided but not defined: ") {
			fmt.Fprintf(errOut, "error: unknown flag: %s\n", strings.TrimPrefix(errStr, "flag provided but not defined: "))
			return exitcode.UserError
		}
		fmt.Fprintf(errOut, "error: %s\n", errStr)
		return exitcode.UserError
	}

	positional := fs.Args()
	if len(positional) > 0 && strings.HasPrefix(positional[0], "-") {
		fmt.Fprintf(errOut, "error: unknown flag: %s\n", positional[0])
		return exitcode.UserError
	}

	return cmd.Run(ctx, cfg, sched, positional, out, errOut)
}
