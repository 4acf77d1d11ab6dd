package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"tracklet/internal/config"
	"tracklet/internal/exitcode"
	"tracklet/internal/scheduler"
)

const prompt = "tracklet> "

// REPL reads commands line by line and dispatches them against a single
// scheduler until quit or end of input. One command runs at a time; command
// failures print a diagnostic and the loop continues.
type REPL struct {
	dispatcher *Dispatcher
	cfg        *config.Config
	sched      *scheduler.Scheduler
}

// NewREPL creates an interactive loop over the given dispatcher and scheduler.
func NewREPL(dispatcher *Dispatcher, cfg *config.Config, sched *scheduler.Scheduler) *REPL {
	return &REPL{
		dispatcher: dispatcher,
		cfg:        cfg,
		sched:      sched,
	}
}

// Run drives the loop until quit, end of input, or context cancellation.
// Returns the process exit code.
func (r *REPL) Run(ctx context.Context, in io.Reader, out, errOut io.Writer) int {
	scanner := bufio.NewScanner(in)
	for {
		if !r.cfg.Quiet {
			fmt.Fprint(out, prompt)
		}
		if !scanner.Scan() {
			break
		}
		if ctx.Err() != nil {
			break
		}

		fields := SplitLine(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		verb, args := fields[0], fields[1:]

		if verb == "quit" || verb == "exit" {
			if !r.cfg.Quiet {
				fmt.Fprintln(out, "bye")
			}
			return exitcode.Success
		}

		if r.cfg.Debug {
			fmt.Fprintf(errOut, "debug: command=%q args=%q\n", verb, args)
		}

		// Exit codes are for one-shot mode; interactively every
		// diagnostic has already been printed, so keep going.
		r.dispatcher.Dispatch(ctx, r.cfg, r.sched, verb, args, out, errOut)
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}
	return exitcode.Success
}
