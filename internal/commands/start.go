package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strconv"

	"tracklet/internal/config"
	"tracklet/internal/exitcode"
	"tracklet/internal/scheduler"
)

func init() {
	Register(&StartCmd{})
}

// StartCmd implements the start command.
type StartCmd struct{}

func (c *StartCmd) Name() string      { return "start" }
func (c *StartCmd) Aliases() []string { return nil }
func (c *StartCmd) Synopsis() string  { return "Start a staged task" }
func (c *StartCmd) Usage() string     { return "start <id>" }

func (c *StartCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *StartCmd) Run(ctx context.Context, cfg *config.Config, sched *scheduler.Scheduler, args []string, out, errOut io.Writer) int {
	id, code := parseTaskID(args, errOut)
	if code != exitcode.Success {
		return code
	}
	// Misses are reported by the scheduler itself and are not errors.
	sched.StartTask(id)
	return exitcode.Success
}

// parseTaskID extracts the single integer id argument shared by the start
// and finish commands.
func parseTaskID(args []string, errOut io.Writer) (int, int) {
	if len(args) != 1 {
		fmt.Fprintln(errOut, "error: task id required")
		return 0, exitcode.UserError
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Fprintf(errOut, "error: invalid task id: %s\n", args[0])
		return 0, exitcode.UserError
	}
	return id, exitcode.Success
}
