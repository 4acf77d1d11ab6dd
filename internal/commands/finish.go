package commands

import (
	"context"
	"flag"
	"io"

	"tracklet/internal/config"
	"tracklet/internal/exitcode"
	"tracklet/internal/scheduler"
)

func init() {
	Register(&FinishCmd{})
}

// FinishCmd implements the finish command.
type FinishCmd struct{}

func (c *FinishCmd) Name() string      { return "finish" }
func (c *FinishCmd) Aliases() []string { return []string{"done"} }
func (c *FinishCmd) Synopsis() string  { return "Finish an active task" }
func (c *FinishCmd) Usage() string     { return "finish <id>" }

func (c *FinishCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *FinishCmd) Run(ctx context.Context, cfg *config.Config, sched *scheduler.Scheduler, args []string, out, errOut io.Writer) int {
	id, code := parseTaskID(args, errOut)
	if code != exitcode.Success {
		return code
	}
	sched.FinishTask(id)
	return exitcode.Success
}
