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
	Register(&StagedCmd{})
	Register(&ActiveCmd{})
}

// StagedCmd implements the staged command.
type StagedCmd struct{}

func (c *StagedCmd) Name() string      { return "staged" }
func (c *StagedCmd) Aliases() []string { return nil }
func (c *StagedCmd) Synopsis() string  { return "Show staged tasks" }
func (c *StagedCmd) Usage() string     { return "staged" }

func (c *StagedCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *StagedCmd) Run(ctx context.Context, cfg *config.Config, sched *scheduler.Scheduler, args []string, out, errOut io.Writer) int {
	sched.ViewStagedTasks()
	return exitcode.Success
}

// ActiveCmd implements the active command.
type ActiveCmd struct{}

func (c *ActiveCmd) Name() string      { return "active" }
func (c *ActiveCmd) Aliases() []string { return nil }
func (c *ActiveCmd) Synopsis() string  { return "Show active tasks" }
func (c *ActiveCmd) Usage() string     { return "active" }

func (c *ActiveCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ActiveCmd) Run(ctx context.Context, cfg *config.Config, sched *scheduler.Scheduler, args []string, out, errOut io.Writer) int {
	sched.ViewActiveTasks()
	return exitcode.Success
}
