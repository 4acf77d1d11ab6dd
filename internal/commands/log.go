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
	Register(&LogCmd{})
}

// LogCmd implements the log command.
type LogCmd struct{}

func (c *LogCmd) Name() string      { return "log" }
func (c *LogCmd) Aliases() []string { return nil }
func (c *LogCmd) Synopsis() string  { return "Show the finished tasks log" }
func (c *LogCmd) Usage() string     { return "log" }

func (c *LogCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *LogCmd) Run(ctx context.Context, cfg *config.Config, sched *scheduler.Scheduler, args []string, out, errOut io.Writer) int {
	sched.PrintLog()
	return exitcode.Success
}
