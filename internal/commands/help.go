package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"tracklet/internal/config"
	"tracklet/internal/exitcode"
	"tracklet/internal/scheduler"
)

func init() {
	Register(&HelpCmd{})
}

// HelpCmd implements the help command. The command list is rendered from
// the registry, so new commands show up without touching this file.
type HelpCmd struct{}

func (c *HelpCmd) Name() string      { return "help" }
func (c *HelpCmd) Aliases() []string { return nil }
func (c *HelpCmd) Synopsis() string  { return "Print usage" }
func (c *HelpCmd) Usage() string     { return "help" }

func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, cfg *config.Config, sched *scheduler.Scheduler, args []string, out, errOut io.Writer) int {
	fmt.Fprint(out, helpHeader)
	for _, cmd := range DefaultRegistry.All() {
		fmt.Fprintf(out, "  %-34s %s\n", cmd.Usage(), cmd.Synopsis())
	}
	fmt.Fprint(out, helpFooter)
	return exitcode.Success
}

const helpHeader = `Usage:
  tracklet                   Start the interactive prompt
  tracklet <command> [args]  Run a single command and exit

Commands:
`

// quit is a prompt builtin, not a registered command, so it is listed here.
const helpFooter = `  quit                               Leave the interactive prompt

Startup flags:
  --quiet   Suppress the prompt and informational output
  --debug   Echo parsed commands to stderr
`
