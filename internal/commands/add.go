package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"tracklet/internal/config"
	"tracklet/internal/exitcode"
	"tracklet/internal/scheduler"
)

func init() {
	Register(&AddCmd{})
}

// AddCmd implements the add command. The last argument is the estimate in
// minutes; everything before it joins into the description. An empty
// description is allowed and stored verbatim.
type AddCmd struct{}

func (c *AddCmd) Name() string      { return "add" }
func (c *AddCmd) Aliases() []string { return nil }
func (c *AddCmd) Synopsis() string  { return "Add a task to the staged list" }
func (c *AddCmd) Usage() string     { return "add <description...> <estimate>" }

func (c *AddCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *AddCmd) Run(ctx context.Context, cfg *config.Config, sched *scheduler.Scheduler, args []string, out, errOut io.Writer) int {
	if len(args) < 2 {
		fmt.Fprintln(errOut, "error: usage: add <description...> <estimate>")
		return exitcode.UserError
	}

	estimate, err := strconv.Atoi(args[len(args)-1])
	if err != nil {
		fmt.Fprintf(errOut, "error: invalid estimate: %s\n", args[len(args)-1])
		return exitcode.UserError
	}

	description := strings.Join(args[:len(args)-1], " ")
	sched.AddTask(description, estimate)
	return exitcode.Success
}
