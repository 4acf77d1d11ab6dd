package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"tracklet/internal/config"
	"tracklet/internal/exitcode"
	"tracklet/internal/export"
	"tracklet/internal/scheduler"
)

func init() {
	Register(&ExportCmd{})
}

// ExportCmd implements the export command: the finished log rendered as a
// json, csv or pdf report.
type ExportCmd struct {
	format  string
	outPath string
}

// SetFormat sets the report format (for testing).
func (c *ExportCmd) SetFormat(format string) {
	c.format = format
}

func (c *ExportCmd) Name() string      { return "export" }
func (c *ExportCmd) Aliases() []string { return nil }
func (c *ExportCmd) Synopsis() string  { return "Export the finished tasks log" }
func (c *ExportCmd) Usage() string     { return "export [--format json|csv|pdf] [--out <path>]" }

func (c *ExportCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.format, "format", "json", "")
	fs.StringVar(&c.outPath, "out", "", "")
}

func (c *ExportCmd) Run(ctx context.Context, cfg *config.Config, sched *scheduler.Scheduler, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintln(errOut, "error: usage: export [--format json|csv|pdf] [--out <path>]")
		return exitcode.UserError
	}
	// Normalize once so the pdf guard below and Render agree on the format.
	format := strings.ToLower(c.format)
	if format == "" {
		format = "json"
	}

	data, err := export.Render(sched.Finished(), format)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}

	if c.outPath == "" {
		if format == "pdf" {
			fmt.Fprintln(errOut, "error: --out is required for pdf")
			return exitcode.UserError
		}
		fmt.Fprintf(out, "%s\n", data)
		return exitcode.Success
	}

	if err := os.WriteFile(c.outPath, data, 0o644); err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.ReportError
	}
	if !cfg.Quiet {
		fmt.Fprintf(out, "wrote %s (%d bytes)\n", c.outPath, len(data))
	}
	return exitcode.Success
}
