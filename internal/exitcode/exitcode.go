// Package exitcode defines exit codes for the CLI.
package exitcode

const (
	// Success indicates successful completion. Not-found notices from the
	// tracker are soft and still exit successfully.
	Success = 0

	// UserError indicates a user error (unknown command, bad arguments).
	UserError = 1

	// ReportError indicates a failure while writing an exported report.
	ReportError = 2
)
