// Package output provides formatters for console output.
package output

import (
	"fmt"
	"io"
)

// SectionHeader writes a compartment header with its task count.
// Format: "--- {TITLE} ({N}) ---\n"
func SectionHeader(w io.Writer, title string, count int) {
	fmt.Fprintf(w, "--- %s (%d) ---\n", title, count)
}

// None writes the empty-compartment body line.
func None(w io.Writer) {
	fmt.Fprintln(w, "(none)")
}

// Actual renders the elapsed-duration segment appended to finished log
// lines. Format: " | Actual: {S} s ({M} m {R} s)" with M = S/60, R = S%60.
func Actual(seconds int64) string {
	return fmt.Sprintf(" | Actual: %d s (%d m %d s)", seconds, seconds/60, seconds%60)
}
