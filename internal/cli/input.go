package cli

import (
	"strings"
	"unicode"
)

// SplitLine tokenizes one input line. Tokens are separated by whitespace;
// double quotes group whitespace into a single token and may produce an
// empty token (`add "" 30`). Quotes carry no escape sequences. An
// unterminated quote runs to the end of the line.
func SplitLine(line string) []string {
	var fields []string
	var cur strings.Builder
	inQuote := false
	quoted := false // a quote pair was seen, so an empty token still counts

	flush := func() {
		if cur.Len() > 0 || quoted {
			fields = append(fields, cur.String())
		}
		cur.Reset()
		quoted = false
	}

	for _, r := range line {
		switch {
		case r == '"':
			inQuote = !inQuote
			quoted = true
		case unicode.IsSpace(r) && !inQuote:
			flush()
		default:
			cur.WriteRune(r)
		}
	}
	flush()
	return fields
}
