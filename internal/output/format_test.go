package output_test

import (
	"bytes"
	"testing"

	"tracklet/internal/output"
)

func TestSectionHeader(t *testing.T) {
	var buf bytes.Buffer
	output.SectionHeader(&buf, "Staged Tasks", 2)

	expected := "--- Staged Tasks (2) ---\n"
	if buf.String() != expected {
		t.Errorf("expected %q, got %q", expected, buf.String())
	}
}

func TestNone(t *testing.T) {
	var buf bytes.Buffer
	output.None(&buf)

	if buf.String() != "(none)\n" {
		t.Errorf("expected %q, got %q", "(none)\n", buf.String())
	}
}

func TestActual(t *testing.T) {
	cases := []struct {
		seconds int64
		want    string
	}{
		{0, " | Actual: 0 s (0 m 0 s)"},
		{59, " | Actual: 59 s (0 m 59 s)"},
		{60, " | Actual: 60 s (1 m 0 s)"},
		{90, " | Actual: 90 s (1 m 30 s)"},
		{3661, " | Actual: 3661 s (61 m 1 s)"},
	}
	for _, c := range cases {
		if got := output.Actual(c.seconds); got != c.want {
			t.Errorf("Actual(%d): expected %q, got %q", c.seconds, c.want, got)
		}
	}
}
