package cli_test

import (
	"reflect"
	"testing"

	"tracklet/internal/cli"
)

func TestSplitLine(t *testing.T) {
	cases := []struct {
		line string
		want []string
	}{
		{"", nil},
		{"   ", nil},
		{"log", []string{"log"}},
		{"start 1", []string{"start", "1"}},
		{"add write spec 30", []string{"add", "write", "spec", "30"}},
		{`add "write spec" 30`, []string{"add", "write spec", "30"}},
		{`add "" 30`, []string{"add", "", "30"}},
		{`add "unterminated quote 5`, []string{"add", "unterminated quote 5"}},
		{"  start   2  ", []string{"start", "2"}},
	}
	for _, c := range cases {
		got := cli.SplitLine(c.line)
		if !reflect.DeepEqual(got, c.want) {
			t.Errorf("SplitLine(%q): expected %q, got %q", c.line, c.want, got)
		}
	}
}
