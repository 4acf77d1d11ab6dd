package cli_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"tracklet/internal/cli"
	"tracklet/internal/commands"
	"tracklet/internal/config"
	"tracklet/internal/exitcode"
	"tracklet/internal/scheduler"
)

var testBase = time.Date(2026, 8, 23, 10, 0, 0, 0, time.UTC)

func newScheduler(out *bytes.Buffer) *scheduler.Scheduler {
	next := testBase
	clock := func() time.Time {
		now := next
		next = next.Add(time.Minute)
		return now
	}
	return scheduler.New(out, scheduler.WithClock(clock))
}

func TestDispatcher_UnknownCommand(t *testing.T) {
	var out, errOut bytes.Buffer
	sched := newScheduler(&out)
	d := cli.NewDispatcher(commands.DefaultRegistry)

	code := d.Dispatch(context.Background(), &config.Config{}, sched, "bogus", nil, &out, &errOut)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	expected := "error: unknown command: bogus\n"
	if errOut.String() != expected {
		t.Errorf("expected %q, got %q", expected, errOut.String())
	}
}

func TestDispatcher_UnknownFlag(t *testing.T) {
	var out, errOut bytes.Buffer
	sched := newScheduler(&out)
	d := cli.NewDispatcher(commands.DefaultRegistry)

	code := d.Dispatch(context.Background(), &config.Config{}, sched, "staged", []string{"--bogus"}, &out, &errOut)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	expected := "error: unknown flag: -bogus\n"
	if errOut.String() != expected {
		t.Errorf("expected %q, got %q", expected, errOut.String())
	}
}

func TestDispatcher_Version(t *testing.T) {
	var out, errOut bytes.Buffer
	sched := newScheduler(&out)
	d := cli.NewDispatcher(commands.DefaultRegistry)

	code := d.Dispatch(context.Background(), &config.Config{}, sched, "version", nil, &out, &errOut)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if out.String() != "tracklet 0.1.0\n" {
		t.Errorf("expected version output, got %q", out.String())
	}
}

func TestDispatcher_FinishAlias(t *testing.T) {
	var out, errOut bytes.Buffer
	sched := newScheduler(&out)
	sched.AddTask("a", 5)
	sched.StartTask(1)
	out.Reset()
	d := cli.NewDispatcher(commands.DefaultRegistry)

	code := d.Dispatch(context.Background(), &config.Config{}, sched, "done", []string{"1"}, &out, &errOut)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if out.String() != "Finished task [#1].\n" {
		t.Errorf("expected confirmation, got %q", out.String())
	}
}

func TestDispatcher_ExportToFile(t *testing.T) {
	var out, errOut bytes.Buffer
	sched := newScheduler(&out)
	sched.AddTask("a", 5)
	sched.StartTask(1)
	sched.FinishTask(1)
	out.Reset()

	path := filepath.Join(t.TempDir(), "report.csv")
	d := cli.NewDispatcher(commands.DefaultRegistry)

	code := d.Dispatch(context.Background(), &config.Config{}, sched, "export", []string{"--format", "csv", "--out", path}, &out, &errOut)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d (stderr %q)", exitcode.Success, code, errOut.String())
	}
	if !strings.Contains(out.String(), "wrote "+path) {
		t.Errorf("expected write confirmation, got %q", out.String())
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read report: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header and one row, got %d lines", len(lines))
	}
	if lines[0] != "id,description,estimate_minutes,status,started_at,finished_at,actual_seconds" {
		t.Errorf("unexpected header %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "1,a,5,Finished,") {
		t.Errorf("unexpected row %q", lines[1])
	}
}
