// Package scheduler implements the in-memory task tracker core: the Task
// value, its three-state lifecycle, and the Scheduler that owns the staged,
// active and finished compartments.
package scheduler

import (
	"fmt"
	"strings"
	"time"
)

// Status is the lifecycle state of a task.
type Status string

const (
	StatusStaged   Status = "Staged"
	StatusActive   Status = "Active"
	StatusFinished Status = "Finished"
)

// TimeLayout is the display layout for task timestamps. Timestamps are
// rendered and reported at second resolution.
const TimeLayout = "2006-01-02 15:04:05"

// Task is a single tracked work item. ID and Description are immutable
// after creation. StartTime and FinishTime are zero until the corresponding
// transition stamps them.
type Task struct {
	ID          int
	Description string
	Estimate    int // projected effort in minutes
	Status      Status
	StartTime   time.Time
	FinishTime  time.Time
}

// NewTask creates a staged task with both timestamps absent.
func NewTask(id int, description string, estimate int) Task {
	return Task{
		ID:          id,
		Description: description,
		Estimate:    estimate,
		Status:      StatusStaged,
	}
}

// MarkActive stamps the start time and moves the task to Active.
// The caller is responsible for only invoking this on a staged task.
func (t *Task) MarkActive(now time.Time) {
	t.StartTime = now
	t.Status = StatusActive
}

// MarkFinished stamps the finish time and moves the task to Finished.
// The caller is responsible for only invoking this on an active task.
func (t *Task) MarkFinished(now time.Time) {
	t.FinishTime = now
	t.Status = StatusFinished
}

// ActualSeconds returns the elapsed seconds between start and finish.
// ok is false until both timestamps have been stamped.
func (t Task) ActualSeconds() (seconds int64, ok bool) {
	if t.StartTime.IsZero() || t.FinishTime.IsZero() {
		return 0, false
	}
	return int64(t.FinishTime.Sub(t.StartTime) / time.Second), true
}

// Details renders the task as a single display line. The line is never
// parsed by other components.
func (t Task) Details() string {
	var b strings.Builder
	fmt.Fprintf(&b, "[#%d] %s | Status: %s | Est: %d m", t.ID, t.Description, t.Status, t.Estimate)
	if !t.StartTime.IsZero() {
		fmt.Fprintf(&b, " | Started: %s", t.StartTime.Format(TimeLayout))
	}
	if !t.FinishTime.IsZero() {
		fmt.Fprintf(&b, " | Finished: %s", t.FinishTime.Format(TimeLayout))
	}
	return b.String()
}
