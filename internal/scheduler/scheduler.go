package scheduler

import (
	"fmt"
	"io"
	"slices"
	"time"

	"tracklet/internal/output"
)

// Clock supplies the current instant for transition timestamps.
type Clock func() time.Time

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithClock overrides the wall-clock source. Used by tests.
func WithClock(now Clock) Option {
	return func(s *Scheduler) { s.now = now }
}

// Scheduler owns three disjoint ordered compartments of tasks and the id
// counter. All user feedback is written as single lines to the writer
// supplied at construction. The Scheduler is single-threaded: callers drive
// one operation at a time.
type Scheduler struct {
	out    io.Writer
	now    Clock
	nextID int

	staged   []Task
	active   []Task
	finished []Task
}

// New creates an empty Scheduler whose feedback lines go to out.
func New(out io.Writer, opts ...Option) *Scheduler {
	s := &Scheduler{
		out:    out,
		now:    time.Now,
		nextID: 1,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AddTask creates a staged task with the next id and appends it to the
// staged compartment. The description is stored verbatim; estimates are
// accepted as given.
func (s *Scheduler) AddTask(description string, estimate int) {
	t := NewTask(s.nextID, description, estimate)
	s.nextID++
	s.staged = append(s.staged, t)
	fmt.Fprintf(s.out, "Added task [#%d] to staged tasks.\n", t.ID)
}

// StartTask stamps the start time on the staged task with the given id and
// moves it to the tail of the active compartment. A miss leaves all state
// unchanged and emits a notice.
func (s *Scheduler) StartTask(id int) {
	i := indexByID(s.staged, id)
	if i < 0 {
		fmt.Fprintf(s.out, "Task [#%d] not found in staged tasks.\n", id)
		return
	}
	t := s.staged[i]
	t.MarkActive(s.now())
	s.active = append(s.active, t)
	s.staged = slices.Delete(s.staged, i, i+1)
	fmt.Fprintf(s.out, "Started task [#%d].\n", id)
}

// FinishTask stamps the finish time on the active task with the given id
// and moves it to the tail of the finished log. A task that was never
// started cannot be finished; the call is a no-op with a notice.
func (s *Scheduler) FinishTask(id int) {
	i := indexByID(s.active, id)
	if i < 0 {
		fmt.Fprintf(s.out, "Task [#%d] not found in active tasks.\n", id)
		return
	}
	t := s.active[i]
	t.MarkFinished(s.now())
	s.finished = append(s.finished, t)
	s.active = slices.Delete(s.active, i, i+1)
	fmt.Fprintf(s.out, "Finished task [#%d].\n", id)
}

// ViewStagedTasks prints the staged compartment in insertion order.
func (s *Scheduler) ViewStagedTasks() {
	s.view("Staged Tasks", s.staged)
}

// ViewActiveTasks prints the active compartment in insertion order.
func (s *Scheduler) ViewActiveTasks() {
	s.view("Active Tasks", s.active)
}

func (s *Scheduler) view(title string, tasks []Task) {
	output.SectionHeader(s.out, title, len(tasks))
	if len(tasks) == 0 {
		output.None(s.out)
		return
	}
	for _, t := range tasks {
		fmt.Fprintln(s.out, t.Details())
	}
}

// PrintLog prints the finished log. Each line carries the task details and,
// once both timestamps are stamped, the elapsed duration segment.
func (s *Scheduler) PrintLog() {
	output.SectionHeader(s.out, "Finished Tasks Log", len(s.finished))
	if len(s.finished) == 0 {
		output.None(s.out)
		return
	}
	for _, t := range s.finished {
		line := t.Details()
		if secs, ok := t.ActualSeconds(); ok {
			line += output.Actual(secs)
		}
		fmt.Fprintln(s.out, line)
	}
}

// Staged returns a copy of the staged compartment.
func (s *Scheduler) Staged() []Task { return slices.Clone(s.staged) }

// Active returns a copy of the active compartment.
func (s *Scheduler) Active() []Task { return slices.Clone(s.active) }

// Finished returns a copy of the finished log.
func (s *Scheduler) Finished() []Task { return slices.Clone(s.finished) }

// indexByID scans from the head and returns the position of the first task
// with the given id, or -1. Ids are unique within a compartment so the
// first match is the only match.
func indexByID(tasks []Task, id int) int {
	for i, t := range tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}
