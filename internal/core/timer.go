package core

import "time"

// Scheduler issues cancellable periodic tasks.
type Scheduler interface {
	Every(interval time.Duration, fn func()) *Task
}

// Task is a handle to a periodic callback. The zero value and nil are both
// treated as already cancelled.
type Task struct {
	fn          func()
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	cancelled   bool
}

// Cancel stops further invocations. Calling it more than once is harmless.
func (t *Task) Cancel() {
	if t == nil {
		return
	}
	t.cancelled = true
}

// Active reports whether the task will still fire.
func (t *Task) Active() bool { return t != nil && !t.cancelled && t.fn != nil }

// Interval returns the tick period.
func (t *Task) Interval() time.Duration {
	if t == nil {
		return 0
	}
	return t.step
}

// due advances the fixed-step accumulator and reports whether a tick is owed.
// At most one tick is reported per call so a long stall never triggers a
// burst of catch-up generations.
func (t *Task) due(now time.Time) bool {
	if t.last.IsZero() {
		t.last = now
	}
	delta := now.Sub(t.last)
	t.last = now
	t.accumulator += delta
	if t.accumulator >= t.step {
		t.accumulator -= t.step
		if t.accumulator > t.step {
			t.accumulator = t.step
		}
		return true
	}
	return false
}

// FrameScheduler runs tasks from whichever loop pumps it, typically a frame
// update callback. Everything happens on the caller's goroutine.
type FrameScheduler struct {
	tasks []*Task
}

// NewFrameScheduler returns an empty scheduler.
func NewFrameScheduler() *FrameScheduler { return &FrameScheduler{} }

// Every registers fn to run once per interval. Non-positive intervals fall
// back to 60 ticks per second.
func (s *FrameScheduler) Every(interval time.Duration, fn func()) *Task {
	if interval <= 0 {
		interval = time.Second / 60
	}
	t := &Task{fn: fn, step: interval}
	s.tasks = append(s.tasks, t)
	return t
}

// Advance fires every task whose interval has elapsed at now and drops
// cancelled tasks. A task cancelled by an earlier callback in the same pass is
// not fired.
func (s *FrameScheduler) Advance(now time.Time) {
	live := s.tasks[:0]
	for _, t := range s.tasks {
		if !t.Active() {
			continue
		}
		live = append(live, t)
	}
	for i := len(live); i < len(s.tasks); i++ {
		s.tasks[i] = nil
	}
	s.tasks = live

	pending := append([]*Task(nil), s.tasks...)
	for _, t := range pending {
		if !t.Active() {
			continue
		}
		if t.due(now) {
			t.fn()
		}
	}
}

// Len reports how many tasks are still registered and active.
func (s *FrameScheduler) Len() int {
	n := 0
	for _, t := range s.tasks {
		if t.Active() {
			n++
		}
	}
	return n
}

// TPS converts a ticks-per-second rate into an interval, defaulting to 60.
func TPS(tps int) time.Duration {
	if tps <= 0 {
		tps = 60
	}
	return time.Second / time.Duration(tps)
}
