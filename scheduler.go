package dnd

import (
	"slices"
	"time"
)

// Scheduler runs delayed and repeating callbacks on the caller's goroutine.
// Time only moves when Advance is called, normally once per frame from
// Scene.Update, so a stopped Task can never fire afterwards.
type Scheduler struct {
	now   time.Duration
	tasks []*Task
	seq   uint64
}

// Task is a pending scheduled callback.
type Task struct {
	sched   *Scheduler
	due     time.Duration
	every   time.Duration
	seq     uint64
	fn      func()
	stopped bool
}

// NewScheduler creates a scheduler at time zero.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Now returns the total time advanced so far.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// After schedules fn to run once, d after the current time.
func (s *Scheduler) After(d time.Duration, fn func()) *Task {
	return s.schedule(d, 0, fn)
}

// Every schedules fn to run every d, first at now+d, until stopped.
// Panics if d <= 0.
func (s *Scheduler) Every(d time.Duration, fn func()) *Task {
	if d <= 0 {
		panic("dnd: Scheduler.Every requires a positive interval")
	}
	return s.schedule(d, d, fn)
}

func (s *Scheduler) schedule(d, every time.Duration, fn func()) *Task {
	if d < 0 {
		d = 0
	}
	s.seq++
	t := &Task{sched: s, due: s.now + d, every: every, seq: s.seq, fn: fn}
	s.tasks = append(s.tasks, t)
	return t
}

// Stop cancels the task. It reports whether the task was still pending.
// Safe on a nil or already stopped task.
func (t *Task) Stop() bool {
	if t == nil || t.stopped {
		return false
	}
	t.stopped = true
	t.sched.remove(t)
	return true
}

// Active reports whether the task is still pending.
func (t *Task) Active() bool {
	return t != nil && !t.stopped
}

func (s *Scheduler) remove(t *Task) {
	if i := slices.Index(s.tasks, t); i >= 0 {
		s.tasks = slices.Delete(s.tasks, i, i+1)
	}
}

// Pending returns the number of live tasks.
func (s *Scheduler) Pending() int {
	return len(s.tasks)
}

// Advance moves time forward by dt, running every task that falls due in
// order of due time (ties in scheduling order). A repeating task runs once
// per elapsed interval.
func (s *Scheduler) Advance(dt time.Duration) {
	if dt < 0 {
		return
	}
	target := s.now + dt
	for {
		t := s.next(target)
		if t == nil {
			break
		}
		s.now = t.due
		if t.every > 0 {
			t.due += t.every
		} else {
			t.stopped = true
			s.remove(t)
		}
		t.fn()
	}
	s.now = target
}

// next returns the earliest task due at or before limit.
func (s *Scheduler) next(limit time.Duration) *Task {
	var best *Task
	for _, t := range s.tasks {
		if t.due > limit {
			continue
		}
		if best == nil || t.due < best.due || (t.due == best.due && t.seq < best.seq) {
			best = t
		}
	}
	return best
}

// StopAll cancels every pending task.
func (s *Scheduler) StopAll() {
	for _, t := range s.tasks {
		t.stopped = true
	}
	s.tasks = s.tasks[:0]
}
