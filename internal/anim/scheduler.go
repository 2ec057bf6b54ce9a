// Package anim drives time based animations from an explicit frame tick.
//
// Every animation is a Task advanced by Scheduler.Tick, which the render loop
// calls once per frame. Tasks measure progress against the scheduler's Clock,
// so a manual clock makes the whole timeline deterministic.
package anim

import (
	"time"
)

// Task is a unit of animation. Step is called with the current time and
// reports whether the task has finished.
type Task interface {
	Step(now time.Time) bool
}

// TaskFunc adapts a function to Task
type TaskFunc func(now time.Time) bool

// Step calls f(now)
func (f TaskFunc) Step(now time.Time) bool { return f(now) }

type timer struct {
	due time.Time
	fn  func()
}

// Scheduler advances tasks and fires deferred callbacks. It is not safe for
// concurrent use; it belongs to the render loop.
type Scheduler struct {
	clock   Clock
	tasks   []Task
	pending []Task
	timers  []timer
	ticking bool
}

// NewScheduler creates a scheduler reading time from clock
func NewScheduler(clock Clock) *Scheduler {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Scheduler{clock: clock}
}

// Now returns the scheduler's current time
func (s *Scheduler) Now() time.Time {
	return s.clock.Now()
}

// Go starts a task. The task is stepped once immediately, the way a
// self-scheduling animation paints its first frame synchronously.
func (s *Scheduler) Go(t Task) {
	if t.Step(s.clock.Now()) {
		return
	}
	if s.ticking {
		s.pending = append(s.pending, t)
		return
	}
	s.tasks = append(s.tasks, t)
}

// After runs fn on the first tick at or after d from now
func (s *Scheduler) After(d time.Duration, fn func()) {
	s.timers = append(s.timers, timer{due: s.clock.Now().Add(d), fn: fn})
}

// Tick steps every running task in start order, drops the finished ones and
// fires due timers in registration order.
func (s *Scheduler) Tick() {
	now := s.clock.Now()

	s.ticking = true
	live := s.tasks[:0]
	for _, t := range s.tasks {
		if !t.Step(now) {
			live = append(live, t)
		}
	}
	for i := len(live); i < len(s.tasks); i++ {
		s.tasks[i] = nil
	}
	s.tasks = live

	due := s.timers[:0:0]
	keep := s.timers[:0]
	for _, tm := range s.timers {
		if !now.Before(tm.due) {
			due = append(due, tm)
		} else {
			keep = append(keep, tm)
		}
	}
	s.timers = keep
	for _, tm := range due {
		tm.fn()
	}
	s.ticking = false

	s.tasks = append(s.tasks, s.pending...)
	s.pending = nil
}

// Active returns the number of running tasks and waiting timers
func (s *Scheduler) Active() int {
	return len(s.tasks) + len(s.pending) + len(s.timers)
}

// Tween interpolates over a fixed duration. Apply receives eased progress;
// Done, if set, runs after the final step.
type Tween struct {
	Start    time.Time
	Duration time.Duration
	Ease     EaseFunc
	Apply    func(progress float64)
	Done     func()
}

// Progress returns the linear progress at now
func (tw *Tween) Progress(now time.Time) float64 {
	if tw.Duration <= 0 {
		return 1
	}
	return Clamp01(float64(now.Sub(tw.Start)) / float64(tw.Duration))
}

// Step applies the eased progress and reports completion
func (tw *Tween) Step(now time.Time) bool {
	p := tw.Progress(now)
	ease := tw.Ease
	if ease == nil {
		ease = Linear
	}
	tw.Apply(ease(p))
	if p >= 1 {
		if tw.Done != nil {
			tw.Done()
		}
		return true
	}
	return false
}

// Animate starts a tween beginning now
func (s *Scheduler) Animate(d time.Duration, ease EaseFunc, apply func(float64), done func()) {
	s.Go(&Tween{Start: s.Now(), Duration: d, Ease: ease, Apply: apply, Done: done})
}
