package anim

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

func TestEaseInOutCubicEndpointsAndMonotonic(t *testing.T) {
	assert.Equal(t, 0.0, EaseInOutCubic(0))
	assert.Equal(t, 1.0, EaseInOutCubic(1))
	assert.InDelta(t, 0.5, EaseInOutCubic(0.5), 1e-12)

	prev := EaseInOutCubic(0)
	for i := 1; i <= 1000; i++ {
		v := EaseInOutCubic(float64(i) / 1000)
		require.GreaterOrEqual(t, v, prev, "not monotonic at step %d", i)
		// continuity: no jump larger than the steepest slope allows (3 * dt)
		require.LessOrEqual(t, v-prev, 3.0/1000+1e-9, "jump at step %d", i)
		prev = v
	}
}

func TestEaseInOutQuadEndpoints(t *testing.T) {
	assert.Equal(t, 0.0, EaseInOutQuad(0))
	assert.Equal(t, 1.0, EaseInOutQuad(1))
	assert.InDelta(t, 0.5, EaseInOutQuad(0.5), 1e-12)
}

func TestTweenRunsToCompletion(t *testing.T) {
	clock := NewManualClock(epoch)
	s := NewScheduler(clock)

	var got []float64
	done := false
	s.Animate(100*time.Millisecond, Linear, func(p float64) { got = append(got, p) }, func() { done = true })

	require.Equal(t, []float64{0}, got, "first frame is applied synchronously")

	clock.Advance(50 * time.Millisecond)
	s.Tick()
	clock.Advance(60 * time.Millisecond)
	s.Tick()

	assert.Equal(t, []float64{0, 0.5, 1}, got)
	assert.True(t, done)
	assert.Equal(t, 0, s.Active())
}

func TestAfterFiresOnceWhenDue(t *testing.T) {
	clock := NewManualClock(epoch)
	s := NewScheduler(clock)

	fired := 0
	s.After(2*time.Second, func() { fired++ })

	clock.Advance(1999 * time.Millisecond)
	s.Tick()
	assert.Equal(t, 0, fired)

	clock.Advance(time.Millisecond)
	s.Tick()
	s.Tick()
	assert.Equal(t, 1, fired)
	assert.Equal(t, 0, s.Active())
}

func TestTimerCanStartTask(t *testing.T) {
	clock := NewManualClock(epoch)
	s := NewScheduler(clock)

	steps := 0
	s.After(0, func() {
		s.Go(TaskFunc(func(time.Time) bool {
			steps++
			return steps >= 3
		}))
	})

	s.Tick()
	assert.Equal(t, 1, steps)
	assert.Equal(t, 1, s.Active())

	s.Tick()
	s.Tick()
	assert.Equal(t, 3, steps)
	assert.Equal(t, 0, s.Active())
}

func TestTasksStepInStartOrder(t *testing.T) {
	s := NewScheduler(NewManualClock(epoch))

	var order []string
	task := func(name string) Task {
		first := true
		return TaskFunc(func(time.Time) bool {
			if first {
				first = false
				return false
			}
			order = append(order, name)
			return true
		})
	}
	s.Go(task("a"))
	s.Go(task("b"))
	s.Go(task("c"))
	s.Tick()

	assert.Equal(t, []string{"a", "b", "c"}, order)
}
