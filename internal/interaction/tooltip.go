package interaction

import (
	"time"

	"github.com/philipparndt/vrpbooth/internal/anim"
)

// Toast is a message currently on screen
type Toast struct {
	Text  string
	Shown time.Time
	gen   uint64
}

// Toasts is a single on-screen message slot. Showing a message replaces the
// current one at once; each message fades in, stays until Hold has passed
// since it appeared, then fades out and is removed.
type Toasts struct {
	sched   *anim.Scheduler
	FadeIn  time.Duration
	Hold    time.Duration
	FadeOut time.Duration

	current *Toast
	gen     uint64
}

// NewToasts creates a message slot timed by sched
func NewToasts(sched *anim.Scheduler, fadeIn, hold, fadeOut time.Duration) *Toasts {
	return &Toasts{sched: sched, FadeIn: fadeIn, Hold: hold, FadeOut: fadeOut}
}

// Show displays text, removing whatever was shown before
func (t *Toasts) Show(text string) {
	t.gen++
	gen := t.gen
	t.current = &Toast{Text: text, Shown: t.sched.Now(), gen: gen}

	t.sched.After(t.Hold+t.FadeOut, func() {
		if t.current != nil && t.current.gen == gen {
			t.current = nil
		}
	})
}

// Current returns the message on screen, if any
func (t *Toasts) Current() (Toast, bool) {
	if t.current == nil {
		return Toast{}, false
	}
	return *t.current, true
}

// Opacity returns the current message's opacity at now, 0 when none is shown
func (t *Toasts) Opacity(now time.Time) float64 {
	if t.current == nil {
		return 0
	}
	elapsed := now.Sub(t.current.Shown)
	switch {
	case elapsed < 0:
		return 0
	case t.FadeIn > 0 && elapsed < t.FadeIn:
		return float64(elapsed) / float64(t.FadeIn)
	case elapsed < t.Hold:
		return 1
	case t.FadeOut > 0 && elapsed < t.Hold+t.FadeOut:
		return 1 - float64(elapsed-t.Hold)/float64(t.FadeOut)
	default:
		return 0
	}
}
