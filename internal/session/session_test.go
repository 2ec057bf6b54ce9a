package session

import (
	"context"
	"testing"
	"time"

	"github.com/philipparndt/vrpbooth/internal/anim"
	"github.com/philipparndt/vrpbooth/internal/config"
	"github.com/philipparndt/vrpbooth/internal/interaction"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type surface struct {
	rect   interaction.Rect
	cursor interaction.Cursor
}

func (s *surface) Rect() interaction.Rect         { return s.rect }
func (s *surface) SetCursor(c interaction.Cursor) { s.cursor = c }

type navigator struct{ urls []string }

func (n *navigator) Open(url string) error {
	n.urls = append(n.urls, url)
	return nil
}

func newSession(t *testing.T) (*Session, *anim.ManualClock, *surface, *navigator) {
	t.Helper()
	clock := anim.NewManualClock(time.Unix(0, 0))
	surf := &surface{rect: interaction.Rect{Width: 1400, Height: 900}}
	nav := &navigator{}
	s, err := New(context.Background(), config.Default(), surf, WithClock(clock), WithNavigator(nav))
	require.NoError(t, err)
	return s, clock, surf, nav
}

func (s *Session) run(clock *anim.ManualClock, frames int) {
	for i := 0; i < frames; i++ {
		clock.Advance(16 * time.Millisecond)
		s.Frame()
	}
}

func TestNewSession(t *testing.T) {
	s, _, _, _ := newSession(t)

	assert.Equal(t, StartPosition, s.Camera.Position)
	assert.Equal(t, StartTarget, s.Orbit.Target())
	assert.InDelta(t, 1400.0/900.0, s.Camera.Aspect, 1e-12)
	assert.Len(t, s.Manager.Zones(), 7)
	assert.Equal(t, 0.005, s.Orbit.RotateSpeed)
}

func TestWalkingStaysInHall(t *testing.T) {
	s, clock, _, _ := newSession(t)

	s.KeyDown("KeyS")
	s.run(clock, 30)
	s.KeyUp("KeyS")

	assert.InDelta(t, 9, s.Camera.Position.Z, 1e-9)
	assert.InDelta(t, 2, s.Camera.Position.Y, 1e-9)
	assert.True(t, s.Controller.Bounds.Contains(s.Camera.Position))

	// releasing the key stops the camera
	before := s.Orbit.Target()
	s.run(clock, 10)
	assert.Equal(t, before, s.Orbit.Target())
}

func TestClickTeleportsInFrames(t *testing.T) {
	s, clock, _, _ := newSession(t)
	z := s.Booth.Zone(interaction.MainStand)

	// the stand fills the centre of the start view
	s.Manager.Click(interaction.PointerEvent{X: 700, Y: 450})
	require.True(t, s.Manager.State().Teleport.Active)
	assert.Same(t, z, s.Manager.State().Teleport.Zone)

	s.run(clock, 120)
	assert.False(t, s.Manager.State().Teleport.Active)
	want, _ := s.Manager.Vantage(z)
	assert.InDelta(t, 0, s.Camera.Position.Distance(want), 1e-6)
}

func TestHoverSetsCursor(t *testing.T) {
	s, _, surf, _ := newSession(t)

	s.Manager.PointerMove(interaction.PointerEvent{X: 700, Y: 450})
	assert.Equal(t, interaction.CursorPointer, surf.cursor)
	s.Manager.PointerMove(interaction.PointerEvent{X: 700, Y: 5})
	assert.Equal(t, interaction.CursorDefault, surf.cursor)
}

func TestContactsFlow(t *testing.T) {
	s, clock, _, nav := newSession(t)
	z := s.Booth.Zone(interaction.ContactsZone)
	data := z.Data.(*interaction.ContactsData)

	data.Panel.Enlarge()
	s.run(clock, 40)
	require.True(t, s.Booth.QR.Enlarged())

	data.Panel.Enlarge()
	banner, ok := s.Banner.Current()
	require.True(t, ok)
	assert.Equal(t, "Link: vrp-solution.com/demo", banner.Text)

	s.run(clock, 250)
	_, ok = s.Banner.Current()
	assert.False(t, ok)
	assert.Empty(t, nav.urls)
}

func TestReconfigure(t *testing.T) {
	s, clock, _, _ := newSession(t)

	cfg := config.Default()
	cfg.Hall.MaxZ = 8.5
	cfg.Camera.MoveSpeed = 0.3
	cfg.Tooltip.Hold = time.Second
	s.Reconfigure(cfg)

	assert.Equal(t, 0.3, s.Controller.Speed)
	assert.Equal(t, time.Second, s.Tooltips.Hold)

	s.run(clock, 1)
	assert.InDelta(t, 8, s.Camera.Position.Z, 1e-9)

	s.KeyDown("ArrowDown")
	s.run(clock, 10)
	assert.InDelta(t, 8.5, s.Camera.Position.Z, 1e-9)
}

func TestApplyReloads(t *testing.T) {
	s, _, _, _ := newSession(t)
	r := &Reloads{ch: make(chan config.Config, 1)}

	s.ApplyReloads(nil)
	s.ApplyReloads(r)

	first := config.Default()
	first.Camera.MoveSpeed = 0.2
	second := config.Default()
	second.Camera.MoveSpeed = 0.4
	r.publish(first)
	r.publish(second)

	s.ApplyReloads(r)
	assert.Equal(t, 0.4, s.Controller.Speed)
}

func TestResize(t *testing.T) {
	s, _, _, _ := newSession(t)
	s.Resize(800, 800)
	assert.InDelta(t, 1, s.Camera.Aspect, 1e-12)
	s.Resize(800, 0)
	assert.InDelta(t, 1, s.Camera.Aspect, 1e-12)
}
