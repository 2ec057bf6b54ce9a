package zones

import (
	"context"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/philipparndt/vrpbooth/internal/anim"
	"github.com/philipparndt/vrpbooth/internal/camera"
	"github.com/philipparndt/vrpbooth/internal/config"
	"github.com/philipparndt/vrpbooth/internal/interaction"
	"github.com/philipparndt/vrpbooth/internal/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type surface struct{}

func (surface) Rect() interaction.Rect {
	return interaction.Rect{Width: 1400, Height: 900}
}
func (surface) SetCursor(interaction.Cursor) {}

type notes struct{ shown []string }

func (n *notes) Show(text string) { n.shown = append(n.shown, text) }

func newBooth(t *testing.T) (*Booth, *anim.ManualClock, *anim.Scheduler, *notes) {
	t.Helper()
	clock := anim.NewManualClock(time.Unix(0, 0))
	sched := anim.NewScheduler(clock)
	n := &notes{}
	return New(sched, n, "https://vrp-solution.com/demo"), clock, sched, n
}

func newManager(b *Booth, sched *anim.Scheduler) *interaction.Manager {
	cam := camera.NewCamera(75, 1400.0/900.0)
	orbit := camera.NewOrbit(cam, cam.LookAt)
	m := interaction.NewManager(surface{}, cam, orbit, sched, config.Default())
	b.Register(m)
	return m
}

func TestZoneLayout(t *testing.T) {
	b, _, _, _ := newBooth(t)

	want := []struct {
		name    string
		x, z    float64
		yawFrac float64
	}{
		{interaction.MainStand, 0, -2, 0},
		{interaction.RoutesZone, -8, 0, 0.25},
		{interaction.AIZone, 6, 1, -0.2},
		{interaction.DashboardZone, -6.5, 3.5, 0.25},
		{interaction.InfographicsZone, 6.5, 3.5, -0.25},
		{interaction.ContactsZone, -6.5, 5.5, 0.28},
		{interaction.AppUIZone, 8, 7, -0.35},
	}
	require.Len(t, b.Zones, len(want))
	for i, w := range want {
		z := b.Zones[i]
		assert.Equal(t, w.name, z.Name())
		assert.InDelta(t, w.x, z.Node.Position.X, 1e-12, w.name)
		assert.InDelta(t, w.z, z.Node.Position.Z, 1e-12, w.name)
		assert.InDelta(t, math.Pi*w.yawFrac, z.Node.Yaw, 1e-12, w.name)
	}

	assert.Same(t, b.Zones[3], b.Zone(interaction.DashboardZone))
	assert.Nil(t, b.Zone("Truck"))
	assert.Equal(t, "Truck", b.Truck.Name)
}

func TestVantagePointsInsideHall(t *testing.T) {
	b, _, sched, _ := newBooth(t)
	m := newManager(b, sched)
	hall := config.Default().Hall
	bounds := camera.Bounds{MinX: hall.MinX, MaxX: hall.MaxX, MinZ: hall.MinZ, MaxZ: hall.MaxZ}

	for _, z := range b.Zones {
		pos, target := m.Vantage(z)
		assert.True(t, bounds.Contains(pos), "%s vantage %v outside hall", z.Name(), pos)
		assert.InDelta(t, 2, pos.Y, 1e-12)
		assert.InDelta(t, 2, target.Y, 1e-12)
	}
}

func TestBaselinesFromMaterials(t *testing.T) {
	b, _, sched, _ := newBooth(t)
	m := newManager(b, sched)

	intensities := func(name string) []float64 {
		var out []float64
		b.Zone(name).Node.EachMaterial(func(mat *scene.Material) {
			if base, ok := m.Baseline(mat); ok {
				out = append(out, base)
			}
		})
		return out
	}

	assert.Contains(t, intensities(interaction.MainStand), 0.8)
	assert.Contains(t, intensities(interaction.MainStand), 0.1)
	assert.Contains(t, intensities(interaction.ContactsZone), 0.5)
	assert.Contains(t, intensities(interaction.AppUIZone), 0.4)
	assert.Equal(t, []float64{0.3}, intensities(interaction.DashboardZone))
}

func TestTruckIsNotPickable(t *testing.T) {
	b, _, sched, _ := newBooth(t)
	m := newManager(b, sched)

	b.Truck.EachMesh(func(mesh *scene.Mesh) {
		assert.Nil(t, m.ZoneOf(mesh))
	})
	b.Zone(interaction.AIZone).Node.EachMesh(func(mesh *scene.Mesh) {
		assert.Equal(t, interaction.AIZone, m.ZoneOf(mesh).Name())
	})
}

func TestPaintAllPanels(t *testing.T) {
	b, _, _, _ := newBooth(t)
	require.NoError(t, b.Paint(context.Background()))

	for key, tex := range b.Textures {
		require.NotNil(t, tex.Image, key)
		w, h := tex.Size()
		assert.Equal(t, w, tex.Image.Bounds().Dx(), key)
		assert.Equal(t, h, tex.Image.Bounds().Dy(), key)
		assert.Equal(t, uint64(1), tex.Rev, key)
	}

	// every texture a mesh refers to exists
	b.Root.EachMesh(func(mesh *scene.Mesh) {
		if mesh.Panel != "" {
			assert.Contains(t, b.Textures, mesh.Panel)
		}
	})
}

func TestPaintCanceled(t *testing.T) {
	b, _, _, _ := newBooth(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, b.Paint(ctx), context.Canceled)
}

func TestQRFallsBackToErrorGlyph(t *testing.T) {
	clock := anim.NewManualClock(time.Unix(0, 0))
	b := New(anim.NewScheduler(clock), nil, strings.Repeat("x", 5000))
	require.NoError(t, b.Paint(context.Background()))

	img := b.QR.Texture().Image
	c := img.Bounds().Dx() / 2
	assert.Equal(t, errorRed, img.RGBAAt(c, c))
}

func TestRouteAnimation(t *testing.T) {
	b, clock, sched, _ := newBooth(t)
	require.NoError(t, b.Paint(context.Background()))
	rev := b.Routes.Texture().Rev

	b.Routes.AnimateRoute()
	assert.InDelta(t, 0, b.Routes.Progress(), 1e-12)

	clock.Advance(time.Second)
	sched.Tick()
	assert.InDelta(t, 0.5, b.Routes.Progress(), 1e-12)
	assert.Greater(t, b.Routes.Texture().Rev, rev)

	clock.Advance(time.Second)
	sched.Tick()
	assert.InDelta(t, 1, b.Routes.Progress(), 1e-12)
	assert.Zero(t, sched.Active())
}

func TestDashboardToggle(t *testing.T) {
	b, clock, sched, _ := newBooth(t)
	node := b.Dashboard.node

	b.Dashboard.ToggleExpand()
	assert.True(t, b.Dashboard.Expanded())
	clock.Advance(250 * time.Millisecond)
	sched.Tick()
	assert.InDelta(t, 1.25, node.Scale.X, 1e-12)

	clock.Advance(250 * time.Millisecond)
	sched.Tick()
	assert.InDelta(t, 1.5, node.Scale.X, 1e-12)
	assert.InDelta(t, 1.5, node.Scale.Y, 1e-12)
	assert.InDelta(t, 1, node.Scale.Z, 1e-12)

	b.Dashboard.ToggleExpand()
	clock.Advance(500 * time.Millisecond)
	sched.Tick()
	assert.False(t, b.Dashboard.Expanded())
	assert.InDelta(t, 1, node.Scale.X, 1e-12)
}

func TestDashboardToggleMidway(t *testing.T) {
	b, clock, sched, _ := newBooth(t)
	node := b.Dashboard.node

	b.Dashboard.ToggleExpand()
	clock.Advance(250 * time.Millisecond)
	sched.Tick()
	b.Dashboard.ToggleExpand()

	// the superseded tween must not fight the new one
	for i := 0; i < 5; i++ {
		clock.Advance(100 * time.Millisecond)
		sched.Tick()
	}
	assert.InDelta(t, 1, node.Scale.X, 1e-12)
}

func TestQRBannerOnShrink(t *testing.T) {
	b, clock, sched, n := newBooth(t)

	b.QR.Enlarge()
	assert.True(t, b.QR.Enlarged())
	assert.Empty(t, n.shown)
	clock.Advance(PanelScaleTime)
	sched.Tick()
	assert.InDelta(t, 2, b.QR.node.Scale.X, 1e-12)

	b.QR.Enlarge()
	assert.False(t, b.QR.Enlarged())
	assert.Equal(t, []string{"Link: vrp-solution.com/demo"}, n.shown)
	clock.Advance(PanelScaleTime)
	sched.Tick()
	assert.InDelta(t, 1, b.QR.node.Scale.X, 1e-12)
}

func TestDisplayLink(t *testing.T) {
	assert.Equal(t, "vrp-solution.com/demo", DisplayLink("https://vrp-solution.com/demo"))
	assert.Equal(t, "example.org", DisplayLink("http://example.org/"))
	assert.Equal(t, "not a url", DisplayLink("not a url"))
}

func TestDashboardClickScalesScreen(t *testing.T) {
	b, clock, sched, _ := newBooth(t)
	m := newManager(b, sched)
	z := b.Zone(interaction.DashboardZone)

	// look straight at the dashboard from its vantage point
	pos, target := m.Vantage(z)
	cam := camera.NewCamera(75, 1400.0/900.0)
	cam.Position, cam.LookAt = pos, target
	m = interaction.NewManager(surface{}, cam, camera.NewOrbit(cam, target), sched, config.Default())
	b.Register(m)

	m.Click(interaction.PointerEvent{X: 700, Y: 350})
	data := z.Data.(*interaction.DashboardData)
	assert.True(t, data.Expanded)

	clock.Advance(2 * time.Second)
	sched.Tick()
	assert.InDelta(t, 1.5, b.Dashboard.node.Scale.X, 1e-12)
}
