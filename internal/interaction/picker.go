package interaction

import (
	"math"

	"github.com/philipparndt/vrpbooth/internal/scene"
	"github.com/philipparndt/vrpbooth/pkg/geometry"
)

// Rect is the on-screen rectangle of the render surface
type Rect struct {
	Left, Top, Width, Height float64
}

// PointerEvent is a pointer position in the same coordinates as Rect
type PointerEvent struct {
	X, Y float64
}

// Cursor is the pointer style over the render surface
type Cursor int

const (
	CursorDefault Cursor = iota
	CursorPointer
)

// Surface is the render target pointer events arrive on
type Surface interface {
	Rect() Rect
	SetCursor(Cursor)
}

// RayCaster turns normalized device coordinates into a world ray
type RayCaster interface {
	Ray(ndcX, ndcY float64) geometry.Ray
}

// Hit is the nearest mesh under the pointer
type Hit struct {
	Mesh     *scene.Mesh
	Zone     *Zone
	Distance float64
	Point    geometry.Vector3
}

// NDC converts a pointer position to normalized device coordinates. It
// fails for an empty surface.
func NDC(ev PointerEvent, r Rect) (x, y float64, ok bool) {
	if r.Width <= 0 || r.Height <= 0 {
		return 0, 0, false
	}
	x = (ev.X-r.Left)/r.Width*2 - 1
	y = -((ev.Y-r.Top)/r.Height*2 - 1)
	return x, y, true
}

// pickRay intersects ray with every mesh owned by a registered zone and
// returns the closest hit.
func (m *Manager) pickRay(ray geometry.Ray) (Hit, bool) {
	best := Hit{Distance: math.Inf(1)}
	found := false

	for _, mesh := range m.meshes {
		inv := mesh.WorldMatrix().Inv()
		local := geometry.Ray{
			Origin:    scene.TransformPoint(inv, ray.Origin),
			Direction: scene.TransformDirection(inv, ray.Direction),
		}
		// the map is affine, so t is the same parameter on the world ray
		t, ok := local.IntersectBox(mesh.Box)
		if !ok || t >= best.Distance {
			continue
		}
		best = Hit{Mesh: mesh, Zone: m.owner[mesh.ID()], Distance: t, Point: ray.At(t)}
		found = true
	}
	return best, found
}

// Pick runs the pointer picker for ev
func (m *Manager) Pick(ev PointerEvent) (Hit, bool) {
	x, y, ok := NDC(ev, m.surface.Rect())
	if !ok {
		return Hit{}, false
	}
	return m.pickRay(m.camera.Ray(x, y))
}

// ZoneOf returns the registered zone owning mesh, or nil
func (m *Manager) ZoneOf(mesh *scene.Mesh) *Zone {
	if mesh == nil {
		return nil
	}
	return m.owner[mesh.ID()]
}
