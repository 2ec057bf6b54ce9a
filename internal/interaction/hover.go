package interaction

import (
	"math"

	"github.com/philipparndt/vrpbooth/internal/scene"
)

// hover moves the single hover slot to zone (nil means nothing is hovered)
func (m *Manager) hover(zone *Zone) {
	if m.state.Hovered != nil && zone != m.state.Hovered {
		m.resetHover(m.state.Hovered)
		m.state.Hovered = nil
		m.surface.SetCursor(CursorDefault)
	}

	if zone != nil && zone != m.state.Hovered {
		m.state.Hovered = zone
		m.applyHover(zone)
		m.surface.SetCursor(CursorPointer)
	}
}

// applyHover doubles every emissive intensity under the zone relative to its
// baseline (capped at 1) and lifts the zone off its rest height.
func (m *Manager) applyHover(z *Zone) {
	z.Node.EachMaterial(func(mat *scene.Material) {
		if base, ok := m.baselineOf(mat); ok {
			mat.EmissiveIntensity = math.Min(base*2, 1.0)
		}
	})

	rest, ok := m.state.RestY[z]
	if !ok {
		rest = z.Node.Position.Y
		m.state.RestY[z] = rest
	}
	z.Node.Position.Y = rest + HoverLift
}

// resetHover restores baselines and the rest height
func (m *Manager) resetHover(z *Zone) {
	z.Node.EachMaterial(func(mat *scene.Material) {
		if base, ok := m.baselineOf(mat); ok {
			mat.EmissiveIntensity = base
		}
	})

	if rest, ok := m.state.RestY[z]; ok {
		z.Node.Position.Y = rest
	}
}

func (m *Manager) baselineOf(mat *scene.Material) (float64, bool) {
	if !mat.HasEmissive() {
		return 0, false
	}
	base, ok := m.baselines[mat.ID()]
	return base, ok
}
