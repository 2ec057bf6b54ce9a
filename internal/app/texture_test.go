package app

import (
	"math"
	"testing"

	"github.com/philipparndt/vrpbooth/internal/camera"
	"github.com/philipparndt/vrpbooth/internal/scene"
	"github.com/philipparndt/vrpbooth/pkg/geometry"
	"github.com/stretchr/testify/assert"
)

func TestQuadTransformCoversFrontFace(t *testing.T) {
	node := scene.NewNode("panel")
	node.Position = geometry.NewVector3(2, 1, -3)
	node.Yaw = math.Pi / 2
	mesh := scene.NewBox("screen", geometry.Vector3{}, geometry.NewVector3(4, 2, 0.1))
	node.AddMesh(mesh)

	front := mesh.Faces()[0]
	m := quadTransform(front)

	apply := func(x, y float32) geometry.Vector3 {
		return geometry.NewVector3(
			float64(m.M0*x+m.M4*y+m.M12),
			float64(m.M1*x+m.M5*y+m.M13),
			float64(m.M2*x+m.M6*y+m.M14),
		)
	}
	lifted := func(p geometry.Vector3) geometry.Vector3 { return p.AddScaled(front.Normal, panelOffset) }

	assert.InDelta(t, 0, apply(-0.5, -0.5).Distance(lifted(front.Corners[0])), 1e-5)
	assert.InDelta(t, 0, apply(0.5, 0.5).Distance(lifted(front.Corners[2])), 1e-5)
	assert.InDelta(t, 0, apply(-0.5, 0.5).Distance(lifted(front.Corners[3])), 1e-5)
}

func TestMovementKeysCovered(t *testing.T) {
	codes := make(map[string]bool)
	for _, c := range keyCodes {
		codes[c] = true
	}
	for _, c := range camera.MovementCodes() {
		assert.True(t, codes[c], c)
	}
}
