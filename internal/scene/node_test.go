package scene

import (
	"image/color"
	"math"
	"testing"

	"github.com/philipparndt/vrpbooth/pkg/geometry"
	"github.com/stretchr/testify/assert"
)

func TestNodeWorldTransform(t *testing.T) {
	parent := NewNode("zone")
	parent.Position = geometry.NewVector3(-8, 0, 0)
	parent.Yaw = math.Pi / 2

	child := NewNode("panel")
	child.Position = geometry.NewVector3(0, 2, 1)
	parent.Add(child)

	pos := child.WorldPosition()
	// yaw pi/2 maps local +Z onto world +X
	assert.InDelta(t, -7.0, pos.X, 1e-9)
	assert.InDelta(t, 2.0, pos.Y, 1e-9)
	assert.InDelta(t, 0.0, pos.Z, 1e-9)
	assert.InDelta(t, math.Pi/2, child.WorldYaw(), 1e-12)
}

func TestMeshWorldBoundsFollowsScale(t *testing.T) {
	node := NewNode("dashboard")
	mesh := NewBox("screen", geometry.Vector3{}, geometry.NewVector3(2, 1, 0.1))
	node.AddMesh(mesh)

	node.Scale = geometry.NewVector3(1.5, 1.5, 1)
	size := mesh.WorldBounds().Size()

	assert.InDelta(t, 3.0, size.X, 1e-9)
	assert.InDelta(t, 1.5, size.Y, 1e-9)
	assert.Same(t, node, mesh.Node())
}

func TestEachMaterialVisitsSubtree(t *testing.T) {
	glow := NewEmissiveMaterial(color.RGBA{A: 255}, color.RGBA{R: 255, A: 255}, 0.3)
	plain := NewMaterial(color.RGBA{A: 255})

	root := NewNode("zone")
	root.AddMesh(NewBox("base", geometry.Vector3{}, geometry.NewVector3(1, 1, 1), plain))
	child := NewNode("screen")
	child.AddMesh(NewBox("glass", geometry.Vector3{}, geometry.NewVector3(1, 1, 1), glow, nil))
	root.Add(child)

	var ids []uint64
	root.EachMaterial(func(m *Material) { ids = append(ids, m.ID()) })

	assert.Equal(t, []uint64{plain.ID(), glow.ID()}, ids)
	assert.NotEqual(t, plain.ID(), glow.ID())
	assert.True(t, glow.HasEmissive())
	assert.False(t, plain.HasEmissive())
}

func TestShadeBrightensWithIntensity(t *testing.T) {
	m := NewEmissiveMaterial(color.RGBA{R: 10, G: 10, B: 10, A: 255}, color.RGBA{B: 200, A: 255}, 0.5)
	assert.Equal(t, color.RGBA{R: 10, G: 10, B: 110, A: 255}, m.Shade())

	m.EmissiveIntensity = 1
	assert.Equal(t, uint8(210), m.Shade().B)
}
