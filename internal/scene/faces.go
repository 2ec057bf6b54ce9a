package scene

import (
	"math"

	"github.com/philipparndt/vrpbooth/pkg/geometry"
)

// Face is one side of a box mesh in world space. Corners run counter-clockwise
// seen from outside: bottom-left, bottom-right, top-right, top-left.
type Face struct {
	Normal  geometry.Vector3
	Corners [4]geometry.Vector3
	// Front is the local +Z side, where panel images are shown
	Front bool
}

// face axes in local space; u x v points along the outward normal
var boxFaces = [6]struct{ n, u, v geometry.Vector3 }{
	{n: geometry.NewVector3(0, 0, 1), u: geometry.NewVector3(1, 0, 0), v: geometry.NewVector3(0, 1, 0)},
	{n: geometry.NewVector3(0, 0, -1), u: geometry.NewVector3(-1, 0, 0), v: geometry.NewVector3(0, 1, 0)},
	{n: geometry.NewVector3(1, 0, 0), u: geometry.NewVector3(0, 0, -1), v: geometry.NewVector3(0, 1, 0)},
	{n: geometry.NewVector3(-1, 0, 0), u: geometry.NewVector3(0, 0, 1), v: geometry.NewVector3(0, 1, 0)},
	{n: geometry.NewVector3(0, 1, 0), u: geometry.NewVector3(1, 0, 0), v: geometry.NewVector3(0, 0, -1)},
	{n: geometry.NewVector3(0, -1, 0), u: geometry.NewVector3(1, 0, 0), v: geometry.NewVector3(0, 0, 1)},
}

func absDot(a, b geometry.Vector3) float64 {
	d := a.Dot(b)
	if d < 0 {
		return -d
	}
	return d
}

// Faces returns the six sides of the mesh box in world space. The first
// face is always the front.
func (m *Mesh) Faces() [6]Face {
	world := m.WorldMatrix()
	center := m.Box.Center()
	half := m.Box.Size().Mul(0.5)

	var out [6]Face
	for i, f := range boxFaces {
		mid := center.AddScaled(f.n, absDot(half, f.n))
		du := f.u.Mul(absDot(half, f.u))
		dv := f.v.Mul(absDot(half, f.v))

		local := [4]geometry.Vector3{
			mid.Sub(du).Sub(dv),
			mid.Add(du).Sub(dv),
			mid.Add(du).Add(dv),
			mid.Sub(du).Add(dv),
		}
		var face Face
		for j, c := range local {
			face.Corners[j] = TransformPoint(world, c)
		}
		c := face.Corners
		face.Normal = c[1].Sub(c[0]).Cross(c[3].Sub(c[0])).Normalize()
		face.Front = i == 0
		out[i] = face
	}
	return out
}

// LightDir is the direction of the baked key light
var LightDir = geometry.NewVector3(-0.5, -1.0, -0.5).Normalize()

// Diffuse returns the light factor of a face: min 30% ambient, max 100% diffuse
func Diffuse(normal geometry.Vector3) float64 {
	return math.Max(0.3, -normal.Dot(LightDir))
}
