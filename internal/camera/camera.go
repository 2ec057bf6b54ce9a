// Package camera holds the booth's perspective camera, the orbit control that
// owns its look target, and the keyboard free-roam controller.
package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/philipparndt/vrpbooth/pkg/geometry"
)

// Camera is a perspective camera looking at a point
type Camera struct {
	Position geometry.Vector3
	LookAt   geometry.Vector3
	Up       geometry.Vector3
	FovY     float64 // vertical field of view in degrees
	Aspect   float64
	Near     float64
	Far      float64
}

// NewCamera creates a camera with the booth's default lens
func NewCamera(fovY, aspect float64) *Camera {
	return &Camera{
		Position: geometry.NewVector3(0, 2, 8),
		LookAt:   geometry.NewVector3(0, 2, 0),
		Up:       geometry.Up,
		FovY:     fovY,
		Aspect:   aspect,
		Near:     0.1,
		Far:      1000,
	}
}

// Direction returns the unit look direction
func (c *Camera) Direction() geometry.Vector3 {
	return c.LookAt.Sub(c.Position).Normalize()
}

func vec(v geometry.Vector3) mgl64.Vec3 { return mgl64.Vec3{v.X, v.Y, v.Z} }

// View returns the world-to-camera matrix
func (c *Camera) View() mgl64.Mat4 {
	return mgl64.LookAtV(vec(c.Position), vec(c.LookAt), vec(c.Up))
}

// Projection returns the perspective projection matrix
func (c *Camera) Projection() mgl64.Mat4 {
	aspect := c.Aspect
	if aspect <= 0 {
		aspect = 1
	}
	return mgl64.Perspective(mgl64.DegToRad(c.FovY), aspect, c.Near, c.Far)
}

// Ray returns the world-space ray through a point in normalized device
// coordinates, both axes in [-1,1] with +Y up.
func (c *Camera) Ray(ndcX, ndcY float64) geometry.Ray {
	inv := c.Projection().Mul4(c.View()).Inv()

	near := inv.Mul4x1(mgl64.Vec4{ndcX, ndcY, -1, 1})
	far := inv.Mul4x1(mgl64.Vec4{ndcX, ndcY, 1, 1})
	nearP := geometry.NewVector3(near[0]/near[3], near[1]/near[3], near[2]/near[3])
	farP := geometry.NewVector3(far[0]/far[3], far[1]/far[3], far[2]/far[3])

	return geometry.Ray{Origin: c.Position, Direction: farP.Sub(nearP).Normalize()}
}

// Project maps a world point to pixel coordinates on a width x height surface.
// depth is the distance along the view axis; points behind the camera have
// depth <= 0.
func (c *Camera) Project(p geometry.Vector3, width, height float64) (x, y, depth float64) {
	viewP := c.View().Mul4x1(mgl64.Vec4{p.X, p.Y, p.Z, 1})
	clip := c.Projection().Mul4x1(viewP)
	depth = -viewP[2]
	if math.Abs(clip[3]) < 1e-9 {
		return 0, 0, depth
	}
	ndcX := clip[0] / clip[3]
	ndcY := clip[1] / clip[3]
	return (ndcX + 1) / 2 * width, (1 - ndcY) / 2 * height, depth
}
