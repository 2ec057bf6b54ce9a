package camera

import (
	"github.com/philipparndt/vrpbooth/pkg/geometry"
)

// Bounds is the rectangular hall floor the camera may not leave
type Bounds struct {
	MinX, MaxX float64
	MinZ, MaxZ float64
}

// Contains reports whether p lies within the bounds on X and Z
func (b Bounds) Contains(p geometry.Vector3) bool {
	return p.X >= b.MinX && p.X <= b.MaxX && p.Z >= b.MinZ && p.Z <= b.MaxZ
}

// Clamp limits X and Z of p to the bounds; Y is left alone
func (b Bounds) Clamp(p geometry.Vector3) geometry.Vector3 {
	if p.X < b.MinX {
		p.X = b.MinX
	}
	if p.X > b.MaxX {
		p.X = b.MaxX
	}
	if p.Z < b.MinZ {
		p.Z = b.MinZ
	}
	if p.Z > b.MaxZ {
		p.Z = b.MaxZ
	}
	return p
}

// Controller moves the camera with the keyboard and keeps it in the hall
type Controller struct {
	Orbit  *Orbit
	Keys   Keys
	Speed  float64
	Bounds Bounds
}

// NewController creates a free-roam controller for orbit
func NewController(orbit *Orbit, speed float64, bounds Bounds) *Controller {
	return &Controller{Orbit: orbit, Speed: speed, Bounds: bounds}
}

// Move translates the camera and its orbit target by the held keys. Moving
// the target along keeps the pivot in front of the camera.
func (c *Controller) Move() {
	if !c.Keys.Any() {
		return
	}
	cam := c.Orbit.Camera()

	forward := cam.Direction().Horizontal().Normalize()
	if forward == (geometry.Vector3{}) {
		return
	}
	right := forward.Cross(geometry.Up).Normalize()

	step := func(dir geometry.Vector3, amount float64) {
		cam.Position = cam.Position.AddScaled(dir, amount)
		c.Orbit.SetTarget(c.Orbit.Target().AddScaled(dir, amount))
	}
	if c.Keys.Forward {
		step(forward, c.Speed)
	}
	if c.Keys.Backward {
		step(forward, -c.Speed)
	}
	if c.Keys.Right {
		step(right, c.Speed)
	}
	if c.Keys.Left {
		step(right, -c.Speed)
	}
}

// Clamp keeps the camera and the orbit target inside the hall on X and Z
func (c *Controller) Clamp() {
	cam := c.Orbit.Camera()
	cam.Position = c.Bounds.Clamp(cam.Position)
	c.Orbit.SetTarget(c.Bounds.Clamp(c.Orbit.Target()))
}

// Update runs one frame of camera control: keyboard translation, orbit
// damping, then the bounds clamp.
func (c *Controller) Update() {
	c.Move()
	c.Orbit.Update()
	c.Clamp()
}
