package camera

import (
	"math"

	"github.com/philipparndt/vrpbooth/pkg/geometry"
)

// Orbit rotates and zooms a camera around a movable target point, with the
// damped feel of a three.js OrbitControls. It owns the camera's look target.
type Orbit struct {
	camera *Camera
	target geometry.Vector3

	EnableDamping bool
	DampingFactor float64
	MinDistance   float64
	MaxDistance   float64
	MaxPolarAngle float64
	RotateSpeed   float64

	deltaTheta float64
	deltaPhi   float64
	scale      float64
}

const polarEpsilon = 1e-6

// NewOrbit attaches an orbit control to cam, pivoting around target
func NewOrbit(cam *Camera, target geometry.Vector3) *Orbit {
	o := &Orbit{
		camera:        cam,
		target:        target,
		EnableDamping: true,
		DampingFactor: 0.05,
		MinDistance:   3,
		MaxDistance:   20,
		MaxPolarAngle: math.Pi / 2,
		RotateSpeed:   1,
		scale:         1,
	}
	cam.LookAt = target
	return o
}

// Camera returns the controlled camera
func (o *Orbit) Camera() *Camera { return o.camera }

// Position returns the camera position
func (o *Orbit) Position() geometry.Vector3 { return o.camera.Position }

// SetPosition moves the camera
func (o *Orbit) SetPosition(p geometry.Vector3) { o.camera.Position = p }

// Target returns the orbit pivot
func (o *Orbit) Target() geometry.Vector3 { return o.target }

// SetTarget moves the orbit pivot
func (o *Orbit) SetTarget(t geometry.Vector3) { o.target = t }

// Rotate queues a rotation in radians: azimuth left/right, polar up/down
func (o *Orbit) Rotate(azimuth, polar float64) {
	o.deltaTheta -= azimuth * o.RotateSpeed
	o.deltaPhi -= polar * o.RotateSpeed
}

// Dolly queues a zoom; factors above 1 move the camera away
func (o *Orbit) Dolly(factor float64) {
	if factor > 0 {
		o.scale *= factor
	}
}

// Update applies queued rotation and zoom, clamps the spherical offset and
// points the camera at the target. Call once per frame.
func (o *Orbit) Update() {
	offset := o.camera.Position.Sub(o.target)

	radius := offset.Length()
	theta := math.Atan2(offset.X, offset.Z)
	phi := 0.0
	if radius > 0 {
		phi = math.Acos(math.Max(-1, math.Min(1, offset.Y/radius)))
	}

	if o.EnableDamping {
		theta += o.deltaTheta * o.DampingFactor
		phi += o.deltaPhi * o.DampingFactor
	} else {
		theta += o.deltaTheta
		phi += o.deltaPhi
	}

	phi = math.Max(polarEpsilon, math.Min(o.MaxPolarAngle, phi))
	radius = math.Max(o.MinDistance, math.Min(o.MaxDistance, radius*o.scale))

	sinPhi := math.Sin(phi)
	offset = geometry.NewVector3(
		radius*sinPhi*math.Sin(theta),
		radius*math.Cos(phi),
		radius*sinPhi*math.Cos(theta),
	)
	o.camera.Position = o.target.Add(offset)
	o.camera.LookAt = o.target

	if o.EnableDamping {
		o.deltaTheta *= 1 - o.DampingFactor
		o.deltaPhi *= 1 - o.DampingFactor
	} else {
		o.deltaTheta = 0
		o.deltaPhi = 0
	}
	o.scale = 1
}
