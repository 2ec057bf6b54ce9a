package camera

import (
	"math"
	"testing"

	"github.com/philipparndt/vrpbooth/pkg/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var hall = Bounds{MinX: -11, MaxX: 11, MinZ: -8, MaxZ: 9}

func TestRayThroughCenterFollowsLookDirection(t *testing.T) {
	cam := NewCamera(75, 16.0/9.0)

	ray := cam.Ray(0, 0)

	assert.Equal(t, cam.Position, ray.Origin)
	assert.InDelta(t, 0, ray.Direction.X, 1e-9)
	assert.InDelta(t, 0, ray.Direction.Y, 1e-9)
	assert.InDelta(t, -1, ray.Direction.Z, 1e-9)
}

func TestRayTopOfScreenPointsUp(t *testing.T) {
	cam := NewCamera(90, 1)

	ray := cam.Ray(0, 1)

	// half of a 90 degree fov: 45 degrees above the view axis
	assert.InDelta(t, math.Sqrt2/2, ray.Direction.Y, 1e-9)
	assert.InDelta(t, -math.Sqrt2/2, ray.Direction.Z, 1e-9)
}

func TestProjectRoundTrip(t *testing.T) {
	cam := NewCamera(75, 2)

	x, y, depth := cam.Project(cam.LookAt, 800, 400)
	assert.InDelta(t, 400, x, 1e-6)
	assert.InDelta(t, 200, y, 1e-6)
	assert.InDelta(t, 8, depth, 1e-9)

	_, _, behind := cam.Project(geometry.NewVector3(0, 2, 20), 800, 400)
	assert.Less(t, behind, 0.0)
}

func TestKeysPressRelease(t *testing.T) {
	var k Keys
	k.Press("KeyW")
	k.Press("ArrowLeft")
	k.Press("Space")
	assert.Equal(t, Keys{Forward: true, Left: true}, k)
	assert.True(t, k.Any())

	k.Release("ArrowUp")
	k.Release("KeyA")
	assert.False(t, k.Any())

	for _, code := range MovementCodes() {
		k.Press(code)
	}
	assert.Equal(t, Keys{Forward: true, Backward: true, Left: true, Right: true}, k)
}

func TestForwardMovesCameraAndTargetTogether(t *testing.T) {
	cam := NewCamera(75, 1)
	orbit := NewOrbit(cam, geometry.NewVector3(0, 2, 0))
	ctrl := NewController(orbit, 0.15, hall)
	ctrl.Keys.Press("KeyW")

	ctrl.Move()

	assert.InDelta(t, 7.85, cam.Position.Z, 1e-9)
	assert.InDelta(t, -0.15, orbit.Target().Z, 1e-9)
	assert.InDelta(t, 2, cam.Position.Y, 1e-9)
}

func TestStrafeRightIsPerpendicular(t *testing.T) {
	cam := NewCamera(75, 1)
	orbit := NewOrbit(cam, geometry.NewVector3(0, 2, 0))
	ctrl := NewController(orbit, 0.15, hall)
	ctrl.Keys.Press("KeyD")

	ctrl.Move()

	assert.InDelta(t, 0.15, cam.Position.X, 1e-9)
	assert.InDelta(t, 8, cam.Position.Z, 1e-9)
}

func TestHoldingForwardNeverLeavesHall(t *testing.T) {
	cam := NewCamera(75, 1)
	orbit := NewOrbit(cam, geometry.NewVector3(0, 2, 0))
	orbit.Update()
	ctrl := NewController(orbit, 0.15, hall)
	ctrl.Keys.Press("ArrowUp")

	for frame := 0; frame < 500; frame++ {
		ctrl.Update()
		require.True(t, hall.Contains(cam.Position), "camera left the hall at frame %d: %v", frame, cam.Position)
		require.True(t, hall.Contains(orbit.Target()), "target left the hall at frame %d: %v", frame, orbit.Target())
	}
}

func TestBackwardAgainstWallClampsZ(t *testing.T) {
	cam := NewCamera(75, 1)
	orbit := NewOrbit(cam, geometry.NewVector3(0, 2, 0))
	ctrl := NewController(orbit, 0.15, hall)
	ctrl.Keys.Press("KeyS")

	for frame := 0; frame < 100; frame++ {
		ctrl.Update()
	}

	assert.LessOrEqual(t, cam.Position.Z, hall.MaxZ)
	assert.InDelta(t, hall.MaxZ, cam.Position.Z, 1e-9)
}

func TestBoundsClampLeavesY(t *testing.T) {
	p := hall.Clamp(geometry.NewVector3(-20, 7, 30))
	assert.Equal(t, geometry.NewVector3(-11, 7, 9), p)
}

func TestOrbitClampsRadiusAndPolarAngle(t *testing.T) {
	cam := NewCamera(75, 1)
	orbit := NewOrbit(cam, geometry.NewVector3(0, 2, 0))

	orbit.Dolly(10)
	orbit.Update()
	assert.InDelta(t, orbit.MaxDistance, cam.Position.Distance(orbit.Target()), 1e-9)

	orbit.Dolly(0.01)
	orbit.Update()
	assert.InDelta(t, orbit.MinDistance, cam.Position.Distance(orbit.Target()), 1e-9)

	// push the camera below the floor plane of the target
	orbit.EnableDamping = false
	orbit.Rotate(0, -2)
	orbit.Update()
	assert.GreaterOrEqual(t, cam.Position.Y, orbit.Target().Y-1e-9)
}

func TestOrbitDampingDecays(t *testing.T) {
	cam := NewCamera(75, 1)
	orbit := NewOrbit(cam, geometry.NewVector3(0, 2, 0))
	orbit.Rotate(1, 0)

	orbit.Update()
	first := math.Atan2(cam.Position.X, cam.Position.Z)
	orbit.Update()
	second := math.Atan2(cam.Position.X, cam.Position.Z)

	step1 := math.Abs(first)
	step2 := math.Abs(second - first)
	assert.InDelta(t, 0.05, step1, 1e-9)
	assert.InDelta(t, 0.05*0.95, step2, 1e-9)
	assert.Equal(t, orbit.Target(), cam.LookAt)
}
