package interaction

import (
	"time"

	"github.com/philipparndt/vrpbooth/internal/anim"
	"github.com/philipparndt/vrpbooth/pkg/geometry"
)

// Rig is the camera state a teleport drives: the camera position and the
// orbit target, plus the orbit's resynchronising update.
type Rig interface {
	Position() geometry.Vector3
	SetPosition(geometry.Vector3)
	Target() geometry.Vector3
	SetTarget(geometry.Vector3)
	Update()
}

// Vantage returns where a teleport to z places the camera and what it looks at
func (m *Manager) Vantage(z *Zone) (position, target geometry.Vector3) {
	pos := z.Node.WorldPosition()
	forward := geometry.YawForward(z.Node.WorldYaw())
	eye := geometry.NewVector3(0, m.teleport.EyeHeight, 0)

	dist := m.teleport.StandoffDistance(z.Name())
	return pos.AddScaled(forward, dist).Add(eye), pos.Add(eye)
}

// Teleport flies the camera to the front of z. A request made while another
// teleport is running is dropped; it reports whether the flight started.
func (m *Manager) Teleport(z *Zone) bool {
	if m.state.Teleport.Active {
		m.log.Debug("teleport dropped, another one is running", "zone", z.Name())
		return false
	}

	endPos, endTarget := m.Vantage(z)
	m.state.Teleport = TeleportState{
		Active:        true,
		Zone:          z,
		Start:         m.sched.Now(),
		Duration:      m.teleport.Duration,
		StartPosition: m.rig.Position(),
		StartTarget:   m.rig.Target(),
		EndPosition:   endPos,
		EndTarget:     endTarget,
	}
	m.sched.Go(anim.TaskFunc(m.stepTeleport))
	return true
}

func (m *Manager) stepTeleport(now time.Time) bool {
	tp := &m.state.Teleport
	progress := 1.0
	if tp.Duration > 0 {
		progress = anim.Clamp01(float64(now.Sub(tp.Start)) / float64(tp.Duration))
	}

	pos, target := tp.At(anim.EaseInOutCubic(progress))
	m.rig.SetPosition(pos)
	m.rig.SetTarget(target)
	m.rig.Update()

	if progress >= 1 {
		tp.Active = false
		return true
	}
	return false
}
