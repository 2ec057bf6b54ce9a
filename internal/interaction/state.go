package interaction

import (
	"time"

	"github.com/philipparndt/vrpbooth/pkg/geometry"
)

// InteractionState is everything the interaction layer mutates between
// events: the hover slot, remembered rest heights and the teleport in flight.
type InteractionState struct {
	Hovered  *Zone
	RestY    map[*Zone]float64
	Teleport TeleportState
}

// TeleportState describes the camera fly-to animation. Active is true only
// while one is running.
type TeleportState struct {
	Active        bool
	Zone          *Zone
	Start         time.Time
	Duration      time.Duration
	StartPosition geometry.Vector3
	StartTarget   geometry.Vector3
	EndPosition   geometry.Vector3
	EndTarget     geometry.Vector3
}

// At returns the camera position and target at eased progress p
func (t TeleportState) At(p float64) (position, target geometry.Vector3) {
	return t.StartPosition.Lerp(t.EndPosition, p), t.StartTarget.Lerp(t.EndTarget, p)
}

func newInteractionState() InteractionState {
	return InteractionState{RestY: make(map[*Zone]float64)}
}
