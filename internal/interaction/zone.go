package interaction

import "github.com/philipparndt/vrpbooth/internal/scene"

// Zone names the click dispatcher knows about
const (
	MainStand        = "MainStand"
	RoutesZone       = "RoutesZone"
	AIZone           = "AIZone"
	DashboardZone    = "DashboardZone"
	InfographicsZone = "InfographicsZone"
	ContactsZone     = "ContactsZone"
	AppUIZone        = "AppUIZone"
)

// Zone is a clickable exhibit: a composite scene node plus the typed data its
// click action needs. Data is nil for zones that only show a tooltip.
type Zone struct {
	Node *scene.Node
	Data ZoneData
}

// Name returns the zone's dispatch key
func (z *Zone) Name() string { return z.Node.Name }

// ZoneData is the closed set of per-zone side tables
type ZoneData interface {
	zoneData()
}

// RouteAnimator plays the route drawing on the routes map screen
type RouteAnimator interface {
	AnimateRoute()
}

// DashboardAnimator toggles the dashboard between normal and expanded size
type DashboardAnimator interface {
	ToggleExpand()
}

// QRPanel is the contacts QR code. Enlarge toggles the enlarged state.
type QRPanel interface {
	Enlarged() bool
	Enlarge()
}

// RoutesData belongs to the routes zone. Animating guards against
// restarting the route animation while one is in flight.
type RoutesData struct {
	Panel     RouteAnimator
	Animating bool
}

// DashboardData belongs to the dashboard zone
type DashboardData struct {
	Panel    DashboardAnimator
	Expanded bool
}

// ContactsData belongs to the contacts zone
type ContactsData struct {
	Panel QRPanel
}

func (*RoutesData) zoneData()    {}
func (*DashboardData) zoneData() {}
func (*ContactsData) zoneData()  {}
