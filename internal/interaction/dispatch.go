package interaction

import "time"

// RouteGuard is how long the routes zone ignores repeated clicks
const RouteGuard = 2000 * time.Millisecond

// Tooltip texts
const (
	RoutesTooltip       = "AI route built! 30% fuel savings, 80% less chaos"
	AITooltip           = "The AI engine computes optimal routes in under 2 seconds"
	DashboardTooltip    = "Dashboard: 847 l saved, 1247 routes, 156 couriers online"
	InfographicsTooltip = "Key results: 30% savings, 80% optimization, 95% ETA accuracy"
	AppUITooltip        = "App interface: live route map and delivery management"
)

type clickAction func(m *Manager, z *Zone)

var clickActions = map[string]clickAction{
	RoutesZone:       (*Manager).clickRoutes,
	AIZone:           tooltipAction(AITooltip),
	DashboardZone:    (*Manager).clickDashboard,
	InfographicsZone: tooltipAction(InfographicsTooltip),
	ContactsZone:     (*Manager).clickContacts,
	AppUIZone:        tooltipAction(AppUITooltip),
	MainStand:        func(*Manager, *Zone) {},
}

func tooltipAction(text string) clickAction {
	return func(m *Manager, _ *Zone) { m.tooltips.Show(text) }
}

// dispatch runs the click action registered for the zone's name
func (m *Manager) dispatch(z *Zone) {
	action, ok := clickActions[z.Name()]
	if !ok {
		m.log.Info("clicked on", "zone", z.Name())
		return
	}
	action(m, z)
}

func (m *Manager) clickRoutes(z *Zone) {
	data, ok := z.Data.(*RoutesData)
	if !ok || data.Panel == nil {
		m.log.Debug("routes zone has no map screen", "zone", z.Name())
		return
	}
	if data.Animating {
		return
	}

	data.Animating = true
	data.Panel.AnimateRoute()
	m.sched.After(RouteGuard, func() { data.Animating = false })
	m.tooltips.Show(RoutesTooltip)
}

func (m *Manager) clickDashboard(z *Zone) {
	data, ok := z.Data.(*DashboardData)
	if !ok || data.Panel == nil {
		m.log.Debug("dashboard zone has no panel", "zone", z.Name())
		return
	}

	data.Panel.ToggleExpand()
	if !data.Expanded {
		m.tooltips.Show(DashboardTooltip)
	}
	data.Expanded = !data.Expanded
}

func (m *Manager) clickContacts(z *Zone) {
	data, ok := z.Data.(*ContactsData)
	if !ok || data.Panel == nil {
		m.log.Debug("contacts zone has no QR panel", "zone", z.Name())
		return
	}

	if data.Panel.Enlarged() {
		m.log.Info("opening contact link", "url", m.contact)
		if err := m.navigator.Open(m.contact); err != nil {
			m.log.Warn("failed to open contact link", "url", m.contact, "err", err)
		}
		return
	}
	data.Panel.Enlarge()
}
