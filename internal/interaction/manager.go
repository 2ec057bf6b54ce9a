// Package interaction implements the booth's pointer interaction: picking
// zones under the cursor, hover feedback, click actions and the camera
// teleport to a selected zone.
package interaction

import (
	"log/slog"

	"github.com/philipparndt/vrpbooth/internal/anim"
	"github.com/philipparndt/vrpbooth/internal/config"
	"github.com/philipparndt/vrpbooth/internal/scene"
)

// HoverLift is how far a hovered zone rises
const HoverLift = 0.1

// Manager owns the zone registry and the interaction state. All methods must
// be called from the render loop goroutine.
type Manager struct {
	surface Surface
	camera  RayCaster
	rig     Rig
	sched   *anim.Scheduler

	teleport config.TeleportConfig
	contact  string

	zones     []*Zone
	meshes    []*scene.Mesh
	owner     map[uint64]*Zone
	baselines map[uint64]float64

	state InteractionState

	tooltips  *Toasts
	navigator Navigator
	log       *slog.Logger
}

// ManagerOption configures a Manager
type ManagerOption func(*Manager)

// WithLogger sets the logger for click and navigation events
func WithLogger(l *slog.Logger) ManagerOption {
	return func(m *Manager) { m.log = l }
}

// WithNavigator replaces the system browser navigator
func WithNavigator(n Navigator) ManagerOption {
	return func(m *Manager) { m.navigator = n }
}

// WithTooltips shares a tooltip slot with the host
func WithTooltips(t *Toasts) ManagerOption {
	return func(m *Manager) { m.tooltips = t }
}

// NewManager creates an interaction manager for the given surface, camera
// and orbit rig. Animations run on sched.
func NewManager(surface Surface, camera RayCaster, rig Rig, sched *anim.Scheduler, cfg config.Config, opts ...ManagerOption) *Manager {
	m := &Manager{
		surface:   surface,
		camera:    camera,
		rig:       rig,
		sched:     sched,
		teleport:  cfg.Teleport,
		contact:   cfg.Contacts.URL,
		owner:     make(map[uint64]*Zone),
		baselines: make(map[uint64]float64),
		state:     newInteractionState(),
		navigator: BrowserNavigator{},
		log:       slog.Default(),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.tooltips == nil {
		m.tooltips = NewToasts(sched, cfg.Tooltip.Fade, cfg.Tooltip.Hold, cfg.Tooltip.Fade)
	}
	return m
}

// Reconfigure applies reloaded teleport and contact settings
func (m *Manager) Reconfigure(cfg config.Config) {
	m.teleport = cfg.Teleport
	m.contact = cfg.Contacts.URL
	m.tooltips.Hold = cfg.Tooltip.Hold
	m.tooltips.FadeOut = cfg.Tooltip.Fade
}

// RegisterZone adds a zone to the registry, indexes its meshes and captures
// the baseline emissive intensity of every emissive material under it.
// Baselines are never overwritten, so a material shared with an earlier zone
// keeps its first value.
func (m *Manager) RegisterZone(z *Zone) {
	m.zones = append(m.zones, z)

	z.Node.EachMesh(func(mesh *scene.Mesh) {
		if _, dup := m.owner[mesh.ID()]; !dup {
			m.meshes = append(m.meshes, mesh)
		}
		m.owner[mesh.ID()] = z
	})
	z.Node.EachMaterial(func(mat *scene.Material) {
		if !mat.HasEmissive() {
			return
		}
		if _, ok := m.baselines[mat.ID()]; !ok {
			m.baselines[mat.ID()] = mat.EmissiveIntensity
		}
	})

	m.log.Debug("zone registered", "zone", z.Name())
}

// Zones returns the registered zones in registration order
func (m *Manager) Zones() []*Zone { return m.zones }

// Zone looks a registered zone up by name
func (m *Manager) Zone(name string) *Zone {
	for _, z := range m.zones {
		if z.Name() == name {
			return z
		}
	}
	return nil
}

// Baseline returns the resting emissive intensity of a material
func (m *Manager) Baseline(mat *scene.Material) (float64, bool) {
	v, ok := m.baselines[mat.ID()]
	return v, ok
}

// State exposes the interaction state for rendering and inspection
func (m *Manager) State() *InteractionState { return &m.state }

// Tooltips returns the tooltip slot
func (m *Manager) Tooltips() *Toasts { return m.tooltips }

// PointerMove updates the hover state for a pointer move event
func (m *Manager) PointerMove(ev PointerEvent) {
	hit, _ := m.Pick(ev)
	m.hover(hit.Zone)
}

// Click picks the zone under the pointer, teleports to it and runs its action
func (m *Manager) Click(ev PointerEvent) {
	hit, ok := m.Pick(ev)
	if !ok || hit.Zone == nil {
		return
	}
	m.Teleport(hit.Zone)
	m.dispatch(hit.Zone)
}

// Update is the per-frame hook for continuous zone effects. Nothing runs
// continuously yet; animations are ticked by the scheduler.
func (m *Manager) Update() {}
