// Package session wires the booth scene, camera rig and interaction manager
// into one per-window state that a host drives frame by frame.
package session

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/philipparndt/vrpbooth/internal/anim"
	"github.com/philipparndt/vrpbooth/internal/camera"
	"github.com/philipparndt/vrpbooth/internal/config"
	"github.com/philipparndt/vrpbooth/internal/interaction"
	"github.com/philipparndt/vrpbooth/internal/zones"
	"github.com/philipparndt/vrpbooth/pkg/geometry"
)

// Start pose of the camera
var (
	StartPosition = geometry.NewVector3(0, 2, 8)
	StartTarget   = geometry.NewVector3(0, 2, 0)
)

// Session is everything one viewer window runs. All methods belong to the
// host's render loop goroutine.
type Session struct {
	Config     config.Config
	Sched      *anim.Scheduler
	Camera     *camera.Camera
	Orbit      *camera.Orbit
	Controller *camera.Controller
	Booth      *zones.Booth
	Manager    *interaction.Manager
	Tooltips   *interaction.Toasts
	Banner     *interaction.Toasts

	log *slog.Logger
}

type options struct {
	clock     anim.Clock
	navigator interaction.Navigator
	log       *slog.Logger
}

// Option configures a Session
type Option func(*options)

// WithClock replaces the wall clock, for tests
func WithClock(c anim.Clock) Option {
	return func(o *options) { o.clock = c }
}

// WithNavigator replaces the browser used for the contact link
func WithNavigator(n interaction.Navigator) Option {
	return func(o *options) { o.navigator = n }
}

// WithLogger sets the logger for the session and everything it builds
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.log = l }
}

// New builds the scene, paints the panels and registers the zones.
// surface is the host's render target.
func New(ctx context.Context, cfg config.Config, surface interaction.Surface, opts ...Option) (*Session, error) {
	o := options{clock: anim.SystemClock{}, log: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}

	s := &Session{Config: cfg, log: o.log}
	s.Sched = anim.NewScheduler(o.clock)

	rect := surface.Rect()
	aspect := 1.0
	if rect.Height > 0 {
		aspect = rect.Width / rect.Height
	}
	s.Camera = camera.NewCamera(cfg.Camera.FovY, aspect)
	s.Camera.Position = StartPosition
	s.Orbit = camera.NewOrbit(s.Camera, StartTarget)
	s.Controller = camera.NewController(s.Orbit, cfg.Camera.MoveSpeed, bounds(cfg))
	s.applyCamera(cfg)

	s.Tooltips = interaction.NewToasts(s.Sched, cfg.Tooltip.Fade, cfg.Tooltip.Hold, cfg.Tooltip.Fade)
	s.Banner = interaction.NewToasts(s.Sched, cfg.Tooltip.Fade, cfg.Tooltip.BannerHold, cfg.Tooltip.Fade)

	s.Booth = zones.New(s.Sched, s.Banner, cfg.Contacts.URL, zones.WithLogger(o.log))
	if err := s.Booth.Paint(ctx); err != nil {
		return nil, fmt.Errorf("painting booth panels: %w", err)
	}

	mopts := []interaction.ManagerOption{
		interaction.WithLogger(o.log),
		interaction.WithTooltips(s.Tooltips),
	}
	if o.navigator != nil {
		mopts = append(mopts, interaction.WithNavigator(o.navigator))
	}
	s.Manager = interaction.NewManager(surface, s.Camera, s.Orbit, s.Sched, cfg, mopts...)
	s.Booth.Register(s.Manager)

	o.log.Info("booth ready", "zones", len(s.Booth.Zones), "textures", len(s.Booth.Textures))
	return s, nil
}

func bounds(cfg config.Config) camera.Bounds {
	return camera.Bounds{MinX: cfg.Hall.MinX, MaxX: cfg.Hall.MaxX, MinZ: cfg.Hall.MinZ, MaxZ: cfg.Hall.MaxZ}
}

func (s *Session) applyCamera(cfg config.Config) {
	s.Camera.FovY = cfg.Camera.FovY
	s.Orbit.DampingFactor = cfg.Camera.DampingFactor
	s.Orbit.MinDistance = cfg.Camera.MinDistance
	s.Orbit.MaxDistance = cfg.Camera.MaxDistance
	s.Orbit.RotateSpeed = cfg.Camera.RotateSpeed
	s.Controller.Speed = cfg.Camera.MoveSpeed
	s.Controller.Bounds = bounds(cfg)
}

// Frame advances one frame: animations first, then keyboard movement, the
// orbit update and the hall clamp.
func (s *Session) Frame() {
	s.Sched.Tick()
	s.Controller.Update()
	s.Manager.Update()
}

// Resize updates the camera aspect ratio
func (s *Session) Resize(width, height float64) {
	if width > 0 && height > 0 {
		s.Camera.Aspect = width / height
	}
}

// Reconfigure applies a reloaded config. Window settings and the contact
// link baked into the QR image only take effect on restart.
func (s *Session) Reconfigure(cfg config.Config) {
	s.applyCamera(cfg)
	s.Manager.Reconfigure(cfg)
	s.Banner.Hold = cfg.Tooltip.BannerHold
	s.Banner.FadeIn = cfg.Tooltip.Fade
	s.Banner.FadeOut = cfg.Tooltip.Fade
	s.Tooltips.FadeIn = cfg.Tooltip.Fade
	s.Config = cfg

	s.log.Info("config reloaded")
}

// KeyDown forwards a key press by its browser-style code
func (s *Session) KeyDown(code string) { s.Controller.Keys.Press(code) }

// KeyUp forwards a key release
func (s *Session) KeyUp(code string) { s.Controller.Keys.Release(code) }
