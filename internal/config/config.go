// Package config loads the booth settings from a YAML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all tunables of the booth viewer.
type Config struct {
	LogLevel string `yaml:"log_level"`

	Window   WindowConfig   `yaml:"window"`
	Camera   CameraConfig   `yaml:"camera"`
	Hall     HallConfig     `yaml:"hall"`
	Teleport TeleportConfig `yaml:"teleport"`
	Tooltip  TooltipConfig  `yaml:"tooltip"`
	Contacts ContactsConfig `yaml:"contacts"`
}

// WindowConfig describes the viewer window
type WindowConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Title     string `yaml:"title"`
	TargetFPS int    `yaml:"target_fps"`
}

// CameraConfig holds lens and control settings
type CameraConfig struct {
	FovY          float64 `yaml:"fov_y"` // degrees
	MoveSpeed     float64 `yaml:"move_speed"`
	DampingFactor float64 `yaml:"damping_factor"`
	MinDistance   float64 `yaml:"min_distance"`
	MaxDistance   float64 `yaml:"max_distance"`
	RotateSpeed   float64 `yaml:"rotate_speed"` // radians per pixel of drag
}

// HallConfig is the rectangle the camera is confined to
type HallConfig struct {
	MinX float64 `yaml:"min_x"`
	MaxX float64 `yaml:"max_x"`
	MinZ float64 `yaml:"min_z"`
	MaxZ float64 `yaml:"max_z"`
}

// TeleportConfig controls the fly-to animation
type TeleportConfig struct {
	Duration        time.Duration      `yaml:"duration"`
	EyeHeight       float64            `yaml:"eye_height"`
	DefaultDistance float64            `yaml:"default_distance"`
	Distances       map[string]float64 `yaml:"distances"`
}

// TooltipConfig controls on-screen tooltips
type TooltipConfig struct {
	Hold       time.Duration `yaml:"hold"`
	Fade       time.Duration `yaml:"fade"`
	BannerHold time.Duration `yaml:"banner_hold"`
}

// ContactsConfig holds the demo link behind the QR code
type ContactsConfig struct {
	URL string `yaml:"url"`
}

// Default returns the booth configuration used when no file is given.
func Default() Config {
	return Config{
		LogLevel: "info",
		Window: WindowConfig{
			Width:     1400,
			Height:    900,
			Title:     "VRP Solution - Virtual Booth",
			TargetFPS: 60,
		},
		Camera: CameraConfig{
			FovY:          75,
			MoveSpeed:     0.15,
			DampingFactor: 0.05,
			MinDistance:   3,
			MaxDistance:   20,
			RotateSpeed:   0.005,
		},
		Hall: HallConfig{MinX: -11, MaxX: 11, MinZ: -8, MaxZ: 9},
		Teleport: TeleportConfig{
			Duration:        1500 * time.Millisecond,
			EyeHeight:       2,
			DefaultDistance: 4,
			Distances: map[string]float64{
				"MainStand":     5,
				"DashboardZone": 3.5,
				"ContactsZone":  3.5,
			},
		},
		Tooltip: TooltipConfig{
			Hold:       3500 * time.Millisecond,
			Fade:       500 * time.Millisecond,
			BannerHold: 3000 * time.Millisecond,
		},
		Contacts: ContactsConfig{URL: "https://vrp-solution.com/demo"},
	}
}

// Load reads the config at path over the defaults. A missing file is not an
// error and yields Default().
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects settings the viewer cannot run with
func (c Config) Validate() error {
	if c.Hall.MinX >= c.Hall.MaxX || c.Hall.MinZ >= c.Hall.MaxZ {
		return fmt.Errorf("hall bounds are empty: x [%g, %g], z [%g, %g]",
			c.Hall.MinX, c.Hall.MaxX, c.Hall.MinZ, c.Hall.MaxZ)
	}
	if c.Camera.MoveSpeed < 0 {
		return fmt.Errorf("camera move_speed must not be negative, got %g", c.Camera.MoveSpeed)
	}
	if c.Teleport.Duration <= 0 {
		return fmt.Errorf("teleport duration must be positive, got %s", c.Teleport.Duration)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	return nil
}

// StandoffDistance returns how far in front of a zone the teleport stops
func (t TeleportConfig) StandoffDistance(zone string) float64 {
	if d, ok := t.Distances[zone]; ok {
		return d
	}
	return t.DefaultDistance
}

// SlogLevel maps the configured log level to slog
func (c Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Marshal renders the config as YAML
func (c Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("encoding config: %w", err)
	}
	return data, nil
}
