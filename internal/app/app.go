// Package app is the raylib host of the booth: it owns the window, feeds
// input into the session and draws the scene every frame.
package app

import (
	"context"
	"fmt"
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/vrpbooth/internal/config"
	"github.com/philipparndt/vrpbooth/internal/session"
)

type App struct {
	Session *session.Session
	Window  WindowState
	Input   InputState
	Render  RenderState
	UI      UIState

	surface *windowSurface
	reloads *session.Reloads
	log     *slog.Logger
}

// Options configures Run
type Options struct {
	// ConfigPath is watched for changes when Watch is set
	ConfigPath string
	Watch      bool
	Logger     *slog.Logger
}

// Run opens the booth window and blocks until it is closed or ctx is done
func Run(ctx context.Context, cfg config.Config, opts Options) error {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}

	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagWindowHighdpi | rl.FlagMsaa4xHint) // Must be before InitWindow
	rl.InitWindow(int32(cfg.Window.Width), int32(cfg.Window.Height), cfg.Window.Title)
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(cfg.Window.TargetFPS))
	// Escape says goodbye instead of closing the window
	rl.SetExitKey(0)

	app := &App{
		Window:  WindowState{width: int32(rl.GetScreenWidth()), height: int32(rl.GetScreenHeight())},
		Input:   InputState{held: make(map[int32]bool)},
		UI:      UIState{font: rl.GetFontDefault(), showHelp: true},
		surface: &windowSurface{},
		log:     log,
	}

	s, err := session.New(ctx, cfg, app.surface, session.WithLogger(log))
	if err != nil {
		return fmt.Errorf("starting booth: %w", err)
	}
	app.Session = s

	if opts.Watch && opts.ConfigPath != "" {
		r, err := session.WatchConfig(opts.ConfigPath, log)
		if err != nil {
			log.Warn("config watching unavailable", "path", opts.ConfigPath, "err", err)
		} else {
			app.reloads = r
			defer r.Close()
		}
	}

	app.Render = RenderState{
		quad:     createQuadMesh(),
		material: rl.LoadMaterialDefault(),
		textures: make(map[string]*panelTexture),
	}
	defer app.unloadTextures()
	defer rl.UnloadMesh(&app.Render.quad)

	for !rl.WindowShouldClose() {
		if ctx.Err() != nil {
			break
		}

		s.ApplyReloads(app.reloads)
		app.handleResize()
		app.handleInput()

		s.Frame()
		app.syncTextures()

		rl.BeginDrawing()
		rl.ClearBackground(rl.NewColor(15, 18, 25, 255))

		rl.BeginMode3D(app.camera())
		app.drawScene()
		rl.EndMode3D()

		app.drawUI()
		rl.EndDrawing()
	}

	log.Info("booth closed")
	return nil
}

func (app *App) handleResize() {
	w, h := int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight())
	if w == app.Window.width && h == app.Window.height {
		return
	}
	app.Window.width, app.Window.height = w, h
	app.Session.Resize(float64(w), float64(h))
}

// camera converts the session camera to raylib
func (app *App) camera() rl.Camera3D {
	c := app.Session.Camera
	return rl.Camera3D{
		Position:   vec3(c.Position),
		Target:     vec3(c.LookAt),
		Up:         vec3(c.Up),
		Fovy:       float32(c.FovY),
		Projection: rl.CameraPerspective,
	}
}
