package app

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/vrpbooth/internal/interaction"
)

// clickSlop is how far the pointer may travel between press and release
// and still count as a click
const clickSlop = 4.0

// keyCodes maps raylib keys to the browser-style codes the session expects
var keyCodes = map[int32]string{
	rl.KeyW:     "KeyW",
	rl.KeyA:     "KeyA",
	rl.KeyS:     "KeyS",
	rl.KeyD:     "KeyD",
	rl.KeyUp:    "ArrowUp",
	rl.KeyDown:  "ArrowDown",
	rl.KeyLeft:  "ArrowLeft",
	rl.KeyRight: "ArrowRight",
}

// handleInput processes user input
func (app *App) handleInput() {
	if app.UI.farewell {
		return
	}

	if rl.IsKeyPressed(rl.KeyEscape) {
		app.leave()
		return
	}
	if rl.IsKeyPressed(rl.KeyH) {
		app.UI.showHelp = !app.UI.showHelp
	}

	for key, code := range keyCodes {
		down := rl.IsKeyDown(key)
		if down == app.Input.held[key] {
			continue
		}
		app.Input.held[key] = down
		if down {
			app.Session.KeyDown(code)
		} else {
			app.Session.KeyUp(code)
		}
	}

	mouse := rl.GetMousePosition()
	ev := interaction.PointerEvent{X: float64(mouse.X), Y: float64(mouse.Y)}
	if mouse != app.Input.lastMousePos {
		app.Input.lastMousePos = mouse
		app.Session.Manager.PointerMove(ev)
	}

	// Track mouse down for click vs drag detection
	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		app.Input.mouseDownPos = mouse
		app.Input.mouseMoved = false
	}

	// Look around with mouse drag
	if rl.IsMouseButtonDown(rl.MouseLeftButton) {
		if rl.Vector2Distance(app.Input.mouseDownPos, mouse) > clickSlop {
			app.Input.mouseMoved = true
		}
		delta := rl.GetMouseDelta()
		if app.Input.mouseMoved && (delta.X != 0 || delta.Y != 0) {
			app.Session.Orbit.Rotate(float64(delta.X), float64(delta.Y))
		}
	}

	if rl.IsMouseButtonReleased(rl.MouseLeftButton) && !app.Input.mouseMoved {
		app.Session.Manager.Click(ev)
	}

	// Zoom with mouse wheel
	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		app.Session.Orbit.Dolly(math.Pow(0.95, float64(wheel)))
	}
}

// leave ends the visit: held keys are released and input is no longer
// forwarded to the session
func (app *App) leave() {
	for key, down := range app.Input.held {
		if down {
			app.Session.KeyUp(keyCodes[key])
		}
	}
	app.Input.held = make(map[int32]bool)
	app.surface.SetCursor(interaction.CursorDefault)
	app.UI.farewell = true
	app.log.Info("visitor left the booth")
}
