package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/vrpbooth/internal/interaction"
)

// WindowState tracks the framebuffer size between frames
type WindowState struct {
	width  int32
	height int32
}

// InputState holds mouse and keyboard state
type InputState struct {
	mouseDownPos rl.Vector2
	mouseMoved   bool // pointer left the click slop since the button went down
	lastMousePos rl.Vector2
	held         map[int32]bool
}

// RenderState holds GPU resources
type RenderState struct {
	quad     rl.Mesh     // unit quad the panels are drawn on
	material rl.Material // default material, texture swapped per panel
	textures map[string]*panelTexture
	panels   []panelFace
}

// UIState holds overlay state
type UIState struct {
	font     rl.Font
	showHelp bool
	farewell bool // set once the visitor leaves with Escape
}

var _ interaction.Surface = (*windowSurface)(nil)

// windowSurface reports the raylib window to the interaction manager
type windowSurface struct {
	cursor interaction.Cursor
}

func (s *windowSurface) Rect() interaction.Rect {
	return interaction.Rect{
		Width:  float64(rl.GetScreenWidth()),
		Height: float64(rl.GetScreenHeight()),
	}
}

func (s *windowSurface) SetCursor(c interaction.Cursor) {
	if c == s.cursor {
		return
	}
	s.cursor = c
	if c == interaction.CursorPointer {
		rl.SetMouseCursor(rl.MouseCursorPointingHand)
	} else {
		rl.SetMouseCursor(rl.MouseCursorDefault)
	}
}
