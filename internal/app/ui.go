package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/vrpbooth/version"
)

const (
	farewellTitle    = "Thank you for visiting the VRP Solution booth"
	farewellSubtitle = "Routes without chaos"
)

var helpLines = []string{
	"W A S D / Arrows: Walk",
	"Left Drag: Look around | Wheel: Zoom",
	"Click a stand: Visit | H: Hide help | Esc: Leave",
}

// drawUI draws the user interface
func (app *App) drawUI() {
	screenWidth := float32(rl.GetScreenWidth())
	screenHeight := float32(rl.GetScreenHeight())
	now := app.Session.Sched.Now()

	if toast, ok := app.Session.Tooltips.Current(); ok {
		app.drawToast(toast.Text, app.Session.Tooltips.Opacity(now), screenWidth/2, screenHeight-90)
	}
	if banner, ok := app.Session.Banner.Current(); ok {
		app.drawToast(banner.Text, app.Session.Banner.Opacity(now), screenWidth/2, 40)
	}

	if app.UI.showHelp && !app.UI.farewell {
		y := screenHeight - float32(len(helpLines))*20 - 10
		for _, line := range helpLines {
			rl.DrawTextEx(app.UI.font, line, rl.Vector2{X: 10, Y: y}, 14, 1, rl.LightGray)
			y += 20
		}
	}

	v := "vrpbooth " + version.GetFullVersion()
	size := rl.MeasureTextEx(app.UI.font, v, 12, 1)
	rl.DrawTextEx(app.UI.font, v, rl.Vector2{X: screenWidth - size.X - 10, Y: screenHeight - size.Y - 10}, 12, 1, rl.Gray)

	if app.UI.farewell {
		app.drawFarewell(screenWidth, screenHeight)
	}
}

// drawToast draws a message box centered at (cx, cy)
func (app *App) drawToast(text string, opacity float64, cx, cy float32) {
	if opacity <= 0 {
		return
	}
	alpha := uint8(opacity * 255)

	fontSize := float32(18)
	boxPadding := float32(14)
	textSize := rl.MeasureTextEx(app.UI.font, text, fontSize, 1)
	boxWidth := textSize.X + boxPadding*2
	boxHeight := textSize.Y + boxPadding*2
	boxX := cx - boxWidth/2
	boxY := cy - boxHeight/2

	rl.DrawRectangleRounded(rl.Rectangle{X: boxX, Y: boxY, Width: boxWidth, Height: boxHeight}, 0.3, 8, rl.NewColor(15, 23, 42, uint8(opacity*220)))
	rl.DrawRectangleRoundedLines(rl.Rectangle{X: boxX, Y: boxY, Width: boxWidth, Height: boxHeight}, 0.3, 8, rl.NewColor(124, 58, 237, alpha))
	rl.DrawTextEx(app.UI.font, text, rl.Vector2{X: boxX + boxPadding, Y: boxY + boxPadding}, fontSize, 1, rl.NewColor(255, 255, 255, alpha))
}

func (app *App) drawFarewell(w, h float32) {
	rl.DrawRectangle(0, 0, int32(w), int32(h), rl.NewColor(15, 23, 42, 235))

	title := rl.MeasureTextEx(app.UI.font, farewellTitle, 32, 2)
	rl.DrawTextEx(app.UI.font, farewellTitle, rl.Vector2{X: (w - title.X) / 2, Y: h/2 - title.Y}, 32, 2, rl.White)

	sub := rl.MeasureTextEx(app.UI.font, farewellSubtitle, 20, 1)
	rl.DrawTextEx(app.UI.font, farewellSubtitle, rl.Vector2{X: (w - sub.X) / 2, Y: h/2 + 12}, 20, 1, rl.NewColor(167, 139, 250, 255))
}
