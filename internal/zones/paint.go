package zones

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/skip2/go-qrcode"
	"golang.org/x/image/draw"
)

// routeStops are the map points of the demo route, in 256x512 texture space
var routeStops = []image.Point{
	{X: 50, Y: 400},
	{X: 90, Y: 325},
	{X: 140, Y: 275},
	{X: 175, Y: 200},
	{X: 150, Y: 125},
	{X: 100, Y: 75},
}

func stopColor(i int) color.RGBA {
	switch i {
	case 0:
		return Violet
	case len(routeStops) - 1:
		return Cyan
	default:
		return Lavender
	}
}

// paintRouteMap draws the routes screen with the route drawn up to progress
func paintRouteMap(img *image.RGBA, progress float64) {
	draw.Draw(img, img.Bounds(), image.NewUniform(Ink), image.Point{}, draw.Src)
	grid(img, 20, Slate)

	for i, p := range routeStops {
		glow(img, float64(p.X), float64(p.Y), 8, stopColor(i))
		ring(img, float64(p.X), float64(p.Y), 6, 1.5, stopColor(i))
	}

	segments := float64(len(routeStops) - 1)
	reach := progress * segments
	for i := 0; i < len(routeStops)-1; i++ {
		part := math.Min(1, reach-float64(i))
		if part <= 0 {
			break
		}
		a, b := routeStops[i], routeStops[i+1]
		ex := float64(a.X) + float64(b.X-a.X)*part
		ey := float64(a.Y) + float64(b.Y-a.Y)*part
		c := lerpColor(Violet, Cyan, (float64(i)+part)/segments)
		line(img, float64(a.X), float64(a.Y), ex, ey, 5, withAlpha(c, 90))
		line(img, float64(a.X), float64(a.Y), ex, ey, 2, c)
	}

	text(img, 15, 20, "AI route", SlateLight, 2)
	if progress >= 1 {
		cx := img.Bounds().Dx() / 2
		textCentered(img, cx, 450, "30% fuel savings", Emerald, 1)
		textCentered(img, cx, 470, "80% less chaos", Emerald, 1)
	}
}

func withAlpha(c color.RGBA, a uint8) color.RGBA {
	c.A = a
	return c
}

type metric struct {
	title, value, unit, delta string
	accent                    color.RGBA
}

var dashboardMetrics = []metric{
	{title: "Fuel saved", value: "847", unit: "litres", delta: "+32%", accent: Violet},
	{title: "Optimized", value: "1,247", unit: "routes", delta: "+18%", accent: Cyan},
	{title: "Active couriers", value: "156", unit: "online", delta: "95%", accent: Emerald},
}

var weeklyEfficiency = []float64{0.62, 0.68, 0.71, 0.75, 0.82, 0.88, 0.93}

func paintDashboard(img *image.RGBA) {
	verticalGradient(img, Ink, Navy)
	text(img, 20, 12, "Operations dashboard", Mist, 2)

	for i, m := range dashboardMetrics {
		card := image.Rect(20+i*160, 50, 170+i*160, 150)
		fillRect(img, card, withAlpha(Slate, 200))
		strokeRect(img, card, 2, m.accent)
		text(img, card.Min.X+10, card.Min.Y+8, m.title, SlateLight, 1)
		text(img, card.Min.X+10, card.Min.Y+28, m.value, White, 3)
		text(img, card.Min.X+10, card.Min.Y+70, m.unit, SlateLight, 1)
		text(img, card.Max.X-textWidth(m.delta, 1)-10, card.Min.Y+70, m.delta, m.accent, 1)
	}

	chart := image.Rect(20, 170, 490, 300)
	fillRect(img, chart, withAlpha(Slate, 160))
	text(img, chart.Min.X+10, chart.Min.Y+6, "Weekly efficiency", SlateLight, 1)

	barW := (chart.Dx() - 40) / len(weeklyEfficiency)
	floor := chart.Max.Y - 10
	for i, v := range weeklyEfficiency {
		h := int(v * float64(chart.Dy()-40))
		x := chart.Min.X + 20 + i*barW
		fillRect(img, image.Rect(x+4, floor-h, x+barW-4, floor), lerpColor(Violet, Cyan, float64(i)/float64(len(weeklyEfficiency)-1)))
	}
}

func paintAI(img *image.RGBA) {
	verticalGradient(img, Ink, Navy)
	cx, cy := float64(img.Bounds().Dx())/2, 90.0

	glow(img, cx, cy, 70, withAlpha(Violet, 160))
	ring(img, cx, cy, 50, 3, Lavender)
	ring(img, cx, cy, 32, 2, Cyan)
	disc(img, cx, cy, 14, Lavender)
	for i := 0; i < 8; i++ {
		a := float64(i) * math.Pi / 4
		line(img, cx+math.Cos(a)*18, cy+math.Sin(a)*18, cx+math.Cos(a)*48, cy+math.Sin(a)*48, 1.5, withAlpha(Cyan, 180))
	}

	mid := img.Bounds().Dx() / 2
	textCentered(img, mid, 160, "AI Engine", White, 2)
	textCentered(img, mid, 190, "Automatic route", SlateLight, 1)
	textCentered(img, mid, 205, "planning", SlateLight, 1)
	textCentered(img, mid, 222, "< 2 sec", Cyan, 2)
	textCentered(img, mid, 242, "for 100+ delivery stops", SlateLight, 1)
}

var keyResults = []struct {
	value, label string
	accent       color.RGBA
}{
	{value: "30%", label: "fuel savings", accent: Violet},
	{value: "80%", label: "route optimization", accent: Cyan},
	{value: "95%", label: "ETA accuracy", accent: Emerald},
}

func paintInfographics(img *image.RGBA) {
	verticalGradient(img, Ink, Navy)
	mid := img.Bounds().Dx() / 2
	textCentered(img, mid, 15, "Key results", Mist, 2)

	for i, r := range keyResults {
		y := 60 + i*105
		card := image.Rect(15, y, img.Bounds().Dx()-15, y+90)
		fillRect(img, card, withAlpha(Slate, 180))
		fillRect(img, image.Rect(card.Min.X, card.Min.Y, card.Min.X+4, card.Max.Y), r.accent)
		textCentered(img, mid, y+14, r.value, r.accent, 4)
		textCentered(img, mid, y+68, r.label, SlateLight, 1)
	}
}

var activeRoutes = []struct {
	id, driver string
	stops      int
	progress   float64
}{
	{id: "R-1042", driver: "A. Petrov", stops: 14, progress: 0.72},
	{id: "R-1043", driver: "M. Ivanova", stops: 9, progress: 0.45},
	{id: "R-1047", driver: "D. Sokolov", stops: 21, progress: 0.18},
}

func paintAppUI(img *image.RGBA) {
	b := img.Bounds()
	fillRect(img, b, Navy)
	mid := b.Dx() / 2

	// route map card
	card := image.Rect(10, 20, b.Dx()-10, 250)
	fillRect(img, card, Ink)
	text(img, card.Min.X+8, card.Min.Y+6, "Route map", Mist, 1)
	pts := []image.Point{{X: 40, Y: 220}, {X: 70, Y: 160}, {X: 130, Y: 140}, {X: 160, Y: 90}, {X: 200, Y: 60}}
	for i := 0; i < len(pts)-1; i++ {
		line(img, float64(pts[i].X), float64(pts[i].Y), float64(pts[i+1].X), float64(pts[i+1].Y), 3, Cyan)
	}
	for _, p := range pts {
		disc(img, float64(p.X), float64(p.Y), 4, Violet)
	}
	text(img, card.Min.X+8, card.Max.Y-34, "Distance: 47 km", SlateLight, 1)
	text(img, card.Min.X+8, card.Max.Y-18, "Time: 1h 24min", SlateLight, 1)

	textCentered(img, mid, 265, "Active routes", Mist, 1)
	for i, r := range activeRoutes {
		row := image.Rect(10, 290+i*75, b.Dx()-10, 355+i*75)
		fillRect(img, row, Slate)
		text(img, row.Min.X+8, row.Min.Y+6, r.id, White, 1)
		text(img, row.Min.X+8, row.Min.Y+22, r.driver, SlateLight, 1)
		text(img, row.Max.X-70, row.Min.Y+22, fmt.Sprintf("%d stops", r.stops), SlateLight, 1)

		bar := image.Rect(row.Min.X+8, row.Max.Y-16, row.Max.X-8, row.Max.Y-8)
		fillRect(img, bar, Navy)
		fill := bar
		fill.Max.X = bar.Min.X + int(float64(bar.Dx())*r.progress)
		fillRect(img, fill, Emerald)
	}
}

func paintStand(img *image.RGBA) {
	verticalGradient(img, Ink, hex(0x1e1b4b))
	mid := img.Bounds().Dx() / 2
	textCentered(img, mid, 90, "Routes", White, 7)
	textCentered(img, mid, 190, "without chaos.", White, 7)
	textCentered(img, mid, 290, "AI at the core", Violet, 5)
	text(img, img.Bounds().Dx()-110, img.Bounds().Dy()-60, "VRP", Cyan, 4)
}

// paintQR renders content as a QR code centred on a white card
func paintQR(img *image.RGBA, content string) error {
	code, err := qrcode.New(content, qrcode.Medium)
	if err != nil {
		return fmt.Errorf("encoding QR code: %w", err)
	}
	code.ForegroundColor = Ink
	code.BackgroundColor = White

	b := img.Bounds()
	draw.Draw(img, b, image.NewUniform(White), image.Point{}, draw.Src)
	size := b.Dx() - 32
	qr := code.Image(size)
	at := image.Rect(16, 16, 16+size, 16+size)
	draw.Draw(img, at, qr, qr.Bounds().Min, draw.Src)

	// brand badge in the centre
	c := b.Dx() / 2
	fillRect(img, image.Rect(c-22, c-12, c+22, c+12), Violet)
	textCentered(img, c, c-6, "VRP", White, 1)
	return nil
}

// paintErrorGlyph marks a panel whose image could not be produced
func paintErrorGlyph(img *image.RGBA) {
	b := img.Bounds()
	draw.Draw(img, b, image.NewUniform(Navy), image.Point{}, draw.Src)
	w, h := float64(b.Dx()), float64(b.Dy())
	line(img, w*0.25, h*0.25, w*0.75, h*0.75, 10, errorRed)
	line(img, w*0.75, h*0.25, w*0.25, h*0.75, 10, errorRed)
	textCentered(img, b.Dx()/2, b.Dy()-24, "QR unavailable", errorRed, 1)
}

func paintLabel(img *image.RGBA, s string, c color.RGBA, scale int) {
	draw.Draw(img, img.Bounds(), image.NewUniform(transparent), image.Point{}, draw.Src)
	textCentered(img, img.Bounds().Dx()/2, (img.Bounds().Dy()-textHeight(scale))/2, s, c, scale)
}
