package zones

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

var face = basicfont.Face7x13

func newCanvas(w, h int, bg color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	return img
}

func fillRect(img *image.RGBA, r image.Rectangle, c color.Color) {
	draw.Draw(img, r, image.NewUniform(c), image.Point{}, draw.Over)
}

func strokeRect(img *image.RGBA, r image.Rectangle, width int, c color.Color) {
	fillRect(img, image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+width), c)
	fillRect(img, image.Rect(r.Min.X, r.Max.Y-width, r.Max.X, r.Max.Y), c)
	fillRect(img, image.Rect(r.Min.X, r.Min.Y, r.Min.X+width, r.Max.Y), c)
	fillRect(img, image.Rect(r.Max.X-width, r.Min.Y, r.Max.X, r.Max.Y), c)
}

// blend composites c over the pixel at (x, y) with coverage a in [0, 1]
func blend(img *image.RGBA, x, y int, c color.RGBA, a float64) {
	if !(image.Point{X: x, Y: y}.In(img.Bounds())) || a <= 0 {
		return
	}
	if a >= 1 {
		img.SetRGBA(x, y, c)
		return
	}
	dst := img.RGBAAt(x, y)
	mix := func(s, d uint8) uint8 { return uint8(float64(s)*a + float64(d)*(1-a) + 0.5) }
	img.SetRGBA(x, y, color.RGBA{
		R: mix(c.R, dst.R),
		G: mix(c.G, dst.G),
		B: mix(c.B, dst.B),
		A: mix(c.A, dst.A),
	})
}

func lerpColor(a, b color.RGBA, t float64) color.RGBA {
	mix := func(x, y uint8) uint8 { return uint8(float64(x)*(1-t) + float64(y)*t + 0.5) }
	return color.RGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}

// shape rasterizes a signed-distance style coverage function over a box
func shape(img *image.RGBA, box image.Rectangle, c color.RGBA, coverage func(px, py float64) float64) {
	box = box.Intersect(img.Bounds())
	for y := box.Min.Y; y < box.Max.Y; y++ {
		for x := box.Min.X; x < box.Max.X; x++ {
			blend(img, x, y, c, coverage(float64(x)+0.5, float64(y)+0.5))
		}
	}
}

func around(cx, cy, r float64) image.Rectangle {
	return image.Rect(int(cx-r)-1, int(cy-r)-1, int(cx+r)+2, int(cy+r)+2)
}

func disc(img *image.RGBA, cx, cy, r float64, c color.RGBA) {
	shape(img, around(cx, cy, r), c, func(px, py float64) float64 {
		return r + 0.5 - math.Hypot(px-cx, py-cy)
	})
}

func ring(img *image.RGBA, cx, cy, r, width float64, c color.RGBA) {
	shape(img, around(cx, cy, r+width), c, func(px, py float64) float64 {
		return width/2 + 0.5 - math.Abs(math.Hypot(px-cx, py-cy)-r)
	})
}

// glow is a radial gradient from c at the centre to nothing at r
func glow(img *image.RGBA, cx, cy, r float64, c color.RGBA) {
	shape(img, around(cx, cy, r), c, func(px, py float64) float64 {
		return 1 - math.Hypot(px-cx, py-cy)/r
	})
}

// line draws a round-capped segment
func line(img *image.RGBA, x0, y0, x1, y1, width float64, c color.RGBA) {
	half := width / 2
	box := image.Rect(
		int(math.Min(x0, x1)-half)-1, int(math.Min(y0, y1)-half)-1,
		int(math.Max(x0, x1)+half)+2, int(math.Max(y0, y1)+half)+2,
	)
	dx, dy := x1-x0, y1-y0
	lenSq := dx*dx + dy*dy
	shape(img, box, c, func(px, py float64) float64 {
		t := 0.0
		if lenSq > 0 {
			t = math.Max(0, math.Min(1, ((px-x0)*dx+(py-y0)*dy)/lenSq))
		}
		return half + 0.5 - math.Hypot(px-(x0+t*dx), py-(y0+t*dy))
	})
}

func grid(img *image.RGBA, step int, c color.RGBA) {
	b := img.Bounds()
	for x := b.Min.X; x < b.Max.X; x += step {
		fillRect(img, image.Rect(x, b.Min.Y, x+1, b.Max.Y), c)
	}
	for y := b.Min.Y; y < b.Max.Y; y += step {
		fillRect(img, image.Rect(b.Min.X, y, b.Max.X, y+1), c)
	}
}

func verticalGradient(img *image.RGBA, top, bottom color.RGBA) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		t := float64(y-b.Min.Y) / math.Max(1, float64(b.Dy()-1))
		fillRect(img, image.Rect(b.Min.X, y, b.Max.X, y+1), lerpColor(top, bottom, t))
	}
}

func textWidth(s string, scale int) int {
	return font.MeasureString(face, s).Ceil() * scale
}

func textHeight(scale int) int {
	return face.Metrics().Height.Ceil() * scale
}

// text draws s with its top-left corner at (x, y), magnified by scale
func text(img *image.RGBA, x, y int, s string, c color.Color, scale int) {
	if scale < 1 {
		scale = 1
	}
	w := font.MeasureString(face, s).Ceil()
	h := face.Metrics().Height.Ceil()
	if w == 0 {
		return
	}

	glyphs := image.NewRGBA(image.Rect(0, 0, w, h))
	d := &font.Drawer{
		Dst:  glyphs,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(0, face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(s)

	dst := image.Rect(x, y, x+w*scale, y+h*scale)
	draw.NearestNeighbor.Scale(img, dst, glyphs, glyphs.Bounds(), draw.Over, nil)
}

func textCentered(img *image.RGBA, cx, y int, s string, c color.Color, scale int) {
	text(img, cx-textWidth(s, scale)/2, y, s, c, scale)
}
