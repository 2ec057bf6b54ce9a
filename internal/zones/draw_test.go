package zones

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTextDrawsInsideBox(t *testing.T) {
	img := newCanvas(200, 60, Ink)
	text(img, 10, 10, "VRP", White, 2)

	lit := 0
	for y := 0; y < 60; y++ {
		for x := 0; x < 200; x++ {
			if img.RGBAAt(x, y) != Ink {
				lit++
				assert.True(t, image.Pt(x, y).In(image.Rect(10, 10, 10+textWidth("VRP", 2), 10+textHeight(2))))
			}
		}
	}
	assert.Positive(t, lit)
}

func TestRouteMapProgress(t *testing.T) {
	empty := image.NewRGBA(image.Rect(0, 0, 256, 512))
	full := image.NewRGBA(image.Rect(0, 0, 256, 512))
	paintRouteMap(empty, 0)
	paintRouteMap(full, 1)

	// midpoint of the first leg is only drawn once the route has progressed
	a, b := routeStops[0], routeStops[1]
	mx, my := (a.X+b.X)/2, (a.Y+b.Y)/2
	assert.NotEqual(t, empty.RGBAAt(mx, my), full.RGBAAt(mx, my))
}

func TestLerpColorEndpoints(t *testing.T) {
	assert.Equal(t, Violet, lerpColor(Violet, Cyan, 0))
	assert.Equal(t, Cyan, lerpColor(Violet, Cyan, 1))
}
