package viewer

import (
	"image"
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/philipparndt/vrpbooth/internal/scene"
)

// vertex is a point in view space with its texture coordinate
type vertex struct {
	pos  mgl64.Vec3
	u, v float64
}

// screenVertex is a projected vertex. invW is 1/depth, used both for the
// depth test and for perspective-correct texture coordinates.
type screenVertex struct {
	x, y   float64
	invW   float64
	uw, vw float64
}

// frame is one software-rendered image with its depth buffer
type frame struct {
	img    *image.RGBA
	depth  []float64 // 1/w per pixel, larger is closer
	width  int
	height int
	proj   mgl64.Mat4
	near   float64
}

func newFrame(width, height int, proj mgl64.Mat4, near float64) *frame {
	return &frame{
		img:    image.NewRGBA(image.Rect(0, 0, width, height)),
		depth:  make([]float64, width*height),
		width:  width,
		height: height,
		proj:   proj,
		near:   near,
	}
}

func (f *frame) clear(c color.RGBA) {
	for i := 0; i < len(f.img.Pix); i += 4 {
		f.img.Pix[i+0] = c.R
		f.img.Pix[i+1] = c.G
		f.img.Pix[i+2] = c.B
		f.img.Pix[i+3] = c.A
	}
	for i := range f.depth {
		f.depth[i] = 0
	}
}

// faceUV are the texture coordinates of a face's corners: bottom-left,
// bottom-right, top-right, top-left
var faceUV = [4][2]float64{{0, 1}, {1, 1}, {1, 0}, {0, 0}}

// drawFace clips a world-space face against the near plane and fills it.
// With a nil texture the face is flat shaded with col.
func (f *frame) drawFace(view mgl64.Mat4, face scene.Face, col color.RGBA, tex *image.RGBA) {
	poly := make([]vertex, 0, 8)
	for i, c := range face.Corners {
		p := view.Mul4x1(mgl64.Vec4{c.X, c.Y, c.Z, 1})
		poly = append(poly, vertex{pos: p.Vec3(), u: faceUV[i][0], v: faceUV[i][1]})
	}

	poly = clipNear(poly, f.near)
	if len(poly) < 3 {
		return
	}

	pts := make([]screenVertex, len(poly))
	for i, vx := range poly {
		pts[i] = f.project(vx)
	}
	for i := 1; i+1 < len(pts); i++ {
		f.fillTriangle(pts[0], pts[i], pts[i+1], col, tex)
	}
}

// clipNear keeps the part of a convex polygon in front of the near plane.
// The camera looks down -Z in view space.
func clipNear(poly []vertex, near float64) []vertex {
	inside := func(vx vertex) bool { return vx.pos.Z() <= -near }

	out := make([]vertex, 0, len(poly)+2)
	for i := range poly {
		cur := poly[i]
		next := poly[(i+1)%len(poly)]
		curIn, nextIn := inside(cur), inside(next)

		if curIn {
			out = append(out, cur)
		}
		if curIn != nextIn {
			t := (-near - cur.pos.Z()) / (next.pos.Z() - cur.pos.Z())
			out = append(out, vertex{
				pos: cur.pos.Add(next.pos.Sub(cur.pos).Mul(t)),
				u:   cur.u + (next.u-cur.u)*t,
				v:   cur.v + (next.v-cur.v)*t,
			})
		}
	}
	return out
}

func (f *frame) project(vx vertex) screenVertex {
	clip := f.proj.Mul4x1(vx.pos.Vec4(1))
	w := clip.W()
	invW := 1 / w
	return screenVertex{
		x:    (clip.X()*invW + 1) / 2 * float64(f.width),
		y:    (1 - clip.Y()*invW) / 2 * float64(f.height),
		invW: invW,
		uw:   vx.u * invW,
		vw:   vx.v * invW,
	}
}

func edge(a, b screenVertex, px, py float64) float64 {
	return (b.x-a.x)*(py-a.y) - (b.y-a.y)*(px-a.x)
}

// fillTriangle fills a triangle with depth testing. Triangles wound
// clockwise on screen face away from the camera and are skipped.
func (f *frame) fillTriangle(a, b, c screenVertex, col color.RGBA, tex *image.RGBA) {
	area := edge(a, b, c.x, c.y)
	if area >= 0 {
		return
	}

	minX := int(math.Max(0, math.Floor(math.Min(a.x, math.Min(b.x, c.x)))))
	maxX := int(math.Min(float64(f.width-1), math.Ceil(math.Max(a.x, math.Max(b.x, c.x)))))
	minY := int(math.Max(0, math.Floor(math.Min(a.y, math.Min(b.y, c.y)))))
	maxY := int(math.Min(float64(f.height-1), math.Ceil(math.Max(a.y, math.Max(b.y, c.y)))))

	for y := minY; y <= maxY; y++ {
		py := float64(y) + 0.5
		for x := minX; x <= maxX; x++ {
			px := float64(x) + 0.5

			w0 := edge(b, c, px, py) / area
			w1 := edge(c, a, px, py) / area
			w2 := edge(a, b, px, py) / area
			if w0 < 0 || w1 < 0 || w2 < 0 {
				continue
			}

			invW := w0*a.invW + w1*b.invW + w2*c.invW
			idx := y*f.width + x
			if invW <= f.depth[idx] {
				continue
			}

			pixel := col
			if tex != nil {
				u := (w0*a.uw + w1*b.uw + w2*c.uw) / invW
				v := (w0*a.vw + w1*b.vw + w2*c.vw) / invW
				pixel = sample(tex, u, v)
				// transparent label pixels leave what is behind them
				if pixel.A < 128 {
					continue
				}
			}

			f.depth[idx] = invW
			f.img.SetRGBA(x, y, pixel)
		}
	}
}

// sample reads the nearest texel
func sample(tex *image.RGBA, u, v float64) color.RGBA {
	b := tex.Bounds()
	x := b.Min.X + int(u*float64(b.Dx()))
	y := b.Min.Y + int(v*float64(b.Dy()))
	x = min(max(x, b.Min.X), b.Max.X-1)
	y = min(max(y, b.Min.Y), b.Max.Y-1)
	return tex.RGBAAt(x, y)
}
