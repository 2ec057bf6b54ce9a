// Package viewer is a software-rendered fyne widget showing the booth. It
// needs no GPU and drives the same session as the raylib host.
package viewer

import (
	"context"
	"image"
	"image/color"
	"math"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/philipparndt/vrpbooth/internal/config"
	"github.com/philipparndt/vrpbooth/internal/interaction"
	"github.com/philipparndt/vrpbooth/internal/scene"
	"github.com/philipparndt/vrpbooth/internal/session"
	"github.com/philipparndt/vrpbooth/internal/zones"
)

var background = color.RGBA{15, 18, 25, 255}

// BoothView renders the booth and forwards pointer input to its session
type BoothView struct {
	widget.BaseWidget
	session *session.Session
	cursor  interaction.Cursor
	onFrame func()
	// resolution scales the rendered image relative to the widget's pixels
	resolution float64
}

// New builds a session rendering into a new BoothView
func New(ctx context.Context, cfg config.Config, opts ...session.Option) (*BoothView, error) {
	v := &BoothView{resolution: 0.5}
	v.ExtendBaseWidget(v)

	s, err := session.New(ctx, cfg, v, opts...)
	if err != nil {
		return nil, err
	}
	v.session = s
	return v, nil
}

// Session returns the session the view drives
func (v *BoothView) Session() *session.Session { return v.session }

// Rect implements interaction.Surface in fyne units
func (v *BoothView) Rect() interaction.Rect {
	size := v.Size()
	return interaction.Rect{Width: float64(size.Width), Height: float64(size.Height)}
}

// SetCursor implements interaction.Surface
func (v *BoothView) SetCursor(c interaction.Cursor) { v.cursor = c }

// Cursor implements desktop.Cursorable
func (v *BoothView) Cursor() desktop.Cursor {
	if v.cursor == interaction.CursorPointer {
		return desktop.PointerCursor
	}
	return desktop.DefaultCursor
}

// SetOnFrame sets a callback run after every frame, on the fyne thread
func (v *BoothView) SetOnFrame(callback func()) {
	v.onFrame = callback
}

// Frame advances the session one frame and repaints
func (v *BoothView) Frame() {
	v.session.Frame()
	v.Refresh()
	if v.onFrame != nil {
		v.onFrame()
	}
}

// Run calls Frame fps times per second on the fyne thread until ctx is done
func (v *BoothView) Run(ctx context.Context, fps int) {
	if fps <= 0 {
		fps = 60
	}
	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			fyne.Do(v.Frame)
		}
	}
}

func pointer(pos fyne.Position) interaction.PointerEvent {
	return interaction.PointerEvent{X: float64(pos.X), Y: float64(pos.Y)}
}

// Tapped visits the zone under the pointer
func (v *BoothView) Tapped(ev *fyne.PointEvent) {
	v.session.Manager.Click(pointer(ev.Position))
}

// MouseIn implements desktop.Hoverable
func (v *BoothView) MouseIn(ev *desktop.MouseEvent) {
	v.session.Manager.PointerMove(pointer(ev.Position))
}

// MouseMoved updates the hover highlight
func (v *BoothView) MouseMoved(ev *desktop.MouseEvent) {
	v.session.Manager.PointerMove(pointer(ev.Position))
}

// MouseOut implements desktop.Hoverable
func (v *BoothView) MouseOut() {}

// Dragged looks around
func (v *BoothView) Dragged(ev *fyne.DragEvent) {
	v.session.Orbit.Rotate(float64(ev.Dragged.DX), float64(ev.Dragged.DY))
}

// DragEnd implements fyne.Draggable
func (v *BoothView) DragEnd() {}

// Scrolled zooms in and out
func (v *BoothView) Scrolled(ev *fyne.ScrollEvent) {
	switch {
	case ev.Scrolled.DY > 0:
		v.session.Orbit.Dolly(0.95)
	case ev.Scrolled.DY < 0:
		v.session.Orbit.Dolly(1 / 0.95)
	}
}

// render draws the scene at the given pixel size
func (v *BoothView) render(w, h int) image.Image {
	rw := max(1, int(float64(w)*v.resolution))
	rh := max(1, int(float64(h)*v.resolution))

	cam := v.session.Camera
	f := newFrame(rw, rh, cam.Projection(), cam.Near)
	f.clear(background)
	drawNode(f, cam.View(), v.session.Booth.Root, v.session.Booth.Textures)
	return f.img
}

func drawNode(f *frame, view mgl64.Mat4, n *scene.Node, textures map[string]*zones.Texture) {
	if !n.Visible {
		return
	}
	for _, mesh := range n.Meshes() {
		drawMesh(f, view, mesh, textures)
	}
	for _, c := range n.Children() {
		drawNode(f, view, c, textures)
	}
}

// drawMesh flat shades a box. The front face of a panel mesh shows its
// painted texture once it exists.
func drawMesh(f *frame, view mgl64.Mat4, mesh *scene.Mesh, textures map[string]*zones.Texture) {
	if len(mesh.Materials) == 0 || mesh.Materials[0] == nil {
		return
	}
	mat := mesh.Materials[0]

	for _, face := range mesh.Faces() {
		if face.Front && mesh.Panel != "" {
			if tex, ok := textures[mesh.Panel]; ok && tex.Image != nil {
				f.drawFace(view, face, color.RGBA{}, tex.Image)
				continue
			}
		}
		c := mat.Lit(scene.Diffuse(face.Normal))
		if c.A == 0 {
			continue
		}
		f.drawFace(view, face, c, nil)
	}
}

// CreateRenderer creates the renderer for the widget
func (v *BoothView) CreateRenderer() fyne.WidgetRenderer {
	r := &boothRenderer{view: v}
	r.raster = canvas.NewRaster(v.render)
	r.tooltip = newToastBox()
	r.banner = newToastBox()
	r.objects = []fyne.CanvasObject{r.raster, r.tooltip.bg, r.tooltip.text, r.banner.bg, r.banner.text}
	return r
}

// toastBox is an on-screen message with a rounded backdrop
type toastBox struct {
	bg   *canvas.Rectangle
	text *canvas.Text
}

func newToastBox() toastBox {
	bg := canvas.NewRectangle(color.Transparent)
	bg.CornerRadius = 8
	bg.StrokeWidth = 1
	text := canvas.NewText("", color.White)
	text.TextSize = 16
	return toastBox{bg: bg, text: text}
}

// update shows text centered at (cx, cy), or hides the box when opacity is 0
func (t toastBox) update(text string, opacity float64, cx, cy float32) {
	if opacity <= 0 || text == "" {
		t.bg.Hide()
		t.text.Hide()
		return
	}
	alpha := uint8(math.Round(opacity * 255))
	t.text.Text = text
	t.text.Color = color.NRGBA{255, 255, 255, alpha}
	t.bg.FillColor = color.NRGBA{15, 23, 42, uint8(math.Round(opacity * 220))}
	t.bg.StrokeColor = color.NRGBA{124, 58, 237, alpha}

	size := t.text.MinSize()
	pad := float32(12)
	t.bg.Resize(fyne.NewSize(size.Width+pad*2, size.Height+pad*2))
	t.bg.Move(fyne.NewPos(cx-size.Width/2-pad, cy-size.Height/2-pad))
	t.text.Resize(size)
	t.text.Move(fyne.NewPos(cx-size.Width/2, cy-size.Height/2))

	t.bg.Show()
	t.text.Show()
	t.bg.Refresh()
	t.text.Refresh()
}

// boothRenderer implements fyne.WidgetRenderer
type boothRenderer struct {
	view    *BoothView
	raster  *canvas.Raster
	tooltip toastBox
	banner  toastBox
	objects []fyne.CanvasObject
}

func (r *boothRenderer) Layout(size fyne.Size) {
	r.raster.Resize(size)
	r.view.session.Resize(float64(size.Width), float64(size.Height))
	r.layoutToasts(size)
}

func (r *boothRenderer) layoutToasts(size fyne.Size) {
	s := r.view.session
	now := s.Sched.Now()

	if t, ok := s.Tooltips.Current(); ok {
		r.tooltip.update(t.Text, s.Tooltips.Opacity(now), size.Width/2, size.Height-70)
	} else {
		r.tooltip.update("", 0, 0, 0)
	}
	if b, ok := s.Banner.Current(); ok {
		r.banner.update(b.Text, s.Banner.Opacity(now), size.Width/2, 40)
	} else {
		r.banner.update("", 0, 0, 0)
	}
}

func (r *boothRenderer) MinSize() fyne.Size {
	return fyne.NewSize(400, 300)
}

func (r *boothRenderer) Refresh() {
	r.layoutToasts(r.view.Size())
	r.raster.Refresh()
}

func (r *boothRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *boothRenderer) Destroy() {}

var (
	_ interaction.Surface = (*BoothView)(nil)
	_ desktop.Cursorable  = (*BoothView)(nil)
	_ desktop.Hoverable   = (*BoothView)(nil)
	_ fyne.Draggable      = (*BoothView)(nil)
	_ fyne.Scrollable     = (*BoothView)(nil)
	_ fyne.Tappable       = (*BoothView)(nil)
)
