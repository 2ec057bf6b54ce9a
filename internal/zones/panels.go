package zones

import (
	"image"
	"net/url"
	"strings"
	"time"

	"github.com/philipparndt/vrpbooth/internal/anim"
	"github.com/philipparndt/vrpbooth/internal/scene"
	"github.com/philipparndt/vrpbooth/pkg/geometry"
)

// Panel animation timing
const (
	RouteDrawDuration = 2000 * time.Millisecond
	PanelScaleTime    = 500 * time.Millisecond

	DashboardExpandedScale = 1.5
	QREnlargedScale        = 2.0
)

// Texture is a painted panel image. Rev changes whenever the pixels do, so
// renderers know when to upload it again.
type Texture struct {
	Image *image.RGBA
	Rev   uint64
	w, h  int
}

func newTexture(w, h int) *Texture {
	return &Texture{w: w, h: h}
}

// Size returns the texture size in pixels
func (t *Texture) Size() (w, h int) { return t.w, t.h }

func (t *Texture) touch() { t.Rev++ }

// Notifier shows short on-screen messages
type Notifier interface {
	Show(text string)
}

// RouteMap is the phone screen in the routes zone
type RouteMap struct {
	sched    *anim.Scheduler
	tex      *Texture
	progress float64
	gen      uint64
}

func newRouteMap(sched *anim.Scheduler) *RouteMap {
	return &RouteMap{sched: sched, tex: newTexture(256, 512), progress: 1}
}

// Texture returns the screen image
func (r *RouteMap) Texture() *Texture { return r.tex }

// Progress returns how much of the route is drawn, 0 to 1
func (r *RouteMap) Progress() float64 { return r.progress }

// AnimateRoute redraws the route from the first stop to the last
func (r *RouteMap) AnimateRoute() {
	r.gen++
	gen := r.gen
	r.sched.Animate(RouteDrawDuration, anim.Linear, func(p float64) {
		if gen != r.gen {
			return
		}
		r.progress = p
		r.repaint()
	}, nil)
}

func (r *RouteMap) repaint() {
	if r.tex.Image == nil {
		return
	}
	paintRouteMap(r.tex.Image, r.progress)
	r.tex.touch()
}

// scaler tweens a node's X/Y scale. A new tween supersedes a running one.
type scaler struct {
	node  *scene.Node
	sched *anim.Scheduler
	gen   uint64
}

func (s *scaler) scaleTo(target float64) {
	s.gen++
	gen := s.gen
	start := s.node.Scale.X
	s.sched.Animate(PanelScaleTime, anim.EaseInOutQuad, func(p float64) {
		if gen != s.gen {
			return
		}
		v := start + (target-start)*p
		s.node.Scale = geometry.NewVector3(v, v, 1)
	}, nil)
}

// Dashboard is the dashboard zone's screen
type Dashboard struct {
	scaler
	tex      *Texture
	expanded bool
}

func newDashboard(node *scene.Node, sched *anim.Scheduler) *Dashboard {
	return &Dashboard{scaler: scaler{node: node, sched: sched}, tex: newTexture(512, 320)}
}

// Texture returns the screen image
func (d *Dashboard) Texture() *Texture { return d.tex }

// Expanded reports the size the screen is heading to
func (d *Dashboard) Expanded() bool { return d.expanded }

// ToggleExpand grows the screen to 1.5x or shrinks it back
func (d *Dashboard) ToggleExpand() {
	target := DashboardExpandedScale
	if d.expanded {
		target = 1
	}
	d.scaleTo(target)
	d.expanded = !d.expanded
}

// QRCode is the contacts zone's QR panel
type QRCode struct {
	scaler
	tex      *Texture
	link     string
	notify   Notifier
	enlarged bool
}

func newQRCode(node *scene.Node, sched *anim.Scheduler, link string, notify Notifier) *QRCode {
	return &QRCode{
		scaler: scaler{node: node, sched: sched},
		tex:    newTexture(256, 256),
		link:   link,
		notify: notify,
	}
}

// Texture returns the QR image
func (q *QRCode) Texture() *Texture { return q.tex }

// Enlarged reports whether the panel is (or is growing to) double size
func (q *QRCode) Enlarged() bool { return q.enlarged }

// Enlarge toggles between normal and double size. Shrinking back shows the
// link as a banner.
func (q *QRCode) Enlarge() {
	target := QREnlargedScale
	if q.enlarged {
		target = 1
	}
	q.scaleTo(target)
	q.enlarged = !q.enlarged

	if !q.enlarged && q.notify != nil {
		q.notify.Show("Link: " + DisplayLink(q.link))
	}
}

// DisplayLink shortens a URL for on-screen text by dropping the scheme
func DisplayLink(link string) string {
	u, err := url.Parse(link)
	if err != nil || u.Host == "" {
		return link
	}
	return strings.TrimSuffix(u.Host+u.Path, "/")
}
