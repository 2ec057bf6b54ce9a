// Package zones builds the booth scene: the hall, the decorative truck, the
// seven interactive zones and the animated panels their click actions drive.
package zones

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"log/slog"

	"github.com/philipparndt/vrpbooth/internal/anim"
	"github.com/philipparndt/vrpbooth/internal/interaction"
	"github.com/philipparndt/vrpbooth/internal/scene"
	"golang.org/x/sync/errgroup"
)

// Booth is the complete scene
type Booth struct {
	Root  *scene.Node
	Hall  *scene.Node
	Truck *scene.Node
	Zones []*interaction.Zone

	Routes    *RouteMap
	Dashboard *Dashboard
	QR        *QRCode

	Textures map[string]*Texture

	painters map[string]func(*image.RGBA) error
	contact  string
	log      *slog.Logger
}

// Option configures a Booth
type Option func(*Booth)

// WithLogger sets the logger used while painting panels
func WithLogger(l *slog.Logger) Option {
	return func(b *Booth) { b.log = l }
}

// New builds the booth. Panel animations run on sched; the QR panel encodes
// contactURL and announces it through notify when it shrinks back.
func New(sched *anim.Scheduler, notify Notifier, contactURL string, opts ...Option) *Booth {
	b := &Booth{
		Root:     scene.NewNode("Booth"),
		Textures: make(map[string]*Texture),
		painters: make(map[string]func(*image.RGBA) error),
		contact:  contactURL,
		log:      slog.Default(),
	}
	for _, opt := range opts {
		opt(b)
	}

	b.Routes = newRouteMap(sched)
	dashboard, display := dashboardZone()
	b.Dashboard = newDashboard(display, sched)
	dashboard.Data.(*interaction.DashboardData).Panel = b.Dashboard
	contacts, qrNode := contactsZone()
	b.QR = newQRCode(qrNode, sched, contactURL, notify)
	contacts.Data.(*interaction.ContactsData).Panel = b.QR

	b.Zones = []*interaction.Zone{
		mainStand(),
		routesZone(b.Routes),
		aiZone(),
		dashboard,
		infographicsZone(),
		contacts,
		appUIZone(),
	}

	b.Hall = hall()
	b.Truck = truck()
	b.Root.Add(b.Hall, b.Truck)
	for _, z := range b.Zones {
		b.Root.Add(z.Node)
	}

	b.texture(PanelStand, newTexture(780, 390), fill(paintStand))
	b.texture(PanelRoutes, b.Routes.tex, func(img *image.RGBA) error {
		paintRouteMap(img, b.Routes.progress)
		return nil
	})
	b.texture(PanelAI, newTexture(256, 256), fill(paintAI))
	b.texture(PanelDashboard, b.Dashboard.tex, fill(paintDashboard))
	b.texture(PanelInfographics, newTexture(256, 384), fill(paintInfographics))
	b.texture(PanelQR, b.QR.tex, b.paintContactQR)
	b.texture(PanelAppUI, newTexture(240, 520), fill(paintAppUI))

	for zone, l := range zoneLabels {
		b.texture(labelKey(zone), newTexture(512, 64), labelPainter(l.text, l.color, 3))
	}
	b.texture(labelKey(interaction.ContactsZone)+"/sub", newTexture(512, 64), labelPainter("Scan for access", SlateLight, 2))

	return b
}

var zoneLabels = map[string]struct {
	text  string
	color color.RGBA
}{
	interaction.RoutesZone:       {text: "ROUTES WITHOUT CHAOS", color: Violet},
	interaction.AIZone:           {text: "AI PLANNING", color: Lavender},
	interaction.DashboardZone:    {text: "LOGISTICS DASHBOARD", color: Cyan},
	interaction.InfographicsZone: {text: "RESULTS", color: Emerald},
	interaction.ContactsZone:     {text: "GET A DEMO", color: Violet},
	interaction.AppUIZone:        {text: "APP INTERFACE", color: Cyan},
}

func fill(paint func(*image.RGBA)) func(*image.RGBA) error {
	return func(img *image.RGBA) error {
		paint(img)
		return nil
	}
}

func labelPainter(s string, c color.RGBA, scale int) func(*image.RGBA) error {
	return fill(func(img *image.RGBA) { paintLabel(img, s, c, scale) })
}

func (b *Booth) texture(key string, t *Texture, paint func(*image.RGBA) error) {
	b.Textures[key] = t
	b.painters[key] = paint
}

// paintContactQR falls back to an error glyph; a missing QR code is not
// worth failing startup over.
func (b *Booth) paintContactQR(img *image.RGBA) error {
	if err := paintQR(img, b.contact); err != nil {
		b.log.Warn("QR panel falls back to error glyph", "url", b.contact, "err", err)
		paintErrorGlyph(img)
	}
	return nil
}

// Paint renders every panel texture concurrently. It must finish before the
// first frame reads the textures.
func (b *Booth) Paint(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	for key, paint := range b.painters {
		key, paint := key, paint
		tex := b.Textures[key]
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			img := image.NewRGBA(image.Rect(0, 0, tex.w, tex.h))
			if err := paint(img); err != nil {
				return fmt.Errorf("painting %s panel: %w", key, err)
			}
			tex.Image = img
			tex.touch()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	b.log.Debug("panels painted", "count", len(b.Textures))
	return nil
}

// Register adds every zone to m in layout order
func (b *Booth) Register(m *interaction.Manager) {
	for _, z := range b.Zones {
		m.RegisterZone(z)
	}
}

// Zone returns the zone with the given name
func (b *Booth) Zone(name string) *interaction.Zone {
	for _, z := range b.Zones {
		if z.Name() == name {
			return z
		}
	}
	return nil
}
