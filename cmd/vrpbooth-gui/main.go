package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
	"github.com/mitchellh/go-homedir"
	"github.com/philipparndt/vrpbooth/internal/config"
	"github.com/philipparndt/vrpbooth/internal/interaction"
	"github.com/philipparndt/vrpbooth/pkg/viewer"
	"github.com/spf13/cobra"
)

type App struct {
	window fyne.Window
	view   *viewer.BoothView
	info   *InfoPanel
}

// InfoPanel shows what the visitor is looking at
type InfoPanel struct {
	hoveredLabel  *widget.Label
	cameraLabel   *widget.Label
	teleportLabel *widget.Label
}

var configPath string

var rootCmd = &cobra.Command{
	Use:          "vrpbooth-gui",
	Short:        "Software-rendered booth viewer",
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         run,
}

func main() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "~/.vrpbooth.yaml", "Config file (YAML); a missing file means defaults")
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	path, err := homedir.Expand(configPath)
	if err != nil {
		return fmt.Errorf("resolving config path: %w", err)
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()})))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	a := app.New()
	w := a.NewWindow(cfg.Window.Title)

	view, err := viewer.New(ctx, cfg)
	if err != nil {
		return err
	}

	appInstance := &App{window: w, view: view}
	appInstance.setupMainUI(cfg)

	if dc, ok := w.Canvas().(desktop.Canvas); ok {
		dc.SetOnKeyDown(view.KeyDown)
		dc.SetOnKeyUp(view.KeyUp)
	}

	go view.Run(ctx, cfg.Window.TargetFPS)

	w.Resize(fyne.NewSize(float32(cfg.Window.Width), float32(cfg.Window.Height)))
	w.ShowAndRun()
	return nil
}

func (a *App) setupMainUI(cfg config.Config) {
	a.info = &InfoPanel{
		hoveredLabel:  widget.NewLabel("Pointing at: -"),
		cameraLabel:   widget.NewLabel("Camera: -"),
		teleportLabel: widget.NewLabel(""),
	}
	a.view.SetOnFrame(a.updateInfo)

	s := a.view.Session()
	zoneButtons := container.NewVBox()
	for _, z := range s.Manager.Zones() {
		z := z
		zoneButtons.Add(widget.NewButton(z.Name(), func() {
			s.Manager.Teleport(z)
		}))
	}

	instructions := widget.NewLabel(
		"Instructions:\n" +
			"• W A S D or arrows to walk\n" +
			"• Drag to look around\n" +
			"• Scroll to zoom in/out\n" +
			"• Click a stand to visit it",
	)
	instructions.Wrapping = fyne.TextWrapWord

	infoPanel := container.NewVBox(
		widget.NewLabel("Visit:"),
		widget.NewSeparator(),
		zoneButtons,
		widget.NewSeparator(),
		a.info.hoveredLabel,
		a.info.cameraLabel,
		a.info.teleportLabel,
		widget.NewSeparator(),
		instructions,
	)
	if link, err := url.Parse(cfg.Contacts.URL); err == nil {
		infoPanel.Add(widget.NewSeparator())
		infoPanel.Add(widget.NewHyperlink("Book a demo", link))
	}

	infoScroll := container.NewVScroll(infoPanel)
	infoScroll.SetMinSize(fyne.NewSize(260, 0))

	content := container.NewBorder(
		nil,        // top
		nil,        // bottom
		nil,        // left
		infoScroll, // right
		a.view,     // center
	)
	a.window.SetContent(content)
}

func (a *App) updateInfo() {
	s := a.view.Session()
	state := s.Manager.State()

	hovered := "-"
	if state.Hovered != nil {
		hovered = state.Hovered.Name()
	}
	a.info.hoveredLabel.SetText("Pointing at: " + hovered)

	p := s.Camera.Position
	a.info.cameraLabel.SetText(fmt.Sprintf("Camera: (%.1f, %.1f, %.1f)", p.X, p.Y, p.Z))

	if state.Teleport.Active {
		a.info.teleportLabel.SetText("Flying to " + zoneName(state.Teleport.Zone))
	} else {
		a.info.teleportLabel.SetText("")
	}
}

func zoneName(z *interaction.Zone) string {
	if z == nil {
		return "-"
	}
	return z.Name()
}
