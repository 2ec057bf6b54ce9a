package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/philipparndt/vrpbooth/internal/interaction"
	"github.com/philipparndt/vrpbooth/internal/session"
	"github.com/spf13/cobra"
)

var zonesCmd = &cobra.Command{
	Use:   "zones",
	Short: "List the booth zones and where a click teleports to",
	Args:  cobra.NoArgs,
	RunE:  runZones,
}

func init() {
	rootCmd.AddCommand(zonesCmd)
}

// headless stands in for a window when no rendering happens
type headless struct{}

func (headless) Rect() interaction.Rect       { return interaction.Rect{Width: 1400, Height: 900} }
func (headless) SetCursor(interaction.Cursor) {}

func runZones(cmd *cobra.Command, args []string) error {
	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}
	s, err := session.New(context.Background(), cfg, headless{})
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ZONE\tPOSITION\tYAW\tCAMERA\tLOOKS AT")
	for _, z := range s.Manager.Zones() {
		pos := z.Node.WorldPosition()
		camPos, target := s.Manager.Vantage(z)
		fmt.Fprintf(w, "%s\t(%.2f, %.2f, %.2f)\t%.2f\t(%.2f, %.2f, %.2f)\t(%.2f, %.2f, %.2f)\n",
			z.Name(),
			pos.X, pos.Y, pos.Z,
			z.Node.WorldYaw(),
			camPos.X, camPos.Y, camPos.Z,
			target.X, target.Y, target.Z)
	}
	return w.Flush()
}
