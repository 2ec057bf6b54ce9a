package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/mitchellh/go-homedir"
	"github.com/philipparndt/vrpbooth/internal/app"
	"github.com/philipparndt/vrpbooth/internal/config"
	"github.com/philipparndt/vrpbooth/version"
	"github.com/spf13/cobra"
)

const defaultConfigPath = "~/.vrpbooth.yaml"

var (
	configPath   string
	watchConfig  bool
	windowWidth  int
	windowHeight int
)

var rootCmd = &cobra.Command{
	Use:   "vrpbooth",
	Short: "Interactive 3D trade-show booth for the VRP Solution route planner",
	Long: `vrpbooth opens a virtual exhibition hall with the VRP Solution booth.
Walk around with WASD or the arrow keys, drag to look around and click a stand
to fly to it.`,
	Version:      version.GetFullVersion(),
	SilenceUsage: true,
	RunE:         runBooth,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", defaultConfigPath, "Config file (YAML); a missing file means defaults")
	rootCmd.Flags().BoolVarP(&watchConfig, "watch", "w", false, "Reload the config file when it changes")
	rootCmd.Flags().IntVar(&windowWidth, "width", 0, "Window width, overrides the config")
	rootCmd.Flags().IntVar(&windowHeight, "height", 0, "Window height, overrides the config")
}

// loadConfig reads the config named by --config and sets up the default logger
func loadConfig() (config.Config, string, error) {
	path, err := homedir.Expand(configPath)
	if err != nil {
		return config.Config{}, "", fmt.Errorf("resolving config path: %w", err)
	}
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, "", err
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(logger)
	return cfg, path, nil
}

func runBooth(cmd *cobra.Command, args []string) error {
	cfg, path, err := loadConfig()
	if err != nil {
		return err
	}
	if windowWidth > 0 {
		cfg.Window.Width = windowWidth
	}
	if windowHeight > 0 {
		cfg.Window.Height = windowHeight
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	slog.Info("starting booth", "version", version.GetFullVersion(), "config", path)
	return app.Run(ctx, cfg, app.Options{
		ConfigPath: path,
		Watch:      watchConfig,
		Logger:     slog.Default(),
	})
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
