// Package cli implements the projector command line.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/gogpu/projector"
	"github.com/gogpu/projector/internal/config"
	"github.com/gogpu/projector/surface"
)

var version = projector.Version

var (
	configPath string
	verbose    bool
	modeFlag   string
	background string
	backend    string
	width      float64
	height     float64
)

var rootCmd = &cobra.Command{
	Use:   "projector",
	Short: "Drag images around and composite their overlaps",
	Long: `projector places images on a canvas, lets you drag them, and
composites them in one of three modes:

  stack     plain alpha-over, later images on top
  multiply  every image multiplied onto the canvas
  overlap   stacked, with an exact per-pixel multiply in every overlap`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if verbose {
			projector.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(),
				&slog.HandlerOptions{Level: slog.LevelDebug})))
		}
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "projector %s\n", version)
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&configPath, "config", "c", "", "config file (default ~/.projector/config.yaml)")
	pf.BoolVarP(&verbose, "verbose", "v", false, "log diagnostics to stderr")
	pf.StringVarP(&modeFlag, "mode", "m", "", "render mode: stack, multiply or overlap")
	pf.StringVar(&background, "background", "", "background: white or black")
	pf.StringVar(&backend, "surface", "", "surface backend")
	pf.Float64Var(&width, "width", 0, "viewport width (overrides config)")
	pf.Float64Var(&height, "height", 0, "viewport height (overrides config)")

	rootCmd.AddCommand(versionCmd)
}

// SetVersion sets the version string printed by the version command.
func SetVersion(v string) {
	version = v
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// newLoader returns the config loader selected by --config.
func newLoader() (*config.Loader, error) {
	if configPath != "" {
		return config.NewLoaderWithPath(configPath), nil
	}
	return config.NewLoader()
}

// loadConfig reads the config file and applies command line overrides.
func loadConfig() (*config.Config, error) {
	loader, err := newLoader()
	if err != nil {
		return nil, fmt.Errorf("config loader: %w", err)
	}
	cfg, err := loader.Load()
	if err != nil {
		return nil, err
	}
	if modeFlag != "" {
		cfg.Mode = modeFlag
	}
	if background != "" {
		cfg.Background = background
	}
	if backend != "" {
		cfg.Surface = backend
	}
	if width > 0 {
		cfg.Viewport.Width = width
	}
	if height > 0 {
		cfg.Viewport.Height = height
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// openSession loads the images named by args, or by the config when args
// is empty, into a new session.
func openSession(ctx context.Context, cfg *config.Config, args []string, extra ...projector.Option) (*projector.Session, error) {
	paths := args
	if len(paths) == 0 {
		paths = cfg.Images
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no images given")
	}
	sources := make([]projector.Source, len(paths))
	for i, p := range paths {
		sources[i] = projector.FileSource(p)
	}

	w, h := projector.Sz(cfg.Viewport.Width, cfg.Viewport.Height).Pixels()
	s, err := surface.New(cfg.Surface, w, h)
	if err != nil {
		return nil, err
	}

	opts := append(cfg.Options(), extra...)
	sess, err := projector.NewSession(ctx, sources, s, opts...)
	if err != nil {
		return nil, err
	}
	for _, ferr := range sess.Failures() {
		fmt.Fprintf(os.Stderr, "warning: %v\n", ferr)
	}
	if sess.Registry().Len() == 0 {
		return nil, fmt.Errorf("none of %d images could be loaded", len(paths))
	}
	return sess, nil
}
