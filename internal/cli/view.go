package cli

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/gogpu/projector"
	"github.com/gogpu/projector/internal/termview"
)

var viewScale float64

var viewCmd = &cobra.Command{
	Use:   "view [image...]",
	Short: "Drag images interactively in the terminal",
	Long: `View opens the images in the terminal. Drag with the left mouse
button, nudge the last grabbed image with the arrow keys.

Keys: s stack, m cycle mode, b toggle background, q quit.`,
	RunE: runView,
}

func init() {
	viewCmd.Flags().Float64Var(&viewScale, "scale", 4, "viewport units per terminal pixel")
	rootCmd.AddCommand(viewCmd)
}

func runView(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	defer screen.Fini()

	v := termview.New(screen, viewScale)
	sess, err := openSession(cmd.Context(), cfg, args,
		projector.WithElementSink(v), projector.WithViewport(v.Viewport()))
	if err != nil {
		return err
	}
	v.Attach(sess)
	return v.Run(cmd.Context())
}
