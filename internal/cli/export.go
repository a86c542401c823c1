package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gogpu/projector"
)

var (
	exportOutput string
	exportStack  bool
)

var exportCmd = &cobra.Command{
	Use:   "export [image...]",
	Short: "Flatten the images into one PNG",
	Long: `Export overlays the images back to front at their positions with
plain alpha-over and no blend mode. The output has the size of the first
image; anything outside it is cropped.`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output PNG file (default from config)")
	exportCmd.Flags().BoolVar(&exportStack, "stack", true, "move every image to the origin first")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	out := exportOutput
	if out == "" {
		out = cfg.Output
	}
	sess, err := openSession(cmd.Context(), cfg, args)
	if err != nil {
		return err
	}
	if exportStack {
		sess.Stack()
	}
	r, err := sess.Export()
	if err != nil {
		return err
	}
	if err := r.SavePNG(out); err != nil {
		return err
	}
	projector.Logger().Info("projector: composite written", "path", out)
	fmt.Fprintf(cmd.OutOrStdout(), "%s: %dx%d\n", out, r.Width(), r.Height())
	return nil
}
