package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gogpu/projector"
)

var (
	renderOutput string
	renderStack  bool
)

var renderCmd = &cobra.Command{
	Use:   "render [image...]",
	Short: "Render the composed viewport to PNG",
	Long: `Render lays out the images, optionally stacks them at the origin,
and writes the viewport exactly as the selected mode draws it.

Images default to the config file's image list.`,
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "render.png", "output PNG file")
	renderCmd.Flags().BoolVar(&renderStack, "stack", false, "move every image to the origin first")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	sess, err := openSession(cmd.Context(), cfg, args)
	if err != nil {
		return err
	}
	if renderStack {
		sess.Stack()
	}
	if err := projector.FromImage(sess.Snapshot()).SavePNG(renderOutput); err != nil {
		return err
	}
	projector.Logger().Info("projector: frame written", "path", renderOutput, "mode", sess.Mode().String())
	fmt.Fprintf(cmd.OutOrStdout(), "%s: %s, %d images\n", renderOutput, sess.Mode(), sess.Registry().Len())
	return nil
}
