package cmd

import (
	"github.com/hibare/ArrView/internal/dispatch"
	"github.com/spf13/cobra"
)

var imageFlags renderFlags

// imageCmd renders a 2-D array as a grayscale raster. Arrays with more
// dimensions are reduced to their central 2-D slice.
var imageCmd = &cobra.Command{
	Use:   "image <file>",
	Short: "Render a 2-D array as a grayscale image",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRender(cmd, dispatch.ModeImage, args[0], &imageFlags)
	},
}

func init() {
	addRenderFlags(imageCmd, &imageFlags, false)
}
