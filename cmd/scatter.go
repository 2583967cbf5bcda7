package cmd

import (
	"github.com/hibare/ArrView/internal/dispatch"
	"github.com/spf13/cobra"
)

var scatterFlags renderFlags

// scatterCmd renders an array as a scatter plot. A (2, N) array is taken
// as explicit X/Y coordinates; anything else plots value against index.
var scatterCmd = &cobra.Command{
	Use:   "scatter <file>",
	Short: "Render an array as a scatter plot",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRender(cmd, dispatch.ModeScatter, args[0], &scatterFlags)
	},
}

func init() {
	addRenderFlags(scatterCmd, &scatterFlags, true)
}
