package cmd

import (
	"github.com/hibare/ArrView/internal/dispatch"
	"github.com/spf13/cobra"
)

var lineFlags renderFlags

// lineCmd renders a 1-D series as a line plot of value against index.
var lineCmd = &cobra.Command{
	Use:   "line <file>",
	Short: "Render a 1-D array as a line plot",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRender(cmd, dispatch.ModeLine, args[0], &lineFlags)
	},
}

func init() {
	addRenderFlags(lineCmd, &lineFlags, true)
}
