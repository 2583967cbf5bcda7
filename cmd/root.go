// Package cmd provides the command-line interface for the application.
package cmd

import (
	"context"
	"errors"
	"os"

	"github.com/hibare/ArrView/internal/config"
	"github.com/hibare/ArrView/internal/version"
	commonLogger "github.com/hibare/GoCommon/v2/pkg/logger"
	"github.com/spf13/cobra"
)

// rootCmd is the root command for the CLI application.
var rootCmd = &cobra.Command{
	Use:     "arrview",
	Short:   "ArrView renders serialized NumPy arrays as images or plots",
	Long:    ``,
	Version: version.CurrentVersion,
}

// runError marks failures that happened after argument parsing succeeded,
// so Execute can separate them from usage errors.
type runError struct {
	err error
}

func (e *runError) Error() string { return e.err.Error() }

func (e *runError) Unwrap() error { return e.err }

// Execute runs the root command and maps errors onto exit codes:
// 2 for usage errors, 1 for load/render failures, 0 otherwise.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		var rErr *runError
		if errors.As(err, &rErr) {
			os.Exit(1)
		}
		os.Exit(2)
	}
}

func init() {
	ctx := context.Background()

	rootCmd.SetContext(ctx)
	rootCmd.AddCommand(imageCmd)
	rootCmd.AddCommand(lineCmd)
	rootCmd.AddCommand(scatterCmd)

	cobra.OnInitialize(commonLogger.InitDefaultLogger, config.Load)
}
