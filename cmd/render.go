package cmd

import (
	"log/slog"
	"path/filepath"

	"github.com/hibare/ArrView/internal/array"
	"github.com/hibare/ArrView/internal/config"
	"github.com/hibare/ArrView/internal/constants"
	"github.com/hibare/ArrView/internal/dispatch"
	"github.com/hibare/ArrView/internal/viz"
	"github.com/spf13/cobra"
)

// renderFlags are the per-subcommand flag values.
type renderFlags struct {
	output string
	title  string
	show   bool
}

func addRenderFlags(c *cobra.Command, f *renderFlags, withShow bool) {
	c.Flags().StringVarP(&f.output, "output", "o", "", "output file (default: <file>.png)")
	c.Flags().StringVar(&f.title, "title", "", "plot title (default: input file name)")
	if withShow {
		c.Flags().BoolVar(&f.show, "show", false, "open an interactive gnuplot window instead of writing a file")
	}
}

// runRender is the shared body of the three subcommands. Arguments are
// already validated by cobra when it runs, so failures past this point are
// load or render failures, not usage errors.
func runRender(cmd *cobra.Command, mode dispatch.Mode, path string, flags *renderFlags) error {
	cmd.SilenceUsage = true

	opts := viz.Options{
		Title:  flags.title,
		Output: flags.output,
		Width:  config.Current.Plot.Width,
		Height: config.Current.Plot.Height,
		Show:   flags.show,
	}
	if opts.Title == "" {
		opts.Title = filepath.Base(path)
	}
	if opts.Output == "" && !opts.Show {
		opts.Output = path + constants.DefaultOutputExt
	}

	renderer, err := viz.NewRenderer(opts)
	if err != nil {
		return &runError{err}
	}

	parsed := dispatch.ParsedCommand{Mode: mode, FilePath: path}
	if err := dispatch.Run(cmd.Context(), parsed, array.Load, renderer); err != nil {
		return &runError{err}
	}

	if !opts.Show {
		slog.InfoContext(cmd.Context(), "Plot written", "output", opts.Output, "mode", mode.String())
	}
	return nil
}
