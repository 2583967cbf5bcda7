package viz

import (
	"github.com/Arafatk/glot"
	"github.com/hibare/ArrView/internal/array"
)

// gnuplot point-group styles.
const (
	styleLines  = "lines"
	stylePoints = "points"
)

// renderWindow opens a persistent gnuplot window through glot. The window
// outlives the process; there is nothing to tear down here.
func (r *Renderer) renderWindow(a *array.Array, style string) error {
	xs, ys := a.Points()

	plt, err := glot.NewPlot(2, true, false)
	if err != nil {
		return err
	}

	if err := plt.AddPointGroup(r.opts.Title, style, [][]float64{xs, ys}); err != nil {
		return err
	}
	if err := plt.SetTitle(r.opts.Title); err != nil {
		return err
	}
	if err := plt.SetXLabel("index"); err != nil {
		return err
	}
	return plt.SetYLabel("value")
}
