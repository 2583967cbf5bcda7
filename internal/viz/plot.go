package viz

import (
	"github.com/hibare/ArrView/internal/array"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

func (r *Renderer) renderLineFile(a *array.Array) error {
	ys := a.Vector()

	pts := make(plotter.XYs, len(ys))
	for i, y := range ys {
		pts[i].X = float64(i)
		pts[i].Y = y
	}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}

	p := r.newPlot()
	p.Add(line)
	return r.save(p)
}

func (r *Renderer) renderScatterFile(a *array.Array) error {
	xs, ys := a.Points()

	pts := make(plotter.XYs, len(xs))
	for i := range pts {
		pts[i].X = xs[i]
		pts[i].Y = ys[i]
	}

	scatter, err := plotter.NewScatter(pts)
	if err != nil {
		return err
	}

	p := r.newPlot()
	p.Add(scatter)
	return r.save(p)
}

func (r *Renderer) newPlot() *plot.Plot {
	p := plot.New()
	p.Title.Text = r.opts.Title
	p.X.Label.Text = "index"
	p.Y.Label.Text = "value"
	p.Add(plotter.NewGrid())
	return p
}

func (r *Renderer) save(p *plot.Plot) error {
	w := vg.Length(r.opts.Width) * vg.Inch
	h := vg.Length(r.opts.Height) * vg.Inch
	return p.Save(w, h, r.opts.Output)
}
