package viz

import (
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/hibare/ArrView/internal/array"
	"gonum.org/v1/gonum/mat"
)

// grayImage adapts a rescaled matrix to the image.Image interface.
// Row i of the matrix is row i of the image.
type grayImage struct {
	matrix *mat.Dense
}

func newGrayImage(m mat.Matrix) *grayImage {
	return &grayImage{matrix: rescaleTo256(m)}
}

func (g *grayImage) At(x, y int) color.Color {
	return color.Gray{Y: uint8(g.matrix.At(y, x))}
}

func (g *grayImage) ColorModel() color.Model {
	return color.GrayModel
}

func (g *grayImage) Bounds() image.Rectangle {
	r, c := g.matrix.Dims()
	return image.Rect(0, 0, c, r)
}

// rescaleTo256 maps the matrix values linearly onto [0, 255]. A constant
// matrix maps to mid-gray.
func rescaleTo256(m mat.Matrix) *mat.Dense {
	lo := mat.Min(m)
	hi := mat.Max(m)

	rows, cols := m.Dims()
	out := mat.NewDense(rows, cols, nil)

	if hi == lo {
		out.Apply(func(_, _ int, _ float64) float64 { return 128 }, m)
		return out
	}

	out.Apply(func(_, _ int, v float64) float64 {
		return 255 * (v - lo) / (hi - lo)
	}, m)
	return out
}

func (r *Renderer) renderImageFile(a *array.Array) error {
	m, err := a.Matrix()
	if err != nil {
		return err
	}

	f, err := os.Create(r.opts.Output)
	if err != nil {
		return err
	}

	if err := png.Encode(f, newGrayImage(m)); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
