// Package viz renders loaded arrays as images, line plots, or scatter plots.
package viz

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/hibare/ArrView/internal/array"
)

// ErrWindowUnsupported is returned when image mode is asked to render into
// a gnuplot window. Raster output is file-only.
var ErrWindowUnsupported = errors.New("image mode cannot render to a window, use file output")

var validate = validator.New()

// Options controls how a plot is produced.
type Options struct {
	// Title is drawn above line and scatter plots.
	Title string

	// Output is the file the plot is written to. Ignored when Show is set.
	Output string `validate:"required_if=Show false"`

	// Width and Height are the plot dimensions in inches.
	Width  int `validate:"gt=0"`
	Height int `validate:"gt=0"`

	// Show opens an interactive gnuplot window instead of writing a file.
	Show bool
}

// Validate checks the options against their constraints.
func (o Options) Validate() error {
	return validate.Struct(o)
}

// Renderer produces exactly one plot per call, as a side effect.
type Renderer struct {
	opts Options
}

// NewRenderer creates a Renderer for the given options.
func NewRenderer(opts Options) (*Renderer, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &Renderer{opts: opts}, nil
}

// Image renders the array as a grayscale raster.
func (r *Renderer) Image(a *array.Array) error {
	if r.opts.Show {
		return ErrWindowUnsupported
	}
	return r.renderImageFile(a)
}

// Line renders the array as a line plot of value against index.
func (r *Renderer) Line(a *array.Array) error {
	if r.opts.Show {
		return r.renderWindow(a, styleLines)
	}
	return r.renderLineFile(a)
}

// Scatter renders the array as a scatter plot.
func (r *Renderer) Scatter(a *array.Array) error {
	if r.opts.Show {
		return r.renderWindow(a, stylePoints)
	}
	return r.renderScatterFile(a)
}
