// Package array loads serialized NumPy arrays into a renderer-friendly form.
package array

import (
	"errors"
	"fmt"
	"math/cmplx"
	"os"
	"strings"

	"github.com/sbinet/npyio"
	"gonum.org/v1/gonum/mat"
)

var (
	// ErrLoad is wrapped around every load failure so the process boundary
	// can classify it.
	ErrLoad = errors.New("failed to load array")

	// ErrFortranOrder is returned for column-major npy files.
	ErrFortranOrder = errors.New("fortran-order arrays are not supported")

	// ErrUnsupportedDType is returned for dtypes outside the numeric set.
	ErrUnsupportedDType = errors.New("unsupported dtype")

	// ErrEmptyArray is returned when the file holds zero elements.
	ErrEmptyArray = errors.New("array has no elements")

	// ErrNotMatrix is returned when a 2-D view is requested of a 1-D array.
	ErrNotMatrix = errors.New("array is not at least 2-dimensional")
)

// Array is an in-memory numeric array in row-major order. Integer and
// complex inputs are widened to float64 at load time; complex values are
// stored as their magnitude.
type Array struct {
	Shape []int
	Data  []float64
}

// Load reads the npy file at path. The file handle is closed whether or
// not decoding succeeds.
func Load(path string) (*Array, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoad, err)
	}
	defer f.Close()

	r, err := npyio.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrLoad, path, err)
	}

	if r.Header.Descr.Fortran {
		return nil, fmt.Errorf("%w: %s: %w", ErrLoad, path, ErrFortranOrder)
	}

	shape := r.Header.Descr.Shape
	if len(shape) == 0 {
		// 0-d scalar, stored as a single element.
		shape = []int{1}
	}

	data, err := readAsFloat64(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrLoad, path, err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: %s: %w", ErrLoad, path, ErrEmptyArray)
	}

	return &Array{Shape: shape, Data: data}, nil
}

// readAsFloat64 reads the payload in its native dtype and widens it.
func readAsFloat64(r *npyio.Reader) ([]float64, error) {
	dtype := strings.TrimLeft(r.Header.Descr.Type, "<=|")

	switch dtype {
	case "f8":
		var v []float64
		if err := r.Read(&v); err != nil {
			return nil, err
		}
		return v, nil
	case "f4":
		return widen(r, func(x float32) float64 { return float64(x) })
	case "i1":
		return widen(r, func(x int8) float64 { return float64(x) })
	case "i2":
		return widen(r, func(x int16) float64 { return float64(x) })
	case "i4":
		return widen(r, func(x int32) float64 { return float64(x) })
	case "i8":
		return widen(r, func(x int64) float64 { return float64(x) })
	case "u1":
		return widen(r, func(x uint8) float64 { return float64(x) })
	case "u2":
		return widen(r, func(x uint16) float64 { return float64(x) })
	case "u4":
		return widen(r, func(x uint32) float64 { return float64(x) })
	case "u8":
		return widen(r, func(x uint64) float64 { return float64(x) })
	case "b1":
		return widen(r, func(x bool) float64 {
			if x {
				return 1
			}
			return 0
		})
	case "c8":
		return widen(r, func(x complex64) float64 { return cmplx.Abs(complex128(x)) })
	case "c16":
		return widen(r, cmplx.Abs)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDType, r.Header.Descr.Type)
	}
}

func widen[T any](r *npyio.Reader, conv func(T) float64) ([]float64, error) {
	var v []T
	if err := r.Read(&v); err != nil {
		return nil, err
	}
	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = conv(x)
	}
	return out, nil
}

// NDim returns the number of dimensions.
func (a *Array) NDim() int {
	return len(a.Shape)
}

// Matrix returns a 2-D view over the last two axes. Arrays with more than
// two dimensions are reduced to the central slice of each leading axis.
func (a *Array) Matrix() (*mat.Dense, error) {
	if a.NDim() < 2 {
		return nil, fmt.Errorf("%w: shape %v", ErrNotMatrix, a.Shape)
	}

	rows := a.Shape[a.NDim()-2]
	cols := a.Shape[a.NDim()-1]
	offset := a.centralOffset(a.NDim() - 2)

	return mat.NewDense(rows, cols, a.Data[offset:offset+rows*cols]), nil
}

// Vector returns a 1-D series along the last axis, reduced to the central
// slice of every leading axis.
func (a *Array) Vector() []float64 {
	n := a.Shape[a.NDim()-1]
	offset := a.centralOffset(a.NDim() - 1)
	return a.Data[offset : offset+n]
}

// Points returns X/Y coordinates for scatter rendering. A (2, N) array is
// taken as explicit coordinates; anything else plots value against index.
func (a *Array) Points() (xs, ys []float64) {
	if a.NDim() == 2 && a.Shape[0] == 2 {
		n := a.Shape[1]
		return a.Data[:n], a.Data[n : 2*n]
	}

	ys = a.Vector()
	xs = make([]float64, len(ys))
	for i := range xs {
		xs[i] = float64(i)
	}
	return xs, ys
}

// centralOffset computes the row-major offset of the block addressed by
// taking the middle index of the first nlead axes.
func (a *Array) centralOffset(nlead int) int {
	stride := 1
	for _, s := range a.Shape[nlead:] {
		stride *= s
	}

	offset := 0
	for k := nlead - 1; k >= 0; k-- {
		offset += (a.Shape[k] / 2) * stride
		stride *= a.Shape[k]
	}
	return offset
}
