package viz

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/hibare/ArrView/internal/array"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fileOpts(t *testing.T) Options {
	t.Helper()
	return Options{
		Title:  "test",
		Output: filepath.Join(t.TempDir(), "out.png"),
		Width:  4,
		Height: 3,
	}
}

func TestOptionsValidate(t *testing.T) {
	tests := []struct {
		name    string
		opts    Options
		wantErr bool
	}{
		{
			name: "valid file output",
			opts: Options{Output: "out.png", Width: 8, Height: 6},
		},
		{
			name: "show needs no output path",
			opts: Options{Width: 8, Height: 6, Show: true},
		},
		{
			name:    "missing output without show",
			opts:    Options{Width: 8, Height: 6},
			wantErr: true,
		},
		{
			name:    "zero width",
			opts:    Options{Output: "out.png", Width: 0, Height: 6},
			wantErr: true,
		},
		{
			name:    "negative height",
			opts:    Options{Output: "out.png", Width: 8, Height: -1},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNewRendererRejectsInvalidOptions(t *testing.T) {
	_, err := NewRenderer(Options{})
	assert.Error(t, err)
}

func TestRendererImage(t *testing.T) {
	opts := fileOpts(t)
	r, err := NewRenderer(opts)
	require.NoError(t, err)

	arr := &array.Array{
		Shape: []int{2, 3},
		Data:  []float64{0, 5, 10, 10, 5, 0},
	}
	require.NoError(t, r.Image(arr))

	f, err := os.Open(opts.Output)
	require.NoError(t, err)
	defer f.Close()

	img, err := png.Decode(f)
	require.NoError(t, err)

	bounds := img.Bounds()
	assert.Equal(t, 3, bounds.Dx(), "image width must be the column count")
	assert.Equal(t, 2, bounds.Dy(), "image height must be the row count")
}

func TestRendererImageRejectsVector(t *testing.T) {
	r, err := NewRenderer(fileOpts(t))
	require.NoError(t, err)

	arr := &array.Array{Shape: []int{3}, Data: []float64{1, 2, 3}}
	assert.ErrorIs(t, r.Image(arr), array.ErrNotMatrix)
}

func TestRendererImageRejectsWindow(t *testing.T) {
	r, err := NewRenderer(Options{Width: 4, Height: 3, Show: true})
	require.NoError(t, err)

	arr := &array.Array{Shape: []int{2, 2}, Data: []float64{1, 2, 3, 4}}
	assert.ErrorIs(t, r.Image(arr), ErrWindowUnsupported)
}

func TestRendererLine(t *testing.T) {
	opts := fileOpts(t)
	r, err := NewRenderer(opts)
	require.NoError(t, err)

	arr := &array.Array{Shape: []int{3}, Data: []float64{1, 2, 3}}
	require.NoError(t, r.Line(arr))

	info, err := os.Stat(opts.Output)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestRendererScatter(t *testing.T) {
	opts := fileOpts(t)
	r, err := NewRenderer(opts)
	require.NoError(t, err)

	arr := &array.Array{Shape: []int{2, 3}, Data: []float64{1, 2, 3, 10, 20, 30}}
	require.NoError(t, r.Scatter(arr))

	info, err := os.Stat(opts.Output)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}
