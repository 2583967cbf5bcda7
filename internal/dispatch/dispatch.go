// Package dispatch routes a parsed command to exactly one visualization
// routine. Parsing itself is owned by the cobra layer; this package only
// holds the closed set of modes and the routing over them, so that adding
// a mode is a compile-time-checked change.
package dispatch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/hibare/ArrView/internal/array"
)

// Mode is the closed set of visualization treatments.
type Mode int

// Visualization modes. ModeNone is the zero value and never dispatches.
const (
	ModeNone Mode = iota
	ModeImage
	ModeLine
	ModeScatter
)

// String returns the subcommand spelling of the mode.
func (m Mode) String() string {
	switch m {
	case ModeImage:
		return "image"
	case ModeLine:
		return "line"
	case ModeScatter:
		return "scatter"
	case ModeNone:
		return "none"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// ErrNoMode is returned when a command without a mode reaches Run. The CLI
// layer prints help instead of dispatching in that case.
var ErrNoMode = errors.New("no visualization mode selected")

// ParsedCommand is the structured result of argument parsing.
// FilePath is set iff Mode is not ModeNone.
type ParsedCommand struct {
	Mode     Mode
	FilePath string
}

// Loader deserializes the array file at path.
type Loader func(path string) (*array.Array, error)

// Renderer is the visualization collaborator. Each call displays or writes
// exactly one plot as a side effect.
type Renderer interface {
	Image(a *array.Array) error
	Line(a *array.Array) error
	Scatter(a *array.Array) error
}

// Run loads the array named by cmd and invokes the single renderer entry
// point matching cmd.Mode. Load failures propagate before any renderer
// call is made.
func Run(ctx context.Context, cmd ParsedCommand, load Loader, r Renderer) error {
	if cmd.Mode == ModeNone {
		return ErrNoMode
	}

	a, err := load(cmd.FilePath)
	if err != nil {
		return err
	}

	slog.DebugContext(ctx, "Array loaded", "path", cmd.FilePath, "shape", a.Shape, "mode", cmd.Mode.String())

	switch cmd.Mode {
	case ModeImage:
		return r.Image(a)
	case ModeLine:
		return r.Line(a)
	case ModeScatter:
		return r.Scatter(a)
	case ModeNone:
		return ErrNoMode
	default:
		return fmt.Errorf("unknown mode %d", int(cmd.Mode))
	}
}
