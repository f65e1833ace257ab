package render

import (
	"errors"
	"fmt"
)

// ErrInvalidGeometry is reported by the canvas when a draw call cannot be executed.
var ErrInvalidGeometry = errors.New("invalid geometry")

// AllocationError is returned when the raster backing a canvas cannot be created.
type AllocationError struct {
	Width  int
	Height int
	Err    error
}

func (e *AllocationError) Error() string {
	return fmt.Sprintf("allocate %dx%d canvas: %v", e.Width, e.Height, e.Err)
}

func (e *AllocationError) Unwrap() error { return e.Err }

// IOError is returned when an output image cannot be written.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }
