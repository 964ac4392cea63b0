package geom

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid construction.
var (
	// ErrChunkSize is returned when a grid is constructed with a chunk
	// size below 1.
	ErrChunkSize = errors.New("geom: grid chunk size must be at least 1")

	// ErrGridWidth is returned when a grid is constructed with a width
	// below 1.
	ErrGridWidth = errors.New("geom: grid width must be at least 1")

	// ErrGridHeight is returned when a grid is constructed with a
	// negative height.
	ErrGridHeight = errors.New("geom: grid height must not be negative")
)

// SizeError is returned when a grid is constructed over a buffer whose
// length cannot form whole rows of whole cells.
type SizeError struct {
	Len   int // buffer length
	Width int // cells per row
	Chunk int // buffer elements per cell
}

func (e *SizeError) Error() string {
	return fmt.Sprintf("geom: buffer length %d is not a multiple of width %d * chunk size %d",
		e.Len, e.Width, e.Chunk)
}

// RegionError is returned when a region operation receives a bounding box
// with non-positive area, or one extending outside the grid. The caller
// can retry with a corrected region; the grid is untouched.
type RegionError struct {
	Region Bounds[int] // the rejected region, in cell coordinates
	Width  int         // grid width in cells
	Height int         // grid height in cells
}

func (e *RegionError) Error() string {
	x, y, w, h := e.Region.XYWH()
	return fmt.Sprintf("geom: region (%d, %d, %dx%d) is empty or outside the %dx%d grid",
		x, y, w, h, e.Width, e.Height)
}

// ShapeError is returned by Insert when the source data runs out before
// every row of the target region has been supplied. It is a data-shape
// mismatch, not a bounds violation: the region itself is valid.
type ShapeError struct {
	Rows int // rows the region requires
	Row  int // first row index the source could not fill
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("geom: source data ends at row %d of %d", e.Row, e.Rows)
}
