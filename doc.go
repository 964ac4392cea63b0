// Package geom provides 2D geometric value types and a flat-buffer grid
// engine for Go.
//
// # Overview
//
// geom has two layers. The value types (Point, Offset, Size, Bounds) are
// immutable pairs of numeric components with component-wise arithmetic,
// generic over every integer and float type. On top of them, Grid stores
// rectangular data of any element type in a single contiguous buffer and
// translates bounding boxes into per-row buffer ranges for validated bulk
// reads and writes.
//
// # Quick Start
//
//	import "github.com/gogpu/geom"
//
//	// A 3x3 grid of RGBA cells: 4 buffer elements per cell.
//	g, err := geom.NewGrid[uint8](3, 3, 4)
//	if err != nil {
//		// construction is validated, never deferred to access time
//	}
//
//	// Brighten a 2x2 region starting at cell (1, 1).
//	_ = g.Write(geom.Rect(1, 1, 2, 2), func(row int, cells []uint8) {
//		for i := range cells {
//			cells[i] += 40
//		}
//	})
//
//	// Copy the region back out, rows concatenated in order.
//	data, _ := g.Slice(geom.XYWH[int]{1, 1, 2, 2})
//	_ = data
//
// # Cells and chunk size
//
// A grid cell is one logical element occupying a fixed number of
// consecutive buffer slots, the chunk size: 4 for RGBA pixels, 1 for plain
// bytes, or any record width. The grid never interprets cell contents.
// Pixmap is the bundled example of a concrete cell interpretation: an RGBA
// pixel buffer built on Grid[uint8] with chunk size 4.
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Grid regions are in cell coordinates, half-open on right and bottom
//
// # Errors
//
// All grid failures are caller mistakes, surfaced immediately and never
// retried: malformed construction (SizeError, ErrChunkSize, ErrGridWidth),
// out-of-bounds or empty regions (RegionError), and insert data of the
// wrong shape (ShapeError). Region and shape errors are recoverable; the
// grid is left untouched.
//
// # Concurrency
//
// A Grid performs no synchronization. All operations are synchronous,
// bounded, CPU-only index arithmetic; callers sharing a grid across
// goroutines must serialize access externally.
package geom

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"
)
