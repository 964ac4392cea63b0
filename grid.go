package geom

import (
	"fmt"
	"iter"
	"strings"
)

// Span is a half-open interval [Start, End) of element indices into a
// grid's backing buffer.
type Span struct {
	Start, End int
}

// Len returns the number of elements the span covers.
func (s Span) Len() int {
	return s.End - s.Start
}

// Grid stores a fixed number of cells in a single flat buffer, addressed
// in two dimensions. Each logical cell occupies a fixed number of
// consecutive buffer elements (the chunk size), so a Grid[uint8] with
// chunk size 4 holds RGBA pixels, chunk size 1 holds plain bytes, and so
// on. The grid does not interpret cell contents.
//
// The buffer is laid out row-major: row y starts at y*width*chunk.
// Region operations take bounding boxes in cell coordinates and work on
// one contiguous row at a time.
//
// A Grid owns its buffer exclusively and is never resized. It performs
// no synchronization; callers that share a grid across goroutines must
// serialize access themselves.
type Grid[T any] struct {
	data  []T
	width int
	chunk int
}

// NewGrid allocates a zeroed grid with the given dimensions in cells and
// the given chunk size (buffer elements per cell).
func NewGrid[T any](width, height, chunk int) (*Grid[T], error) {
	switch {
	case chunk < 1:
		return nil, ErrChunkSize
	case width < 1:
		return nil, ErrGridWidth
	case height < 0:
		return nil, ErrGridHeight
	}
	return &Grid[T]{
		data:  make([]T, width*height*chunk),
		width: width,
		chunk: chunk,
	}, nil
}

// GridOf creates a grid over an existing buffer, which may be backed by a
// heap allocation or a sliced fixed-size array. The grid takes exclusive
// ownership of the slice; the caller must not alias it afterwards.
//
// The buffer length must be an exact multiple of width*chunk, so that it
// forms a whole number of rows. A mismatch is rejected here, never
// discovered later during access.
func GridOf[T any](data []T, width, chunk int) (*Grid[T], error) {
	switch {
	case chunk < 1:
		return nil, ErrChunkSize
	case width < 1:
		return nil, ErrGridWidth
	}
	if len(data)%(width*chunk) != 0 {
		return nil, &SizeError{Len: len(data), Width: width, Chunk: chunk}
	}
	return &Grid[T]{data: data, width: width, chunk: chunk}, nil
}

// Width returns the number of cells per row.
func (g *Grid[T]) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g *Grid[T]) Height() int {
	return len(g.data) / (g.width * g.chunk)
}

// Chunk returns the number of buffer elements per cell.
func (g *Grid[T]) Chunk() int {
	return g.chunk
}

// Size returns the grid dimensions in cells.
func (g *Grid[T]) Size() Size[int] {
	return Sz(g.width, g.Height())
}

// Bounds returns the region covering the entire grid.
func (g *Grid[T]) Bounds() Bounds[int] {
	return BoundsAt(Pt(0, 0), g.Size())
}

// Len returns the length of the backing buffer in elements.
func (g *Grid[T]) Len() int {
	return len(g.data)
}

// Values exposes the backing buffer. Mutating it invalidates any slices
// previously handed out by Rows.
func (g *Grid[T]) Values() []T {
	return g.data
}

// Clone returns a deep copy of the grid.
func (g *Grid[T]) Clone() *Grid[T] {
	data := make([]T, len(g.data))
	copy(data, g.data)
	return &Grid[T]{data: data, width: g.width, chunk: g.chunk}
}

// Index returns the buffer offset of the first element of the cell at p.
// No validation is performed: a single point is not a region, and
// out-of-range coordinates are a caller error.
func (g *Grid[T]) Index(p Point[int]) int {
	return p.X*g.chunk + p.Y*g.width*g.chunk
}

// Cell returns the buffer elements of the single cell at p as a slice of
// length Chunk. Like Index it performs no validation.
func (g *Grid[T]) Cell(p Point[int]) []T {
	i := g.Index(p)
	return g.data[i : i+g.chunk : i+g.chunk]
}

// checkRegion resolves a RectLike and rejects regions with non-positive
// area or any cell outside the grid. Every region operation goes through
// here before a single range is computed.
func (g *Grid[T]) checkRegion(region RectLike[int]) (Bounds[int], error) {
	b := region.ToBounds()
	if b.Empty() || b.Left() < 0 || b.Top() < 0 || b.Right() > g.width || b.Bottom() > g.Height() {
		return b, &RegionError{Region: b, Width: g.width, Height: g.Height()}
	}
	return b, nil
}

// rowSpans produces one span per row of the region: row r of the region
// covers [start + r*stride, start + r*stride + w*chunk). The sequence is
// lazy and restartable. The region must already be validated.
func rowSpans(b Bounds[int], width, chunk int) iter.Seq[Span] {
	x, y, w, h := b.XYWH()
	stride := width * chunk
	rowWidth := w * chunk
	start := x*chunk + y*stride
	return func(yield func(Span) bool) {
		for r := range h {
			lo := start + r*stride
			if !yield(Span{Start: lo, End: lo + rowWidth}) {
				return
			}
		}
	}
}

// RowRanges returns the buffer spans covered by the region, one per row
// in increasing row order. Each span covers Width*Chunk elements; spans
// of adjacent rows are not contiguous unless the region spans the full
// grid width.
func (g *Grid[T]) RowRanges(region RectLike[int]) (iter.Seq[Span], error) {
	b, err := g.checkRegion(region)
	if err != nil {
		return nil, err
	}
	return rowSpans(b, g.width, g.chunk), nil
}

// Write invokes the mutator once per row of the region, in increasing row
// order, with the zero-based row index and a mutable slice of exactly
// that row's elements. The slices of different rows are disjoint, so
// mutating one row never affects another.
func (g *Grid[T]) Write(region RectLike[int], write func(row int, cells []T)) error {
	b, err := g.checkRegion(region)
	if err != nil {
		return err
	}
	row := 0
	for s := range rowSpans(b, g.width, g.chunk) {
		write(row, g.data[s.Start:s.End:s.End])
		row++
	}
	return nil
}

// Insert copies src into the region row by row: the r-th run of
// Width*Chunk source elements lands in the r-th region row. If src holds
// fewer complete rows than the region requires, Insert returns a
// ShapeError before touching the grid, so a failed insert never leaves a
// partial write behind.
func (g *Grid[T]) Insert(region RectLike[int], src []T) error {
	b, err := g.checkRegion(region)
	if err != nil {
		return err
	}
	rowWidth := b.Width() * g.chunk
	if rows := len(src) / rowWidth; rows < b.Height() {
		return &ShapeError{Rows: b.Height(), Row: rows}
	}
	row := 0
	for s := range rowSpans(b, g.width, g.chunk) {
		copy(g.data[s.Start:s.End], src[row*rowWidth:])
		row++
	}
	return nil
}

// Slice copies the region out of the grid: the rows are concatenated in
// order into a fresh slice of Width*Chunk*Height elements, independent of
// the grid's buffer.
func (g *Grid[T]) Slice(region RectLike[int]) ([]T, error) {
	b, err := g.checkRegion(region)
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, b.Area()*g.chunk)
	for s := range rowSpans(b, g.width, g.chunk) {
		out = append(out, g.data[s.Start:s.End]...)
	}
	return out, nil
}

// Rows returns the region's rows as borrowed slices into the grid's
// buffer, keyed by zero-based row index. This is the zero-copy
// counterpart of Slice: the slices stay valid only until the grid is
// mutated.
func (g *Grid[T]) Rows(region RectLike[int]) (iter.Seq2[int, []T], error) {
	b, err := g.checkRegion(region)
	if err != nil {
		return nil, err
	}
	spans := rowSpans(b, g.width, g.chunk)
	return func(yield func(int, []T) bool) {
		row := 0
		for s := range spans {
			if !yield(row, g.data[s.Start:s.End:s.End]) {
				return
			}
			row++
		}
	}, nil
}

// Fill tiles a single cell value across every cell of the region. The
// cell must have exactly Chunk elements.
func (g *Grid[T]) Fill(region RectLike[int], cell []T) error {
	if len(cell) != g.chunk {
		return fmt.Errorf("geom: fill cell has %d elements, grid chunk size is %d", len(cell), g.chunk)
	}
	return g.Write(region, func(_ int, cells []T) {
		for i := 0; i < len(cells); i += g.chunk {
			copy(cells[i:], cell)
		}
	})
}

// String renders the grid row by row with the elements of each cell
// grouped together. Intended for debugging small grids.
func (g *Grid[T]) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Grid (%dx%d; %d):\n", g.width, g.Height(), g.chunk)
	stride := g.width * g.chunk
	for y := range g.Height() {
		sb.WriteByte('|')
		row := g.data[y*stride : (y+1)*stride]
		for x := range g.width {
			for i, v := range row[x*g.chunk : (x+1)*g.chunk] {
				if i > 0 {
					sb.WriteByte(',')
				}
				fmt.Fprintf(&sb, " %v", v)
			}
			sb.WriteString(" |")
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
