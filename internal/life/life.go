// Package life implements Conway's Game of Life over a geom.Grid with
// toroidal wrapping. It exists to drive the gridview demo and to exercise
// the grid engine with a real cell-automaton workload.
package life

import (
	"math/rand"

	"github.com/gogpu/geom"
)

// Sim holds the current and next generation as two chunk-1 byte grids.
type Sim struct {
	cur *geom.Grid[uint8]
	nxt *geom.Grid[uint8]
}

// New returns a simulation with the given board dimensions in cells.
func New(w, h int) (*Sim, error) {
	cur, err := geom.NewGrid[uint8](w, h, 1)
	if err != nil {
		return nil, err
	}
	nxt, err := geom.NewGrid[uint8](w, h, 1)
	if err != nil {
		return nil, err
	}
	return &Sim{cur: cur, nxt: nxt}, nil
}

// Size returns the board dimensions.
func (s *Sim) Size() geom.Size[int] {
	return s.cur.Size()
}

// Cells exposes the current generation, one byte per cell, 0 or 1.
func (s *Sim) Cells() []uint8 {
	return s.cur.Values()
}

// Set places a live (v=1) or dead (v=0) cell at p.
func (s *Sim) Set(p geom.Point[int], v uint8) {
	s.cur.Cell(p)[0] = v
}

// Seed randomizes the board with roughly half the cells alive.
func (s *Sim) Seed(seed int64) {
	rng := rand.New(rand.NewSource(seed))
	_ = s.cur.Write(s.cur.Bounds(), func(_ int, cells []uint8) {
		for i := range cells {
			cells[i] = uint8(rng.Intn(2))
		}
	})
}

// Step advances the simulation by one generation.
func (s *Sim) Step() {
	w, h := s.cur.Size().WH()
	cells := s.cur.Values()
	_ = s.nxt.Write(s.nxt.Bounds(), func(y int, row []uint8) {
		for x := range row {
			neighbors := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					nx := (x + dx + w) % w
					ny := (y + dy + h) % h
					neighbors += int(cells[s.cur.Index(geom.Pt(nx, ny))])
				}
			}
			alive := cells[s.cur.Index(geom.Pt(x, y))] == 1
			if (alive && (neighbors == 2 || neighbors == 3)) || (!alive && neighbors == 3) {
				row[x] = 1
			} else {
				row[x] = 0
			}
		}
	})
	s.cur, s.nxt = s.nxt, s.cur
}
