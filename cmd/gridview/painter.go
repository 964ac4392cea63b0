package main

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gogpu/geom"
)

// Cell colors for the viewer.
var (
	aliveColor = geom.Hex("#7fd962").Bytes()
	deadColor  = geom.Hex("#10141c").Bytes()
)

// gridPainter converts binary cell data into an RGBA pixel grid and
// uploads it into a single ebiten image each frame.
type gridPainter struct {
	pixels *geom.Grid[uint8]
	img    *ebiten.Image
}

// newGridPainter allocates a painter for a board of w*h cells.
func newGridPainter(w, h int) *gridPainter {
	pixels, _ := geom.NewGrid[uint8](w, h, 4)
	return &gridPainter{
		pixels: pixels,
		img:    ebiten.NewImage(w, h),
	}
}

// blit colors the pixel grid from cells, uploads it, and draws it scaled.
func (gp *gridPainter) blit(dst *ebiten.Image, cells []uint8, scale int) {
	if len(cells)*gp.pixels.Chunk() != gp.pixels.Len() {
		return
	}

	_ = gp.pixels.Write(gp.pixels.Bounds(), func(row int, px []uint8) {
		w := gp.pixels.Width()
		for x := 0; x < w; x++ {
			c := deadColor
			if cells[row*w+x] != 0 {
				c = aliveColor
			}
			copy(px[x*4:], c[:])
		}
	})
	gp.img.WritePixels(gp.pixels.Values())

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}
