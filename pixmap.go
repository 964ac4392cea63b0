package geom

import (
	"image"
	"image/color"
	"image/png"
	"os"

	xdraw "golang.org/x/image/draw"
)

// Pixmap represents a rectangular pixel buffer. Pixels are stored in a
// Grid[uint8] with chunk size 4 (RGBA), so rectangular operations like
// Blit and Region go through the grid's validated region access.
type Pixmap struct {
	grid *Grid[uint8]
}

// pixelChunk is the grid chunk size of one RGBA pixel.
const pixelChunk = 4

// NewPixmap creates a new pixmap with the given dimensions. Dimensions
// below one pixel are clamped to one.
func NewPixmap(width, height int) *Pixmap {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	g, _ := NewGrid[uint8](width, height, pixelChunk)
	return &Pixmap{grid: g}
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.grid.Width()
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.grid.Height()
}

// Data returns the raw pixel data (RGBA format).
func (p *Pixmap) Data() []uint8 {
	return p.grid.Values()
}

// Grid returns the underlying cell grid for direct region access.
func (p *Pixmap) Grid() *Grid[uint8] {
	return p.grid
}

// SetPixel sets the color of a single pixel.
func (p *Pixmap) SetPixel(x, y int, c RGBA) {
	if x < 0 || x >= p.Width() || y < 0 || y >= p.Height() {
		return
	}
	cell := p.grid.Cell(Pt(x, y))
	px := c.Bytes()
	copy(cell, px[:])
}

// GetPixel returns the color of a single pixel.
func (p *Pixmap) GetPixel(x, y int) RGBA {
	if x < 0 || x >= p.Width() || y < 0 || y >= p.Height() {
		return Transparent
	}
	cell := p.grid.Cell(Pt(x, y))
	return RGBA{
		R: float64(cell[0]) / 255,
		G: float64(cell[1]) / 255,
		B: float64(cell[2]) / 255,
		A: float64(cell[3]) / 255,
	}
}

// Clear fills the entire pixmap with a color.
func (p *Pixmap) Clear(c RGBA) {
	px := c.Bytes()
	_ = p.grid.Fill(p.grid.Bounds(), px[:])
}

// FillRect fills a rectangular region with a color. The region must lie
// inside the pixmap.
func (p *Pixmap) FillRect(region RectLike[int], c RGBA) error {
	px := c.Bytes()
	return p.grid.Fill(region, px[:])
}

// Region copies a rectangular region into a new, independent pixmap.
func (p *Pixmap) Region(region RectLike[int]) (*Pixmap, error) {
	data, err := p.grid.Slice(region)
	if err != nil {
		return nil, err
	}
	g, err := GridOf(data, region.ToBounds().Width(), pixelChunk)
	if err != nil {
		return nil, err
	}
	return &Pixmap{grid: g}, nil
}

// Blit pastes src into the pixmap with its top-left corner at the given
// point. The destination rectangle must lie inside the pixmap.
func (p *Pixmap) Blit(src *Pixmap, at Point[int]) error {
	return p.grid.Insert(BoundsAt(at, src.grid.Size()), src.Data())
}

// Scale returns the pixmap resampled to the given dimensions using
// Catmull-Rom interpolation.
func (p *Pixmap) Scale(width, height int) *Pixmap {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), p.ToImage(), p.Bounds(), xdraw.Src, nil)
	return FromImage(dst)
}

// ToImage converts the pixmap to an image.RGBA.
func (p *Pixmap) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, p.Width(), p.Height()))
	copy(img.Pix, p.Data())
	return img
}

// FromImage creates a pixmap from an image.
func FromImage(img image.Image) *Pixmap {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	pm := NewPixmap(width, height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := img.At(bounds.Min.X+x, bounds.Min.Y+y)
			pm.SetPixel(x, y, FromColor(c))
		}
	}

	return pm
}

// SavePNG saves the pixmap to a PNG file.
func (p *Pixmap) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	img := p.ToImage()
	if err := png.Encode(f, img); err != nil {
		return err
	}
	Logger().Debug("pixmap saved", "path", path, "width", p.Width(), "height", p.Height())
	return nil
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	return p.GetPixel(x, y).Color()
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.Width(), p.Height())
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.NRGBAModel
}
