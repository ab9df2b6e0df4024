package grid

import (
	"image"
	"image/color"
)

/*
grid.go holds the in-memory pixel model every codec works on.
Pixel: three 8-bit channels, no alpha.
Grid: a fixed-size, row-major collection of pixels addressed as (row, col),
where row is the y axis and col is the x axis of the source image.
*/

// Pixel is a single RGB triple
type Pixel struct {
	R, G, B uint8
}

// Channels returns the pixel's channels in R, G, B order
func (p Pixel) Channels() [3]uint8 {
	return [3]uint8{p.R, p.G, p.B}
}

// Grid is a row-major 2-D collection of pixels with a fixed width and height
type Grid struct {
	width  int
	height int
	pix    []Pixel
}

// New creates a black grid of the given size. Negative sizes are treated as zero.
func New(width, height int) *Grid {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Grid{
		width:  width,
		height: height,
		pix:    make([]Pixel, width*height),
	}
}

// Filled creates a grid of the given size with every pixel set to p
func Filled(width, height int, p Pixel) *Grid {
	g := New(width, height)
	for i := range g.pix {
		g.pix[i] = p
	}
	return g
}

// Width returns the number of columns
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows
func (g *Grid) Height() int {
	return g.height
}

// Len returns the number of pixels in the grid
func (g *Grid) Len() int {
	return len(g.pix)
}

// InBounds reports whether (row, col) addresses a pixel of the grid
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.height && col >= 0 && col < g.width
}

// At returns the pixel at (row, col). It panics when out of bounds, like a slice index.
func (g *Grid) At(row, col int) Pixel {
	return g.pix[g.offset(row, col)]
}

// Set replaces the pixel at (row, col)
func (g *Grid) Set(row, col int, p Pixel) {
	g.pix[g.offset(row, col)] = p
}

// Index returns the pixel at position i of the row-major scan
func (g *Grid) Index(i int) Pixel {
	return g.pix[i]
}

// SetIndex replaces the pixel at position i of the row-major scan
func (g *Grid) SetIndex(i int, p Pixel) {
	g.pix[i] = p
}

// Congruent reports whether both grids have the same width and height
func (g *Grid) Congruent(other *Grid) bool {
	return g.width == other.width && g.height == other.height
}

// Clone returns an independent copy of the grid
func (g *Grid) Clone() *Grid {
	pix := make([]Pixel, len(g.pix))
	copy(pix, g.pix)
	return &Grid{
		width:  g.width,
		height: g.height,
		pix:    pix,
	}
}

// Map returns a new grid where every pixel is fn applied to the matching pixel of g
func (g *Grid) Map(fn func(Pixel) Pixel) *Grid {
	out := &Grid{
		width:  g.width,
		height: g.height,
		pix:    make([]Pixel, len(g.pix)),
	}
	for i, p := range g.pix {
		out.pix[i] = fn(p)
	}
	return out
}

func (g *Grid) offset(row, col int) int {
	if !g.InBounds(row, col) {
		panic("grid: position out of range")
	}
	return row*g.width + col
}

// FromImage copies an image into a new grid. Alpha is dropped after
// converting each pixel to non-premultiplied 8-bit RGBA.
func FromImage(img image.Image) *Grid {
	bounds := img.Bounds()
	g := New(bounds.Dx(), bounds.Dy())

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			g.Set(y-bounds.Min.Y, x-bounds.Min.X, Pixel{R: c.R, G: c.G, B: c.B})
		}
	}

	return g
}

// ToImage renders the grid as an opaque NRGBA image with x = col and y = row
func (g *Grid) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, g.width, g.height))
	for row := 0; row < g.height; row++ {
		for col := 0; col < g.width; col++ {
			p := g.At(row, col)
			i := img.PixOffset(col, row)
			img.Pix[i+0] = p.R
			img.Pix[i+1] = p.G
			img.Pix[i+2] = p.B
			img.Pix[i+3] = 0xff
		}
	}
	return img
}
