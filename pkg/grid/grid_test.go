package grid

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAndAccessors(t *testing.T) {
	t.Parallel()

	g := New(3, 2)
	assert.Equal(t, 3, g.Width())
	assert.Equal(t, 2, g.Height())
	assert.Equal(t, 6, g.Len())
	assert.Equal(t, Pixel{}, g.At(1, 2))

	g.Set(1, 2, Pixel{R: 1, G: 2, B: 3})
	assert.Equal(t, Pixel{R: 1, G: 2, B: 3}, g.At(1, 2))
	assert.Equal(t, Pixel{R: 1, G: 2, B: 3}, g.Index(5), "row-major index of (1,2) in a 3-wide grid")

	assert.True(t, g.InBounds(0, 0))
	assert.False(t, g.InBounds(2, 0))
	assert.False(t, g.InBounds(0, 3))
	assert.False(t, g.InBounds(-1, 0))
	assert.Panics(t, func() { g.At(2, 0) })
}

func TestNegativeSizeIsEmpty(t *testing.T) {
	t.Parallel()

	g := New(-1, 5)
	assert.Equal(t, 0, g.Width())
	assert.Equal(t, 0, g.Len())
}

func TestCloneIsIndependent(t *testing.T) {
	t.Parallel()

	g := Filled(2, 2, Pixel{R: 9})
	c := g.Clone()
	c.Set(0, 0, Pixel{G: 1})

	assert.Equal(t, Pixel{R: 9}, g.At(0, 0))
	assert.True(t, g.Congruent(c))
	assert.False(t, g.Congruent(New(2, 3)))
}

func TestMapLeavesSourceUntouched(t *testing.T) {
	t.Parallel()

	g := Filled(2, 1, Pixel{R: 10, G: 20, B: 30})
	out := g.Map(func(p Pixel) Pixel { return Pixel{R: p.B, G: p.G, B: p.R} })

	assert.Equal(t, Pixel{R: 30, G: 20, B: 10}, out.At(0, 1))
	assert.Equal(t, Pixel{R: 10, G: 20, B: 30}, g.At(0, 1))
}

func TestImageRoundTrip(t *testing.T) {
	t.Parallel()

	src := image.NewRGBA(image.Rect(0, 0, 4, 3))
	src.Set(3, 1, color.RGBA{R: 200, G: 100, B: 50, A: 255})

	g := FromImage(src)
	require.Equal(t, 4, g.Width())
	require.Equal(t, 3, g.Height())
	assert.Equal(t, Pixel{R: 200, G: 100, B: 50}, g.At(1, 3), "x maps to col and y to row")

	out := g.ToImage()
	assert.Equal(t, color.NRGBA{R: 200, G: 100, B: 50, A: 255}, out.NRGBAAt(3, 1))
	assert.Equal(t, uint8(255), out.NRGBAAt(0, 0).A)
}

func TestFromImageHonoursOffsetBounds(t *testing.T) {
	t.Parallel()

	src := image.NewNRGBA(image.Rect(10, 20, 12, 22))
	src.SetNRGBA(11, 21, color.NRGBA{R: 1, G: 2, B: 3, A: 255})

	g := FromImage(src)
	assert.Equal(t, 2, g.Width())
	assert.Equal(t, Pixel{R: 1, G: 2, B: 3}, g.At(1, 1))
}
