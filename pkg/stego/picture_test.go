package stego

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"LSBSteg/pkg/grid"
)

// gradient builds a grid whose channels all differ so channel mix-ups show up
func gradient(width, height int) *grid.Grid {
	g := grid.New(width, height)
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			g.Set(row, col, grid.Pixel{
				R: uint8(row*37 + col*11),
				G: uint8(255 - row*23 - col*7),
				B: uint8(row*col*13 + 64),
			})
		}
	}
	return g
}

func TestCanEmbed(t *testing.T) {
	t.Parallel()

	carrier := grid.New(10, 8)
	assert.True(t, CanEmbed(carrier, grid.New(10, 8)), "equal dimensions fit")
	assert.True(t, CanEmbed(carrier, grid.New(1, 1)))
	assert.False(t, CanEmbed(carrier, grid.New(11, 8)))
	assert.False(t, CanEmbed(carrier, grid.New(10, 9)))
	assert.False(t, CanEmbed(carrier, grid.New(11, 9)))
}

func TestEmbedRevealKeepsTopBits(t *testing.T) {
	t.Parallel()

	carrier := gradient(12, 9)
	secret := gradient(7, 5).Map(func(p grid.Pixel) grid.Pixel {
		return grid.Pixel{R: p.B, G: p.R ^ 0xa5, B: p.G}
	})

	revealed := Reveal(Embed(carrier, secret, 0, 0))

	for row := 0; row < secret.Height(); row++ {
		for col := 0; col < secret.Width(); col++ {
			want := secret.At(row, col)
			got := revealed.At(row, col)
			assert.Equal(t, want.R&0xc0, got.R, "red at (%d,%d)", row, col)
			assert.Equal(t, want.G&0xc0, got.G, "green at (%d,%d)", row, col)
			assert.Equal(t, want.B&0xc0, got.B, "blue at (%d,%d)", row, col)
		}
	}
}

func TestEmbedIsChannelCorrect(t *testing.T) {
	t.Parallel()

	carrier := grid.New(1, 1)
	secret := grid.Filled(1, 1, grid.Pixel{R: 0x40, G: 0x80, B: 0xc0})

	got := Embed(carrier, secret, 0, 0).At(0, 0)
	assert.Equal(t, grid.Pixel{R: 1, G: 2, B: 3}, got)
}

func TestEmbedDoesNotMutateInputs(t *testing.T) {
	t.Parallel()

	carrier := gradient(4, 4)
	secret := grid.Filled(2, 2, grid.Pixel{R: 255, G: 255, B: 255})
	before := carrier.Clone()

	_ = Embed(carrier, secret, 1, 1)
	assert.Equal(t, before, carrier)
}

func TestEmbedAtOffsetTouchesOnlyTarget(t *testing.T) {
	t.Parallel()

	carrier := grid.New(4, 4)
	secret := grid.Filled(2, 2, grid.Pixel{R: 255, G: 255, B: 255})

	out := Embed(carrier, secret, 1, 1)
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			inside := row >= 1 && row <= 2 && col >= 1 && col <= 2
			if inside {
				assert.Equal(t, grid.Pixel{R: 3, G: 3, B: 3}, out.At(row, col))
			} else {
				assert.Equal(t, grid.Pixel{}, out.At(row, col))
			}
		}
	}
}

func TestEmbedTruncatesSilently(t *testing.T) {
	t.Parallel()

	carrier := grid.New(3, 3)
	secret := grid.Filled(5, 5, grid.Pixel{R: 0xff, G: 0xff, B: 0xff})

	out := Embed(carrier, secret, 2, 2)
	require.Equal(t, 3, out.Width())
	require.Equal(t, 3, out.Height())
	assert.Equal(t, grid.Pixel{R: 3, G: 3, B: 3}, out.At(2, 2))
	assert.Equal(t, grid.Pixel{}, out.At(1, 1))

	// negative offsets clip the secret's top-left instead of panicking
	out = Embed(carrier, secret, -4, -4)
	assert.Equal(t, grid.Pixel{R: 3, G: 3, B: 3}, out.At(0, 0))
	assert.Equal(t, grid.Pixel{}, out.At(1, 1))
}

func TestRevealAnyGrid(t *testing.T) {
	t.Parallel()

	g := grid.Filled(2, 2, grid.Pixel{R: 0b101, G: 0b110, B: 0b111})
	out := Reveal(g)
	assert.Equal(t, grid.Pixel{R: 0x40, G: 0x80, B: 0xc0}, out.At(1, 1))
	assert.Equal(t, grid.Pixel{R: 0b101, G: 0b110, B: 0b111}, g.At(1, 1))
}

func TestClearLow(t *testing.T) {
	t.Parallel()

	g := gradient(5, 5)
	out := ClearLow(g)
	for i := 0; i < out.Len(); i++ {
		p := out.Index(i)
		assert.Zero(t, p.R&3)
		assert.Zero(t, p.G&3)
		assert.Zero(t, p.B&3)
	}
	assert.Equal(t, grid.New(5, 5), Reveal(out), "a cleared grid reveals black")
}

func TestSetLowRevealsFlatColour(t *testing.T) {
	t.Parallel()

	pink := grid.Pixel{R: 0xff, G: 0xaf, B: 0xaf}
	out := Reveal(SetLow(gradient(6, 3), pink))

	for i := 0; i < out.Len(); i++ {
		assert.Equal(t, grid.Pixel{R: 0xc0, G: 0x80, B: 0x80}, out.Index(i))
	}
}
