package stego

import (
	"LSBSteg/pkg/channel"
	"LSBSteg/pkg/grid"
)

// CanEmbed reports whether secret fits inside carrier at offset (0, 0)
func CanEmbed(carrier, secret *grid.Grid) bool {
	return carrier.Width() >= secret.Width() && carrier.Height() >= secret.Height()
}

// Embed returns a copy of carrier with secret stored in its low bits, starting at
// (startRow, startCol). Each carrier channel keeps its top six bits and takes the top
// two bits of the same channel of the secret pixel. Secret pixels that land outside
// the carrier are dropped without error.
func Embed(carrier, secret *grid.Grid, startRow, startCol int) *grid.Grid {
	combined := carrier.Clone()

	for r := 0; r < secret.Height(); r++ {
		for c := 0; c < secret.Width(); c++ {
			row, col := startRow+r, startCol+c
			if !combined.InBounds(row, col) {
				continue
			}

			hidden := secret.At(r, c)
			cover := combined.At(row, col)
			combined.Set(row, col, grid.Pixel{
				R: channel.InsertHighBits(cover.R, hidden.R),
				G: channel.InsertHighBits(cover.G, hidden.G),
				B: channel.InsertHighBits(cover.B, hidden.B),
			})
		}
	}

	return combined
}

// Reveal returns the coarse picture held in the low bits of hidden.
// Any grid can be revealed; one that never carried a payload yields noise.
func Reveal(hidden *grid.Grid) *grid.Grid {
	return hidden.Map(func(p grid.Pixel) grid.Pixel {
		return grid.Pixel{
			R: channel.ExtractAsByte(p.R),
			G: channel.ExtractAsByte(p.G),
			B: channel.ExtractAsByte(p.B),
		}
	})
}

// ClearLow returns a copy of g with the payload bits of every channel zeroed
func ClearLow(g *grid.Grid) *grid.Grid {
	return g.Map(func(p grid.Pixel) grid.Pixel {
		return grid.Pixel{
			R: channel.QuantizeDown(p.R),
			G: channel.QuantizeDown(p.G),
			B: channel.QuantizeDown(p.B),
		}
	})
}

// SetLow returns a copy of g with the top two bits of fill stored in every pixel
func SetLow(g *grid.Grid, fill grid.Pixel) *grid.Grid {
	return g.Map(func(p grid.Pixel) grid.Pixel {
		return grid.Pixel{
			R: channel.InsertHighBits(p.R, fill.R),
			G: channel.InsertHighBits(p.G, fill.G),
			B: channel.InsertHighBits(p.B, fill.B),
		}
	})
}
