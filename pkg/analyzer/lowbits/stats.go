package lowbits

import (
	"errors"
	"math"

	"LSBSteg/pkg/channel"
	"LSBSteg/pkg/grid"
)

// maxPlaneEntropy is the entropy of a uniformly distributed 2-bit plane
const maxPlaneEntropy = 2.0

// chanceCoherence is how often two neighbouring pixels share all three 2-bit
// digits when the planes are independent noise (1/4^3)
const chanceCoherence = 1.0 / 64.0

// Stats summarises the 2-bit payload planes of a grid
type Stats struct {
	Histogram [3][4]int  // per channel (R, G, B), count of each low-bit digit
	Entropy   [3]float64 // per channel Shannon entropy in bits, 0..2
	// Coherence is the share of horizontally adjacent pixel pairs whose low
	// bits are identical in all three channels. Natural images sit near
	// chanceCoherence; an embedded picture or flat fill pushes it toward 1.
	Coherence float64
	// Zeroed is true when every payload bit in the grid is 0
	Zeroed bool
	Pixels int
}

// MeanEntropy averages the channel entropies
func (s *Stats) MeanEntropy() float64 {
	return (s.Entropy[0] + s.Entropy[1] + s.Entropy[2]) / 3.0
}

// PayloadScore maps coherence to 0..1, where chance level scores 0
func (s *Stats) PayloadScore() float64 {
	if s.Zeroed {
		return 0
	}
	score := (s.Coherence - chanceCoherence) / (1 - chanceCoherence)
	return math.Max(0, math.Min(1, score))
}

// Confidence grows with the number of pixels sampled
func (s *Stats) Confidence() float64 {
	return math.Min(float64(s.Pixels)/10000.0, 1.0)
}

// Collect measures the low-bit planes of g
func Collect(g *grid.Grid) (*Stats, error) {
	if g == nil {
		return nil, errors.New("nil grid provided")
	}
	if g.Len() == 0 {
		return nil, errors.New("empty grid provided")
	}

	stats := &Stats{Pixels: g.Len(), Zeroed: true}
	pairs, same := 0, 0

	for row := 0; row < g.Height(); row++ {
		for col := 0; col < g.Width(); col++ {
			p := g.At(row, col)
			for i, c := range p.Channels() {
				d := channel.Low(c)
				stats.Histogram[i][d]++
				if d != 0 {
					stats.Zeroed = false
				}
			}

			if col == 0 {
				continue
			}
			pairs++
			if lowDigits(p) == lowDigits(g.At(row, col-1)) {
				same++
			}
		}
	}

	for i := range stats.Histogram {
		stats.Entropy[i] = planeEntropy(stats.Histogram[i], stats.Pixels)
	}
	if pairs > 0 {
		stats.Coherence = float64(same) / float64(pairs)
	}

	return stats, nil
}

func lowDigits(p grid.Pixel) [3]uint8 {
	return [3]uint8{channel.Low(p.R), channel.Low(p.G), channel.Low(p.B)}
}

// planeEntropy calculates Shannon entropy of a digit histogram
func planeEntropy(hist [4]int, total int) float64 {
	entropy := 0.0
	for _, count := range hist {
		if count == 0 {
			continue
		}
		p := float64(count) / float64(total)
		entropy -= p * math.Log2(p)
	}
	return entropy
}
