package textprobe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"LSBSteg/pkg/analyzer"
	"LSBSteg/pkg/grid"
	"LSBSteg/pkg/stego"
)

func TestScore(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		scan stego.TextScan
		want float64
	}{
		{"clean message", stego.TextScan{Text: "HELLO WORLD", Codes: 11, Terminated: true}, 1},
		{"clean at full length", stego.TextScan{Text: "ABCDEFGH", Codes: 8, Terminated: true}, 1},
		{"short message scaled", stego.TextScan{Text: "HELLO", Codes: 5, Terminated: true}, 0.625},
		{"unterminated", stego.TextScan{Text: "HELLO", Codes: 5}, 0},
		{"too short", stego.TextScan{Text: "ABC", Codes: 3, Terminated: true}, 0},
		{"empty", stego.TextScan{Terminated: true}, 0},
		{"one bad value", stego.TextScan{Text: "ABCDEFG", Codes: 8, Skipped: 1, Terminated: true}, 0.4375},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Score(tt.scan), 1e-9)
		})
	}
}

func TestAnalyzeHiddenMessage(t *testing.T) {
	t.Parallel()

	g := stego.SetLow(grid.New(10, 10), grid.Pixel{R: 0xff, G: 0xff, B: 0xff})
	require.NoError(t, stego.HideText(g, "MEET AT NOON"))

	res, err := New().AnalyzeGrid(g, analyzer.AnalysisOptions{Format: "png"})
	require.NoError(t, err)

	assert.Equal(t, Name, res.Analyzer)
	assert.Greater(t, res.PayloadScore, 0.5)
	assert.Equal(t, "text", res.PayloadKind)
	require.Len(t, res.Findings, 1)
	assert.Contains(t, res.Findings[0].Details, "MEET AT NOON")
	assert.Equal(t, 12, res.Details["codes"])
}

func TestAnalyzeNoMessage(t *testing.T) {
	t.Parallel()

	// every value reads as 63, which is never a letter, and there is no terminator
	g := stego.SetLow(grid.New(6, 6), grid.Pixel{R: 0xff, G: 0xff, B: 0xff})

	res, err := New().AnalyzeGrid(g, analyzer.AnalysisOptions{Verbose: true})
	require.NoError(t, err)

	assert.Zero(t, res.PayloadScore)
	assert.Empty(t, res.PayloadKind)
	require.Len(t, res.Findings, 1)
	assert.Equal(t, "No clean message", res.Findings[0].Description)
}

func TestAnalyzeShortChanceRunIsNotReported(t *testing.T) {
	t.Parallel()

	// a few letters followed by a zero is what random low bits produce most often
	for _, text := range []string{"AB", "QXZ", "KEPT"} {
		g := stego.SetLow(grid.New(16, 16), grid.Pixel{R: 0xff, G: 0xff, B: 0xff})
		require.NoError(t, stego.HideText(g, text))

		res, err := New().AnalyzeGrid(g, analyzer.AnalysisOptions{})
		require.NoError(t, err)
		assert.LessOrEqual(t, res.PayloadScore, 0.5, text)
		assert.Empty(t, res.PayloadKind, text)
		assert.Empty(t, res.Findings, text)
	}
}

func TestAnalyzeNilGrid(t *testing.T) {
	t.Parallel()

	_, err := New().AnalyzeGrid(nil, analyzer.AnalysisOptions{})
	assert.Error(t, err)
}

func TestPreview(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "SHORT", preview("SHORT", 10))
	assert.Equal(t, "ABCDEFG...", preview("ABCDEFGHIJKLMNOP", 10))
}
