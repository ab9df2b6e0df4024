package config

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"LSBSteg/pkg/grid"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lsbsteg.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := Default()
	assert.Equal(t, "lsbsteg_output", cfg.OutputDir)
	assert.False(t, cfg.Verbose)
	assert.Equal(t, grid.Pixel{R: 0xff}, cfg.HighlightColor)
	assert.Equal(t, png.DefaultCompression, cfg.Compression)
	assert.Equal(t, "nearest", cfg.FitFilter)
	assert.Empty(t, cfg.Analyzers)
}

func TestLoadOverrides(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
outdir = "  results "
verbose = true
highlight_color = "#00ff7f"
png_compression = "best"
fit_filter = "Lanczos3"
analyzers = ["TextProbe", "lowbits", "textprobe", " "]
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Config{
		OutputDir:      "results",
		Verbose:        true,
		HighlightColor: grid.Pixel{R: 0x00, G: 0xff, B: 0x7f},
		Compression:    png.BestCompression,
		FitFilter:      "lanczos3",
		Analyzers:      []string{"textprobe", "lowbits"},
	}, cfg)
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load(writeConfig(t, "verbose = true\n"))
	require.NoError(t, err)

	want := Default()
	want.Verbose = true
	assert.Equal(t, want, cfg)
}

func TestLoadErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
		want string
	}{
		{"unknown key", "outdir = \"x\"\ncolour = \"red\"\n", "unknown key"},
		{"empty outdir", "outdir = \"   \"\n", "outdir must not be empty"},
		{"bad colour", "highlight_color = \"red\"\n", "highlight_color"},
		{"bad compression", "png_compression = \"max\"\n", "png_compression"},
		{"bad fit filter", "fit_filter = \"lanczos\"\n", "unknown fit filter: lanczos"},
		{"bad toml", "outdir = \n", "load config"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			assert.ErrorContains(t, err, tt.want)
		})
	}

	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestParseColor(t *testing.T) {
	t.Parallel()

	c, err := ParseColor("ffafaf")
	require.NoError(t, err)
	assert.Equal(t, grid.Pixel{R: 0xff, G: 0xaf, B: 0xaf}, c)

	c, err = ParseColor(" #0A0b0C ")
	require.NoError(t, err)
	assert.Equal(t, grid.Pixel{R: 0x0a, G: 0x0b, B: 0x0c}, c)

	for _, bad := range []string{"", "fff", "#ff00ff00", "zz0000"} {
		_, err := ParseColor(bad)
		assert.Error(t, err, bad)
	}
}

func TestParseCompression(t *testing.T) {
	t.Parallel()

	tests := map[string]png.CompressionLevel{
		"":        png.DefaultCompression,
		"default": png.DefaultCompression,
		"NONE":    png.NoCompression,
		"fast":    png.BestSpeed,
		"best":    png.BestCompression,
	}
	for in, want := range tests {
		got, err := ParseCompression(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}

func TestLoadExampleFile(t *testing.T) {
	t.Parallel()

	cfg, err := Load(filepath.Join("..", "..", "lsbsteg.example.toml"))
	require.NoError(t, err)
	assert.Equal(t, "lsbsteg_output", cfg.OutputDir)
	assert.Equal(t, grid.Pixel{R: 0xff}, cfg.HighlightColor)
	assert.Equal(t, []string{"lowbits", "textprobe"}, cfg.Analyzers)
}
