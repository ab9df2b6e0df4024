package picture

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"LSBSteg/pkg/extractor"
	"LSBSteg/pkg/filehandler"
	"LSBSteg/pkg/grid"
	"LSBSteg/pkg/stego"
)

func TestExtractFromGrid(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	secret := grid.Filled(3, 2, grid.Pixel{R: 0xff, G: 0x80, B: 0x40})
	hidden := stego.Embed(grid.New(3, 2), secret, 0, 0)

	res, err := New().ExtractFromGrid(hidden, extractor.ExtractionOptions{OutputDir: dir, BaseName: "cover.png"})
	require.NoError(t, err)

	assert.True(t, res.Success)
	assert.Equal(t, "picture", res.PayloadKind)
	assert.Equal(t, 3, res.Width)
	assert.Equal(t, 2, res.Height)
	want := filepath.Join(dir, "cover_revealed.png")
	require.Equal(t, []string{want}, res.OutputFiles)

	got, err := filehandler.LoadGrid(want)
	require.NoError(t, err)
	assert.Equal(t, grid.Filled(3, 2, grid.Pixel{R: 0xc0, G: 0x80, B: 0x40}), got)
}

func TestExtractFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	carrier := filepath.Join(dir, "in", "photo.png")
	require.NoError(t, filehandler.SavePNG(grid.Filled(2, 2, grid.Pixel{R: 3}), carrier, 0))

	out := filepath.Join(dir, "out")
	res, err := New().Extract(carrier, extractor.ExtractionOptions{OutputDir: out})
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(out, "photo_revealed.png")}, res.OutputFiles)
}

func TestExtractDefaultsBaseName(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	res, err := New().ExtractFromGrid(grid.New(1, 1), extractor.ExtractionOptions{OutputDir: dir})
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "extracted_revealed.png")}, res.OutputFiles)

	_, err = New().ExtractFromGrid(nil, extractor.ExtractionOptions{OutputDir: dir})
	assert.Error(t, err)
}
