package filehandler

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/nfnt/resize"
	"github.com/rs/zerolog/log"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"

	"LSBSteg/pkg/grid"
)

// LoadGrid decodes an image file into a grid
func LoadGrid(filePath string) (*grid.Grid, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	defer file.Close()

	img, format, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	g := grid.FromImage(img)
	log.Debug().
		Str("file", filePath).
		Str("format", format).
		Int("width", g.Width()).
		Int("height", g.Height()).
		Msg("image loaded")

	return g, nil
}

// SavePNG encodes g as a PNG file. PNG is lossless, so payload bits survive.
func SavePNG(g *grid.Grid, filePath string, level png.CompressionLevel) error {
	if ext := strings.ToLower(filepath.Ext(filePath)); ext != ".png" {
		log.Warn().Str("file", filePath).Msg("output is always PNG encoded regardless of extension")
	}

	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	out, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}

	encoder := png.Encoder{CompressionLevel: level}
	if err := encoder.Encode(out, g.ToImage()); err != nil {
		out.Close()
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("failed to close file: %w", err)
	}

	log.Debug().Str("file", filePath).Int("width", g.Width()).Int("height", g.Height()).Msg("image saved")
	return nil
}

// FitWithin scales g down, keeping its aspect ratio, so that it is no larger
// than maxWidth x maxHeight. A grid that already fits is returned unchanged.
func FitWithin(g *grid.Grid, maxWidth, maxHeight int, interp resize.InterpolationFunction) *grid.Grid {
	if g.Width() <= maxWidth && g.Height() <= maxHeight {
		return g
	}
	if maxWidth <= 0 || maxHeight <= 0 {
		return grid.New(0, 0)
	}

	scaled := resize.Thumbnail(uint(maxWidth), uint(maxHeight), g.ToImage(), interp)
	out := grid.FromImage(scaled)

	log.Debug().
		Int("fromWidth", g.Width()).
		Int("fromHeight", g.Height()).
		Int("toWidth", out.Width()).
		Int("toHeight", out.Height()).
		Msg("secret resized to fit carrier")

	return out
}

// ParseInterpolation maps a filter name to a resize interpolation function
func ParseInterpolation(name string) (resize.InterpolationFunction, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "nearest":
		return resize.NearestNeighbor, nil
	case "bilinear":
		return resize.Bilinear, nil
	case "bicubic":
		return resize.Bicubic, nil
	case "lanczos3":
		return resize.Lanczos3, nil
	default:
		return resize.NearestNeighbor, fmt.Errorf("unknown fit filter: %s", name)
	}
}

// ConvertToPNG re-encodes any supported image as a PNG in outDir, keeping the base
// name. Lossy carriers such as JPEG have to go through this before they can hold a payload.
func ConvertToPNG(filePath, outDir string, level png.CompressionLevel) (string, error) {
	g, err := LoadGrid(filePath)
	if err != nil {
		return "", err
	}

	if outDir == "" {
		outDir = filepath.Dir(filePath)
	}
	base := filepath.Base(filePath)
	outPath := filepath.Join(outDir, strings.TrimSuffix(base, filepath.Ext(base))+".png")
	if outPath == filePath {
		return "", fmt.Errorf("refusing to overwrite %s", filePath)
	}

	if err := SavePNG(g, outPath, level); err != nil {
		os.Remove(outPath)
		return "", err
	}
	return outPath, nil
}
