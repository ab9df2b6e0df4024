package picture

import (
	"errors"
	"fmt"
	"path/filepath"

	"LSBSteg/pkg/analyzer"
	"LSBSteg/pkg/extractor"
	"LSBSteg/pkg/filehandler"
	"LSBSteg/pkg/grid"
	"LSBSteg/pkg/models"
	"LSBSteg/pkg/stego"
)

// Extractor recovers the coarse picture held in a carrier's low bits
type Extractor struct {
	extractor.BaseExtractor
}

// New creates a picture extractor
func New() *Extractor {
	return &Extractor{
		BaseExtractor: extractor.NewBaseExtractor("picture", analyzer.LosslessFormats, "picture"),
	}
}

// Extract implements the DataExtractor interface
func (e *Extractor) Extract(filePath string, options extractor.ExtractionOptions) (*models.ExtractionResult, error) {
	g, err := filehandler.LoadGrid(filePath)
	if err != nil {
		return nil, err
	}
	if options.BaseName == "" {
		options.BaseName = filepath.Base(filePath)
	}
	return e.ExtractFromGrid(g, options)
}

// ExtractFromGrid reveals g and writes the result as a PNG in options.OutputDir
func (e *Extractor) ExtractFromGrid(g *grid.Grid, options extractor.ExtractionOptions) (*models.ExtractionResult, error) {
	if g == nil {
		return nil, errors.New("nil grid provided")
	}

	revealed := stego.Reveal(g)

	outputPath := filepath.Join(options.OutputDir, fmt.Sprintf("%s_revealed.png", baseName(options)))
	if err := filehandler.SavePNG(revealed, outputPath, options.Compression); err != nil {
		return nil, fmt.Errorf("failed to write revealed picture: %w", err)
	}

	return &models.ExtractionResult{
		Success:     true,
		FileType:    "png",
		Extractor:   e.Name(),
		PayloadKind: e.PayloadKind(),
		Width:       revealed.Width(),
		Height:      revealed.Height(),
		Details: map[string]interface{}{
			"bitsPerChannel": 2,
		},
		OutputFiles: []string{outputPath},
		MimeType:    "image/png",
	}, nil
}

func baseName(options extractor.ExtractionOptions) string {
	if options.BaseName == "" {
		return "extracted"
	}
	name := options.BaseName
	return name[:len(name)-len(filepath.Ext(name))]
}
