package message

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"LSBSteg/pkg/analyzer"
	"LSBSteg/pkg/extractor"
	"LSBSteg/pkg/filehandler"
	"LSBSteg/pkg/grid"
	"LSBSteg/pkg/models"
	"LSBSteg/pkg/stego"
)

// Extractor recovers a hidden text message and saves it as a text file
type Extractor struct {
	extractor.BaseExtractor
}

// New creates a text message extractor
func New() *Extractor {
	return &Extractor{
		BaseExtractor: extractor.NewBaseExtractor("message", analyzer.LosslessFormats, "text"),
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

// ExtractFromGrid reads the message in g. Nothing is written when the grid holds no message.
func (e *Extractor) ExtractFromGrid(g *grid.Grid, options extractor.ExtractionOptions) (*models.ExtractionResult, error) {
	if g == nil {
		return nil, errors.New("nil grid provided")
	}

	scan := stego.ScanText(g)
	if scan.Text == "" {
		return nil, errors.New("no message found")
	}

	name := strings.TrimSuffix(options.BaseName, filepath.Ext(options.BaseName))
	if name == "" {
		name = "extracted"
	}
	outputPath := filepath.Join(options.OutputDir, name+"_message.txt")
	if err := filehandler.SaveFile([]byte(scan.Text+"\n"), outputPath); err != nil {
		return nil, fmt.Errorf("failed to write message: %w", err)
	}

	return &models.ExtractionResult{
		Success:     scan.Terminated && scan.Skipped == 0,
		FileType:    "txt",
		Extractor:   e.Name(),
		PayloadKind: e.PayloadKind(),
		Text:        scan.Text,
		Details: map[string]interface{}{
			"terminated": scan.Terminated,
			"skipped":    scan.Skipped,
		},
		OutputFiles: []string{outputPath},
		MimeType:    "text/plain",
	}, nil
}
