package extractor

import (
	"image/png"

	"LSBSteg/pkg/grid"
	"LSBSteg/pkg/models"
)

// ExtractionOptions contains configuration for extraction process
type ExtractionOptions struct {
	OutputDir   string
	BaseName    string // prefix for output files, usually the carrier's file name
	Compression png.CompressionLevel
	Verbose     bool
}

// DataExtractor is the interface that all extractors must implement
type DataExtractor interface {
	// CanExtract checks if this extractor can handle the given format
	CanExtract(format string) bool

	// Extract recovers the payload of a carrier file
	Extract(filePath string, options ExtractionOptions) (*models.ExtractionResult, error)

	// Name returns the name of the extractor
	Name() string

	// SupportedFormats returns formats this extractor supports
	SupportedFormats() []string

	// PayloadKind returns the kind of payload this extractor recovers
	PayloadKind() string
}

// GridExtractor is an extractor that can work on a decoded grid
type GridExtractor interface {
	DataExtractor

	// ExtractFromGrid recovers the payload of a decoded grid
	ExtractFromGrid(g *grid.Grid, options ExtractionOptions) (*models.ExtractionResult, error)
}

// BaseExtractor provides common functionality for extractors
type BaseExtractor struct {
	name    string
	formats []string
	kind    string
}

// NewBaseExtractor creates a new BaseExtractor
func NewBaseExtractor(name string, formats []string, kind string) BaseExtractor {
	return BaseExtractor{
		name:    name,
		formats: formats,
		kind:    kind,
	}
}

// Name returns the extractor name
func (b *BaseExtractor) Name() string {
	return b.name
}

// SupportedFormats returns the supported formats
func (b *BaseExtractor) SupportedFormats() []string {
	return b.formats
}

// PayloadKind returns the payload kind
func (b *BaseExtractor) PayloadKind() string {
	return b.kind
}

// CanExtract checks if the extractor supports the given format
func (b *BaseExtractor) CanExtract(format string) bool {
	for _, f := range b.formats {
		if f == format {
			return true
		}
	}
	return false
}
