package analyzer

import (
	"LSBSteg/pkg/grid"
	"LSBSteg/pkg/models"
)

/*
analyzer.go contains the interface and base implementation for carrier analyzers.
FileAnalyzer: loads a file and inspects it for a 2-bit payload.
ImageAnalyzer: extends FileAnalyzer with a method that works on an already decoded grid.
BaseAnalyzer: name, description and supported formats shared by every analyzer.
*/

// AnalysisOptions holds configuration options for analysis
type AnalysisOptions struct {
	Verbose bool
	Format  string
}

// FileAnalyzer is the interface that all carrier analyzers must implement
type FileAnalyzer interface {
	// CanAnalyze checks if this analyzer can handle the given format
	CanAnalyze(format string) bool

	// Analyze loads a file and inspects it
	Analyze(filePath string, options AnalysisOptions) (*models.AnalysisResult, error)

	// Name returns the name of the analyzer
	Name() string

	// Description returns a detailed description of what the analyzer does
	Description() string

	// SupportedFormats returns a list of file formats this analyzer supports
	SupportedFormats() []string
}

// ImageAnalyzer is an analyzer that can work on a decoded grid
type ImageAnalyzer interface {
	FileAnalyzer

	// AnalyzeGrid inspects a decoded grid directly
	AnalyzeGrid(g *grid.Grid, options AnalysisOptions) (*models.AnalysisResult, error)
}

// BaseAnalyzer provides common functionality for analyzers
type BaseAnalyzer struct {
	name        string
	description string
	formats     []string
}

// NewBaseAnalyzer creates a new BaseAnalyzer
func NewBaseAnalyzer(name, description string, formats []string) BaseAnalyzer {
	return BaseAnalyzer{
		name:        name,
		description: description,
		formats:     formats,
	}
}

// Name returns the analyzer name
func (b *BaseAnalyzer) Name() string {
	return b.name
}

// Description returns the analyzer description
func (b *BaseAnalyzer) Description() string {
	return b.description
}

// SupportedFormats returns the supported formats
func (b *BaseAnalyzer) SupportedFormats() []string {
	return b.formats
}

// CanAnalyze checks if the analyzer supports the given format
func (b *BaseAnalyzer) CanAnalyze(format string) bool {
	for _, f := range b.formats {
		if f == format {
			return true
		}
	}
	return false
}

// LosslessFormats are the formats whose pixels survive a round trip, so a payload can live in them
var LosslessFormats = []string{"png", "bmp", "tiff", "gif"}
