package lowbits

import (
	"errors"
	"fmt"
	"time"

	"LSBSteg/pkg/analyzer"
	"LSBSteg/pkg/filehandler"
	"LSBSteg/pkg/grid"
	"LSBSteg/pkg/models"
)

// Name is the registry name of this analyzer
const Name = "lowbits"

// Analyzer looks for a picture or flat colour stored in the 2-bit planes
type Analyzer struct {
	analyzer.BaseAnalyzer
}

// New creates a low-bit plane analyzer
func New() *Analyzer {
	return &Analyzer{
		BaseAnalyzer: analyzer.NewBaseAnalyzer(
			Name,
			"Measures the 2-bit planes of each channel for an embedded picture",
			analyzer.LosslessFormats,
		),
	}
}

// Analyze loads a file and inspects its low bits
func (a *Analyzer) Analyze(filePath string, options analyzer.AnalysisOptions) (*models.AnalysisResult, error) {
	g, err := filehandler.LoadGrid(filePath)
	if err != nil {
		return nil, err
	}

	result, err := a.AnalyzeGrid(g, options)
	if err != nil {
		return nil, err
	}
	result.Filename = filePath
	return result, nil
}

// AnalyzeGrid inspects a decoded grid
func (a *Analyzer) AnalyzeGrid(g *grid.Grid, options analyzer.AnalysisOptions) (*models.AnalysisResult, error) {
	if g == nil {
		return nil, errors.New("nil grid provided")
	}
	start := time.Now()

	stats, err := Collect(g)
	if err != nil {
		return nil, fmt.Errorf("low-bit analysis failed: %w", err)
	}

	result := &models.AnalysisResult{
		FileType:        options.Format,
		Analyzer:        a.Name(),
		PayloadScore:    stats.PayloadScore(),
		Confidence:      stats.Confidence(),
		Findings:        []models.Finding{},
		Recommendations: []string{},
		Details: map[string]interface{}{
			"width":     g.Width(),
			"height":    g.Height(),
			"coherence": stats.Coherence,
			"entropyR":  stats.Entropy[0],
			"entropyG":  stats.Entropy[1],
			"entropyB":  stats.Entropy[2],
		},
		AnalysisTime: start,
	}

	switch {
	case stats.Zeroed:
		result.AddFinding("All payload bits are zero", 0.9,
			"The low two bits of every channel are cleared; the image was quantized and carries no payload")
	case stats.Coherence > 0.9:
		result.AddFinding("Uniform low-bit planes", 0.9,
			fmt.Sprintf("coherence=%.4f: the low bits hold a flat colour", stats.Coherence))
		result.PayloadKind = "picture"
		result.Recommendations = append(result.Recommendations, "Reveal the picture to see the stored colour")
	case result.PayloadScore > 0.3:
		result.AddFinding("Structured low-bit planes", result.PayloadScore,
			fmt.Sprintf("coherence=%.4f (chance is %.4f)", stats.Coherence, chanceCoherence))
		result.PayloadKind = "picture"
		result.Recommendations = append(result.Recommendations, "Reveal the picture held in the low bits")
	}

	if mean := stats.MeanEntropy(); !stats.Zeroed && mean < maxPlaneEntropy*0.5 {
		result.AddFinding("Low entropy payload planes", 0.6,
			fmt.Sprintf("mean entropy=%.4f bits of a possible %.1f", mean, maxPlaneEntropy))
	}

	result.AnalysisDuration = time.Since(start)
	return result, nil
}
