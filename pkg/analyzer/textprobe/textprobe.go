package textprobe

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"LSBSteg/pkg/analyzer"
	"LSBSteg/pkg/filehandler"
	"LSBSteg/pkg/grid"
	"LSBSteg/pkg/models"
	"LSBSteg/pkg/stego"
)

// Name is the registry name of this analyzer
const Name = "textprobe"

// MinMessageLength is the shortest message that scores above zero
const MinMessageLength = 4

// FullScoreLength is the message length from which a clean message scores 1.
// Shorter runs are scaled down since noise ends in a terminator after a few
// letters far more often than after many.
const FullScoreLength = 8

// Analyzer reads the carrier as a hidden text message and scores how clean it is
type Analyzer struct {
	analyzer.BaseAnalyzer
}

// New creates a text message probe
func New() *Analyzer {
	return &Analyzer{
		BaseAnalyzer: analyzer.NewBaseAnalyzer(
			Name,
			"Reads a terminated A-Z message from the 2-bit planes",
			analyzer.LosslessFormats,
		),
	}
}

// Analyze loads a file and probes it for a message
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

// AnalyzeGrid probes a decoded grid for a message
func (a *Analyzer) AnalyzeGrid(g *grid.Grid, options analyzer.AnalysisOptions) (*models.AnalysisResult, error) {
	if g == nil {
		return nil, errors.New("nil grid provided")
	}
	start := time.Now()

	scan := stego.ScanText(g)
	score := Score(scan)

	result := &models.AnalysisResult{
		FileType:        options.Format,
		Analyzer:        a.Name(),
		PayloadScore:    score,
		Confidence:      confidence(scan),
		Findings:        []models.Finding{},
		Recommendations: []string{},
		Details: map[string]interface{}{
			"codes":      scan.Codes,
			"skipped":    scan.Skipped,
			"terminated": scan.Terminated,
		},
		AnalysisTime: start,
	}

	if score > 0.5 {
		result.PayloadKind = "text"
		result.AddFinding("Terminated text message", score,
			fmt.Sprintf("%d characters: %q", len(scan.Text), preview(scan.Text, 40)))
		result.Recommendations = append(result.Recommendations, "Run reveal-text to read the full message")
	} else if options.Verbose && scan.Codes > 0 {
		result.AddFinding("No clean message", 0.2,
			fmt.Sprintf("%d of %d values were not letters", scan.Skipped, scan.Codes))
	}

	result.AnalysisDuration = time.Since(start)
	return result, nil
}

// Score rates a scan between 0 and 1. A real message is terminated, every
// value before the terminator is a letter or space, and it is long enough
// not to be chance.
func Score(scan stego.TextScan) float64 {
	if !scan.Terminated || scan.Codes < MinMessageLength {
		return 0
	}

	clean := float64(scan.Codes-scan.Skipped) / float64(scan.Codes)
	if scan.Skipped > 0 {
		// noise decodes to letters at roughly 27/64 odds, so a single bad value is damning
		clean *= 0.5
	}
	return clean * math.Min(1, float64(scan.Codes)/FullScoreLength)
}

func confidence(scan stego.TextScan) float64 {
	if scan.Codes == 0 {
		return 0
	}
	// longer clean runs are less likely to be chance
	c := float64(scan.Codes-scan.Skipped) / 10.0
	if c > 1 {
		c = 1
	}
	return c
}

func preview(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return strings.TrimSpace(s[:n-3]) + "..."
}
