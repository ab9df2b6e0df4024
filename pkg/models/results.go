package models

import (
	"time"
)

// AnalysisResult contains what the analyzers found out about a carrier
type AnalysisResult struct {
	FileType         string                 `json:"fileType"`
	Filename         string                 `json:"filename"`
	Analyzer         string                 `json:"analyzer"`
	PayloadScore     float64                `json:"payloadScore"` // 0.0-1.0 where 1.0 means a payload is almost certainly present
	Confidence       float64                `json:"confidence"`   // 0.0-1.0 confidence in the payload score
	PayloadKind      string                 `json:"payloadKind"`  // "text", "picture" or empty
	Details          map[string]interface{} `json:"details"`
	Findings         []Finding              `json:"findings"`
	Recommendations  []string               `json:"recommendations"`
	AnalysisTime     time.Time              `json:"analysisTime"`
	AnalysisDuration time.Duration          `json:"analysisDuration"`
}

// Finding is a single observation made during analysis
type Finding struct {
	Description string  `json:"description"`
	Confidence  float64 `json:"confidence"` // 0.0-1.0
	Details     string  `json:"details"`
}

// ExtractionResult contains the payload recovered from a carrier
type ExtractionResult struct {
	Success     bool                   `json:"success"`
	FileType    string                 `json:"fileType"`
	Extractor   string                 `json:"extractor"`
	PayloadKind string                 `json:"payloadKind"` // "text" or "picture"
	Text        string                 `json:"text,omitempty"`
	Width       int                    `json:"width,omitempty"`
	Height      int                    `json:"height,omitempty"`
	Details     map[string]interface{} `json:"details"`
	OutputFiles []string               `json:"outputFiles"`
	MimeType    string                 `json:"mimeType"`
}

// DiffReport is the printable summary of comparing two images
type DiffReport struct {
	ImageA      string     `json:"imageA"`
	ImageB      string     `json:"imageB"`
	Comparable  bool       `json:"comparable"`
	Identical   bool       `json:"identical"`
	Differences int        `json:"differences"`
	Box         *BoxRecord `json:"box,omitempty"`
	Highlight   string     `json:"highlight,omitempty"`
}

// BoxRecord is a bounding box in report form; X is the column and Y is the row
type BoxRecord struct {
	MinX   int `json:"minX"`
	MinY   int `json:"minY"`
	MaxX   int `json:"maxX"`
	MaxY   int `json:"maxY"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// AddFinding adds a finding to the analysis result
func (r *AnalysisResult) AddFinding(description string, confidence float64, details string) {
	r.Findings = append(r.Findings, Finding{
		Description: description,
		Confidence:  confidence,
		Details:     details,
	})
}

// Strongest returns the finding with the highest confidence, or false when there are none
func (r *AnalysisResult) Strongest() (Finding, bool) {
	if len(r.Findings) == 0 {
		return Finding{}, false
	}

	best := r.Findings[0]
	for _, f := range r.Findings[1:] {
		if f.Confidence > best.Confidence {
			best = f
		}
	}
	return best, true
}
