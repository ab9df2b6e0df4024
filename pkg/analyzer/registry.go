package analyzer

import (
	"sort"
	"sync"
)

// Registry is a container for all available analyzers
type Registry struct {
	analyzers map[string][]FileAnalyzer
	mu        sync.RWMutex
}

// NewRegistry creates a new analyzer registry
func NewRegistry() *Registry {
	return &Registry{
		analyzers: make(map[string][]FileAnalyzer),
	}
}

// Register adds an analyzer to the registry under each format it supports
func (r *Registry) Register(analyzer FileAnalyzer) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, format := range analyzer.SupportedFormats() {
		r.analyzers[format] = append(r.analyzers[format], analyzer)
	}
}

// GetAnalyzersForFormat returns all analyzers that support the given format
func (r *Registry) GetAnalyzersForFormat(format string) []FileAnalyzer {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.analyzers[format]
}

// GetSupportedFormats returns every format with at least one analyzer, sorted
func (r *Registry) GetSupportedFormats() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	formats := make([]string, 0, len(r.analyzers))
	for format := range r.analyzers {
		formats = append(formats, format)
	}
	sort.Strings(formats)

	return formats
}

// Filter returns a registry holding only the analyzers whose names are listed.
// An empty list keeps everything.
func (r *Registry) Filter(names []string) *Registry {
	if len(names) == 0 {
		return r
	}

	keep := make(map[string]bool, len(names))
	for _, n := range names {
		keep[n] = true
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	filtered := NewRegistry()
	for format, list := range r.analyzers {
		for _, a := range list {
			if keep[a.Name()] {
				filtered.analyzers[format] = append(filtered.analyzers[format], a)
			}
		}
	}
	return filtered
}
