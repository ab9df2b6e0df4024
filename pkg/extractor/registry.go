package extractor

import (
	"sort"
	"sync"
)

// Registry is a container for all available extractors
type Registry struct {
	extractors map[string][]DataExtractor
	mu         sync.RWMutex
}

// NewRegistry creates a new extractor registry
func NewRegistry() *Registry {
	return &Registry{
		extractors: make(map[string][]DataExtractor),
	}
}

// Register adds an extractor to the registry
func (r *Registry) Register(extractor DataExtractor) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, format := range extractor.SupportedFormats() {
		r.extractors[format] = append(r.extractors[format], extractor)
	}
}

// GetExtractorsForFormat returns all extractors that support the given format
func (r *Registry) GetExtractorsForFormat(format string) []DataExtractor {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.extractors[format]
}

// GetExtractorForKind finds the extractor for a payload kind in the given format
func (r *Registry) GetExtractorForKind(kind string, format string) DataExtractor {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, e := range r.extractors[format] {
		if e.PayloadKind() == kind {
			return e
		}
	}

	return nil
}

// GetSupportedFormats returns all formats that have registered extractors, sorted
func (r *Registry) GetSupportedFormats() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	formats := make([]string, 0, len(r.extractors))
	for format := range r.extractors {
		formats = append(formats, format)
	}
	sort.Strings(formats)

	return formats
}
