package config

import (
	"fmt"
	"image/png"
	"strings"

	"github.com/BurntSushi/toml"

	"LSBSteg/pkg/filehandler"
	"LSBSteg/pkg/grid"
)

// Config holds the settings shared by every command
type Config struct {
	OutputDir      string
	Verbose        bool
	HighlightColor grid.Pixel
	Compression    png.CompressionLevel
	FitFilter      string
	Analyzers      []string // enabled analyzer names, empty means all
}

type fileConfig struct {
	OutDir         string   `toml:"outdir"`
	Verbose        bool     `toml:"verbose"`
	HighlightColor string   `toml:"highlight_color"`
	PNGCompression string   `toml:"png_compression"`
	FitFilter      string   `toml:"fit_filter"`
	Analyzers      []string `toml:"analyzers"`
}

// Default returns the configuration used when no file is given
func Default() Config {
	return Config{
		OutputDir:      "lsbsteg_output",
		HighlightColor: grid.Pixel{R: 0xff},
		Compression:    png.DefaultCompression,
		FitFilter:      "nearest",
	}
}

// Load reads a TOML file on top of the defaults. Keys missing from the file keep their default.
func Load(path string) (Config, error) {
	cfg := Default()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("load config: unknown key %q", undecoded[0].String())
	}

	if meta.IsDefined("outdir") {
		dir := strings.TrimSpace(raw.OutDir)
		if dir == "" {
			return Config{}, fmt.Errorf("outdir must not be empty")
		}
		cfg.OutputDir = dir
	}

	if meta.IsDefined("verbose") {
		cfg.Verbose = raw.Verbose
	}

	if meta.IsDefined("highlight_color") {
		c, err := ParseColor(raw.HighlightColor)
		if err != nil {
			return Config{}, fmt.Errorf("parse highlight_color: %w", err)
		}
		cfg.HighlightColor = c
	}

	if meta.IsDefined("png_compression") {
		level, err := ParseCompression(raw.PNGCompression)
		if err != nil {
			return Config{}, fmt.Errorf("parse png_compression: %w", err)
		}
		cfg.Compression = level
	}

	if meta.IsDefined("fit_filter") {
		if _, err := filehandler.ParseInterpolation(raw.FitFilter); err != nil {
			return Config{}, fmt.Errorf("parse fit_filter: %w", err)
		}
		cfg.FitFilter = strings.ToLower(strings.TrimSpace(raw.FitFilter))
	}

	if meta.IsDefined("analyzers") {
		cfg.Analyzers = normalizeNames(raw.Analyzers)
	}

	return cfg, nil
}

// ParseColor parses a colour written as RRGGBB, with or without a leading '#'
func ParseColor(s string) (grid.Pixel, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return grid.Pixel{}, fmt.Errorf("colour %q must have 6 hex digits", s)
	}

	var r, g, b uint8
	if _, err := fmt.Sscanf(s, "%02x%02x%02x", &r, &g, &b); err != nil {
		return grid.Pixel{}, fmt.Errorf("colour %q is not hex: %w", s, err)
	}
	return grid.Pixel{R: r, G: g, B: b}, nil
}

// ParseCompression maps a level name to a PNG compression level
func ParseCompression(s string) (png.CompressionLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "default":
		return png.DefaultCompression, nil
	case "none":
		return png.NoCompression, nil
	case "fast":
		return png.BestSpeed, nil
	case "best":
		return png.BestCompression, nil
	default:
		return png.DefaultCompression, fmt.Errorf("unknown compression level: %s", s)
	}
}

func normalizeNames(names []string) []string {
	out := make([]string, 0, len(names))
	seen := make(map[string]struct{}, len(names))
	for _, n := range names {
		n = strings.ToLower(strings.TrimSpace(n))
		if n == "" {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}
