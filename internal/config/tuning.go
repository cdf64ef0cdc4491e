package config

import (
	"encoding/json"
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"github.com/wardmap-data/influence.map/internal/influence"
)

// TuningConfig is the JSON overlay for influence pipeline options. All
// fields are pointers so a partial file only overrides what it names;
// omitted fields keep the package defaults.
type TuningConfig struct {
	CellSize         *float64 `json:"cell_size,omitempty"`
	ContourThreshold *float64 `json:"contour_threshold,omitempty"`
	BoundaryPadding  *float64 `json:"boundary_padding,omitempty"`
	DebugMode        *bool    `json:"debug_mode,omitempty"`

	// FactionColors maps faction ids to explicit "#rrggbb" display colours,
	// overriding the hash-derived defaults.
	FactionColors map[string]string `json:"faction_colors,omitempty"`
}

// EmptyTuningConfig returns a TuningConfig with all fields unset.
// Use LoadTuningConfig to load actual values from a file.
func EmptyTuningConfig() *TuningConfig {
	return &TuningConfig{}
}

// LoadTuningConfig loads a TuningConfig from a JSON file. The file must
// have a .json extension and stay under the max file size. Fields omitted
// from the file retain their defaults, so partial configs are safe.
func LoadTuningConfig(path string) (*TuningConfig, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	// Check file size for safety (max 1MB)
	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	const maxFileSize = 1 * 1024 * 1024
	if fileInfo.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", fileInfo.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := EmptyTuningConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks that every set field carries a usable value. Range
// checks mirror influence.Options.Validate so a bad file fails at load
// time rather than at the first compute.
func (c *TuningConfig) Validate() error {
	if c.CellSize != nil && *c.CellSize <= 0 {
		return fmt.Errorf("cell_size must be positive, got %f", *c.CellSize)
	}
	if c.ContourThreshold != nil && (*c.ContourThreshold <= 0 || *c.ContourThreshold >= 1) {
		return fmt.Errorf("contour_threshold must lie in (0,1), got %f", *c.ContourThreshold)
	}
	if c.BoundaryPadding != nil && *c.BoundaryPadding < 0 {
		return fmt.Errorf("boundary_padding must be non-negative, got %f", *c.BoundaryPadding)
	}
	for faction, hex := range c.FactionColors {
		if _, err := ParseHexColor(hex); err != nil {
			return fmt.Errorf("faction_colors[%s]: %w", faction, err)
		}
	}
	return nil
}

// Apply overlays every set field onto opts and returns the result.
func (c *TuningConfig) Apply(opts influence.Options) influence.Options {
	if c.CellSize != nil {
		opts.CellSize = *c.CellSize
	}
	if c.ContourThreshold != nil {
		opts.ContourThreshold = *c.ContourThreshold
	}
	if c.BoundaryPadding != nil {
		opts.BoundaryPadding = *c.BoundaryPadding
	}
	if c.DebugMode != nil {
		opts.DebugMode = *c.DebugMode
	}
	if len(c.FactionColors) > 0 {
		if opts.ColorOverrides == nil {
			opts.ColorOverrides = make(map[string]color.RGBA, len(c.FactionColors))
		}
		for faction, hex := range c.FactionColors {
			// Validated at load time; a malformed value here means the
			// config was built by hand, so skip it rather than panic.
			if rgba, err := ParseHexColor(hex); err == nil {
				opts.ColorOverrides[faction] = rgba
			}
		}
	}
	return opts
}

// ParseHexColor parses "#rrggbb" (case-insensitive) into an opaque RGBA.
func ParseHexColor(s string) (color.RGBA, error) {
	if len(s) != 7 || s[0] != '#' {
		return color.RGBA{}, fmt.Errorf("colour must look like #rrggbb, got %q", s)
	}
	var r, g, b uint8
	if _, err := fmt.Sscanf(s[1:], "%02x%02x%02x", &r, &g, &b); err != nil {
		return color.RGBA{}, fmt.Errorf("colour must look like #rrggbb, got %q: %w", s, err)
	}
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}
