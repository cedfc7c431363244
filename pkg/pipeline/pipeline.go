// Package pipeline provides the core decode → layout → render pipeline.
//
// This package implements the staged processing used by both the CLI and
// the HTTP server: folded-stacks text is decoded into a weighted tree, the
// tree is converted to positioned geometry, and the geometry is rendered to
// one or more output formats. Centralizing the stages keeps behavior
// consistent across entry points and gives all of them the same caching.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Title:   "CPU profile",
//	    Formats: []string{"svg"},
//	}
//	result, err := runner.Execute(ctx, input, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
//
// Stages can also run individually via Runner.Decode, Runner.ComputeLayout,
// and Runner.Render.
package pipeline

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/flamefold/pkg/errors"
	"github.com/matzehuels/flamefold/pkg/flame"
	"github.com/matzehuels/flamefold/pkg/layout"
	"github.com/matzehuels/flamefold/pkg/render/styles"
)

// =============================================================================
// Defaults - Single Source of Truth for CLI and Server
// =============================================================================

const (
	// DefaultCountName is the weight unit shown in hover titles.
	DefaultCountName = "samples"

	// DefaultTitle is the heading drawn in the canvas header.
	DefaultTitle = "Flame Graph"

	// DefaultCacheTTL is how long cached artifacts stay valid. Artifacts
	// are pure functions of their inputs, so the TTL only bounds cache
	// growth.
	DefaultCacheTTL = 24 * time.Hour

	// DefaultPNGScale is the raster resolution multiplier for PNG output.
	DefaultPNGScale = 2.0
)

// DefaultPalette is the default block color palette.
const DefaultPalette = styles.PaletteHot

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatJSON: true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Decode options
	Separator string `json:"separator,omitempty"`
	Reversed  bool   `json:"reversed,omitempty"`

	// Layout options
	Width     float64 `json:"width,omitempty"`
	RowHeight float64 `json:"row_height,omitempty"`
	MinWidth  float64 `json:"min_width,omitempty"`

	// Render options
	Formats   []string `json:"formats,omitempty"`
	Title     string   `json:"title,omitempty"`
	Palette   string   `json:"palette,omitempty"`
	CountName string   `json:"count_name,omitempty"`
	PNGScale  float64  `json:"png_scale,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Tree is the decoded call-tree.
	Tree *flame.Tree

	// TreeHash is the content hash of the serialized tree.
	TreeHash string

	// Layout contains the positioned geometry.
	Layout layout.Layout

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	NodeCount  int
	Depth      int
	Total      float64
	DecodeTime time.Duration
	LayoutTime time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	TreeHit   bool // Whether the decoded tree came from cache
	LayoutHit bool // Whether the layout came from cache
	RenderHit bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: svg, png, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidatePalette checks that a palette identifier is valid.
func ValidatePalette(palette string) error {
	if !styles.Valid(palette) {
		return errors.New(errors.ErrCodeInvalidPalette, "invalid palette: %q (must be one of: hot, cool, gray)", palette)
	}
	return nil
}

// ValidateAndSetDefaults checks all fields and applies defaults.
// This method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Separator == "" {
		o.Separator = ";"
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if o.Palette == "" {
		o.Palette = DefaultPalette
	}
	if err := ValidatePalette(o.Palette); err != nil {
		return err
	}
	if o.Title == "" {
		o.Title = DefaultTitle
	}
	if o.CountName == "" {
		o.CountName = DefaultCountName
	}
	if o.PNGScale <= 0 {
		o.PNGScale = DefaultPNGScale
	}
	if o.Logger == nil {
		o.Logger = log.Default()
	}
	o.validated = true
	return nil
}

// layoutConfig maps pipeline options onto a layout configuration.
// Zero-valued fields fall through to the layout package defaults.
func (o *Options) layoutConfig() layout.Config {
	cfg := layout.DefaultConfig()
	if o.Width > 0 {
		cfg.Width = o.Width
	}
	if o.RowHeight > 0 {
		cfg.RowHeight = o.RowHeight
	}
	if o.MinWidth > 0 {
		cfg.MinBlockWidth = o.MinWidth
	}
	return cfg
}

// decodeKeyParts returns the option fields that affect the decode stage.
func (o *Options) decodeKeyParts() any {
	return map[string]any{"separator": o.Separator, "reversed": o.Reversed}
}

// layoutKeyParts returns the option fields that affect the layout stage.
func (o *Options) layoutKeyParts() any {
	return o.layoutConfig()
}

// renderKeyParts returns the option fields that affect one rendered format.
func (o *Options) renderKeyParts(format string) any {
	return map[string]any{
		"title":   o.Title,
		"palette": o.Palette,
		"count":   o.CountName,
		"scale":   o.PNGScale,
		"format":  format,
	}
}
