package profile

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/matzehuels/flamefold/pkg/layout"
)

// =============================================================================
// Layout - Positioned Geometry Serialization
// =============================================================================

// Layout is the serialization format for computed layouts. Blocks keep the
// layout engine's emission order (pre-order, siblings left to right).
type Layout struct {
	Width  float64        `json:"width"`
	Height float64        `json:"height"`
	Blocks []layout.Block `json:"blocks"`

	// Text policy, carried so a renderer reading the artifact applies the
	// same label decisions that the layout was computed with.
	MinTextRatio    float64 `json:"min_text_ratio,omitempty"`
	FontSize        float64 `json:"font_size,omitempty"`
	CharWidthFactor float64 `json:"char_width_factor,omitempty"`
}

// FromLayout converts a computed layout to its serialization format.
func FromLayout(l layout.Layout) Layout {
	return Layout{
		Width:           l.Width,
		Height:          l.Height,
		Blocks:          l.Blocks,
		MinTextRatio:    l.Config.MinTextRatio,
		FontSize:        l.Config.FontSize,
		CharWidthFactor: l.Config.CharWidthFactor,
	}
}

// Layout reconstructs the in-memory layout.
func (l Layout) Layout() layout.Layout {
	return layout.Layout{
		Width:  l.Width,
		Height: l.Height,
		Blocks: l.Blocks,
		Config: layout.Config{
			Width:           l.Width,
			MinTextRatio:    l.MinTextRatio,
			FontSize:        l.FontSize,
			CharWidthFactor: l.CharWidthFactor,
		},
	}
}

// =============================================================================
// Layout Serialization API
// =============================================================================

// MarshalLayout serializes a layout to pretty-printed JSON bytes.
func MarshalLayout(l layout.Layout) ([]byte, error) {
	return json.MarshalIndent(FromLayout(l), "", "  ")
}

// UnmarshalLayout deserializes JSON bytes into a layout.
// Returns an error when the data does not describe a layout.
func UnmarshalLayout(data []byte) (layout.Layout, error) {
	var l Layout
	if err := json.Unmarshal(data, &l); err != nil {
		return layout.Layout{}, fmt.Errorf("unmarshal layout: %w", err)
	}
	if l.Width <= 0 || l.Height <= 0 {
		return layout.Layout{}, fmt.Errorf("layout must have positive dimensions")
	}
	return l.Layout(), nil
}

// WriteLayoutFile writes a layout to a JSON file.
func WriteLayoutFile(l layout.Layout, path string) error {
	data, err := MarshalLayout(l)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ReadLayoutFile reads a layout from a JSON file.
func ReadLayoutFile(path string) (layout.Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return layout.Layout{}, fmt.Errorf("read %s: %w", path, err)
	}
	return UnmarshalLayout(data)
}
