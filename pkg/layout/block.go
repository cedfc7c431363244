package layout

import (
	"math"

	"github.com/matzehuels/flamefold/pkg/flame"
)

// Block is one positioned rectangle of a computed layout. Coordinates are in
// user units (pixels in SVG) with the origin at the top-left of the canvas;
// Y is the top edge of the rectangle.
type Block struct {
	Name  string       `json:"name"`
	Meta  []flame.Attr `json:"meta,omitempty"`
	Self  float64      `json:"self"`
	Total float64      `json:"total"`

	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	W     float64 `json:"w"`
	H     float64 `json:"h"`
	Depth int     `json:"depth"`
}

// Right returns the x coordinate of the block's right edge.
func (b Block) Right() float64 { return b.X + b.W }

// Bottom returns the y coordinate of the block's bottom edge.
func (b Block) Bottom() float64 { return b.Y + b.H }

// CenterX returns the horizontal center of the block.
func (b Block) CenterX() float64 { return b.X + b.W/2 }

// FitsText reports whether the block is wide enough for a label under the
// given configuration. The decision depends only on the block width relative
// to the canvas width.
func (b Block) FitsText(cfg Config) bool {
	return b.W >= cfg.MinTextRatio*cfg.Width
}

// Label returns the block's display label truncated to the number of
// characters that fit: floor(W / (FontSize * CharWidthFactor)). Labels that
// do not fit at all collapse to the empty string; truncated labels keep a
// ".." suffix.
func (b Block) Label(cfg Config) string {
	maxChars := int(math.Floor(b.W / (cfg.FontSize * cfg.CharWidthFactor)))
	if maxChars < 3 {
		return ""
	}
	// Truncate on rune boundaries so multi-byte names are never cut mid-rune.
	runes := []rune(b.Name)
	if len(runes) <= maxChars {
		return b.Name
	}
	return string(runes[:maxChars-2]) + ".."
}
