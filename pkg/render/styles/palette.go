// Package styles provides deterministic color palettes for flame blocks.
//
// Colors are derived from a hash of the frame name, so the same function
// keeps its color across re-renders, zooms, and different profiles. This is
// a deliberate departure from the classic flamegraph behavior of randomized
// hues: determinism is part of the rendering contract.
package styles

import (
	"fmt"
	"hash/fnv"
)

// Palette maps a frame name to a fill color.
type Palette interface {
	// Color returns a CSS color for the given frame name.
	Color(name string) string
	// Name returns the palette identifier used in configs and flags.
	Name() string
}

// Palette identifiers.
const (
	PaletteHot  = "hot"
	PaletteCool = "cool"
	PaletteGray = "gray"
)

// ByName returns the palette for the given identifier.
// Unknown identifiers fall back to the hot palette.
func ByName(name string) Palette {
	switch name {
	case PaletteCool:
		return Cool{}
	case PaletteGray:
		return Gray{}
	default:
		return Hot{}
	}
}

// Valid reports whether name identifies a known palette.
func Valid(name string) bool {
	switch name {
	case PaletteHot, PaletteCool, PaletteGray:
		return true
	}
	return false
}

// hashUnit maps a name to two stable values in [0, 1).
func hashUnit(name string) (float64, float64) {
	h := fnv.New32a()
	h.Write([]byte(name))
	sum := h.Sum32()
	return float64(sum&0xffff) / 0x10000, float64(sum>>16) / 0x10000
}

// Hot is the classic warm flamegraph palette: reds through yellows.
type Hot struct{}

// Name returns "hot".
func (Hot) Name() string { return PaletteHot }

// Color returns a warm color derived from the frame name.
func (Hot) Color(name string) string {
	v1, v2 := hashUnit(name)
	r := 205 + int(50*v2)
	g := int(230 * v1)
	b := int(55 * v2)
	return fmt.Sprintf("rgb(%d,%d,%d)", r, g, b)
}

// Cool is a blue/green palette commonly used for off-CPU or memory graphs.
type Cool struct{}

// Name returns "cool".
func (Cool) Name() string { return PaletteCool }

// Color returns a cool color derived from the frame name.
func (Cool) Color(name string) string {
	v1, v2 := hashUnit(name)
	r := int(60 * v2)
	g := 120 + int(100*v1)
	b := 190 + int(55*v2)
	return fmt.Sprintf("rgb(%d,%d,%d)", r, g, b)
}

// Gray is a monochrome palette for print output.
type Gray struct{}

// Name returns "gray".
func (Gray) Name() string { return PaletteGray }

// Color returns a gray shade derived from the frame name.
func (Gray) Color(name string) string {
	v1, _ := hashUnit(name)
	v := 140 + int(80*v1)
	return fmt.Sprintf("rgb(%d,%d,%d)", v, v, v)
}
