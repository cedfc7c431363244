package layout

// Default configuration values. Sizes are in user units (pixels in SVG).
const (
	DefaultWidth        = 1200.0
	DefaultRowHeight    = 16.0
	DefaultMarginX      = 10.0
	DefaultHeaderHeight = 40.0
	DefaultFooterHeight = 30.0

	// DefaultMinBlockWidth prunes rectangles below half a pixel: they are
	// not independently visible and only inflate the output.
	DefaultMinBlockWidth = 0.5

	// DefaultMinTextRatio is the minimum block width, as a fraction of the
	// canvas width, for a label to be drawn at all.
	DefaultMinTextRatio = 0.01

	DefaultFontSize = 12.0

	// DefaultCharWidthFactor is the assumed average glyph width as a
	// fraction of the font size, used to estimate how many characters fit.
	DefaultCharWidthFactor = 0.59
)

// Config controls the geometry of a computed layout. Size fields left at
// zero are replaced by the package defaults when passed to Compute, with two
// exceptions where zero is meaningful: MarginX (no margins) and
// MinBlockWidth (no pruning).
type Config struct {
	// Width is the total canvas width including side margins.
	Width float64
	// RowHeight is the height of one call level.
	RowHeight float64
	// MarginX is the fixed margin on each side of the canvas.
	MarginX float64
	// HeaderHeight is vertical space reserved above the top row
	// (title, controls).
	HeaderHeight float64
	// FooterHeight is vertical space reserved below the root row.
	FooterHeight float64
	// MinBlockWidth is the pruning threshold: blocks narrower than this
	// are dropped along with their subtrees.
	MinBlockWidth float64
	// MinTextRatio is the minimum block width relative to Width for a
	// label to be drawn.
	MinTextRatio float64
	// FontSize is the label font size.
	FontSize float64
	// CharWidthFactor estimates glyph width as a fraction of FontSize.
	CharWidthFactor float64
}

// DefaultConfig returns the default layout configuration.
func DefaultConfig() Config {
	return Config{
		Width:           DefaultWidth,
		RowHeight:       DefaultRowHeight,
		MarginX:         DefaultMarginX,
		HeaderHeight:    DefaultHeaderHeight,
		FooterHeight:    DefaultFooterHeight,
		MinBlockWidth:   DefaultMinBlockWidth,
		MinTextRatio:    DefaultMinTextRatio,
		FontSize:        DefaultFontSize,
		CharWidthFactor: DefaultCharWidthFactor,
	}
}

// withDefaults fills zero-valued fields with package defaults.
// MinBlockWidth is the one field where zero is meaningful (no pruning),
// so it is kept as given.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.Width <= 0 {
		c.Width = d.Width
	}
	if c.RowHeight <= 0 {
		c.RowHeight = d.RowHeight
	}
	if c.MarginX < 0 {
		c.MarginX = d.MarginX
	}
	if c.HeaderHeight <= 0 {
		c.HeaderHeight = d.HeaderHeight
	}
	if c.FooterHeight <= 0 {
		c.FooterHeight = d.FooterHeight
	}
	if c.MinTextRatio <= 0 {
		c.MinTextRatio = d.MinTextRatio
	}
	if c.FontSize <= 0 {
		c.FontSize = d.FontSize
	}
	if c.CharWidthFactor <= 0 {
		c.CharWidthFactor = d.CharWidthFactor
	}
	return c
}

// UsableWidth returns the horizontal space available to blocks.
func (c Config) UsableWidth() float64 {
	return c.Width - 2*c.MarginX
}
