package sink

import (
	"bytes"
	"encoding/xml"
	"fmt"

	"github.com/matzehuels/flamefold/pkg/layout"
	"github.com/matzehuels/flamefold/pkg/render/styles"
)

const blockInteractionCSS = `
    .frame rect { stroke: rgb(255,255,255); stroke-width: 0.5; }
    .frame:hover rect { stroke: rgb(0,0,0); stroke-width: 1; }
    .frame text { pointer-events: none; }`

// SVGOption configures SVG rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	title     string
	countName string
	palette   styles.Palette
}

// WithTitle sets the heading drawn in the canvas header.
func WithTitle(title string) SVGOption {
	return func(r *svgRenderer) { r.title = title }
}

// WithCountName sets the weight unit shown in hover titles (e.g. "samples",
// "bytes", "ms").
func WithCountName(name string) SVGOption {
	return func(r *svgRenderer) { r.countName = name }
}

// WithPalette sets the block color palette.
func WithPalette(p styles.Palette) SVGOption {
	return func(r *svgRenderer) { r.palette = p }
}

// RenderSVG renders the layout as a standalone SVG document. Blocks are
// emitted in the layout's stored order, so output is byte-identical for
// identical input.
func RenderSVG(l layout.Layout, opts ...SVGOption) []byte {
	r := svgRenderer{
		title:     "Flame Graph",
		countName: "samples",
		palette:   styles.Hot{},
	}
	for _, opt := range opts {
		opt(&r)
	}

	var total float64
	for _, b := range l.Blocks {
		if b.Depth == 0 {
			total += b.Total
		}
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		l.Width, l.Height, l.Width, l.Height)
	fmt.Fprintf(&buf, "  <style>%s\n  </style>\n", blockInteractionCSS)
	fmt.Fprintf(&buf, `  <rect x="0" y="0" width="%.1f" height="%.1f" fill="rgb(250,250,250)"/>`+"\n", l.Width, l.Height)

	if r.title != "" {
		fmt.Fprintf(&buf, `  <text x="%.1f" y="24" text-anchor="middle" font-family="Verdana" font-size="17">%s</text>`+"\n",
			l.Width/2, escapeXML(r.title))
	}

	for _, b := range l.Blocks {
		renderBlock(&buf, &r, b, l.Config, total)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func renderBlock(buf *bytes.Buffer, r *svgRenderer, b layout.Block, cfg layout.Config, total float64) {
	buf.WriteString(`  <g class="frame">`)
	buf.WriteString("\n")

	fmt.Fprintf(buf, `    <title>%s (%s %s, %s)</title>`+"\n",
		escapeXML(b.Name), formatWeight(b.Total), escapeXML(r.countName), formatPercent(b.Total, total))
	fmt.Fprintf(buf, `    <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s" rx="1"/>`+"\n",
		b.X, b.Y, b.W, b.H, r.palette.Color(b.Name))

	if b.FitsText(cfg) {
		if label := b.Label(cfg); label != "" {
			fmt.Fprintf(buf, `    <text x="%.1f" y="%.1f" font-family="Verdana" font-size="%.1f">%s</text>`+"\n",
				b.X+3, b.Y+b.H-4, cfg.FontSize, escapeXML(label))
		}
	}

	buf.WriteString("  </g>\n")
}

// formatWeight prints integral weights without a decimal point.
func formatWeight(w float64) string {
	if w == float64(int64(w)) {
		return fmt.Sprintf("%d", int64(w))
	}
	return fmt.Sprintf("%.2f", w)
}

func formatPercent(part, total float64) string {
	if total <= 0 {
		return "0%"
	}
	return fmt.Sprintf("%.2f%%", 100*part/total)
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
