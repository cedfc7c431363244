package layout

import (
	"github.com/matzehuels/flamefold/pkg/flame"
)

// Layout holds the positioned rectangles for one tree plus the canvas
// dimensions and the configuration that produced them. Blocks are ordered
// pre-order, parents before children, siblings left to right.
type Layout struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Config Config  `json:"-"`
	Blocks []Block `json:"blocks"`
}

// Compute walks the tree and produces the positioned block list.
//
// The horizontal scale is UsableWidth / tree total; each node's width is its
// Total times the scale. Siblings are packed left to right with no gaps and
// a node's children start at the node's own x origin, which guarantees that
// children never extend past their parent. A tree with zero total weight
// produces an empty canvas with no blocks.
//
// Nodes narrower than cfg.MinBlockWidth are omitted together with their
// descendants, but still advance the x cursor so that visible siblings stay
// proportional to weight.
func Compute(t *flame.Tree, cfg Config) Layout {
	cfg = cfg.withDefaults()

	depth := t.Depth()
	l := Layout{
		Width:  cfg.Width,
		Height: cfg.HeaderHeight + float64(depth)*cfg.RowHeight + cfg.FooterHeight,
		Config: cfg,
	}
	if t.Empty() || t.Total() <= 0 {
		return l
	}

	scale := cfg.UsableWidth() / t.Total()
	baseline := l.Height - cfg.FooterHeight // bottom edge of the root row

	x := cfg.MarginX
	for _, root := range t.Roots() {
		l.placeNode(root, x, 0, scale, baseline, cfg)
		x += root.Total * scale
	}
	return l
}

// placeNode positions one node and recurses into its children.
func (l *Layout) placeNode(n *flame.Node, x float64, depth int, scale, baseline float64, cfg Config) {
	w := n.Total * scale
	if w < cfg.MinBlockWidth {
		return
	}

	l.Blocks = append(l.Blocks, Block{
		Name:  n.Frame.Name,
		Meta:  n.Frame.Meta,
		Self:  n.Self,
		Total: n.Total,
		X:     x,
		Y:     baseline - float64(depth+1)*cfg.RowHeight,
		W:     w,
		H:     cfg.RowHeight,
		Depth: depth,
	})

	childX := x
	for _, c := range n.Children() {
		l.placeNode(c, childX, depth+1, scale, baseline, cfg)
		childX += c.Total * scale
	}
}
