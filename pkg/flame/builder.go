package flame

// Def is a declarative description of one node in a hand-authored tree.
// Self is the weight attributed to the node itself; the node's Total is
// computed as Self plus the Totals of its children.
type Def struct {
	Name     string
	Meta     []Attr
	Self     float64
	Children []Def
}

// Build converts nested node descriptions into a Tree in a single bottom-up
// pass, without going through per-stack insertion. Each top-level Def becomes
// an independent root; the tree's total is the sum of the root totals.
//
// Unlike Insert, Build performs no merging: if the caller supplies two
// sibling Defs with the same name, both are kept as distinct children. The
// input is taken as the literal final shape of the tree. This divergence
// from the trie's automatic merge-by-name is deliberate - a declarative
// description that names the same sibling twice means two nodes.
//
// For inputs without duplicate-named siblings, Build and an equivalent
// sequence of Insert calls produce trees with identical totals and depth.
func Build(defs ...Def) *Tree {
	t := &Tree{}
	for _, d := range defs {
		root := buildNode(d)
		t.roots = append(t.roots, root)
		t.total += root.Total
	}
	return t
}

func buildNode(d Def) *Node {
	n := &Node{
		Frame: Frame{Name: d.Name, Meta: d.Meta},
		Self:  d.Self,
		Total: d.Self,
	}
	for _, c := range d.Children {
		child := buildNode(c)
		n.children = append(n.children, child)
		n.Total += child.Total
	}
	return n
}
