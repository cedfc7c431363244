package flame

// Node is a single vertex of the merged call-tree. Nodes are owned
// exclusively by the tree they belong to: the tree is a strict hierarchy
// with no sharing across branches and no back-references.
//
// Invariant: Total = Self + sum of Total over all children. Insert and Build
// maintain this; external code only reads.
type Node struct {
	Frame Frame
	Self  float64
	Total float64

	children []*Node
}

// Children returns the node's children in first-insertion order. The returned
// slice is owned by the tree and must not be modified.
func (n *Node) Children() []*Node { return n.children }

// Name returns the frame name of the node.
func (n *Node) Name() string { return n.Frame.Name }

// Tree is a weighted prefix tree over stack traces. Multiple roots represent
// independent top-level entry points (e.g. several threads).
//
// The zero value is an empty tree ready for use; NewTree exists for symmetry
// with the rest of the API.
type Tree struct {
	roots []*Node
	total float64
}

// NewTree creates an empty tree.
func NewTree() *Tree { return &Tree{} }

// Roots returns the root nodes in first-insertion order. The returned slice
// is owned by the tree and must not be modified.
func (t *Tree) Roots() []*Node { return t.roots }

// Total returns the aggregate weight of the whole tree, i.e. the sum of the
// weights of all inserted stacks.
func (t *Tree) Total() float64 { return t.total }

// Empty reports whether the tree contains no nodes.
func (t *Tree) Empty() bool { return len(t.roots) == 0 }

// Depth returns the maximum root-to-leaf node count across all roots.
// An empty tree has depth 0, a tree holding a single stack of k frames
// has depth k.
func (t *Tree) Depth() int {
	depth := 0
	t.Walk(func(_ *Node, d int) bool {
		if d+1 > depth {
			depth = d + 1
		}
		return true
	})
	return depth
}

// NodeCount returns the number of nodes in the tree.
func (t *Tree) NodeCount() int {
	count := 0
	t.Walk(func(*Node, int) bool {
		count++
		return true
	})
	return count
}

// Insert folds one stack into the tree, creating nodes for frames not seen
// before on that path and adding the stack's weight to Total along the way.
// The final frame of the path additionally receives the weight as Self.
//
// Stacks with non-positive weight or an empty frame path carry no
// information and are ignored. This is a defined no-op, not an error.
//
// Frame matching is exact string equality on the name. At every level the
// existing children are scanned in order and a new node is appended at the
// end of the child list when no match is found, so child order always
// reflects first insertion. The linear scan is a deliberate ordering
// contract (see package documentation), not an optimization target: stacks
// are shallow and per-level fan-out is small in practice.
func (t *Tree) Insert(s Stack) {
	if s.Weight <= 0 || len(s.Frames) == 0 {
		return
	}
	t.total += s.Weight

	siblings := &t.roots
	last := len(s.Frames) - 1
	for i, f := range s.Frames {
		n := findChild(*siblings, f.Name)
		if n == nil {
			n = &Node{Frame: f}
			*siblings = append(*siblings, n)
		}
		n.Total += s.Weight
		if i == last {
			n.Self += s.Weight
		}
		siblings = &n.children
	}
}

// InsertMany folds a sequence of stacks left to right through Insert.
// Final Self/Total weights do not depend on insertion order, but child
// ordering does: it reflects the first time each path was seen. Callers
// that need byte-identical rendering must therefore fix the input order.
func (t *Tree) InsertMany(stacks []Stack) {
	for _, s := range stacks {
		t.Insert(s)
	}
}

// Merge folds every weighted path of other into t by replaying other's
// traversal as a sequence of inserts. This is the recommended way to combine
// trees built independently (e.g. one per worker): no locking is needed
// while building, and the merge happens once at the end.
//
// other is not modified.
func (t *Tree) Merge(other *Tree) {
	if other == nil {
		return
	}
	for path, self := range other.All() {
		t.Insert(Stack{Frames: path, Weight: self})
	}
}

// findChild scans nodes in order for a frame name match.
func findChild(nodes []*Node, name string) *Node {
	for _, n := range nodes {
		if n.Frame.Name == name {
			return n
		}
	}
	return nil
}
