package flame

import "iter"

// All returns a lazy, restartable sequence of (path, self-weight) pairs, one
// per node with Self > 0. Nodes are visited in the tree's stored order:
// pre-order, parents before children, siblings in first-insertion order.
// Nodes with zero self-weight (pure aggregation points) are skipped from
// emission but still traversed for their children.
//
// The yielded path slice is a fresh copy per emission and may be retained
// by the consumer.
func (t *Tree) All() iter.Seq2[[]Frame, float64] {
	return func(yield func([]Frame, float64) bool) {
		path := make([]Frame, 0, 16)
		emitNodes(t.roots, path, yield)
	}
}

func emitNodes(nodes []*Node, path []Frame, yield func([]Frame, float64) bool) bool {
	for _, n := range nodes {
		path = append(path, n.Frame)
		if n.Self > 0 {
			out := make([]Frame, len(path))
			copy(out, path)
			if !yield(out, n.Self) {
				return false
			}
		}
		if !emitNodes(n.children, path, yield) {
			return false
		}
		path = path[:len(path)-1]
	}
	return true
}

// Walk visits every node of the tree in pre-order, parents before children
// and siblings in first-insertion order, calling fn with the node and its
// zero-based depth. Unlike All it includes pure aggregation nodes. Walk
// stops early when fn returns false; the skipped remainder includes the
// children of the rejecting node.
func (t *Tree) Walk(fn func(n *Node, depth int) bool) {
	walkNodes(t.roots, 0, fn)
}

func walkNodes(nodes []*Node, depth int, fn func(*Node, int) bool) bool {
	for _, n := range nodes {
		if !fn(n, depth) {
			return false
		}
		if !walkNodes(n.children, depth+1, fn) {
			return false
		}
	}
	return true
}

// Fold reduces over the same traversal as All: acc starts at init and fn is
// applied once per positive-self-weight node, in pre-order with siblings in
// first-insertion order. The path slice passed to fn is only valid for the
// duration of the call.
func Fold[T any](t *Tree, init T, fn func(acc T, path []Frame, self float64) T) T {
	acc := init
	path := make([]Frame, 0, 16)
	foldNodes(t.roots, path, &acc, fn)
	return acc
}

func foldNodes[T any](nodes []*Node, path []Frame, acc *T, fn func(T, []Frame, float64) T) {
	for _, n := range nodes {
		path = append(path, n.Frame)
		if n.Self > 0 {
			*acc = fn(*acc, path, n.Self)
		}
		foldNodes(n.children, path, acc, fn)
		path = path[:len(path)-1]
	}
}
