// Package flame implements the weighted call-tree at the heart of flamefold.
//
// A flame tree is a prefix tree (trie) over stack traces: inserting a stack
// merges its root-first frame path into the existing tree, so traces that
// share a common prefix share the ancestor nodes of that prefix. Every node
// tracks two weights:
//
//   - Self: weight attributed to the node itself (samples ending there)
//   - Total: Self plus the Total of all descendants
//
// # Construction
//
// Trees are built one stack at a time:
//
//	t := flame.NewTree()
//	t.Insert(flame.NewStack(10, "main", "foo", "bar"))
//	t.Insert(flame.NewStack(5, "main", "baz"))
//
// or declaratively from a nested description:
//
//	t := flame.Build(flame.Def{
//	    Name: "main",
//	    Children: []flame.Def{
//	        {Name: "foo", Children: []flame.Def{{Name: "bar", Self: 10}}},
//	        {Name: "baz", Self: 5},
//	    },
//	})
//
// Both paths yield the same totals for the same logical data, but they differ
// in one respect: Insert merges same-named siblings automatically, while
// Build keeps duplicate-named sibling Defs as distinct nodes. See Build.
//
// # Ordering
//
// Children are kept in first-insertion order, never sorted. This ordering is
// part of the rendering contract: for the same insertion sequence the tree,
// and therefore every downstream layout, is fully deterministic.
//
// # Concurrency
//
// A Tree is a single-owner mutable structure. It is not safe for concurrent
// use. To merge samples concurrently, build one tree per worker and combine
// them afterwards with [Tree.Merge].
package flame
