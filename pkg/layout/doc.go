// Package layout converts a weighted flame tree into positioned rectangles.
//
// The geometry follows the classic flamegraph convention: the root row sits
// at the bottom of the canvas and each call level is stacked one row above
// its parent, so flames grow upward. Horizontal extent is proportional to
// aggregated weight - a node's width is its Total times a scale factor
// derived from the target canvas width and the tree's total weight.
//
// # Invariants
//
// For every computed layout:
//
//   - no two blocks on the same row overlap in x
//   - every child block's x-range is contained in its parent's x-range
//   - a parent is at least as wide as the sum of its visible children
//
// Slack under a parent (from self-weight not covered by children) is left
// as unused trailing space. Blocks narrower than Config.MinBlockWidth are
// pruned together with their subtrees; this is a lossy step for the render
// layer only - the underlying tree is untouched.
//
// # Determinism
//
// Compute walks the tree in its stored order and uses no randomness, so the
// same tree and configuration always produce an identical block list.
package layout
