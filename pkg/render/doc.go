// Package render and its subpackages turn computed layouts into output
// artifacts.
//
//   - render/styles: deterministic color palettes for frame blocks
//   - render/sink: output sinks (SVG, PNG, JSON)
//
// The renderers are pure consumers of the layout geometry: they never touch
// the underlying tree and carry no state between calls.
package render
