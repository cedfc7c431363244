// Package sink renders computed layouts to output formats.
//
// Available sinks:
//
//   - [RenderSVG]: standalone SVG markup with per-block hover titles
//   - [RenderPNG]: in-process rasterization of the SVG output
//   - [RenderJSON]: the serialized layout artifact
//
// All sinks are deterministic: the same layout and options produce
// byte-identical output.
package sink
