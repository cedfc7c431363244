// Package pkg provides the core libraries for Flamefold flame graph rendering.
//
// # Overview
//
// Flamefold turns folded stack traces into flame graphs: weighted call trees
// drawn as stacked rectangles whose widths are proportional to time spent.
// The pkg directory is organized into five main areas:
//
//  1. [flame] - Domain logic (weighted call trees, iteration, merging)
//  2. [folded] - Folded-stacks text codec (decode and encode)
//  3. [layout] - Deterministic block geometry computation
//  4. [render] - Output sinks (SVG, PNG, JSON) and color palettes
//  5. [pipeline] - Orchestration (decode → layout → render) with caching
//
// # Architecture
//
// The typical data flow through Flamefold:
//
//	Folded stacks text
//	         ↓
//	    [folded] package (parse lines into weighted stacks)
//	         ↓
//	    [flame] package (trie of frames with self/total weights)
//	         ↓
//	    [layout] package (positioned, pruned rectangles)
//	         ↓
//	    SVG/PNG/JSON output
//
// # Quick Start
//
// Decode a profile and render it to SVG:
//
//	import (
//	    "strings"
//	    "github.com/matzehuels/flamefold/pkg/folded"
//	    "github.com/matzehuels/flamefold/pkg/layout"
//	    "github.com/matzehuels/flamefold/pkg/render/sink"
//	)
//
//	// 1. Decode folded text
//	tree, _ := folded.Decode(strings.NewReader("main;foo;bar 10\nmain;baz 5\n"))
//
//	// 2. Compute layout
//	l := layout.Compute(tree, layout.DefaultConfig())
//
//	// 3. Render to SVG
//	svg := sink.RenderSVG(l)
//
// # Main Packages
//
// [flame] - Weighted call trees. Stacks insert into a trie keyed by frame
// name; each node tracks its own (self) weight and the aggregate (total)
// weight of its subtree. Trees iterate lazily via [flame.Tree.All], reduce
// via [flame.Fold], and combine via [flame.Tree.Merge].
//
// [folded] - The de facto standard folded-stacks format: one stack per
// line, frame names joined by separators, trailing numeric weight.
// Decoding is atomic; a malformed line yields a [folded.LineError] and no
// partial tree.
//
// [layout] - Converts a tree into positioned blocks. The layout is a pure
// function of the tree and configuration; equal inputs yield byte-equal
// geometry. Blocks narrower than the configured minimum are pruned while
// preserving the positions of their visible siblings.
//
// [render/sink] - Output formats: self-contained SVG with hover titles,
// rasterized PNG, and JSON geometry export. [render/styles] supplies
// deterministic per-frame color palettes.
//
// [profile] - Serialization types for trees and layouts (JSON wire format)
// used by the cache and the JSON sink.
//
// [pipeline] - Complete rendering pipeline (decode → layout → render) used
// by the CLI and HTTP API. Each stage is cached content-addressed via
// [cache], so repeated renders of the same profile are cheap.
//
// [cache] - Cache backends for pipeline stages: file-based for the CLI,
// Redis for servers, and a null cache for tests.
//
// [errors] - Structured error codes shared by the CLI and HTTP API.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...              # All tests
//	go test ./pkg/flame/...        # Specific package
//	go test -run Example           # Examples only
//
// [flame]: https://pkg.go.dev/github.com/matzehuels/flamefold/pkg/flame
// [folded]: https://pkg.go.dev/github.com/matzehuels/flamefold/pkg/folded
// [layout]: https://pkg.go.dev/github.com/matzehuels/flamefold/pkg/layout
// [render]: https://pkg.go.dev/github.com/matzehuels/flamefold/pkg/render
// [render/sink]: https://pkg.go.dev/github.com/matzehuels/flamefold/pkg/render/sink
// [render/styles]: https://pkg.go.dev/github.com/matzehuels/flamefold/pkg/render/styles
// [profile]: https://pkg.go.dev/github.com/matzehuels/flamefold/pkg/profile
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/flamefold/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/flamefold/pkg/cache
// [errors]: https://pkg.go.dev/github.com/matzehuels/flamefold/pkg/errors
package pkg
