package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/flamefold/pkg/cache"
	"github.com/matzehuels/flamefold/pkg/errors"
	"github.com/matzehuels/flamefold/pkg/flame"
	"github.com/matzehuels/flamefold/pkg/folded"
	"github.com/matzehuels/flamefold/pkg/layout"
	"github.com/matzehuels/flamefold/pkg/profile"
	"github.com/matzehuels/flamefold/pkg/render/sink"
	"github.com/matzehuels/flamefold/pkg/render/styles"
)

// =============================================================================
// Runner - Pipeline Execution with Caching
// =============================================================================

// Runner executes the pipeline with optional caching.
type Runner struct {
	cache  cache.Cache
	keyer  cache.Keyer
	logger *log.Logger
	ttl    time.Duration
}

// NewRunner creates a pipeline runner.
//
// A nil cache disables caching, a nil keyer selects the default key scheme,
// and a nil logger falls back to the package default.
func NewRunner(c cache.Cache, k cache.Keyer, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if k == nil {
		k = cache.NewDefaultKeyer()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{cache: c, keyer: k, logger: logger, ttl: DefaultCacheTTL}
}

// Execute runs the full pipeline: decode, layout, render.
//
// Each stage consults the cache before doing work. Stage outputs are
// content-addressed, so a cache hit on an earlier stage lets later stages
// hit as well when their options match.
func (r *Runner) Execute(ctx context.Context, input []byte, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	result := &Result{Artifacts: make(map[string][]byte)}

	tree, treeHash, err := r.decode(ctx, input, &opts, result)
	if err != nil {
		return nil, err
	}
	result.Tree = tree
	result.TreeHash = treeHash
	result.Stats.NodeCount = tree.NodeCount()
	result.Stats.Depth = tree.Depth()
	result.Stats.Total = tree.Total()

	lay, layoutHash, err := r.computeLayout(ctx, tree, treeHash, &opts, result)
	if err != nil {
		return nil, err
	}
	result.Layout = lay

	if err := r.render(ctx, lay, layoutHash, &opts, result); err != nil {
		return nil, err
	}

	return result, nil
}

// Decode parses folded-stacks input into a tree, bypassing the cache.
func (r *Runner) Decode(input []byte, opts Options) (*flame.Tree, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	return folded.Decode(bytes.NewReader(input), decodeOptions(&opts)...)
}

// ComputeLayout computes block geometry for a tree, bypassing the cache.
func (r *Runner) ComputeLayout(t *flame.Tree, opts Options) (layout.Layout, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return layout.Layout{}, err
	}
	return layout.Compute(t, opts.layoutConfig()), nil
}

// Render renders a layout to a single format, bypassing the cache.
func (r *Runner) Render(l layout.Layout, format string, opts Options) ([]byte, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	if err := ValidateFormat(format); err != nil {
		return nil, err
	}
	return r.renderFormat(l, format, &opts)
}

// =============================================================================
// Stages
// =============================================================================

func (r *Runner) decode(ctx context.Context, input []byte, opts *Options, result *Result) (*flame.Tree, string, error) {
	start := time.Now()
	inputHash := cache.Hash(input)
	key := r.keyer.TreeKey(inputHash, opts.decodeKeyParts())

	if data, ok, err := r.cache.Get(ctx, key); err == nil && ok {
		if cached, err := profile.UnmarshalTree(data); err == nil {
			result.CacheInfo.TreeHit = true
			result.Stats.DecodeTime = time.Since(start)
			r.logger.Debug("tree cache hit", "key", key)
			return cached, cache.Hash(data), nil
		}
		// A corrupt entry falls through to a fresh decode.
		r.logger.Warn("discarding corrupt cached tree", "key", key)
	}

	tree, err := folded.Decode(bytes.NewReader(input), decodeOptions(opts)...)
	if err != nil {
		return nil, "", err
	}

	data, err := profile.MarshalTree(tree)
	if err != nil {
		return nil, "", fmt.Errorf("marshaling tree: %w", err)
	}
	if err := r.cache.Set(ctx, key, data, r.ttl); err != nil {
		r.logger.Warn("caching tree failed", "error", err)
	}

	result.Stats.DecodeTime = time.Since(start)
	r.logger.Info("decoded input",
		"nodes", tree.NodeCount(),
		"depth", tree.Depth(),
		"total", tree.Total(),
		"duration", result.Stats.DecodeTime)
	return tree, cache.Hash(data), nil
}

func (r *Runner) computeLayout(ctx context.Context, t *flame.Tree, treeHash string, opts *Options, result *Result) (layout.Layout, string, error) {
	start := time.Now()
	key := r.keyer.LayoutKey(treeHash, opts.layoutKeyParts())

	if data, ok, err := r.cache.Get(ctx, key); err == nil && ok {
		if cached, err := profile.UnmarshalLayout(data); err == nil {
			result.CacheInfo.LayoutHit = true
			result.Stats.LayoutTime = time.Since(start)
			r.logger.Debug("layout cache hit", "key", key)
			return cached, cache.Hash(data), nil
		}
		r.logger.Warn("discarding corrupt cached layout", "key", key)
	}

	lay := layout.Compute(t, opts.layoutConfig())

	data, err := profile.MarshalLayout(lay)
	if err != nil {
		return layout.Layout{}, "", fmt.Errorf("marshaling layout: %w", err)
	}
	if err := r.cache.Set(ctx, key, data, r.ttl); err != nil {
		r.logger.Warn("caching layout failed", "error", err)
	}

	result.Stats.LayoutTime = time.Since(start)
	r.logger.Info("computed layout",
		"blocks", len(lay.Blocks),
		"width", lay.Width,
		"height", lay.Height,
		"duration", result.Stats.LayoutTime)
	return lay, cache.Hash(data), nil
}

func (r *Runner) render(ctx context.Context, lay layout.Layout, layoutHash string, opts *Options, result *Result) error {
	start := time.Now()
	allHit := true

	for _, format := range opts.Formats {
		key := r.keyer.ArtifactKey(layoutHash, format, opts.renderKeyParts(format))

		if data, ok, err := r.cache.Get(ctx, key); err == nil && ok {
			result.Artifacts[format] = data
			r.logger.Debug("artifact cache hit", "format", format, "key", key)
			continue
		}
		allHit = false

		data, err := r.renderFormat(lay, format, opts)
		if err != nil {
			return fmt.Errorf("rendering %s: %w", format, err)
		}
		result.Artifacts[format] = data

		if err := r.cache.Set(ctx, key, data, r.ttl); err != nil {
			r.logger.Warn("caching artifact failed", "format", format, "error", err)
		}
		r.logger.Info("rendered artifact", "format", format, "bytes", len(data))
	}

	result.CacheInfo.RenderHit = allHit
	result.Stats.RenderTime = time.Since(start)
	return nil
}

func (r *Runner) renderFormat(l layout.Layout, format string, opts *Options) ([]byte, error) {
	svgOpts := []sink.SVGOption{
		sink.WithTitle(opts.Title),
		sink.WithCountName(opts.CountName),
		sink.WithPalette(styles.ByName(opts.Palette)),
	}
	switch format {
	case FormatSVG:
		return sink.RenderSVG(l, svgOpts...), nil
	case FormatPNG:
		return sink.RenderPNG(l,
			sink.WithPNGSVGOptions(svgOpts...),
			sink.WithScale(opts.PNGScale))
	case FormatJSON:
		return sink.RenderJSON(l)
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q", format)
	}
}

func decodeOptions(opts *Options) []folded.Option {
	var out []folded.Option
	if opts.Separator != "" && opts.Separator != folded.DefaultSeparator {
		out = append(out, folded.WithSeparator(opts.Separator))
	}
	if opts.Reversed {
		out = append(out, folded.WithReversed())
	}
	return out
}
