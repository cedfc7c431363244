package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/flamefold/pkg/cache"
)

const sampleInput = "main;foo;bar 10\nmain;foo;baz 5\nmain;qux 3\n"

func quietLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel})
}

func TestOptionsValidateAndSetDefaults(t *testing.T) {
	var opts Options
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if opts.Separator != ";" {
		t.Errorf("separator = %q, want \";\"", opts.Separator)
	}
	if len(opts.Formats) != 1 || opts.Formats[0] != FormatSVG {
		t.Errorf("formats = %v, want [svg]", opts.Formats)
	}
	if opts.Palette != DefaultPalette {
		t.Errorf("palette = %q, want %q", opts.Palette, DefaultPalette)
	}
	if opts.Title != DefaultTitle {
		t.Errorf("title = %q, want %q", opts.Title, DefaultTitle)
	}
	if opts.PNGScale != DefaultPNGScale {
		t.Errorf("png scale = %v, want %v", opts.PNGScale, DefaultPNGScale)
	}
}

func TestOptionsValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		opts Options
	}{
		{"bad format", Options{Formats: []string{"bmp"}}},
		{"bad palette", Options{Palette: "neon"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.opts.ValidateAndSetDefaults(); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}

func TestOptionsJSONOmitsRuntimeFields(t *testing.T) {
	data, err := json.Marshal(Options{Title: "t", Logger: log.Default()})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if bytes.Contains(data, []byte("Logger")) {
		t.Errorf("serialized options leak runtime fields: %s", data)
	}
}

func TestExecuteProducesArtifacts(t *testing.T) {
	runner := NewRunner(nil, nil, quietLogger())
	opts := Options{Formats: []string{FormatSVG, FormatJSON}}

	result, err := runner.Execute(context.Background(), []byte(sampleInput), opts)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}

	if result.Stats.Total != 18 {
		t.Errorf("total = %v, want 18", result.Stats.Total)
	}
	if result.Stats.Depth != 3 {
		t.Errorf("depth = %d, want 3", result.Stats.Depth)
	}
	if len(result.Layout.Blocks) == 0 {
		t.Error("layout has no blocks")
	}

	svg, ok := result.Artifacts[FormatSVG]
	if !ok || !bytes.Contains(svg, []byte("<svg")) {
		t.Errorf("svg artifact missing or malformed")
	}
	if _, ok := result.Artifacts[FormatJSON]; !ok {
		t.Error("json artifact missing")
	}

	if result.CacheInfo.TreeHit || result.CacheInfo.LayoutHit || result.CacheInfo.RenderHit {
		t.Errorf("first run should not hit cache: %+v", result.CacheInfo)
	}
}

func TestExecuteInvalidInput(t *testing.T) {
	runner := NewRunner(nil, nil, quietLogger())
	if _, err := runner.Execute(context.Background(), []byte("main;foo nope\n"), Options{}); err == nil {
		t.Error("expected decode error, got nil")
	}
}

func TestExecuteCacheHits(t *testing.T) {
	dir := t.TempDir()
	c, err := cache.NewFileCache(dir)
	if err != nil {
		t.Fatalf("creating cache: %v", err)
	}
	runner := NewRunner(c, nil, quietLogger())
	opts := Options{Formats: []string{FormatSVG}}

	first, err := runner.Execute(context.Background(), []byte(sampleInput), opts)
	if err != nil {
		t.Fatalf("first run: %v", err)
	}

	second, err := runner.Execute(context.Background(), []byte(sampleInput), opts)
	if err != nil {
		t.Fatalf("second run: %v", err)
	}

	if !second.CacheInfo.TreeHit || !second.CacheInfo.LayoutHit || !second.CacheInfo.RenderHit {
		t.Errorf("second run should hit cache at every stage: %+v", second.CacheInfo)
	}
	if !bytes.Equal(first.Artifacts[FormatSVG], second.Artifacts[FormatSVG]) {
		t.Error("cached artifact differs from rendered artifact")
	}
	if second.Stats.Total != first.Stats.Total {
		t.Errorf("cached tree total = %v, want %v", second.Stats.Total, first.Stats.Total)
	}
}

func TestExecuteCacheKeyedByOptions(t *testing.T) {
	dir := t.TempDir()
	c, err := cache.NewFileCache(dir)
	if err != nil {
		t.Fatalf("creating cache: %v", err)
	}
	runner := NewRunner(c, nil, quietLogger())

	if _, err := runner.Execute(context.Background(), []byte(sampleInput), Options{}); err != nil {
		t.Fatalf("first run: %v", err)
	}

	// Changing a layout option must miss the layout cache even though the
	// tree is identical.
	result, err := runner.Execute(context.Background(), []byte(sampleInput), Options{Width: 800})
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if !result.CacheInfo.TreeHit {
		t.Error("tree stage should hit: input and decode options unchanged")
	}
	if result.CacheInfo.LayoutHit {
		t.Error("layout stage should miss: width changed")
	}
}

func TestStandaloneStages(t *testing.T) {
	runner := NewRunner(nil, nil, quietLogger())

	tree, err := runner.Decode([]byte(sampleInput), Options{})
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if tree.Total() != 18 {
		t.Errorf("total = %v, want 18", tree.Total())
	}

	lay, err := runner.ComputeLayout(tree, Options{Width: 600})
	if err != nil {
		t.Fatalf("layout: %v", err)
	}
	if lay.Width != 600 {
		t.Errorf("width = %v, want 600", lay.Width)
	}

	svg, err := runner.Render(lay, FormatSVG, Options{Title: "custom"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !bytes.Contains(svg, []byte("custom")) {
		t.Error("rendered SVG missing custom title")
	}

	if _, err := runner.Render(lay, "bmp", Options{}); err == nil {
		t.Error("expected error for invalid format")
	}
}
