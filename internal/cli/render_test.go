package cli

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestBasePath(t *testing.T) {
	tests := []struct {
		name   string
		output string
		input  string
		want   string
	}{
		{"derive from input", "", "profile.folded", "profile"},
		{"strip format extension", "graph.svg", "profile.folded", "graph"},
		{"keep unrelated extension", "graph.out", "profile.folded", "graph.out"},
		{"explicit base", "graph", "profile.folded", "graph"},
		{"stdin input", "", "-", "flamegraph"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := basePath(tt.output, tt.input); got != tt.want {
				t.Errorf("basePath(%q, %q) = %q, want %q", tt.output, tt.input, got, tt.want)
			}
		})
	}
}

func TestParseFormats(t *testing.T) {
	if got := parseFormats(""); len(got) != 1 || got[0] != "svg" {
		t.Errorf("parseFormats(\"\") = %v, want [svg]", got)
	}
	if got := parseFormats("svg,png"); len(got) != 2 || got[1] != "png" {
		t.Errorf("parseFormats(\"svg,png\") = %v, want [svg png]", got)
	}
}

func TestRenderCommand(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	dir := t.TempDir()
	input := filepath.Join(dir, "profile.folded")
	if err := os.WriteFile(input, []byte("main;foo;bar 10\nmain;baz 5\n"), 0o644); err != nil {
		t.Fatalf("writing input: %v", err)
	}
	output := filepath.Join(dir, "graph.svg")

	c := New(io.Discard, LogInfo)
	root := c.RootCommand()
	root.SetArgs([]string{"render", input, "-o", output, "--no-cache"})
	if err := root.Execute(); err != nil {
		t.Fatalf("render command: %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if !strings.Contains(string(data), "<svg") {
		t.Error("output is not an SVG document")
	}
	if !strings.Contains(string(data), "main") {
		t.Error("output missing root frame label")
	}
}

func TestRenderCommandMultipleFormats(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	dir := t.TempDir()
	input := filepath.Join(dir, "profile.folded")
	if err := os.WriteFile(input, []byte("a;b 3\na;c 1\n"), 0o644); err != nil {
		t.Fatalf("writing input: %v", err)
	}

	c := New(io.Discard, LogInfo)
	root := c.RootCommand()
	root.SetArgs([]string{"render", input, "-f", "svg,json", "--no-cache"})
	if err := root.Execute(); err != nil {
		t.Fatalf("render command: %v", err)
	}

	for _, ext := range []string{".svg", ".json"} {
		path := filepath.Join(dir, "profile"+ext)
		if _, err := os.Stat(path); err != nil {
			t.Errorf("expected output %s: %v", path, err)
		}
	}
}

func TestRenderCommandInvalidFormat(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	c := New(io.Discard, LogInfo)
	root := c.RootCommand()
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"render", "whatever.folded", "-f", "bmp"})
	if err := root.Execute(); err == nil {
		t.Error("expected error for invalid format")
	}
}
