package sink

import (
	"bytes"
	"strings"
	"testing"

	"github.com/matzehuels/flamefold/pkg/flame"
	"github.com/matzehuels/flamefold/pkg/layout"
	"github.com/matzehuels/flamefold/pkg/render/styles"
)

func sampleLayout() layout.Layout {
	t := flame.NewTree()
	t.Insert(flame.NewStack(10, "main", "foo", "bar"))
	t.Insert(flame.NewStack(5, "main", "baz"))
	return layout.Compute(t, layout.DefaultConfig())
}

func TestRenderSVGStructure(t *testing.T) {
	svg := string(RenderSVG(sampleLayout(), WithTitle("CPU profile")))

	if !strings.HasPrefix(svg, `<svg xmlns="http://www.w3.org/2000/svg"`) {
		t.Error("output does not start with an svg element")
	}
	if !strings.HasSuffix(svg, "</svg>\n") {
		t.Error("output does not end with closing svg tag")
	}
	if !strings.Contains(svg, "CPU profile") {
		t.Error("title missing from output")
	}
	for _, name := range []string{"main", "foo", "bar", "baz"} {
		if !strings.Contains(svg, ">"+name+" (") {
			t.Errorf("hover title for %q missing", name)
		}
	}
	if got := strings.Count(svg, `<g class="frame">`); got != 4 {
		t.Errorf("got %d frame groups, want 4", got)
	}
}

func TestRenderSVGEscapesNames(t *testing.T) {
	tree := flame.NewTree()
	tree.Insert(flame.NewStack(10, `operator<<`, "a&b"))
	l := layout.Compute(tree, layout.DefaultConfig())

	svg := string(RenderSVG(l))
	if strings.Contains(svg, "operator<<") {
		t.Error("unescaped angle brackets in output")
	}
	if !strings.Contains(svg, "operator&lt;&lt;") {
		t.Error("escaped frame name missing")
	}
	if !strings.Contains(svg, "a&amp;b") {
		t.Error("escaped ampersand missing")
	}
}

func TestRenderSVGDeterministic(t *testing.T) {
	l := sampleLayout()
	a := RenderSVG(l, WithPalette(styles.Cool{}))
	b := RenderSVG(l, WithPalette(styles.Cool{}))
	if !bytes.Equal(a, b) {
		t.Error("two renders of the same layout differ")
	}
}

func TestRenderSVGEmptyLayout(t *testing.T) {
	l := layout.Compute(flame.NewTree(), layout.DefaultConfig())
	svg := string(RenderSVG(l))
	if strings.Contains(svg, `<g class="frame">`) {
		t.Error("empty layout should render no frames")
	}
	if !strings.HasPrefix(svg, "<svg ") {
		t.Error("empty layout should still render a canvas")
	}
}

func TestRenderSVGCountName(t *testing.T) {
	svg := string(RenderSVG(sampleLayout(), WithCountName("bytes")))
	if !strings.Contains(svg, "bytes") {
		t.Error("count name missing from hover titles")
	}
}

func TestRenderJSONMatchesLayout(t *testing.T) {
	l := sampleLayout()
	data, err := RenderJSON(l)
	if err != nil {
		t.Fatalf("RenderJSON: %v", err)
	}
	if !bytes.Contains(data, []byte(`"blocks"`)) {
		t.Error("JSON artifact missing blocks field")
	}
}
