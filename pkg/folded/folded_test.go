package folded

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/matzehuels/flamefold/pkg/flame"
)

func TestDecode(t *testing.T) {
	input := `
# comment line
main;foo;bar 10
main;foo;baz 5

main;qux 3
`
	tree, err := DecodeString(input)
	if err != nil {
		t.Fatalf("DecodeString: %v", err)
	}
	if tree.Total() != 18 {
		t.Errorf("Total() = %v, want 18", tree.Total())
	}
	if tree.Depth() != 3 {
		t.Errorf("Depth() = %d, want 3", tree.Depth())
	}
	if got := len(tree.Roots()); got != 1 {
		t.Errorf("got %d roots, want 1", got)
	}
}

func TestDecodeFloatWeights(t *testing.T) {
	tree, err := DecodeString("a;b 1.5\nc 0.25\n")
	if err != nil {
		t.Fatalf("DecodeString: %v", err)
	}
	if math.Abs(tree.Total()-1.75) > 1e-12 {
		t.Errorf("Total() = %v, want 1.75", tree.Total())
	}
}

func TestDecodeCustomSeparator(t *testing.T) {
	tree, err := DecodeString("main/foo/bar 4\n", WithSeparator("/"))
	if err != nil {
		t.Fatalf("DecodeString: %v", err)
	}
	if tree.Depth() != 3 {
		t.Errorf("Depth() = %d, want 3", tree.Depth())
	}
}

func TestDecodeReversed(t *testing.T) {
	tree, err := DecodeString("main;foo;hot 3\nmain;bar;hot 4\n", WithReversed())
	if err != nil {
		t.Fatalf("DecodeString: %v", err)
	}
	// Reversed stacks aggregate by leaf: one root named "hot".
	roots := tree.Roots()
	if len(roots) != 1 || roots[0].Name() != "hot" {
		t.Fatalf("got roots %v, want single root hot", roots)
	}
	if roots[0].Total != 7 {
		t.Errorf("hot Total = %v, want 7", roots[0].Total)
	}
}

func TestDecodeMalformedLines(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantLine int
	}{
		{name: "missing weight", input: "main;foo\n", wantLine: 1},
		{name: "bad number", input: "main;foo 10\nmain;bar abc\n", wantLine: 2},
		{name: "weight only", input: " 10\n", wantLine: 1},
		{name: "error after comments", input: "# header\n\nmain nope\n", wantLine: 3},
		// ParseFloat accepts these literals; the decoder must not.
		{name: "infinite weight", input: "main;foo Inf\nmain;bar 5\n", wantLine: 1},
		{name: "negative infinite weight", input: "main;foo -Inf\n", wantLine: 1},
		{name: "nan weight", input: "main;foo NaN\n", wantLine: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree, err := DecodeString(tt.input)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if tree != nil {
				t.Error("tree should be nil on parse error")
			}
			var le *LineError
			if !errors.As(err, &le) {
				t.Fatalf("error %v is not a *LineError", err)
			}
			if le.Line != tt.wantLine {
				t.Errorf("Line = %d, want %d", le.Line, tt.wantLine)
			}
		})
	}
}

func TestDecodeEmptyInput(t *testing.T) {
	tree, err := DecodeString("")
	if err != nil {
		t.Fatalf("DecodeString: %v", err)
	}
	if !tree.Empty() {
		t.Error("tree should be empty for empty input")
	}
}

func TestEncode(t *testing.T) {
	tree := flame.NewTree()
	tree.Insert(flame.NewStack(10, "main", "foo", "bar"))
	tree.Insert(flame.NewStack(5, "main", "baz"))

	got := string(Format(tree))
	want := "main;foo;bar 10\nmain;baz 5\n"
	if got != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}
}

func TestEncodeFractionalWeights(t *testing.T) {
	tree := flame.NewTree()
	tree.Insert(flame.NewStack(1.5, "a"))

	if got := string(Format(tree)); got != "a 1.5\n" {
		t.Errorf("Format() = %q, want %q", got, "a 1.5\n")
	}
}

func TestRoundTripPreservesTotal(t *testing.T) {
	tree := flame.NewTree()
	tree.InsertMany([]flame.Stack{
		flame.NewStack(10, "main", "foo", "bar"),
		flame.NewStack(5, "main", "foo"),
		flame.NewStack(2.25, "main", "qux"),
		flame.NewStack(7, "other"),
	})

	decoded, err := Decode(strings.NewReader(string(Format(tree))))
	if err != nil {
		t.Fatalf("round trip decode: %v", err)
	}
	if decoded.Total() != tree.Total() {
		t.Errorf("round trip Total = %v, want %v", decoded.Total(), tree.Total())
	}
	if decoded.Depth() != tree.Depth() {
		t.Errorf("round trip Depth = %d, want %d", decoded.Depth(), tree.Depth())
	}
	if decoded.NodeCount() != tree.NodeCount() {
		t.Errorf("round trip NodeCount = %d, want %d", decoded.NodeCount(), tree.NodeCount())
	}
}
