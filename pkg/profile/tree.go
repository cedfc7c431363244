package profile

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/matzehuels/flamefold/pkg/flame"
)

// =============================================================================
// Tree - Call-Tree Serialization
// =============================================================================

// Tree is the canonical serialization format for weighted call-trees.
type Tree struct {
	Total float64 `json:"total"`
	Roots []Node  `json:"roots"`
}

// Node is one serialized tree node. Children preserve the tree's stored
// order so that deserialization reproduces the exact rendering order.
type Node struct {
	Name     string       `json:"name"`
	Meta     []flame.Attr `json:"meta,omitempty"`
	Self     float64      `json:"self,omitempty"`
	Total    float64      `json:"total"`
	Children []Node       `json:"children,omitempty"`
}

// FromTree converts a flame tree to its serialization format.
func FromTree(t *flame.Tree) Tree {
	out := Tree{Total: t.Total()}
	for _, r := range t.Roots() {
		out.Roots = append(out.Roots, nodeFrom(r))
	}
	return out
}

func nodeFrom(n *flame.Node) Node {
	out := Node{
		Name:  n.Frame.Name,
		Meta:  n.Frame.Meta,
		Self:  n.Self,
		Total: n.Total,
	}
	for _, c := range n.Children() {
		out.Children = append(out.Children, nodeFrom(c))
	}
	return out
}

// Tree reconstructs the flame tree. Totals are recomputed bottom-up from the
// self weights via the declarative builder, which also makes the round trip
// robust against hand-edited artifacts with stale totals.
func (t Tree) Tree() *flame.Tree {
	defs := make([]flame.Def, len(t.Roots))
	for i, r := range t.Roots {
		defs[i] = defFrom(r)
	}
	return flame.Build(defs...)
}

func defFrom(n Node) flame.Def {
	d := flame.Def{Name: n.Name, Meta: n.Meta, Self: n.Self}
	for _, c := range n.Children {
		d.Children = append(d.Children, defFrom(c))
	}
	return d
}

// =============================================================================
// Tree Serialization API
// =============================================================================

// MarshalTree serializes a flame tree to pretty-printed JSON bytes.
func MarshalTree(t *flame.Tree) ([]byte, error) {
	return json.MarshalIndent(FromTree(t), "", "  ")
}

// UnmarshalTree deserializes JSON bytes into a flame tree.
func UnmarshalTree(data []byte) (*flame.Tree, error) {
	var t Tree
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("unmarshal tree: %w", err)
	}
	return t.Tree(), nil
}

// WriteTreeFile writes a flame tree to a JSON file.
// The file is created with 0644 permissions.
func WriteTreeFile(t *flame.Tree, path string) error {
	data, err := MarshalTree(t)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ReadTreeFile reads a JSON file and returns the decoded flame tree.
func ReadTreeFile(path string) (*flame.Tree, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return UnmarshalTree(data)
}
