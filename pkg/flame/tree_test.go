package flame

import (
	"math"
	"testing"
)

func TestInsertWeightConservation(t *testing.T) {
	tests := []struct {
		name   string
		stacks []Stack
		want   float64
	}{
		{
			name: "disjoint stacks",
			stacks: []Stack{
				NewStack(10, "a", "b"),
				NewStack(5, "c"),
				NewStack(2.5, "d", "e", "f"),
			},
			want: 17.5,
		},
		{
			name: "shared prefix",
			stacks: []Stack{
				NewStack(10, "main", "foo", "bar"),
				NewStack(5, "main", "foo", "baz"),
				NewStack(3, "main", "qux"),
			},
			want: 18,
		},
		{
			name: "same path repeated",
			stacks: []Stack{
				NewStack(1, "main", "foo"),
				NewStack(2, "main", "foo"),
				NewStack(3, "main", "foo"),
			},
			want: 6,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree := NewTree()
			tree.InsertMany(tt.stacks)
			if got := tree.Total(); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Total() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestInsertIgnoresDegenerate(t *testing.T) {
	tree := NewTree()
	tree.Insert(Stack{})                        // empty path, zero weight
	tree.Insert(NewStack(0, "main"))            // zero weight
	tree.Insert(NewStack(-1, "main"))           // negative weight
	tree.Insert(Stack{Weight: 5})               // weight without path
	if !tree.Empty() {
		t.Fatal("tree should still be empty after degenerate inserts")
	}
	if tree.Total() != 0 {
		t.Errorf("Total() = %v, want 0", tree.Total())
	}
}

func TestDepth(t *testing.T) {
	tests := []struct {
		name   string
		stacks []Stack
		want   int
	}{
		{name: "empty", want: 0},
		{name: "single frame", stacks: []Stack{NewStack(1, "a")}, want: 1},
		{name: "single stack of 4", stacks: []Stack{NewStack(1, "a", "b", "c", "d")}, want: 4},
		{
			name: "deepest branch wins",
			stacks: []Stack{
				NewStack(1, "a", "b"),
				NewStack(1, "a", "b", "c"),
				NewStack(1, "x"),
			},
			want: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree := NewTree()
			tree.InsertMany(tt.stacks)
			if got := tree.Depth(); got != tt.want {
				t.Errorf("Depth() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestRootAggregation(t *testing.T) {
	tree := NewTree()
	tree.Insert(NewStack(10, "main", "foo", "bar"))
	tree.Insert(NewStack(5, "main", "foo", "baz"))
	tree.Insert(NewStack(3, "main", "qux"))

	roots := tree.Roots()
	if len(roots) != 1 {
		t.Fatalf("got %d roots, want 1", len(roots))
	}
	main := roots[0]
	if main.Name() != "main" {
		t.Errorf("root name = %q, want %q", main.Name(), "main")
	}
	if main.Total != 18 {
		t.Errorf("root Total = %v, want 18", main.Total)
	}
	if main.Self != 0 {
		t.Errorf("root Self = %v, want 0", main.Self)
	}

	kids := main.Children()
	if len(kids) != 2 {
		t.Fatalf("got %d children of main, want 2", len(kids))
	}
	// First-insertion order: foo before qux.
	if kids[0].Name() != "foo" || kids[1].Name() != "qux" {
		t.Errorf("child order = [%s %s], want [foo qux]", kids[0].Name(), kids[1].Name())
	}
	if kids[0].Total != 15 {
		t.Errorf("foo Total = %v, want 15", kids[0].Total)
	}
	if kids[1].Self != 3 || kids[1].Total != 3 {
		t.Errorf("qux Self/Total = %v/%v, want 3/3", kids[1].Self, kids[1].Total)
	}
}

func TestChildOrderReflectsFirstInsertion(t *testing.T) {
	tree := NewTree()
	tree.Insert(NewStack(1, "main", "zeta"))
	tree.Insert(NewStack(1, "main", "alpha"))
	tree.Insert(NewStack(1, "main", "zeta")) // merges, keeps position

	kids := tree.Roots()[0].Children()
	if len(kids) != 2 {
		t.Fatalf("got %d children, want 2", len(kids))
	}
	if kids[0].Name() != "zeta" || kids[1].Name() != "alpha" {
		t.Errorf("child order = [%s %s], want [zeta alpha]", kids[0].Name(), kids[1].Name())
	}
	if kids[0].Total != 2 {
		t.Errorf("zeta Total = %v, want 2", kids[0].Total)
	}
}

func TestNodeInvariantTotalEqualsSelfPlusChildren(t *testing.T) {
	tree := NewTree()
	tree.Insert(NewStack(7, "main"))
	tree.Insert(NewStack(10, "main", "foo", "bar"))
	tree.Insert(NewStack(5, "main", "foo"))

	var check func(n *Node)
	check = func(n *Node) {
		sum := n.Self
		for _, c := range n.Children() {
			sum += c.Total
			check(c)
		}
		if math.Abs(sum-n.Total) > 1e-9 {
			t.Errorf("node %s: Self+children = %v, Total = %v", n.Name(), sum, n.Total)
		}
	}
	for _, r := range tree.Roots() {
		check(r)
	}
}

func TestMultipleRoots(t *testing.T) {
	tree := NewTree()
	tree.Insert(NewStack(4, "thread-1", "work"))
	tree.Insert(NewStack(6, "thread-2", "work"))

	if len(tree.Roots()) != 2 {
		t.Fatalf("got %d roots, want 2", len(tree.Roots()))
	}
	if tree.Total() != 10 {
		t.Errorf("Total() = %v, want 10", tree.Total())
	}
}

func TestInsertionOrderIndependentWeights(t *testing.T) {
	stacks := []Stack{
		NewStack(10, "main", "foo", "bar"),
		NewStack(5, "main", "baz"),
		NewStack(2, "main", "foo"),
	}

	forward := NewTree()
	forward.InsertMany(stacks)

	backward := NewTree()
	for i := len(stacks) - 1; i >= 0; i-- {
		backward.Insert(stacks[i])
	}

	if forward.Total() != backward.Total() {
		t.Errorf("totals differ: %v vs %v", forward.Total(), backward.Total())
	}
	if forward.Depth() != backward.Depth() {
		t.Errorf("depths differ: %d vs %d", forward.Depth(), backward.Depth())
	}
	if forward.NodeCount() != backward.NodeCount() {
		t.Errorf("node counts differ: %d vs %d", forward.NodeCount(), backward.NodeCount())
	}
}

func TestMergeReplaysOtherTree(t *testing.T) {
	a := NewTree()
	a.Insert(NewStack(10, "main", "foo"))

	b := NewTree()
	b.Insert(NewStack(5, "main", "bar"))
	b.Insert(NewStack(2, "main", "foo"))

	a.Merge(b)

	if a.Total() != 17 {
		t.Errorf("merged Total = %v, want 17", a.Total())
	}
	if got := len(a.Roots()); got != 1 {
		t.Fatalf("got %d roots, want 1", got)
	}
	kids := a.Roots()[0].Children()
	if len(kids) != 2 {
		t.Fatalf("got %d children, want 2", len(kids))
	}
	if kids[0].Name() != "foo" || kids[0].Total != 12 {
		t.Errorf("foo = %v@%v, want foo@12", kids[0].Name(), kids[0].Total)
	}

	// Merging nil is a no-op.
	a.Merge(nil)
	if a.Total() != 17 {
		t.Errorf("Total after nil merge = %v, want 17", a.Total())
	}
}

func TestEmptyTree(t *testing.T) {
	tree := NewTree()
	if !tree.Empty() {
		t.Error("Empty() = false, want true")
	}
	if tree.Total() != 0 {
		t.Errorf("Total() = %v, want 0", tree.Total())
	}
	if tree.Depth() != 0 {
		t.Errorf("Depth() = %d, want 0", tree.Depth())
	}
	if tree.NodeCount() != 0 {
		t.Errorf("NodeCount() = %d, want 0", tree.NodeCount())
	}
}
