package flame_test

import (
	"fmt"
	"strings"

	"github.com/matzehuels/flamefold/pkg/flame"
)

func ExampleTree_Insert() {
	t := flame.NewTree()
	t.Insert(flame.NewStack(10, "main", "foo", "bar"))
	t.Insert(flame.NewStack(5, "main", "foo", "baz"))
	t.Insert(flame.NewStack(3, "main", "qux"))

	fmt.Println("total:", t.Total())
	fmt.Println("depth:", t.Depth())
	fmt.Println("roots:", len(t.Roots()))
	// Output:
	// total: 18
	// depth: 3
	// roots: 1
}

func ExampleTree_All() {
	t := flame.NewTree()
	t.Insert(flame.NewStack(10, "main", "foo"))
	t.Insert(flame.NewStack(5, "main", "bar"))

	for path, self := range t.All() {
		names := make([]string, len(path))
		for i, f := range path {
			names[i] = f.Name
		}
		fmt.Printf("%s %g\n", strings.Join(names, ";"), self)
	}
	// Output:
	// main;foo 10
	// main;bar 5
}

func ExampleBuild() {
	t := flame.Build(flame.Def{
		Name: "main",
		Children: []flame.Def{
			{Name: "foo", Children: []flame.Def{{Name: "bar", Self: 10}}},
			{Name: "baz", Self: 5},
		},
	})

	fmt.Println("total:", t.Total())
	fmt.Println("depth:", t.Depth())
	// Output:
	// total: 15
	// depth: 3
}
