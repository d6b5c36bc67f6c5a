package graph_test

import (
	"os"

	"github.com/mfelder/dotwalk/pkg/dot"
	"github.com/mfelder/dotwalk/pkg/graph"
)

func Example() {
	g, err := graph.FromEdges("pipeline", [][2]string{
		{"fetch", "parse"},
		{"parse", "render"},
	})
	if err != nil {
		panic(err)
	}
	if err := g.WriteDOT(os.Stdout, dot.Options{}); err != nil {
		panic(err)
	}
	// Output:
	// digraph pipeline {
	//     fetch[label="fetch"];
	//     parse[label="parse"];
	//     render[label="render"];
	//     fetch -> parse[label=""];
	//     parse -> render[label=""];
	// }
}
