// Package graph provides a concrete, serializable graph document that can be
// rendered to DOT without writing any capability methods by hand.
//
// A Graph holds named nodes, edges between them, and optional subgraph
// groupings. It carries JSON and TOML tags so documents can be read from
// disk, validated, and rendered:
//
//	g, err := graph.FromEdges("deps", [][2]string{{"a", "b"}, {"b", "c"}})
//	if err != nil { ... }
//	err = g.WriteDOT(os.Stdout, dot.Options{})
//
// For graphs backed by existing application data structures, implement the
// dot package capabilities directly instead.
package graph
