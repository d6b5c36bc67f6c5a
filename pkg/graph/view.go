package graph

import (
	"sort"

	"github.com/mfelder/dotwalk/pkg/dot"
)

// view adapts a Graph document to the dot capabilities. Nodes, edges and
// subgraphs are addressed by their slice index, so enumeration order in the
// rendered output follows document order.
type view struct {
	g *Graph
}

var _ dot.Graph[int, int, int] = view{}

func (v view) Nodes() []int { return indices(len(v.g.Nodes)) }

func (v view) Edges() []int { return indices(len(v.g.Edges)) }

func (v view) Source(e int) int { return v.g.byID[v.g.Edges[e].From] }

func (v view) Target(e int) int { return v.g.byID[v.g.Edges[e].To] }

func (v view) Subgraphs() []int { return indices(len(v.g.Subgraphs)) }

func (v view) SubgraphNodes(s int) []int {
	members := v.g.Subgraphs[s].Nodes
	out := make([]int, len(members))
	for i, id := range members {
		out[i] = v.g.byID[id]
	}
	return out
}

func (v view) GraphID() dot.ID {
	if v.g.Name == "" {
		return dot.MustID("G")
	}
	return dot.MustID(v.g.Name)
}

func (v view) Kind() dot.Kind {
	if v.g.Undirected {
		return dot.Undirected
	}
	return dot.Directed
}

func (v view) NodeID(n int) dot.ID { return dot.MustID(v.g.Nodes[n].ID) }

func (v view) NodeLabel(n int) dot.Text { return text(v.g.Nodes[n].Label, v.g.Nodes[n].HTML) }

func (v view) NodeStyle(n int) dot.Style { return style(v.g.Nodes[n].Style) }

func (v view) NodeColor(n int) dot.Text { return plain(v.g.Nodes[n].Color) }

func (v view) NodeShape(n int) dot.Text { return plain(v.g.Nodes[n].Shape) }

func (v view) EdgeLabel(e int) dot.Text { return text(v.g.Edges[e].Label, v.g.Edges[e].HTML) }

func (v view) EdgeStyle(e int) dot.Style { return style(v.g.Edges[e].Style) }

func (v view) EdgeColor(e int) dot.Text { return plain(v.g.Edges[e].Color) }

func (v view) EdgeStartArrow(e int) dot.Arrow { return dot.DefaultArrow() }

func (v view) EdgeEndArrow(e int) dot.Arrow { return dot.DefaultArrow() }

func (v view) SubgraphID(s int) (dot.ID, bool) {
	if id := v.g.Subgraphs[s].ID; id != "" {
		return dot.MustID(id), true
	}
	return dot.ID{}, false
}

func (v view) SubgraphLabel(s int) dot.Text { return text(v.g.Subgraphs[s].Label, false) }

func (v view) SubgraphStyle(s int) dot.Style { return style(v.g.Subgraphs[s].Style) }

func (v view) SubgraphColor(s int) dot.Text { return plain(v.g.Subgraphs[s].Color) }

func (v view) SubgraphRank(s int) dot.Rank {
	r, _ := parseRank(v.g.Subgraphs[s].Rank)
	return r
}

func indices(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func text(s string, html bool) dot.Text {
	if s == "" {
		return dot.Text{}
	}
	if html {
		return dot.HTML(s)
	}
	return dot.Label(s)
}

func plain(s string) dot.Text {
	if s == "" {
		return dot.Text{}
	}
	return dot.Label(s)
}

func style(s string) dot.Style {
	st, _ := dot.ParseStyle(s)
	return st
}

func sortNodes(nodes []Node) {
	sort.Slice(nodes, func(i, j int) bool { return nodes[i].ID < nodes[j].ID })
}
