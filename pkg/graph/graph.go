package graph

import (
	"io"
	"strings"

	"github.com/mfelder/dotwalk/pkg/dot"
	"github.com/mfelder/dotwalk/pkg/errors"
)

// Graph is a renderable graph document. The zero value is an empty directed
// graph. Call Validate before rendering; rendering an invalid document
// produces invalid DOT.
type Graph struct {
	// Name becomes the graph identifier in the DOT header. Empty means "G".
	Name string `json:"name,omitempty" toml:"name,omitempty"`

	// Undirected selects "graph" with "--" edges instead of "digraph" with "->".
	Undirected bool `json:"undirected,omitempty" toml:"undirected,omitempty"`

	Nodes     []Node     `json:"nodes" toml:"nodes"`
	Edges     []Edge     `json:"edges,omitempty" toml:"edges,omitempty"`
	Subgraphs []Subgraph `json:"subgraphs,omitempty" toml:"subgraphs,omitempty"`

	byID map[string]int
}

// Node is a single graph vertex.
type Node struct {
	// ID must be unique within the graph and convertible to a DOT identifier.
	ID string `json:"id" toml:"id"`

	// Label is the display text. Empty means the node is labelled with its ID.
	Label string `json:"label,omitempty" toml:"label,omitempty"`

	// HTML marks Label as HTML-like content to be emitted verbatim in <...>.
	HTML bool `json:"html,omitempty" toml:"html,omitempty"`

	Style string `json:"style,omitempty" toml:"style,omitempty"`
	Color string `json:"color,omitempty" toml:"color,omitempty"`
	Shape string `json:"shape,omitempty" toml:"shape,omitempty"`
}

// Edge connects two nodes by ID.
type Edge struct {
	From string `json:"from" toml:"from"`
	To   string `json:"to" toml:"to"`

	Label string `json:"label,omitempty" toml:"label,omitempty"`
	HTML  bool   `json:"html,omitempty" toml:"html,omitempty"`
	Style string `json:"style,omitempty" toml:"style,omitempty"`
	Color string `json:"color,omitempty" toml:"color,omitempty"`
}

// Subgraph groups nodes into a cluster block.
type Subgraph struct {
	// ID is the cluster identifier. Empty produces an anonymous block.
	ID string `json:"id,omitempty" toml:"id,omitempty"`

	Label string `json:"label,omitempty" toml:"label,omitempty"`

	// Rank is one of "", "same", "min", "source", "max", "sink".
	Rank string `json:"rank,omitempty" toml:"rank,omitempty"`

	Style string `json:"style,omitempty" toml:"style,omitempty"`
	Color string `json:"color,omitempty" toml:"color,omitempty"`

	// Nodes lists member node IDs.
	Nodes []string `json:"nodes" toml:"nodes"`
}

// New creates an empty directed graph with the given name.
func New(name string) *Graph {
	return &Graph{Name: name}
}

// FromEdges builds a graph from an edge list, deriving the node set from the
// endpoints (sorted, deduplicated). The result is validated.
func FromEdges(name string, edges [][2]string) (*Graph, error) {
	g := New(name)
	seen := make(map[string]bool)
	for _, e := range edges {
		for _, id := range e {
			if !seen[id] {
				seen[id] = true
				g.Nodes = append(g.Nodes, Node{ID: id})
			}
		}
		g.Edges = append(g.Edges, Edge{From: e[0], To: e[1]})
	}
	sortNodes(g.Nodes)
	if err := g.Validate(); err != nil {
		return nil, err
	}
	return g, nil
}

// AddNode appends a node with the given ID and returns it for attribute
// assignment. IDs are not checked here; Validate catches duplicates.
func (g *Graph) AddNode(id string) *Node {
	g.Nodes = append(g.Nodes, Node{ID: id})
	g.byID = nil
	return &g.Nodes[len(g.Nodes)-1]
}

// AddEdge appends an edge and returns it for attribute assignment.
func (g *Graph) AddEdge(from, to string) *Edge {
	g.Edges = append(g.Edges, Edge{From: from, To: to})
	return &g.Edges[len(g.Edges)-1]
}

// Validate checks that the document can be rendered: the graph name and all
// node, subgraph and style fields must be well-formed, node IDs must be
// unique, and every edge endpoint and subgraph member must name an existing
// node. On success the node index used for rendering is (re)built.
func (g *Graph) Validate() error {
	if g.Name != "" {
		if _, err := dot.NewID(g.Name); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidGraph, err, "graph name %q", g.Name)
		}
	}

	byID := make(map[string]int, len(g.Nodes))
	for i, n := range g.Nodes {
		if n.ID == "" {
			return errors.New(errors.ErrCodeInvalidGraph, "node %d has no id", i)
		}
		if _, err := dot.NewID(n.ID); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidGraph, err, "node %q", n.ID)
		}
		if _, dup := byID[n.ID]; dup {
			return errors.New(errors.ErrCodeInvalidGraph, "duplicate node id %q", n.ID)
		}
		byID[n.ID] = i
		if err := checkStyle(n.Style); err != nil {
			return errors.Wrap(errors.GetCode(err), err, "node %q", n.ID)
		}
	}

	for i, e := range g.Edges {
		if _, ok := byID[e.From]; !ok {
			return errors.New(errors.ErrCodeInvalidGraph, "edge %d references unknown node %q", i, e.From)
		}
		if _, ok := byID[e.To]; !ok {
			return errors.New(errors.ErrCodeInvalidGraph, "edge %d references unknown node %q", i, e.To)
		}
		if err := checkStyle(e.Style); err != nil {
			return errors.Wrap(errors.GetCode(err), err, "edge %q -> %q", e.From, e.To)
		}
	}

	for i, s := range g.Subgraphs {
		if s.ID != "" {
			if _, err := dot.NewID(s.ID); err != nil {
				return errors.Wrap(errors.ErrCodeInvalidGraph, err, "subgraph %d", i)
			}
		}
		if _, ok := parseRank(s.Rank); !ok {
			return errors.New(errors.ErrCodeInvalidGraph, "subgraph %d: unknown rank %q", i, s.Rank)
		}
		if err := checkStyle(s.Style); err != nil {
			return errors.Wrap(errors.GetCode(err), err, "subgraph %d", i)
		}
		for _, id := range s.Nodes {
			if _, ok := byID[id]; !ok {
				return errors.New(errors.ErrCodeInvalidGraph, "subgraph %d references unknown node %q", i, id)
			}
		}
	}

	g.byID = byID
	return nil
}

// WriteDOT validates the document and renders it to w.
func (g *Graph) WriteDOT(w io.Writer, opts dot.Options) error {
	if err := g.Validate(); err != nil {
		return err
	}
	return dot.RenderOpts[int, int, int](view{g}, w, opts)
}

// DOT returns the rendered document as a string.
func (g *Graph) DOT(opts dot.Options) (string, error) {
	var sb strings.Builder
	if err := g.WriteDOT(&sb, opts); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func checkStyle(s string) error {
	if s == "" {
		return nil
	}
	if _, ok := dot.ParseStyle(s); !ok {
		return errors.New(errors.ErrCodeInvalidStyle, "unknown style %q", s)
	}
	return nil
}

func parseRank(s string) (dot.Rank, bool) {
	switch s {
	case "":
		return dot.RankNone, true
	case "same":
		return dot.RankSame, true
	case "min":
		return dot.RankMin, true
	case "source":
		return dot.RankSource, true
	case "max":
		return dot.RankMax, true
	case "sink":
		return dot.RankSink, true
	}
	return dot.RankNone, false
}
