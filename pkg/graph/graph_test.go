package graph

import (
	"strings"
	"testing"

	"github.com/mfelder/dotwalk/pkg/dot"
	"github.com/mfelder/dotwalk/pkg/errors"
)

func TestFromEdges(t *testing.T) {
	g, err := FromEdges("deps", [][2]string{
		{"core", "util"},
		{"app", "core"},
		{"app", "util"},
	})
	if err != nil {
		t.Fatalf("FromEdges: %v", err)
	}

	out, err := g.DOT(dot.Options{})
	if err != nil {
		t.Fatalf("DOT: %v", err)
	}

	want := "digraph deps {\n" +
		"    app[label=\"app\"];\n" +
		"    core[label=\"core\"];\n" +
		"    util[label=\"util\"];\n" +
		"    core -> util[label=\"\"];\n" +
		"    app -> core[label=\"\"];\n" +
		"    app -> util[label=\"\"];\n" +
		"}\n"
	if out != want {
		t.Errorf("unexpected output:\ngot:\n%s\nwant:\n%s", out, want)
	}
}

func TestFromEdgesDedup(t *testing.T) {
	g, err := FromEdges("g", [][2]string{{"a", "b"}, {"b", "a"}})
	if err != nil {
		t.Fatalf("FromEdges: %v", err)
	}
	if len(g.Nodes) != 2 {
		t.Errorf("want 2 nodes, got %d", len(g.Nodes))
	}
}

func TestAttributes(t *testing.T) {
	g := New("styled")
	n := g.AddNode("a")
	n.Label = "start"
	n.Style = "bold"
	n.Color = "red"
	n.Shape = "box"
	g.AddNode("b")
	e := g.AddEdge("a", "b")
	e.Label = "go"
	e.Style = "dotted"
	e.Color = "blue"

	out, err := g.DOT(dot.Options{})
	if err != nil {
		t.Fatalf("DOT: %v", err)
	}

	// Color and shape values are quoted like every other attribute value.
	want := "digraph styled {\n" +
		"    a[label=\"start\"][style=\"bold\"][color=\"red\"][shape=\"box\"];\n" +
		"    b[label=\"b\"];\n" +
		"    a -> b[label=\"go\"][style=\"dotted\"][color=\"blue\"];\n" +
		"}\n"
	if out != want {
		t.Errorf("unexpected output:\ngot:\n%s\nwant:\n%s", out, want)
	}
}

func TestUndirected(t *testing.T) {
	g, err := FromEdges("net", [][2]string{{"a", "b"}})
	if err != nil {
		t.Fatalf("FromEdges: %v", err)
	}
	g.Undirected = true

	out, err := g.DOT(dot.Options{})
	if err != nil {
		t.Fatalf("DOT: %v", err)
	}
	if !strings.HasPrefix(out, "graph net {") {
		t.Errorf("want graph header, got %q", out)
	}
	if !strings.Contains(out, "a -- b") {
		t.Errorf("want -- edge, got %q", out)
	}
}

func TestSubgraphs(t *testing.T) {
	g := New("grouped")
	g.AddNode("a")
	g.AddNode("b")
	g.AddNode("c")
	g.AddEdge("a", "b")
	g.Subgraphs = []Subgraph{
		{ID: "cluster_0", Label: "inputs", Nodes: []string{"a", "b"}},
		{Rank: "same", Nodes: []string{"c"}},
	}

	out, err := g.DOT(dot.Options{})
	if err != nil {
		t.Fatalf("DOT: %v", err)
	}

	want := "digraph grouped {\n" +
		"    subgraph cluster_0 {\n" +
		"        label=\"inputs\";\n" +
		"\n" +
		"        a;\n" +
		"        b;\n" +
		"    }\n" +
		"\n" +
		"    {\n" +
		"        label=\"\";\n" +
		"        rank=same;\n" +
		"\n" +
		"        c;\n" +
		"    }\n" +
		"\n" +
		"    a[label=\"a\"];\n" +
		"    b[label=\"b\"];\n" +
		"    c[label=\"c\"];\n" +
		"    a -> b[label=\"\"];\n" +
		"}\n"
	if out != want {
		t.Errorf("unexpected output:\ngot:\n%s\nwant:\n%s", out, want)
	}
}

func TestHTMLLabels(t *testing.T) {
	g := New("h")
	n := g.AddNode("a")
	n.Label = "<b>bold</b>"
	n.HTML = true

	out, err := g.DOT(dot.Options{})
	if err != nil {
		t.Fatalf("DOT: %v", err)
	}
	if !strings.Contains(out, "a[label=<<b>bold</b>>];") {
		t.Errorf("want verbatim html label, got %q", out)
	}
}

func TestValidateErrors(t *testing.T) {
	tests := []struct {
		name string
		g    *Graph
		code errors.Code
	}{
		{
			name: "empty node id",
			g:    &Graph{Nodes: []Node{{}}},
			code: errors.ErrCodeInvalidGraph,
		},
		{
			name: "invalid node id",
			g:    &Graph{Nodes: []Node{{ID: "bad\x00id"}}},
			code: errors.ErrCodeInvalidGraph,
		},
		{
			name: "duplicate node id",
			g:    &Graph{Nodes: []Node{{ID: "a"}, {ID: "a"}}},
			code: errors.ErrCodeInvalidGraph,
		},
		{
			name: "unknown style",
			g:    &Graph{Nodes: []Node{{ID: "a", Style: "wavy"}}},
			code: errors.ErrCodeInvalidStyle,
		},
		{
			name: "dangling edge",
			g:    &Graph{Nodes: []Node{{ID: "a"}}, Edges: []Edge{{From: "a", To: "zz"}}},
			code: errors.ErrCodeInvalidGraph,
		},
		{
			name: "unknown rank",
			g: &Graph{
				Nodes:     []Node{{ID: "a"}},
				Subgraphs: []Subgraph{{Rank: "middle", Nodes: []string{"a"}}},
			},
			code: errors.ErrCodeInvalidGraph,
		},
		{
			name: "unknown subgraph member",
			g: &Graph{
				Nodes:     []Node{{ID: "a"}},
				Subgraphs: []Subgraph{{Nodes: []string{"b"}}},
			},
			code: errors.ErrCodeInvalidGraph,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.g.Validate()
			if err == nil {
				t.Fatal("want error, got nil")
			}
			if got := errors.GetCode(err); got != tt.code {
				t.Errorf("want code %s, got %s (%v)", tt.code, got, err)
			}
		})
	}
}

func TestValidateQuotedIDs(t *testing.T) {
	g := &Graph{Nodes: []Node{{ID: "with space"}}}
	if err := g.Validate(); err != nil {
		t.Fatalf("quotable id should validate: %v", err)
	}
	out, err := g.DOT(dot.Options{})
	if err != nil {
		t.Fatalf("DOT: %v", err)
	}
	if !strings.Contains(out, "\"with space\"[label=\"with space\"];") {
		t.Errorf("want quoted id statement, got %q", out)
	}
}
