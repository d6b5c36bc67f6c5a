package dot

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/mfelder/dotwalk/pkg/errors"
)

// Options controls attribute emission during rendering. The zero value
// renders everything the graph supplies.
type Options struct {
	NoNodeLabels bool // omit label attributes on nodes
	NoEdgeLabels bool // omit label attributes on edges
	NoNodeStyles bool // omit style attributes on nodes
	NoEdgeStyles bool // omit style attributes on edges
	NoNodeColors bool // omit color attributes on nodes
	NoEdgeColors bool // omit color attributes on edges
	NoArrows     bool // omit arrowhead/arrowtail attributes

	// Fontname, when set, is applied to the graph, node and edge defaults.
	Fontname string

	// DarkTheme renders a black background with white strokes and text.
	DarkTheme bool
}

// Render renders g into w in DOT syntax with default options.
func Render[N, E, S any](g Graph[N, E, S], w io.Writer) error {
	return RenderOpts(g, w, Options{})
}

// RenderOpts renders g into w in DOT syntax.
//
// Emission order is: header, global attribute statements, subgraph blocks,
// node statements, edge statements, closing brace — each collection in
// exactly the order its enumeration method returns. A write error from w
// aborts the render immediately; the sink may then hold a truncated
// document. Callers needing atomicity should render into a buffer first.
func RenderOpts[N, E, S any](g Graph[N, E, S], w io.Writer, opts Options) error {
	kind := g.Kind()

	// Each statement is assembled in a scratch buffer and handed to the
	// sink in a single Write, so a failing sink never sees a partial
	// statement and no statements are emitted past the failure point.
	var buf bytes.Buffer
	emit := func() error {
		_, err := w.Write(buf.Bytes())
		buf.Reset()
		if err != nil {
			return errors.Wrap(errors.ErrCodeWriteFailed, err, "write to output sink")
		}
		return nil
	}

	fmt.Fprintf(&buf, "%s %s {\n", kind, g.GraphID())
	if err := emit(); err != nil {
		return err
	}

	if err := renderGlobalAttrs(&buf, emit, opts); err != nil {
		return err
	}

	for _, s := range g.Subgraphs() {
		if id, ok := g.SubgraphID(s); ok {
			fmt.Fprintf(&buf, "    subgraph %s {\n", id)
		} else {
			buf.WriteString("    {\n")
		}

		label := g.SubgraphLabel(s)
		if label.IsZero() {
			label = Label("")
		}
		fmt.Fprintf(&buf, "        label=%s;\n", label)
		if r := g.SubgraphRank(s); r != RankNone {
			fmt.Fprintf(&buf, "        rank=%s;\n", r)
		}
		if st := g.SubgraphStyle(s); st != StyleNone {
			fmt.Fprintf(&buf, "        style=\"%s\";\n", st)
		}
		if c := g.SubgraphColor(s); !c.IsZero() {
			fmt.Fprintf(&buf, "        color=%s;\n", c)
		}
		buf.WriteString("\n")

		for _, n := range g.SubgraphNodes(s) {
			fmt.Fprintf(&buf, "        %s;\n", g.NodeID(n))
		}
		buf.WriteString("    }\n\n")
		if err := emit(); err != nil {
			return err
		}
	}

	for _, n := range g.Nodes() {
		id := g.NodeID(n)
		buf.WriteString("    ")
		buf.WriteString(id.String())

		if !opts.NoNodeLabels {
			label := g.NodeLabel(n)
			if label.IsZero() {
				label = Label(id.Name())
			}
			fmt.Fprintf(&buf, "[label=%s]", label)
		}
		if st := g.NodeStyle(n); !opts.NoNodeStyles && st != StyleNone {
			fmt.Fprintf(&buf, "[style=\"%s\"]", st)
		}
		if c := g.NodeColor(n); !opts.NoNodeColors && !c.IsZero() {
			fmt.Fprintf(&buf, "[color=%s]", c)
		}
		if sh := g.NodeShape(n); !sh.IsZero() {
			fmt.Fprintf(&buf, "[shape=%s]", sh)
		}

		buf.WriteString(";\n")
		if err := emit(); err != nil {
			return err
		}
	}

	for _, e := range g.Edges() {
		source := g.NodeID(g.Source(e))
		target := g.NodeID(g.Target(e))
		fmt.Fprintf(&buf, "    %s %s %s", source, kind.edgeOp(), target)

		if !opts.NoEdgeLabels {
			label := g.EdgeLabel(e)
			if label.IsZero() {
				label = Label("")
			}
			fmt.Fprintf(&buf, "[label=%s]", label)
		}
		if st := g.EdgeStyle(e); !opts.NoEdgeStyles && st != StyleNone {
			fmt.Fprintf(&buf, "[style=\"%s\"]", st)
		}
		if c := g.EdgeColor(e); !opts.NoEdgeColors && !c.IsZero() {
			fmt.Fprintf(&buf, "[color=%s]", c)
		}

		if start, end := g.EdgeStartArrow(e), g.EdgeEndArrow(e); !opts.NoArrows && (!start.IsDefault() || !end.IsDefault()) {
			buf.WriteString("[")
			if !end.IsDefault() {
				fmt.Fprintf(&buf, "arrowhead=\"%s\"", end)
			}
			if !start.IsDefault() {
				fmt.Fprintf(&buf, " dir=\"both\" arrowtail=\"%s\"", start)
			}
			buf.WriteString("]")
		}

		buf.WriteString(";\n")
		if err := emit(); err != nil {
			return err
		}
	}

	buf.WriteString("}\n")
	return emit()
}

// renderGlobalAttrs emits the graph/node/edge default-attribute statements
// implied by the Fontname and DarkTheme options. Nothing is written when
// neither option is set.
func renderGlobalAttrs(buf *bytes.Buffer, emit func() error, opts Options) error {
	var graphAttrs, contentAttrs []string
	if opts.Fontname != "" {
		font := fmt.Sprintf("fontname=%q", opts.Fontname)
		graphAttrs = append(graphAttrs, font)
		contentAttrs = append(contentAttrs, font)
	}
	if opts.DarkTheme {
		graphAttrs = append(graphAttrs, `bgcolor="black"`, `fontcolor="white"`)
		contentAttrs = append(contentAttrs, `color="white"`, `fontcolor="white"`)
	}
	if len(graphAttrs) == 0 && len(contentAttrs) == 0 {
		return nil
	}

	content := strings.Join(contentAttrs, " ")
	fmt.Fprintf(buf, "    graph[%s];\n", strings.Join(graphAttrs, " "))
	fmt.Fprintf(buf, "    node[%s];\n", content)
	fmt.Fprintf(buf, "    edge[%s];\n", content)
	return emit()
}
