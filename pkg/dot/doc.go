// Package dot renders arbitrary caller-defined graphs into the Graphviz DOT
// text format.
//
// # Overview
//
// The package decouples graph rendering from graph representation. Callers
// expose their existing graph data through two small capability interfaces —
// [GraphWalk] for structure (nodes, edges, subgraphs, endpoints) and
// [Labeller] for presentation (identifiers, labels, styles, colors, arrows) —
// and [Render] walks those interfaces to emit syntactically valid DOT to any
// io.Writer. No shared base graph type is required; node, edge and subgraph
// handles are opaque type parameters passed back into the capability methods.
//
// # Basic Usage
//
// Implement both capabilities on your graph type (embedding [Defaults] for
// everything optional), then render:
//
//	type edges struct {
//	    dot.Defaults[string, [2]string, struct{}]
//	    list [][2]string
//	}
//
//	func (e *edges) Nodes() []string { ... }
//	func (e *edges) Edges() [][2]string     { return e.list }
//	func (e *edges) Source(p [2]string) string { return p[0] }
//	func (e *edges) Target(p [2]string) string { return p[1] }
//	func (e *edges) GraphID() dot.ID           { return dot.MustID("example") }
//	func (e *edges) NodeID(n string) dot.ID    { return dot.MustID(n) }
//
//	err := dot.Render[string, [2]string, struct{}](g, os.Stdout)
//
// # Identifiers and Labels
//
// [ID] validates a string at construction time and stores its DOT-ready form,
// so rendering never has to re-validate or re-quote. [Text] carries label
// content in one of three variants with distinct escaping rules: [Label]
// (plain text, escaped and quoted), [Esc] (Graphviz escString, backslash
// sequences pass through) and [HTML] (emitted verbatim between angle
// brackets). Exactly one escaping strategy is applied per variant.
//
// # Rendering Contract
//
// Render performs a single forward pass: subgraph blocks first, then one
// statement per node, then one per edge, in exactly the order the
// enumeration methods return them. The renderer imposes no sorting; callers
// wanting deterministic output sort inside their own Nodes/Edges
// implementations. The only failure a render call can produce is a write
// error from the output sink, which aborts the render immediately with no
// partial-output guarantee. Graph queries are treated as pure and must be
// stable for the duration of one call.
package dot
