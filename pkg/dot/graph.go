package dot

// GraphWalk is the structural capability: an abstraction over a graph made
// up of opaque node handles N, edge handles E and subgraph handles S, where
// each edge can be mapped to its source and target nodes.
//
// All methods are read-only queries. The renderer may call each of them any
// number of times during one render and assumes the returned sequences are
// stable (same elements, same order is not required across methods but the
// same method must keep returning the same sequence). Implementations may
// return slices into internal state or build fresh slices per call.
type GraphWalk[N, E, S any] interface {
	// Nodes returns all nodes in the graph, in emission order. The sequence
	// is assumed to cover every node referenced by Edges and SubgraphNodes;
	// a node missing from it is rendered edge-only with the implicit
	// default shape, not reported as an error.
	Nodes() []N

	// Edges returns all edges in the graph, in emission order.
	Edges() []E

	// Source returns the source node of e.
	Source(e E) N

	// Target returns the target node of e.
	Target(e E) N

	// Subgraphs returns all subgraphs, in emission order. Return nil for
	// graphs without subgraphs.
	Subgraphs() []S

	// SubgraphNodes returns the nodes belonging to s. Membership is not
	// ownership: a node may appear in zero, one or several subgraphs.
	SubgraphNodes(s S) []N
}

// Labeller is the presentation capability: it supplies DOT identifiers for
// the graph and its nodes, and optionally labels, styles, colors and arrows.
//
// GraphID and NodeID are required; NodeID must be injective over the node
// set. The renderer does not verify injectivity — colliding ids silently
// merge nodes in the Graphviz output. Everything else has a zero-value
// default; embed [Defaults] to inherit them all.
type Labeller[N, E, S any] interface {
	// GraphID names the generated digraph/graph.
	GraphID() ID

	// NodeID maps n to its unique DOT identifier.
	NodeID(n N) ID

	// NodeLabel maps n to its display label. The zero Text defaults to the
	// output of NodeID.
	NodeLabel(n N) Text

	// NodeStyle maps n to a style keyword; StyleNone omits the attribute.
	NodeStyle(n N) Style

	// NodeColor maps n to a graphviz color name; the zero Text omits the
	// attribute.
	NodeColor(n N) Text

	// NodeShape maps n to a graphviz shape name; the zero Text omits the
	// attribute, leaving the Graphviz default shape.
	NodeShape(n N) Text

	// EdgeLabel maps e to its display label. The zero Text defaults to the
	// empty string.
	EdgeLabel(e E) Text

	// EdgeStyle maps e to a style keyword; StyleNone omits the attribute.
	EdgeStyle(e E) Style

	// EdgeColor maps e to a graphviz color name; the zero Text omits the
	// attribute.
	EdgeColor(e E) Text

	// EdgeStartArrow maps e to the arrow at its tail. A non-default start
	// arrow switches the edge to dir="both" with an arrowtail attribute.
	EdgeStartArrow(e E) Arrow

	// EdgeEndArrow maps e to the arrow at its head.
	EdgeEndArrow(e E) Arrow

	// SubgraphID maps s to its identifier. Returning ok=false renders the
	// subgraph as an anonymous brace-delimited block. Prefix the identifier
	// with "cluster_" to have Graphviz draw the subgraph in its own
	// rectangle.
	SubgraphID(s S) (id ID, ok bool)

	// SubgraphLabel maps s to its label; the zero Text defaults to the
	// empty string.
	SubgraphLabel(s S) Text

	// SubgraphStyle maps s to a style keyword; StyleNone omits the
	// statement.
	SubgraphStyle(s S) Style

	// SubgraphColor maps s to a graphviz color name; the zero Text omits
	// the statement.
	SubgraphColor(s S) Text

	// SubgraphRank maps s to a rank constraint for its members; RankNone
	// omits the statement.
	SubgraphRank(s S) Rank

	// Kind selects digraph or graph output. Defaults to Directed.
	Kind() Kind
}

// Graph is what [Render] consumes: a type satisfying both capabilities.
type Graph[N, E, S any] interface {
	GraphWalk[N, E, S]
	Labeller[N, E, S]
}

// Rank is the rank constraint emitted inside a subgraph block, hinting
// Graphviz to place the subgraph's nodes on the same rank (or at the
// extremes). RankNone emits nothing.
type Rank int

const (
	RankNone Rank = iota
	RankSame
	RankMin
	RankSource
	RankMax
	RankSink
)

var rankNames = [...]string{
	RankNone:   "",
	RankSame:   "same",
	RankMin:    "min",
	RankSource: "source",
	RankMax:    "max",
	RankSink:   "sink",
}

// String returns the rank keyword, or the empty string for RankNone.
func (r Rank) String() string {
	if r < 0 || int(r) >= len(rankNames) {
		return ""
	}
	return rankNames[r]
}

// Defaults provides the default implementation of every optional capability
// method, so implementers only write the structural walk plus GraphID and
// NodeID. Embed it in the graph type:
//
//	type myGraph struct {
//	    dot.Defaults[myNode, myEdge, mySub]
//	    ...
//	}
//
// Any method defined on the outer type shadows the embedded default.
type Defaults[N, E, S any] struct{}

func (Defaults[N, E, S]) Subgraphs() []S { return nil }
func (Defaults[N, E, S]) SubgraphNodes(S) []N { return nil }
func (Defaults[N, E, S]) NodeLabel(N) Text { return Text{} }
func (Defaults[N, E, S]) NodeStyle(N) Style { return StyleNone }
func (Defaults[N, E, S]) NodeColor(N) Text { return Text{} }
func (Defaults[N, E, S]) NodeShape(N) Text { return Text{} }
func (Defaults[N, E, S]) EdgeLabel(E) Text { return Text{} }
func (Defaults[N, E, S]) EdgeStyle(E) Style { return StyleNone }
func (Defaults[N, E, S]) EdgeColor(E) Text { return Text{} }
func (Defaults[N, E, S]) EdgeStartArrow(E) Arrow { return Arrow{} }
func (Defaults[N, E, S]) EdgeEndArrow(E) Arrow { return Arrow{} }
func (Defaults[N, E, S]) SubgraphID(S) (ID, bool) { return ID{}, false }
func (Defaults[N, E, S]) SubgraphLabel(S) Text { return Text{} }
func (Defaults[N, E, S]) SubgraphStyle(S) Style { return StyleNone }
func (Defaults[N, E, S]) SubgraphColor(S) Text { return Text{} }
func (Defaults[N, E, S]) SubgraphRank(S) Rank { return RankNone }
func (Defaults[N, E, S]) Kind() Kind { return Directed }
