package dot

// Kind determines whether "digraph" or "graph" is used as the keyword for the
// graph, and with it the edge operator.
type Kind int

const (
	Directed Kind = iota
	Undirected
)

// String returns the graph keyword, "digraph" or "graph".
func (k Kind) String() string {
	if k == Undirected {
		return "graph"
	}
	return "digraph"
}

// edgeOp returns the edge operator syntax for this graph kind.
func (k Kind) edgeOp() string {
	if k == Undirected {
		return "--"
	}
	return "->"
}
