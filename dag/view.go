package dag

// CaptureView holds the Capture Metadata produced by one optimize call. It
// is created fresh per call (see NewCaptureView) so there is never stale
// Level/Idx/Event/Visited state to reset between runs, even if the same
// Graph is optimized more than once.
//
// A CaptureView is not safe for concurrent writers: each optimize
// invocation runs on a single caller thread and owns its view outright,
// so no locking is performed here.
type CaptureView struct {
	graph *Graph
	meta  map[*Node]*Metadata
}

// NewCaptureView allocates a zero-valued Metadata entry for every node in g.
func NewCaptureView(g *Graph) *CaptureView {
	nodes := g.Nodes()
	meta := make(map[*Node]*Metadata, len(nodes))
	for _, n := range nodes {
		meta[n] = &Metadata{}
	}

	return &CaptureView{graph: g, meta: meta}
}

// Graph returns the Graph this view was created from.
func (v *CaptureView) Graph() *Graph {
	return v.graph
}

// Meta returns the mutable Metadata for n. It panics if n does not belong
// to the Graph this view was built from, which indicates a programming
// error in the caller (the topo/sequential/roundrobin packages never do
// this; it would mean a Node leaked in from a different Graph).
func (v *CaptureView) Meta(n *Node) *Metadata {
	m, ok := v.meta[n]
	if !ok {
		panic("dag: node does not belong to this CaptureView's graph")
	}

	return m
}

// ResetVisited clears the Visited mark on every node, as required before
// each fresh traversal (topological sort, levelization).
func (v *CaptureView) ResetVisited() {
	for _, m := range v.meta {
		m.Visited = false
	}
}
