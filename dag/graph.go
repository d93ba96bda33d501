package dag

import "fmt"

// Graph is an immutable view over a caller-built DAG: a fixed sequence of
// Nodes in the order the caller supplied them. The optimizer never adds,
// removes, or reorders nodes; it only reads Successors/Dependents/Work and
// writes into a CaptureView obtained via NewCaptureView.
type Graph struct {
	nodes []*Node
}

// NewGraph builds a Graph from nodes, preserving their input order (which
// fixes topological-sort and round-robin determinism downstream). It
// rejects a nil node outright; it does not otherwise inspect topology
// (acyclicity and bidirectional consistency are the caller's
// responsibility per the Data Model, though ValidateConsistency is
// available to check the latter).
func NewGraph(nodes ...*Node) (*Graph, error) {
	cp := make([]*Node, len(nodes))
	for i, n := range nodes {
		if n == nil {
			return nil, fmt.Errorf("%w: at index %d", ErrNilNode, i)
		}
		cp[i] = n
	}

	return &Graph{nodes: cp}, nil
}

// Nodes returns the graph's nodes in their original input order. The
// returned slice is the Graph's immutable backing storage and must not be
// modified by callers.
func (g *Graph) Nodes() []*Node {
	if g == nil {
		return nil
	}

	return g.nodes
}

// Roots returns every node with an empty Dependents list: the set BFS
// levelization starts from.
func (g *Graph) Roots() []*Node {
	if g == nil {
		return nil
	}

	roots := make([]*Node, 0, len(g.nodes))
	for _, n := range g.nodes {
		if len(n.Dependents) == 0 {
			roots = append(roots, n)
		}
	}

	return roots
}

// ValidateConsistency checks bidirectional edge consistency: for every node
// u and every successor v of u, v's Dependents list must contain u. This is O(V*d)
// and is intended for tests and debug builds, not the optimize hot path.
func (g *Graph) ValidateConsistency() error {
	if g == nil {
		return ErrNilGraph
	}

	for _, u := range g.nodes {
		for _, v := range u.Successors {
			if !containsNode(v.Dependents, u) {
				return fmt.Errorf("%w: %q -> %q missing from %q.Dependents", ErrInconsistentEdges, u.ID, v.ID, v.ID)
			}
		}
	}

	return nil
}

func containsNode(haystack []*Node, needle *Node) bool {
	for _, n := range haystack {
		if n == needle {
			return true
		}
	}

	return false
}
