package topo

import (
	"errors"
	"fmt"

	"github.com/nodestream/capturegraph/dag"
)

// ErrCycleDetected is returned when a traversal cannot account for every
// node in the graph, which (for a well-formed acyclic input) can only
// happen if the input is not actually a DAG. Detection is best-effort in
// TopologicalSort and exact in Levelize.
var ErrCycleDetected = errors.New("topo: cycle detected")

type frameState int

const (
	stateEnter frameState = iota
	stateExit
)

type frame struct {
	node  *dag.Node
	state frameState
}

// TopologicalSort computes a reverse-postorder traversal of view's graph:
// for every edge (u, v), u appears before v in the returned sequence.
//
// It resets the Visited mark on every node first, then iterates nodes in
// their stored order, starting a DFS from any node not yet visited. Each
// node is pushed onto an explicit stack twice: once to mark it visited and
// push its unvisited successors (in reverse order, so the first successor
// is explored first), and once more to emit it in post-order once popped a
// second time. The collected post-order is reversed in place to produce
// the topological order.
func TopologicalSort(view *dag.CaptureView) ([]*dag.Node, error) {
	g := view.Graph()
	nodes := g.Nodes()
	view.ResetVisited()

	order := make([]*dag.Node, 0, len(nodes))
	stack := make([]frame, 0, len(nodes))

	for _, start := range nodes {
		if view.Meta(start).Visited {
			continue
		}

		stack = append(stack, frame{node: start, state: stateEnter})
		for len(stack) > 0 {
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			if top.state == stateExit {
				order = append(order, top.node)
				continue
			}

			m := view.Meta(top.node)
			if m.Visited {
				continue
			}
			m.Visited = true

			stack = append(stack, frame{node: top.node, state: stateExit})

			succs := top.node.Successors
			for i := len(succs) - 1; i >= 0; i-- {
				s := succs[i]
				if !view.Meta(s).Visited {
					stack = append(stack, frame{node: s, state: stateEnter})
				}
			}
		}
	}

	for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
		order[i], order[j] = order[j], order[i]
	}

	if err := verifyOrder(order); err != nil {
		return nil, err
	}

	return order, nil
}

// verifyOrder is a best-effort cycle check: for every node, every
// successor must appear later in the sequence. A well-formed acyclic input
// never triggers it; it exists to surface malformed input with a clear
// error instead of a silently invalid schedule.
func verifyOrder(order []*dag.Node) error {
	position := make(map[*dag.Node]int, len(order))
	for i, n := range order {
		position[n] = i
	}
	for _, n := range order {
		for _, s := range n.Successors {
			if position[s] <= position[n] {
				return fmt.Errorf("%w: %q does not precede successor %q", ErrCycleDetected, n.ID, s.ID)
			}
		}
	}

	return nil
}
