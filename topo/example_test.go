package topo_test

import (
	"fmt"

	"github.com/nodestream/capturegraph/dag"
	"github.com/nodestream/capturegraph/topo"
)

// ExampleLevelize demonstrates bucketing a diamond-shaped DAG into levels.
//
//	  A
//	 / \
//	B   C
//	 \ /
//	  D
func ExampleLevelize() {
	a, b, c, d := &dag.Node{ID: "A"}, &dag.Node{ID: "B"}, &dag.Node{ID: "C"}, &dag.Node{ID: "D"}
	a.Successors = []*dag.Node{b, c}
	b.Dependents = []*dag.Node{a}
	c.Dependents = []*dag.Node{a}
	b.Successors = []*dag.Node{d}
	c.Successors = []*dag.Node{d}
	d.Dependents = []*dag.Node{b, c}

	g, err := dag.NewGraph(a, b, c, d)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	levels, err := topo.Levelize(dag.NewCaptureView(g))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for lvl, nodes := range levels {
		ids := make([]string, len(nodes))
		for i, n := range nodes {
			ids[i] = n.ID
		}
		fmt.Printf("level %d: %v\n", lvl, ids)
	}

	// Output:
	// level 0: [A]
	// level 1: [B C]
	// level 2: [D]
}
