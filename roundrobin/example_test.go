package roundrobin_test

import (
	"context"
	"fmt"
	"strings"

	"github.com/nodestream/capturegraph/dag"
	"github.com/nodestream/capturegraph/roundrobin"
	"github.com/nodestream/capturegraph/simdriver"
)

// ExampleStrategy_Run captures a diamond-shaped DAG across two streams and
// prints where each work item landed.
//
//	  A
//	 / \
//	B   C
//	 \ /
//	  D
func ExampleStrategy_Run() {
	drv := simdriver.NewDriver()

	a := &dag.Node{ID: "A", Work: drv.RecordWork("A")}
	b := &dag.Node{ID: "B", Work: drv.RecordWork("B")}
	c := &dag.Node{ID: "C", Work: drv.RecordWork("C")}
	d := &dag.Node{ID: "D", Work: drv.RecordWork("D")}
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

	s, err := roundrobin.New(roundrobin.WithNumStreams(2))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	native, err := s.Run(context.Background(), g, drv.StreamPool(), drv.EventPool(), drv, nil)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// Stream IDs are fresh per run; identify stream 0 as the one that
	// began capture, and keep only the work entries.
	trace := native.(*simdriver.NativeGraphTrace)
	works := func(log []string) []string {
		var out []string
		for _, entry := range log {
			if rest, ok := strings.CutPrefix(entry, "work:"); ok {
				out = append(out, rest)
			}
		}
		return out
	}
	for id, log := range trace.Streams {
		if len(log) > 0 && log[0] == "begin_capture" {
			fmt.Println("stream 0:", works(log))
			delete(trace.Streams, id)
		}
	}
	for _, log := range trace.Streams {
		fmt.Println("stream 1:", works(log))
	}

	// Output:
	// stream 0: [A B D]
	// stream 1: [C]
}
