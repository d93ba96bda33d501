package sequential_test

import (
	"context"
	"fmt"

	"github.com/nodestream/capturegraph/dag"
	"github.com/nodestream/capturegraph/sequential"
	"github.com/nodestream/capturegraph/simdriver"
)

func ExampleRun() {
	drv := simdriver.NewDriver()

	a := &dag.Node{ID: "A", Work: drv.RecordWork("A")}
	b := &dag.Node{ID: "B", Work: drv.RecordWork("B")}
	a.Successors = append(a.Successors, b)
	b.Dependents = append(b.Dependents, a)

	g, err := dag.NewGraph(a, b)
	if err != nil {
		fmt.Println(err)
		return
	}

	native, err := sequential.Run(context.Background(), g, drv.StreamPool(), drv, nil)
	if err != nil {
		fmt.Println(err)
		return
	}

	trace := native.(*simdriver.NativeGraphTrace)
	for _, log := range trace.Streams {
		fmt.Println(log)
	}
	// Output:
	// [begin_capture work:A work:B end_capture]
}
