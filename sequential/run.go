package sequential

import (
	"context"
	"fmt"
	"time"

	"github.com/nodestream/capturegraph/capture"
	"github.com/nodestream/capturegraph/dag"
	"github.com/nodestream/capturegraph/telemetry"
	"github.com/nodestream/capturegraph/topo"
)

// Run captures g onto a single stream acquired from streams, replaying
// nodes in topological order, and returns the resulting native graph
// handle. tel may be nil; every telemetry call is then a no-op.
//
// Any driver failure during begin/end capture or node work is fatal: an
// in-progress capture is ended on a best-effort basis before the error is
// returned, and the acquired stream is always released.
func Run(ctx context.Context, g *dag.Graph, streams capture.StreamPool, drv capture.DriverOps, tel *telemetry.Provider) (capture.NativeGraph, error) {
	ctx, span := tel.StartOptimize(ctx, "sequential")
	start := time.Now()
	defer func() {
		tel.RecordDuration(ctx, time.Since(start), "sequential")
		span.End()
	}()

	native, err := run(ctx, g, streams, drv, tel)
	telemetry.RecordOutcome(span, err)
	return native, err
}

func run(ctx context.Context, g *dag.Graph, streams capture.StreamPool, drv capture.DriverOps, tel *telemetry.Provider) (capture.NativeGraph, error) {
	acquired, release, err := capture.AcquireStreams(ctx, streams, 1)
	if err != nil {
		return nil, err
	}
	defer release()
	stream := acquired[0].Handle()

	if err := drv.BeginCapture(ctx, stream, capture.ModeThreadLocal); err != nil {
		return nil, fmt.Errorf("%w: failed to begin capture: %v", capture.ErrDriverFailure, err)
	}

	order, err := topo.TopologicalSort(dag.NewCaptureView(g))
	if err != nil {
		endCaptureBestEffort(ctx, drv, stream)
		return nil, err
	}

	for _, n := range order {
		if n.Work == nil {
			continue
		}
		if err := n.Work(stream); err != nil {
			endCaptureBestEffort(ctx, drv, stream)
			return nil, fmt.Errorf("%w: node %q failed: %v", capture.ErrDriverFailure, n.ID, err)
		}
	}

	native, err := drv.EndCapture(ctx, stream)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to end capture: %v", capture.ErrDriverFailure, err)
	}

	tel.RecordNodesCaptured(ctx, int64(len(order)), "sequential")
	return native, nil
}

// endCaptureBestEffort ends an in-progress capture before a fatal error is
// propagated. Its own error is deliberately discarded: the original
// failure is what the caller needs.
func endCaptureBestEffort(ctx context.Context, drv capture.DriverOps, stream dag.StreamHandle) {
	_, _ = drv.EndCapture(ctx, stream)
}
