package roundrobin

import (
	"context"
	"fmt"
	"time"

	"github.com/nodestream/capturegraph/capture"
	"github.com/nodestream/capturegraph/dag"
	"github.com/nodestream/capturegraph/telemetry"
	"github.com/nodestream/capturegraph/topo"
)

// Run captures g across s.NumStreams() streams, forking from stream 0,
// scheduling each node onto stream `idx mod N` by level, and joining back
// onto stream 0 before ending capture. tel may be nil.
//
// Any driver failure is fatal: an in-progress capture on stream 0 is ended
// on a best-effort basis before the error is returned, and every acquired
// stream and event is released on every exit path.
func (s *Strategy) Run(ctx context.Context, g *dag.Graph, streamPool capture.StreamPool, eventPool capture.EventPool, drv capture.DriverOps, tel *telemetry.Provider) (capture.NativeGraph, error) {
	ctx, span := tel.StartOptimize(ctx, "round_robin")
	start := time.Now()
	defer func() {
		tel.RecordDuration(ctx, time.Since(start), "round_robin")
		span.End()
	}()

	native, err := s.run(ctx, g, streamPool, eventPool, drv, tel)
	telemetry.RecordOutcome(span, err)
	return native, err
}

func (s *Strategy) run(ctx context.Context, g *dag.Graph, streamPool capture.StreamPool, eventPool capture.EventPool, drv capture.DriverOps, tel *telemetry.Provider) (capture.NativeGraph, error) {
	n := s.NumStreams()

	acquiredStreams, releaseStreams, err := capture.AcquireStreams(ctx, streamPool, n)
	if err != nil {
		return nil, err
	}
	defer releaseStreams()

	streams := make([]dag.StreamHandle, n)
	for i, a := range acquiredStreams {
		streams[i] = a.Handle()
	}

	var acquiredEvents []capture.ScopedEvent
	releaseEvents := func() {
		for i := len(acquiredEvents) - 1; i >= 0; i-- {
			acquiredEvents[i].Release()
		}
	}
	defer releaseEvents()

	acquireEvent := func() (dag.EventHandle, error) {
		ev, err := eventPool.Acquire(ctx)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to acquire event: %v", capture.ErrDriverFailure, err)
		}
		acquiredEvents = append(acquiredEvents, ev)
		return ev.Handle(), nil
	}

	if err := drv.BeginCapture(ctx, streams[0], capture.ModeThreadLocal); err != nil {
		return nil, fmt.Errorf("%w: failed to begin capture: %v", capture.ErrDriverFailure, err)
	}

	view := dag.NewCaptureView(g)
	buckets, err := topo.Levelize(view)
	if err != nil {
		endCaptureBestEffort(ctx, drv, streams[0])
		return nil, err
	}

	// Headroom: one fork, N-1 joins, and roughly one event per
	// cross-stream-producing node, which in practice tracks the level
	// count. Growing past this only reallocates the slice of handles;
	// the handles themselves stay valid.
	acquiredEvents = make([]capture.ScopedEvent, 0, n/2+len(buckets)+n)

	if err := s.fork(ctx, drv, streams, acquireEvent); err != nil {
		endCaptureBestEffort(ctx, drv, streams[0])
		return nil, err
	}

	eventsRecorded := 1 // the fork event
	for _, bucket := range buckets {
		for _, node := range bucket {
			sid := view.Meta(node).Idx % n
			if err := s.scheduleNode(ctx, view, node, sid, n, streams, drv, acquireEvent); err != nil {
				endCaptureBestEffort(ctx, drv, streams[0])
				return nil, err
			}
			if view.Meta(node).Event != nil {
				eventsRecorded++
			}
		}
	}

	if err := s.join(ctx, drv, streams, acquireEvent); err != nil {
		endCaptureBestEffort(ctx, drv, streams[0])
		return nil, err
	}
	eventsRecorded += n - 1

	native, err := drv.EndCapture(ctx, streams[0])
	if err != nil {
		return nil, fmt.Errorf("%w: failed to end capture: %v", capture.ErrDriverFailure, err)
	}

	nodeCount := 0
	for _, bucket := range buckets {
		nodeCount += len(bucket)
	}
	tel.RecordNodesCaptured(ctx, int64(nodeCount), "round_robin")
	tel.RecordEventsRecorded(ctx, int64(eventsRecorded))

	return native, nil
}

// fork records one event on stream 0 and makes every other stream wait on
// it, so every non-zero stream is causally downstream of the start of
// capture.
func (s *Strategy) fork(ctx context.Context, drv capture.DriverOps, streams []dag.StreamHandle, acquireEvent func() (dag.EventHandle, error)) error {
	ev, err := acquireEvent()
	if err != nil {
		return err
	}

	if err := drv.RecordEvent(ctx, ev, streams[0]); err != nil {
		return fmt.Errorf("%w: failed to record fork: %v", capture.ErrDriverFailure, err)
	}

	for i := 1; i < len(streams); i++ {
		if err := drv.StreamWaitEvent(ctx, streams[i], ev); err != nil {
			return fmt.Errorf("%w: stream %d failed to wait on fork: %v", capture.ErrDriverFailure, i, err)
		}
	}

	return nil
}

// join records a join event on every stream 1..N-1 and makes stream 0 wait
// on each of them, so stream 0 is causally downstream of all side streams
// before capture ends.
func (s *Strategy) join(ctx context.Context, drv capture.DriverOps, streams []dag.StreamHandle, acquireEvent func() (dag.EventHandle, error)) error {
	for i := 1; i < len(streams); i++ {
		ev, err := acquireEvent()
		if err != nil {
			return err
		}

		if err := drv.RecordEvent(ctx, ev, streams[i]); err != nil {
			return fmt.Errorf("%w: failed to record join on stream %d: %v", capture.ErrDriverFailure, i, err)
		}
		if err := drv.StreamWaitEvent(ctx, streams[0], ev); err != nil {
			return fmt.Errorf("%w: stream 0 failed to wait on join from stream %d: %v", capture.ErrDriverFailure, i, err)
		}
	}

	return nil
}

// scheduleNode replays a single node already assigned to stream sid:
// inbound sync against any cross-stream dependent, the work call itself,
// and an outbound event if any successor crosses streams.
func (s *Strategy) scheduleNode(ctx context.Context, view *dag.CaptureView, node *dag.Node, sid, n int, streams []dag.StreamHandle, drv capture.DriverOps, acquireEvent func() (dag.EventHandle, error)) error {
	for _, p := range node.Dependents {
		pMeta := view.Meta(p)
		if pMeta.Idx%n == sid {
			continue
		}
		if pMeta.Event == nil {
			return fmt.Errorf("%w: node %q crosses streams from %q but no event was recorded for it", capture.ErrInvariantViolation, node.ID, p.ID)
		}
		if err := drv.StreamWaitEvent(ctx, streams[sid], pMeta.Event); err != nil {
			return fmt.Errorf("%w: node %q failed to wait on predecessor %q: %v", capture.ErrDriverFailure, node.ID, p.ID, err)
		}
	}

	if node.Work != nil {
		if err := node.Work(streams[sid]); err != nil {
			return fmt.Errorf("%w: node %q failed: %v", capture.ErrDriverFailure, node.ID, err)
		}
	}

	crossesStream := false
	for _, succ := range node.Successors {
		if view.Meta(succ).Idx%n != sid {
			crossesStream = true
			break
		}
	}

	if crossesStream {
		ev, err := acquireEvent()
		if err != nil {
			return err
		}
		if err := drv.RecordEvent(ctx, ev, streams[sid]); err != nil {
			return fmt.Errorf("%w: node %q failed to record its event: %v", capture.ErrDriverFailure, node.ID, err)
		}
		view.Meta(node).Event = ev
	}

	return nil
}

func endCaptureBestEffort(ctx context.Context, drv capture.DriverOps, stream dag.StreamHandle) {
	_, _ = drv.EndCapture(ctx, stream)
}
