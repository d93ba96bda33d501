package capture

import (
	"context"

	"github.com/nodestream/capturegraph/dag"
)

// CaptureMode selects the driver's stream-capture scope. ModeThreadLocal is
// the only mode the strategies in this module request: it keeps concurrent
// optimizations on sibling threads from interfering through process-wide
// driver state.
type CaptureMode int

const (
	ModeThreadLocal CaptureMode = iota
	ModeGlobal
)

// NativeGraph is the opaque, driver-owned handle produced by EndCapture.
// The optimizer returns it by value and retains no reference to it.
type NativeGraph interface{}

// ScopedStream is a stream handle acquired from a StreamPool. Release must
// be called exactly once, on every exit path, once the handle is no longer
// needed.
type ScopedStream interface {
	Handle() dag.StreamHandle
	Release()
}

// ScopedEvent is the event-handle analog of ScopedStream.
type ScopedEvent interface {
	Handle() dag.EventHandle
	Release()
}

// StreamPool acquires scoped stream handles from an external, per-thread
// resource pool. Construction and lifecycle of the pool itself are outside
// this module's scope.
type StreamPool interface {
	Acquire(ctx context.Context) (ScopedStream, error)
}

// EventPool is the event-handle analog of StreamPool.
type EventPool interface {
	Acquire(ctx context.Context) (ScopedEvent, error)
}

// DriverOps is the low-level driver surface the strategies replay work
// through. Every method returns a status; a non-nil error is always fatal
// and is never retried by the strategies in this module.
type DriverOps interface {
	BeginCapture(ctx context.Context, stream dag.StreamHandle, mode CaptureMode) error
	EndCapture(ctx context.Context, stream dag.StreamHandle) (NativeGraph, error)
	RecordEvent(ctx context.Context, event dag.EventHandle, stream dag.StreamHandle) error
	StreamWaitEvent(ctx context.Context, stream dag.StreamHandle, event dag.EventHandle) error
}
