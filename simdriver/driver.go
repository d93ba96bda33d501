package simdriver

import (
	"context"
	"fmt"
	"sync"

	"github.com/nodestream/capturegraph/capture"
	"github.com/nodestream/capturegraph/dag"
)

// Driver is an in-process stand-in for a real GPU stream-capture driver. It
// implements capture.DriverOps directly and hands out its stream and event
// pools via StreamPool/EventPool. A zero Driver is not usable; build one
// with NewDriver.
type Driver struct {
	mu      sync.Mutex
	streams map[string]*Stream
	events  map[string]*eventRecord
	graphs  map[string]*NativeGraphTrace
}

// NewDriver returns an empty, ready-to-use Driver.
func NewDriver() *Driver {
	return &Driver{
		streams: make(map[string]*Stream),
		events:  make(map[string]*eventRecord),
		graphs:  make(map[string]*NativeGraphTrace),
	}
}

func (d *Driver) lookupStream(h dag.StreamHandle) (*Stream, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	s, ok := d.streams[h.ID()]
	if !ok {
		return nil, fmt.Errorf("simdriver: unknown stream %q", h.ID())
	}
	return s, nil
}

// BeginCapture marks stream as recording. It is an error to begin capture
// on a stream that is already capturing.
func (d *Driver) BeginCapture(_ context.Context, stream dag.StreamHandle, _ capture.CaptureMode) error {
	s, err := d.lookupStream(stream)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.capturing {
		return fmt.Errorf("simdriver: stream %q is already capturing", stream.ID())
	}
	s.capturing = true
	s.log = append(s.log, "begin_capture")
	return nil
}

// EndCapture closes the capture region on stream and snapshots every
// stream's log into a NativeGraphTrace, simulating the single graph handle
// a real driver would hand back for the whole multi-stream region.
func (d *Driver) EndCapture(_ context.Context, stream dag.StreamHandle) (capture.NativeGraph, error) {
	s, err := d.lookupStream(stream)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	if !s.capturing {
		s.mu.Unlock()
		return nil, fmt.Errorf("simdriver: stream %q is not capturing", stream.ID())
	}
	s.capturing = false
	s.log = append(s.log, "end_capture")
	s.mu.Unlock()

	d.mu.Lock()
	defer d.mu.Unlock()

	trace := &NativeGraphTrace{ID: newID(), Streams: make(map[string][]string, len(d.streams))}
	for id, st := range d.streams {
		trace.Streams[id] = st.Log()
	}
	d.graphs[trace.ID] = trace
	return trace, nil
}

// RecordEvent appends a record marker to stream's log and remembers the
// position so a later StreamWaitEvent can validate ordering.
func (d *Driver) RecordEvent(_ context.Context, event dag.EventHandle, stream dag.StreamHandle) error {
	s, err := d.lookupStream(stream)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.log = append(s.log, "record_event:"+event.ID())
	pos := len(s.log)
	s.mu.Unlock()

	d.mu.Lock()
	defer d.mu.Unlock()
	rec, ok := d.events[event.ID()]
	if !ok {
		return fmt.Errorf("simdriver: unknown event %q", event.ID())
	}
	rec.streamID = stream.ID()
	rec.position = pos
	return nil
}

// StreamWaitEvent appends a wait marker to stream's log. Waiting on an
// event that has never been recorded is rejected: a real driver would
// either hang or fault, and surfacing it as an error here is more useful
// for tests that exercise the failure path.
func (d *Driver) StreamWaitEvent(_ context.Context, stream dag.StreamHandle, event dag.EventHandle) error {
	d.mu.Lock()
	rec, ok := d.events[event.ID()]
	d.mu.Unlock()
	if !ok {
		return fmt.Errorf("simdriver: unknown event %q", event.ID())
	}
	if rec.streamID == "" {
		return fmt.Errorf("simdriver: event %q waited on before being recorded", event.ID())
	}

	s, err := d.lookupStream(stream)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.log = append(s.log, "wait_event:"+event.ID())
	s.mu.Unlock()
	return nil
}

// NativeGraphTrace is the capture.NativeGraph this driver produces: a
// snapshot of every stream's recorded log at the moment capture ended, kept
// around so tests can assert on replay order, stream assignment, and event
// placement directly instead of re-deriving them.
type NativeGraphTrace struct {
	ID      string
	Streams map[string][]string
}

// Graph looks up a previously produced trace by ID, mainly useful in tests
// that want to re-fetch a trace without threading the return value through.
func (d *Driver) Graph(id string) (*NativeGraphTrace, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	g, ok := d.graphs[id]
	return g, ok
}
