package simdriver

import (
	"context"
	"sync"

	"github.com/nodestream/capturegraph/capture"
	"github.com/nodestream/capturegraph/dag"
)

// streamHandle is the dag.StreamHandle implementation returned by this
// package; its identity is the UUID assigned at acquisition time.
type streamHandle struct{ id string }

func (h streamHandle) ID() string { return h.id }

// Stream is the simulated FIFO command queue: capture replays are recorded
// as log entries rather than executed.
type Stream struct {
	id string

	mu        sync.Mutex
	capturing bool
	log       []string
}

// Log returns a snapshot of the stream's recorded entries, for assertions
// in tests and examples.
func (s *Stream) Log() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]string(nil), s.log...)
}

type scopedStream struct {
	driver   *Driver
	stream   *Stream
	released bool
}

func (s *scopedStream) Handle() dag.StreamHandle { return streamHandle{id: s.stream.id} }

func (s *scopedStream) Release() {
	if s.released {
		return
	}
	s.released = true
	s.driver.mu.Lock()
	delete(s.driver.streams, s.stream.id)
	s.driver.mu.Unlock()
}

type streamPool struct{ driver *Driver }

// StreamPool returns a capture.StreamPool backed by d.
func (d *Driver) StreamPool() capture.StreamPool { return streamPool{driver: d} }

func (p streamPool) Acquire(_ context.Context) (capture.ScopedStream, error) {
	s := &Stream{id: newID()}
	p.driver.mu.Lock()
	p.driver.streams[s.id] = s
	p.driver.mu.Unlock()

	return &scopedStream{driver: p.driver, stream: s}, nil
}
