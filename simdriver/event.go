package simdriver

import (
	"context"

	"github.com/nodestream/capturegraph/capture"
	"github.com/nodestream/capturegraph/dag"
)

// eventHandle is the dag.EventHandle implementation returned by this
// package; its identity is the UUID assigned at acquisition time.
type eventHandle struct{ id string }

func (h eventHandle) ID() string { return h.id }

// eventRecord tracks where (and whether) an event has been recorded. An
// event waited on before it is recorded is a misuse the driver rejects,
// mirroring a real capture API's undefined behavior for the same mistake.
type eventRecord struct {
	id       string
	streamID string
	position int
}

type scopedEvent struct {
	driver   *Driver
	id       string
	released bool
}

func (e *scopedEvent) Handle() dag.EventHandle { return eventHandle{id: e.id} }

func (e *scopedEvent) Release() {
	if e.released {
		return
	}
	e.released = true
	e.driver.mu.Lock()
	delete(e.driver.events, e.id)
	e.driver.mu.Unlock()
}

type eventPool struct{ driver *Driver }

// EventPool returns a capture.EventPool backed by d.
func (d *Driver) EventPool() capture.EventPool { return eventPool{driver: d} }

func (p eventPool) Acquire(_ context.Context) (capture.ScopedEvent, error) {
	rec := &eventRecord{id: newID()}
	p.driver.mu.Lock()
	p.driver.events[rec.id] = rec
	p.driver.mu.Unlock()

	return &scopedEvent{driver: p.driver, id: rec.id}, nil
}
