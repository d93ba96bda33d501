package simdriver

import (
	"errors"

	"github.com/nodestream/capturegraph/dag"
)

// RecordWork returns a dag.WorkFunc that appends "work:<label>" to the
// stream it is replayed on. Tests and examples use it to build nodes whose
// replay order is observable in the resulting NativeGraphTrace.
func (d *Driver) RecordWork(label string) dag.WorkFunc {
	return func(stream dag.StreamHandle) error {
		s, err := d.lookupStream(stream)
		if err != nil {
			return err
		}
		s.mu.Lock()
		s.log = append(s.log, "work:"+label)
		s.mu.Unlock()
		return nil
	}
}

// FailingWork returns a dag.WorkFunc that always fails with msg, for tests
// that exercise a strategy's failure path.
func FailingWork(msg string) dag.WorkFunc {
	return func(dag.StreamHandle) error {
		return errors.New(msg)
	}
}
