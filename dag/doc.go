// Package dag defines the immutable Graph View the capture optimizer reads,
// and the per-run Capture Metadata side table the optimizer writes.
//
// What:
//
//   - Node: an opaque DAG node identified by its pointer (its ID is only a
//     diagnostic label), carrying ordered Successors/Dependents references
//     and a Work action.
//   - Graph: an immutable set of Nodes built once from caller-supplied
//     topology; the optimizer never mutates it.
//   - CaptureView: a fresh, per-optimize-call side table of mutable Capture
//     Metadata (Level, Idx, Event, Visited) keyed by Node identity.
//
// Why:
//
//   - The optimizer must read topology without being able to corrupt it, and
//     must accumulate scheduling state (level, stream assignment, recorded
//     event) without that state leaking between runs or between concurrent
//     optimizations of different graphs.
//   - Keeping metadata in a side table, rather than on Node itself, means a
//     Graph can be optimized repeatedly (e.g. once per strategy comparison)
//     without ever needing to reset fields on the caller's nodes.
//
// Complexity:
//
//   - NewGraph:       O(V)
//   - NewCaptureView: O(V)
//   - Graph.Nodes:    O(1) (returns the immutable backing slice)
//
// Errors:
//
//   - ErrNilNode            a nil *Node was supplied to NewGraph
//   - ErrInconsistentEdges  a Successor/Dependent pair fails bidirectional
//     consistency (only checked by the optional ValidateConsistency)
//
// Functions:
//
//   - NewGraph(nodes ...*Node) (*Graph, error)
//   - NewCaptureView(g *Graph) *CaptureView
package dag
