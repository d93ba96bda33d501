package dag

import "errors"

// Sentinel errors for the dag package.
var (
	// ErrNilGraph indicates a nil *Graph was passed where one was required.
	ErrNilGraph = errors.New("dag: graph is nil")

	// ErrNilNode indicates a nil *Node was supplied to NewGraph.
	ErrNilNode = errors.New("dag: node is nil")

	// ErrInconsistentEdges indicates a Successor/Dependent pair violates the
	// bidirectional-consistency invariant: every successors[i].Dependents
	// list must contain the node that names it as a successor.
	ErrInconsistentEdges = errors.New("dag: successor/dependent lists are inconsistent")
)

// StreamHandle is an opaque reference to a hardware command queue. Its
// identity is the driver value it wraps; implementations are supplied by a
// StreamPool collaborator (see package capture), never constructed here.
type StreamHandle interface {
	// ID returns a stable, driver-scoped identifier for logging and
	// correlation; it is not interpreted by this package.
	ID() string
}

// EventHandle is an opaque reference to a cross-stream synchronization
// object. Once recorded on a stream, a wait against this handle on another
// stream observes all work submitted before the record point.
type EventHandle interface {
	ID() string
}

// WorkFunc enqueues driver commands for one node onto the given stream. It
// is side-effecting and must be invoked at most once per optimize call; the
// strategies in this module guarantee that by construction (each node
// appears exactly once in the schedule they compute).
type WorkFunc func(stream StreamHandle) error

// Node is an opaque DAG node identified by stable identity (its pointer).
// Successors and Dependents are ordered sequences fixed at construction;
// the optimizer reads them but never mutates them.
type Node struct {
	// ID is a caller-assigned label used only for diagnostics, telemetry
	// attributes, and error messages; it need not be unique.
	ID string

	// Successors are the nodes that depend on this node completing first.
	Successors []*Node

	// Dependents are the nodes this node depends on (its predecessors).
	Dependents []*Node

	// Work enqueues this node's driver commands onto the stream it is
	// scheduled on. May be nil for placeholder nodes in tests.
	Work WorkFunc
}

// Metadata holds the mutable Capture Metadata for one Node, valid only for
// the lifetime of the CaptureView that owns it.
type Metadata struct {
	// Level is the BFS distance from the set of roots (longest path from
	// any root), assigned by topo.Levelize.
	Level int

	// Idx is the node's position within its level's bucket, assigned by
	// topo.Levelize in the order the levelizer enumerates that level.
	Idx int

	// Event is set once at least one successor of this node is scheduled
	// on a different stream; nil otherwise.
	Event EventHandle

	// Visited is a transient mark used by topo traversals; reset at the
	// start of each traversal that needs it.
	Visited bool
}
