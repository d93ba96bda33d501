// Package sequential implements the Sequential capture strategy: it
// replays every node of a Graph onto a single stream in topological
// order, producing one native graph handle with no cross-stream
// synchronization whatsoever. It is the baseline strategy the
// Round-Robin strategy (package roundrobin) generalizes.
package sequential
