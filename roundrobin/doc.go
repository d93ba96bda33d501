// Package roundrobin implements the Round-Robin capture strategy: it
// distributes a Graph's nodes across N streams by level and by position
// within a level, inserting cross-stream synchronization events only where
// an edge actually crosses a stream boundary.
//
// What it does. Given a levelized Graph (see package topo) and a stream
// count N, it replays every node onto stream `idx mod N`, where idx is the
// node's position within its level's bucket. A fork event makes every
// non-zero stream causally downstream of the start of capture; a join
// event per non-zero stream makes stream 0 causally downstream of
// everything before the capture ends. A per-node event is recorded only
// when at least one of that node's successors lands on a different
// stream, and every cross-stream successor's inbound wait reuses that same
// event — at most one event per node regardless of fan-out.
//
// Why a dedicated package. The fork/schedule/join protocol has enough
// moving parts (event accounting, stream assignment, failure rollback)
// that folding it into sequential would have obscured the simpler
// strategy; the two strategies are siblings, not variants of one package.
//
// Complexity. O(V + E) driver calls: one work call and at most one record
// per node, at most one wait per cross-stream edge, plus O(N) for fork and
// join.
//
// Errors. capture.ErrInvalidArgument from New/SetNumStreams when n < 1;
// capture.ErrDriverFailure wraps any failed driver call, fatal and
// unretried; capture.ErrInvariantViolation surfaces a detected scheduling
// inconsistency (a cross-stream edge whose producer never recorded an
// event).
//
// Functions. New constructs a Strategy; NumStreams/SetNumStreams read and
// update its stream count; Run executes the protocol against a Graph.
package roundrobin
