// Package topo provides the two traversal primitives the capture strategies
// share: a deterministic topological sort and a longest-path levelization.
//
// What:
//
//   - TopologicalSort: iterative, two-pass ("visit then emit") DFS producing
//     a reverse-postorder sequence such that every predecessor precedes its
//     successors. A node is pushed onto the work stack twice; the second
//     pop emits it.
//   - Levelize: Kahn-style longest-path BFS. A node's Level is the length
//     of the longest path from any root, not the first-discovered path;
//     a first-discovered level can undercount when several paths of
//     different lengths reach the same node.
//
// Why:
//
//   - Sequential capture needs any valid topological order.
//   - Round-robin capture needs levels so that independent nodes at the
//     same level can be fanned out across streams, and needs longest-path
//     levels specifically so that level(v) > level(u) holds for every edge
//     (u, v) — a level computed from the first-discovered path can violate
//     that when multiple paths of different lengths reach v.
//
// Complexity:
//
//   - TopologicalSort: O(V + E) time, O(V + E) extra space (a node can be
//     pushed once per incoming edge before it is first visited).
//   - Levelize:        O(V + E) time, O(V) extra space.
//
// Errors:
//
//   - ErrCycleDetected reported by both functions (best-effort for
//     TopologicalSort, exact for Levelize, which cannot terminate with
//     every node placed unless the graph is acyclic).
//
// Functions:
//
//   - TopologicalSort(view *dag.CaptureView) ([]*dag.Node, error)
//   - Levelize(view *dag.CaptureView) ([][]*dag.Node, error)
package topo
