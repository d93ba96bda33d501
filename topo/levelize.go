package topo

import (
	"fmt"

	"github.com/nodestream/capturegraph/dag"
)

// Levelize buckets view's graph by longest-path distance from the roots
// (nodes with an empty Dependents list). Roots receive Level 0; for every
// edge (u, v), Level(v) >= Level(u) + 1 is guaranteed because a node is
// only placed once all of its Dependents have been placed and contributed
// their level, and its Level is the maximum such contribution plus one,
// not the first one observed.
//
// Within each level, nodes are bucketed in the graph's original input
// order (not discovery order), and each node's Idx is its position within
// that bucket. This fixes round-robin stream assignment deterministically
// for a given Graph and node enumeration order.
//
// It resets Visited on every node first and uses it only to flag a node as
// placed (fully processed); Level and Idx are written into view's metadata
// as a side effect and also returned via the bucketed slice.
func Levelize(view *dag.CaptureView) ([][]*dag.Node, error) {
	g := view.Graph()
	nodes := g.Nodes()
	if len(nodes) == 0 {
		return nil, nil
	}
	view.ResetVisited()

	remaining := make(map[*dag.Node]int, len(nodes))
	level := make(map[*dag.Node]int, len(nodes))
	queue := make([]*dag.Node, 0, len(nodes))

	for _, n := range nodes {
		remaining[n] = len(n.Dependents)
		if remaining[n] == 0 {
			level[n] = 0
			view.Meta(n).Visited = true
			queue = append(queue, n)
		}
	}

	maxLevel := 0
	for i := 0; i < len(queue); i++ {
		u := queue[i]
		for _, v := range u.Successors {
			if candidate := level[u] + 1; candidate > level[v] {
				level[v] = candidate
			}
			remaining[v]--
			if remaining[v] == 0 {
				if level[v] > maxLevel {
					maxLevel = level[v]
				}
				view.Meta(v).Visited = true
				queue = append(queue, v)
			}
		}
	}

	if len(queue) != len(nodes) {
		return nil, fmt.Errorf("%w: %d of %d nodes never reached indegree zero", ErrCycleDetected, len(nodes)-len(queue), len(nodes))
	}

	buckets := make([][]*dag.Node, maxLevel+1)
	for _, n := range nodes {
		lv := level[n]
		buckets[lv] = append(buckets[lv], n)
		view.Meta(n).Level = lv
	}
	for _, bucket := range buckets {
		for idx, n := range bucket {
			view.Meta(n).Idx = idx
		}
	}

	return buckets, nil
}
