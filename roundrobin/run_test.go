package roundrobin_test

import (
	"context"
	"testing"

	"github.com/nodestream/capturegraph/dag"
	"github.com/nodestream/capturegraph/roundrobin"
	"github.com/nodestream/capturegraph/simdriver"
	"github.com/stretchr/testify/require"
)

func link(parent, child *dag.Node) {
	parent.Successors = append(parent.Successors, child)
	child.Dependents = append(child.Dependents, parent)
}

// streamLogs runs the strategy and returns the map of stream IDs to their
// recorded logs, plus the ID of stream 0 (the only stream that begins and
// ends capture).
func streamLogs(t *testing.T, s *roundrobin.Strategy, g *dag.Graph, drv *simdriver.Driver) (map[string][]string, string) {
	t.Helper()

	native, err := s.Run(context.Background(), g, drv.StreamPool(), drv.EventPool(), drv, nil)
	require.NoError(t, err)

	trace, ok := native.(*simdriver.NativeGraphTrace)
	require.True(t, ok)

	var zero string
	for id, log := range trace.Streams {
		if len(log) > 0 && log[0] == "begin_capture" {
			zero = id
		}
	}
	require.NotEmpty(t, zero, "exactly one stream must begin capture")

	return trace.Streams, zero
}

func TestRun_EmptyGraph(t *testing.T) {
	drv := simdriver.NewDriver()
	s, err := roundrobin.New(roundrobin.WithNumStreams(4))
	require.NoError(t, err)

	g, err := dag.NewGraph()
	require.NoError(t, err)

	logs, zero := streamLogs(t, s, g, drv)
	require.Len(t, logs, 4)
	require.Equal(t, "begin_capture", logs[zero][0])
	require.Equal(t, "end_capture", logs[zero][len(logs[zero])-1])

	for id, log := range logs {
		if id == zero {
			continue
		}
		require.Equal(t, "wait_event:", log[0][:len("wait_event:")])
		require.Equal(t, "record_event:", log[len(log)-1][:len("record_event:")])
	}
}

func TestRun_SingleNode(t *testing.T) {
	drv := simdriver.NewDriver()
	s, err := roundrobin.New(roundrobin.WithNumStreams(4))
	require.NoError(t, err)

	a := &dag.Node{ID: "A", Work: drv.RecordWork("A")}
	g, err := dag.NewGraph(a)
	require.NoError(t, err)

	logs, zero := streamLogs(t, s, g, drv)
	require.Equal(t, []string{"begin_capture"}, logs[zero][:1])
	require.Equal(t, "work:A", logs[zero][2], "A runs on stream 0 after the fork record")

	// A has no successors, so it must not record an event: exactly the
	// fork record plus three join waits appear on stream 0 besides
	// begin/end/work.
	recordCount := 0
	for _, entry := range logs[zero] {
		if len(entry) >= len("record_event:") && entry[:len("record_event:")] == "record_event:" {
			recordCount++
		}
	}
	require.Equal(t, 1, recordCount, "only the fork event is recorded on stream 0")
}

func TestRun_Chain(t *testing.T) {
	drv := simdriver.NewDriver()
	s, err := roundrobin.New(roundrobin.WithNumStreams(2))
	require.NoError(t, err)

	a := &dag.Node{ID: "A", Work: drv.RecordWork("A")}
	b := &dag.Node{ID: "B", Work: drv.RecordWork("B")}
	c := &dag.Node{ID: "C", Work: drv.RecordWork("C")}
	link(a, b)
	link(b, c)

	g, err := dag.NewGraph(a, b, c)
	require.NoError(t, err)

	logs, zero := streamLogs(t, s, g, drv)
	require.Equal(t, []string{"work:A", "work:B", "work:C"}, logs[zero][2:5], "a linear chain stays on stream 0 under round-robin with idx always 0")

	for id, log := range logs {
		if id == zero {
			continue
		}
		require.Len(t, log, 2, "the only other stream just forks in and joins out")
	}
}

func TestRun_Diamond(t *testing.T) {
	drv := simdriver.NewDriver()
	s, err := roundrobin.New(roundrobin.WithNumStreams(2))
	require.NoError(t, err)

	a := &dag.Node{ID: "A", Work: drv.RecordWork("A")}
	b := &dag.Node{ID: "B", Work: drv.RecordWork("B")}
	c := &dag.Node{ID: "C", Work: drv.RecordWork("C")}
	d := &dag.Node{ID: "D", Work: drv.RecordWork("D")}
	link(a, b)
	link(a, c)
	link(b, d)
	link(c, d)

	g, err := dag.NewGraph(a, b, c, d)
	require.NoError(t, err)

	logs, zero := streamLogs(t, s, g, drv)
	var other string
	for id := range logs {
		if id != zero {
			other = id
		}
	}

	require.Equal(t, "work:A", logs[zero][2])
	require.Equal(t, "record_event:", logs[zero][3][:len("record_event:")], "A crosses to C on the other stream, so A records an event")
	require.Equal(t, "work:B", logs[zero][4], "B stays on stream 0 with A and D")
	require.Equal(t, "wait_event:", logs[zero][5][:len("wait_event:")], "D waits on C's event before running")
	require.Equal(t, "work:D", logs[zero][6])

	require.Equal(t, "work:C", logs[other][2], "C runs after waiting on the fork and on A's event")
	require.Equal(t, "wait_event:", logs[other][1][:len("wait_event:")])
	require.Equal(t, "record_event:", logs[other][3][:len("record_event:")], "C crosses to D on stream 0, so C records an event")

	aEvent := logs[zero][3][len("record_event:"):]
	cWaitsOnA := logs[other][1][len("wait_event:"):]
	require.Equal(t, aEvent, cWaitsOnA, "C must wait on the exact event A recorded")

	cEvent := logs[other][3][len("record_event:"):]
	dWaitsOnC := logs[zero][5][len("wait_event:"):]
	require.Equal(t, cEvent, dWaitsOnC, "D must wait on the exact event C recorded")
}

func TestRun_TwoIndependentChains(t *testing.T) {
	drv := simdriver.NewDriver()
	s, err := roundrobin.New(roundrobin.WithNumStreams(2))
	require.NoError(t, err)

	a := &dag.Node{ID: "A", Work: drv.RecordWork("A")}
	b := &dag.Node{ID: "B", Work: drv.RecordWork("B")}
	c := &dag.Node{ID: "C", Work: drv.RecordWork("C")}
	d := &dag.Node{ID: "D", Work: drv.RecordWork("D")}
	link(a, b)
	link(c, d)

	g, err := dag.NewGraph(a, b, c, d)
	require.NoError(t, err)

	logs, zero := streamLogs(t, s, g, drv)
	var other string
	for id := range logs {
		if id != zero {
			other = id
		}
	}

	require.Equal(t, []string{"work:A", "work:B"}, logs[zero][2:4], "A and B share idx%2==0 so both land on stream 0")
	require.Equal(t, []string{"work:C", "work:D"}, logs[other][1:3], "C and D share idx%2==1 so both land on the other stream")

	recordCount := 0
	for _, log := range logs {
		for _, entry := range log {
			if len(entry) >= len("record_event:") && entry[:len("record_event:")] == "record_event:" {
				recordCount++
			}
		}
	}
	require.Equal(t, 2, recordCount, "only the fork and the single join record an event; no edge crosses streams")
}

func TestRun_FanIn(t *testing.T) {
	drv := simdriver.NewDriver()
	s, err := roundrobin.New(roundrobin.WithNumStreams(3))
	require.NoError(t, err)

	preds := make([]*dag.Node, 5)
	for i := range preds {
		preds[i] = &dag.Node{ID: string(rune('A' + i)), Work: drv.RecordWork(string(rune('A' + i)))}
	}
	sink := &dag.Node{ID: "S", Work: drv.RecordWork("S")}
	for _, p := range preds {
		link(p, sink)
	}

	nodes := append(append([]*dag.Node{}, preds...), sink)
	g, err := dag.NewGraph(nodes...)
	require.NoError(t, err)

	logs, zero := streamLogs(t, s, g, drv)

	// idx 0..4 for preds A..E; idx%3 != 0 for idx in {1,2,4} (B, C, E).
	crossStreamPreds := []string{"B", "C", "E"}
	for _, label := range crossStreamPreds {
		found := false
		for id, log := range logs {
			if id == zero {
				continue
			}
			for _, entry := range log {
				if entry == "work:"+label {
					found = true
				}
			}
		}
		require.True(t, found, "predecessor %s must be on a non-zero stream", label)
	}

	recordCount := 0
	for _, log := range logs {
		for _, entry := range log {
			if len(entry) >= len("record_event:") && entry[:len("record_event:")] == "record_event:" {
				recordCount++
			}
		}
	}
	// fork (1) + one event per cross-stream predecessor (3) + joins (N-1=2)
	require.Equal(t, 6, recordCount)

	sinkLog := logs[zero]
	waitCount := 0
	for _, entry := range sinkLog {
		if len(entry) >= len("wait_event:") && entry[:len("wait_event:")] == "wait_event:" {
			waitCount++
		}
	}
	// 3 cross-stream predecessor waits (B, C, E) plus 2 join waits (N-1
	// non-zero streams), all recorded on stream 0.
	require.Equal(t, 5, waitCount)
}
