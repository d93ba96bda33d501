package capture

import (
	"context"
	"fmt"
)

// AcquireStreams acquires n scoped streams from pool, releasing any that
// were already acquired if a later acquisition fails. The returned release
// func must be called on every exit path (the strategies defer it
// immediately after a successful call) and releases in reverse acquisition
// order.
func AcquireStreams(ctx context.Context, pool StreamPool, n int) ([]ScopedStream, func(), error) {
	streams := make([]ScopedStream, 0, n)
	release := func() {
		for i := len(streams) - 1; i >= 0; i-- {
			streams[i].Release()
		}
	}

	for i := 0; i < n; i++ {
		s, err := pool.Acquire(ctx)
		if err != nil {
			release()
			return nil, func() {}, fmt.Errorf("%w: failed to acquire stream %d: %v", ErrDriverFailure, i, err)
		}
		streams = append(streams, s)
	}

	return streams, release, nil
}
