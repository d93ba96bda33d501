package roundrobin

import (
	"fmt"
	"sync"

	"github.com/nodestream/capturegraph/capture"
)

// Strategy holds the Round-Robin configuration: currently just the stream
// count, but kept as a struct (rather than a bare int parameter to Run) so
// future configuration knobs have somewhere to live without breaking
// Run's signature.
type Strategy struct {
	mu         sync.RWMutex
	numStreams int
}

// New builds a Strategy. With no options, NumStreams() is DefaultNumStreams.
func New(opts ...Option) (*Strategy, error) {
	cfg := options{numStreams: DefaultNumStreams}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.numStreams < 1 {
		return nil, fmt.Errorf("%w: num_streams must be >= 1, got %d", capture.ErrInvalidArgument, cfg.numStreams)
	}

	return &Strategy{numStreams: cfg.numStreams}, nil
}

// NumStreams returns the configured stream count.
func (s *Strategy) NumStreams() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.numStreams
}

// SetNumStreams updates the stream count. It rejects n < 1 without
// modifying the current configuration.
func (s *Strategy) SetNumStreams(n int) error {
	if n < 1 {
		return fmt.Errorf("%w: num_streams must be >= 1, got %d", capture.ErrInvalidArgument, n)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.numStreams = n
	return nil
}
