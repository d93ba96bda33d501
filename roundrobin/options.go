package roundrobin

// DefaultNumStreams is the stream count New uses when no WithNumStreams
// option is given.
const DefaultNumStreams = 4

type options struct {
	numStreams int
}

// Option configures a Strategy at construction time.
type Option func(*options)

// WithNumStreams sets the stream count the Strategy distributes nodes
// across. New rejects n < 1; SetNumStreams rejects it the same way after
// construction.
func WithNumStreams(n int) Option {
	return func(o *options) { o.numStreams = n }
}
