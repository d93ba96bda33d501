package capture

import "errors"

// Sentinel error kinds surfaced by the capture strategies and the
// collaborators they depend on. Callers compare with errors.Is; the
// concrete wrapping always names the failing driver primitive and the
// local reason.
var (
	// ErrInvalidArgument is returned at a configuration call site, e.g.
	// setting a Round-Robin stream count to zero.
	ErrInvalidArgument = errors.New("capture: invalid argument")

	// ErrDriverFailure wraps any failed driver call made during capture,
	// record, or wait. It is always fatal; nothing is retried.
	ErrDriverFailure = errors.New("capture: driver failure")

	// ErrInvariantViolation marks a detected violation of a capture
	// invariant, such as a missing recorded event for a scheduled
	// cross-stream edge. Implementations may elide some of these checks
	// in release builds.
	ErrInvariantViolation = errors.New("capture: invariant violation")
)
