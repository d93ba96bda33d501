package simdriver

import "github.com/google/uuid"

// newID tags every acquired stream and event handle with a fresh UUID so
// telemetry spans and log lines can correlate a run's acquisitions without
// leaking pointer identity.
func newID() string {
	return uuid.NewString()
}
