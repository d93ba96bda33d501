// Package simdriver is a reference, in-process implementation of the
// capture.StreamPool, capture.EventPool, and capture.DriverOps
// collaborators. GPU stream-capture driver APIs are a C/C++-only surface,
// so this package simulates one instead: a "stream" is a single FIFO
// command log guarded by a mutex, and an "event" is a handle recording its
// owning stream's submission count at the moment it was recorded. It
// exists so this module's own tests and examples have something runnable
// to drive the strategies against; production embedders supply their own
// implementations over a real driver.
package simdriver
