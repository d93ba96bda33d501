// Package capture defines the external collaborator contracts the capture
// strategies are built against — StreamPool, EventPool, and DriverOps — and
// the three error kinds those collaborators and the strategies can surface.
//
// None of these are implemented here: construction of per-thread stream and
// event pools, and the driver binding itself, belong to the runtime that
// embeds the optimizer. The simdriver package provides a concrete,
// in-process reference implementation used by this module's own tests and
// examples.
package capture
