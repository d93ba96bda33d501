// Package capturegraph turns a DAG of GPU work items into a single native
// executable graph by replaying the work into one or more hardware command
// streams under capture mode.
//
// It answers three questions for the caller: in what order to replay the
// DAG's nodes, onto which stream each node replays, and where cross-stream
// synchronization events must be inserted so every declared dependency is
// honored while independent work still runs in parallel across streams.
//
// Everything lives under flat top-level packages rather than an internal/
// tree:
//
//	dag/         — the Node/Graph data model and per-run Capture Metadata
//	topo/        — topological sort and longest-path levelization
//	sequential/  — single-stream, dependency-order capture strategy
//	roundrobin/  — multi-stream, fork/schedule/join capture strategy
//	capture/     — the StreamPool/EventPool/DriverOps collaborator contracts
//	simdriver/   — an in-process reference implementation of those contracts
//	telemetry/   — OpenTelemetry tracing and metrics for the strategies
//
// This package itself declares no exported API; start with dag.NewGraph to
// describe the work, then sequential.Run or (*roundrobin.Strategy).Run to
// capture it.
package capturegraph
