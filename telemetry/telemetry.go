// Package telemetry instruments the capture strategies with OpenTelemetry
// tracing and metrics: one span per optimize call, counters for nodes
// captured and cross-stream events recorded, and a duration histogram.
// It is purely observational and never influences scheduling decisions.
package telemetry

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/nodestream/capturegraph"

// Provider wraps a tracer and the counters/histogram the strategies report
// to. A nil *Provider is valid and makes every method a no-op, so callers
// that do not care about observability can pass nil instead of threading a
// sentinel through every call.
type Provider struct {
	tracer trace.Tracer

	nodesCaptured  metric.Int64Counter
	eventsRecorded metric.Int64Counter
	duration       metric.Float64Histogram
}

// NewProvider builds a Provider against the process-global OTel tracer and
// meter providers. Callers that want real export wiring set the global
// providers (via otel.SetTracerProvider / otel.SetMeterProvider) before
// calling NewProvider; otherwise the no-op implementations are used and
// every call here is nearly free.
func NewProvider() (*Provider, error) {
	meter := otel.Meter(instrumentationName)

	nodesCaptured, err := meter.Int64Counter(
		"capturegraph.nodes_captured",
		metric.WithDescription("number of DAG nodes replayed into a captured graph"),
	)
	if err != nil {
		return nil, err
	}

	eventsRecorded, err := meter.Int64Counter(
		"capturegraph.events_recorded",
		metric.WithDescription("number of cross-stream synchronization events recorded"),
	)
	if err != nil {
		return nil, err
	}

	duration, err := meter.Float64Histogram(
		"capturegraph.optimize_duration",
		metric.WithDescription("wall-clock duration of one optimize call"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	return &Provider{
		tracer:         otel.Tracer(instrumentationName),
		nodesCaptured:  nodesCaptured,
		eventsRecorded: eventsRecorded,
		duration:       duration,
	}, nil
}

// StartOptimize opens a span for one optimize call under the given
// strategy name ("sequential" or "round_robin"). The caller must End the
// returned span. Safe to call on a nil Provider; it returns ctx unchanged
// and a no-op span.
func (p *Provider) StartOptimize(ctx context.Context, strategy string) (context.Context, trace.Span) {
	if p == nil {
		return ctx, trace.SpanFromContext(context.Background())
	}

	return p.tracer.Start(ctx, "capturegraph.optimize", trace.WithAttributes(
		attribute.String("capturegraph.strategy", strategy),
	))
}

// RecordOutcome sets the span's status and, on failure, records the error.
func RecordOutcome(span trace.Span, err error) {
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		span.RecordError(err)
		return
	}
	span.SetStatus(codes.Ok, "")
}

// RecordNodesCaptured records how many nodes were replayed by strategy.
func (p *Provider) RecordNodesCaptured(ctx context.Context, n int64, strategy string) {
	if p == nil {
		return
	}
	p.nodesCaptured.Add(ctx, n, metric.WithAttributes(attribute.String("capturegraph.strategy", strategy)))
}

// RecordEventsRecorded records how many cross-stream events a Round-Robin
// capture recorded.
func (p *Provider) RecordEventsRecorded(ctx context.Context, n int64) {
	if p == nil {
		return
	}
	p.eventsRecorded.Add(ctx, n, metric.WithAttributes(attribute.String("capturegraph.strategy", "round_robin")))
}

// RecordDuration records how long one optimize call took.
func (p *Provider) RecordDuration(ctx context.Context, d time.Duration, strategy string) {
	if p == nil {
		return
	}
	p.duration.Record(ctx, d.Seconds(), metric.WithAttributes(attribute.String("capturegraph.strategy", strategy)))
}
