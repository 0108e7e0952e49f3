package otel

import (
	"context"

	"github.com/JailtonJunior94/mediaevents/pkg/observability"
	"go.opentelemetry.io/otel/codes"
	oteltrace "go.opentelemetry.io/otel/trace"
)

type tracer struct {
	tracer oteltrace.Tracer
}

func (t *tracer) Start(ctx context.Context, name string, opts ...observability.SpanOption) (context.Context, observability.Span) {
	cfg := observability.NewSpanConfig(opts)

	startOpts := []oteltrace.SpanStartOption{oteltrace.WithSpanKind(spanKindOf(cfg.Kind()))}
	if attrs := attributesOf(cfg.Attributes()); attrs != nil {
		startOpts = append(startOpts, oteltrace.WithAttributes(attrs...))
	}

	ctx, s := t.tracer.Start(ctx, name, startOpts...)
	return ctx, &span{span: s}
}

// SpanFromContext returns a non-recording span when ctx carries none.
func (t *tracer) SpanFromContext(ctx context.Context) observability.Span {
	return &span{span: oteltrace.SpanFromContext(ctx)}
}

// ContextWithSpan ignores spans created by other backends.
func (t *tracer) ContextWithSpan(ctx context.Context, s observability.Span) context.Context {
	if sp, ok := s.(*span); ok {
		return oteltrace.ContextWithSpan(ctx, sp.span)
	}
	return ctx
}

type span struct {
	span oteltrace.Span
}

func (s *span) End() {
	s.span.End()
}

func (s *span) SetAttributes(fields ...observability.Field) {
	if attrs := attributesOf(fields); attrs != nil {
		s.span.SetAttributes(attrs...)
	}
}

func (s *span) SetStatus(code observability.StatusCode, description string) {
	s.span.SetStatus(statusCodeOf(code), description)
}

func (s *span) RecordError(err error, fields ...observability.Field) {
	s.span.RecordError(err, oteltrace.WithAttributes(attributesOf(fields)...))
}

func (s *span) AddEvent(name string, fields ...observability.Field) {
	s.span.AddEvent(name, oteltrace.WithAttributes(attributesOf(fields)...))
}

func (s *span) Context() observability.SpanContext {
	return spanContext{sc: s.span.SpanContext()}
}

type spanContext struct {
	sc oteltrace.SpanContext
}

func (c spanContext) TraceID() string { return c.sc.TraceID().String() }
func (c spanContext) SpanID() string  { return c.sc.SpanID().String() }
func (c spanContext) IsSampled() bool { return c.sc.IsSampled() }

func spanKindOf(kind observability.SpanKind) oteltrace.SpanKind {
	switch kind {
	case observability.SpanKindServer:
		return oteltrace.SpanKindServer
	case observability.SpanKindClient:
		return oteltrace.SpanKindClient
	case observability.SpanKindProducer:
		return oteltrace.SpanKindProducer
	case observability.SpanKindConsumer:
		return oteltrace.SpanKindConsumer
	default:
		return oteltrace.SpanKindInternal
	}
}

func statusCodeOf(code observability.StatusCode) codes.Code {
	switch code {
	case observability.StatusCodeOK:
		return codes.Ok
	case observability.StatusCodeError:
		return codes.Error
	default:
		return codes.Unset
	}
}
