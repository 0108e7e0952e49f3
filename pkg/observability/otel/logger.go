package otel

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/JailtonJunior94/mediaevents/pkg/observability"
	otellog "go.opentelemetry.io/otel/log"
	oteltrace "go.opentelemetry.io/otel/trace"
)

// logger writes every entry to the console through slog and emits it as an
// OTLP log record.
type logger struct {
	console *slog.Logger
	otlp    otellog.Logger
	service string
	fields  []observability.Field
}

func newLogger(c *Config, out io.Writer, otlp otellog.Logger) *logger {
	opts := &slog.HandlerOptions{Level: slogLevelOf(c.LogLevel)}

	var h slog.Handler
	if c.LogFormat == observability.LogFormatJSON {
		h = slog.NewJSONHandler(out, opts)
	} else {
		h = slog.NewTextHandler(out, opts)
	}
	return &logger{console: slog.New(h), otlp: otlp, service: c.ServiceName}
}

func (l *logger) Debug(ctx context.Context, msg string, fields ...observability.Field) {
	l.log(ctx, slog.LevelDebug, msg, fields)
}

func (l *logger) Info(ctx context.Context, msg string, fields ...observability.Field) {
	l.log(ctx, slog.LevelInfo, msg, fields)
}

func (l *logger) Warn(ctx context.Context, msg string, fields ...observability.Field) {
	l.log(ctx, slog.LevelWarn, msg, fields)
}

func (l *logger) Error(ctx context.Context, msg string, fields ...observability.Field) {
	l.log(ctx, slog.LevelError, msg, fields)
}

// With never shares its field slice with the parent.
func (l *logger) With(fields ...observability.Field) observability.Logger {
	merged := make([]observability.Field, 0, len(l.fields)+len(fields))
	merged = append(merged, l.fields...)
	merged = append(merged, fields...)
	return &logger{console: l.console, otlp: l.otlp, service: l.service, fields: merged}
}

func (l *logger) log(ctx context.Context, level slog.Level, msg string, fields []observability.Field) {
	all := make([]observability.Field, 0, len(l.fields)+len(fields)+3)
	all = append(all, l.fields...)
	all = append(all, fields...)
	if sc := oteltrace.SpanContextFromContext(ctx); sc.IsValid() {
		all = append(all,
			observability.String("trace_id", sc.TraceID().String()),
			observability.String("span_id", sc.SpanID().String()),
		)
	}
	all = append(all, observability.String("service", l.service))

	if l.console.Enabled(ctx, level) {
		attrs := make([]slog.Attr, len(all))
		for i, f := range all {
			attrs[i] = slogAttrOf(f)
		}
		l.console.LogAttrs(ctx, level, msg, attrs...)
	}

	var rec otellog.Record
	rec.SetTimestamp(time.Now())
	rec.SetBody(otellog.StringValue(msg))
	rec.SetSeverity(severityOf(level))
	rec.SetSeverityText(level.String())
	for _, f := range all {
		rec.AddAttributes(logKeyValueOf(f))
	}
	l.otlp.Emit(ctx, rec)
}

func slogLevelOf(level observability.LogLevel) slog.Level {
	switch level {
	case observability.LogLevelDebug:
		return slog.LevelDebug
	case observability.LogLevelWarn:
		return slog.LevelWarn
	case observability.LogLevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func severityOf(level slog.Level) otellog.Severity {
	switch level {
	case slog.LevelDebug:
		return otellog.SeverityDebug
	case slog.LevelWarn:
		return otellog.SeverityWarn
	case slog.LevelError:
		return otellog.SeverityError
	default:
		return otellog.SeverityInfo
	}
}
