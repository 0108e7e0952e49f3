package otel

import (
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/JailtonJunior94/mediaevents/pkg/observability"
	"go.opentelemetry.io/otel/attribute"
	otellog "go.opentelemetry.io/otel/log"
)

// attributeOf converts a field to a span or metric attribute. Durations are
// recorded in milliseconds and uint64 values that overflow int64 as strings.
func attributeOf(f observability.Field) attribute.KeyValue {
	switch v := f.Value.(type) {
	case string:
		return attribute.String(f.Key, v)
	case int:
		return attribute.Int(f.Key, v)
	case int64:
		return attribute.Int64(f.Key, v)
	case uint64:
		if v > math.MaxInt64 {
			return attribute.String(f.Key, fmt.Sprint(v))
		}
		return attribute.Int64(f.Key, int64(v))
	case float64:
		return attribute.Float64(f.Key, v)
	case bool:
		return attribute.Bool(f.Key, v)
	case time.Duration:
		return attribute.Float64(f.Key, float64(v)/float64(time.Millisecond))
	case error:
		return attribute.String(f.Key, v.Error())
	case fmt.Stringer:
		return attribute.String(f.Key, v.String())
	default:
		return attribute.String(f.Key, fmt.Sprint(v))
	}
}

// attributesOf returns nil for no fields.
func attributesOf(fields []observability.Field) []attribute.KeyValue {
	if len(fields) == 0 {
		return nil
	}
	attrs := make([]attribute.KeyValue, len(fields))
	for i, f := range fields {
		attrs[i] = attributeOf(f)
	}
	return attrs
}

func logKeyValueOf(f observability.Field) otellog.KeyValue {
	switch v := f.Value.(type) {
	case string:
		return otellog.String(f.Key, v)
	case int:
		return otellog.Int(f.Key, v)
	case int64:
		return otellog.Int64(f.Key, v)
	case uint64:
		if v > math.MaxInt64 {
			return otellog.String(f.Key, fmt.Sprint(v))
		}
		return otellog.Int64(f.Key, int64(v))
	case float64:
		return otellog.Float64(f.Key, v)
	case bool:
		return otellog.Bool(f.Key, v)
	case time.Duration:
		return otellog.String(f.Key, v.String())
	case error:
		return otellog.String(f.Key, v.Error())
	default:
		return otellog.String(f.Key, fmt.Sprint(v))
	}
}

func slogAttrOf(f observability.Field) slog.Attr {
	switch v := f.Value.(type) {
	case string:
		return slog.String(f.Key, v)
	case int:
		return slog.Int(f.Key, v)
	case int64:
		return slog.Int64(f.Key, v)
	case uint64:
		return slog.Uint64(f.Key, v)
	case float64:
		return slog.Float64(f.Key, v)
	case bool:
		return slog.Bool(f.Key, v)
	case time.Duration:
		return slog.Duration(f.Key, v)
	case error:
		return slog.String(f.Key, v.Error())
	default:
		return slog.Any(f.Key, v)
	}
}
