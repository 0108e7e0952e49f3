package otel

import (
	"context"

	"github.com/JailtonJunior94/mediaevents/pkg/observability"
	"go.opentelemetry.io/otel/metric"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
)

type meter struct {
	meter metric.Meter
}

// Counter falls back to a no-op instrument when the SDK rejects the name.
func (m *meter) Counter(name, description, unit string) observability.Counter {
	c, err := m.meter.Int64Counter(name, metric.WithDescription(description), metric.WithUnit(unit))
	if err != nil {
		return counter{counter: metricnoop.Int64Counter{}}
	}
	return counter{counter: c}
}

func (m *meter) Histogram(name, description, unit string) observability.Histogram {
	h, err := m.meter.Float64Histogram(name, metric.WithDescription(description), metric.WithUnit(unit))
	if err != nil {
		return histogram{histogram: metricnoop.Float64Histogram{}}
	}
	return histogram{histogram: h}
}

func (m *meter) UpDownCounter(name, description, unit string) observability.UpDownCounter {
	u, err := m.meter.Int64UpDownCounter(name, metric.WithDescription(description), metric.WithUnit(unit))
	if err != nil {
		return upDownCounter{counter: metricnoop.Int64UpDownCounter{}}
	}
	return upDownCounter{counter: u}
}

func (m *meter) Gauge(name, description, unit string, callback observability.GaugeCallback) error {
	_, err := m.meter.Float64ObservableGauge(name,
		metric.WithDescription(description),
		metric.WithUnit(unit),
		metric.WithFloat64Callback(func(ctx context.Context, o metric.Float64Observer) error {
			o.Observe(callback(ctx))
			return nil
		}),
	)
	return err
}

type counter struct {
	counter metric.Int64Counter
}

func (c counter) Add(ctx context.Context, value int64, fields ...observability.Field) {
	c.counter.Add(ctx, value, metric.WithAttributes(attributesOf(fields)...))
}

func (c counter) Increment(ctx context.Context, fields ...observability.Field) {
	c.Add(ctx, 1, fields...)
}

type histogram struct {
	histogram metric.Float64Histogram
}

func (h histogram) Record(ctx context.Context, value float64, fields ...observability.Field) {
	h.histogram.Record(ctx, value, metric.WithAttributes(attributesOf(fields)...))
}

type upDownCounter struct {
	counter metric.Int64UpDownCounter
}

func (u upDownCounter) Add(ctx context.Context, value int64, fields ...observability.Field) {
	u.counter.Add(ctx, value, metric.WithAttributes(attributesOf(fields)...))
}
