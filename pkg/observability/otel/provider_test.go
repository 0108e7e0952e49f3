package otel_test

import (
	"bytes"
	"context"
	"sync"
	"testing"

	"github.com/JailtonJunior94/mediaevents/pkg/events"
	"github.com/JailtonJunior94/mediaevents/pkg/events/fake"
	"github.com/JailtonJunior94/mediaevents/pkg/observability"
	"github.com/JailtonJunior94/mediaevents/pkg/observability/otel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdklog "go.opentelemetry.io/otel/sdk/log"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

type logExporter struct {
	mu      sync.Mutex
	records []sdklog.Record
}

func (e *logExporter) Export(_ context.Context, records []sdklog.Record) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	for _, r := range records {
		e.records = append(e.records, r.Clone())
	}
	return nil
}

func (e *logExporter) Shutdown(context.Context) error   { return nil }
func (e *logExporter) ForceFlush(context.Context) error { return nil }

func (e *logExporter) bodies() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]string, len(e.records))
	for i, r := range e.records {
		out[i] = r.Body().AsString()
	}
	return out
}

type harness struct {
	provider *otel.Provider
	spans    *tracetest.InMemoryExporter
	reader   *sdkmetric.ManualReader
	logs     *logExporter
	console  *bytes.Buffer
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{
		spans:   tracetest.NewInMemoryExporter(),
		reader:  sdkmetric.NewManualReader(),
		logs:    &logExporter{},
		console: &bytes.Buffer{},
	}

	cfg := otel.DefaultConfig("mediaevents-test")
	cfg.RegisterGlobal = false
	cfg.LogLevel = observability.LogLevelDebug

	p, err := otel.NewProvider(context.Background(), cfg,
		otel.WithSpanExporter(h.spans),
		otel.WithMetricReader(h.reader),
		otel.WithLogExporter(h.logs),
		otel.WithLogOutput(h.console),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = p.Shutdown(context.Background()) })
	h.provider = p
	return h
}

func (h *harness) sum(t *testing.T, name string) int64 {
	t.Helper()
	var rm metricdata.ResourceMetrics
	require.NoError(t, h.reader.Collect(context.Background(), &rm))
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != name {
				continue
			}
			data, ok := m.Data.(metricdata.Sum[int64])
			require.True(t, ok, "metric %s is not an int64 sum", name)
			var total int64
			for _, dp := range data.DataPoints {
				total += dp.Value
			}
			return total
		}
	}
	t.Fatalf("metric %s not collected", name)
	return 0
}

func TestNewProvider_RejectsInvalidConfig(t *testing.T) {
	_, err := otel.NewProvider(context.Background(), nil)
	assert.Error(t, err)

	cfg := otel.DefaultConfig("")
	_, err = otel.NewProvider(context.Background(), cfg)
	assert.ErrorIs(t, err, otel.ErrServiceNameRequired)
}

func TestProvider_Tracer(t *testing.T) {
	h := newHarness(t)
	tr := h.provider.Tracer()

	ctx, span := tr.Start(context.Background(), "dispatch",
		observability.WithSpanKind(observability.SpanKindConsumer),
		observability.WithAttributes(observability.String("kind", "Playing")),
	)
	span.SetAttributes(observability.Uint64("token", 3))
	span.SetStatus(observability.StatusCodeOK, "")
	assert.Equal(t, span.Context().TraceID(), tr.SpanFromContext(ctx).Context().TraceID())
	assert.True(t, span.Context().IsSampled())
	span.End()

	stubs := h.spans.GetSpans()
	require.Len(t, stubs, 1)
	assert.Equal(t, "dispatch", stubs[0].Name)
	assert.Contains(t, stubs[0].Attributes, attribute.String("kind", "Playing"))
	assert.Contains(t, stubs[0].Attributes, attribute.Int64("token", 3))
}

func TestProvider_LoggerCarriesTraceContext(t *testing.T) {
	h := newHarness(t)

	ctx, span := h.provider.Tracer().Start(context.Background(), "close")
	h.provider.Logger().With(observability.String("manager_id", "m-1")).
		Info(ctx, "event manager closed", observability.Int("detached", 2))
	span.End()

	assert.Equal(t, []string{"event manager closed"}, h.logs.bodies())
	out := h.console.String()
	assert.Contains(t, out, `"manager_id":"m-1"`)
	assert.Contains(t, out, `"detached":2`)
	assert.Contains(t, out, span.Context().TraceID())
	assert.Contains(t, out, `"service":"mediaevents-test"`)
}

func TestProvider_Metrics(t *testing.T) {
	h := newHarness(t)
	m := h.provider.Metrics()
	ctx := context.Background()

	c := m.Counter("test.counter", "", "1")
	c.Increment(ctx)
	c.Add(ctx, 4, observability.String("kind", "Playing"))

	u := m.UpDownCounter("test.updown", "", "1")
	u.Add(ctx, 3)
	u.Add(ctx, -1)

	m.Histogram("test.histogram", "", "ms").Record(ctx, 1.5)
	require.NoError(t, m.Gauge("test.gauge", "", "1", func(context.Context) float64 { return 42 }))

	assert.Equal(t, int64(5), h.sum(t, "test.counter"))
	assert.Equal(t, int64(2), h.sum(t, "test.updown"))
}

func TestProvider_DrivesEventManager(t *testing.T) {
	h := newHarness(t)

	tax := events.NewTaxonomy("player", 0x100, "Playing", "Paused")
	src := fake.NewSource(fake.WithTaxonomy(tax))
	m, err := events.NewManager(src, tax, events.WithObservability(h.provider))
	require.NoError(t, err)

	bind := func(fn func(), _ events.None) { fn() }
	_, err = events.Handle(m, 0x100, func() {}, bind)
	require.NoError(t, err)
	_, err = events.Handle(m, 0x101, func() { panic("boom") }, bind)
	require.NoError(t, err)

	src.Emit(events.Event{Type: 0x100})
	src.Emit(events.Event{Type: 0x101})
	m.Close()

	assert.Equal(t, int64(2), h.sum(t, "mediaevents.dispatch.total"))
	assert.Equal(t, int64(1), h.sum(t, "mediaevents.dispatch.panics"))
	assert.Equal(t, int64(0), h.sum(t, "mediaevents.handlers.active"))

	stubs := h.spans.GetSpans()
	require.Len(t, stubs, 1)
	assert.Equal(t, "events.close", stubs[0].Name)
	assert.Contains(t, stubs[0].Attributes, attribute.Int("handlers", 2))
	assert.Contains(t, h.logs.bodies(), "event callback panicked")
}
