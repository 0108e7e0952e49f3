package fake_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/JailtonJunior94/mediaevents/pkg/observability"
	"github.com/JailtonJunior94/mediaevents/pkg/observability/fake"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFakeTracer(t *testing.T) {
	provider := fake.NewProvider()
	tracer := provider.FakeTracer()
	ctx := context.Background()

	t.Run("captures spans", func(t *testing.T) {
		tracer.Reset()

		_, span := provider.Tracer().Start(ctx, "events.close",
			observability.WithSpanKind(observability.SpanKindInternal),
			observability.WithAttributes(observability.String("taxonomy", "player")),
		)
		span.SetAttributes(observability.Int("handlers", 3))
		span.AddEvent("detached")
		span.SetStatus(observability.StatusCodeOK, "")
		span.End()

		spans := tracer.SpansNamed("events.close")
		require.Len(t, spans, 1)
		assert.True(t, spans[0].Ended())
		assert.Len(t, spans[0].Events, 1)
		handlers, ok := spans[0].Attribute("handlers")
		require.True(t, ok)
		assert.Equal(t, 3, handlers)
	})

	t.Run("captures errors", func(t *testing.T) {
		tracer.Reset()
		attachErr := errors.New("attach failed")

		_, span := tracer.Start(ctx, "events.register")
		span.RecordError(attachErr)
		span.SetStatus(observability.StatusCodeError, attachErr.Error())
		span.End()

		spans := tracer.GetSpans()
		require.Len(t, spans, 1)
		assert.ErrorIs(t, spans[0].RecordedErr, attachErr)
		assert.Equal(t, observability.StatusCodeError, spans[0].Status)
	})
}

func TestFakeLogger(t *testing.T) {
	logger := fake.NewFakeLogger()
	ctx := context.Background()

	child := logger.With(observability.String("manager_id", "abc"))
	child.Error(ctx, "callback panicked", observability.Uint64("token", 4))
	logger.Info(ctx, "registered")

	entries := logger.GetEntries()
	require.Len(t, entries, 2)

	errs := logger.EntriesAt(observability.LogLevelError)
	require.Len(t, errs, 1)
	id, ok := errs[0].Field("manager_id")
	require.True(t, ok)
	assert.Equal(t, "abc", id)
	token, ok := errs[0].Field("token")
	require.True(t, ok)
	assert.Equal(t, uint64(4), token)

	_, ok = entries[1].Field("manager_id")
	assert.False(t, ok, "parent logger must not inherit child fields")

	logger.Reset()
	assert.Empty(t, child.(*fake.FakeLogger).GetEntries())
}

func TestFakeMetrics(t *testing.T) {
	metrics := fake.NewFakeMetrics()
	ctx := context.Background()

	counter := metrics.Counter("mediaevents.dispatch.total", "deliveries", "1")
	assert.Same(t, counter, metrics.Counter("mediaevents.dispatch.total", "", ""))

	var wg sync.WaitGroup
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			counter.Increment(ctx)
		}()
	}
	wg.Wait()
	assert.Equal(t, int64(10), metrics.GetCounter("mediaevents.dispatch.total").Total())

	active := metrics.UpDownCounter("mediaevents.handlers.active", "", "1")
	active.Add(ctx, 3)
	active.Add(ctx, -2)
	assert.Equal(t, int64(1), metrics.GetUpDownCounter("mediaevents.handlers.active").Total())

	metrics.Histogram("mediaevents.dispatch.duration", "", "ms").Record(ctx, 0.5)
	assert.Len(t, metrics.GetHistogram("mediaevents.dispatch.duration").GetValues(), 1)

	require.NoError(t, metrics.Gauge("mediaevents.handlers", "", "1", func(context.Context) float64 { return 7 }))
	value, ok := metrics.ObserveGauge(ctx, "mediaevents.handlers")
	require.True(t, ok)
	assert.Equal(t, 7.0, value)

	_, ok = metrics.ObserveGauge(ctx, "missing")
	assert.False(t, ok)
}
