package prom_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/JailtonJunior94/mediaevents/pkg/events"
	"github.com/JailtonJunior94/mediaevents/pkg/events/fake"
	"github.com/JailtonJunior94/mediaevents/pkg/observability"
	"github.com/JailtonJunior94/mediaevents/pkg/observability/noop"
	"github.com/JailtonJunior94/mediaevents/pkg/observability/prom"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounter(t *testing.T) {
	m := prom.New()
	ctx := context.Background()

	c := m.Counter("mediaevents.dispatch", "Callbacks invoked", "1")
	c.Increment(ctx, observability.String("kind", "Playing"))
	c.Add(ctx, 2, observability.String("kind", "Playing"))
	c.Increment(ctx, observability.String("kind", "Paused"))
	c.Add(ctx, -5, observability.String("kind", "Paused"))

	expected := `
# HELP mediaevents_dispatch_total Callbacks invoked
# TYPE mediaevents_dispatch_total counter
mediaevents_dispatch_total{kind="Paused"} 1
mediaevents_dispatch_total{kind="Playing"} 3
`
	require.NoError(t, testutil.GatherAndCompare(m.Registry(), strings.NewReader(expected), "mediaevents_dispatch_total"))
}

func TestCounter_SameNameSharesSeries(t *testing.T) {
	m := prom.New(prom.WithNamespace("app"))
	ctx := context.Background()

	m.Counter("attach.failures", "", "1").Increment(ctx)
	m.Counter("attach.failures", "", "1").Increment(ctx)

	n, err := testutil.GatherAndCount(m.Registry(), "app_attach_failures_total")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestUpDownCounterAndHistogram(t *testing.T) {
	m := prom.New(prom.WithBuckets([]float64{1, 10}))
	ctx := context.Background()

	active := m.UpDownCounter("mediaevents.handlers.active", "Live registrations", "1")
	active.Add(ctx, 3, observability.String("taxonomy", "media_player"))
	active.Add(ctx, -1, observability.String("taxonomy", "media_player"))

	m.Histogram("mediaevents.dispatch.duration", "Callback time", "ms").Record(ctx, 0.5)

	expected := `
# HELP mediaevents_handlers_active Live registrations
# TYPE mediaevents_handlers_active gauge
mediaevents_handlers_active{taxonomy="media_player"} 2
`
	require.NoError(t, testutil.GatherAndCompare(m.Registry(), strings.NewReader(expected), "mediaevents_handlers_active"))

	n, err := testutil.GatherAndCount(m.Registry(), "mediaevents_dispatch_duration_milliseconds")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestLabelsFixedByFirstObservation(t *testing.T) {
	m := prom.New()
	ctx := context.Background()

	c := m.Counter("drops", "Drops", "1")
	c.Increment(ctx, observability.String("kind", "Vout"))
	c.Increment(ctx, observability.String("other", "x"))

	expected := `
# HELP drops_total Drops
# TYPE drops_total counter
drops_total{kind=""} 1
drops_total{kind="Vout"} 1
`
	require.NoError(t, testutil.GatherAndCompare(m.Registry(), strings.NewReader(expected), "drops_total"))
}

func TestGauge(t *testing.T) {
	m := prom.New()

	require.NoError(t, m.Gauge("queue.depth", "Depth", "1", func(context.Context) float64 { return 7 }))
	assert.Error(t, m.Gauge("queue.depth", "Depth", "1", func(context.Context) float64 { return 0 }))

	expected := `
# HELP queue_depth Depth
# TYPE queue_depth gauge
queue_depth 7
`
	require.NoError(t, testutil.GatherAndCompare(m.Registry(), strings.NewReader(expected), "queue_depth"))
}

func TestHandler_ExposesEventManagerMetrics(t *testing.T) {
	m := prom.New()
	tax := events.NewTaxonomy("player", 0x100, "Playing")
	src := fake.NewSource(fake.WithTaxonomy(tax))

	em, err := events.NewManager(src, tax, events.WithObservability(
		observability.Compose(noop.NewProvider().Tracer(), noop.NewProvider().Logger(), m),
	))
	require.NoError(t, err)
	_, err = events.Handle(em, 0x100, func() {}, func(fn func(), _ events.None) { fn() })
	require.NoError(t, err)
	src.Emit(events.Event{Type: 0x100})
	em.Close()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `mediaevents_dispatch_total{kind="Playing"} 1`)
	assert.Contains(t, body, `mediaevents_handlers_active{taxonomy="player"} 0`)
	assert.Contains(t, body, "mediaevents_dispatch_duration_milliseconds_bucket")
}
