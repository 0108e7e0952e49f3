package observability_test

import (
	"errors"
	"testing"
	"time"

	"github.com/JailtonJunior94/mediaevents/pkg/observability"
	"github.com/JailtonJunior94/mediaevents/pkg/observability/fake"
	"github.com/stretchr/testify/assert"
)

func TestFieldConstructors(t *testing.T) {
	err := errors.New("boom")

	tests := []struct {
		name  string
		field observability.Field
		key   string
		value any
	}{
		{"string", observability.String("kind", "MediaPlayerPlaying"), "kind", "MediaPlayerPlaying"},
		{"int", observability.Int("count", 3), "count", 3},
		{"int64", observability.Int64("time", int64(1500)), "time", int64(1500)},
		{"uint64", observability.Uint64("token", uint64(7)), "token", uint64(7)},
		{"float64", observability.Float64("position", 0.25), "position", 0.25},
		{"bool", observability.Bool("closed", true), "closed", true},
		{"duration", observability.Duration("elapsed", time.Second), "elapsed", time.Second},
		{"error", observability.Error(err), "error", err},
		{"any", observability.Any("payload", struct{}{}), "payload", struct{}{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.key, tt.field.Key)
			assert.Equal(t, tt.value, tt.field.Value)
		})
	}
}

func TestNewSpanConfig(t *testing.T) {
	t.Run("defaults to internal kind", func(t *testing.T) {
		cfg := observability.NewSpanConfig(nil)
		assert.Equal(t, observability.SpanKindInternal, cfg.Kind())
		assert.Empty(t, cfg.Attributes())
	})

	t.Run("applies options in order", func(t *testing.T) {
		cfg := observability.NewSpanConfig([]observability.SpanOption{
			observability.WithSpanKind(observability.SpanKindConsumer),
			observability.WithAttributes(observability.String("taxonomy", "player")),
			observability.WithAttributes(observability.Int("handlers", 2)),
		})

		assert.Equal(t, observability.SpanKindConsumer, cfg.Kind())
		assert.Equal(t, []observability.Field{
			observability.String("taxonomy", "player"),
			observability.Int("handlers", 2),
		}, cfg.Attributes())
	})
}

func TestCompose(t *testing.T) {
	f := fake.NewProvider()
	o := observability.Compose(f.Tracer(), f.Logger(), f.Metrics())

	assert.Same(t, f.FakeTracer(), o.Tracer())
	assert.Same(t, f.FakeLogger(), o.Logger())
	assert.Same(t, f.FakeMetrics(), o.Metrics())
}

func TestParseLogLevel(t *testing.T) {
	cases := map[string]observability.LogLevel{
		"":        observability.LogLevelInfo,
		"DEBUG":   observability.LogLevelDebug,
		" info ":  observability.LogLevelInfo,
		"warning": observability.LogLevelWarn,
		"error":   observability.LogLevelError,
	}
	for in, want := range cases {
		got, err := observability.ParseLogLevel(in)
		assert.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := observability.ParseLogLevel("verbose")
	assert.ErrorContains(t, err, `"verbose"`)
}
