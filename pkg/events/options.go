package events

import (
	"context"
	"fmt"
	"runtime/debug"
	"time"

	"github.com/JailtonJunior94/mediaevents/pkg/observability"
	"github.com/JailtonJunior94/mediaevents/pkg/observability/noop"
)

// PanicHandler is called on the delivering goroutine when a callback panics.
// The panic never propagates into the Source. A handler that wants the
// process to stop must do so itself.
type PanicHandler func(kind Kind, tok Token, recovered any)

// Option configures a Manager.
type Option func(*config)

type config struct {
	observability observability.Observability
	panicHandler  PanicHandler
}

func defaultConfig() *config {
	return &config{observability: noop.NewProvider()}
}

// WithObservability sets the logger, metrics and tracer used by the manager.
// The default discards everything.
func WithObservability(o observability.Observability) Option {
	return func(c *config) {
		if o != nil {
			c.observability = o
		}
	}
}

// WithPanicHandler replaces the default panic policy, which logs the panic
// with its stack at error level and counts it.
func WithPanicHandler(h PanicHandler) Option {
	return func(c *config) {
		c.panicHandler = h
	}
}

const (
	metricActive         = "mediaevents.handlers.active"
	metricDispatchTotal  = "mediaevents.dispatch.total"
	metricDispatchPanics = "mediaevents.dispatch.panics"
	metricDispatchTime   = "mediaevents.dispatch.duration"
	metricAttachFailures = "mediaevents.attach.failures"
	metricDropped        = "mediaevents.dispatch.dropped"
)

type instruments struct {
	active         observability.UpDownCounter
	dispatched     observability.Counter
	panics         observability.Counter
	duration       observability.Histogram
	attachFailures observability.Counter
	dropped        observability.Counter
}

func newInstruments(m observability.Metrics) instruments {
	return instruments{
		active:         m.UpDownCounter(metricActive, "Live event registrations", "1"),
		dispatched:     m.Counter(metricDispatchTotal, "Callbacks invoked by the engine", "1"),
		panics:         m.Counter(metricDispatchPanics, "Callbacks that panicked", "1"),
		duration:       m.Histogram(metricDispatchTime, "Callback execution time", "ms"),
		attachFailures: m.Counter(metricAttachFailures, "Attachments rejected by the engine", "1"),
		dropped:        m.Counter(metricDropped, "Deliveries dropped for a mismatched payload", "1"),
	}
}

func (m *Manager) dispatched(kind Kind, elapsed time.Duration) {
	ctx := context.Background()
	attr := observability.String("kind", m.taxonomy.KindName(kind))
	m.instruments.dispatched.Increment(ctx, attr)
	m.instruments.duration.Record(ctx, float64(elapsed)/float64(time.Millisecond), attr)
}

func (m *Manager) recovered(kind Kind, tok Token, r any) {
	m.instruments.panics.Increment(context.Background(),
		observability.String("kind", m.taxonomy.KindName(kind)))
	m.panicHandler(kind, tok, r)
}

func (m *Manager) logPanic(kind Kind, tok Token, r any) {
	m.logger.Error(context.Background(), "event callback panicked",
		observability.String("kind", m.taxonomy.KindName(kind)),
		observability.Uint64("token", uint64(tok)),
		observability.String("panic", fmt.Sprint(r)),
		observability.String("stack", string(debug.Stack())),
	)
}

func (m *Manager) payloadMismatch(kind Kind, tok Token, ev *Event) {
	ctx := context.Background()
	m.instruments.dropped.Increment(ctx, observability.String("kind", m.taxonomy.KindName(kind)))
	m.logger.Error(ctx, "event delivery dropped",
		observability.String("kind", m.taxonomy.KindName(kind)),
		observability.Uint64("token", uint64(tok)),
		observability.String("payload_type", fmt.Sprintf("%T", ev.Payload)),
		observability.Error(ErrPayloadMismatch),
	)
}
