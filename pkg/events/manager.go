package events

import (
	"context"
	"fmt"
	"sync"

	"github.com/JailtonJunior94/mediaevents/pkg/observability"
	"github.com/google/uuid"
)

// Token identifies one registration within a Manager. Tokens are minted from
// a per-manager counter and never reused; NoToken is never minted.
type Token uint64

// NoToken is the zero Token. Unregistering it is a no-op.
const NoToken Token = 0

// record is one live attachment. It is owned by the Manager's table and
// detached exactly once.
type record struct {
	kind Kind
	fn   Trampoline
	data invoker
}

// Manager owns the registrations made against one Source. It is safe for
// concurrent use; deliveries never take its lock.
type Manager struct {
	id       string
	source   Source
	taxonomy Taxonomy

	mu       sync.Mutex
	handlers map[Token]*record
	last     Token
	closed   bool
	// pending tracks detaches running outside mu so Close can wait for them.
	pending sync.WaitGroup

	logger       observability.Logger
	tracer       observability.Tracer
	panicHandler PanicHandler
	instruments  instruments
}

// NewManager creates a Manager that attaches to src and accepts the kinds of
// taxonomy.
func NewManager(src Source, taxonomy Taxonomy, opts ...Option) (*Manager, error) {
	if src == nil {
		return nil, ErrSourceNil
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	m := &Manager{
		id:       uuid.NewString(),
		source:   src,
		taxonomy: taxonomy,
		handlers: make(map[Token]*record),
		tracer:   cfg.observability.Tracer(),
	}
	m.logger = cfg.observability.Logger().With(
		observability.String("manager_id", m.id),
		observability.String("taxonomy", taxonomy.Name),
	)
	m.instruments = newInstruments(cfg.observability.Metrics())
	m.panicHandler = cfg.panicHandler
	if m.panicHandler == nil {
		m.panicHandler = m.logPanic
	}
	return m, nil
}

// ID returns the manager's unique identifier, used to correlate log entries.
func (m *Manager) ID() string {
	return m.id
}

// Taxonomy returns the set of kinds the manager accepts.
func (m *Manager) Taxonomy() Taxonomy {
	return m.taxonomy
}

// Len returns the number of live registrations.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.handlers)
}

// Has reports whether tok denotes a live registration.
func (m *Manager) Has(tok Token) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.handlers[tok]
	return ok
}

// Closed reports whether Close has been called.
func (m *Manager) Closed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}

// register attaches the triple and records it under a fresh token. The lock
// is not held across Attach, so a Close racing with it is resolved by
// detaching here before returning.
func (m *Manager) register(kind Kind, fn Trampoline, data invoker) (Token, error) {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return NoToken, ErrManagerClosed
	}
	m.pending.Add(1)
	m.mu.Unlock()
	defer m.pending.Done()

	ctx := context.Background()
	kindName := m.taxonomy.KindName(kind)

	if err := m.source.Attach(kind, fn, data); err != nil {
		m.instruments.attachFailures.Increment(ctx, observability.String("kind", kindName))
		m.logger.Warn(ctx, "event attach failed",
			observability.String("kind", kindName),
			observability.Error(err),
		)
		return NoToken, fmt.Errorf("%w: %s: %w", ErrAttachFailed, kindName, err)
	}

	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		m.source.Detach(kind, fn, data)
		return NoToken, ErrManagerClosed
	}
	m.last++
	tok := m.last
	m.handlers[tok] = &record{kind: kind, fn: fn, data: data}
	m.mu.Unlock()

	m.instruments.active.Add(ctx, 1, observability.String("taxonomy", m.taxonomy.Name))
	m.logger.Debug(ctx, "event handler registered",
		observability.String("kind", kindName),
		observability.Uint64("token", uint64(tok)),
	)
	return tok, nil
}

// Unregister revokes each token. Unknown tokens, NoToken and tokens that were
// already revoked are ignored. When Unregister returns, no callback of the
// revoked registrations is running or will run again.
//
// Unregister must not be called from inside the callback it revokes: the
// Source waits for that callback to return before detaching.
func (m *Manager) Unregister(tokens ...Token) {
	for _, tok := range tokens {
		m.unregister(tok)
	}
}

func (m *Manager) unregister(tok Token) {
	if tok == NoToken {
		return
	}

	m.mu.Lock()
	rec, ok := m.handlers[tok]
	if ok {
		delete(m.handlers, tok)
		m.pending.Add(1)
	}
	m.mu.Unlock()
	if !ok {
		return
	}
	defer m.pending.Done()

	m.detach(rec)
	m.logger.Debug(context.Background(), "event handler unregistered",
		observability.String("kind", m.taxonomy.KindName(rec.kind)),
		observability.Uint64("token", uint64(tok)),
	)
}

func (m *Manager) detach(rec *record) {
	m.source.Detach(rec.kind, rec.fn, rec.data)
	m.instruments.active.Add(context.Background(), -1, observability.String("taxonomy", m.taxonomy.Name))
}

// Close detaches every remaining registration and rejects new ones. It
// returns once all detaches, including those of concurrent Unregister calls,
// have completed. Calling Close more than once is safe.
func (m *Manager) Close() {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		m.pending.Wait()
		return
	}
	m.closed = true
	remaining := m.handlers
	m.handlers = make(map[Token]*record)
	m.mu.Unlock()

	ctx, span := m.tracer.Start(context.Background(), "events.close",
		observability.WithAttributes(
			observability.String("manager_id", m.id),
			observability.String("taxonomy", m.taxonomy.Name),
			observability.Int("handlers", len(remaining)),
		),
	)
	defer span.End()

	for _, rec := range remaining {
		m.detach(rec)
	}
	m.pending.Wait()

	m.logger.Debug(ctx, "event manager closed", observability.Int("detached", len(remaining)))
}

func (m *Manager) outOfRange(kind Kind) error {
	return fmt.Errorf("%w: %#x is not a %s event", ErrKindOutOfRange, int32(kind), m.taxonomy.Name)
}
