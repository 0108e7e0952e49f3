// Package fake provides an in-process stand-in for the native engine's event
// emitter. Tests drive it with Emit from as many goroutines as they like to
// play the part of the engine's delivery threads.
package fake

import (
	"cmp"
	"errors"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/JailtonJunior94/mediaevents/pkg/events"
)

var (
	// ErrInvalidKind is returned by Attach for kinds outside the configured taxonomy.
	ErrInvalidKind = errors.New("fake: invalid event kind")

	// ErrAlreadyAttached is returned when the same (kind, data) pair is attached twice.
	ErrAlreadyAttached = errors.New("fake: triple already attached")

	// ErrOutOfResources is the default error injected by FailNextAttach.
	ErrOutOfResources = errors.New("fake: out of resources")
)

type key struct {
	kind events.Kind
	data any
}

type attachment struct {
	kind     events.Kind
	fn       events.Trampoline
	data     any
	seq      uint64
	inflight sync.WaitGroup
}

// Source implements events.Source. Detach blocks until every Emit that picked
// up the attachment has returned from it.
type Source struct {
	mu          sync.Mutex
	attachments map[key]*attachment
	seq         uint64
	taxonomy    *events.Taxonomy
	failures    []error

	attaches      atomic.Int64
	detaches      atomic.Int64
	staleDetaches atomic.Int64
}

// Option configures a Source.
type Option func(*Source)

// WithTaxonomy makes Attach reject kinds outside t, like the engine does.
func WithTaxonomy(t events.Taxonomy) Option {
	return func(s *Source) {
		s.taxonomy = &t
	}
}

// NewSource creates an empty Source.
func NewSource(opts ...Option) *Source {
	s := &Source{attachments: make(map[key]*attachment)}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Attach implements events.Source.
func (s *Source) Attach(kind events.Kind, fn events.Trampoline, data any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.failures) > 0 {
		err := s.failures[0]
		s.failures = s.failures[1:]
		return err
	}
	if s.taxonomy != nil && !s.taxonomy.Contains(kind) {
		return ErrInvalidKind
	}
	k := key{kind: kind, data: data}
	if _, ok := s.attachments[k]; ok {
		return ErrAlreadyAttached
	}

	s.seq++
	s.attachments[k] = &attachment{kind: kind, fn: fn, data: data, seq: s.seq}
	s.attaches.Add(1)
	return nil
}

// Detach implements events.Source. Detaching an unknown triple is counted in
// StaleDetaches and otherwise ignored.
func (s *Source) Detach(kind events.Kind, _ events.Trampoline, data any) {
	s.mu.Lock()
	k := key{kind: kind, data: data}
	a, ok := s.attachments[k]
	if ok {
		delete(s.attachments, k)
	}
	s.mu.Unlock()

	if !ok {
		s.staleDetaches.Add(1)
		return
	}
	a.inflight.Wait()
	s.detaches.Add(1)
}

// Emit delivers ev on the calling goroutine to every attachment for ev.Type,
// in attach order, and returns how many were invoked.
func (s *Source) Emit(ev events.Event) int {
	s.mu.Lock()
	var targets []*attachment
	for _, a := range s.attachments {
		if a.kind == ev.Type {
			a.inflight.Add(1)
			targets = append(targets, a)
		}
	}
	s.mu.Unlock()

	slices.SortFunc(targets, func(a, b *attachment) int {
		return cmp.Compare(a.seq, b.seq)
	})
	for _, a := range targets {
		func() {
			defer a.inflight.Done()
			a.fn(&ev, a.data)
		}()
	}
	return len(targets)
}

// FailNextAttach makes the next Attach call return err, or ErrOutOfResources
// when err is nil. Calls queue up.
func (s *Source) FailNextAttach(err error) {
	if err == nil {
		err = ErrOutOfResources
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures = append(s.failures, err)
}

// Attached returns the number of live attachments for kind.
func (s *Source) Attached(kind events.Kind) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for k := range s.attachments {
		if k.kind == kind {
			n++
		}
	}
	return n
}

// Len returns the number of live attachments.
func (s *Source) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.attachments)
}

// Attaches returns the number of successful Attach calls.
func (s *Source) Attaches() int64 { return s.attaches.Load() }

// Detaches returns the number of Detach calls that removed an attachment.
func (s *Source) Detaches() int64 { return s.detaches.Load() }

// StaleDetaches returns the number of Detach calls for unknown triples.
func (s *Source) StaleDetaches() int64 { return s.staleDetaches.Load() }

// Object is a reference-counted native object exposing a Source. It starts
// with one reference.
type Object struct {
	*Source
	refs atomic.Int32
}

// NewObject creates an Object holding one reference.
func NewObject(opts ...Option) *Object {
	o := &Object{Source: NewSource(opts...)}
	o.refs.Store(1)
	return o
}

// EventSource returns the object's event emitter.
func (o *Object) EventSource() events.Source {
	return o.Source
}

// Retain adds a reference.
func (o *Object) Retain() {
	o.refs.Add(1)
}

// Release drops a reference.
func (o *Object) Release() {
	o.refs.Add(-1)
}

// Refs returns the current reference count.
func (o *Object) Refs() int32 {
	return o.refs.Load()
}
