// Package events turns the untyped attach/detach callback interface of a
// native media engine into typed, revocable registrations.
//
// A Source is the engine side: it attaches a (kind, Trampoline, data) triple
// and later delivers Events to it from its own threads. A Manager owns the
// registrations made against one Source and hands out a Token for each, which
// can be given back to Unregister at any time. Closing the Manager detaches
// everything still registered.
//
// Typed registration goes through Handle, which is instantiated per callback
// signature and payload type, so a callback whose parameters do not match the
// event kind does not compile:
//
//	tok, err := events.Handle(m, kindPositionChanged, func(pos float32) {
//	    fmt.Println(pos)
//	}, func(fn func(float32), p positionChanged) { fn(p.Position) })
//
//	m.Unregister(tok)
package events

import (
	"fmt"
	"slices"
)

// Kind identifies an event type, using the engine's own numbering.
type Kind int32

// Event is the descriptor a Source delivers: the concrete kind plus its
// kind-specific payload. Payload types are defined by the taxonomy that owns
// the kind.
type Event struct {
	Type    Kind
	Payload any
}

// Trampoline is the fixed-signature function a Source invokes for every
// delivery. data is the value supplied to Attach.
type Trampoline func(ev *Event, data any)

// Source is the native event emitter owned by one engine object.
//
// Attach registers a (kind, fn, data) triple; data is always a pointer and
// together with kind identifies the attachment, since Go func values are not
// comparable. Attach fails if kind is invalid for the object or the engine is
// out of resources.
//
// Detach removes a previously attached triple and must not return while fn is
// still executing for that triple on another goroutine. Detaching a triple
// that is not attached is a programming error.
type Source interface {
	Attach(kind Kind, fn Trampoline, data any) error
	Detach(kind Kind, fn Trampoline, data any)
}

// Taxonomy is the closed set of kinds that apply to one category of engine
// object. Kinds are contiguous, starting at First.
type Taxonomy struct {
	Name  string
	First Kind
	names []string
}

// NewTaxonomy declares a taxonomy whose kinds are first, first+1, ... in the
// order of names.
func NewTaxonomy(name string, first Kind, names ...string) Taxonomy {
	return Taxonomy{Name: name, First: first, names: slices.Clone(names)}
}

// Last returns the highest kind of the taxonomy.
func (t Taxonomy) Last() Kind {
	return t.First + Kind(len(t.names)) - 1
}

// Len returns the number of kinds in the taxonomy.
func (t Taxonomy) Len() int {
	return len(t.names)
}

// Contains reports whether k belongs to the taxonomy.
func (t Taxonomy) Contains(k Kind) bool {
	return len(t.names) > 0 && k >= t.First && k <= t.Last()
}

// Kinds returns every kind of the taxonomy in ascending order.
func (t Taxonomy) Kinds() []Kind {
	kinds := make([]Kind, len(t.names))
	for i := range t.names {
		kinds[i] = t.First + Kind(i)
	}
	return kinds
}

// KindName returns the name of k, or a hex form if k is not in the taxonomy.
func (t Taxonomy) KindName(k Kind) string {
	if !t.Contains(k) {
		return fmt.Sprintf("Kind(%#x)", int32(k))
	}
	return t.names[k-t.First]
}
