package events

import (
	"reflect"
	"sync/atomic"
	"time"
)

// None is the payload type of kinds that carry no data.
type None struct{}

// Binding hands the payload of one event kind to a callback of type F.
// Taxonomies declare one Binding per (kind, callback signature) pair.
type Binding[F, P any] func(fn F, payload P)

// invoker is the erased form of a stored callback. The Source's data value is
// always an invoker, so a trampoline needs no table lookup to find it.
type invoker interface {
	invoke(ev *Event)
}

// callback stores one user callback together with the binding that unpacks
// its payload. Its address is the data value attached to the Source and stays
// valid until the attachment is detached.
type callback[F, P any] struct {
	fn    F
	bind  Binding[F, P]
	kind  Kind
	token atomic.Uint64
	owner *Manager
}

func (c *callback[F, P]) invoke(ev *Event) {
	payload, ok := ev.Payload.(P)
	if !ok {
		if _, empty := any(payload).(None); !empty {
			c.owner.payloadMismatch(c.kind, Token(c.token.Load()), ev)
			return
		}
	}

	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			c.owner.recovered(c.kind, Token(c.token.Load()), r)
		}
		c.owner.dispatched(c.kind, time.Since(start))
	}()

	c.bind(c.fn, payload)
}

// trampoline is instantiated once per (callback type, payload type) pair and
// is the function every Source attachment points at.
func trampoline[F, P any](ev *Event, data any) {
	data.(*callback[F, P]).invoke(ev)
}

// Handle registers fn for kind on m and returns the Token that revokes it.
// bind unpacks the kind's payload into fn's arguments; a callback whose
// signature does not match F is rejected by the compiler.
//
// Handle fails without attaching anything when fn is nil, kind is outside
// m's taxonomy, or m is closed. If the Source rejects the attachment the
// error wraps ErrAttachFailed and no registration is kept.
func Handle[F, P any](m *Manager, kind Kind, fn F, bind Binding[F, P]) (Token, error) {
	if isNilFunc(fn) || bind == nil {
		return NoToken, ErrCallbackNil
	}
	if !m.taxonomy.Contains(kind) {
		return NoToken, m.outOfRange(kind)
	}

	cb := &callback[F, P]{
		fn:    fn,
		bind:  bind,
		kind:  kind,
		owner: m,
	}
	tok, err := m.register(kind, trampoline[F, P], cb)
	if err != nil {
		return NoToken, err
	}
	cb.token.Store(uint64(tok))
	return tok, nil
}

// isNilFunc reports whether fn is a nil func value. F is unconstrained, so a
// typed nil func does not compare equal to nil once boxed.
func isNilFunc(fn any) bool {
	if fn == nil {
		return true
	}
	v := reflect.ValueOf(fn)
	return v.Kind() == reflect.Func && v.IsNil()
}
