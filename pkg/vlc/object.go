// Package vlc binds the generic event manager to the media engine's six event
// taxonomies and provides the owning wrappers that expose them.
//
// Each wrapper holds one native Object and creates its typed event manager on
// first use. Releasing the wrapper detaches every callback still registered
// before the native reference is dropped, so no callback runs against a
// released object.
package vlc

import (
	"errors"
	"sync"

	"github.com/JailtonJunior94/mediaevents/pkg/events"
)

// ErrObjectNil is returned when a wrapper is built over a nil Object.
var ErrObjectNil = errors.New("vlc: native object is nil")

// Object is a reference-counted native engine object that emits events.
type Object interface {
	EventSource() events.Source
	Retain()
	Release()
}

// handle is the state shared by every owning wrapper: the native reference,
// the options for its manager and the manager itself once created.
type handle[M any] struct {
	obj      Object
	opts     []events.Option
	taxonomy events.Taxonomy
	wrap     func(core *events.Manager, opts []events.Option) *M

	mu       sync.Mutex
	core     *events.Manager
	typed    *M
	released bool
}

func newHandle[M any](obj Object, taxonomy events.Taxonomy, opts []events.Option,
	wrap func(*events.Manager, []events.Option) *M,
) (*handle[M], error) {
	if obj == nil {
		return nil, ErrObjectNil
	}
	return &handle[M]{obj: obj, opts: opts, taxonomy: taxonomy, wrap: wrap}, nil
}

// eventManager returns the typed manager, creating it on first call. A
// manager created after release is already closed.
func (h *handle[M]) eventManager() *M {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.typed != nil {
		return h.typed
	}
	core, err := events.NewManager(h.obj.EventSource(), h.taxonomy, h.opts...)
	if err != nil {
		core, _ = events.NewManager(closedSource{}, h.taxonomy, h.opts...)
		core.Close()
	}
	if h.released {
		core.Close()
	}
	h.core = core
	h.typed = h.wrap(core, h.opts)
	return h.typed
}

// release closes the manager, then drops the native reference. It is safe to
// call more than once.
func (h *handle[M]) release() {
	h.mu.Lock()
	if h.released {
		h.mu.Unlock()
		return
	}
	h.released = true
	core := h.core
	h.mu.Unlock()

	if core != nil {
		core.Close()
	}
	h.obj.Release()
}

func (h *handle[M]) isReleased() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.released
}

// retained takes a new native reference for a clone.
func (h *handle[M]) retained() Object {
	h.obj.Retain()
	return h.obj
}

// closedSource backs the manager of an object whose native emitter is
// missing. It is never attached to because the manager is closed first.
type closedSource struct{}

func (closedSource) Attach(events.Kind, events.Trampoline, any) error { return events.ErrManagerClosed }
func (closedSource) Detach(events.Kind, events.Trampoline, any)       {}

// Media is a playable media item.
type Media struct {
	h *handle[MediaEventManager]
}

// NewMedia wraps obj, taking over the caller's reference. opts configure the
// media's event manager.
func NewMedia(obj Object, opts ...events.Option) (*Media, error) {
	h, err := newHandle(obj, MediaEvents, opts, newMediaEventManager)
	if err != nil {
		return nil, err
	}
	return &Media{h: h}, nil
}

// wrapMedia retains a media reference borrowed from an event payload.
func wrapMedia(obj Object, opts []events.Option) *Media {
	if obj == nil {
		return nil
	}
	obj.Retain()
	m, _ := NewMedia(obj, opts...)
	return m
}

// EventManager returns the media's event manager.
func (m *Media) EventManager() *MediaEventManager { return m.h.eventManager() }

// Native returns the wrapped engine object.
func (m *Media) Native() Object { return m.h.obj }

// Released reports whether Release has been called.
func (m *Media) Released() bool { return m.h.isReleased() }

// Release detaches every registered callback and drops the native reference.
func (m *Media) Release() { m.h.release() }

// Clone returns a new wrapper over the same native media with its own,
// initially empty, event manager. Callbacks registered on one are not visible
// through the other, and each must be released.
func (m *Media) Clone() *Media {
	c, _ := NewMedia(m.h.retained(), m.h.opts...)
	return c
}

// MediaPlayer plays one media at a time.
type MediaPlayer struct {
	h *handle[PlayerEventManager]
}

// NewMediaPlayer wraps obj, taking over the caller's reference.
func NewMediaPlayer(obj Object, opts ...events.Option) (*MediaPlayer, error) {
	h, err := newHandle(obj, PlayerEvents, opts, newPlayerEventManager)
	if err != nil {
		return nil, err
	}
	return &MediaPlayer{h: h}, nil
}

func (p *MediaPlayer) EventManager() *PlayerEventManager { return p.h.eventManager() }
func (p *MediaPlayer) Native() Object                    { return p.h.obj }
func (p *MediaPlayer) Released() bool                    { return p.h.isReleased() }
func (p *MediaPlayer) Release()                          { p.h.release() }

// Clone returns an independent wrapper over the same native player.
func (p *MediaPlayer) Clone() *MediaPlayer {
	c, _ := NewMediaPlayer(p.h.retained(), p.h.opts...)
	return c
}

// MediaList is an ordered collection of media.
type MediaList struct {
	h *handle[ListEventManager]
}

// NewMediaList wraps obj, taking over the caller's reference.
func NewMediaList(obj Object, opts ...events.Option) (*MediaList, error) {
	h, err := newHandle(obj, ListEvents, opts, newListEventManager)
	if err != nil {
		return nil, err
	}
	return &MediaList{h: h}, nil
}

func (l *MediaList) EventManager() *ListEventManager { return l.h.eventManager() }
func (l *MediaList) Native() Object                  { return l.h.obj }
func (l *MediaList) Released() bool                  { return l.h.isReleased() }
func (l *MediaList) Release()                        { l.h.release() }

// Clone returns an independent wrapper over the same native list.
func (l *MediaList) Clone() *MediaList {
	c, _ := NewMediaList(l.h.retained(), l.h.opts...)
	return c
}

// MediaListPlayer plays the items of a MediaList in sequence.
type MediaListPlayer struct {
	h *handle[ListPlayerEventManager]
}

// NewMediaListPlayer wraps obj, taking over the caller's reference.
func NewMediaListPlayer(obj Object, opts ...events.Option) (*MediaListPlayer, error) {
	h, err := newHandle(obj, ListPlayerEvents, opts, newListPlayerEventManager)
	if err != nil {
		return nil, err
	}
	return &MediaListPlayer{h: h}, nil
}

func (p *MediaListPlayer) EventManager() *ListPlayerEventManager { return p.h.eventManager() }
func (p *MediaListPlayer) Native() Object                        { return p.h.obj }
func (p *MediaListPlayer) Released() bool                        { return p.h.isReleased() }
func (p *MediaListPlayer) Release()                              { p.h.release() }

// Clone returns an independent wrapper over the same native list player.
func (p *MediaListPlayer) Clone() *MediaListPlayer {
	c, _ := NewMediaListPlayer(p.h.retained(), p.h.opts...)
	return c
}

// MediaDiscoverer finds media on a network or local service.
type MediaDiscoverer struct {
	h *handle[DiscovererEventManager]
}

// NewMediaDiscoverer wraps obj, taking over the caller's reference.
func NewMediaDiscoverer(obj Object, opts ...events.Option) (*MediaDiscoverer, error) {
	h, err := newHandle(obj, DiscovererEvents, opts, newDiscovererEventManager)
	if err != nil {
		return nil, err
	}
	return &MediaDiscoverer{h: h}, nil
}

func (d *MediaDiscoverer) EventManager() *DiscovererEventManager { return d.h.eventManager() }
func (d *MediaDiscoverer) Native() Object                        { return d.h.obj }
func (d *MediaDiscoverer) Released() bool                        { return d.h.isReleased() }
func (d *MediaDiscoverer) Release()                              { d.h.release() }

// Clone returns an independent wrapper over the same native discoverer.
func (d *MediaDiscoverer) Clone() *MediaDiscoverer {
	c, _ := NewMediaDiscoverer(d.h.retained(), d.h.opts...)
	return c
}

// Instance is the engine instance. Its event manager carries the VLM
// broadcast events.
type Instance struct {
	h *handle[VLMEventManager]
}

// NewInstance wraps obj, taking over the caller's reference.
func NewInstance(obj Object, opts ...events.Option) (*Instance, error) {
	h, err := newHandle(obj, VLMEvents, opts, newVLMEventManager)
	if err != nil {
		return nil, err
	}
	return &Instance{h: h}, nil
}

func (i *Instance) EventManager() *VLMEventManager { return i.h.eventManager() }
func (i *Instance) Native() Object                 { return i.h.obj }
func (i *Instance) Released() bool                 { return i.h.isReleased() }
func (i *Instance) Release()                       { i.h.release() }

// Clone returns an independent wrapper over the same native instance.
func (i *Instance) Clone() *Instance {
	c, _ := NewInstance(i.h.retained(), i.h.opts...)
	return c
}
