package vlc

import (
	"time"

	"github.com/JailtonJunior94/mediaevents/pkg/events"
)

// MediaEventManager registers callbacks for MediaEvents. Every On method
// returns a Token for Unregister, or an error when the engine rejects the
// attachment or the media has been released.
type MediaEventManager struct {
	*events.Manager
	media mediaBinder
}

func newMediaEventManager(core *events.Manager, opts []events.Option) *MediaEventManager {
	return &MediaEventManager{Manager: core, media: opts}
}

// OnMetaChanged is called with the metadata field that changed.
func (em *MediaEventManager) OnMetaChanged(fn func(Meta)) (events.Token, error) {
	return events.Handle(em.Manager, MediaMetaChanged, fn, bindMeta)
}

// OnSubItemAdded is called with a new child media. The callback owns the
// *Media it receives and must Release it.
func (em *MediaEventManager) OnSubItemAdded(fn func(*Media)) (events.Token, error) {
	return events.Handle(em.Manager, MediaSubItemAdded, fn, em.media.subItem)
}

func (em *MediaEventManager) OnDurationChanged(fn func(time.Duration)) (events.Token, error) {
	return events.Handle(em.Manager, MediaDurationChanged, fn, bindDuration)
}

func (em *MediaEventManager) OnParsedChanged(fn func(parsed bool)) (events.Token, error) {
	return events.Handle(em.Manager, MediaParsedChanged, fn, bindParsed)
}

// OnFreed is called while the engine frees the media. The callback owns the
// *Media it receives and must Release it.
func (em *MediaEventManager) OnFreed(fn func(*Media)) (events.Token, error) {
	return events.Handle(em.Manager, MediaFreed, fn, em.media.freed)
}

func (em *MediaEventManager) OnStateChanged(fn func(State)) (events.Token, error) {
	return events.Handle(em.Manager, MediaStateChanged, fn, bindState)
}

// OnSubItemTreeAdded is called once a media's whole subitem tree has been
// built. The callback owns the *Media it receives and must Release it.
func (em *MediaEventManager) OnSubItemTreeAdded(fn func(*Media)) (events.Token, error) {
	return events.Handle(em.Manager, MediaSubItemTreeAdded, fn, em.media.subItem)
}
