package vlc

import "github.com/JailtonJunior94/mediaevents/pkg/events"

// ListEventManager registers callbacks for ListEvents. Every callback
// receives the affected media and its index, and owns the *Media.
type ListEventManager struct {
	*events.Manager
	media mediaBinder
}

func newListEventManager(core *events.Manager, opts []events.Option) *ListEventManager {
	return &ListEventManager{Manager: core, media: opts}
}

func (em *ListEventManager) OnItemAdded(fn func(*Media, int)) (events.Token, error) {
	return events.Handle(em.Manager, ListItemAdded, fn, em.media.listItem)
}

func (em *ListEventManager) OnWillAddItem(fn func(*Media, int)) (events.Token, error) {
	return events.Handle(em.Manager, ListWillAddItem, fn, em.media.listItem)
}

func (em *ListEventManager) OnItemDeleted(fn func(*Media, int)) (events.Token, error) {
	return events.Handle(em.Manager, ListItemDeleted, fn, em.media.listItem)
}

func (em *ListEventManager) OnWillDeleteItem(fn func(*Media, int)) (events.Token, error) {
	return events.Handle(em.Manager, ListWillDeleteItem, fn, em.media.listItem)
}

// ListPlayerEventManager registers callbacks for ListPlayerEvents.
type ListPlayerEventManager struct {
	*events.Manager
	media mediaBinder
}

func newListPlayerEventManager(core *events.Manager, opts []events.Option) *ListPlayerEventManager {
	return &ListPlayerEventManager{Manager: core, media: opts}
}

func (em *ListPlayerEventManager) OnPlayed(fn func()) (events.Token, error) {
	return events.Handle(em.Manager, ListPlayerPlayed, fn, bindNone)
}

// OnNextItemSet is called with the media the list player moves to. The
// callback owns the *Media and must Release it.
func (em *ListPlayerEventManager) OnNextItemSet(fn func(*Media)) (events.Token, error) {
	return events.Handle(em.Manager, ListPlayerNextItemSet, fn, em.media.subItem)
}

func (em *ListPlayerEventManager) OnStopped(fn func()) (events.Token, error) {
	return events.Handle(em.Manager, ListPlayerStopped, fn, bindNone)
}
