package vlc

import "github.com/JailtonJunior94/mediaevents/pkg/events"

// DiscovererEventManager registers callbacks for DiscovererEvents.
type DiscovererEventManager struct {
	*events.Manager
}

func newDiscovererEventManager(core *events.Manager, _ []events.Option) *DiscovererEventManager {
	return &DiscovererEventManager{Manager: core}
}

func (em *DiscovererEventManager) OnStarted(fn func()) (events.Token, error) {
	return events.Handle(em.Manager, DiscovererStarted, fn, bindNone)
}

// OnStopped is called when discovery ends.
func (em *DiscovererEventManager) OnStopped(fn func()) (events.Token, error) {
	return events.Handle(em.Manager, DiscovererEnded, fn, bindNone)
}
