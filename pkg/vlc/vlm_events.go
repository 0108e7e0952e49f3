package vlc

import "github.com/JailtonJunior94/mediaevents/pkg/events"

// VLMEventManager registers callbacks for VLMEvents. Media callbacks receive
// the broadcast media name; instance callbacks receive the media name and
// the instance name. Names the engine reports as missing arrive as "".
type VLMEventManager struct {
	*events.Manager
}

func newVLMEventManager(core *events.Manager, _ []events.Option) *VLMEventManager {
	return &VLMEventManager{Manager: core}
}

func (em *VLMEventManager) OnMediaAdded(fn func(mediaName string)) (events.Token, error) {
	return events.Handle(em.Manager, VLMMediaAdded, fn, bindVLMMedia)
}

func (em *VLMEventManager) OnMediaRemoved(fn func(mediaName string)) (events.Token, error) {
	return events.Handle(em.Manager, VLMMediaRemoved, fn, bindVLMMedia)
}

func (em *VLMEventManager) OnMediaChanged(fn func(mediaName string)) (events.Token, error) {
	return events.Handle(em.Manager, VLMMediaChanged, fn, bindVLMMedia)
}

func (em *VLMEventManager) OnMediaInstanceStarted(fn func(mediaName, instanceName string)) (events.Token, error) {
	return events.Handle(em.Manager, VLMMediaInstanceStarted, fn, bindVLMInstance)
}

func (em *VLMEventManager) OnMediaInstanceStopped(fn func(mediaName, instanceName string)) (events.Token, error) {
	return events.Handle(em.Manager, VLMMediaInstanceStopped, fn, bindVLMInstance)
}

func (em *VLMEventManager) OnMediaInstanceStatusInit(fn func(mediaName, instanceName string)) (events.Token, error) {
	return events.Handle(em.Manager, VLMMediaInstanceStatusInit, fn, bindVLMInstance)
}

func (em *VLMEventManager) OnMediaInstanceStatusOpening(fn func(mediaName, instanceName string)) (events.Token, error) {
	return events.Handle(em.Manager, VLMMediaInstanceStatusOpening, fn, bindVLMInstance)
}

func (em *VLMEventManager) OnMediaInstanceStatusPlaying(fn func(mediaName, instanceName string)) (events.Token, error) {
	return events.Handle(em.Manager, VLMMediaInstanceStatusPlaying, fn, bindVLMInstance)
}

func (em *VLMEventManager) OnMediaInstanceStatusPause(fn func(mediaName, instanceName string)) (events.Token, error) {
	return events.Handle(em.Manager, VLMMediaInstanceStatusPause, fn, bindVLMInstance)
}

func (em *VLMEventManager) OnMediaInstanceStatusEnd(fn func(mediaName, instanceName string)) (events.Token, error) {
	return events.Handle(em.Manager, VLMMediaInstanceStatusEnd, fn, bindVLMInstance)
}

func (em *VLMEventManager) OnMediaInstanceStatusError(fn func(mediaName, instanceName string)) (events.Token, error) {
	return events.Handle(em.Manager, VLMMediaInstanceStatusError, fn, bindVLMInstance)
}
