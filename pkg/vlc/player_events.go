package vlc

import (
	"time"

	"github.com/JailtonJunior94/mediaevents/pkg/events"
)

// PlayerEventManager registers callbacks for PlayerEvents.
type PlayerEventManager struct {
	*events.Manager
	media mediaBinder
}

func newPlayerEventManager(core *events.Manager, opts []events.Option) *PlayerEventManager {
	return &PlayerEventManager{Manager: core, media: opts}
}

// OnMediaChanged is called with the player's new media. The callback owns
// the *Media it receives and must Release it.
func (em *PlayerEventManager) OnMediaChanged(fn func(*Media)) (events.Token, error) {
	return events.Handle(em.Manager, PlayerMediaChanged, fn, em.media.subItem)
}

func (em *PlayerEventManager) OnNothingSpecial(fn func()) (events.Token, error) {
	return events.Handle(em.Manager, PlayerNothingSpecial, fn, bindNone)
}

func (em *PlayerEventManager) OnOpening(fn func()) (events.Token, error) {
	return events.Handle(em.Manager, PlayerOpening, fn, bindNone)
}

// OnBuffering is called with the cache fill level, in percent.
func (em *PlayerEventManager) OnBuffering(fn func(cache float32)) (events.Token, error) {
	return events.Handle(em.Manager, PlayerBuffering, fn, bindBuffering)
}

func (em *PlayerEventManager) OnPlaying(fn func()) (events.Token, error) {
	return events.Handle(em.Manager, PlayerPlaying, fn, bindNone)
}

func (em *PlayerEventManager) OnPaused(fn func()) (events.Token, error) {
	return events.Handle(em.Manager, PlayerPaused, fn, bindNone)
}

func (em *PlayerEventManager) OnStopped(fn func()) (events.Token, error) {
	return events.Handle(em.Manager, PlayerStopped, fn, bindNone)
}

func (em *PlayerEventManager) OnForward(fn func()) (events.Token, error) {
	return events.Handle(em.Manager, PlayerForward, fn, bindNone)
}

func (em *PlayerEventManager) OnBackward(fn func()) (events.Token, error) {
	return events.Handle(em.Manager, PlayerBackward, fn, bindNone)
}

func (em *PlayerEventManager) OnEndReached(fn func()) (events.Token, error) {
	return events.Handle(em.Manager, PlayerEndReached, fn, bindNone)
}

func (em *PlayerEventManager) OnEncounteredError(fn func()) (events.Token, error) {
	return events.Handle(em.Manager, PlayerEncounteredError, fn, bindNone)
}

// OnTimeChanged is called with the playback time.
func (em *PlayerEventManager) OnTimeChanged(fn func(time.Duration)) (events.Token, error) {
	return events.Handle(em.Manager, PlayerTimeChanged, fn, bindDuration)
}

// OnPositionChanged is called with the playback position in [0, 1].
func (em *PlayerEventManager) OnPositionChanged(fn func(position float32)) (events.Token, error) {
	return events.Handle(em.Manager, PlayerPositionChanged, fn, bindPosition)
}

func (em *PlayerEventManager) OnSeekableChanged(fn func(seekable bool)) (events.Token, error) {
	return events.Handle(em.Manager, PlayerSeekableChanged, fn, bindFlag)
}

func (em *PlayerEventManager) OnPausableChanged(fn func(pausable bool)) (events.Token, error) {
	return events.Handle(em.Manager, PlayerPausableChanged, fn, bindFlag)
}

func (em *PlayerEventManager) OnTitleChanged(fn func(title int)) (events.Token, error) {
	return events.Handle(em.Manager, PlayerTitleChanged, fn, bindCount)
}

// OnSnapshotTaken is called with the path of the written snapshot.
func (em *PlayerEventManager) OnSnapshotTaken(fn func(filename string)) (events.Token, error) {
	return events.Handle(em.Manager, PlayerSnapshotTaken, fn, bindSnapshot)
}

func (em *PlayerEventManager) OnLengthChanged(fn func(time.Duration)) (events.Token, error) {
	return events.Handle(em.Manager, PlayerLengthChanged, fn, bindDuration)
}

// OnVout is called with the number of video outputs.
func (em *PlayerEventManager) OnVout(fn func(count int)) (events.Token, error) {
	return events.Handle(em.Manager, PlayerVout, fn, bindCount)
}

func (em *PlayerEventManager) OnScrambledChanged(fn func(scrambled int)) (events.Token, error) {
	return events.Handle(em.Manager, PlayerScrambledChanged, fn, bindCount)
}

// OnESAdded is called when an elementary stream (a track) appears.
func (em *PlayerEventManager) OnESAdded(fn func(TrackType, int)) (events.Token, error) {
	return events.Handle(em.Manager, PlayerESAdded, fn, bindES)
}

func (em *PlayerEventManager) OnESDeleted(fn func(TrackType, int)) (events.Token, error) {
	return events.Handle(em.Manager, PlayerESDeleted, fn, bindES)
}

func (em *PlayerEventManager) OnESSelected(fn func(TrackType, int)) (events.Token, error) {
	return events.Handle(em.Manager, PlayerESSelected, fn, bindES)
}
