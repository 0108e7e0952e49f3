package vlc

import (
	"time"

	"github.com/JailtonJunior94/mediaevents/pkg/events"
)

// Ignore adapts a callback that takes no arguments to a kind with a
// one-field payload.
//
//	em.OnPositionChanged(vlc.Ignore[float32](func() { redraw() }))
func Ignore[A any](fn func()) func(A) {
	if fn == nil {
		return nil
	}
	return func(A) { fn() }
}

// Ignore2 is Ignore for kinds with a two-field payload.
func Ignore2[A, B any](fn func()) func(A, B) {
	if fn == nil {
		return nil
	}
	return func(A, B) { fn() }
}

func bindNone(fn func(), _ events.None)                { fn() }
func bindMeta(fn func(Meta), p MetaChanged)            { fn(p.Meta) }
func bindParsed(fn func(bool), p ParsedChanged)        { fn(p.Parsed) }
func bindState(fn func(State), p StateChanged)         { fn(p.State) }
func bindBuffering(fn func(float32), p Buffering)      { fn(p.Cache) }
func bindPosition(fn func(float32), p PositionChanged) { fn(p.Position) }
func bindFlag(fn func(bool), p Flag)                   { fn(p.Value) }
func bindCount(fn func(int), p Count)                  { fn(p.Value) }
func bindSnapshot(fn func(string), p SnapshotTaken)    { fn(p.Filename) }
func bindES(fn func(TrackType, int), p ESChanged)      { fn(p.Type, p.ID) }
func bindVLMMedia(fn func(string), p VLMMediaEvent)    { fn(p.MediaName) }
func bindVLMInstance(fn func(string, string), p VLMMediaEvent) {
	fn(p.MediaName, p.InstanceName)
}

func bindDuration(fn func(time.Duration), p Duration) {
	fn(time.Duration(p.Milliseconds) * time.Millisecond)
}

// mediaBinder wraps the native media carried by a payload into a *Media whose
// event manager uses the same options as the manager that delivered it.
type mediaBinder []events.Option

func (b mediaBinder) subItem(fn func(*Media), p SubItem) {
	fn(wrapMedia(p.Item, b))
}

func (b mediaBinder) freed(fn func(*Media), p MediaFreedEvent) {
	fn(wrapMedia(p.Media, b))
}

func (b mediaBinder) listItem(fn func(*Media, int), p ListItem) {
	fn(wrapMedia(p.Item, b), p.Index)
}
