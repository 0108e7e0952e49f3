package vlc

// Payload types carried in events.Event.Payload, one per event shape. Engine
// adapters build these from the native event union; kinds without data carry
// events.None or a nil payload.
//
// Fields of type Object are borrowed native references. They are retained and
// wrapped into a *Media before a callback sees them.

type MetaChanged struct {
	Meta Meta
}

// SubItem is the payload of MediaSubItemAdded, MediaSubItemTreeAdded and
// PlayerMediaChanged.
type SubItem struct {
	Item Object
}

// MediaFreedEvent is the payload of MediaFreed.
type MediaFreedEvent struct {
	Media Object
}

// Duration is the payload of MediaDurationChanged, PlayerTimeChanged and
// PlayerLengthChanged, in milliseconds.
type Duration struct {
	Milliseconds int64
}

type ParsedChanged struct {
	Parsed bool
}

type StateChanged struct {
	State State
}

type Buffering struct {
	Cache float32
}

type PositionChanged struct {
	Position float32
}

// Flag is the payload of PlayerSeekableChanged and PlayerPausableChanged.
type Flag struct {
	Value bool
}

// Count is the payload of the player's integer-valued kinds: title, vout and
// scrambled changes.
type Count struct {
	Value int
}

type SnapshotTaken struct {
	Filename string
}

// ESChanged is the payload of PlayerESAdded, PlayerESDeleted and
// PlayerESSelected.
type ESChanged struct {
	Type TrackType
	ID   int
}

// ListItem is the payload of every media list kind.
type ListItem struct {
	Item  Object
	Index int
}

// VLMMediaEvent is the payload of every VLM kind. The media-only kinds leave
// InstanceName empty.
type VLMMediaEvent struct {
	MediaName    string
	InstanceName string
}
