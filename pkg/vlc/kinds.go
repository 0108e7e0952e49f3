package vlc

import "github.com/JailtonJunior94/mediaevents/pkg/events"

// Media events.
const (
	MediaMetaChanged events.Kind = 0x000 + iota
	MediaSubItemAdded
	MediaDurationChanged
	MediaParsedChanged
	MediaFreed
	MediaStateChanged
	MediaSubItemTreeAdded
)

// Media player events.
const (
	PlayerMediaChanged events.Kind = 0x100 + iota
	PlayerNothingSpecial
	PlayerOpening
	PlayerBuffering
	PlayerPlaying
	PlayerPaused
	PlayerStopped
	PlayerForward
	PlayerBackward
	PlayerEndReached
	PlayerEncounteredError
	PlayerTimeChanged
	PlayerPositionChanged
	PlayerSeekableChanged
	PlayerPausableChanged
	PlayerTitleChanged
	PlayerSnapshotTaken
	PlayerLengthChanged
	PlayerVout
	PlayerScrambledChanged
	PlayerESAdded
	PlayerESDeleted
	PlayerESSelected
)

// Media list events.
const (
	ListItemAdded events.Kind = 0x200 + iota
	ListWillAddItem
	ListItemDeleted
	ListWillDeleteItem
)

// Media list player events.
const (
	ListPlayerPlayed events.Kind = 0x400 + iota
	ListPlayerNextItemSet
	ListPlayerStopped
)

// Media discoverer events.
const (
	DiscovererStarted events.Kind = 0x500 + iota
	DiscovererEnded
)

// VLM events, emitted by the Instance.
const (
	VLMMediaAdded events.Kind = 0x600 + iota
	VLMMediaRemoved
	VLMMediaChanged
	VLMMediaInstanceStarted
	VLMMediaInstanceStopped
	VLMMediaInstanceStatusInit
	VLMMediaInstanceStatusOpening
	VLMMediaInstanceStatusPlaying
	VLMMediaInstanceStatusPause
	VLMMediaInstanceStatusEnd
	VLMMediaInstanceStatusError
)

var (
	MediaEvents = events.NewTaxonomy("media", MediaMetaChanged,
		"MetaChanged", "SubItemAdded", "DurationChanged", "ParsedChanged",
		"Freed", "StateChanged", "SubItemTreeAdded",
	)

	PlayerEvents = events.NewTaxonomy("media_player", PlayerMediaChanged,
		"MediaChanged", "NothingSpecial", "Opening", "Buffering", "Playing",
		"Paused", "Stopped", "Forward", "Backward", "EndReached",
		"EncounteredError", "TimeChanged", "PositionChanged", "SeekableChanged",
		"PausableChanged", "TitleChanged", "SnapshotTaken", "LengthChanged",
		"Vout", "ScrambledChanged", "ESAdded", "ESDeleted", "ESSelected",
	)

	ListEvents = events.NewTaxonomy("media_list", ListItemAdded,
		"ItemAdded", "WillAddItem", "ItemDeleted", "WillDeleteItem",
	)

	ListPlayerEvents = events.NewTaxonomy("media_list_player", ListPlayerPlayed,
		"Played", "NextItemSet", "Stopped",
	)

	DiscovererEvents = events.NewTaxonomy("media_discoverer", DiscovererStarted,
		"Started", "Ended",
	)

	VLMEvents = events.NewTaxonomy("vlm", VLMMediaAdded,
		"MediaAdded", "MediaRemoved", "MediaChanged", "MediaInstanceStarted",
		"MediaInstanceStopped", "MediaInstanceStatusInit", "MediaInstanceStatusOpening",
		"MediaInstanceStatusPlaying", "MediaInstanceStatusPause",
		"MediaInstanceStatusEnd", "MediaInstanceStatusError",
	)
)
