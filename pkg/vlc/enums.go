package vlc

import "fmt"

// State is the playback state of a media.
type State int

const (
	StateNothingSpecial State = iota
	StateOpening
	StateBuffering
	StatePlaying
	StatePaused
	StateStopped
	StateEnded
	StateError
)

var stateNames = [...]string{
	"NothingSpecial", "Opening", "Buffering", "Playing",
	"Paused", "Stopped", "Ended", "Error",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return fmt.Sprintf("State(%d)", int(s))
	}
	return stateNames[s]
}

// Meta identifies one metadata field of a media.
type Meta int

const (
	MetaTitle Meta = iota
	MetaArtist
	MetaGenre
	MetaCopyright
	MetaAlbum
	MetaTrackNumber
	MetaDescription
	MetaRating
	MetaDate
	MetaSetting
	MetaURL
	MetaLanguage
	MetaNowPlaying
	MetaPublisher
	MetaEncodedBy
	MetaArtworkURL
	MetaTrackID
)

var metaNames = [...]string{
	"Title", "Artist", "Genre", "Copyright", "Album", "TrackNumber",
	"Description", "Rating", "Date", "Setting", "URL", "Language",
	"NowPlaying", "Publisher", "EncodedBy", "ArtworkURL", "TrackID",
}

func (m Meta) String() string {
	if m < 0 || int(m) >= len(metaNames) {
		return fmt.Sprintf("Meta(%d)", int(m))
	}
	return metaNames[m]
}

// TrackType is the kind of an elementary stream.
type TrackType int

const (
	TrackUnknown TrackType = -1
	TrackAudio   TrackType = 0
	TrackVideo   TrackType = 1
	TrackText    TrackType = 2
)

func (t TrackType) String() string {
	switch t {
	case TrackUnknown:
		return "unknown"
	case TrackAudio:
		return "audio"
	case TrackVideo:
		return "video"
	case TrackText:
		return "text"
	default:
		return fmt.Sprintf("TrackType(%d)", int(t))
	}
}
