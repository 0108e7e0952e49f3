package vlc_test

import (
	"testing"

	"github.com/JailtonJunior94/mediaevents/pkg/events"
	"github.com/JailtonJunior94/mediaevents/pkg/vlc"
	"github.com/stretchr/testify/assert"
)

func TestEnumStrings(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"state playing", vlc.StatePlaying.String(), "Playing"},
		{"state error", vlc.StateError.String(), "Error"},
		{"state unknown", vlc.State(42).String(), "State(42)"},
		{"meta title", vlc.MetaTitle.String(), "Title"},
		{"meta track id", vlc.MetaTrackID.String(), "TrackID"},
		{"meta negative", vlc.Meta(-1).String(), "Meta(-1)"},
		{"track audio", vlc.TrackAudio.String(), "audio"},
		{"track unknown", vlc.TrackUnknown.String(), "unknown"},
		{"track invalid", vlc.TrackType(7).String(), "TrackType(7)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}

func TestTaxonomies(t *testing.T) {
	tests := []struct {
		taxonomy events.Taxonomy
		first    events.Kind
		last     events.Kind
	}{
		{vlc.MediaEvents, 0x000, vlc.MediaSubItemTreeAdded},
		{vlc.PlayerEvents, 0x100, vlc.PlayerESSelected},
		{vlc.ListEvents, 0x200, vlc.ListWillDeleteItem},
		{vlc.ListPlayerEvents, 0x400, vlc.ListPlayerStopped},
		{vlc.DiscovererEvents, 0x500, vlc.DiscovererEnded},
		{vlc.VLMEvents, 0x600, vlc.VLMMediaInstanceStatusError},
	}

	for _, tt := range tests {
		t.Run(tt.taxonomy.Name, func(t *testing.T) {
			assert.Equal(t, tt.first, tt.taxonomy.First)
			assert.Equal(t, tt.last, tt.taxonomy.Last())
		})
	}

	assert.Equal(t, events.Kind(0x116), vlc.PlayerESSelected)
	assert.Equal(t, "PausableChanged", vlc.PlayerEvents.KindName(vlc.PlayerPausableChanged))
	assert.Equal(t, "SubItemTreeAdded", vlc.MediaEvents.KindName(vlc.MediaSubItemTreeAdded))
	assert.False(t, vlc.PlayerEvents.Contains(vlc.ListItemAdded))
}
