package vlc_test

import (
	"fmt"

	"github.com/JailtonJunior94/mediaevents/pkg/events"
	"github.com/JailtonJunior94/mediaevents/pkg/events/fake"
	"github.com/JailtonJunior94/mediaevents/pkg/vlc"
)

func ExampleMediaPlayer() {
	native := fake.NewObject(fake.WithTaxonomy(vlc.PlayerEvents))
	player, err := vlc.NewMediaPlayer(native)
	if err != nil {
		panic(err)
	}
	defer player.Release()

	em := player.EventManager()
	pos, _ := em.OnPositionChanged(func(p float32) { fmt.Printf("position %.2f\n", p) })
	_, _ = em.OnESAdded(func(kind vlc.TrackType, id int) { fmt.Println("track", kind, id) })

	native.Emit(events.Event{Type: vlc.PlayerPositionChanged, Payload: vlc.PositionChanged{Position: 0.25}})
	native.Emit(events.Event{Type: vlc.PlayerESAdded, Payload: vlc.ESChanged{Type: vlc.TrackAudio, ID: 3}})

	em.Unregister(pos)
	native.Emit(events.Event{Type: vlc.PlayerPositionChanged, Payload: vlc.PositionChanged{Position: 0.5}})
	// Output:
	// position 0.25
	// track audio 3
}
