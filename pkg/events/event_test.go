package events_test

import (
	"testing"

	"github.com/JailtonJunior94/mediaevents/pkg/events"
	"github.com/stretchr/testify/assert"
)

func TestTaxonomy(t *testing.T) {
	tax := events.NewTaxonomy("player", 0x100, "MediaChanged", "NothingSpecial", "Opening")

	assert.Equal(t, 3, tax.Len())
	assert.Equal(t, events.Kind(0x102), tax.Last())
	assert.Equal(t, []events.Kind{0x100, 0x101, 0x102}, tax.Kinds())

	tests := []struct {
		name     string
		kind     events.Kind
		contains bool
		kindName string
	}{
		{name: "first", kind: 0x100, contains: true, kindName: "MediaChanged"},
		{name: "last", kind: 0x102, contains: true, kindName: "Opening"},
		{name: "below", kind: 0xff, contains: false, kindName: "Kind(0xff)"},
		{name: "above", kind: 0x103, contains: false, kindName: "Kind(0x103)"},
		{name: "other taxonomy", kind: 0x200, contains: false, kindName: "Kind(0x200)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.contains, tax.Contains(tt.kind))
			assert.Equal(t, tt.kindName, tax.KindName(tt.kind))
		})
	}
}

func TestTaxonomy_Empty(t *testing.T) {
	tax := events.NewTaxonomy("empty", 0x100)

	assert.Zero(t, tax.Len())
	assert.False(t, tax.Contains(0x100))
	assert.False(t, tax.Contains(0xff))
	assert.Empty(t, tax.Kinds())
}
