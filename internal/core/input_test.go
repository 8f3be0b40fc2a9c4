package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInputFrameOneTick(t *testing.T) {
	f := NewInputFrame()
	assert.False(t, f.Has(ActionLeft))

	// a tick can carry a shift and a rotation together
	f.Set(ActionLeft)
	f.Set(ActionRotate)
	assert.True(t, f.Has(ActionLeft))
	assert.True(t, f.Has(ActionRotate))
	assert.False(t, f.Has(ActionHardDrop))

	f.Clear()
	assert.False(t, f.Has(ActionLeft))
	assert.False(t, f.Has(ActionRotate))

	f.Set(ActionHardDrop)
	assert.True(t, f.Has(ActionHardDrop), "frame is reusable after Clear")
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame
	assert.False(t, f.Has(ActionPause))
	f.Clear()
	f.Set(ActionPause)
	assert.True(t, f.Has(ActionPause))
}

func TestActionString(t *testing.T) {
	tests := []struct {
		action Action
		want   string
	}{
		{ActionNone, "None"},
		{ActionLeft, "Left"},
		{ActionSoftDrop, "SoftDrop"},
		{ActionHardDrop, "HardDrop"},
		{ActionRestart, "Restart"},
		{Action(99), "Unknown"},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, tc.action.String())
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		name string
		want Color
		ok   bool
	}{
		{"cyan", ColorCyan, true},
		{" Orange ", ColorOrange, true},
		{"purple", ColorMagenta, true},
		{"bright-blue", ColorBrightBlue, true},
		{"chartreuse", ColorDefault, false},
	}

	for _, tc := range tests {
		got, ok := ParseColor(tc.name)
		assert.Equal(t, tc.want, got, tc.name)
		assert.Equal(t, tc.ok, ok, tc.name)
	}

	assert.Equal(t, "orange", ColorOrange.String())
}
