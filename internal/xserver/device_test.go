package xserver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDeviceIdentityMap(t *testing.T) {
	d := NewDevice("Virtual core XTEST pointer")
	assert.Equal(t, uint8(1), d.MapButton(1))
	assert.Equal(t, uint8(9), d.MapButton(9))
	assert.Equal(t, uint8(0), d.MapButton(-1))
	assert.Equal(t, uint8(0), d.MapButton(MaxButtons))
}

func TestDeliverWithoutSink(t *testing.T) {
	d := NewDevice("kbd")
	assert.False(t, d.Deliver(&Event{Type: KeyPress, Detail: 30}))
}

func TestDeliverToSink(t *testing.T) {
	d := NewDevice("kbd")
	var got []*Event
	d.SetEventSink(EventSinkFunc(func(dev *Device, ev *Event) {
		require.Same(t, d, dev)
		got = append(got, ev)
	}))

	ev := &Event{Type: KeyRelease, Detail: 30}
	assert.True(t, d.Deliver(ev))
	require.Len(t, got, 1)
	assert.Same(t, ev, got[0])
}

func TestSeatCapabilities(t *testing.T) {
	s := &Seat{Name: "seat0", Capabilities: CapPointer | CapKeyboard}
	assert.True(t, s.Has(CapPointer))
	assert.False(t, s.Has(CapAll))

	s.ExpectCapabilitiesEvent()
	screen := &Screen{Seats: []*Seat{s, {Name: "seat1"}}}
	screen.Seats[1].ExpectCapabilitiesEvent()
	assert.Equal(t, 1, s.PendingEvents())
	assert.Equal(t, 2, screen.ExpectingEvents())
}

func TestParseCapability(t *testing.T) {
	c, ok := ParseCapability("Touch")
	assert.True(t, ok)
	assert.Equal(t, CapTouch, c)

	_, ok = ParseCapability("tablet")
	assert.False(t, ok)
}

func TestEventTypeCodes(t *testing.T) {
	assert.Equal(t, 2, int(KeyPress))
	assert.Equal(t, 6, int(MotionNotify))
	assert.Equal(t, "ButtonRelease", ButtonRelease.String())
}
