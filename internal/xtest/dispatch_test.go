package xtest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-xtest-bridge/internal/fakeinput"
	"go-xtest-bridge/internal/xserver"
)

func newBound(version uint32) (*Adapter, *fakeinput.Trace) {
	trace := fakeinput.NewTrace(version, nil)
	return &Adapter{fake: trace}, trace
}

func call(request string, args ...interface{}) fakeinput.Call {
	return fakeinput.Call{Request: request, Args: args}
}

func TestUnboundAdapterDropsEverything(t *testing.T) {
	dev := xserver.NewDevice("Virtual core XTEST pointer")
	events := []*xserver.Event{
		{Type: xserver.MotionNotify, Valuators: []int{1, 2}},
		{Type: xserver.ButtonPress, Detail: 1},
		{Type: xserver.ButtonRelease, Detail: 4},
		{Type: xserver.KeyPress, Detail: 30},
	}

	var zero Adapter
	var nilAdapter *Adapter
	for _, ev := range events {
		assert.NotPanics(t, func() {
			zero.SendEvents(dev, ev)
			nilAdapter.SendEvents(dev, ev)
		})
	}
	assert.False(t, zero.Bound())
	assert.False(t, nilAdapter.Bound())
}

func TestRelativeMotion(t *testing.T) {
	for _, version := range []uint32{1, 2, 3, 4} {
		a, trace := newBound(version)
		a.SendEvents(xserver.NewDevice("p"), &xserver.Event{
			Type:      xserver.MotionNotify,
			Flags:     xserver.PointerRelative,
			Valuators: []int{5, -3},
		})
		assert.Equal(t, []fakeinput.Call{call("pointer_motion", 5.0, -3.0)}, trace.Calls, "version %d", version)
	}
}

func TestMotionMissingValuatorsDefaultToZero(t *testing.T) {
	a, trace := newBound(4)
	a.SendEvents(xserver.NewDevice("p"), &xserver.Event{
		Type:          xserver.MotionNotify,
		FirstValuator: 1,
		Valuators:     []int{7},
	})
	assert.Equal(t, []fakeinput.Call{call("pointer_motion", 0.0, 7.0)}, trace.Calls)
}

func TestAbsoluteMotion(t *testing.T) {
	ev := &xserver.Event{
		Type:      xserver.MotionNotify,
		Flags:     xserver.PointerAbsolute,
		Valuators: []int{640, 480},
	}

	a, trace := newBound(fakeinput.PointerMotionAbsoluteSinceVersion)
	a.SendEvents(xserver.NewDevice("p"), ev)
	assert.Equal(t, []fakeinput.Call{call("pointer_motion_absolute", 640.0, 480.0)}, trace.Calls)

	a, trace = newBound(fakeinput.PointerMotionAbsoluteSinceVersion - 1)
	a.SendEvents(xserver.NewDevice("p"), ev)
	assert.Empty(t, trace.Calls)
}

func TestButtons(t *testing.T) {
	dev := xserver.NewDevice("Virtual core XTEST pointer")
	tests := []struct {
		detail int
		want   uint32
	}{
		{1, fakeinput.BtnLeft},
		{2, fakeinput.BtnMiddle},
		{3, fakeinput.BtnRight},
		{8, fakeinput.BtnBack},
		{9, fakeinput.BtnForward},
		{10, 0},
		{300, 0},
	}
	for _, tt := range tests {
		a, trace := newBound(4)
		a.SendEvents(dev, &xserver.Event{Type: xserver.ButtonPress, Detail: tt.detail})
		a.SendEvents(dev, &xserver.Event{Type: xserver.ButtonRelease, Detail: tt.detail})
		assert.Equal(t, []fakeinput.Call{
			call("button", tt.want, fakeinput.ButtonPressed),
			call("button", tt.want, fakeinput.ButtonReleased),
		}, trace.Calls, "detail %d", tt.detail)
	}
}

func TestButtonsFollowDeviceMap(t *testing.T) {
	dev := xserver.NewDevice("Virtual core XTEST pointer")
	dev.ButtonMap[1] = 3
	dev.ButtonMap[3] = 1
	dev.ButtonMap[9] = 5

	a, trace := newBound(4)
	a.SendEvents(dev, &xserver.Event{Type: xserver.ButtonPress, Detail: 1})
	a.SendEvents(dev, &xserver.Event{Type: xserver.ButtonPress, Detail: 3})
	a.SendEvents(dev, &xserver.Event{Type: xserver.ButtonPress, Detail: 9})
	assert.Equal(t, []fakeinput.Call{
		call("button", uint32(fakeinput.BtnRight), fakeinput.ButtonPressed),
		call("button", uint32(fakeinput.BtnLeft), fakeinput.ButtonPressed),
		call("button", uint32(fakeinput.BtnSide), fakeinput.ButtonPressed),
	}, trace.Calls)
}

func TestScrollButtons(t *testing.T) {
	dev := xserver.NewDevice("Virtual core XTEST pointer")
	tests := []struct {
		detail int
		axis   fakeinput.Axis
		amount float64
	}{
		{4, fakeinput.AxisVerticalScroll, -10},
		{5, fakeinput.AxisVerticalScroll, 10},
		{6, fakeinput.AxisHorizontalScroll, -10},
		{7, fakeinput.AxisHorizontalScroll, 10},
	}
	for _, tt := range tests {
		a, trace := newBound(4)
		a.SendEvents(dev, &xserver.Event{Type: xserver.ButtonPress, Detail: tt.detail})
		require.Empty(t, trace.Calls, "press %d", tt.detail)

		a.SendEvents(dev, &xserver.Event{Type: xserver.ButtonRelease, Detail: tt.detail})
		assert.Equal(t, []fakeinput.Call{call("axis", tt.axis, tt.amount)}, trace.Calls, "release %d", tt.detail)
	}
}

func TestKeys(t *testing.T) {
	dev := xserver.NewDevice("Virtual core XTEST keyboard")

	a, trace := newBound(fakeinput.KeyboardKeySinceVersion)
	a.SendEvents(dev, &xserver.Event{Type: xserver.KeyPress, Detail: 30})
	a.SendEvents(dev, &xserver.Event{Type: xserver.KeyRelease, Detail: 30})
	assert.Equal(t, []fakeinput.Call{
		call("keyboard_key", uint32(22), fakeinput.KeyPressed),
		call("keyboard_key", uint32(22), fakeinput.KeyReleased),
	}, trace.Calls)

	a, trace = newBound(fakeinput.KeyboardKeySinceVersion - 1)
	a.SendEvents(dev, &xserver.Event{Type: xserver.KeyPress, Detail: 30})
	assert.Empty(t, trace.Calls)
}

func TestKeysBelowOffsetDropped(t *testing.T) {
	a, trace := newBound(4)
	dev := xserver.NewDevice("Virtual core XTEST keyboard")
	for _, detail := range []int{-1, 0, 3, 7} {
		a.SendEvents(dev, &xserver.Event{Type: xserver.KeyPress, Detail: detail})
	}
	assert.Empty(t, trace.Calls)

	a.SendEvents(dev, &xserver.Event{Type: xserver.KeyPress, Detail: 8})
	assert.Equal(t, []fakeinput.Call{call("keyboard_key", uint32(0), fakeinput.KeyPressed)}, trace.Calls)
}

func TestOtherEventsIgnored(t *testing.T) {
	a, trace := newBound(4)
	a.SendEvents(xserver.NewDevice("p"), &xserver.Event{Type: 12, Detail: 1})
	a.SendEvents(xserver.NewDevice("p"), nil)
	assert.Empty(t, trace.Calls)
}

func TestValuatorMask(t *testing.T) {
	var m ValuatorMask
	m.SetRange(2, []int{10, 20})
	m.SetRange(MaxValuators-1, []int{1, 2})

	_, ok := m.Fetch(0)
	assert.False(t, ok)
	v, ok := m.Fetch(3)
	assert.True(t, ok)
	assert.Equal(t, 20, v)
	v, ok = m.Fetch(MaxValuators - 1)
	assert.True(t, ok)
	assert.Equal(t, 1, v)
	_, ok = m.Fetch(MaxValuators)
	assert.False(t, ok)
}
