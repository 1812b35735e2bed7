package xserver

import "github.com/BurntSushi/xgb/xproto"

// EventType is a core protocol event code.
type EventType int

const (
	KeyPress      EventType = xproto.KeyPress
	KeyRelease    EventType = xproto.KeyRelease
	ButtonPress   EventType = xproto.ButtonPress
	ButtonRelease EventType = xproto.ButtonRelease
	MotionNotify  EventType = xproto.MotionNotify
)

func (t EventType) String() string {
	switch t {
	case KeyPress:
		return "KeyPress"
	case KeyRelease:
		return "KeyRelease"
	case ButtonPress:
		return "ButtonPress"
	case ButtonRelease:
		return "ButtonRelease"
	case MotionNotify:
		return "MotionNotify"
	}
	return "Unknown"
}

// Flags carried by pointer events.
const (
	PointerRelative = 1 << 1
	PointerAbsolute = 1 << 2
)

// Event describes one synthetic input event as the host hands it to a
// device's event sink. It is not retained after delivery.
type Event struct {
	Type          EventType
	Detail        int
	Flags         int
	FirstValuator int
	Valuators     []int
}

// EventSink receives the events delivered to a device.
type EventSink interface {
	SendEvents(dev *Device, ev *Event)
}

// EventSinkFunc adapts a plain function to EventSink.
type EventSinkFunc func(dev *Device, ev *Event)

func (f EventSinkFunc) SendEvents(dev *Device, ev *Event) {
	f(dev, ev)
}
