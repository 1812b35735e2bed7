package xtest

import (
	"go-xtest-bridge/internal/fakeinput"
	"go-xtest-bridge/internal/xserver"
)

// Keycodes on the wire are evdev codes shifted by this offset; lower
// details have no evdev code.
const keycodeOffset = 8

// Details 4..7 are the emulated scroll wheel buttons.
const (
	scrollUp    = 4
	scrollDown  = 5
	scrollLeft  = 6
	scrollRight = 7
)

const scrollAmount = 10

// Adapter forwards XTest events to a bound fake-input object. Its zero
// value, or one whose bind failed, drops every event.
type Adapter struct {
	fake fakeinput.FakeInput
}

// Bound reports whether a fake-input object is attached.
func (a *Adapter) Bound() bool {
	return a != nil && a.fake != nil
}

// SendEvents implements xserver.EventSink. Failures on the fake-input side
// are dropped.
func (a *Adapter) SendEvents(dev *xserver.Device, ev *xserver.Event) {
	if !a.Bound() || ev == nil {
		return
	}

	var mask ValuatorMask
	mask.SetRange(ev.FirstValuator, ev.Valuators)

	version := a.fake.Version()

	switch ev.Type {
	case xserver.MotionNotify:
		x, _ := mask.Fetch(0)
		y, _ := mask.Fetch(1)
		if ev.Flags&xserver.PointerAbsolute == 0 {
			_ = a.fake.PointerMotion(float64(x), float64(y))
		} else if version >= fakeinput.PointerMotionAbsoluteSinceVersion {
			_ = a.fake.PointerMotionAbsolute(float64(x), float64(y))
		}

	case xserver.ButtonPress, xserver.ButtonRelease:
		if ev.Detail < scrollUp || ev.Detail > scrollRight {
			state := fakeinput.ButtonReleased
			if ev.Type == xserver.ButtonPress {
				state = fakeinput.ButtonPressed
			}
			_ = a.fake.Button(physicalButton(dev, ev.Detail), state)
		} else if ev.Type == xserver.ButtonRelease {
			axis := fakeinput.AxisVerticalScroll
			if ev.Detail >= scrollLeft {
				axis = fakeinput.AxisHorizontalScroll
			}
			amount := float64(scrollAmount)
			if ev.Detail == scrollUp || ev.Detail == scrollLeft {
				amount = -amount
			}
			_ = a.fake.Axis(axis, amount)
		}

	case xserver.KeyPress, xserver.KeyRelease:
		if version < fakeinput.KeyboardKeySinceVersion || ev.Detail < keycodeOffset {
			return
		}
		state := fakeinput.KeyReleased
		if ev.Type == xserver.KeyPress {
			state = fakeinput.KeyPressed
		}
		_ = a.fake.KeyboardKey(uint32(ev.Detail-keycodeOffset), state)
	}
}

// physicalButton maps a logical button through the device's map to a
// Linux button code, 0 when the physical button has no code.
func physicalButton(dev *xserver.Device, detail int) uint32 {
	if dev == nil {
		return 0
	}
	switch dev.MapButton(detail) {
	case 1:
		return fakeinput.BtnLeft
	case 2:
		return fakeinput.BtnMiddle
	case 3:
		return fakeinput.BtnRight
	case 5:
		return fakeinput.BtnSide
	case 8:
		return fakeinput.BtnBack
	case 9:
		return fakeinput.BtnForward
	}
	return 0
}
