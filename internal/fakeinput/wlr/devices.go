package wlr

import (
	"time"

	"github.com/bnema/wayland-virtual-input-go/virtual_keyboard"
	"github.com/bnema/wayland-virtual-input-go/virtual_pointer"
)

// pointerDevice is the part of a virtual pointer VirtualInput drives.
type pointerDevice interface {
	motion(t time.Time, dx, dy float64) error
	motionAbsolute(t time.Time, x, y, width, height uint32) error
	button(t time.Time, button uint32, pressed bool) error
	wheel(t time.Time, horizontal bool, value float64, discrete int32) error
	frame() error
	close() error
}

type keyboardDevice interface {
	key(t time.Time, key uint32, pressed bool) error
	close() error
}

type virtualPointer struct {
	manager *virtual_pointer.VirtualPointerManager
	p       *virtual_pointer.VirtualPointer
}

func (v virtualPointer) motion(t time.Time, dx, dy float64) error {
	return v.p.Motion(t, dx, dy)
}

func (v virtualPointer) motionAbsolute(t time.Time, x, y, width, height uint32) error {
	return v.p.MotionAbsolute(t, x, y, width, height)
}

func (v virtualPointer) button(t time.Time, button uint32, pressed bool) error {
	if pressed {
		return v.p.Button(t, button, virtual_pointer.BUTTON_STATE_PRESSED)
	}
	return v.p.Button(t, button, virtual_pointer.BUTTON_STATE_RELEASED)
}

func (v virtualPointer) wheel(t time.Time, horizontal bool, value float64, discrete int32) error {
	if err := v.p.AxisSource(virtual_pointer.AxisSourceWheel); err != nil {
		return err
	}
	if horizontal {
		return v.p.AxisDiscrete(t, virtual_pointer.AxisHorizontal, value, discrete)
	}
	return v.p.AxisDiscrete(t, virtual_pointer.AxisVertical, value, discrete)
}

func (v virtualPointer) frame() error {
	return v.p.Frame()
}

func (v virtualPointer) close() error {
	err := v.p.Close()
	if merr := v.manager.Close(); err == nil {
		err = merr
	}
	return err
}

type virtualKeyboard struct {
	manager *virtual_keyboard.VirtualKeyboardManager
	k       *virtual_keyboard.VirtualKeyboard
}

func (v virtualKeyboard) key(t time.Time, key uint32, pressed bool) error {
	if pressed {
		return v.k.Key(t, key, virtual_keyboard.KeyStatePressed)
	}
	return v.k.Key(t, key, virtual_keyboard.KeyStateReleased)
}

func (v virtualKeyboard) close() error {
	err := v.k.Close()
	if merr := v.manager.Close(); err == nil {
		err = merr
	}
	return err
}
