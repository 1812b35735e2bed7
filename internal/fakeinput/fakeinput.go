// Package fakeinput describes the compositor fake-input capability that
// synthetic events are forwarded to, and the constants shared by its
// backends.
package fakeinput

// InterfaceName is the Wayland global announcing the capability.
const InterfaceName = "org_kde_kwin_fake_input"

// First protocol version carrying each request.
const (
	PointerMotionAbsoluteSinceVersion = 3
	KeyboardKeySinceVersion           = 4
)

// Linux input-event-codes for pointer buttons.
const (
	BtnLeft    = 0x110
	BtnRight   = 0x111
	BtnMiddle  = 0x112
	BtnSide    = 0x113
	BtnExtra   = 0x114
	BtnForward = 0x115
	BtnBack    = 0x116
)

type ButtonState uint32

const (
	ButtonReleased ButtonState = 0
	ButtonPressed  ButtonState = 1
)

type KeyState uint32

const (
	KeyReleased KeyState = 0
	KeyPressed  KeyState = 1
)

type Axis uint32

const (
	AxisVerticalScroll   Axis = 0
	AxisHorizontalScroll Axis = 1
)

// FakeInput is a bound fake-input object. Version reports the version the
// object was bound at; requests newer than that must not be issued.
type FakeInput interface {
	Version() uint32
	Authenticate(application, reason string) error
	PointerMotion(dx, dy float64) error
	PointerMotionAbsolute(x, y float64) error
	Button(button uint32, state ButtonState) error
	Axis(axis Axis, value float64) error
	KeyboardKey(key uint32, state KeyState) error
}
