// Package wlr forwards fake-input requests to the wlroots virtual pointer
// and virtual keyboard protocols.
package wlr

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/bnema/wayland-virtual-input-go/virtual_keyboard"
	"github.com/bnema/wayland-virtual-input-go/virtual_pointer"
	log "github.com/withmandala/go-log"

	"go-xtest-bridge/internal/fakeinput"
)

// Version is the fake-input version this backend behaves like: every
// request is available.
const Version = fakeinput.KeyboardKeySinceVersion

// VirtualInput owns one virtual pointer and one virtual keyboard.
type VirtualInput struct {
	pointer  pointerDevice
	keyboard keyboardDevice
	logger   *log.Logger
	mu       sync.Mutex
	closed   bool

	// Output extent absolute coordinates are relative to.
	width  uint32
	height uint32
}

// New connects to the compositor and creates the virtual devices.
func New(ctx context.Context, width, height int, logger *log.Logger) (*VirtualInput, error) {
	pointerManager, err := virtual_pointer.NewVirtualPointerManager(ctx)
	if err != nil {
		return nil, fmt.Errorf("create virtual pointer manager: %w", err)
	}
	pointer, err := pointerManager.CreatePointer()
	if err != nil {
		pointerManager.Close()
		return nil, fmt.Errorf("create virtual pointer: %w", err)
	}
	keyboardManager, err := virtual_keyboard.NewVirtualKeyboardManager(ctx)
	if err != nil {
		pointer.Close()
		pointerManager.Close()
		return nil, fmt.Errorf("create virtual keyboard manager: %w", err)
	}
	keyboard, err := keyboardManager.CreateKeyboard()
	if err != nil {
		keyboardManager.Close()
		pointer.Close()
		pointerManager.Close()
		return nil, fmt.Errorf("create virtual keyboard: %w", err)
	}

	logger.Infof("wlroots virtual input created (%dx%d)", width, height)
	return newVirtualInput(
		virtualPointer{manager: pointerManager, p: pointer},
		virtualKeyboard{manager: keyboardManager, k: keyboard},
		width, height, logger,
	), nil
}

func newVirtualInput(p pointerDevice, k keyboardDevice, width, height int, logger *log.Logger) *VirtualInput {
	return &VirtualInput{
		pointer:  p,
		keyboard: k,
		logger:   logger,
		width:    uint32(width),
		height:   uint32(height),
	}
}

func (v *VirtualInput) Version() uint32 {
	return Version
}

// Authenticate is accepted as is; the wlroots protocols have no
// authentication step.
func (v *VirtualInput) Authenticate(application, reason string) error {
	if v.logger != nil {
		v.logger.Debugf("virtual input used by %s: %s", application, reason)
	}
	return nil
}

func (v *VirtualInput) PointerMotion(dx, dy float64) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.closed {
		return nil
	}
	if err := v.pointer.motion(time.Now(), dx, dy); err != nil {
		return fmt.Errorf("pointer motion: %w", err)
	}
	return v.pointer.frame()
}

func (v *VirtualInput) PointerMotionAbsolute(x, y float64) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.closed {
		return nil
	}
	if err := v.pointer.motionAbsolute(time.Now(), clamp(x, v.width), clamp(y, v.height), v.width, v.height); err != nil {
		return fmt.Errorf("pointer motion absolute: %w", err)
	}
	return v.pointer.frame()
}

func (v *VirtualInput) Button(button uint32, state fakeinput.ButtonState) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.closed || button == 0 {
		return nil
	}
	if err := v.pointer.button(time.Now(), button, state == fakeinput.ButtonPressed); err != nil {
		return fmt.Errorf("pointer button: %w", err)
	}
	return v.pointer.frame()
}

// Axis sends value as continuous wheel scroll plus one discrete step in
// its direction.
func (v *VirtualInput) Axis(axis fakeinput.Axis, value float64) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.closed || value == 0 {
		return nil
	}
	discrete := int32(1)
	if value < 0 {
		discrete = -1
	}
	if err := v.pointer.wheel(time.Now(), axis == fakeinput.AxisHorizontalScroll, value, discrete); err != nil {
		return fmt.Errorf("pointer axis: %w", err)
	}
	return v.pointer.frame()
}

func (v *VirtualInput) KeyboardKey(key uint32, state fakeinput.KeyState) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.closed {
		return nil
	}
	return v.keyboard.key(time.Now(), key, state == fakeinput.KeyPressed)
}

// Close releases the virtual devices. It is safe to call more than once.
func (v *VirtualInput) Close() error {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.closed {
		return nil
	}
	v.closed = true

	kerr := v.keyboard.close()
	perr := v.pointer.close()
	if kerr != nil {
		return fmt.Errorf("close keyboard: %w", kerr)
	}
	if perr != nil {
		return fmt.Errorf("close pointer: %w", perr)
	}
	if v.logger != nil {
		v.logger.Info("wlroots virtual input closed")
	}
	return nil
}

// clamp keeps an absolute coordinate inside [0, extent).
func clamp(v float64, extent uint32) uint32 {
	if v < 0 || extent == 0 {
		return 0
	}
	if v >= float64(extent) {
		return extent - 1
	}
	return uint32(v)
}
