// Package uinput forwards fake-input requests to a kernel uinput device,
// for sessions whose compositor offers no fake-input global.
package uinput

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"sync"
	"syscall"
	"unsafe"

	"github.com/kenshaw/evdev"
	"github.com/lunixbochs/struc"
	log "github.com/withmandala/go-log"

	"go-xtest-bridge/internal/fakeinput"
)

// Version is the fake-input version this backend behaves like.
const Version = fakeinput.KeyboardKeySinceVersion

const deviceName = "xtest-bridge virtual input"

var sizeofEvent = int(unsafe.Sizeof(evdev.Event{}))

// Device is a virtual uinput pointer and keyboard.
type Device struct {
	mu     sync.Mutex
	out    io.Writer
	file   *os.File
	width  int32
	height int32
	logger *log.Logger
	closed bool
}

// Open creates the uinput device. Absolute motion is reported against a
// width x height surface.
func Open(path string, width, height int, logger *log.Logger) (*Device, error) {
	f, err := os.OpenFile(path, syscall.O_WRONLY|syscall.O_NONBLOCK, 0660)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	if err := configure(f, width, height); err != nil {
		f.Close()
		return nil, err
	}
	logger.Infof("uinput device %q created on %s", deviceName, path)

	d := newDevice(f, width, height, logger)
	d.file = f
	return d, nil
}

func newDevice(out io.Writer, width, height int, logger *log.Logger) *Device {
	return &Device{out: out, width: int32(width), height: int32(height), logger: logger}
}

func configure(f *os.File, width, height int) error {
	fd := f.Fd()
	bits := []struct {
		req   uint
		value int
	}{
		{uiSetEvBit, int(evdev.EventKey)},
		{uiSetEvBit, int(evdev.EventRelative)},
		{uiSetEvBit, int(evdev.EventAbsolute)},
		{uiSetRelBit, int(evdev.RelativeX)},
		{uiSetRelBit, int(evdev.RelativeY)},
		{uiSetRelBit, int(evdev.RelativeWheel)},
		{uiSetRelBit, int(evdev.RelativeHWheel)},
		{uiSetAbsBit, absX},
		{uiSetAbsBit, absY},
	}
	for _, b := range bits {
		if err := ioctl(fd, b.req, b.value); err != nil {
			return fmt.Errorf("uinput ioctl %#x(%d): %w", b.req, b.value, err)
		}
	}
	for code := 1; code <= keyMax; code++ {
		_ = ioctl(fd, uiSetKeyBit, code)
	}

	setup, err := packSetup(width, height)
	if err != nil {
		return err
	}
	if _, err := f.Write(setup); err != nil {
		return fmt.Errorf("write uinput setup: %w", err)
	}
	if err := ioctl(fd, uiDevCreate, 0); err != nil {
		return fmt.Errorf("UI_DEV_CREATE: %w", err)
	}
	return nil
}

func packSetup(width, height int) ([]byte, error) {
	dev := uinputUserDev{
		ID: inputID{
			BusType: 0x06, // BUS_VIRTUAL
			Vendor:  0x1,
			Product: 0x1,
			Version: 1,
		},
	}
	copy(dev.Name[:], deviceName)
	dev.AbsMax[absX] = int32(width - 1)
	dev.AbsMax[absY] = int32(height - 1)

	var buf bytes.Buffer
	if err := struc.PackWithOptions(&buf, &dev, &struc.Options{Order: binary.LittleEndian}); err != nil {
		return nil, fmt.Errorf("pack uinput setup: %w", err)
	}
	return buf.Bytes(), nil
}

// send writes events followed by a SYN_REPORT in a single write.
func (d *Device) send(events ...evdev.Event) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return nil
	}
	events = append(events, evdev.Event{Type: evSyn, Code: synReport})
	buf := make([]byte, 0, sizeofEvent*len(events))
	for i := range events {
		buf = append(buf, unsafe.Slice((*byte)(unsafe.Pointer(&events[i])), sizeofEvent)...)
	}
	_, err := d.out.Write(buf)
	return err
}

func (d *Device) Version() uint32 {
	return Version
}

func (d *Device) Authenticate(application, reason string) error {
	d.logger.Debugf("uinput device used by %s: %s", application, reason)
	return nil
}

func (d *Device) PointerMotion(dx, dy float64) error {
	return d.send(
		evdev.Event{Type: evdev.EventRelative, Code: uint16(evdev.RelativeX), Value: int32(dx)},
		evdev.Event{Type: evdev.EventRelative, Code: uint16(evdev.RelativeY), Value: int32(dy)},
	)
}

func (d *Device) PointerMotionAbsolute(x, y float64) error {
	return d.send(
		evdev.Event{Type: evdev.EventAbsolute, Code: absX, Value: clamp(x, d.width)},
		evdev.Event{Type: evdev.EventAbsolute, Code: absY, Value: clamp(y, d.height)},
	)
}

func (d *Device) Button(button uint32, state fakeinput.ButtonState) error {
	if button == 0 {
		return nil
	}
	return d.send(evdev.Event{Type: evdev.EventKey, Code: uint16(button), Value: int32(state)})
}

// Axis turns a scroll amount into one wheel click. Wayland scrolls down and
// right for positive values, the wheel reports up as positive.
func (d *Device) Axis(axis fakeinput.Axis, value float64) error {
	if value == 0 {
		return nil
	}
	step := int32(1)
	if value < 0 {
		step = -1
	}
	if axis == fakeinput.AxisHorizontalScroll {
		return d.send(evdev.Event{Type: evdev.EventRelative, Code: uint16(evdev.RelativeHWheel), Value: step})
	}
	return d.send(evdev.Event{Type: evdev.EventRelative, Code: uint16(evdev.RelativeWheel), Value: -step})
}

func (d *Device) KeyboardKey(key uint32, state fakeinput.KeyState) error {
	return d.send(evdev.Event{Type: evdev.EventKey, Code: uint16(key), Value: int32(state)})
}

// Close destroys the uinput device.
func (d *Device) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return nil
	}
	d.closed = true
	if d.file == nil {
		return nil
	}
	_ = ioctl(d.file.Fd(), uiDevDestroy, 0)
	return d.file.Close()
}

func clamp(v float64, extent int32) int32 {
	if v < 0 || extent <= 0 {
		return 0
	}
	if v >= float64(extent) {
		return extent - 1
	}
	return int32(v)
}
