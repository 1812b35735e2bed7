// Package script loads replayable XTest sessions: a host description and
// the synthetic events to deliver to it.
package script

import (
	"fmt"
	"os"
	"strings"

	"github.com/bitly/go-simplejson"

	"go-xtest-bridge/internal/xserver"
)

// Global describes the fake-input global a trace run pretends was
// announced.
type Global struct {
	Name    uint32
	Version uint32
}

// Step is one event addressed to a device by name.
type Step struct {
	Device string
	Event  xserver.Event
}

type Script struct {
	Screen *xserver.Screen
	Global Global
	Steps  []Step
}

var eventTypes = map[string]xserver.EventType{
	"key_press":      xserver.KeyPress,
	"key_release":    xserver.KeyRelease,
	"button_press":   xserver.ButtonPress,
	"button_release": xserver.ButtonRelease,
	"motion":         xserver.MotionNotify,
}

var eventFlags = map[string]int{
	"relative": xserver.PointerRelative,
	"absolute": xserver.PointerAbsolute,
}

func LoadFile(path string) (*Script, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	return Parse(content)
}

// Parse decodes a script. When no devices are listed the two XTest
// devices of a default screen are created.
func Parse(content []byte) (*Script, error) {
	js, err := simplejson.NewJson(content)
	if err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}

	s := &Script{
		Screen: &xserver.Screen{},
		Global: Global{
			Name:    uint32(js.GetPath("fake_input", "name").MustInt(1)),
			Version: uint32(js.GetPath("fake_input", "version").MustInt(4)),
		},
	}

	for i := range js.Get("seats").MustArray() {
		seat, err := parseSeat(js.Get("seats").GetIndex(i))
		if err != nil {
			return nil, fmt.Errorf("seat %d: %w", i, err)
		}
		s.Screen.Seats = append(s.Screen.Seats, seat)
	}

	devices := js.Get("devices").MustArray()
	if len(devices) == 0 {
		s.Screen.Devices = []*xserver.Device{
			xserver.NewDevice("Virtual core XTEST pointer"),
			xserver.NewDevice("Virtual core XTEST keyboard"),
		}
	}
	for i := range devices {
		dev, err := parseDevice(js.Get("devices").GetIndex(i))
		if err != nil {
			return nil, fmt.Errorf("device %d: %w", i, err)
		}
		s.Screen.Devices = append(s.Screen.Devices, dev)
	}

	for i := range js.Get("events").MustArray() {
		step, err := parseStep(js.Get("events").GetIndex(i))
		if err != nil {
			return nil, fmt.Errorf("event %d: %w", i, err)
		}
		if s.Screen.Device(step.Device) == nil {
			return nil, fmt.Errorf("event %d: unknown device %q", i, step.Device)
		}
		s.Steps = append(s.Steps, step)
	}
	return s, nil
}

func parseSeat(js *simplejson.Json) (*xserver.Seat, error) {
	seat := &xserver.Seat{Name: js.Get("name").MustString("seat0")}
	for _, name := range js.Get("capabilities").MustStringArray() {
		c, ok := xserver.ParseCapability(name)
		if !ok {
			return nil, fmt.Errorf("unknown capability %q", name)
		}
		seat.Capabilities |= c
	}
	return seat, nil
}

func parseDevice(js *simplejson.Json) (*xserver.Device, error) {
	name, err := js.Get("name").String()
	if err != nil || name == "" {
		return nil, fmt.Errorf("missing name")
	}
	dev := xserver.NewDevice(name)
	for logical, raw := range js.Get("button_map").MustMap() {
		var idx int
		if _, err := fmt.Sscanf(logical, "%d", &idx); err != nil || idx < 0 || idx >= xserver.MaxButtons {
			return nil, fmt.Errorf("bad button %q", logical)
		}
		physical, err := js.Get("button_map").Get(logical).Int()
		if err != nil || physical < 0 || physical > 255 {
			return nil, fmt.Errorf("bad mapping for button %s: %v", logical, raw)
		}
		dev.ButtonMap[idx] = uint8(physical)
	}
	return dev, nil
}

func parseStep(js *simplejson.Json) (Step, error) {
	device, err := js.Get("device").String()
	if err != nil {
		return Step{}, fmt.Errorf("missing device")
	}
	typeName := js.Get("type").MustString()
	t, ok := eventTypes[strings.ToLower(typeName)]
	if !ok {
		return Step{}, fmt.Errorf("unknown event type %q", typeName)
	}

	ev := xserver.Event{
		Type:          t,
		Detail:        js.Get("detail").MustInt(),
		FirstValuator: js.Get("first_valuator").MustInt(),
	}
	for _, name := range js.Get("flags").MustStringArray() {
		f, ok := eventFlags[strings.ToLower(name)]
		if !ok {
			return Step{}, fmt.Errorf("unknown flag %q", name)
		}
		ev.Flags |= f
	}
	for i := range js.Get("valuators").MustArray() {
		v, err := js.Get("valuators").GetIndex(i).Int()
		if err != nil {
			return Step{}, fmt.Errorf("valuator %d: %w", i, err)
		}
		ev.Valuators = append(ev.Valuators, v)
	}
	return Step{Device: device, Event: ev}, nil
}
