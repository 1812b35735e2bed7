package xserver

import "strings"

type Capability uint8

const (
	CapPointer Capability = 1 << iota
	CapKeyboard
	CapTouch

	CapAll = CapPointer | CapKeyboard | CapTouch
)

// ParseCapability maps "pointer", "keyboard" or "touch" to a capability.
func ParseCapability(name string) (Capability, bool) {
	switch strings.ToLower(name) {
	case "pointer":
		return CapPointer, true
	case "keyboard":
		return CapKeyboard, true
	case "touch":
		return CapTouch, true
	}
	return 0, false
}

// Seat groups the capabilities a compositor seat currently advertises.
type Seat struct {
	Name         string
	Capabilities Capability
	expecting    int
}

func (s *Seat) Has(c Capability) bool {
	return s.Capabilities&c == c
}

// ExpectCapabilitiesEvent records that one more capabilities event will
// arrive on this seat without the host having asked for it.
func (s *Seat) ExpectCapabilitiesEvent() {
	s.expecting++
}

func (s *Seat) PendingEvents() int {
	return s.expecting
}

// Screen holds the seats and devices of one display.
type Screen struct {
	Seats   []*Seat
	Devices []*Device
}

func (s *Screen) Device(name string) *Device {
	for _, d := range s.Devices {
		if d.Name == name {
			return d
		}
	}
	return nil
}

// ExpectingEvents is the total of the seats' pending counters.
func (s *Screen) ExpectingEvents() int {
	n := 0
	for _, seat := range s.Seats {
		n += seat.expecting
	}
	return n
}
