package xserver

// MaxButtons is the size of a device's button map.
const MaxButtons = 256

// Device is a host input device. Only its event sink is meant to be
// replaced from outside the host.
type Device struct {
	Name      string
	ButtonMap [MaxButtons]uint8
	sink      EventSink
}

// NewDevice returns a device with the identity button map and no sink.
func NewDevice(name string) *Device {
	d := &Device{Name: name}
	for i := range d.ButtonMap {
		d.ButtonMap[i] = uint8(i)
	}
	return d
}

func (d *Device) SetEventSink(s EventSink) {
	d.sink = s
}

func (d *Device) EventSink() EventSink {
	return d.sink
}

// MapButton translates a logical button to its physical id, 0 when the
// detail is outside the map.
func (d *Device) MapButton(detail int) uint8 {
	if detail < 0 || detail >= len(d.ButtonMap) {
		return 0
	}
	return d.ButtonMap[detail]
}

// Deliver hands ev to the installed sink. It reports false when the device
// has no sink and the event was dropped.
func (d *Device) Deliver(ev *Event) bool {
	if d.sink == nil {
		return false
	}
	d.sink.SendEvents(d, ev)
	return true
}
