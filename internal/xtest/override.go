// Package xtest routes the XTest synthetic devices of a screen to a
// compositor fake-input object.
package xtest

import (
	"strings"

	log "github.com/withmandala/go-log"

	"go-xtest-bridge/internal/fakeinput"
	"go-xtest-bridge/internal/xserver"
)

// MaxVersion is the newest fake-input version this package understands.
const MaxVersion = 4

// Identity sent when authenticating with the compositor.
const (
	ApplicationName = "XWayland"
	AuthReason      = "XTest Events"
)

var sentinels = []string{"XTEST pointer", "XTEST keyboard"}

// Binder binds the fake-input global announced as name at version.
type Binder interface {
	BindFakeInput(name, version uint32) (fakeinput.FakeInput, error)
}

// Override binds the fake-input global and installs the returned Adapter
// as the event sink of the screen's XTest devices. It is meant to be
// called once per screen, when the global is announced. A failed bind
// leaves the adapter unbound, so patched devices drop their events.
func Override(screen *xserver.Screen, binder Binder, name, version uint32, logger *log.Logger) *Adapter {
	a := &Adapter{}

	if version > MaxVersion {
		version = MaxVersion
	}
	fake, err := binder.BindFakeInput(name, version)
	if err == nil && fake != nil {
		a.fake = fake
		_ = fake.Authenticate(ApplicationName, AuthReason)
	}

	for _, seat := range screen.Seats {
		// Binding can add a capability to the seat, and the resulting
		// capabilities event is not one the host asked for.
		if !seat.Has(xserver.CapAll) {
			seat.ExpectCapabilitiesEvent()
		}
	}

	for _, dev := range screen.Devices {
		if isXTestDevice(dev.Name) {
			if logger != nil {
				logger.Infof("[xwayland xtest] Overriding XTest for %s", dev.Name)
			}
			dev.SetEventSink(a)
		}
	}
	return a
}

func isXTestDevice(name string) bool {
	for _, s := range sentinels {
		if strings.Contains(name, s) {
			return true
		}
	}
	return false
}
