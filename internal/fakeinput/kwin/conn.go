package kwin

import (
	"github.com/pkg/errors"
	"github.com/rajveermalviya/go-wayland/wayland/client"
	log "github.com/withmandala/go-log"

	"go-xtest-bridge/internal/fakeinput"
)

// Global is a registry announcement of the fake-input interface.
type Global struct {
	Name    uint32
	Version uint32
}

// Conn is a Wayland display connection watching for the fake-input
// global.
type Conn struct {
	display  *client.Display
	registry *client.Registry
	logger   *log.Logger
	global   *Global
}

// Connect opens the display (empty name means $WAYLAND_DISPLAY) and waits
// for the initial burst of registry globals. logger may be nil.
func Connect(name string, logger *log.Logger) (*Conn, error) {
	display, err := client.Connect(name)
	if err != nil {
		return nil, errors.Wrap(err, "connect to wayland display")
	}
	registry, err := display.GetRegistry()
	if err != nil {
		display.Context().Close()
		return nil, errors.Wrap(err, "get registry")
	}

	c := &Conn{display: display, registry: registry, logger: logger}
	registry.SetGlobalHandler(c.handleGlobal)

	if err := c.RoundTrip(); err != nil {
		c.Close()
		return nil, err
	}
	return c, nil
}

func (c *Conn) handleGlobal(e client.RegistryGlobalEvent) {
	if e.Interface != fakeinput.InterfaceName {
		return
	}
	if c.logger != nil {
		c.logger.Debugf("%s announced as %d version %d", e.Interface, e.Name, e.Version)
	}
	c.global = &Global{Name: e.Name, Version: e.Version}
}

// FakeInputGlobal returns the announced global, if any.
func (c *Conn) FakeInputGlobal() (Global, bool) {
	if c.global == nil {
		return Global{}, false
	}
	return *c.global, true
}

// BindFakeInput binds global name at version.
func (c *Conn) BindFakeInput(name, version uint32) (fakeinput.FakeInput, error) {
	f := NewFakeInput(c.display.Context(), version)
	if err := c.registry.Bind(name, fakeinput.InterfaceName, version, f); err != nil {
		c.display.Context().Unregister(f)
		return nil, errors.Wrapf(err, "bind %s", fakeinput.InterfaceName)
	}
	return f, nil
}

// RoundTrip blocks until the compositor has processed every request sent
// so far and all resulting events have been dispatched.
func (c *Conn) RoundTrip() error {
	callback, err := c.display.Sync()
	if err != nil {
		return errors.Wrap(err, "display sync")
	}
	done := false
	callback.SetDoneHandler(func(client.CallbackDoneEvent) {
		done = true
	})
	for !done {
		if err := c.display.Context().Dispatch(); err != nil {
			return errors.Wrap(err, "dispatch")
		}
	}
	return nil
}

func (c *Conn) Close() error {
	return c.display.Context().Close()
}
