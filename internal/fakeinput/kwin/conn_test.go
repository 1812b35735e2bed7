package kwin

import (
	"testing"

	"github.com/rajveermalviya/go-wayland/wayland/client"
	"github.com/stretchr/testify/assert"

	"go-xtest-bridge/internal/fakeinput"
)

func TestHandleGlobalWithoutLogger(t *testing.T) {
	c := &Conn{}

	c.handleGlobal(client.RegistryGlobalEvent{Name: 2, Interface: "wl_seat", Version: 7})
	_, ok := c.FakeInputGlobal()
	assert.False(t, ok)

	assert.NotPanics(t, func() {
		c.handleGlobal(client.RegistryGlobalEvent{Name: 5, Interface: fakeinput.InterfaceName, Version: 4})
	})
	g, ok := c.FakeInputGlobal()
	assert.True(t, ok)
	assert.Equal(t, Global{Name: 5, Version: 4}, g)
}
