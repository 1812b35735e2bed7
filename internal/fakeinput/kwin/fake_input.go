// Package kwin talks to the org_kde_kwin_fake_input global of a Wayland
// compositor.
package kwin

import (
	"github.com/pkg/errors"
	"github.com/rajveermalviya/go-wayland/wayland/client"

	"go-xtest-bridge/internal/fakeinput"
)

// FakeInput is a bound org_kde_kwin_fake_input object. The interface has
// no events, so it never needs dispatching.
type FakeInput struct {
	client.BaseProxy
	version uint32
}

// NewFakeInput registers a new proxy on ctx. It becomes usable once bound
// through the registry.
func NewFakeInput(ctx *client.Context, version uint32) *FakeInput {
	f := &FakeInput{version: version}
	ctx.Register(f)
	return f
}

func (f *FakeInput) Version() uint32 {
	return f.version
}

func (f *FakeInput) send(request string, since uint32, build func(id uint32) []byte) error {
	if f.version < since {
		return errors.Errorf("%s.%s needs version %d, bound at %d",
			fakeinput.InterfaceName, request, since, f.version)
	}
	return errors.Wrapf(f.Context().WriteMsg(build(f.ID()), nil), "write %s", request)
}

func (f *FakeInput) Authenticate(application, reason string) error {
	return f.send("authenticate", 1, func(id uint32) []byte {
		return authenticateRequest(id, application, reason)
	})
}

func (f *FakeInput) PointerMotion(dx, dy float64) error {
	return f.send("pointer_motion", 1, func(id uint32) []byte {
		return fixedPairRequest(id, opPointerMotion, dx, dy)
	})
}

func (f *FakeInput) PointerMotionAbsolute(x, y float64) error {
	return f.send("pointer_motion_absolute", fakeinput.PointerMotionAbsoluteSinceVersion, func(id uint32) []byte {
		return fixedPairRequest(id, opPointerMotionAbsolute, x, y)
	})
}

func (f *FakeInput) Button(button uint32, state fakeinput.ButtonState) error {
	return f.send("button", 1, func(id uint32) []byte {
		return uintPairRequest(id, opButton, button, uint32(state))
	})
}

func (f *FakeInput) Axis(axis fakeinput.Axis, value float64) error {
	return f.send("axis", 1, func(id uint32) []byte {
		return axisRequest(id, uint32(axis), value)
	})
}

func (f *FakeInput) KeyboardKey(key uint32, state fakeinput.KeyState) error {
	return f.send("keyboard_key", fakeinput.KeyboardKeySinceVersion, func(id uint32) []byte {
		return uintPairRequest(id, opKeyboardKey, key, uint32(state))
	})
}
