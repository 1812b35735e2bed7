package main

import (
	log "github.com/withmandala/go-log"

	"go-xtest-bridge/internal/fakeinput"
)

// staticBinder hands out a backend that is already connected. The backend
// is reported at the negotiated version so the adapter's version gates
// still apply.
type staticBinder struct {
	fake fakeinput.FakeInput
}

func (b staticBinder) BindFakeInput(name, version uint32) (fakeinput.FakeInput, error) {
	if version >= b.fake.Version() {
		return b.fake, nil
	}
	return boundAt{FakeInput: b.fake, version: version}, nil
}

// boundAt narrows a backend to an older protocol version.
type boundAt struct {
	fakeinput.FakeInput
	version uint32
}

func (b boundAt) Version() uint32 {
	return b.version
}

// traceBinder binds a fresh Trace at the negotiated version.
type traceBinder struct {
	logger *log.Logger
	bound  *fakeinput.Trace
}

func (b *traceBinder) BindFakeInput(name, version uint32) (fakeinput.FakeInput, error) {
	b.bound = fakeinput.NewTrace(version, b.logger)
	return b.bound, nil
}
