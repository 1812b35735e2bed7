package fakeinput

import (
	"fmt"

	log "github.com/withmandala/go-log"
)

// Call is one request recorded by Trace.
type Call struct {
	Request string
	Args    []interface{}
}

func (c Call) String() string {
	return fmt.Sprintf("%s%v", c.Request, c.Args)
}

// Trace is a FakeInput that only records and logs what it is asked to do.
type Trace struct {
	version uint32
	logger  *log.Logger
	Calls   []Call
}

// NewTrace returns a Trace bound at version. logger may be nil.
func NewTrace(version uint32, logger *log.Logger) *Trace {
	return &Trace{version: version, logger: logger}
}

func (t *Trace) record(request string, args ...interface{}) error {
	c := Call{Request: request, Args: args}
	t.Calls = append(t.Calls, c)
	if t.logger != nil {
		t.logger.Infof("fake_input %s", c)
	}
	return nil
}

// Reset drops the recorded calls.
func (t *Trace) Reset() {
	t.Calls = nil
}

func (t *Trace) Version() uint32 {
	return t.version
}

func (t *Trace) Authenticate(application, reason string) error {
	return t.record("authenticate", application, reason)
}

func (t *Trace) PointerMotion(dx, dy float64) error {
	return t.record("pointer_motion", dx, dy)
}

func (t *Trace) PointerMotionAbsolute(x, y float64) error {
	return t.record("pointer_motion_absolute", x, y)
}

func (t *Trace) Button(button uint32, state ButtonState) error {
	return t.record("button", button, state)
}

func (t *Trace) Axis(axis Axis, value float64) error {
	return t.record("axis", axis, value)
}

func (t *Trace) KeyboardKey(key uint32, state KeyState) error {
	return t.record("keyboard_key", key, state)
}
