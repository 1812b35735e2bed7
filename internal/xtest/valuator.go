package xtest

// MaxValuators bounds the axes a single event can carry.
const MaxValuators = 36

// ValuatorMask is a sparse set of axis values.
type ValuatorMask struct {
	set    [MaxValuators]bool
	values [MaxValuators]int
}

// SetRange stores values starting at axis first. Axes past MaxValuators
// are ignored.
func (m *ValuatorMask) SetRange(first int, values []int) {
	for i, v := range values {
		axis := first + i
		if axis < 0 || axis >= MaxValuators {
			continue
		}
		m.set[axis] = true
		m.values[axis] = v
	}
}

// Fetch returns the value of axis and whether it was set.
func (m *ValuatorMask) Fetch(axis int) (int, bool) {
	if axis < 0 || axis >= MaxValuators || !m.set[axis] {
		return 0, false
	}
	return m.values[axis], true
}
