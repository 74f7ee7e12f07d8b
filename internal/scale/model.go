// Package scale draws the tuning gauge: step ticks, labelled reference marks
// and a diamond indicator at the current frequency. Drawing goes through the
// Surface interface so the same code feeds the Fyne widget, PNG export and
// tests.
package scale

import (
	"math"
	"sync"
)

// State is what the gauge shows. A CurrentFrequency of zero or less hides
// the indicator.
type State struct {
	CurrentFrequency float64
	SignalDetected   bool
}

// Model holds the gauge state and tells its owner when a redraw is needed.
// Setters are expected to be called from the host's UI thread; the mutex
// only keeps a concurrent paint from observing a torn State.
type Model struct {
	mu           sync.Mutex
	state        State
	onInvalidate func()
}

// NewModel returns a model with no frequency and no signal.
func NewModel() *Model { return &Model{} }

// OnInvalidate registers the redraw request callback. Passing nil clears it.
func (m *Model) OnInvalidate(fn func()) {
	m.mu.Lock()
	m.onInvalidate = fn
	m.mu.Unlock()
}

// SetCurrentFrequency stores v and requests a redraw when it differs from the
// previous value. Negative and zero values are accepted and hide the
// indicator.
func (m *Model) SetCurrentFrequency(v float64) {
	m.update(func(s *State) bool {
		if sameFrequency(s.CurrentFrequency, v) {
			return false
		}
		s.CurrentFrequency = v
		return true
	})
}

// SetSignalDetected switches the indicator between active and inactive
// colours.
func (m *Model) SetSignalDetected(on bool) {
	m.update(func(s *State) bool {
		if s.SignalDetected == on {
			return false
		}
		s.SignalDetected = on
		return true
	})
}

// Set applies both fields at once and issues at most one redraw request.
func (m *Model) Set(st State) {
	m.update(func(s *State) bool {
		if sameFrequency(s.CurrentFrequency, st.CurrentFrequency) && s.SignalDetected == st.SignalDetected {
			return false
		}
		*s = st
		return true
	})
}

// Snapshot returns the latest state.
func (m *Model) Snapshot() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

func (m *Model) update(apply func(*State) bool) {
	m.mu.Lock()
	changed := apply(&m.state)
	fn := m.onInvalidate
	m.mu.Unlock()
	if changed && fn != nil {
		fn()
	}
}

// sameFrequency is == except that NaN matches NaN, so a feed stuck on NaN
// does not redraw on every reading.
func sameFrequency(a, b float64) bool {
	return a == b || (math.IsNaN(a) && math.IsNaN(b))
}
