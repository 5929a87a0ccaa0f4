package mode

import (
	"errors"
	"fmt"
)

// ErrInvalidTransition is returned when a mode switch is not allowed.
var ErrInvalidTransition = errors.New("mode: invalid transition")

// ChangeCallback is called after the mode changes.
type ChangeCallback func(from, to Mode)

// Manager tracks the current mode and enforces legal transitions.
// It is not safe for concurrent use; the editor mutates it from one goroutine.
type Manager struct {
	current  Mode
	previous Mode

	callbacks []ChangeCallback
}

// NewManager creates a manager in Normal mode.
func NewManager() *Manager {
	return &Manager{current: Normal, previous: Normal}
}

// Current returns the current mode.
func (m *Manager) Current() Mode {
	return m.current
}

// Previous returns the mode active before the last change.
func (m *Manager) Previous() Mode {
	return m.previous
}

// Is reports whether the current mode is mode.
func (m *Manager) Is(mode Mode) bool {
	return m.current == mode
}

// CanSwitch reports whether a switch from the current mode to mode is legal.
func (m *Manager) CanSwitch(to Mode) bool {
	switch m.current {
	case Normal:
		return to == Insert || to == Command
	case Insert, Command:
		return to == Normal
	}
	return false
}

// Switch changes to mode to. Switching to the current mode is a no-op.
func (m *Manager) Switch(to Mode) error {
	if to == m.current {
		return nil
	}
	if !m.CanSwitch(to) {
		return fmt.Errorf("%w: %s to %s", ErrInvalidTransition, m.current, to)
	}
	m.change(to)
	return nil
}

// Reset returns to Normal from any mode.
func (m *Manager) Reset() {
	if m.current != Normal {
		m.change(Normal)
	}
}

func (m *Manager) change(to Mode) {
	from := m.current
	m.previous = from
	m.current = to
	for _, cb := range m.callbacks {
		if cb != nil {
			cb(from, to)
		}
	}
}

// OnChange registers a callback for mode changes.
// Returns a function to unregister the callback.
func (m *Manager) OnChange(callback ChangeCallback) func() {
	m.callbacks = append(m.callbacks, callback)
	index := len(m.callbacks) - 1

	return func() {
		if index < len(m.callbacks) {
			m.callbacks[index] = nil
		}
	}
}
