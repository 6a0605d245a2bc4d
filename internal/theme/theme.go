package theme

import "sync"

const (
	Light  = "light"
	Dark   = "dark"
	System = "system"
)

// Valid reports whether name is one of the supported themes.
func Valid(name string) bool {
	return name == Light || name == Dark || name == System
}

// Manager holds the process-wide active theme. Components receive the manager
// by injection and change the theme only through Set; there is no package
// level mutable state.
type Manager struct {
	mu       sync.Mutex
	current  string
	onChange func(name string)
}

// NewManager returns a manager starting at initial (or System when initial is
// not a known theme). onChange, if non-nil, runs after every effective change.
func NewManager(initial string, onChange func(name string)) *Manager {
	if !Valid(initial) {
		initial = System
	}
	return &Manager{current: initial, onChange: onChange}
}

// Current returns the active theme.
func (m *Manager) Current() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current
}

// Set switches the active theme. Unknown names are ignored so a corrupted
// stored value can never take the UI into an undefined state.
func (m *Manager) Set(name string) {
	if !Valid(name) {
		return
	}

	m.mu.Lock()
	changed := m.current != name
	m.current = name
	cb := m.onChange
	m.mu.Unlock()

	if changed && cb != nil {
		cb(name)
	}
}
