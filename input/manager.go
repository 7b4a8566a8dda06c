package input

// Manager is the public face of the input layer: it samples every device
// once per frame and answers action-level and raw-control queries against
// the two retained snapshots. It owns its snapshots and its binding table;
// nothing else mutates them.
//
// Access is single-threaded by design: one goroutine calls Update inside
// the host's frame callback and runs every query between updates. Queries
// are pure reads with no consumption, so repeating one within a frame
// always returns the same answer. A host that insists on querying from a
// second goroutine must add its own synchronization around Update.
type Manager struct {
	state    *State
	bindings *Bindings
}

// New builds a Manager that samples p and resolves actions through b.
// Passing nil bindings uses the compiled-in defaults.
func New(p Poller, b *Bindings) *Manager {
	if b == nil {
		b = DefaultBindings()
	}
	return &Manager{state: NewState(p), bindings: b}
}

// Update advances the device state buffer. Call exactly once per frame,
// before any query for that frame.
func (m *Manager) Update() {
	m.state.Update()
}

// IsActionPressed reports whether any control bound to a is pressed.
// Collections are checked keyboard, pointer, then gamepad, returning on
// the first hit; the order changes nothing about the result of the OR.
func (m *Manager) IsActionPressed(a Action) bool {
	am := m.bindings.Map(a)
	for _, k := range am.Keys {
		if k.Pressed(m.state) {
			return true
		}
	}
	for _, p := range am.Pointer {
		if p.Pressed(m.state) {
			return true
		}
	}
	for _, p := range am.Pad {
		if p.Pressed(m.state) {
			return true
		}
	}
	return false
}

// IsActionTriggered reports whether any control bound to a rose between
// the previous frame and this one.
func (m *Manager) IsActionTriggered(a Action) bool {
	am := m.bindings.Map(a)
	for _, k := range am.Keys {
		if k.Triggered(m.state) {
			return true
		}
	}
	for _, p := range am.Pointer {
		if p.Triggered(m.state) {
			return true
		}
	}
	for _, p := range am.Pad {
		if p.Triggered(m.state) {
			return true
		}
	}
	return false
}

// ActionName returns a's fixed display name. Panics on an index outside
// the closed enumeration.
func (m *Manager) ActionName(a Action) string {
	return a.String()
}

// State exposes the raw device buffer for consumers that need control
// queries not expressed as actions, such as panning on pointer deltas.
// The returned state is read-only to callers.
func (m *Manager) State() *State {
	return m.state
}

// Bindings returns the table the manager resolves actions through.
func (m *Manager) Bindings() *Bindings {
	return m.bindings
}
