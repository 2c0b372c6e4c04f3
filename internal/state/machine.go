package state

// Listener is called once for every committed transition, after the current
// state has been updated.
type Listener func(Transition)

// Machine owns the current run state. Triggers are requested during a tick
// and at most one is committed per tick.
type Machine struct {
	current  RunState
	pending  Trigger
	listener Listener
}

// NewMachine creates a machine in the MainMenu state.
func NewMachine(l Listener) *Machine {
	return &Machine{current: MainMenu, listener: l}
}

// Current returns the current state.
func (m *Machine) Current() RunState {
	return m.current
}

// Pending returns the trigger waiting to be committed, if any.
func (m *Machine) Pending() Trigger {
	return m.pending
}

// Request queues a trigger for the next Commit. It returns false if the
// trigger is not legal from the current state or if a different trigger is
// already queued; requesting the queued trigger again is a no-op.
func (m *Machine) Request(t Trigger) bool {
	if _, ok := Target(m.current, t); !ok {
		return false
	}
	if m.pending != TriggerNone {
		return m.pending == t
	}
	m.pending = t
	return true
}

// Commit applies the queued trigger, notifies the listener and returns the
// transition. It returns false when nothing was queued.
func (m *Machine) Commit() (Transition, bool) {
	if m.pending == TriggerNone {
		return Transition{}, false
	}
	t := m.pending
	m.pending = TriggerNone

	to, ok := Target(m.current, t)
	if !ok {
		panic("state: queued trigger " + t.String() + " is illegal from " + m.current.String())
	}

	tr := Transition{From: m.current, To: to, Trigger: t}
	m.current = to
	if m.listener != nil {
		m.listener(tr)
	}
	return tr, true
}
