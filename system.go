package entitycs

import "time"

// System is a per-tick behavior registered on a Manager before it starts.
type System interface {
	// InitQueries is called once by Manager.Start, before any entity exists.
	// Persistent queries are declared here.
	InitQueries(m *Manager)
	// Begin is called once, right after the manager switched to running.
	Begin(m *Manager)
	// Tick is called once per Manager.Tick, in registration order.
	Tick(m *Manager, dt time.Duration)
}

// Script is a behavior hook attached to a single entity.
type Script interface {
	// Begin is called once when the owning entity is finalized.
	Begin(e *Entity)
	// Tick is called once per Manager.Tick while the owning entity is alive,
	// after every system has ticked.
	Tick(e *Entity, dt time.Duration)
}

// SystemBase provides no-op System methods. Embed it and override what is
// needed.
type SystemBase struct{}

func (SystemBase) InitQueries(*Manager) {}
func (SystemBase) Begin(*Manager) {}
func (SystemBase) Tick(*Manager, time.Duration) {}

// ScriptBase provides no-op Script methods.
type ScriptBase struct{}

func (ScriptBase) Begin(*Entity) {}
func (ScriptBase) Tick(*Entity, time.Duration) {}

// SystemFunc adapts a plain tick function to a System without queries.
type SystemFunc func(m *Manager, dt time.Duration)

func (SystemFunc) InitQueries(*Manager) {}
func (SystemFunc) Begin(*Manager) {}

// Tick calls f.
func (f SystemFunc) Tick(m *Manager, dt time.Duration) { f(m, dt) }

// ScriptFunc adapts a plain tick function to a Script.
type ScriptFunc func(e *Entity, dt time.Duration)

func (ScriptFunc) Begin(*Entity) {}

// Tick calls f.
func (f ScriptFunc) Tick(e *Entity, dt time.Duration) { f(e, dt) }
