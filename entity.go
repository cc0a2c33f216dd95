package entitycs

import "unsafe"

// Entity is a simulation object: a unique ID, an alive flag, one storage cell
// per declared component type and the scripts attached to it.
//
// Entities are created by Manager.CreateEntity and stay invisible to queries
// until the next Tick finalizes them. Components and scripts can only be added
// before that point.
type Entity struct {
	manager   *Manager
	bank      []unsafe.Pointer // one cell per declared component, indexed by ComponentID
	scripts   []Script
	id        uint64
	mask      Mask
	alive     bool
	finalized bool
}

func newEntity(m *Manager, id uint64) *Entity {
	return &Entity{
		manager: m,
		bank:    make([]unsafe.Pointer, m.registry.Len()),
		id:      id,
		alive:   true,
	}
}

// ID returns the creation-ordered identifier of the entity. IDs are never
// reused.
func (e *Entity) ID() uint64 {
	return e.id
}

// IsAlive reports whether Kill has not been called yet.
func (e *Entity) IsAlive() bool {
	return e.alive
}

// Kill marks the entity dead. It is removed from the manager and every query
// at the start of the next Tick; until then it stays in every list it is part
// of. Calling Kill more than once has no further effect.
func (e *Entity) Kill() {
	e.alive = false
}

// Mask returns the component membership mask of the entity.
func (e *Entity) Mask() Mask {
	return e.mask
}

// Finalized reports whether the entity has been promoted by a Tick.
func (e *Entity) Finalized() bool {
	return e.finalized
}

// Manager returns the manager that created the entity.
func (e *Entity) Manager() *Manager {
	return e.manager
}

// AddScript attaches a behavior hook. Scripts run in the order they were
// added. It panics if the entity has already been finalized.
func (e *Entity) AddScript(s Script) {
	if e.finalized {
		panic("ecs: cannot add script to finalized entity")
	}
	e.scripts = append(e.scripts, s)
	e.mask |= ScriptBit
}

// HasScripts reports whether at least one script is attached.
func (e *Entity) HasScripts() bool {
	return len(e.scripts) != 0
}

func (e *Entity) runBegin() {
	for _, s := range e.scripts {
		s.Begin(e)
	}
}
