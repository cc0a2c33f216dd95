package entitycs

import (
	"sync"
	"time"
)

// Manager owns every entity, the query caches and the registered systems, and
// runs the per-tick orchestration.
type Manager struct {
	registry *Registry
	events   *EventBus
	res      *Resources

	entities       []*Entity // finalized entities, master list
	queries        []query   // persistent queries, in declaration order
	queryIndex     map[Mask]int
	transient      []query // ad hoc queries computed during the current tick
	transientIndex map[Mask]int
	systems        []System

	mu     sync.Mutex // guards nextID and fresh
	nextID uint64
	fresh  []*Entity // created, waiting for the next tick
	spare  []*Entity // recycled fresh buffer

	stats         counters
	capacity      int
	threads       int
	spawnOverhead time.Duration
	overheadSet   bool
	state         State
}

// NewManager creates a Manager for the component types declared in reg and
// seals reg. It measures the goroutine start-up overhead used by
// ForEachParallel unless WithSpawnOverhead is given.
func NewManager(reg *Registry, opts ...Option) *Manager {
	m := &Manager{
		registry:       reg,
		res:            &Resources{},
		queryIndex:     make(map[Mask]int, 16),
		transientIndex: make(map[Mask]int, 16),
		capacity:       defaultCapacity,
		threads:        hardwareThreads(),
	}
	for _, opt := range opts {
		opt(m)
	}
	reg.seal()
	m.entities = make([]*Entity, 0, m.capacity)
	m.fresh = make([]*Entity, 0, m.capacity)
	m.spare = make([]*Entity, 0, m.capacity)
	if !m.overheadSet {
		m.spawnOverhead = measureSpawnOverhead()
	}
	return m
}

// Registry returns the component registry of the manager.
func (m *Manager) Registry() *Registry {
	return m.registry
}

// Resources returns the resource store shared by systems.
func (m *Manager) Resources() *Resources {
	return m.res
}

// Events returns the event bus set with WithEventBus, or nil.
func (m *Manager) Events() *EventBus {
	return m.events
}

// State returns the lifecycle state.
func (m *Manager) State() State {
	return m.state
}

// Threads returns the number of goroutines ForEachParallel may use.
func (m *Manager) Threads() int {
	return m.threads
}

// SpawnOverhead returns the goroutine start-up cost used by the dispatch cost
// model.
func (m *Manager) SpawnOverhead() time.Duration {
	return m.spawnOverhead
}

// Len returns the number of finalized entities, dead ones not yet compacted
// included.
func (m *Manager) Len() int {
	return len(m.entities)
}

// Entities returns the master list. The slice is owned by the manager.
func (m *Manager) Entities() []*Entity {
	return m.entities
}

// Pending returns the number of entities waiting to be finalized.
func (m *Manager) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.fresh)
}

// AddSystem registers s. Systems tick in registration order. It panics once
// the manager is running.
func (m *Manager) AddSystem(s System) {
	if m.state != StateInit {
		panic("ecs: systems must be added before Start")
	}
	m.systems = append(m.systems, s)
}

// Start lets every system declare its queries, switches the manager to
// running and calls every system's Begin. It panics if called twice.
func (m *Manager) Start() {
	if m.state != StateInit {
		panic("ecs: manager already started")
	}
	for _, s := range m.systems {
		s.InitQueries(m)
	}
	m.state = StateRunning
	for _, s := range m.systems {
		s.Begin(m)
	}
}

// CreateEntity creates an entity with no components. Components and scripts
// are added by the caller right away; the entity becomes visible to queries
// at the next Tick.
//
// CreateEntity is safe to call from ForEachParallel callbacks.
func (m *Manager) CreateEntity() *Entity {
	m.mustRun("CreateEntity")
	m.mu.Lock()
	e := newEntity(m, m.nextID)
	m.nextID++
	m.fresh = append(m.fresh, e)
	m.mu.Unlock()
	return e
}

// Tick advances the simulation by one step:
//
//  1. the transient query cache is dropped;
//  2. dead entities are compacted out of the master list and of every
//     persistent query that may contain them;
//  3. entities created since the last tick are finalized, added to the
//     master list and to matching persistent queries, and their scripts'
//     Begin is called;
//  4. every system ticks, in registration order;
//  5. every alive entity with scripts ticks them, in master-list order.
//
// Entities created during steps 3 to 5 are finalized by the next Tick.
// EntityFinalized and EntitiesCompacted are published on the event bus, if
// one was set with WithEventBus.
//
// Parameters:
//   - dt: The time elapsed since the previous tick, passed through to every
//     system and script.
//
// It panics if the manager has not been started.
func (m *Manager) Tick(dt time.Duration) {
	m.mustRun("Tick")
	m.stats.ticks.Add(1)

	m.clearTransient()
	m.removeDead()
	m.finalizeFresh()

	for _, s := range m.systems {
		s.Tick(m, dt)
	}

	// scripts may create entities, those land in the fresh queue
	n := len(m.entities)
	for i := 0; i < n; i++ {
		e := m.entities[i]
		if !e.alive || len(e.scripts) == 0 {
			continue
		}
		for _, s := range e.scripts {
			s.Tick(e, dt)
		}
	}
}

// removeDead compacts the master list and the persistent queries affected by
// the removal.
func (m *Manager) removeDead() {
	var removed int
	var bits Mask
	m.entities, removed, bits = compactEntities(m.entities)
	if removed == 0 {
		return
	}
	m.compactQueries(bits)
	m.stats.removed.Add(uint64(removed))
	if m.events != nil {
		Publish(m.events, EntitiesCompacted{Removed: removed, Bits: bits})
	}
}

// finalizeFresh promotes the entities queued before this call.
func (m *Manager) finalizeFresh() {
	m.mu.Lock()
	fresh := m.fresh
	m.fresh = m.spare[:0]
	m.mu.Unlock()

	for _, e := range fresh {
		if !e.alive {
			continue
		}
		e.finalized = true
		m.entities = append(m.entities, e)
		m.insertIntoQueries(e)
		m.stats.finalized.Add(1)
		if m.events != nil {
			Publish(m.events, EntityFinalized{Entity: e})
		}
		if len(e.scripts) != 0 {
			e.runBegin()
		}
	}
	clear(fresh)
	m.spare = fresh[:0]
}

func (m *Manager) mustRun(op string) {
	if m.state != StateRunning {
		panic("ecs: " + op + " called before Start")
	}
}
