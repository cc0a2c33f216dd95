package entitycs

import "time"

const defaultCapacity = 1024

// Option configures a Manager.
type Option func(*Manager)

// WithCapacity sets how many entities the master list, the fresh queue and
// every persistent query reserve up front.
func WithCapacity(n int) Option {
	return func(m *Manager) {
		m.capacity = max(n, 0)
	}
}

// WithThreads overrides the number of goroutines ForEachParallel splits work
// across. Values below 1 are raised to 1.
func WithThreads(n int) Option {
	return func(m *Manager) {
		m.threads = max(n, 1)
	}
}

// WithSpawnOverhead overrides the goroutine start-up cost used by the
// ForEachParallel cost model instead of measuring it.
func WithSpawnOverhead(d time.Duration) Option {
	return func(m *Manager) {
		m.spawnOverhead = d
		m.overheadSet = true
	}
}

// WithEventBus makes the manager publish lifecycle events on bus.
func WithEventBus(bus *EventBus) Option {
	return func(m *Manager) {
		m.events = bus
	}
}
