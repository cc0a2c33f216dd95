package entitycs

import "sync/atomic"

// Stats is a snapshot of manager counters.
type Stats struct {
	Ticks              uint64
	Finalized          uint64 // entities promoted by Tick
	Removed            uint64 // dead entities compacted out of the master list
	SerialDispatches   uint64 // ForEachParallel calls that ran on one goroutine
	ParallelDispatches uint64 // ForEachParallel calls that forked
	TransientScans     uint64 // EntitiesWith cache misses
}

// counters are written by the ticking goroutine and by ForEachParallel; reads
// may come from anywhere.
type counters struct {
	ticks              atomic.Uint64
	finalized          atomic.Uint64
	removed            atomic.Uint64
	serialDispatches   atomic.Uint64
	parallelDispatches atomic.Uint64
	transientScans     atomic.Uint64
}

// Stats returns the current counter values.
func (m *Manager) Stats() Stats {
	return Stats{
		Ticks:              m.stats.ticks.Load(),
		Finalized:          m.stats.finalized.Load(),
		Removed:            m.stats.removed.Load(),
		SerialDispatches:   m.stats.serialDispatches.Load(),
		ParallelDispatches: m.stats.parallelDispatches.Load(),
		TransientScans:     m.stats.transientScans.Load(),
	}
}
