package entitycs

import (
	"runtime"
	"sync"
	"time"
)

// hardwareThreads returns the worker count for ForEachParallel. One unit of
// concurrency is left to the caller when there are more than three.
func hardwareThreads() int {
	n := runtime.NumCPU()
	if n > 3 {
		return n - 1
	}
	return max(n, 1)
}

// measureSpawnOverhead times starting a goroutine and waiting for it.
func measureSpawnOverhead() time.Duration {
	start := time.Now()
	var end time.Time
	var wg sync.WaitGroup
	wg.Go(func() {
		end = time.Now()
	})
	wg.Wait()
	return end.Sub(start)
}

// ForEach calls fn for every entity matching mask, in list order.
func (m *Manager) ForEach(mask Mask, fn func(e *Entity)) {
	for _, e := range m.EntitiesWith(mask) {
		fn(e)
	}
}

// ForEachParallel calls fn exactly once for every entity matching mask and
// returns after all calls have completed. Large batches are split across
// goroutines when a timed probe of the first call predicts that forking beats
// running serially; the order of calls is then unspecified.
//
// Lists of at most four entities per thread always run serially. Otherwise the
// first call is timed and the rest is split into ceil((n-1)/threads) sized
// slices; forking happens only if one slice plus the measured goroutine
// start-up cost is cheaper than running the rest in place. The calling
// goroutine processes the final slice itself.
//
// fn may call CreateEntity. It must not kill entities, add components or
// scripts, or declare queries.
//
// Parameters:
//   - mask: The query mask; see EntitiesWith.
//   - fn: The per-entity callback. It must be safe to call concurrently.
func (m *Manager) ForEachParallel(mask Mask, fn func(e *Entity)) {
	list := m.EntitiesWith(mask)
	n := len(list)
	if n == 0 {
		return
	}
	if n <= m.threads*4 {
		m.stats.serialDispatches.Add(1)
		runSlice(list, fn)
		return
	}

	start := time.Now()
	fn(list[0])
	cost := time.Since(start)
	rest := list[1:]

	step, ok := m.shouldFork(len(rest), cost)
	if !ok {
		m.stats.serialDispatches.Add(1)
		runSlice(rest, fn)
		return
	}

	m.stats.parallelDispatches.Add(1)
	var wg sync.WaitGroup
	for range m.threads - 1 {
		if len(rest) <= step {
			break
		}
		chunk := rest[:step]
		rest = rest[step:]
		wg.Go(func() {
			runSlice(chunk, fn)
		})
	}
	// the caller takes the last slice
	runSlice(rest, fn)
	wg.Wait()
}

// shouldFork applies the dispatch cost model to the remaining items given the
// probed cost of one. It returns the per-goroutine slice length and whether
// forking is projected to be faster.
func (m *Manager) shouldFork(remaining int, cost time.Duration) (int, bool) {
	step := (remaining + m.threads - 1) / m.threads
	serial := time.Duration(remaining) * cost
	parallel := time.Duration(step)*cost + m.spawnOverhead
	return step, parallel < serial
}

func runSlice(list []*Entity, fn func(e *Entity)) {
	for _, e := range list {
		fn(e)
	}
}
