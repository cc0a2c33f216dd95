// Package entitycs implements a tick-driven Entity Component System.
//
// Features:
//   - Up to 63 component types (MaxComponentTypes) per Registry, indexed once.
//     Bit 0 of every Mask is ScriptBit, which marks entities carrying
//     scripts, so component i occupies bit i+1.
//   - One storage cell per declared component on every entity, O(1) typed
//     access through Component handles.
//   - Persistent queries maintained incrementally, ad hoc queries cached for
//     the current tick.
//   - Lazy removal: killed entities are compacted out at the next tick.
//   - ForEachParallel forks work across goroutines when a timed probe says it
//     pays off.
//
// A Manager goes through two states. In StateInit systems and queries are
// declared; Start switches to StateRunning where entities are created and
// Tick is called once per simulation step.
package entitycs

// State is the lifecycle state of a Manager.
type State uint8

const (
	// StateInit accepts systems and persistent queries.
	StateInit State = iota
	// StateRunning accepts entity creation and ticks.
	StateRunning
)

func (s State) String() string {
	switch s {
	case StateInit:
		return "init"
	case StateRunning:
		return "running"
	}
	return "unknown"
}
