package entitycs

import (
	"context"
	"errors"
	"testing"
	"time"
)

// go test -run ^TestRun$ . -count 1
func TestRun(t *testing.T) {
	r, _ := newTestRegistry()
	m := NewManager(r, WithSpawnOverhead(0))
	ctx, cancel := context.WithCancel(context.Background())
	ticks := 0
	var total time.Duration
	m.AddSystem(SystemFunc(func(_ *Manager, dt time.Duration) {
		ticks++
		total += dt
		if ticks == 3 {
			cancel()
		}
	}))

	err := m.Run(ctx, time.Millisecond)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if m.State() != StateRunning {
		t.Error("Run must start the manager")
	}
	if ticks != 3 {
		t.Errorf("expected 3 ticks, got %d", ticks)
	}
	if total <= 0 {
		t.Errorf("expected positive accumulated dt, got %s", total)
	}
}

// go test -run ^TestRunInvalidInterval$ . -count 1
func TestRunInvalidInterval(t *testing.T) {
	r, _ := newTestRegistry()
	m := NewManager(r, WithSpawnOverhead(0))
	expectPanic(t, "zero interval", func() { _ = m.Run(context.Background(), 0) })
}
