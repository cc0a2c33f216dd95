package entitycs

import (
	"context"
	"time"
)

// Run ticks the manager every interval on the calling goroutine until ctx is
// done, passing the measured time since the previous tick as dt. A tick in
// progress always completes; cancellation is only observed between ticks.
//
// Run starts the manager if it is still in StateInit. It returns ctx.Err().
func (m *Manager) Run(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		panic("ecs: Run interval must be positive")
	}
	if m.state == StateInit {
		m.Start()
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-ticker.C:
			if err := ctx.Err(); err != nil {
				return err
			}
			m.Tick(now.Sub(last))
			last = now
		}
	}
}
