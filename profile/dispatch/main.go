// Profiling:
// go build ./profile/dispatch
// ./dispatch -mode cpu
// go tool pprof -http=":8000" -nodefraction=0.001 ./dispatch cpu.pprof

package main

import (
	"flag"
	"log"
	"math"
	"time"

	"github.com/edwinsyarief/entitycs"
	"github.com/pkg/profile"
	"github.com/rotisserie/eris"
)

type position struct {
	X, Y float64
}

type velocity struct {
	X, Y float64
}

// mover integrates velocities over the position/velocity query.
type mover struct {
	entitycs.SystemBase
	pos  entitycs.Component[position]
	vel  entitycs.Component[velocity]
	mask entitycs.Mask
	work int
}

func (s *mover) InitQueries(m *entitycs.Manager) {
	m.AddQuery(s.mask)
}

func (s *mover) Tick(m *entitycs.Manager, dt time.Duration) {
	step := dt.Seconds()
	m.ForEachParallel(s.mask, func(e *entitycs.Entity) {
		p, v := s.pos.Get(e), s.vel.Get(e)
		// burn some cycles so the cost model has something to weigh
		for i := range s.work {
			v.X += math.Sin(float64(i)) * 1e-9
		}
		p.X += v.X * step
		p.Y += v.Y * step
	})
}

func main() {
	mode := flag.String("mode", "cpu", "profile mode: cpu or mem")
	entities := flag.Int("entities", 100000, "number of moving entities")
	ticks := flag.Int("ticks", 500, "ticks to run")
	work := flag.Int("work", 64, "busy iterations per entity")
	flag.Parse()

	if err := run(*mode, *entities, *ticks, *work); err != nil {
		log.Fatalf("%+v", err)
	}
}

func run(mode string, entities, ticks, work int) error {
	if entities <= 0 || ticks <= 0 {
		return eris.New("entities and ticks must be positive")
	}
	var opt func(*profile.Profile)
	switch mode {
	case "cpu":
		opt = profile.CPUProfile
	case "mem":
		opt = profile.MemProfileAllocs
	default:
		return eris.Errorf("unknown profile mode %q", mode)
	}

	reg := entitycs.NewRegistry()
	s := &mover{
		pos:  entitycs.Register[position](reg),
		vel:  entitycs.Register[velocity](reg),
		work: work,
	}
	s.mask = s.pos.Mask() | s.vel.Mask()
	m := entitycs.NewManager(reg, entitycs.WithCapacity(entities))
	m.AddSystem(s)
	m.Start()
	for i := range entities {
		e := m.CreateEntity()
		s.pos.Add(e)
		*s.vel.Add(e) = velocity{X: float64(i % 7), Y: 1}
	}

	p := profile.Start(opt, profile.ProfilePath("."), profile.NoShutdownHook)
	for range ticks {
		m.Tick(16 * time.Millisecond)
	}
	p.Stop()

	st := m.Stats()
	log.Printf("threads=%d overhead=%s serial=%d parallel=%d",
		m.Threads(), m.SpawnOverhead(), st.SerialDispatches, st.ParallelDispatches)
	return nil
}
