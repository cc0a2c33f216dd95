// Profiling:
// go build ./profile/tick
// ./tick -mode mem
// go tool pprof -http=":8000" -nodefraction=0.001 ./tick mem.pprof

package main

import (
	"flag"
	"log"
	"time"

	"github.com/edwinsyarief/entitycs"
	"github.com/pkg/profile"
	"github.com/rotisserie/eris"
)

type comp1 struct {
	V int64
	W int64
}

type comp2 struct {
	V int64
	W int64
}

// lifetime kills its entity after a number of ticks.
type lifetime struct {
	entitycs.ScriptBase
	left int
}

func (l *lifetime) Tick(e *entitycs.Entity, _ time.Duration) {
	l.left--
	if l.left <= 0 {
		e.Kill()
	}
}

func main() {
	mode := flag.String("mode", "mem", "profile mode: cpu or mem")
	rounds := flag.Int("rounds", 20, "number of managers to build")
	ticks := flag.Int("ticks", 1000, "ticks per manager")
	spawn := flag.Int("spawn", 1000, "entities spawned per tick")
	flag.Parse()

	if err := run(*mode, *rounds, *ticks, *spawn); err != nil {
		log.Fatalf("%+v", err)
	}
}

func run(mode string, rounds, ticks, spawn int) error {
	var opt func(*profile.Profile)
	switch mode {
	case "cpu":
		opt = profile.CPUProfile
	case "mem":
		opt = profile.MemProfileAllocs
	default:
		return eris.Errorf("unknown profile mode %q", mode)
	}
	p := profile.Start(opt, profile.ProfilePath("."), profile.NoShutdownHook)
	defer p.Stop()

	for range rounds {
		churn(ticks, spawn)
	}
	return nil
}

// churn spawns short-lived entities every tick so compaction and promotion
// dominate the profile.
func churn(ticks, spawn int) {
	reg := entitycs.NewRegistry()
	c1 := entitycs.Register[comp1](reg)
	c2 := entitycs.Register[comp2](reg)
	m := entitycs.NewManager(reg, entitycs.WithCapacity(spawn*8))
	both := c1.Mask() | c2.Mask()
	m.AddQuery(both)
	m.Start()

	for i := range ticks {
		for j := range spawn {
			e := m.CreateEntity()
			c1.Add(e).V = int64(j)
			if j%2 == 0 {
				c2.Add(e).W = 1
			}
			e.AddScript(&lifetime{left: 1 + (i+j)%8})
		}
		m.Tick(time.Millisecond)
		m.ForEach(both, func(e *entitycs.Entity) {
			a, b := c1.Get(e), c2.Get(e)
			a.V += b.V
			a.W += b.W
		})
	}
}
