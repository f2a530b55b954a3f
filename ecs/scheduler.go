package ecs

import "github.com/milk9111/noria/ecs/component"

// Tick is the per-frame input every system reads. Params is a copy sampled
// once at the start of the frame.
type Tick struct {
	Delta   float64
	Elapsed float64
	Params  component.Params
}

// System updates a world each frame.
type System interface {
	Update(w *World, t Tick)
}

// Scheduler runs systems in the order they were added.
type Scheduler struct {
	systems []System
}

func NewScheduler(systems ...System) *Scheduler {
	s := &Scheduler{}
	for _, system := range systems {
		s.Add(system)
	}
	return s
}

func (s *Scheduler) Add(system System) {
	if s == nil || system == nil {
		return
	}
	s.systems = append(s.systems, system)
}

func (s *Scheduler) Update(w *World, t Tick) {
	if s == nil {
		return
	}
	for _, system := range s.systems {
		system.Update(w, t)
	}
}

func (s *Scheduler) Systems() []System {
	if s == nil {
		return nil
	}
	systems := make([]System, 0, len(s.systems))
	return append(systems, s.systems...)
}
