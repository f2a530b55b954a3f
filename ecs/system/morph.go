package system

import (
	"math"

	"github.com/milk9111/noria/ecs"
	"github.com/milk9111/noria/ecs/component"
)

// UpdateMorph sets the cut depth and explode offset for elapsed seconds.
// While sin(t) is positive the octahedron is truncated towards the
// cuboctahedron; otherwise its faces are pushed apart by -sin(t)*0.33.
func UpdateMorph(m *component.Morph, elapsed float64) {
	if m == nil {
		return
	}
	a := float64(m.A)
	m.H = float32(3 * a * math.Sqrt2 / 2)
	full := 1.065 * a
	s := math.Sin(elapsed)
	if s > 0 {
		m.C = float32(full - (full-math.Sqrt(a*a/2))*s)
		m.AA = 0
		return
	}
	m.C = float32(full)
	m.AA = float32(-s * 0.33)
}

type MorphSystem struct{}

func NewMorphSystem() *MorphSystem { return &MorphSystem{} }

func (s *MorphSystem) Update(w *ecs.World, t ecs.Tick) {
	ecs.ForEach(w, component.MorphComponent.Kind(), func(_ ecs.Entity, m *component.Morph) {
		UpdateMorph(m, t.Elapsed)
	})
}
