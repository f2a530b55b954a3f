package system

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/noria/ecs"
	"github.com/milk9111/noria/ecs/component"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func spawnRider(t *testing.T, w *ecs.World, name string, phase float32) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	o := &component.Orbit{Center: mgl32.Vec3{0, 6.3, 0}, Radius: 5.55, Phase: phase}
	o.Position = o.At(0)
	require.NoError(t, ecs.Add(w, e, component.NameComponent.Kind(), &component.Name{Value: name}))
	require.NoError(t, ecs.Add(w, e, component.CharacterTagComponent.Kind(), &component.CharacterTag{}))
	require.NoError(t, ecs.Add(w, e, component.OrbitComponent.Kind(), o))
	require.NoError(t, ecs.Add(w, e, component.TransformComponent.Kind(), placed(o)))
	return e
}

func spawnLight(t *testing.T, w *ecs.World) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	o := &component.Orbit{Center: mgl32.Vec3{0, 6.3, 0}, Radius: 8, Plane: component.PlaneXZ}
	o.Position = o.At(0)
	require.NoError(t, ecs.Add(w, e, component.NameComponent.Kind(), &component.Name{Value: "Luz"}))
	require.NoError(t, ecs.Add(w, e, component.OrbitComponent.Kind(), o))
	require.NoError(t, ecs.Add(w, e, component.TransformComponent.Kind(), placed(o)))
	require.NoError(t, ecs.Add(w, e, component.OscillatorComponent.Kind(), &component.Oscillator{
		Min: -1, Max: 1, Step: 0.25, Axis: mgl32.Vec3{0, 1, 0},
	}))
	require.NoError(t, ecs.Add(w, e, component.LightComponent.Kind(), &component.Light{Power: 1}))
	return e
}

func perFrame(velocity float32) ecs.Tick {
	p := component.DefaultParams()
	p.Velocity = velocity
	return ecs.Tick{Delta: 1.0 / 60, Params: p}
}

func TestAdvanceAllCollectsUpdatedPositions(t *testing.T) {
	w := ecs.NewWorld()
	spawnRider(t, w, "Gallina", 0)
	spawnRider(t, w, "Trump", 180)
	spawnLight(t, w)

	prop := ecs.CreateEntity(w)
	require.NoError(t, ecs.Add(w, prop, component.NameComponent.Kind(), &component.Name{Value: "Caja"}))
	require.NoError(t, ecs.Add(w, prop, component.TransformComponent.Kind(), &component.Transform{Matrix: mgl32.Translate3D(1, 2, 3)}))

	pass := NewUpdatePass(nil)
	var positions Positions
	for range 90 {
		positions = AdvanceAll(w, pass, perFrame(1))
	}

	gallina, ok := positions.Lookup("Gallina")
	require.True(t, ok)
	trump, ok := positions.Lookup("Trump")
	require.True(t, ok)
	assertVec3InDelta(t, mgl32.Vec3{0, 6.3 + 5.55, 0}, gallina, 1e-3)
	assertVec3InDelta(t, mgl32.Vec3{0, 6.3 - 5.55, 0}, trump, 1e-3)

	caja, ok := positions.Lookup("Caja")
	require.True(t, ok)
	assert.Equal(t, mgl32.Vec3{1, 2, 3}, caja)

	_, ok = positions.Lookup("missing")
	assert.False(t, ok)
	_, ok = Positions(nil).Lookup("Gallina")
	assert.False(t, ok)
}

func TestLightPositionIncludesOscillator(t *testing.T) {
	w := ecs.NewWorld()
	e := spawnLight(t, w)
	pass := NewUpdatePass(nil)

	positions := AdvanceAll(w, pass, perFrame(90))

	o, _ := ecs.Get(w, e, component.OrbitComponent.Kind())
	osc, _ := ecs.Get(w, e, component.OscillatorComponent.Kind())
	want := o.At(90).Add(mgl32.Vec3{0, 0.25, 0})

	assert.InDelta(t, 0.25, osc.Value, 1e-6)
	assertVec3InDelta(t, want, LightPosition(w, mgl32.Vec3{}), 1e-4)
	assertVec3InDelta(t, want, positions["Luz"], 1e-4)

	tr, _ := ecs.Get(w, e, component.TransformComponent.Kind())
	assertVec3InDelta(t, want, tr.Translation(), 1e-4)
}

func TestLightPositionFallback(t *testing.T) {
	w := ecs.NewWorld()
	fallback := mgl32.Vec3{0, 8, 0}
	assert.Equal(t, fallback, LightPosition(w, fallback))
}

func TestUpdatePassOrder(t *testing.T) {
	systems := NewUpdatePass(nil).Systems()
	require.Len(t, systems, 6)
	assert.IsType(t, &LightSystem{}, systems[0])
	assert.IsType(t, &CharacterSystem{}, systems[1])
	assert.IsType(t, &BatchSystem{}, systems[2])
	assert.IsType(t, &SpinSystem{}, systems[3])
	assert.IsType(t, &BounceSystem{}, systems[4])
	assert.IsType(t, &MorphSystem{}, systems[5])
}

func TestDeltaScaledMotion(t *testing.T) {
	w := ecs.NewWorld()
	e := spawnRider(t, w, "Gallina", 0)
	pass := NewUpdatePass(nil)

	tick := perFrame(1)
	tick.Params.Motion = component.MotionDeltaScaled
	tick.Delta = 1.0 / 30
	AdvanceAll(w, pass, tick)

	o, _ := ecs.Get(w, e, component.OrbitComponent.Kind())
	assert.InDelta(t, 2, o.Angle, 1e-5)
}
