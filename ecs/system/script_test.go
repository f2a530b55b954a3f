package system

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/noria/ecs/component"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scriptsFrom(sources map[string]string) *OrbitScripts {
	s := NewOrbitScripts()
	s.load = func(name string) ([]byte, error) {
		src, ok := sources[name]
		if !ok {
			return nil, errors.New("not found")
		}
		return []byte(src), nil
	}
	return s
}

func TestOrbitScriptsEmbeddedLight(t *testing.T) {
	s := NewOrbitScripts()
	require.NoError(t, s.Load("luz"))

	o := &component.Orbit{Center: mgl32.Vec3{0, 6.3, 0}, Radius: 8, Plane: component.PlaneXZ, Script: "luz"}
	pos := s.Evaluate(o, 90)
	assert.InDelta(t, 0, pos[0], 1e-4)
	assert.InDelta(t, 6.3, pos[1], 1e-4)
	assert.InDelta(t, 8, pos[2], 1e-4)
}

func TestOrbitScriptsOverrideCircle(t *testing.T) {
	s := scriptsFrom(map[string]string{
		"line": "x := cx + angle\ny := cy\nz := cz + radius",
	})
	require.NoError(t, s.Load("line"))

	o := &component.Orbit{Center: mgl32.Vec3{1, 2, 3}, Radius: 4, Script: "line"}
	o.Position = s.Evaluate(o, 0)
	tr := &component.Transform{Matrix: mgl32.Translate3D(o.Position[0], o.Position[1], o.Position[2])}

	advanceOrbit(o, tr, 10, s.positioner(o))

	assert.Equal(t, mgl32.Vec3{11, 2, 7}, o.Position)
	assertVec3InDelta(t, o.Position, tr.Translation(), 1e-5)
}

func TestOrbitScriptsErrors(t *testing.T) {
	s := scriptsFrom(map[string]string{
		"syntax":     "x := (",
		"no_outputs": "a := 1",
	})

	assert.Error(t, s.Load("missing"))
	assert.Error(t, s.Load("syntax"))
	assert.ErrorContains(t, s.Load("no_outputs"), `"x"`)

	var nilScripts *OrbitScripts
	assert.Error(t, nilScripts.Load("luz"))
}

func TestOrbitScriptsRuntimeFailureKeepsPosition(t *testing.T) {
	s := scriptsFrom(map[string]string{
		"broken": "x := angle.nope\ny := 0\nz := 0",
	})
	require.NoError(t, s.Load("broken"))

	o := &component.Orbit{Radius: 1, Script: "broken", Position: mgl32.Vec3{1, 0, 0}}
	tr := &component.Transform{Matrix: mgl32.Translate3D(1, 0, 0)}
	delta := advanceOrbit(o, tr, 5, s.positioner(o))

	assert.Equal(t, mgl32.Vec3{}, delta)
	assert.Equal(t, mgl32.Vec3{1, 0, 0}, o.Position)
	assert.Equal(t, float32(5), o.Angle)
	assert.Equal(t, mgl32.Vec3{1, 0, 0}, s.Evaluate(&component.Orbit{Radius: 1, Script: "broken"}, 0))
}

func TestOrbitScriptsFallBackToCircle(t *testing.T) {
	var s *OrbitScripts
	o := &component.Orbit{Radius: 2, Script: "never_loaded"}
	assertVec3InDelta(t, o.At(30), s.Evaluate(o, 30), 1e-6)
}
