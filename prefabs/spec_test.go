package prefabs

import (
	"errors"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestLoadEmbeddedScenes(t *testing.T) {
	exercises, err := LoadExercises()
	require.NoError(t, err)
	require.NotEmpty(t, exercises.Exercises)

	for _, ex := range exercises.Exercises {
		t.Run(ex.Scene, func(t *testing.T) {
			spec, err := LoadScene(ex.Scene)
			require.NoError(t, err)
			assert.Equal(t, ex.Scene, spec.Name)
			assert.NotEmpty(t, spec.Entities)
		})
	}
}

func TestLoadSceneFeria(t *testing.T) {
	spec, err := LoadScene("scenes/feria.yaml")
	require.NoError(t, err)

	require.NotNil(t, spec.Camera)
	assert.Equal(t, "Gallina", spec.Camera.FocusA)
	assert.Equal(t, "Trump", spec.Camera.FocusB)
	assert.Equal(t, 2, spec.Camera.BootIntervals)
	assert.Equal(t, Vec3Spec{0, -5, -15}, spec.FreeLook.Pan)
	require.NotNil(t, spec.Params.Velocity)
	assert.Equal(t, float32(1), *spec.Params.Velocity)

	names := make([]string, 0, len(spec.Entities))
	for _, e := range spec.Entities {
		names = append(names, e.Name)
	}
	assert.Contains(t, names, "Luz")
	assert.Contains(t, names, "Cabina")
}

func TestLoadSceneUnknown(t *testing.T) {
	_, err := LoadScene("nope")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownScene))
}

func TestValidate(t *testing.T) {
	rig := func(a, b string) *CameraSpec { return &CameraSpec{FocusA: a, FocusB: b} }
	entities := []EntitySpec{{Name: "A"}, {Name: "B"}}

	cases := []struct {
		name string
		spec *SceneSpec
		ok   bool
	}{
		{"nil", nil, false},
		{"empty", &SceneSpec{}, true},
		{"valid_rig", &SceneSpec{Entities: entities, Camera: rig("A", "B")}, true},
		{"unnamed", &SceneSpec{Entities: []EntitySpec{{Name: " "}}}, false},
		{"duplicate", &SceneSpec{Entities: []EntitySpec{{Name: "A"}, {Name: "A"}}}, false},
		{"missing_focus", &SceneSpec{Entities: entities, Camera: rig("A", "C")}, false},
		{"same_focus", &SceneSpec{Entities: entities, Camera: rig("A", "A")}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := c.spec.Validate()
			if c.ok {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, ErrInvalidScene)
		})
	}
}

func TestExerciseScene(t *testing.T) {
	e := &ExercisesSpec{Exercises: []ExerciseSpec{{Number: 1, Scene: "feria"}, {Number: 3, Scene: "poliedros"}}}

	name, ok := e.Scene(3)
	assert.True(t, ok)
	assert.Equal(t, "poliedros", name)

	_, ok = e.Scene(2)
	assert.False(t, ok)

	var none *ExercisesSpec
	_, ok = none.Scene(1)
	assert.False(t, ok)
}

func TestYAMLColor(t *testing.T) {
	var c YAMLColor
	require.NoError(t, yaml.Unmarshal([]byte(`"#ff800080"`), &c))
	assert.Equal(t, color.NRGBA{R: 255, G: 128, B: 0, A: 128}, c.Color)
	assert.InDelta(t, 128.0/255, c.RGBA32()[1], 1e-6)

	out, err := yaml.Marshal(c)
	require.NoError(t, err)
	assert.Contains(t, string(out), "#ff800080")

	assert.Error(t, yaml.Unmarshal([]byte(`"#fff"`), &c))
	assert.Error(t, yaml.Unmarshal([]byte(`[1, 2]`), &c))

	var unset *YAMLColor
	assert.Equal(t, [4]float32{1, 1, 1, 1}, unset.RGBA32())
}

func TestChangedFileNames(t *testing.T) {
	cases := []struct {
		path   string
		scene  string
		script string
	}{
		{"prefabs/scenes/feria.yaml", "feria", ""},
		{"prefabs/exercises.yaml", "", ""},
		{"prefabs/scripts/luz.tengo", "", "luz"},
		{"prefabs/scenes/notes.txt", "", ""},
	}
	for _, c := range cases {
		assert.Equal(t, c.scene, SceneName(c.path), c.path)
		assert.Equal(t, c.script, ScriptName(c.path), c.path)
	}
}

func TestLoadScriptPaths(t *testing.T) {
	for _, name := range []string{"luz", "luz.tengo", "scripts/luz.tengo", "prefabs/scripts/luz.tengo"} {
		src, err := LoadScript(name)
		require.NoError(t, err, name)
		assert.Contains(t, string(src), "radius")
	}
}
