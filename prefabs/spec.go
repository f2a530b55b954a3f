package prefabs

import (
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	ErrUnknownScene = errors.New("prefabs: unknown scene")
	ErrInvalidScene = errors.New("prefabs: invalid scene")
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// SceneSpec is one exercise: projection, free-look start pose, an optional
// look-at camera rig, default tunables and the entities in update order.
type SceneSpec struct {
	Name       string         `yaml:"name"`
	Projection ProjectionSpec `yaml:"projection"`
	FreeLook   FreeLookSpec   `yaml:"free_look"`
	Camera     *CameraSpec    `yaml:"camera,omitempty"`
	Params     ParamsSpec     `yaml:"params"`
	Entities   []EntitySpec   `yaml:"entities"`
}

func LoadScene(name string) (*SceneSpec, error) {
	file := sceneFile(name)
	spec, err := LoadSpec[SceneSpec](file)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrUnknownScene, name)
		}
		return nil, err
	}
	if spec.Name == "" {
		spec.Name = strings.TrimSuffix(strings.TrimPrefix(file, "scenes/"), ".yaml")
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return &spec, nil
}

// Validate checks names are present and unique and that the camera rig
// points at entities of the scene.
func (s *SceneSpec) Validate() error {
	if s == nil {
		return fmt.Errorf("%w: nil spec", ErrInvalidScene)
	}
	seen := make(map[string]bool, len(s.Entities))
	for i, e := range s.Entities {
		if strings.TrimSpace(e.Name) == "" {
			return fmt.Errorf("%w: %s: entity %d has no name", ErrInvalidScene, s.Name, i)
		}
		if seen[e.Name] {
			return fmt.Errorf("%w: %s: duplicate entity %q", ErrInvalidScene, s.Name, e.Name)
		}
		seen[e.Name] = true
	}
	if s.Camera != nil {
		for _, name := range []string{s.Camera.FocusA, s.Camera.FocusB} {
			if !seen[name] {
				return fmt.Errorf("%w: %s: camera focus %q is not an entity", ErrInvalidScene, s.Name, name)
			}
		}
		if s.Camera.FocusA == s.Camera.FocusB {
			return fmt.Errorf("%w: %s: camera focus entities must differ", ErrInvalidScene, s.Name)
		}
	}
	return nil
}

func sceneFile(name string) string {
	name = strings.TrimSuffix(strings.TrimPrefix(name, "scenes/"), ".yaml")
	return "scenes/" + name + ".yaml"
}

type ExerciseSpec struct {
	Number int    `yaml:"number"`
	Label  string `yaml:"label"`
	Scene  string `yaml:"scene"`
}

type ExercisesSpec struct {
	Exercises []ExerciseSpec `yaml:"exercises"`
}

func LoadExercises() (*ExercisesSpec, error) {
	spec, err := LoadSpec[ExercisesSpec]("exercises.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// Scene returns the scene name for an exercise number.
func (e *ExercisesSpec) Scene(number int) (string, bool) {
	if e == nil {
		return "", false
	}
	for _, ex := range e.Exercises {
		if ex.Number == number {
			return ex.Scene, true
		}
	}
	return "", false
}

// Vec3Spec is written as a flow sequence: [x, y, z].
type Vec3Spec [3]float32

type ProjectionSpec struct {
	FOV  float32 `yaml:"fov"`
	Near float32 `yaml:"near"`
	Far  float32 `yaml:"far"`
}

type FreeLookSpec struct {
	Pan    Vec3Spec   `yaml:"pan,flow"`
	Rotate [2]float32 `yaml:"rotate,flow"`
}

type CameraSpec struct {
	FocusA        string              `yaml:"focus_a"`
	FocusB        string              `yaml:"focus_b"`
	Interval      float64             `yaml:"interval"`
	BootIntervals int                 `yaml:"boot_intervals"`
	EyeOffset     Vec3Spec            `yaml:"eye_offset,flow"`
	TargetOffsets map[string]Vec3Spec `yaml:"target_offsets"`
}

// ParamsSpec overrides the default tunables. Unset fields keep defaults.
type ParamsSpec struct {
	Velocity      *float32   `yaml:"velocity"`
	Diffuse       *float32   `yaml:"diffuse"`
	Specular      *float32   `yaml:"specular"`
	Ambient       *float32   `yaml:"ambient"`
	LightPower    *float32   `yaml:"light_power"`
	LightPosition *Vec3Spec  `yaml:"light_position,flow"`
	LightColor    *YAMLColor `yaml:"light_color"`
}

type EntitySpec struct {
	Name       string          `yaml:"name"`
	Kind       string          `yaml:"kind"`
	Mesh       string          `yaml:"mesh"`
	Color      *YAMLColor      `yaml:"color"`
	Shader     string          `yaml:"shader"`
	Hidden     bool            `yaml:"hidden"`
	Transform  TransformSpec   `yaml:"transform"`
	Orbit      *OrbitSpec      `yaml:"orbit,omitempty"`
	Oscillator *OscillatorSpec `yaml:"oscillator,omitempty"`
	Light      *LightSpec      `yaml:"light,omitempty"`
	Batch      *BatchSpec      `yaml:"batch,omitempty"`
	Spin       *SpinSpec       `yaml:"spin,omitempty"`
	Bouncer    *BouncerSpec    `yaml:"bouncer,omitempty"`
	Morph      *MorphSpec      `yaml:"morph,omitempty"`
}

// TransformSpec is the initial pose: translate * rotate(z*y*x, degrees) * scale.
type TransformSpec struct {
	Translate Vec3Spec  `yaml:"translate,flow"`
	Rotate    Vec3Spec  `yaml:"rotate,flow"`
	Scale     *Vec3Spec `yaml:"scale,flow"`
}

type OrbitSpec struct {
	Center  Vec3Spec `yaml:"center,flow"`
	Radius  float32  `yaml:"radius"`
	Plane   string   `yaml:"plane"`
	Phase   float32  `yaml:"phase"`
	Angle   float32  `yaml:"angle"`
	Reverse bool     `yaml:"reverse"`
	Script  string   `yaml:"script"`
}

type OscillatorSpec struct {
	Min   float32  `yaml:"min"`
	Max   float32  `yaml:"max"`
	Step  float32  `yaml:"step"`
	Axis  Vec3Spec `yaml:"axis,flow"`
	Value float32  `yaml:"value"`
}

type LightSpec struct {
	Color *YAMLColor `yaml:"color"`
	Power float32    `yaml:"power"`
}

type BatchSpec struct {
	Count int     `yaml:"count"`
	Step  float32 `yaml:"step"`
}

type SpinSpec struct {
	Axis  Vec3Spec `yaml:"axis,flow"`
	Angle float32  `yaml:"angle"`
}

type BouncerSpec struct {
	Count int      `yaml:"count"`
	Seed  uint64   `yaml:"seed"`
	Min   Vec3Spec `yaml:"min,flow"`
	Max   Vec3Spec `yaml:"max,flow"`
}

type MorphSpec struct {
	A float32 `yaml:"a"`
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}

func (c YAMLColor) MarshalYAML() (any, error) {
	if c.Color == nil {
		return "#ffffff", nil
	}
	n := color.NRGBAModel.Convert(c.Color).(color.NRGBA)
	return fmt.Sprintf("#%02x%02x%02x%02x", n.R, n.G, n.B, n.A), nil
}

// RGBA32 returns the colour as normalized floats; nil is opaque white.
func (c *YAMLColor) RGBA32() [4]float32 {
	if c == nil || c.Color == nil {
		return [4]float32{1, 1, 1, 1}
	}
	n := color.NRGBAModel.Convert(c.Color).(color.NRGBA)
	return [4]float32{float32(n.R) / 255, float32(n.G) / 255, float32(n.B) / 255, float32(n.A) / 255}
}
