package entity

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/noria/ecs"
	"github.com/milk9111/noria/ecs/component"
	"github.com/milk9111/noria/ecs/system"
	"github.com/milk9111/noria/prefabs"
)

var ErrUnknownKind = errors.New("entity: unknown kind")

type buildContext struct {
	Scene   string
	Scripts *system.OrbitScripts
}

type componentBuildFn func(w *ecs.World, e ecs.Entity, spec *prefabs.EntitySpec, ctx *buildContext) error

// kindRequirements lists, per kind, the sections the descriptor must carry.
var kindRequirements = map[string][]string{
	"light":     {"orbit", "light"},
	"character": {"orbit"},
	"carriage":  {"orbit", "batch"},
	"spinner":   {"spin"},
	"prop":      nil,
	"bouncer":   {"bouncer"},
	"morph":     {"morph"},
}

var componentRegistry = map[string]componentBuildFn{
	"name":       addName,
	"appearance": addAppearance,
	"tag":        addKindTag,
	"transform":  addTransform,
	"orbit":      addOrbit,
	"oscillator": addOscillator,
	"light":      addLight,
	"batch":      addBatch,
	"spin":       addSpin,
	"bouncer":    addBouncer,
	"morph":      addMorph,
}

// componentBuildOrder matters: orbit and oscillator compose onto the
// transform pose, and light reads both.
var componentBuildOrder = []string{
	"name",
	"appearance",
	"tag",
	"transform",
	"orbit",
	"oscillator",
	"light",
	"batch",
	"spin",
	"bouncer",
	"morph",
}

// BuildEntity creates one entity from its descriptor. On error nothing is
// left in the world.
func BuildEntity(w *ecs.World, spec *prefabs.EntitySpec, ctx *buildContext) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("build entity: world is nil")
	}
	if spec == nil {
		return 0, fmt.Errorf("build entity: spec is nil")
	}
	if ctx == nil {
		ctx = &buildContext{}
	}
	kind := strings.TrimSpace(spec.Kind)
	required, ok := kindRequirements[kind]
	if !ok {
		return 0, fmt.Errorf("build entity: %q: %w %q", spec.Name, ErrUnknownKind, spec.Kind)
	}
	for _, section := range required {
		if !hasSection(spec, section) {
			return 0, fmt.Errorf("build entity: %q: kind %s requires %s", spec.Name, kind, section)
		}
	}

	e := ecs.CreateEntity(w)
	for _, name := range componentBuildOrder {
		if err := componentRegistry[name](w, e, spec, ctx); err != nil {
			ecs.DestroyEntity(w, e)
			return 0, fmt.Errorf("build entity: %q: add %q: %w", spec.Name, name, err)
		}
	}
	return e, nil
}

func hasSection(spec *prefabs.EntitySpec, section string) bool {
	switch section {
	case "orbit":
		return spec.Orbit != nil
	case "light":
		return spec.Light != nil
	case "batch":
		return spec.Batch != nil
	case "spin":
		return spec.Spin != nil
	case "bouncer":
		return spec.Bouncer != nil
	case "morph":
		return spec.Morph != nil
	}
	return false
}

func addName(w *ecs.World, e ecs.Entity, spec *prefabs.EntitySpec, _ *buildContext) error {
	return ecs.Add(w, e, component.NameComponent.Kind(), &component.Name{Value: strings.TrimSpace(spec.Name)})
}

func addAppearance(w *ecs.World, e ecs.Entity, spec *prefabs.EntitySpec, _ *buildContext) error {
	return ecs.Add(w, e, component.AppearanceComponent.Kind(), &component.Appearance{
		Mesh:   spec.Mesh,
		Color:  mgl32.Vec4(spec.Color.RGBA32()),
		Shader: spec.Shader,
		Hidden: spec.Hidden,
	})
}

func addKindTag(w *ecs.World, e ecs.Entity, spec *prefabs.EntitySpec, _ *buildContext) error {
	switch strings.TrimSpace(spec.Kind) {
	case "character":
		return ecs.Add(w, e, component.CharacterTagComponent.Kind(), &component.CharacterTag{})
	case "prop":
		return ecs.Add(w, e, component.PropTagComponent.Kind(), &component.PropTag{})
	}
	return nil
}

func addTransform(w *ecs.World, e ecs.Entity, spec *prefabs.EntitySpec, _ *buildContext) error {
	return ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{Matrix: Pose(spec.Transform)})
}

// Pose is translate * Rz * Ry * Rx * scale with rotations in degrees.
func Pose(t prefabs.TransformSpec) mgl32.Mat4 {
	scale := mgl32.Vec3{1, 1, 1}
	if t.Scale != nil {
		scale = mgl32.Vec3(*t.Scale)
	}
	rot := mgl32.HomogRotate3DZ(mgl32.DegToRad(t.Rotate[2])).
		Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(t.Rotate[1]))).
		Mul4(mgl32.HomogRotate3DX(mgl32.DegToRad(t.Rotate[0])))
	return mgl32.Translate3D(t.Translate[0], t.Translate[1], t.Translate[2]).
		Mul4(rot).
		Mul4(mgl32.Scale3D(scale[0], scale[1], scale[2]))
}

func addOrbit(w *ecs.World, e ecs.Entity, spec *prefabs.EntitySpec, ctx *buildContext) error {
	if spec.Orbit == nil {
		return nil
	}
	o, err := OrbitFromSpec(*spec.Orbit)
	if err != nil {
		return err
	}
	if o.Script != "" {
		if err := ctx.Scripts.Load(o.Script); err != nil {
			return err
		}
	}
	o.Position = ctx.Scripts.Evaluate(o, o.Angle)

	// Batch templates keep the bare pose; instances are placed per frame.
	if spec.Batch == nil {
		if tr, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
			tr.Matrix = mgl32.Translate3D(o.Position[0], o.Position[1], o.Position[2]).Mul4(tr.Matrix)
		}
	}
	return ecs.Add(w, e, component.OrbitComponent.Kind(), o)
}

// OrbitFromSpec validates the plane and radius of an orbit descriptor.
func OrbitFromSpec(s prefabs.OrbitSpec) (*component.Orbit, error) {
	plane, ok := component.ParsePlane(strings.ToLower(strings.TrimSpace(s.Plane)))
	if !ok {
		return nil, fmt.Errorf("orbit: invalid plane %q", s.Plane)
	}
	if s.Radius < 0 {
		return nil, fmt.Errorf("orbit: negative radius %v", s.Radius)
	}
	return &component.Orbit{
		Center:  mgl32.Vec3(s.Center),
		Radius:  s.Radius,
		Plane:   plane,
		Phase:   s.Phase,
		Reverse: s.Reverse,
		Script:  strings.TrimSpace(s.Script),
		Angle:   s.Angle,
	}, nil
}

func addOscillator(w *ecs.World, e ecs.Entity, spec *prefabs.EntitySpec, _ *buildContext) error {
	if spec.Oscillator == nil {
		return nil
	}
	s := spec.Oscillator
	if s.Max <= s.Min {
		return fmt.Errorf("oscillator: max %v must exceed min %v", s.Max, s.Min)
	}
	axis := mgl32.Vec3(s.Axis)
	if axis.Len() == 0 {
		axis = mgl32.Vec3{0, 1, 0}
	}
	osc := &component.Oscillator{
		Min:       s.Min,
		Max:       s.Max,
		Step:      s.Step,
		Axis:      axis,
		Value:     max(s.Min, min(s.Max, s.Value)),
		Direction: 1,
	}
	if tr, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
		off := osc.Offset()
		tr.Matrix = mgl32.Translate3D(off[0], off[1], off[2]).Mul4(tr.Matrix)
	}
	return ecs.Add(w, e, component.OscillatorComponent.Kind(), osc)
}

func addLight(w *ecs.World, e ecs.Entity, spec *prefabs.EntitySpec, _ *buildContext) error {
	if spec.Light == nil {
		return nil
	}
	rgba := spec.Light.Color.RGBA32()
	power := spec.Light.Power
	if power == 0 {
		power = 1
	}
	l := &component.Light{Color: mgl32.Vec3{rgba[0], rgba[1], rgba[2]}, Power: power}
	if o, ok := ecs.Get(w, e, component.OrbitComponent.Kind()); ok {
		l.Position = o.Position
	}
	if osc, ok := ecs.Get(w, e, component.OscillatorComponent.Kind()); ok {
		l.Position = l.Position.Add(osc.Offset())
	}
	return ecs.Add(w, e, component.LightComponent.Kind(), l)
}

func addBatch(w *ecs.World, e ecs.Entity, spec *prefabs.EntitySpec, _ *buildContext) error {
	if spec.Batch == nil {
		return nil
	}
	b := &component.Batch{Count: spec.Batch.Count, Step: spec.Batch.Step}
	if b.Count <= 0 {
		b.Count = component.DefaultBatchCount
	}
	if b.Step == 0 {
		b.Step = component.DefaultBatchStep
	}
	o, ok := ecs.Get(w, e, component.OrbitComponent.Kind())
	if !ok {
		return fmt.Errorf("batch requires an orbit")
	}
	tr, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return fmt.Errorf("batch requires a transform")
	}
	system.AdvanceBatch(b, o, tr.Matrix, 0)
	return ecs.Add(w, e, component.BatchComponent.Kind(), b)
}

func addSpin(w *ecs.World, e ecs.Entity, spec *prefabs.EntitySpec, _ *buildContext) error {
	if spec.Spin == nil {
		return nil
	}
	tr, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return fmt.Errorf("spin requires a transform")
	}
	s := &component.Spin{Axis: mgl32.Vec3(spec.Spin.Axis), Base: tr.Matrix, Angle: spec.Spin.Angle}
	system.StepSpin(s, tr, 0)
	return ecs.Add(w, e, component.SpinComponent.Kind(), s)
}

// Default bouncer box and population.
var (
	DefaultBouncerMin = mgl32.Vec3{-5, 0, -5}
	DefaultBouncerMax = mgl32.Vec3{5, 10, 5}
)

const DefaultBouncerCount = 20

func addBouncer(w *ecs.World, e ecs.Entity, spec *prefabs.EntitySpec, _ *buildContext) error {
	if spec.Bouncer == nil {
		return nil
	}
	s := spec.Bouncer
	b := &component.Bouncer{Min: mgl32.Vec3(s.Min), Max: mgl32.Vec3(s.Max)}
	if b.Min == b.Max {
		b.Min, b.Max = DefaultBouncerMin, DefaultBouncerMax
	}
	for axis := range 3 {
		if b.Max[axis] <= b.Min[axis] {
			return fmt.Errorf("bouncer: empty box on axis %d", axis)
		}
	}
	count := s.Count
	if count <= 0 {
		count = DefaultBouncerCount
	}
	system.SeedBouncer(b, count, s.Seed)
	return ecs.Add(w, e, component.BouncerComponent.Kind(), b)
}

const DefaultMorphEdge = 0.3

func addMorph(w *ecs.World, e ecs.Entity, spec *prefabs.EntitySpec, _ *buildContext) error {
	if spec.Morph == nil {
		return nil
	}
	m := &component.Morph{A: spec.Morph.A}
	if m.A <= 0 {
		m.A = DefaultMorphEdge
	}
	system.UpdateMorph(m, 0)
	return ecs.Add(w, e, component.MorphComponent.Kind(), m)
}
