package scene

import (
	"fmt"
	"log"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/noria/ecs"
	"github.com/milk9111/noria/ecs/component"
	"github.com/milk9111/noria/ecs/entity"
	"github.com/milk9111/noria/ecs/render"
	"github.com/milk9111/noria/ecs/system"
	"github.com/milk9111/noria/prefabs"
)

// Scene owns one exercise: its world, update pass, clock and projection.
type Scene struct {
	Name       string
	World      *ecs.World
	Pass       *ecs.Scheduler
	Scripts    *system.OrbitScripts
	Projection *system.Projection
	Clock      system.Clock
	Meshes     render.MeshProvider
	Defaults   component.Params

	Camera ecs.Entity
	built  *entity.Built
	last   Frame
}

// Frame is what one Step produced.
type Frame struct {
	Delta   float64
	Elapsed float64
	Aspect  float32

	Projection mgl32.Mat4
	View       mgl32.Mat4
	MVP        mgl32.Mat4

	Camera        system.CameraView
	Positions     system.Positions
	LightPosition mgl32.Vec3
	Params        component.Params
	Events        []ecs.Event
}

// Load reads a scene by name and builds it for a width x height viewport.
func Load(name string, width, height int) (*Scene, error) {
	spec, err := prefabs.LoadScene(name)
	if err != nil {
		return nil, fmt.Errorf("scene: load %s: %w", name, err)
	}
	return New(spec, width, height)
}

// New builds a scene from an already parsed descriptor.
func New(spec *prefabs.SceneSpec, width, height int) (*Scene, error) {
	if spec == nil {
		return nil, fmt.Errorf("scene: nil spec")
	}
	s := &Scene{
		Name:       spec.Name,
		World:      ecs.NewWorld(),
		Scripts:    system.NewOrbitScripts(),
		Projection: system.NewProjection(spec.Projection.FOV, spec.Projection.Near, spec.Projection.Far, width, height),
		Meshes:     render.Builtins(),
		Defaults:   entity.ParamsFromSpec(spec.Params, component.DefaultParams()),
	}
	s.Pass = system.NewUpdatePass(s.Scripts)

	built, err := entity.BuildScene(s.World, spec, s.Scripts)
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	s.built = built
	s.Camera = built.Camera
	return s, nil
}

// Resize recomputes the projection only.
func (s *Scene) Resize(width, height int) {
	s.Projection.Resize(width, height)
}

// FreeLook returns the camera's free-look pose.
func (s *Scene) FreeLook() *component.FreeLook {
	f, _ := ecs.Get(s.World, s.Camera, component.FreeLookComponent.Kind())
	return f
}

// Rig returns the look-at rig, or nil when the scene has none.
func (s *Scene) Rig() *component.CameraRig {
	r, _ := ecs.Get(s.World, s.Camera, component.CameraRigComponent.Kind())
	return r
}

// HandleMouse feeds one input sample to the free-look camera.
func (s *Scene) HandleMouse(ev component.MouseEvent) bool {
	return system.ApplyMouse(s.FreeLook(), ev)
}

// Entity looks up an entity by name.
func (s *Scene) Entity(name string) (ecs.Entity, bool) {
	if s.built != nil {
		if e, ok := s.built.Entities[name]; ok && ecs.IsAlive(s.World, e) {
			return e, true
		}
	}
	return system.FindEntity(s.World, name)
}

// Step advances the scene one frame: the update pass writes every entity,
// then the camera reads their positions and the matrices are composed.
// params is copied once and used for the whole frame.
func (s *Scene) Step(delta float64, params component.Params) Frame {
	s.Clock.Tick(delta)
	tick := ecs.Tick{Delta: s.Clock.Delta, Elapsed: s.Clock.Elapsed, Params: params}

	positions := system.AdvanceAll(s.World, s.Pass, tick)
	cam := system.ComposeCamera(positions, s.Rig(), s.FreeLook(), tick.Delta, tick.Elapsed)
	if cam.Transition != nil {
		s.World.Events().Push(ecs.Event{Type: component.CameraModeChangedEvent, Data: *cam.Transition})
	}

	f := Frame{
		Delta:         tick.Delta,
		Elapsed:       tick.Elapsed,
		Aspect:        s.Projection.Aspect,
		Projection:    s.Projection.Matrix,
		View:          cam.View,
		MVP:           system.Compose(s.Projection.Matrix, cam.View),
		Camera:        cam,
		Positions:     positions,
		LightPosition: system.LightPosition(s.World, params.LightPosition),
		Params:        params,
		Events:        s.World.Events().Drain(),
	}
	s.last = f
	return f
}

// Draw hands the last stepped frame to sink.
func (s *Scene) Draw(sink render.Sink) {
	f := s.last
	if f.View == (mgl32.Mat4{}) {
		f.View = system.FreeLookView(s.FreeLook())
		f.Camera.View = f.View
		f.Projection = s.Projection.Matrix
		f.LightPosition = system.LightPosition(s.World, s.Defaults.LightPosition)
		f.Params = s.Defaults
	}
	u := system.FrameUniforms(f.Projection, f.Camera, f.LightPosition, f.Params)
	system.DrawScene(s.World, sink, s.Meshes, u)
}

// ReloadScript recompiles one orbit script in place.
func (s *Scene) ReloadScript(name string) error {
	if err := s.Scripts.Load(name); err != nil {
		return fmt.Errorf("scene %s: %w", s.Name, err)
	}
	log.Printf("scene %s: reloaded script %s", s.Name, name)
	return nil
}

// Close tears the world down.
func (s *Scene) Close() {
	if s == nil {
		return
	}
	ecs.Clear(s.World)
	s.built = nil
	s.Camera = 0
}
