package entity

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/noria/ecs"
	"github.com/milk9111/noria/ecs/component"
	"github.com/milk9111/noria/ecs/system"
	"github.com/milk9111/noria/prefabs"
)

// CameraName is the Name given to the camera entity.
const CameraName = "camera"

// NewCamera creates the camera entity: a free-look pose and, when the scene
// has a camera section, the look-at rig.
func NewCamera(w *ecs.World, freeLook prefabs.FreeLookSpec, rig *prefabs.CameraSpec) (ecs.Entity, error) {
	camera := ecs.CreateEntity(w)
	if err := ecs.Add(w, camera, component.NameComponent.Kind(), &component.Name{Value: CameraName}); err != nil {
		return 0, fmt.Errorf("camera: add name: %w", err)
	}

	if err := ecs.Add(w, camera, component.FreeLookComponent.Kind(), FreeLookFromSpec(freeLook)); err != nil {
		ecs.DestroyEntity(w, camera)
		return 0, fmt.Errorf("camera: add free look: %w", err)
	}

	if rig == nil {
		return camera, nil
	}
	r, err := CameraRigFromSpec(*rig)
	if err != nil {
		ecs.DestroyEntity(w, camera)
		return 0, fmt.Errorf("camera: %w", err)
	}
	if err := ecs.Add(w, camera, component.CameraRigComponent.Kind(), r); err != nil {
		ecs.DestroyEntity(w, camera)
		return 0, fmt.Errorf("camera: add rig: %w", err)
	}
	return camera, nil
}

// FreeLookFromSpec falls back to the default pan when none is given.
func FreeLookFromSpec(s prefabs.FreeLookSpec) *component.FreeLook {
	pan := mgl32.Vec3(s.Pan)
	if pan == (mgl32.Vec3{}) {
		pan = system.DefaultPan
	}
	return &component.FreeLook{Pan: pan, Rotate: mgl32.Vec2(s.Rotate)}
}

// FreeLookToSpec is the inverse of FreeLookFromSpec, used to export a pose.
func FreeLookToSpec(f *component.FreeLook) prefabs.FreeLookSpec {
	if f == nil {
		return prefabs.FreeLookSpec{Pan: prefabs.Vec3Spec(system.DefaultPan)}
	}
	return prefabs.FreeLookSpec{Pan: prefabs.Vec3Spec(f.Pan), Rotate: [2]float32(f.Rotate)}
}

// CameraRigFromSpec picks the start mode from the number of boot intervals:
// two start at Boot1, one at Boot2, zero at FocusA.
func CameraRigFromSpec(s prefabs.CameraSpec) (*component.CameraRig, error) {
	if s.FocusA == "" || s.FocusB == "" {
		return nil, fmt.Errorf("rig needs two focus entities")
	}
	if s.BootIntervals < 0 || s.BootIntervals > 2 {
		return nil, fmt.Errorf("boot intervals must be 0, 1 or 2, got %d", s.BootIntervals)
	}
	interval := s.Interval
	if interval <= 0 {
		interval = system.DefaultCameraInterval
	}
	mode := component.CameraFocusA
	switch s.BootIntervals {
	case 2:
		mode = component.CameraBoot1
	case 1:
		mode = component.CameraBoot2
	}
	offsets := make(map[string]mgl32.Vec3, len(s.TargetOffsets))
	for name, off := range s.TargetOffsets {
		offsets[name] = mgl32.Vec3(off)
	}
	return &component.CameraRig{
		FocusA:        s.FocusA,
		FocusB:        s.FocusB,
		Interval:      interval,
		EyeOffset:     mgl32.Vec3(s.EyeOffset),
		TargetOffsets: offsets,
		Mode:          mode,
		Up:            mgl32.Vec3{0, 1, 0},
	}, nil
}
