package system

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/noria/ecs"
	"github.com/milk9111/noria/ecs/component"
)

// DefaultCameraInterval is the dwell time of each camera mode in seconds.
const DefaultCameraInterval = 1.0

const cameraEpsilon = 1e-6

var worldUp = mgl32.Vec3{0, 1, 0}

// CameraView is the camera output for one frame.
type CameraView struct {
	View   mgl32.Mat4
	Eye    mgl32.Vec3
	Target mgl32.Vec3
	Up     mgl32.Vec3
	LookAt bool

	// Transition is set on the frame the mode changed.
	Transition *component.CameraModeChanged
}

// NextCameraMode returns the mode that follows m.
func NextCameraMode(m component.CameraMode) component.CameraMode {
	switch m {
	case component.CameraBoot1:
		return component.CameraBoot2
	case component.CameraBoot2:
		return component.CameraFocusA
	case component.CameraFocusA:
		return component.CameraFocusB
	default:
		return component.CameraFocusA
	}
}

// StepCameraMode adds delta to the rig timer and advances the mode once when
// the interval has elapsed. The timer restarts from zero, so a long frame
// still produces a single transition.
func StepCameraMode(rig *component.CameraRig, delta, elapsed float64) *component.CameraModeChanged {
	if rig == nil {
		return nil
	}
	interval := rig.Interval
	if interval <= 0 {
		interval = DefaultCameraInterval
	}
	if delta > 0 {
		rig.Timer += delta
	}
	if rig.Timer < interval-cameraEpsilon {
		return nil
	}
	from := rig.Mode
	rig.Mode = NextCameraMode(from)
	rig.Timer = 0
	rig.Switches++
	return &component.CameraModeChanged{From: from, To: rig.Mode, At: elapsed}
}

// ComposeCamera steps the mode machine and builds this frame's view. Boot
// modes, a nil rig or a rig whose entities are missing fall back to the
// free-look view.
func ComposeCamera(positions Positions, rig *component.CameraRig, free *component.FreeLook, delta, elapsed float64) CameraView {
	var out CameraView
	out.Transition = StepCameraMode(rig, delta, elapsed)
	if rig != nil && !rig.Mode.Booting() {
		if view, ok := lookAtView(positions, rig); ok {
			view.Transition = out.Transition
			return view
		}
	}
	out.View = FreeLookView(free)
	out.Eye = eyeOf(out.View)
	out.Up = worldUp
	return out
}

func lookAtView(positions Positions, rig *component.CameraRig) (CameraView, bool) {
	focused, other := rig.Focused()
	target, ok := positions.Lookup(focused)
	if !ok {
		return CameraView{}, false
	}
	eye, ok := positions.Lookup(other)
	if !ok {
		return CameraView{}, false
	}
	eye = eye.Add(rig.EyeOffset)
	target = target.Add(rig.TargetOffsets[focused])
	if eye.Sub(target).Len() < cameraEpsilon {
		return CameraView{}, false
	}

	rig.Eye, rig.Target, rig.Up = eye, target, worldUp
	return CameraView{
		View:   mgl32.LookAtV(eye, target, worldUp),
		Eye:    eye,
		Target: target,
		Up:     worldUp,
		LookAt: true,
	}, true
}

// eyeOf recovers the camera position from a rigid view matrix.
func eyeOf(view mgl32.Mat4) mgl32.Vec3 {
	if view.Det() == 0 {
		return mgl32.Vec3{}
	}
	return view.Inv().Col(3).Vec3()
}

// FindEntity returns the live entity whose Name is name.
func FindEntity(w *ecs.World, name string) (ecs.Entity, bool) {
	var found ecs.Entity
	ecs.ForEach(w, component.NameComponent.Kind(), func(e ecs.Entity, n *component.Name) {
		if !found.Valid() && n.Value == name {
			found = e
		}
	})
	return found, found.Valid()
}
