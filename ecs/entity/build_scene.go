package entity

import (
	"fmt"

	"github.com/milk9111/noria/ecs"
	"github.com/milk9111/noria/ecs/system"
	"github.com/milk9111/noria/prefabs"
)

// Built is what BuildScene created.
type Built struct {
	Camera   ecs.Entity
	Entities map[string]ecs.Entity
	Order    []string
}

// BuildScene creates the camera and every entity of spec, in descriptor
// order. On error the world is left as it was.
func BuildScene(w *ecs.World, spec *prefabs.SceneSpec, scripts *system.OrbitScripts) (*Built, error) {
	if w == nil {
		return nil, fmt.Errorf("build scene: world is nil")
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("build scene: %w", err)
	}

	built := &Built{Entities: make(map[string]ecs.Entity, len(spec.Entities))}
	rollback := func() {
		for _, e := range built.Entities {
			ecs.DestroyEntity(w, e)
		}
		if built.Camera.Valid() {
			ecs.DestroyEntity(w, built.Camera)
		}
	}

	ctx := &buildContext{Scene: spec.Name, Scripts: scripts}
	for i := range spec.Entities {
		es := &spec.Entities[i]
		e, err := BuildEntity(w, es, ctx)
		if err != nil {
			rollback()
			return nil, fmt.Errorf("build scene %s: %w", spec.Name, err)
		}
		built.Entities[es.Name] = e
		built.Order = append(built.Order, es.Name)
	}

	camera, err := NewCamera(w, spec.FreeLook, spec.Camera)
	if err != nil {
		rollback()
		return nil, fmt.Errorf("build scene %s: %w", spec.Name, err)
	}
	built.Camera = camera
	return built, nil
}
