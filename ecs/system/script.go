package system

import (
	"fmt"
	"log"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/noria/ecs/component"
	"github.com/milk9111/noria/prefabs"
)

// orbitScriptInputs are the globals a script can read. It must define x, y
// and z.
var orbitScriptInputs = []string{"angle", "phase", "radius", "cx", "cy", "cz"}

type orbitScript struct {
	name     string
	compiled *tengo.Compiled
	failed   bool
}

// OrbitScripts compiles and caches tengo orbit scripts by name.
type OrbitScripts struct {
	cache map[string]*orbitScript
	load  func(name string) ([]byte, error)
}

func NewOrbitScripts() *OrbitScripts {
	return &OrbitScripts{cache: map[string]*orbitScript{}, load: prefabs.LoadScript}
}

// Load compiles name and keeps it for later frames. Calling it again
// recompiles, which is how hot reload picks up edits.
func (s *OrbitScripts) Load(name string) error {
	if s == nil {
		return fmt.Errorf("orbit script %s: nil script cache", name)
	}
	name = strings.TrimSpace(name)
	src, err := s.load(name)
	if err != nil {
		return fmt.Errorf("orbit script %s: %w", name, err)
	}
	compiled, err := CompileOrbitScript(src)
	if err != nil {
		return fmt.Errorf("orbit script %s: %w", name, err)
	}
	if s.cache == nil {
		s.cache = map[string]*orbitScript{}
	}
	s.cache[name] = &orbitScript{name: name, compiled: compiled}
	return nil
}

// CompileOrbitScript compiles src with the orbit inputs declared and checks
// that it defines the outputs.
func CompileOrbitScript(src []byte) (*tengo.Compiled, error) {
	script := tengo.NewScript(src)
	for _, in := range orbitScriptInputs {
		_ = script.Add(in, 0.0)
	}
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, err
	}
	for _, out := range []string{"x", "y", "z"} {
		if !compiled.IsDefined(out) {
			return nil, fmt.Errorf("script does not define %q", out)
		}
	}
	return compiled, nil
}

// positioner returns the evaluation function for o: its script when one is
// loaded, the plain circle otherwise.
func (s *OrbitScripts) positioner(o *component.Orbit) positionFunc {
	circle := func(angle float32) (mgl32.Vec3, bool) { return o.At(angle), true }
	if s == nil || o.Script == "" {
		return circle
	}
	rt, ok := s.cache[strings.TrimSpace(o.Script)]
	if !ok {
		return circle
	}
	return func(angle float32) (mgl32.Vec3, bool) {
		pos, err := rt.eval(o, angle)
		if err != nil {
			if !rt.failed {
				log.Printf("orbit script %s: %v", rt.name, err)
				rt.failed = true
			}
			return mgl32.Vec3{}, false
		}
		rt.failed = false
		return pos, true
	}
}

func (rt *orbitScript) eval(o *component.Orbit, angle float32) (mgl32.Vec3, error) {
	inputs := map[string]float64{
		"angle":  float64(angle),
		"phase":  float64(o.Phase),
		"radius": float64(o.Radius),
		"cx":     float64(o.Center[0]),
		"cy":     float64(o.Center[1]),
		"cz":     float64(o.Center[2]),
	}
	for k, v := range inputs {
		if err := rt.compiled.Set(k, v); err != nil {
			return mgl32.Vec3{}, err
		}
	}
	if err := rt.compiled.Run(); err != nil {
		return mgl32.Vec3{}, err
	}
	return mgl32.Vec3{
		float32(rt.compiled.Get("x").Float()),
		float32(rt.compiled.Get("y").Float()),
		float32(rt.compiled.Get("z").Float()),
	}, nil
}

// Evaluate runs o's script, or the circle, at angle. Builders use it to
// place entities before the first frame.
func (s *OrbitScripts) Evaluate(o *component.Orbit, angle float32) mgl32.Vec3 {
	pos, ok := s.positioner(o)(angle)
	if !ok {
		return o.At(angle)
	}
	return pos
}
