// Command simulate steps a scene without a window and prints its state as
// yaml, one document per sampled frame.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"sort"

	"github.com/milk9111/noria/ecs/component"
	"github.com/milk9111/noria/ecs/render"
	"github.com/milk9111/noria/prefabs"
	"github.com/milk9111/noria/scene"
	"gopkg.in/yaml.v3"
)

type entityDump struct {
	Name     string     `yaml:"name"`
	Position [3]float32 `yaml:"position,flow"`
	Draws    int        `yaml:"draws"`
}

type frameDump struct {
	Frame    int          `yaml:"frame"`
	Elapsed  float64      `yaml:"elapsed"`
	Camera   string       `yaml:"camera"`
	LookAt   bool         `yaml:"look_at"`
	Eye      [3]float32   `yaml:"eye,flow"`
	Light    [3]float32   `yaml:"light,flow"`
	Events   []string     `yaml:"events,omitempty"`
	Entities []entityDump `yaml:"entities"`
}

type options struct {
	scene    string
	exercise int
	frames   int
	every    int
	dt       float64
	dtScaled bool
	velocity float64
	width    int
	height   int
}

func main() {
	var opts options
	flag.StringVar(&opts.scene, "scene", "", "scene name in prefabs/scenes/; overrides -exercise")
	flag.IntVar(&opts.exercise, "exercise", 1, "exercise number from prefabs/exercises.yaml")
	flag.IntVar(&opts.frames, "frames", 120, "number of frames to step")
	flag.IntVar(&opts.every, "every", 30, "print every n-th frame")
	flag.Float64Var(&opts.dt, "dt", 1.0/60, "frame time in seconds")
	flag.BoolVar(&opts.dtScaled, "dt-scaled", false, "scale motion by frame time")
	flag.Float64Var(&opts.velocity, "velocity", -1, "override the scene velocity (degrees per frame)")
	flag.IntVar(&opts.width, "width", 800, "viewport width")
	flag.IntVar(&opts.height, "height", 600, "viewport height")
	flag.Parse()

	if err := run(os.Stdout, opts); err != nil {
		log.Fatal(err)
	}
}

func run(out io.Writer, opts options) error {
	name := opts.scene
	if name == "" {
		exercises, err := prefabs.LoadExercises()
		if err != nil {
			return err
		}
		s, ok := exercises.Scene(opts.exercise)
		if !ok {
			return fmt.Errorf("simulate: %w: exercise %d", prefabs.ErrUnknownScene, opts.exercise)
		}
		name = s
	}

	s, err := scene.Load(name, opts.width, opts.height)
	if err != nil {
		return err
	}
	defer s.Close()

	params := s.Defaults
	if opts.velocity >= 0 {
		params.Velocity = float32(opts.velocity)
	}
	if opts.dtScaled {
		params.Motion = component.MotionDeltaScaled
	}
	every := max(opts.every, 1)

	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	defer enc.Close()

	rec := &render.Recorder{}
	var pending []string
	for i := 1; i <= opts.frames; i++ {
		f := s.Step(opts.dt, params)
		for _, evt := range f.Events {
			if change, ok := evt.Data.(component.CameraModeChanged); ok {
				pending = append(pending, fmt.Sprintf("%s -> %s @ %.3f", change.From, change.To, change.At))
			}
		}
		if i%every != 0 && i != opts.frames {
			continue
		}
		s.Draw(rec)
		if err := enc.Encode(dumpFrame(i, s, f, rec, pending)); err != nil {
			return fmt.Errorf("simulate: encode frame %d: %w", i, err)
		}
		pending = nil
	}
	return nil
}

func dumpFrame(i int, s *scene.Scene, f scene.Frame, rec *render.Recorder, events []string) frameDump {
	mode := "free_look"
	if rig := s.Rig(); rig != nil {
		mode = rig.Mode.String()
	}
	d := frameDump{
		Frame:   i,
		Elapsed: f.Elapsed,
		Camera:  mode,
		LookAt:  f.Camera.LookAt,
		Eye:     f.Camera.Eye,
		Light:   f.LightPosition,
		Events:  events,
	}
	names := make([]string, 0, len(f.Positions))
	for name := range f.Positions {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		d.Entities = append(d.Entities, entityDump{
			Name:     name,
			Position: f.Positions[name],
			Draws:    len(rec.Find(name)),
		})
	}
	return d
}
