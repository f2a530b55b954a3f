package system

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/noria/ecs/component"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStepOscillatorPingPong(t *testing.T) {
	o := &component.Oscillator{Min: -1, Max: 1, Step: 0.25, Axis: mgl32.Vec3{0, 1, 0}}

	var values []float32
	for range 12 {
		StepOscillator(o, 1)
		values = append(values, o.Value)
	}

	want := []float32{0.25, 0.5, 0.75, 1, 0.75, 0.5, 0.25, 0, -0.25, -0.5, -0.75, -1}
	assert.Equal(t, want, values)
	assert.Equal(t, float32(1), o.Direction)
}

func TestStepOscillatorClampsOvershoot(t *testing.T) {
	o := &component.Oscillator{Min: 0, Max: 1, Step: 0.4, Axis: mgl32.Vec3{1, 0, 0}, Direction: 1}

	var total mgl32.Vec3
	for range 3 {
		total = total.Add(StepOscillator(o, 1))
	}

	assert.Equal(t, float32(1), o.Value)
	assert.Equal(t, float32(-1), o.Direction)
	assertVec3InDelta(t, mgl32.Vec3{1, 0, 0}, total, 1e-6)
	assertVec3InDelta(t, o.Offset(), total, 1e-6)
}

func TestStepOscillatorDegenerateRange(t *testing.T) {
	o := &component.Oscillator{Min: 1, Max: 1, Step: 1}
	assert.Equal(t, mgl32.Vec3{}, StepOscillator(o, 1))
	assert.Equal(t, mgl32.Vec3{}, StepOscillator(nil, 1))
}

func TestStepSpinRotatesInPlace(t *testing.T) {
	base := mgl32.Translate3D(0, 6.3, 0)
	s := &component.Spin{Axis: mgl32.Vec3{0, 0, 1}, Base: base}
	tr := &component.Transform{Matrix: base}

	for range 4 {
		StepSpin(s, tr, 22.5)
	}

	assert.Equal(t, float32(90), s.Angle)
	assertVec3InDelta(t, mgl32.Vec3{0, 6.3, 0}, tr.Translation(), 1e-6)
	x := tr.Matrix.Mul4x1(mgl32.Vec4{1, 0, 0, 1}).Vec3()
	assertVec3InDelta(t, mgl32.Vec3{0, 7.3, 0}, x, 1e-5)
}

func TestStepBouncerStaysInBox(t *testing.T) {
	b := &component.Bouncer{Min: mgl32.Vec3{-5, 0, -5}, Max: mgl32.Vec3{5, 10, 5}}
	SeedBouncer(b, 20, 7)
	require.Len(t, b.Points, 20)
	require.Len(t, b.Directions, 20)

	// A step can overshoot a face by at most one move before the next
	// step clamps it back.
	slack := float32(0.1 * 10)
	for range 2000 {
		StepBouncer(b, 0.1)
		for _, p := range b.Points {
			for axis := range 3 {
				assert.GreaterOrEqual(t, p[axis], b.Min[axis]-slack)
				assert.LessOrEqual(t, p[axis], b.Max[axis]+slack)
			}
		}
	}
}

func TestStepBouncerReflects(t *testing.T) {
	b := &component.Bouncer{
		Min:        mgl32.Vec3{-5, 0, -5},
		Max:        mgl32.Vec3{5, 10, 5},
		Points:     []mgl32.Vec3{{6, 5, 0}},
		Directions: []mgl32.Vec3{{3, 1, 1}},
	}

	StepBouncer(b, 0)

	assert.Equal(t, float32(5), b.Points[0][0], "clamped to the face")
	assert.Equal(t, float32(-3), b.Directions[0][0], "x component flipped")
	assert.GreaterOrEqual(t, b.Directions[0][1], float32(0))
	assert.LessOrEqual(t, b.Directions[0][1], float32(9))
	assert.GreaterOrEqual(t, b.Directions[0][2], float32(-5))
	assert.LessOrEqual(t, b.Directions[0][2], float32(4))
}

func TestSeedBouncerDeterministic(t *testing.T) {
	a := &component.Bouncer{Min: mgl32.Vec3{-5, 0, -5}, Max: mgl32.Vec3{5, 10, 5}}
	b := &component.Bouncer{Min: mgl32.Vec3{-5, 0, -5}, Max: mgl32.Vec3{5, 10, 5}}
	SeedBouncer(a, 5, 42)
	SeedBouncer(b, 5, 42)
	assert.Equal(t, a.Points, b.Points)
	assert.Equal(t, a.Directions, b.Directions)
}

func TestUpdateMorph(t *testing.T) {
	const a = 0.3
	h := float32(3 * a * math.Sqrt2 / 2)
	full := float32(1.065 * a)

	cases := []struct {
		name string
		t    float64
		c    float32
		aa   float32
	}{
		{"start", 0, full, 0},
		{"peak", math.Pi / 2, float32(math.Sqrt(a * a / 2)), 0},
		{"exploded", 3 * math.Pi / 2, full, 0.33},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			m := &component.Morph{A: a}
			UpdateMorph(m, c.t)
			assert.InDelta(t, h, m.H, 1e-6)
			assert.InDelta(t, c.c, m.C, 1e-5)
			assert.InDelta(t, c.aa, m.AA, 1e-5)
		})
	}
}
