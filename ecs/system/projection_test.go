package system

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/noria/common"
	"github.com/milk9111/noria/ecs/component"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectionResize(t *testing.T) {
	cases := []struct {
		name          string
		width, height int
		aspect        float32
	}{
		{"landscape", 800, 600, 800.0 / 600.0},
		{"square", 512, 512, 1},
		{"zero_height", 800, 0, 0},
		{"zero_both", 0, 0, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := NewProjection(0, 0, 0, 800, 600)
			require.NotPanics(t, func() { p.Resize(c.width, c.height) })

			assert.Equal(t, c.aspect, p.Aspect)
			assert.True(t, common.Finite(p.Matrix[:]...), "non-finite projection %v", p.Matrix)
			if c.aspect > 0 {
				want := mgl32.Perspective(mgl32.DegToRad(DefaultFOV), c.aspect, DefaultNear, DefaultFar)
				assert.Equal(t, want, p.Matrix)
			} else {
				assert.Equal(t, float32(0), p.Matrix[0])
			}
		})
	}
}

func TestNewProjectionDefaults(t *testing.T) {
	p := NewProjection(0, 0, 0, 800, 600)
	assert.Equal(t, float32(65), p.FOV)
	assert.Equal(t, float32(1), p.Near)
	assert.Equal(t, float32(50), p.Far)

	custom := NewProjection(45, 0.1, 100, 800, 600)
	assert.Equal(t, float32(45), custom.FOV)
	assert.Equal(t, float32(0.1), custom.Near)
	assert.Equal(t, float32(100), custom.Far)
}

func TestComposeWithIdentityFreeLook(t *testing.T) {
	p := NewProjection(0, 0, 0, 800, 600)
	view := FreeLookView(&component.FreeLook{})

	assert.Equal(t, mgl32.Ident4(), view)
	assert.Equal(t, p.Matrix, Compose(p.Matrix, view))
}

func TestComposeOrder(t *testing.T) {
	proj := Perspective(65, 4.0/3.0, 1, 50)
	view := mgl32.Translate3D(0, -5, -15)
	mvp := Compose(proj, view)

	v := mgl32.Vec4{0, 5, 0, 1}
	want := proj.Mul4x1(view.Mul4x1(v))
	got := mvp.Mul4x1(v)
	for i := range 4 {
		assert.InDelta(t, want[i], got[i], 1e-5)
	}
}
