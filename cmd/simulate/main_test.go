package main

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/milk9111/noria/prefabs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestRunDumpsSampledFrames(t *testing.T) {
	var buf bytes.Buffer
	err := run(&buf, options{
		exercise: 1,
		frames:   130,
		every:    60,
		dt:       1.0 / 60,
		velocity: -1,
		width:    800,
		height:   600,
	})
	require.NoError(t, err)

	dec := yaml.NewDecoder(&buf)
	var frames []frameDump
	for {
		var f frameDump
		if err := dec.Decode(&f); errors.Is(err, io.EOF) {
			break
		} else {
			require.NoError(t, err)
		}
		frames = append(frames, f)
	}

	require.Len(t, frames, 3)
	assert.Equal(t, []int{60, 120, 130}, []int{frames[0].Frame, frames[1].Frame, frames[2].Frame})
	assert.Equal(t, "boot2", frames[0].Camera)
	assert.Equal(t, []string{"boot1 -> boot2 @ 1.000"}, frames[0].Events)
	assert.Equal(t, "focus_a", frames[2].Camera)
	assert.True(t, frames[2].LookAt)
	assert.Empty(t, frames[2].Events)

	var cabina *entityDump
	for i := range frames[2].Entities {
		if frames[2].Entities[i].Name == "Cabina" {
			cabina = &frames[2].Entities[i]
		}
	}
	require.NotNil(t, cabina)
	assert.Equal(t, 20, cabina.Draws)
}

func TestRunUnknownExercise(t *testing.T) {
	err := run(io.Discard, options{exercise: 99, frames: 1, dt: 1.0 / 60})
	assert.ErrorIs(t, err, prefabs.ErrUnknownScene)
}
