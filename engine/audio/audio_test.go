package audio

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/1siamBot/forest-scene/engine/render3d"
)

func TestDistanceGain(t *testing.T) {
	s := NewSource(render3d.V3(0, 0, 0))
	assert.Equal(t, 1.0, s.DistanceGain(0), "inside the reference distance")
	assert.Equal(t, 1.0, s.DistanceGain(5))
	assert.InDelta(t, 0.5, s.DistanceGain(10), 1e-12)
	assert.InDelta(t, 0.05, s.DistanceGain(100), 1e-12)
	assert.Equal(t, s.DistanceGain(100), s.DistanceGain(500), "clamped at max distance")

	s.Rolloff = 2
	assert.InDelta(t, 0.25, s.DistanceGain(10), 1e-12)
}

func TestMixerVolumes(t *testing.T) {
	m := NewMixer()
	assert.Equal(t, 1.0, m.Volume(ChannelMaster))
	assert.Equal(t, 0.5, m.Volume(ChannelAmbient))
	assert.Equal(t, 0.8, m.Volume(ChannelEffects))

	m.SetVolume(ChannelEffects, 2)
	assert.Equal(t, 1.0, m.Volume(ChannelEffects))
	m.SetVolume(ChannelAmbient, -1)
	assert.Equal(t, 0.0, m.Volume(ChannelAmbient))
	m.SetVolume(ChannelMaster, math.NaN())
	assert.Equal(t, 0.0, m.Volume(ChannelMaster))
	m.SetVolume(Channel(3), 1)
	assert.Equal(t, 0.0, m.Volume(Channel(3)))
	assert.Equal(t, "effects", ChannelEffects.String())
	assert.Equal(t, "unknown", Channel(3).String())
}

func TestEffectGain(t *testing.T) {
	m := NewMixer()
	fire := NewSource(render3d.V3(0, 0, 0))

	m.SetListener(render3d.V3(0, 0, 3))
	near := m.EffectGain(fire)
	assert.InDelta(t, 0.8, near, 1e-12)

	m.SetListener(render3d.V3(0, 0, 20))
	far := m.EffectGain(fire)
	assert.InDelta(t, 0.2, far, 1e-12)
	assert.Less(t, far, near)

	m.SetVolume(ChannelMaster, 0.5)
	assert.InDelta(t, 0.1, m.EffectGain(fire), 1e-12)
	assert.InDelta(t, 0.25, m.AmbientGain(), 1e-12)

	m.Muted = true
	assert.Zero(t, m.EffectGain(fire))
	assert.Zero(t, m.AmbientGain())
}

func TestCrackleGainFollowsLight(t *testing.T) {
	m := NewMixer()
	fire := NewSource(render3d.V3(0, 0, 0))
	assert.Zero(t, m.CrackleGain(fire, 0))
	assert.Zero(t, m.CrackleGain(fire, -1))
	dim := m.CrackleGain(fire, 0.5)
	bright := m.CrackleGain(fire, 1.5)
	assert.Less(t, dim, bright)
	assert.InDelta(t, 0.8, bright, 1e-12)
	assert.Equal(t, bright, m.CrackleGain(fire, 4.5), "capped")
}

func TestCrackleStream(t *testing.T) {
	c := NewCrackle(7)
	assert.Zero(t, c.Gain(), "silent until the scene sets a level")
	c.SetGain(1)
	buf := make([]byte, 4099)
	n, err := c.Read(buf)
	require.NoError(t, err)
	assert.Equal(t, 4096, n, "whole stereo frames only")

	loud := false
	for i := 0; i < n; i += 4 {
		assert.Equal(t, buf[i], buf[i+2], "left and right match")
		assert.Equal(t, buf[i+1], buf[i+3])
		if buf[i] != 0 || buf[i+1] != 0 {
			loud = true
		}
	}
	assert.True(t, loud)

	c.SetGain(0)
	n, err = c.Read(buf)
	require.NoError(t, err)
	for _, b := range buf[:n] {
		require.Zero(t, b)
	}

	c.SetGain(3)
	assert.Equal(t, 1.0, c.Gain())
}

func TestWindStream(t *testing.T) {
	w := NewWind(3, 44100)
	assert.Zero(t, w.Gain())
	buf := make([]byte, 8191)
	n, err := w.Read(buf)
	require.NoError(t, err)
	assert.Equal(t, 8188, n)
	for _, b := range buf[:n] {
		require.Zero(t, b)
	}

	w.SetGain(0.5)
	n, err = w.Read(buf)
	require.NoError(t, err)
	loud := false
	for i := 0; i < n; i += 4 {
		assert.Equal(t, buf[i], buf[i+2])
		assert.Equal(t, buf[i+1], buf[i+3])
		if buf[i] != 0 || buf[i+1] != 0 {
			loud = true
		}
	}
	assert.True(t, loud)

	w.SetGain(math.NaN())
	assert.Zero(t, w.Gain())
}

func TestGainChangesWhileReading(t *testing.T) {
	c := NewCrackle(11)
	done := make(chan struct{})
	go func() {
		defer close(done)
		buf := make([]byte, 1024)
		for i := 0; i < 200; i++ {
			_, _ = c.Read(buf)
		}
	}()
	for i := 0; i <= 100; i++ {
		c.SetGain(float64(i) / 100)
	}
	<-done
	assert.Equal(t, 1.0, c.Gain())
}
