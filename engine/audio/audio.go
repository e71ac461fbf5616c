// Package audio is the scene's positional gain model. It decides how loud
// the campfire crackle and the ambient bed are for a listener at the camera;
// playback itself lives with the ebiten audio player in cmd/scene.
package audio

import (
	"math"

	"github.com/1siamBot/forest-scene/engine/render3d"
)

// Channel is a volume bus.
type Channel uint8

const (
	ChannelMaster Channel = iota
	ChannelAmbient
	ChannelEffects
)

func (c Channel) String() string {
	switch c {
	case ChannelMaster:
		return "master"
	case ChannelAmbient:
		return "ambient"
	case ChannelEffects:
		return "effects"
	}
	return "unknown"
}

// Source is a positional emitter using an exponential distance model.
type Source struct {
	Pos         render3d.Vec3
	Volume      float64
	RefDistance float64
	MaxDistance float64
	Rolloff     float64
}

// NewSource returns a full-volume source at pos with reference distance 5,
// max distance 100 and roll-off 1.
func NewSource(pos render3d.Vec3) Source {
	return Source{Pos: pos, Volume: 1, RefDistance: 5, MaxDistance: 100, Rolloff: 1}
}

// DistanceGain is (d/ref)^-rolloff with d clamped to [ref, max].
func (s Source) DistanceGain(d float64) float64 {
	ref := s.RefDistance
	if ref <= 0 {
		ref = 1
	}
	if s.MaxDistance > ref && d > s.MaxDistance {
		d = s.MaxDistance
	}
	if d < ref {
		d = ref
	}
	return math.Pow(d/ref, -s.Rolloff)
}

// Mixer holds the bus volumes and the listener position.
type Mixer struct {
	Listener render3d.Vec3
	Muted    bool

	volumes [3]float64
}

// NewMixer returns a mixer with master 1, ambient 0.5 and effects 0.8.
func NewMixer() *Mixer {
	return &Mixer{volumes: [3]float64{1, 0.5, 0.8}}
}

// SetVolume sets a bus volume clamped to [0,1].
func (m *Mixer) SetVolume(ch Channel, v float64) {
	if int(ch) >= len(m.volumes) {
		return
	}
	if math.IsNaN(v) {
		v = 0
	}
	m.volumes[ch] = math.Min(1, math.Max(0, v))
}

// Volume returns a bus volume.
func (m *Mixer) Volume(ch Channel) float64 {
	if int(ch) >= len(m.volumes) {
		return 0
	}
	return m.volumes[ch]
}

// SetListener moves the listener, normally to the camera eye.
func (m *Mixer) SetListener(p render3d.Vec3) { m.Listener = p }

func (m *Mixer) master() float64 {
	if m.Muted {
		return 0
	}
	return m.volumes[ChannelMaster]
}

// EffectGain is the final gain of a positional effect source.
func (m *Mixer) EffectGain(s Source) float64 {
	d := s.Pos.Sub(m.Listener).Len()
	return s.Volume * s.DistanceGain(d) * m.volumes[ChannelEffects] * m.master()
}

// AmbientGain is the final gain of the non-positional wind bed.
func (m *Mixer) AmbientGain() float64 {
	return m.volumes[ChannelAmbient] * m.master()
}

// CrackleGain is the campfire gain for a given light intensity. The fire
// is silent when its light is out and never louder than full volume.
func (m *Mixer) CrackleGain(s Source, lightIntensity float64) float64 {
	if lightIntensity <= 0 || math.IsNaN(lightIntensity) {
		return 0
	}
	return math.Min(1, m.EffectGain(s)*math.Min(lightIntensity, 1.5)/1.5)
}
