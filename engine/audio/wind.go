package audio

import (
	"math"
	"math/rand/v2"
)

// Wind is the forest ambience: heavily low-passed noise whose level swells
// slowly, like wind moving through the canopy. Same PCM layout as Crackle.
type Wind struct {
	rng  *rand.Rand
	gain gain

	sampleRate float64
	low        float64
	phase      float64
}

// gustPeriod is the length in seconds of one swell.
const gustPeriod = 9.0

// NewWind returns a silent wind stream for the given sample rate.
func NewWind(seed uint64, sampleRate int) *Wind {
	if sampleRate <= 0 {
		sampleRate = 44100
	}
	return &Wind{rng: rand.New(rand.NewPCG(seed, 0x3171d)), sampleRate: float64(sampleRate)}
}

// SetGain sets the output gain, clamped to [0,1].
func (w *Wind) SetGain(g float64) { w.gain.set(g) }

// Gain returns the current output gain.
func (w *Wind) Gain() float64 { return w.gain.get() }

// Read fills p with whole stereo frames and never returns an error.
func (w *Wind) Read(p []byte) (int, error) {
	g := w.Gain()
	step := 2 * math.Pi / (gustPeriod * w.sampleRate)
	n := len(p) / 4 * 4
	for i := 0; i < n; i += 4 {
		w.low = 0.995*w.low + 0.005*(w.rng.Float64()*2-1)
		w.phase = math.Mod(w.phase+step, 2*math.Pi)
		swell := 0.6 + 0.4*math.Sin(w.phase)
		putFrame(p[i:i+4], w.low*6*swell*g)
	}
	return n, nil
}
