package audio

import (
	"math/rand/v2"
)

// Crackle synthesizes an endless campfire crackle as 16-bit little-endian
// stereo PCM: low brown noise with sparse decaying pops. Gain may be changed
// from any goroutine while another one reads.
type Crackle struct {
	rng  *rand.Rand
	gain gain

	brown float64
	pop   float64
}

// NewCrackle returns a silent crackle stream seeded with seed.
func NewCrackle(seed uint64) *Crackle {
	return &Crackle{rng: rand.New(rand.NewPCG(seed, 0x5eed))}
}

// SetGain sets the output gain, clamped to [0,1].
func (c *Crackle) SetGain(g float64) { c.gain.set(g) }

// Gain returns the current output gain.
func (c *Crackle) Gain() float64 { return c.gain.get() }

const (
	popChance = 0.0004
	popDecay  = 0.992
)

// Read fills p with whole stereo frames and never returns an error.
func (c *Crackle) Read(p []byte) (int, error) {
	g := c.Gain()
	n := len(p) / 4 * 4
	for i := 0; i < n; i += 4 {
		c.brown = 0.98*c.brown + 0.02*(c.rng.Float64()*2-1)
		if c.rng.Float64() < popChance {
			c.pop = 0.4 + 0.6*c.rng.Float64()
		}
		c.pop *= popDecay
		putFrame(p[i:i+4], (c.brown*2+c.pop*(c.rng.Float64()*2-1))*g)
	}
	return n, nil
}
