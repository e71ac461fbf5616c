package audio

import (
	"math"
	"sync/atomic"
)

// gain is a [0,1] level written by the game goroutine and read by the
// audio goroutine while it fills buffers.
type gain struct{ bits atomic.Uint64 }

func (g *gain) set(v float64) {
	if math.IsNaN(v) {
		v = 0
	}
	g.bits.Store(math.Float64bits(math.Min(1, math.Max(0, v))))
}

func (g *gain) get() float64 { return math.Float64frombits(g.bits.Load()) }

// putFrame writes s, clamped to [-1,1], to both channels of one 16-bit
// little-endian stereo frame.
func putFrame(p []byte, s float64) {
	v := int16(math.Max(-1, math.Min(1, s)) * 32767)
	p[0] = byte(v)
	p[1] = byte(v >> 8)
	p[2] = byte(v)
	p[3] = byte(v >> 8)
}
