package particles

import "math/rand/v2"

// Rand is the uniform [0,1) source used for every spawn and jitter draw.
// *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	Float32() float32
}

// NewRand returns a deterministic PCG-backed source for the given seed.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), 0))
}

// Range is a closed interval of float32 values.
type Range struct {
	Min, Max float32
}

// Spread returns the symmetric range [-half, half].
func Spread(half float32) Range { return Range{Min: -half, Max: half} }

// Fixed returns a degenerate range that always samples v.
func Fixed(v float32) Range { return Range{Min: v, Max: v} }

// Sample draws uniformly from [Min, Max).
func (r Range) Sample(rng Rand) float32 {
	return r.Min + rng.Float32()*(r.Max-r.Min)
}

// SampleUpper draws uniformly from (Min, Max]. Lifetimes use it so a fresh
// draw is never exactly the lower bound.
func (r Range) SampleUpper(rng Rand) float32 {
	return r.Max - rng.Float32()*(r.Max-r.Min)
}

// Contains reports whether v lies inside the closed range.
func (r Range) Contains(v float32) bool { return v >= r.Min && v <= r.Max }
