package particles

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

var (
	// ErrInvalidCapacity is returned when a pool is built with capacity <= 0.
	ErrInvalidCapacity = errors.New("particles: capacity must be positive")
	// ErrInvalidPolicy is returned when a spawn policy cannot produce a live particle.
	ErrInvalidPolicy = errors.New("particles: invalid spawn policy")
)

// ColorRange describes the per-channel colour distribution of a fresh particle.
type ColorRange struct {
	R, G, B Range
	// Monochrome draws a single value from R and copies it to all channels.
	Monochrome bool
}

// Sample draws one RGB triple.
func (c ColorRange) Sample(rng Rand) mgl32.Vec3 {
	if c.Monochrome {
		v := c.R.Sample(rng)
		return mgl32.Vec3{v, v, v}
	}
	return mgl32.Vec3{c.R.Sample(rng), c.G.Sample(rng), c.B.Sample(rng)}
}

// SpawnPolicy is the initial-state distribution a pool respawns slots from.
// Positions are relative to Origin, in the emitter's local frame.
type SpawnPolicy struct {
	Origin mgl32.Vec3

	PosX, PosY, PosZ Range
	VelX, VelY, VelZ Range

	Color ColorRange
	Size  Range
	// Lifetime is sampled on (Min, Max].
	Lifetime Range

	// ReuseBaseColor makes Respawn restore the colour drawn for the slot at
	// construction instead of drawing a new one.
	ReuseBaseColor bool
}

func (p SpawnPolicy) validate() error {
	if p.Lifetime.Max <= 0 || p.Lifetime.Max < p.Lifetime.Min {
		return fmt.Errorf("%w: lifetime range [%g, %g]", ErrInvalidPolicy, p.Lifetime.Min, p.Lifetime.Max)
	}
	if p.Size.Min < 0 || p.Size.Max < p.Size.Min {
		return fmt.Errorf("%w: size range [%g, %g]", ErrInvalidPolicy, p.Size.Min, p.Size.Max)
	}
	return nil
}

func (p SpawnPolicy) samplePosition(rng Rand) mgl32.Vec3 {
	return p.Origin.Add(mgl32.Vec3{p.PosX.Sample(rng), p.PosY.Sample(rng), p.PosZ.Sample(rng)})
}

func (p SpawnPolicy) sampleVelocity(rng Rand) mgl32.Vec3 {
	return mgl32.Vec3{p.VelX.Sample(rng), p.VelY.Sample(rng), p.VelZ.Sample(rng)}
}
