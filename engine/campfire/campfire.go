// Package campfire simulates a campfire as two particle pools, flames and
// smoke, plus the flickering point light that goes with them.
package campfire

import (
	"fmt"
	"math"
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/1siamBot/forest-scene/engine/particles"
)

// PoolKind identifies one of the campfire's particle pools.
type PoolKind int

const (
	PoolFire PoolKind = iota
	PoolSmoke
)

func (k PoolKind) String() string {
	switch k {
	case PoolFire:
		return "fire"
	case PoolSmoke:
		return "smoke"
	}
	return fmt.Sprintf("PoolKind(%d)", int(k))
}

// AttributeSink is told which buffers of a pool changed after each Advance.
type AttributeSink interface {
	AttributesChanged(kind PoolKind, attrs particles.Attribute)
}

// Light describes the fire's point light in campfire-local space.
type Light struct {
	Color     mgl32.Vec3
	Intensity float32
	Range     float32
	Decay     float32
	Offset    mgl32.Vec3
}

// DefaultLight is the glow the props are lit with before flicker is applied.
func DefaultLight() Light {
	return Light{
		Color:     mgl32.Vec3{1, 0.4, 0}, // #ff6600
		Intensity: 1.5,
		Range:     10,
		Decay:     2,
		Offset:    mgl32.Vec3{0, 1, 0},
	}
}

// Config holds construction options for New.
type Config struct {
	FireCapacity  int
	SmokeCapacity int
	// Rand feeds every spawn, drift and flicker draw. Defaults to a PCG
	// source seeded with 1.
	Rand particles.Rand
	// Clock drives the light flicker. Defaults to time.Now.
	Clock func() time.Time
	Sink  AttributeSink
}

// DefaultConfig returns the reference configuration: 200 flame and 50 smoke
// particles.
func DefaultConfig() Config {
	return Config{FireCapacity: FireCapacity, SmokeCapacity: SmokeCapacity}
}

// Campfire owns the fire and smoke pools and the tunables that shape them.
// It is not safe for concurrent use.
type Campfire struct {
	base  mgl32.Vec3
	fire  *particles.Pool
	smoke *particles.Pool

	fireU  FireUpdater
	smokeU SmokeUpdater

	rng   particles.Rand
	clock func() time.Time
	sink  AttributeSink

	intensity float32
	color     mgl32.Vec3
	flicker   float32
	light     Light
}

// New builds a campfire whose local origin sits at base.
func New(base mgl32.Vec3, cfg Config) (*Campfire, error) {
	if cfg.Rand == nil {
		cfg.Rand = particles.NewRand(1)
	}
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}
	fire, err := particles.NewPool(cfg.FireCapacity, FirePolicy(), cfg.Rand)
	if err != nil {
		return nil, fmt.Errorf("fire pool: %w", err)
	}
	smoke, err := particles.NewPool(cfg.SmokeCapacity, SmokePolicy(), cfg.Rand)
	if err != nil {
		return nil, fmt.Errorf("smoke pool: %w", err)
	}
	return &Campfire{
		base:      base,
		fire:      fire,
		smoke:     smoke,
		smokeU:    SmokeUpdater{ActiveCount: cfg.SmokeCapacity},
		rng:       cfg.Rand,
		clock:     cfg.Clock,
		sink:      cfg.Sink,
		intensity: 1,
		color:     mgl32.Vec3{1, 0.5, 0},
		flicker:   1,
		light:     DefaultLight(),
	}, nil
}

// Advance steps both pools by dt seconds, notifies the sink and refreshes
// the light flicker. Negative dt is treated as zero.
func (c *Campfire) Advance(dt float32) {
	c.fireU.Advance(c.fire, dt)
	c.smokeU.Advance(c.smoke, dt)
	if c.sink != nil {
		c.sink.AttributesChanged(PoolFire, c.fire.Dirty())
		c.sink.AttributesChanged(PoolSmoke, c.smoke.Dirty())
	}
	ms := float64(c.clock().UnixMilli())
	c.flicker = 1 + 0.2*float32(math.Sin(ms*0.01)) + 0.1*c.rng.Float32()
}

// SetIntensity scales every live flame once: size and upward speed are
// multiplied by v. The scale is not remembered by the fire updater, so the
// next Advance recomputes sizes from the lifetime curve.
func (c *Campfire) SetIntensity(v float32) {
	if v < 0 || math.IsNaN(float64(v)) {
		v = 0
	}
	c.intensity = v
	size, vel := c.fire.Sizes(), c.fire.Velocities()
	for i := range size {
		size[i] *= v
		vel[i][1] *= v
	}
	c.fire.MarkDirty(particles.AttrSize)
}

// SetColor tints every flame with rgb, jittered per particle. Like
// SetIntensity it is overwritten by the colour ramp on the next Advance.
func (c *Campfire) SetColor(rgb mgl32.Vec3) {
	c.color = rgb
	col := c.fire.Colors()
	for i := range col {
		col[i] = mgl32.Vec3{
			rgb[0] * (0.8 + c.rng.Float32()*0.2),
			rgb[1] * (0.7 + c.rng.Float32()*0.3),
			rgb[2] * (0.7 + c.rng.Float32()*0.3),
		}
	}
	c.fire.MarkDirty(particles.AttrColor)
}

// SetSmokeDensity limits the number of visible smoke puffs to count, clamped
// to the pool capacity. Affected slots are retired immediately and come back
// with the right visibility on the next Advance.
func (c *Campfire) SetSmokeDensity(count int) {
	count = max(0, min(count, c.smoke.Cap()))
	c.smokeU.ActiveCount = count
	active := c.smoke.Active()
	for i := range active {
		if i >= count || !active[i] {
			c.smoke.Kill(i)
		}
	}
}

// Flicker is the light multiplier computed by the last Advance.
func (c *Campfire) Flicker() float32 { return c.flicker }

// LightIntensity is the current brightness of the fire light.
func (c *Campfire) LightIntensity() float32 { return c.flicker * c.intensity }

func (c *Campfire) Intensity() float32 { return c.intensity }

func (c *Campfire) Color() mgl32.Vec3 { return c.color }

func (c *Campfire) SmokeActiveCount() int { return c.smokeU.ActiveCount }

func (c *Campfire) FirePool() *particles.Pool { return c.fire }

func (c *Campfire) SmokePool() *particles.Pool { return c.smoke }

// Base returns the campfire origin in world space.
func (c *Campfire) Base() mgl32.Vec3 { return c.base }

// SetBase moves the campfire. Particle positions are local and do not change.
func (c *Campfire) SetBase(b mgl32.Vec3) { c.base = b }

// Light returns the point light with the current flicker applied, in
// campfire-local space.
func (c *Campfire) Light() Light {
	l := c.light
	l.Intensity *= c.LightIntensity()
	return l
}
