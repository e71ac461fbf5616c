package particles

import (
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

// Attribute is a bitmask of renderable buffers touched by an update.
type Attribute uint8

const (
	AttrPosition Attribute = 1 << iota
	AttrColor
	AttrSize

	AttrNone Attribute = 0
	AttrAll            = AttrPosition | AttrColor | AttrSize
)

// Has reports whether every bit of o is set in a.
func (a Attribute) Has(o Attribute) bool { return a&o == o }

func (a Attribute) String() string {
	if a == AttrNone {
		return "none"
	}
	var parts []string
	if a&AttrPosition != 0 {
		parts = append(parts, "position")
	}
	if a&AttrColor != 0 {
		parts = append(parts, "color")
	}
	if a&AttrSize != 0 {
		parts = append(parts, "size")
	}
	return strings.Join(parts, "|")
}

// Pool is a fixed-capacity set of particle slots stored as parallel slices.
// Slots are recycled in place by Respawn; the capacity never changes.
type Pool struct {
	pos   []mgl32.Vec3
	vel   []mgl32.Vec3
	color []mgl32.Vec3
	base  []mgl32.Vec3
	size  []float32
	life  []float32
	on    []bool

	policy SpawnPolicy
	rng    Rand

	dirty   Attribute
	version uint64
}

// NewPool allocates capacity slots and spawns every one of them from policy.
func NewPool(capacity int, policy SpawnPolicy, rng Rand) (*Pool, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCapacity, capacity)
	}
	if err := policy.validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = NewRand(1)
	}
	p := &Pool{
		pos:    make([]mgl32.Vec3, capacity),
		vel:    make([]mgl32.Vec3, capacity),
		color:  make([]mgl32.Vec3, capacity),
		base:   make([]mgl32.Vec3, capacity),
		size:   make([]float32, capacity),
		life:   make([]float32, capacity),
		on:     make([]bool, capacity),
		policy: policy,
		rng:    rng,
	}
	for i := 0; i < capacity; i++ {
		p.base[i] = policy.Color.Sample(rng)
		p.Respawn(i)
		p.on[i] = true
	}
	p.MarkDirty(AttrAll)
	return p, nil
}

// Cap returns the fixed number of slots.
func (p *Pool) Cap() int { return len(p.life) }

// Policy returns the spawn policy the pool was built with.
func (p *Pool) Policy() SpawnPolicy { return p.policy }

// Rand returns the pool's random source. Updaters share it for jitter.
func (p *Pool) Rand() Rand { return p.rng }

// Positions exposes the per-slot positions for in-place mutation.
func (p *Pool) Positions() []mgl32.Vec3 { return p.pos }

// Velocities exposes the per-slot velocities.
func (p *Pool) Velocities() []mgl32.Vec3 { return p.vel }

// Colors exposes the per-slot RGB colours.
func (p *Pool) Colors() []mgl32.Vec3 { return p.color }

// BaseColors exposes the colour drawn for each slot at construction.
func (p *Pool) BaseColors() []mgl32.Vec3 { return p.base }

// Sizes exposes the per-slot render sizes.
func (p *Pool) Sizes() []float32 { return p.size }

// Lifetimes exposes the remaining lifetime of every slot, in seconds.
func (p *Pool) Lifetimes() []float32 { return p.life }

// Active exposes the visibility flag of every slot.
func (p *Pool) Active() []bool { return p.on }

// Alive reports whether slot i still has lifetime left.
func (p *Pool) Alive(i int) bool { return p.life[i] > 0 }

// Kill forces slot i to be respawned on the next update.
func (p *Pool) Kill(i int) { p.life[i] = -1 }

// SetActive sets the visibility flag of slot i.
func (p *Pool) SetActive(i int, on bool) { p.on[i] = on }

// ActiveCount returns the number of visible slots.
func (p *Pool) ActiveCount() int {
	n := 0
	for _, on := range p.on {
		if on {
			n++
		}
	}
	return n
}

// Respawn resets slot i to a fresh draw from the spawn policy. The active
// flag is left to the caller.
func (p *Pool) Respawn(i int) {
	pol := &p.policy
	p.pos[i] = pol.samplePosition(p.rng)
	if pol.ReuseBaseColor {
		p.color[i] = p.base[i]
	} else {
		p.color[i] = pol.Color.Sample(p.rng)
	}
	p.size[i] = pol.Size.Sample(p.rng)
	p.life[i] = pol.Lifetime.SampleUpper(p.rng)
	p.vel[i] = pol.sampleVelocity(p.rng)
}

// MarkDirty records that the given attribute buffers changed.
func (p *Pool) MarkDirty(a Attribute) {
	if a == AttrNone {
		return
	}
	p.dirty |= a
	p.version++
}

// Dirty returns the pending dirty mask without clearing it.
func (p *Pool) Dirty() Attribute { return p.dirty }

// TakeDirty returns the pending dirty mask and clears it.
func (p *Pool) TakeDirty() Attribute {
	d := p.dirty
	p.dirty = AttrNone
	return d
}

// Version increases every time an attribute is marked dirty.
func (p *Pool) Version() uint64 { return p.version }
