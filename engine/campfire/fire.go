package campfire

import (
	"math"

	"github.com/1siamBot/forest-scene/engine/particles"
)

// Fire tuning.
const (
	FireCapacity = 200

	fireMaxLife   = 2.0
	fireRise      = 0.5 // upward acceleration, units/s²
	fireDrift     = 0.1
	fireBaseSize  = 0.3
	fireSizeSwell = 0.7
)

// FirePolicy is the spawn distribution of a flame particle: a small patch at
// the base of the fire moving mostly upward, yellow to orange.
func FirePolicy() particles.SpawnPolicy {
	return particles.SpawnPolicy{
		PosX: particles.Spread(0.25),
		PosY: particles.Fixed(0.1),
		PosZ: particles.Spread(0.25),
		VelX: particles.Spread(0.25),
		VelY: particles.Range{Min: 1, Max: 2},
		VelZ: particles.Spread(0.25),
		Color: particles.ColorRange{
			R: particles.Fixed(1),
			G: particles.Range{Min: 0.5, Max: 1},
			B: particles.Fixed(0),
		},
		Size:     particles.Range{Min: 0.5, Max: 1},
		Lifetime: particles.Range{Min: 0, Max: fireMaxLife},
	}
}

// FireUpdater ages flame particles: they accelerate upward, drift sideways,
// fade from yellow to red and swell then shrink over their life.
type FireUpdater struct{}

// Advance steps every slot of p by dt seconds.
func (FireUpdater) Advance(p *particles.Pool, dt float32) {
	if !(dt > 0) {
		dt = 0
	}
	pos, vel, col, size, life := p.Positions(), p.Velocities(), p.Colors(), p.Sizes(), p.Lifetimes()
	rng := p.Rand()

	for i := range life {
		if dt == 0 {
			if life[i] <= 0 {
				p.Respawn(i)
			}
			continue
		}
		life[i] -= dt
		if life[i] <= 0 {
			p.Respawn(i)
			continue
		}

		pos[i] = pos[i].Add(vel[i].Mul(dt))
		vel[i][1] += fireRise * dt
		vel[i][0] += (rng.Float32() - 0.5) * fireDrift * dt
		vel[i][2] += (rng.Float32() - 0.5) * fireDrift * dt

		r := life[i] / fireMaxLife
		col[i][0] = min(1, 0.8+r*0.2)
		col[i][1] = max(0, r*0.7)
		col[i][2] = 0
		size[i] = fireBaseSize + float32(math.Sin(float64(r)*math.Pi))*fireSizeSwell
	}
	p.MarkDirty(particles.AttrAll)
}
