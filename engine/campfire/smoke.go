package campfire

import "github.com/1siamBot/forest-scene/engine/particles"

// Smoke tuning.
const (
	SmokeCapacity = 50

	smokeFadeLife = 5.0
	smokeDrag     = 0.99
	smokeDrift    = 0.05
	smokeGrowth   = 0.1 // size units per second
)

// SmokePolicy is the spawn distribution of a smoke puff: above the flames,
// slow and large, a grey shade kept per slot for the whole run.
func SmokePolicy() particles.SpawnPolicy {
	return particles.SpawnPolicy{
		PosX: particles.Spread(0.1),
		PosY: particles.Range{Min: 1.5, Max: 2},
		PosZ: particles.Spread(0.1),
		VelX: particles.Spread(0.15),
		VelY: particles.Range{Min: 0.5, Max: 1},
		VelZ: particles.Spread(0.15),
		Color: particles.ColorRange{
			R:          particles.Range{Min: 0.2, Max: 0.5},
			Monochrome: true,
		},
		Size:           particles.Range{Min: 1.5, Max: 3},
		Lifetime:       particles.Range{Min: 2, Max: 5},
		ReuseBaseColor: true,
	}
}

// SmokeUpdater ages smoke puffs. Slots at or beyond ActiveCount are
// respawned hidden; they keep simulating but do not render.
type SmokeUpdater struct {
	ActiveCount int
}

// Advance steps every slot of p by dt seconds.
func (u SmokeUpdater) Advance(p *particles.Pool, dt float32) {
	if !(dt > 0) {
		dt = 0
	}
	pos, vel, col, size, life := p.Positions(), p.Velocities(), p.Colors(), p.Sizes(), p.Lifetimes()
	rng := p.Rand()

	for i := range life {
		if dt == 0 {
			if life[i] <= 0 {
				u.respawn(p, i)
			}
			continue
		}
		life[i] -= dt
		if life[i] <= 0 {
			u.respawn(p, i)
			continue
		}

		pos[i] = pos[i].Add(vel[i].Mul(dt))
		vel[i][0] += (rng.Float32() - 0.5) * smokeDrift * dt
		vel[i][2] += (rng.Float32() - 0.5) * smokeDrift * dt
		vel[i][1] *= smokeDrag
		size[i] += smokeGrowth * dt
		col[i] = col[i].Mul(life[i] / smokeFadeLife)
	}
	p.MarkDirty(particles.AttrAll)
}

func (u SmokeUpdater) respawn(p *particles.Pool, i int) {
	p.Respawn(i)
	p.SetActive(i, i < u.ActiveCount)
}
