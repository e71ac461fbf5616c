// Package scenery generates the static and slow-moving parts of the forest:
// the rolling ground, the trees planted on it, drifting clouds and the
// campfire's logs and stones.
package scenery

import (
	"math"

	"github.com/1siamBot/forest-scene/engine/render3d"
)

// Rand is the uniform [0,1) source used for placement. *rand.Rand from
// math/rand/v2 satisfies it.
type Rand interface {
	Float64() float64
}

func between(rng Rand, lo, hi float64) float64 { return lo + rng.Float64()*(hi-lo) }

// TerrainSegments is the grid resolution along each side.
const TerrainSegments = 50

// Terrain is a square of rolling hills centred on the origin.
type Terrain struct {
	Size      float64
	Amplitude float64
	Color     render3d.Color3

	mesh *render3d.Mesh3D
}

func NewTerrain(size, amplitude float64, c render3d.Color3) *Terrain {
	return &Terrain{Size: size, Amplitude: amplitude, Color: c}
}

// HeightAt samples the ground height at world x, z. An amplitude of 5 gives
// the classic ±7 unit hills.
func (t *Terrain) HeightAt(x, z float64) float64 {
	return t.Amplitude * (math.Sin(x*0.05)*math.Sin(z*0.05) + 0.4*math.Sin(x*0.1+z*0.1))
}

// Contains reports whether x, z lies on the terrain.
func (t *Terrain) Contains(x, z float64) bool {
	h := t.Size / 2
	return x >= -h && x <= h && z >= -h && z <= h
}

// Mesh returns the flat-shaded ground mesh, building it on first use.
func (t *Terrain) Mesh() *render3d.Mesh3D {
	if t.mesh == nil {
		t.mesh = render3d.GenerateGridMesh(t.Size, TerrainSegments, t.HeightAt, t.Color)
	}
	return t.mesh
}

// Recolor changes the ground colour without rebuilding the shape.
func (t *Terrain) Recolor(c render3d.Color3) {
	t.Color = c
	if t.mesh != nil {
		t.mesh.SetColor(c)
	}
}
