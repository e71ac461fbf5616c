package scenery

import (
	"github.com/google/uuid"

	"github.com/1siamBot/forest-scene/engine/render3d"
)

// Clouds drift along +X and wrap around at this distance from the origin.
const CloudSpan = 100.0

// Height band above the base height that clouds are spread over.
const cloudBand = 20.0

// Puff is one sphere of a cloud, relative to the cloud centre.
type Puff struct {
	Offset render3d.Vec3
	Size   float64
}

// Cloud is a loose cluster of puffs moving at its own speed.
type Cloud struct {
	ID    uuid.UUID
	Pos   render3d.Vec3
	Speed float64 // units per frame at 60 fps
	Puffs []Puff
}

// Sky holds every cloud.
type Sky struct {
	Clouds []Cloud
	Color  render3d.Color3
	// Opacity of the cloud material.
	Opacity float64

	rng  Rand
	mesh *render3d.Mesh3D
}

// NewSky scatters count clouds over a 200×200 area between baseHeight and
// baseHeight+20.
func NewSky(count int, baseHeight float64, rng Rand) *Sky {
	if count < 0 {
		count = 0
	}
	s := &Sky{
		Clouds:  make([]Cloud, 0, count),
		Color:   render3d.CloudWhite,
		Opacity: 0.8,
		rng:     rng,
	}
	for i := 0; i < count; i++ {
		c := Cloud{
			ID: uuid.New(),
			Pos: render3d.V3(
				between(rng, -CloudSpan, CloudSpan),
				baseHeight+rng.Float64()*cloudBand,
				between(rng, -CloudSpan, CloudSpan),
			),
		}
		puffs := 3 + int(rng.Float64()*3)
		for j := 0; j < puffs; j++ {
			c.Puffs = append(c.Puffs, Puff{
				Size: between(rng, 3, 9),
				Offset: render3d.V3(
					(rng.Float64()-0.5)*10,
					(rng.Float64()-0.5)*3,
					(rng.Float64()-0.5)*10,
				),
			})
		}
		c.Speed = 0.02 + rng.Float64()*0.05
		s.Clouds = append(s.Clouds, c)
	}
	return s
}

// Len returns the number of clouds.
func (s *Sky) Len() int { return len(s.Clouds) }

// Update drifts every cloud by its speed times factor, wrapping past the
// eastern edge back to the western one.
func (s *Sky) Update(factor float64) {
	for i := range s.Clouds {
		c := &s.Clouds[i]
		c.Pos.X += c.Speed * factor
		if c.Pos.X > CloudSpan {
			c.Pos.X = -CloudSpan
		}
	}
}

// SetSpeed gives every cloud a new speed between half and one and a half
// times speed.
func (s *Sky) SetSpeed(speed float64) {
	for i := range s.Clouds {
		s.Clouds[i].Speed = speed * (0.5 + s.rng.Float64())
	}
}

// SetHeight re-spreads the clouds between height and height+20.
func (s *Sky) SetHeight(height float64) {
	for i := range s.Clouds {
		s.Clouds[i].Pos.Y = height + s.rng.Float64()*cloudBand
	}
}

// PuffModel is the shared sphere every puff is drawn with, scaled by its size.
func (s *Sky) PuffModel() *render3d.Mesh3D {
	if s.mesh == nil {
		s.mesh = render3d.MakePuff(1, s.Color)
	}
	return s.mesh
}

// Mesh returns every puff of every cloud in world space.
func (s *Sky) Mesh() *render3d.Mesh3D {
	model := s.PuffModel()
	out := render3d.NewMesh()
	for _, c := range s.Clouds {
		for _, p := range c.Puffs {
			at := c.Pos.Add(p.Offset)
			m := render3d.Mat4Translate(at.X, at.Y, at.Z).Mul(render3d.Mat4Scale(p.Size, p.Size, p.Size))
			out.Append(model.Transform(m))
		}
	}
	return out
}
