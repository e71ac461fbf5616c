package scenery

import (
	"math"

	"github.com/1siamBot/forest-scene/engine/render3d"
)

// Log is one piece of firewood leaning into the teepee.
type Log struct {
	Radius, Length float64
	Angle          float64 // around the fire, radians
	Pos            render3d.Vec3
	Dark           bool
}

// Stone is one rock of the fire ring.
type Stone struct {
	Size float64
	Pos  render3d.Vec3
	Rot  render3d.Vec3 // X, Y, Z euler angles
	Dark bool
	mesh *render3d.Mesh3D
}

// CampfireProps are the logs, charred centre and stone ring around a fire,
// in campfire-local space.
type CampfireProps struct {
	Logs   []Log
	Stones []Stone

	mesh *render3d.Mesh3D
}

const (
	logCount   = 5
	logRing    = 0.4
	logTilt    = math.Pi/2 - math.Pi/6
	centerLogR = 0.3
	centerLogH = 0.2
)

// BuildCampfireProps lays five logs in a teepee and a ring of 8 to 12
// deformed stones around them.
func BuildCampfireProps(rng Rand) *CampfireProps {
	p := &CampfireProps{}
	for i := 0; i < logCount; i++ {
		length := between(rng, 2, 3.5)
		radius := between(rng, 0.15, 0.25)
		angle := float64(i) / logCount * 2 * math.Pi
		p.Logs = append(p.Logs, Log{
			Radius: radius,
			Length: length,
			Angle:  angle,
			Pos:    render3d.V3(math.Sin(angle)*logRing, length/4, math.Cos(angle)*logRing),
			Dark:   i%2 == 1,
		})
	}

	count := 8 + int(rng.Float64()*5)
	for i := 0; i < count; i++ {
		size := between(rng, 0.2, 0.35)
		jitter := func() float64 { return between(rng, 0.8, 1.2) }
		c := render3d.StoneLight
		dark := rng.Float64() > 0.5
		if dark {
			c = render3d.StoneDark
		}
		mesh := render3d.MakeStone(size, jitter, c)
		angle := float64(i) / float64(count) * 2 * math.Pi
		ring := between(rng, 1.2, 1.5)
		p.Stones = append(p.Stones, Stone{
			Size: size,
			Pos:  render3d.V3(math.Sin(angle)*ring, size*0.5-0.1*rng.Float64(), math.Cos(angle)*ring),
			Rot:  render3d.V3(rng.Float64()*math.Pi, rng.Float64()*math.Pi, rng.Float64()*math.Pi),
			Dark: dark,
			mesh: mesh,
		})
	}
	return p
}

// Mesh merges every prop into one campfire-local mesh.
func (p *CampfireProps) Mesh() *render3d.Mesh3D {
	if p.mesh != nil {
		return p.mesh
	}
	out := render3d.NewMesh()
	for _, l := range p.Logs {
		c := render3d.WoodLight
		if l.Dark {
			c = render3d.WoodDark
		}
		place := render3d.Mat4Translate(l.Pos.X, l.Pos.Y, l.Pos.Z).
			Mul(render3d.Mat4RotateX(logTilt)).
			Mul(render3d.Mat4RotateZ(l.Angle))
		out.Append(render3d.MakeLog(l.Radius, l.Length, c).Transform(place))
	}

	// charred wood glows faintly red
	ember := render3d.Charcoal.Add(render3d.Hex(0x330000))
	center := render3d.MakeCylinder(centerLogR, centerLogH, 8, ember)
	out.Append(center.Transform(render3d.Mat4Translate(0, 0.05, 0).Mul(render3d.Mat4RotateX(math.Pi / 2))))

	for _, s := range p.Stones {
		place := render3d.Mat4Translate(s.Pos.X, s.Pos.Y, s.Pos.Z).
			Mul(render3d.Mat4RotateX(s.Rot.X)).
			Mul(render3d.Mat4RotateY(s.Rot.Y)).
			Mul(render3d.Mat4RotateZ(s.Rot.Z))
		out.Append(s.mesh.Transform(place))
	}
	p.mesh = out
	return out
}

// WorldMesh is Mesh moved to the campfire's base position.
func (p *CampfireProps) WorldMesh(base render3d.Vec3) *render3d.Mesh3D {
	return p.Mesh().Transform(render3d.Mat4Translate(base.X, base.Y, base.Z))
}
