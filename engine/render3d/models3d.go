package render3d

import "math"

// Scenery palette.
var (
	TrunkBrown  = Hex(0x8B4513)
	LeavesGreen = Hex(0x228B22)
	GrassGreen  = Hex(0x44AA44)
	WoodLight   = Hex(0x8B4513)
	WoodDark    = Hex(0x654321)
	Charcoal    = Hex(0x1a1a1a)
	StoneLight  = Hex(0x888888)
	StoneDark   = Hex(0x666666)
	CloudWhite  = Hex(0xFFFFFF)
	SkyBlue     = Hex(0x87CEEB)
)

// MakeTrunk is a five-sided trunk, narrow at the top, 1.5 units tall.
func MakeTrunk(c Color3) *Mesh3D {
	return MakeFrustum(0.2, 0.4, 1.5, 5, c)
}

// MakeLeaves is the six-sided cone crown of a tree, 3 units tall.
func MakeLeaves(c Color3) *Mesh3D {
	return MakeCone(1.5, 3, 6, c)
}

// MakeLog is a six-sided log lying along Y before placement.
func MakeLog(radius, length float64, c Color3) *Mesh3D {
	return MakeCylinder(radius, length, 6, c)
}

// MakeStone is a coarse sphere with every corner pushed in or out along each
// axis by a factor from jitter. Shared corners move together so the stone
// stays closed.
func MakeStone(size float64, jitter func() float64, c Color3) *Mesh3D {
	m := MakeSphere(size, 4, 3, c)
	moved := make(map[Vec3]Vec3)
	m.Displace(func(p Vec3) Vec3 {
		if q, ok := moved[p]; ok {
			return q
		}
		q := V3(p.X*jitter(), p.Y*jitter(), p.Z*jitter())
		moved[p] = q
		return q
	})
	m.FlatShade()
	return m
}

// MakePuff is one sphere of a cloud.
func MakePuff(size float64, c Color3) *Mesh3D {
	return MakeSphere(size, 6, 6, c)
}

// RotateModelY rotates a mesh around the Y axis
func RotateModelY(mesh *Mesh3D, angle float64) *Mesh3D {
	if math.Abs(angle) < 1e-6 {
		return mesh
	}
	return mesh.Transform(Mat4RotateY(angle))
}
