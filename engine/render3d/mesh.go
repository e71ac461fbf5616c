package render3d

import "math"

// Vertex3D is a vertex with position, normal, and color
type Vertex3D struct {
	Pos    Vec3
	Normal Vec3
	Color  Color3
}

// Triangle3D is three vertices. Front faces wind clockwise as seen from the
// side the face points to.
type Triangle3D struct {
	V [3]Vertex3D
}

// FaceNormal is the outward normal implied by the winding.
func (t Triangle3D) FaceNormal() Vec3 {
	e1 := t.V[1].Pos.Sub(t.V[0].Pos)
	e2 := t.V[2].Pos.Sub(t.V[0].Pos)
	return e2.Cross(e1).Normalize()
}

// Centroid is the average of the three corners.
func (t Triangle3D) Centroid() Vec3 {
	return t.V[0].Pos.Add(t.V[1].Pos).Add(t.V[2].Pos).Scale(1.0 / 3)
}

// Mesh3D is a collection of triangles
type Mesh3D struct {
	Triangles []Triangle3D
}

func NewMesh() *Mesh3D { return &Mesh3D{} }

func (m *Mesh3D) AddTriangle(v0, v1, v2 Vertex3D) {
	m.Triangles = append(m.Triangles, Triangle3D{V: [3]Vertex3D{v0, v1, v2}})
}

// AddFacing adds a triangle wound so that it faces along outward.
func (m *Mesh3D) AddFacing(v0, v1, v2 Vertex3D, outward Vec3) {
	t := Triangle3D{V: [3]Vertex3D{v0, v1, v2}}
	if t.FaceNormal().Dot(outward) < 0 {
		v1, v2 = v2, v1
	}
	m.AddTriangle(v0, v1, v2)
}

func (m *Mesh3D) AddQuad(v0, v1, v2, v3 Vertex3D) {
	m.AddTriangle(v0, v1, v2)
	m.AddTriangle(v0, v2, v3)
}

// AddQuadFacing adds the quad v0..v3 as two triangles facing along outward.
func (m *Mesh3D) AddQuadFacing(v0, v1, v2, v3 Vertex3D, outward Vec3) {
	m.AddFacing(v0, v1, v2, outward)
	m.AddFacing(v0, v2, v3, outward)
}

func (m *Mesh3D) Transform(mat Mat4) *Mesh3D {
	out := &Mesh3D{Triangles: make([]Triangle3D, len(m.Triangles))}
	for i, tri := range m.Triangles {
		for j := 0; j < 3; j++ {
			out.Triangles[i].V[j] = tri.V[j]
			out.Triangles[i].V[j].Pos = mat.TransformPoint(tri.V[j].Pos)
			out.Triangles[i].V[j].Normal = mat.TransformDir(tri.V[j].Normal).Normalize()
		}
	}
	return out
}

func (m *Mesh3D) Append(other *Mesh3D) {
	m.Triangles = append(m.Triangles, other.Triangles...)
}

func (m *Mesh3D) SetColor(c Color3) {
	for i := range m.Triangles {
		for j := 0; j < 3; j++ {
			m.Triangles[i].V[j].Color = c
		}
	}
}

// Displace moves every vertex through fn. Shared corners are visited once
// per triangle, so fn should be a pure function of the position.
func (m *Mesh3D) Displace(fn func(Vec3) Vec3) {
	for i := range m.Triangles {
		for j := 0; j < 3; j++ {
			m.Triangles[i].V[j].Pos = fn(m.Triangles[i].V[j].Pos)
		}
	}
}

// FlatShade replaces vertex normals with face normals.
func (m *Mesh3D) FlatShade() {
	for i := range m.Triangles {
		n := m.Triangles[i].FaceNormal()
		for j := 0; j < 3; j++ {
			m.Triangles[i].V[j].Normal = n
		}
	}
}

// Bounds returns the axis-aligned box around every vertex.
func (m *Mesh3D) Bounds() (lo, hi Vec3) {
	if len(m.Triangles) == 0 {
		return
	}
	lo = m.Triangles[0].V[0].Pos
	hi = lo
	for _, t := range m.Triangles {
		for _, v := range t.V {
			lo = Vec3{math.Min(lo.X, v.Pos.X), math.Min(lo.Y, v.Pos.Y), math.Min(lo.Z, v.Pos.Z)}
			hi = Vec3{math.Max(hi.X, v.Pos.X), math.Max(hi.Y, v.Pos.Y), math.Max(hi.Z, v.Pos.Z)}
		}
	}
	return lo, hi
}

// --- Primitive generators ---
// All primitives are centred on the origin with Y up.

func ring(i, segments int, radius, y float64) Vec3 {
	a := float64(i) / float64(segments) * 2 * math.Pi
	return V3(radius*math.Sin(a), y, radius*math.Cos(a))
}

// MakeFrustum builds a capped tapered cylinder.
func MakeFrustum(radiusTop, radiusBottom, height float64, segments int, c Color3) *Mesh3D {
	m := NewMesh()
	if segments < 3 {
		segments = 3
	}
	hh := height / 2
	top := V3(0, hh, 0)
	bot := V3(0, -hh, 0)
	slope := (radiusBottom - radiusTop) / height

	for i := 0; i < segments; i++ {
		p0t, p1t := ring(i, segments, radiusTop, hh), ring(i+1, segments, radiusTop, hh)
		p0b, p1b := ring(i, segments, radiusBottom, -hh), ring(i+1, segments, radiusBottom, -hh)

		mid := ring(2*i+1, 2*segments, 1, 0)
		n := V3(mid.X, slope, mid.Z).Normalize()

		sideShade := 0.8 + 0.2*float64(i%2)
		sc := c.Scale(sideShade)
		m.AddQuadFacing(
			Vertex3D{Pos: p0b, Normal: n, Color: sc},
			Vertex3D{Pos: p1b, Normal: n, Color: sc},
			Vertex3D{Pos: p1t, Normal: n, Color: sc},
			Vertex3D{Pos: p0t, Normal: n, Color: sc},
			n,
		)

		if radiusTop > 0 {
			topN := V3(0, 1, 0)
			m.AddFacing(
				Vertex3D{Pos: top, Normal: topN, Color: c},
				Vertex3D{Pos: p0t, Normal: topN, Color: c},
				Vertex3D{Pos: p1t, Normal: topN, Color: c},
				topN,
			)
		}

		botN := V3(0, -1, 0)
		bc := c.Scale(0.6)
		m.AddFacing(
			Vertex3D{Pos: bot, Normal: botN, Color: bc},
			Vertex3D{Pos: p1b, Normal: botN, Color: bc},
			Vertex3D{Pos: p0b, Normal: botN, Color: bc},
			botN,
		)
	}
	return m
}

func MakeCylinder(radius, height float64, segments int, c Color3) *Mesh3D {
	return MakeFrustum(radius, radius, height, segments, c)
}

func MakeCone(radius, height float64, segments int, c Color3) *Mesh3D {
	m := NewMesh()
	if segments < 3 {
		segments = 3
	}
	hh := height / 2
	tip := V3(0, hh, 0)
	bot := V3(0, -hh, 0)
	slope := radius / height

	for i := 0; i < segments; i++ {
		p0b, p1b := ring(i, segments, radius, -hh), ring(i+1, segments, radius, -hh)

		n0 := V3(p0b.X, slope*radius, p0b.Z).Normalize()
		n1 := V3(p1b.X, slope*radius, p1b.Z).Normalize()
		nTip := n0.Add(n1).Scale(0.5).Normalize()

		shade := 0.8 + 0.2*float64(i%2)
		sc := c.Scale(shade)
		m.AddFacing(
			Vertex3D{Pos: p0b, Normal: n0, Color: sc},
			Vertex3D{Pos: p1b, Normal: n1, Color: sc},
			Vertex3D{Pos: tip, Normal: nTip, Color: sc},
			nTip,
		)

		botN := V3(0, -1, 0)
		bc := c.Scale(0.5)
		m.AddFacing(
			Vertex3D{Pos: bot, Normal: botN, Color: bc},
			Vertex3D{Pos: p1b, Normal: botN, Color: bc},
			Vertex3D{Pos: p0b, Normal: botN, Color: bc},
			botN,
		)
	}
	return m
}

// MakeSphere builds a UV sphere with widthSegs around and heightSegs from
// pole to pole.
func MakeSphere(radius float64, widthSegs, heightSegs int, c Color3) *Mesh3D {
	m := NewMesh()
	if widthSegs < 3 {
		widthSegs = 3
	}
	if heightSegs < 2 {
		heightSegs = 2
	}
	point := func(i, j int) Vec3 {
		switch j {
		case 0:
			return V3(0, radius, 0)
		case heightSegs:
			return V3(0, -radius, 0)
		}
		theta := float64(j) / float64(heightSegs) * math.Pi
		phi := float64(i%widthSegs) / float64(widthSegs) * 2 * math.Pi
		return V3(
			radius*math.Sin(theta)*math.Sin(phi),
			radius*math.Cos(theta),
			radius*math.Sin(theta)*math.Cos(phi),
		)
	}
	vert := func(p Vec3) Vertex3D {
		return Vertex3D{Pos: p, Normal: p.Normalize(), Color: c}
	}
	for j := 0; j < heightSegs; j++ {
		for i := 0; i < widthSegs; i++ {
			a, b := point(i, j), point(i+1, j)
			d, e := point(i, j+1), point(i+1, j+1)
			out := a.Add(b).Add(d).Add(e).Normalize()
			if j > 0 {
				m.AddFacing(vert(a), vert(d), vert(b), out)
			}
			if j < heightSegs-1 {
				m.AddFacing(vert(b), vert(d), vert(e), out)
			}
		}
	}
	return m
}
