package render3d

// HeightFunc samples terrain height at a world x, z.
type HeightFunc func(x, z float64) float64

// GenerateGridMesh builds a flat-shaded square height field of size×size
// world units centred on the origin, split into segments² quads.
func GenerateGridMesh(size float64, segments int, height HeightFunc, c Color3) *Mesh3D {
	if segments < 1 {
		segments = 1
	}
	mesh := &Mesh3D{Triangles: make([]Triangle3D, 0, segments*segments*2)}
	up := V3(0, 1, 0)
	step := size / float64(segments)
	half := size / 2

	at := func(i, j int) Vertex3D {
		x := -half + float64(i)*step
		z := -half + float64(j)*step
		return Vertex3D{Pos: V3(x, height(x, z), z), Normal: up, Color: c}
	}

	for j := 0; j < segments; j++ {
		for i := 0; i < segments; i++ {
			mesh.AddQuadFacing(at(i, j), at(i+1, j), at(i+1, j+1), at(i, j+1), up)
		}
	}
	mesh.FlatShade()
	return mesh
}
