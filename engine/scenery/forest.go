package scenery

import (
	"github.com/google/uuid"

	"github.com/1siamBot/forest-scene/engine/render3d"
)

// PartKind tags the pieces a tree is built from so they can be recoloured
// as a group.
type PartKind uint8

const (
	PartTrunk PartKind = iota
	PartLeaves
)

func (k PartKind) String() string {
	if k == PartLeaves {
		return "leaves"
	}
	return "trunk"
}

// Part heights above the ground at the tree's foot.
const (
	trunkLift  = 0.75
	leavesLift = 3.0
)

// TreePart is one placed piece of a tree.
type TreePart struct {
	Kind PartKind
	Pos  render3d.Vec3 // centre of the part in world space
}

// Tree is a trunk with a conical crown.
type Tree struct {
	ID     uuid.UUID
	X, Z   float64
	Ground float64
	Parts  [2]TreePart
}

// Forest is a set of trees sharing one trunk and one crown colour.
type Forest struct {
	Trees       []Tree
	TrunkColor  render3d.Color3
	LeavesColor render3d.Color3

	meshes [2]*render3d.Mesh3D
}

// Plant scatters count trees uniformly over the terrain.
func Plant(count int, terrain *Terrain, rng Rand, trunk, leaves render3d.Color3) *Forest {
	if count < 0 {
		count = 0
	}
	f := &Forest{
		Trees:       make([]Tree, 0, count),
		TrunkColor:  trunk,
		LeavesColor: leaves,
	}
	half := terrain.Size / 2
	for i := 0; i < count; i++ {
		x := between(rng, -half, half)
		z := between(rng, -half, half)
		h := terrain.HeightAt(x, z)
		f.Trees = append(f.Trees, Tree{
			ID:     uuid.New(),
			X:      x,
			Z:      z,
			Ground: h,
			Parts: [2]TreePart{
				{Kind: PartTrunk, Pos: render3d.V3(x, h+trunkLift, z)},
				{Kind: PartLeaves, Pos: render3d.V3(x, h+leavesLift, z)},
			},
		})
	}
	return f
}

// Len returns the number of trees.
func (f *Forest) Len() int { return len(f.Trees) }

// Color returns the colour of every part of the given kind.
func (f *Forest) Color(kind PartKind) render3d.Color3 {
	if kind == PartLeaves {
		return f.LeavesColor
	}
	return f.TrunkColor
}

// Recolor repaints every part tagged kind.
func (f *Forest) Recolor(kind PartKind, c render3d.Color3) {
	if kind == PartLeaves {
		f.LeavesColor = c
	} else {
		f.TrunkColor = c
	}
	f.meshes[kind] = nil
}

// Mesh returns all parts of the given kind merged into one world-space mesh.
func (f *Forest) Mesh(kind PartKind) *render3d.Mesh3D {
	if m := f.meshes[kind]; m != nil {
		return m
	}
	var model *render3d.Mesh3D
	if kind == PartLeaves {
		model = render3d.MakeLeaves(f.LeavesColor)
	} else {
		model = render3d.MakeTrunk(f.TrunkColor)
	}
	out := &render3d.Mesh3D{Triangles: make([]render3d.Triangle3D, 0, len(model.Triangles)*len(f.Trees))}
	for _, t := range f.Trees {
		p := t.Parts[kind].Pos
		out.Append(model.Transform(render3d.Mat4Translate(p.X, p.Y, p.Z)))
	}
	f.meshes[kind] = out
	return out
}
