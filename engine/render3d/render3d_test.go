package render3d

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/1siamBot/forest-scene/engine/particles"
)

func assertOutwardFacing(t *testing.T, m *Mesh3D) {
	t.Helper()
	require.NotEmpty(t, m.Triangles)
	for i, tri := range m.Triangles {
		n := tri.FaceNormal()
		if n.Len() == 0 {
			continue
		}
		assert.Greater(t, n.Dot(tri.Centroid()), 0.0, "triangle %d faces inward", i)
	}
}

func TestPrimitivesFaceOutward(t *testing.T) {
	c := Color3{1, 1, 1}
	cases := map[string]*Mesh3D{
		"frustum":  MakeFrustum(0.2, 0.4, 1.5, 5, c),
		"cylinder": MakeCylinder(0.3, 0.2, 8, c),
		"cone":     MakeCone(1.5, 3, 6, c),
		"sphere":   MakeSphere(2, 6, 6, c),
		"stone":    MakeSphere(0.3, 4, 3, c),
	}
	for name, m := range cases {
		t.Run(name, func(t *testing.T) { assertOutwardFacing(t, m) })
	}
}

func TestFrustumShape(t *testing.T) {
	m := MakeTrunk(TrunkBrown)
	// five sides: two side triangles plus one cap on each end
	assert.Len(t, m.Triangles, 5*4)
	lo, hi := m.Bounds()
	assert.InDelta(t, -0.75, lo.Y, 1e-9)
	assert.InDelta(t, 0.75, hi.Y, 1e-9)
	assert.LessOrEqual(t, hi.X, 0.4+1e-9)
}

func TestConeHasNoTopCap(t *testing.T) {
	m := MakeLeaves(LeavesGreen)
	assert.Len(t, m.Triangles, 6*2)
	_, hi := m.Bounds()
	assert.InDelta(t, 1.5, hi.Y, 1e-9)
}

func TestMakeStoneStaysClosed(t *testing.T) {
	vals := []float64{0.8, 1.2, 1.0, 0.9, 1.1}
	i := 0
	jitter := func() float64 {
		v := vals[i%len(vals)]
		i++
		return v
	}
	m := MakeStone(0.3, jitter, StoneLight)
	lo, hi := m.Bounds()
	for _, v := range []float64{lo.X, lo.Y, lo.Z, hi.X, hi.Y, hi.Z} {
		assert.LessOrEqual(t, math.Abs(v), 0.3*1.2+1e-9)
	}

	// every corner position is shared by several triangles after jitter
	seen := map[Vec3]int{}
	for _, tri := range m.Triangles {
		for _, v := range tri.V {
			seen[v.Pos]++
		}
	}
	for p, n := range seen {
		assert.GreaterOrEqual(t, n, 2, "corner %v is not shared", p)
	}
}

func TestGridMesh(t *testing.T) {
	m := GenerateGridMesh(10, 4, func(x, z float64) float64 { return 0 }, GrassGreen)
	require.Len(t, m.Triangles, 32)
	for _, tri := range m.Triangles {
		assert.InDelta(t, 1.0, tri.FaceNormal().Y, 1e-9)
		assert.InDelta(t, 1.0, tri.V[0].Normal.Y, 1e-9)
	}
	lo, hi := m.Bounds()
	assert.Equal(t, V3(-5, 0, -5), lo)
	assert.Equal(t, V3(5, 0, 5), hi)
}

func TestGridMeshFollowsHeight(t *testing.T) {
	h := func(x, z float64) float64 { return x * 0.5 }
	m := GenerateGridMesh(4, 2, h, GrassGreen)
	for _, tri := range m.Triangles {
		for _, v := range tri.V {
			assert.InDelta(t, v.Pos.X*0.5, v.Pos.Y, 1e-9)
		}
		assert.Greater(t, tri.FaceNormal().Y, 0.0)
	}
}

func TestHexRoundTrip(t *testing.T) {
	for _, v := range []uint32{0x8B4513, 0x228B22, 0x44AA44, 0x87CEEB, 0xff6600, 0} {
		assert.Equal(t, v, Hex(v).Hex())
	}
	assert.Equal(t, uint32(0xFFFFFF), Color3{2, 1.5, 1}.Hex())
}

func TestCameraProjection(t *testing.T) {
	c := NewCamera3D(800, 600)
	c.LookAt(V3(0, 0, 10), V3(0, 0, 0))

	o := c.Project(V3(0, 0, 0))
	require.True(t, o.Visible())
	assert.InDelta(t, 400, o.X, 1e-6)
	assert.InDelta(t, 300, o.Y, 1e-6)
	assert.InDelta(t, 10, o.W, 1e-9)

	right := c.Project(V3(1, 0, 0))
	assert.Greater(t, right.X, 400.0)
	up := c.Project(V3(0, 1, 0))
	assert.Less(t, up.Y, 300.0)

	behind := c.Project(V3(0, 0, 20))
	assert.False(t, behind.Visible())

	near := c.Project(V3(0, 0, 5))
	assert.Less(t, near.Depth, o.Depth)

	// one unit at the target spans PixelsPerUnit pixels
	assert.InDelta(t, 300-up.Y, c.PixelsPerUnit(o.W), 1e-6)
}

func TestCameraOrbit(t *testing.T) {
	c := NewCamera3D(640, 480)
	c.Orbit(math.Pi/2, 50, 20, 0)
	assert.InDelta(t, 50, c.Eye.X, 1e-9)
	assert.InDelta(t, 20, c.Eye.Y, 1e-9)
	assert.InDelta(t, 0, c.Eye.Z, 1e-9)
	assert.Equal(t, V3(0, 0, 0), c.Target)

	p := c.Project(V3(0, 0, 0))
	assert.InDelta(t, 320, p.X, 1e-6)
	assert.InDelta(t, 240, p.Y, 1e-6)
}

func TestPointLightAttenuation(t *testing.T) {
	p := PointLight{Intensity: 1.5, Range: 10, Decay: 2}
	assert.Equal(t, 1.0, p.Attenuation(0))
	assert.InDelta(t, 0.25, p.Attenuation(5), 1e-9)
	assert.Equal(t, 0.0, p.Attenuation(10))
	assert.Equal(t, 0.0, p.Attenuation(50))
}

func TestPointLightBrightensNearbySurfaces(t *testing.T) {
	ls := DefaultLighting()
	up := V3(0, 1, 0)
	base := Color3{0.3, 0.3, 0.3}
	dark := ls.ComputeLighting(V3(2, 0, 0), up, base)

	ls.Points = []PointLight{{Pos: V3(0, 1, 0), Color: Hex(0xff6600), Intensity: 1.5, Range: 10, Decay: 2}}
	lit := ls.ComputeLighting(V3(2, 0, 0), up, base)
	far := ls.ComputeLighting(V3(20, 0, 0), up, base)

	assert.Greater(t, lit.R, dark.R)
	assert.Equal(t, dark, far)
	assert.LessOrEqual(t, lit.R, 1.0)
}

func TestParticleLayerSync(t *testing.T) {
	pol := particles.SpawnPolicy{
		PosY:     particles.Fixed(1),
		Color:    particles.ColorRange{R: particles.Fixed(1), G: particles.Fixed(0.5)},
		Size:     particles.Fixed(2),
		Lifetime: particles.Range{Min: 1, Max: 2},
	}
	pool, err := particles.NewPool(3, pol, particles.NewRand(1))
	require.NoError(t, err)
	pool.SetActive(1, false)

	var snap particles.Snapshot
	layer := SmokeLayer()
	require.True(t, layer.Sync(V3(10, 0, 0), pool, &snap))
	require.Len(t, layer.Billboards, 2)
	b := layer.Billboards[0]
	assert.Equal(t, V3(10, 1, 0), b.Pos)
	assert.Equal(t, 2.0, b.Size)
	assert.Equal(t, Color3{1, 0.5, 0}, b.Color)
	assert.Equal(t, particles.AttrNone, pool.Dirty())

	assert.False(t, layer.Sync(V3(10, 0, 0), pool, &snap))
	pool.Positions()[0] = mgl32.Vec3{0, 3, 0}
	pool.MarkDirty(particles.AttrPosition)
	assert.True(t, layer.Sync(V3(10, 0, 0), pool, &snap))
	assert.Equal(t, V3(10, 3, 0), layer.Billboards[0].Pos)
}

func TestParticleLayerPatchesByAttribute(t *testing.T) {
	pol := particles.SpawnPolicy{
		Color:    particles.ColorRange{R: particles.Fixed(1)},
		Size:     particles.Fixed(1),
		Lifetime: particles.Range{Min: 1, Max: 2},
	}
	pool, err := particles.NewPool(3, pol, particles.NewRand(2))
	require.NoError(t, err)
	pool.SetActive(0, false)

	var snap particles.Snapshot
	layer := FireLayer()
	require.True(t, layer.Sync(V3(0, 0, 0), pool, &snap))
	require.Len(t, layer.Billboards, 2)

	// colour only: billboards are patched from the pool, the snapshot is not retaken
	pool.Colors()[2] = mgl32.Vec3{0, 0, 1}
	pool.MarkDirty(particles.AttrColor)
	assert.True(t, layer.Sync(V3(0, 0, 0), pool, &snap))
	require.Len(t, layer.Billboards, 2)
	assert.Equal(t, Color3{0, 0, 1}, layer.Billboards[1].Color)
	assert.Equal(t, float32(1), snap.Colors[6], "snapshot untouched")

	// visibility changes travel with the size buffer
	pool.SetActive(0, true)
	pool.MarkDirty(particles.AttrSize)
	assert.True(t, layer.Sync(V3(0, 0, 0), pool, &snap))
	assert.Len(t, layer.Billboards, 3)

	// moving the origin rebuilds even without a pool change
	assert.True(t, layer.Sync(V3(5, 0, 0), pool, &snap))
	assert.Equal(t, 5.0, layer.Billboards[0].Pos.X)
	assert.False(t, layer.Sync(V3(5, 0, 0), pool, &snap))
}

func TestFireLayerScalesSize(t *testing.T) {
	layer := FireLayer()
	snap := &particles.Snapshot{
		Positions: []float32{0, 0, 0},
		Colors:    []float32{1, 1, 0},
		Sizes:     []float32{1},
	}
	layer.Load(V3(0, 0, 0), snap)
	require.Len(t, layer.Billboards, 1)
	assert.Equal(t, 0.5, layer.Billboards[0].Size)
	assert.Equal(t, BlendAdditive, layer.Blend)
}

func TestViewMatrices(t *testing.T) {
	eye := FromMgl(mgl32.Vec3{3, 4, 5})
	assert.Equal(t, V3(3, 4, 5), eye)

	view := Mat4LookAt(eye, V3(3, 4, 0), V3(0, 1, 0))
	o := view.TransformPoint(eye)
	assert.InDelta(t, 0, o.Len(), 1e-12)
	ahead := view.TransformPoint(V3(3, 4, 0))
	assert.InDelta(t, -5, ahead.Z, 1e-12, "camera looks down -Z")

	proj := Mat4Perspective(math.Pi/2, 2, 1, 100)
	near := proj.TransformPoint(V3(0, 0, -1))
	far := proj.TransformPoint(V3(0, 0, -100))
	assert.InDelta(t, -1, near.Z, 1e-12)
	assert.InDelta(t, 1, far.Z, 1e-9)
	edge := proj.TransformPoint(V3(2, 1, -1))
	assert.InDelta(t, 1, edge.X, 1e-12)
	assert.InDelta(t, 1, edge.Y, 1e-12)
}
