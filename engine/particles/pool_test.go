package particles

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seqRand replays a fixed cycle of values.
type seqRand struct {
	vals []float32
	i    int
}

func (s *seqRand) Float32() float32 {
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return v
}

func testPolicy() SpawnPolicy {
	return SpawnPolicy{
		Origin:   mgl32.Vec3{0, 1, 0},
		PosX:     Spread(0.5),
		PosY:     Fixed(0),
		PosZ:     Spread(0.5),
		VelX:     Fixed(0),
		VelY:     Range{Min: 1, Max: 2},
		VelZ:     Fixed(0),
		Color:    ColorRange{R: Fixed(1), G: Range{Min: 0.5, Max: 1}, B: Fixed(0)},
		Size:     Range{Min: 0.5, Max: 1},
		Lifetime: Range{Min: 0, Max: 2},
	}
}

func TestNewPoolRejectsCapacity(t *testing.T) {
	for _, c := range []int{0, -1, -200} {
		p, err := NewPool(c, testPolicy(), NewRand(1))
		assert.Nil(t, p)
		assert.True(t, errors.Is(err, ErrInvalidCapacity), "capacity %d", c)
	}
}

func TestNewPoolRejectsPolicy(t *testing.T) {
	cases := map[string]func(*SpawnPolicy){
		"zero lifetime":     func(p *SpawnPolicy) { p.Lifetime = Fixed(0) },
		"negative lifetime": func(p *SpawnPolicy) { p.Lifetime = Range{Min: -2, Max: -1} },
		"inverted lifetime": func(p *SpawnPolicy) { p.Lifetime = Range{Min: 3, Max: 1} },
		"negative size":     func(p *SpawnPolicy) { p.Size = Range{Min: -1, Max: 1} },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			pol := testPolicy()
			mutate(&pol)
			_, err := NewPool(4, pol, NewRand(1))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidPolicy)
		})
	}
}

func TestNewPoolSpawnsEverySlot(t *testing.T) {
	pol := testPolicy()
	p, err := NewPool(64, pol, NewRand(7))
	require.NoError(t, err)
	require.Equal(t, 64, p.Cap())
	assert.Equal(t, 64, p.ActiveCount())

	for i := 0; i < p.Cap(); i++ {
		assert.Greater(t, p.Lifetimes()[i], float32(0))
		assert.LessOrEqual(t, p.Lifetimes()[i], float32(2))
		pos := p.Positions()[i]
		assert.True(t, Spread(0.5).Contains(pos.X()))
		assert.Equal(t, float32(1), pos.Y())
		assert.True(t, pol.Size.Contains(p.Sizes()[i]))
		assert.True(t, pol.VelY.Contains(p.Velocities()[i].Y()))
		assert.Equal(t, float32(1), p.Colors()[i].X())
	}
	assert.Equal(t, AttrAll, p.TakeDirty())
}

func TestSampleUpperNeverHitsLowerBound(t *testing.T) {
	r := Range{Min: 2, Max: 5}
	assert.Equal(t, float32(5), r.SampleUpper(&seqRand{vals: []float32{0}}))
	v := r.SampleUpper(&seqRand{vals: []float32{0.999}})
	assert.Greater(t, v, float32(2))
}

func TestRespawnReusesBaseColor(t *testing.T) {
	pol := testPolicy()
	pol.Color = ColorRange{R: Range{Min: 0.2, Max: 0.5}, Monochrome: true}
	pol.ReuseBaseColor = true
	p, err := NewPool(8, pol, NewRand(3))
	require.NoError(t, err)

	for i := 0; i < p.Cap(); i++ {
		base := p.BaseColors()[i]
		assert.Equal(t, base.X(), base.Y())
		assert.Equal(t, base.X(), base.Z())
		p.Colors()[i] = mgl32.Vec3{}
		p.Respawn(i)
		assert.Equal(t, base, p.Colors()[i])
	}
}

func TestRespawnRedrawsColorByDefault(t *testing.T) {
	rng := &seqRand{vals: []float32{0.1, 0.3, 0.6, 0.9}}
	p, err := NewPool(1, testPolicy(), rng)
	require.NoError(t, err)
	before := p.Colors()[0]
	p.Respawn(0)
	assert.NotEqual(t, before.Y(), p.Colors()[0].Y())
}

func TestDirtySignal(t *testing.T) {
	p, err := NewPool(2, testPolicy(), NewRand(1))
	require.NoError(t, err)
	p.TakeDirty()
	v := p.Version()

	p.MarkDirty(AttrNone)
	assert.Equal(t, v, p.Version())

	p.MarkDirty(AttrPosition)
	p.MarkDirty(AttrSize)
	assert.Equal(t, v+2, p.Version())
	assert.Equal(t, AttrPosition|AttrSize, p.Dirty())

	d := p.TakeDirty()
	assert.True(t, d.Has(AttrPosition))
	assert.False(t, d.Has(AttrColor))
	assert.Equal(t, AttrNone, p.TakeDirty())
}

func TestAttributeString(t *testing.T) {
	assert.Equal(t, "none", AttrNone.String())
	assert.Equal(t, "position|color|size", AttrAll.String())
	assert.Equal(t, "color", AttrColor.String())
}

func TestKillAndAlive(t *testing.T) {
	p, err := NewPool(3, testPolicy(), NewRand(1))
	require.NoError(t, err)
	assert.True(t, p.Alive(1))
	p.Kill(1)
	assert.False(t, p.Alive(1))
	assert.Less(t, p.Lifetimes()[1], float32(0))
}

func TestSnapshot(t *testing.T) {
	p, err := NewPool(4, testPolicy(), NewRand(11))
	require.NoError(t, err)
	p.SetActive(2, false)

	var s Snapshot
	p.Snapshot(&s)
	require.Equal(t, 4, s.Len())
	require.Len(t, s.Positions, 12)
	require.Len(t, s.Colors, 12)

	for i := 0; i < 4; i++ {
		pos := p.Positions()[i]
		assert.Equal(t, pos.X(), s.Positions[i*3])
		assert.Equal(t, pos.Y(), s.Positions[i*3+1])
		assert.Equal(t, pos.Z(), s.Positions[i*3+2])
		assert.Equal(t, p.Colors()[i].Y(), s.Colors[i*3+1])
	}
	assert.Equal(t, float32(0), s.Sizes[2])
	assert.Equal(t, p.Sizes()[0], s.Sizes[0])

	first := &s.Sizes[0]
	p.Snapshot(&s)
	assert.Same(t, first, &s.Sizes[0])
}

func TestSnapshotGrowsMismatchedBuffers(t *testing.T) {
	p, err := NewPool(4, testPolicy(), NewRand(12))
	require.NoError(t, err)

	s := Snapshot{
		Positions: make([]float32, 0, 3),
		Colors:    make([]float32, 0, 30),
		Sizes:     make([]float32, 0, 10),
	}
	colors := &s.Colors[:1][0]
	require.NotPanics(t, func() { p.Snapshot(&s) })
	assert.Equal(t, 4, s.Len())
	assert.Len(t, s.Positions, 12)
	assert.Len(t, s.Colors, 12)
	assert.Same(t, colors, &s.Colors[0], "large enough buffers are kept")
	assert.Equal(t, p.Positions()[3].Z(), s.Positions[11])
}
