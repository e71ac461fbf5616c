package render3d

import "github.com/1siamBot/forest-scene/engine/particles"

// BlendMode selects how a particle layer is composited.
type BlendMode uint8

const (
	BlendAlpha BlendMode = iota
	BlendAdditive
)

// Billboard is a camera-facing square drawn for one particle.
type Billboard struct {
	Pos   Vec3
	Size  float64 // world units, edge length
	Color Color3
}

// ParticleLayer holds the billboards of one particle pool, rebuilt whenever
// the pool reports a change.
type ParticleLayer struct {
	Billboards []Billboard
	Blend      BlendMode
	Opacity    float64
	SizeScale  float64

	version uint64
	loaded  bool
	origin  Vec3
	slots   []int // pool slot of each billboard
}

// FireLayer is drawn additively at 80% opacity.
func FireLayer() *ParticleLayer {
	return &ParticleLayer{Blend: BlendAdditive, Opacity: 0.8, SizeScale: 0.5}
}

// SmokeLayer is alpha blended at 40% opacity.
func SmokeLayer() *ParticleLayer {
	return &ParticleLayer{Blend: BlendAlpha, Opacity: 0.4, SizeScale: 1}
}

// Sync brings the billboards up to date with pool if it changed since the
// last call. snap is scratch space reused between frames. Only a size change
// can add or remove billboards, so a pool that reports just positions or
// colours dirty is patched in place; anything else rebuilds from a snapshot.
// It reports whether the billboards changed.
func (l *ParticleLayer) Sync(origin Vec3, pool *particles.Pool, snap *particles.Snapshot) bool {
	if l.loaded && pool.Version() == l.version && origin == l.origin {
		return false
	}
	dirty := pool.TakeDirty()
	if l.loaded && origin == l.origin && !dirty.Has(particles.AttrSize) {
		l.version = pool.Version()
		l.patch(pool, dirty)
		return true
	}
	l.version = pool.Version()
	l.loaded = true
	pool.Snapshot(snap)
	l.Load(origin, snap)
	return true
}

func (l *ParticleLayer) patch(pool *particles.Pool, dirty particles.Attribute) {
	pos, col := pool.Positions(), pool.Colors()
	for b, i := range l.slots {
		if dirty.Has(particles.AttrPosition) {
			p := pos[i]
			l.Billboards[b].Pos = l.origin.Add(V3(float64(p[0]), float64(p[1]), float64(p[2])))
		}
		if dirty.Has(particles.AttrColor) {
			c := col[i]
			l.Billboards[b].Color = Color3{float64(c[0]), float64(c[1]), float64(c[2])}
		}
	}
}

// Load replaces the billboards with the contents of snap, offset by origin.
func (l *ParticleLayer) Load(origin Vec3, snap *particles.Snapshot) {
	l.origin = origin
	l.Billboards = l.Billboards[:0]
	l.slots = l.slots[:0]
	for i := 0; i < snap.Len(); i++ {
		size := float64(snap.Sizes[i])
		if size <= 0 {
			continue
		}
		i3 := i * 3
		l.slots = append(l.slots, i)
		l.Billboards = append(l.Billboards, Billboard{
			Pos: origin.Add(V3(
				float64(snap.Positions[i3]),
				float64(snap.Positions[i3+1]),
				float64(snap.Positions[i3+2]),
			)),
			Size: size * l.SizeScale,
			Color: Color3{
				float64(snap.Colors[i3]),
				float64(snap.Colors[i3+1]),
				float64(snap.Colors[i3+2]),
			},
		})
	}
}
