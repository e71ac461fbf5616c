package particles

// Snapshot is a flat, render-ready copy of a pool: three floats per position
// and colour, one per size. Buffers are reused across calls.
type Snapshot struct {
	Positions []float32
	Colors    []float32
	Sizes     []float32
}

// Len returns the number of particles in the snapshot.
func (s *Snapshot) Len() int { return len(s.Sizes) }

func (s *Snapshot) ensure(n int) {
	s.Positions = grow(s.Positions, 3*n)
	s.Colors = grow(s.Colors, 3*n)
	s.Sizes = grow(s.Sizes, n)
}

func grow(b []float32, n int) []float32 {
	if cap(b) < n {
		return make([]float32, n)
	}
	return b[:n]
}

// Snapshot copies the pool into dst. Inactive slots report size 0.
func (p *Pool) Snapshot(dst *Snapshot) {
	n := p.Cap()
	dst.ensure(n)
	for i := 0; i < n; i++ {
		i3 := i * 3
		pos, col := p.pos[i], p.color[i]
		dst.Positions[i3], dst.Positions[i3+1], dst.Positions[i3+2] = pos[0], pos[1], pos[2]
		dst.Colors[i3], dst.Colors[i3+1], dst.Colors[i3+2] = col[0], col[1], col[2]
		if p.on[i] {
			dst.Sizes[i] = p.size[i]
		} else {
			dst.Sizes[i] = 0
		}
	}
}
