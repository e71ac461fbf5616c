// Package render paints the forest scene with ebiten: a sky background,
// depth-sorted lit triangles for terrain, trees, props and clouds, and
// camera-facing billboards for the campfire particles.
package render

import (
	"image/color"
	"math"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/1siamBot/forest-scene/engine/particles"
	"github.com/1siamBot/forest-scene/engine/render3d"
	"github.com/1siamBot/forest-scene/engine/scene"
	"github.com/1siamBot/forest-scene/engine/scenery"
)

// Stats describes the last drawn frame.
type Stats struct {
	Triangles int
	Culled    int
	Fire      int
	Smoke     int
}

type drawTri struct {
	v     [3]ebiten.Vertex
	depth float64
}

// SceneRenderer draws a SceneContext. It keeps scratch buffers between
// frames and is not safe for concurrent use.
type SceneRenderer struct {
	Sprites *SpriteSet
	Stats   Stats

	fire, smoke *render3d.ParticleLayer
	snap        particles.Snapshot

	tris     []drawTri
	vertices []ebiten.Vertex
	indices  []uint16

	overviewImg *ebiten.Image
}

// NewSceneRenderer creates the renderer and its sprites.
func NewSceneRenderer() *SceneRenderer {
	return &SceneRenderer{
		Sprites: NewSpriteSet(),
		fire:    render3d.FireLayer(),
		smoke:   render3d.SmokeLayer(),
	}
}

// Draw renders one frame of sc.
func (r *SceneRenderer) Draw(screen *ebiten.Image, sc *scene.SceneContext) {
	r.Stats = Stats{}
	cam := sc.Camera
	b := screen.Bounds()
	cam.Resize(b.Dx(), b.Dy())

	r.DrawSky(screen, cam.ScreenW, cam.ScreenH)

	r.tris = r.tris[:0]
	r.collect(cam, &sc.Lighting, sc.Terrain.Mesh(), 1)
	r.collect(cam, &sc.Lighting, sc.Forest.Mesh(scenery.PartTrunk), 1)
	r.collect(cam, &sc.Lighting, sc.Forest.Mesh(scenery.PartLeaves), 1)
	r.collect(cam, &sc.Lighting, sc.Props.WorldMesh(render3d.FromMgl(sc.Campfire.Base())), 1)
	r.collect(cam, &sc.Lighting, sc.Sky.Mesh(), sc.Sky.Opacity)

	// back to front
	slices.SortFunc(r.tris, func(a, b drawTri) int {
		return compareDepth(b.depth, a.depth)
	})
	r.flushTris(screen, r.tris, r.Sprites.White, nil)

	origin := render3d.FromMgl(sc.Campfire.Base())
	r.smoke.Sync(origin, sc.Campfire.SmokePool(), &r.snap)
	r.fire.Sync(origin, sc.Campfire.FirePool(), &r.snap)
	r.Stats.Smoke = r.drawLayer(screen, cam, r.smoke, r.Sprites.Puff)
	r.Stats.Fire = r.drawLayer(screen, cam, r.fire, r.Sprites.Glow)
}

// DrawSky fills the background with sky blue, slightly paler towards the
// horizon.
func (r *SceneRenderer) DrawSky(screen *ebiten.Image, w, h int) {
	sky := render3d.SkyBlue
	bands := 24
	bandH := h / bands
	if bandH < 1 {
		bandH = 1
	}
	for i := 0; i < bands; i++ {
		t := float64(i) / float64(bands)
		c := sky.Add(render3d.Color3{R: 0.12, G: 0.08, B: 0.04}.Scale(t))
		by := i * bandH
		bh := bandH
		if i == bands-1 {
			bh = h - by
		}
		vector.DrawFilledRect(screen, 0, float32(by), float32(w), float32(bh), toRGBA(c, 1), false)
	}
}

// collect projects, lights and culls mesh into the sort buffer.
func (r *SceneRenderer) collect(cam *render3d.Camera3D, lights *render3d.LightingSetup, mesh *render3d.Mesh3D, alpha float64) {
	sw, sh := float32(cam.ScreenW), float32(cam.ScreenH)
	for _, tri := range mesh.Triangles {
		var dt drawTri
		onScreen := false
		behind := false
		for i := 0; i < 3; i++ {
			v := tri.V[i]
			p := cam.Project(v.Pos)
			if !p.Visible() {
				behind = true
				break
			}
			lit := lights.ComputeLighting(v.Pos, v.Normal, v.Color)
			x, y := float32(p.X), float32(p.Y)
			if x >= -100 && x <= sw+100 && y >= -100 && y <= sh+100 {
				onScreen = true
			}
			dt.v[i] = ebiten.Vertex{
				DstX: x, DstY: y,
				SrcX: 1, SrcY: 1,
				ColorR: float32(lit.R), ColorG: float32(lit.G), ColorB: float32(lit.B),
				ColorA: float32(alpha),
			}
			dt.depth += p.W / 3
		}
		if behind || !onScreen {
			r.Stats.Culled++
			continue
		}

		// Back-face culling (screen-space winding order, Y-down)
		ax := dt.v[1].DstX - dt.v[0].DstX
		ay := dt.v[1].DstY - dt.v[0].DstY
		bx := dt.v[2].DstX - dt.v[0].DstX
		by := dt.v[2].DstY - dt.v[0].DstY
		if ax*by-ay*bx < 0.5 {
			r.Stats.Culled++
			continue
		}
		r.tris = append(r.tris, dt)
	}
}

// flushTris draws tris in order, batching below the uint16 index limit.
func (r *SceneRenderer) flushTris(screen *ebiten.Image, tris []drawTri, src *ebiten.Image, op *ebiten.DrawTrianglesOptions) {
	r.vertices = r.vertices[:0]
	r.indices = r.indices[:0]
	for _, t := range tris {
		base := uint16(len(r.vertices))
		r.vertices = append(r.vertices, t.v[0], t.v[1], t.v[2])
		r.indices = append(r.indices, base, base+1, base+2)
		if len(r.vertices) >= 65000 {
			screen.DrawTriangles(r.vertices, r.indices, src, op)
			r.vertices = r.vertices[:0]
			r.indices = r.indices[:0]
		}
	}
	if len(r.vertices) > 0 {
		screen.DrawTriangles(r.vertices, r.indices, src, op)
	}
	r.Stats.Triangles += len(tris)
}

// drawLayer draws each billboard of l as a textured quad scaled by
// perspective, farthest first. It returns the number drawn.
func (r *SceneRenderer) drawLayer(screen *ebiten.Image, cam *render3d.Camera3D, l *render3d.ParticleLayer, sprite *ebiten.Image) int {
	sb := sprite.Bounds()
	sw, sh := float32(sb.Dx()), float32(sb.Dy())
	r.tris = r.tris[:0]
	for _, bb := range l.Billboards {
		p := cam.Project(bb.Pos)
		if !p.Visible() {
			continue
		}
		half := float32(bb.Size * cam.PixelsPerUnit(p.W) / 2)
		if half < 0.5 {
			continue
		}
		x, y := float32(p.X), float32(p.Y)
		cr, cg, cb := float32(bb.Color.R), float32(bb.Color.G), float32(bb.Color.B)
		ca := float32(l.Opacity)
		corner := func(dx, dy, u, v float32) ebiten.Vertex {
			return ebiten.Vertex{
				DstX: x + dx, DstY: y + dy,
				SrcX: u, SrcY: v,
				ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca,
			}
		}
		tl := corner(-half, -half, 0, 0)
		tr := corner(half, -half, sw, 0)
		br := corner(half, half, sw, sh)
		bl := corner(-half, half, 0, sh)
		r.tris = append(r.tris,
			drawTri{v: [3]ebiten.Vertex{tl, tr, br}, depth: p.W},
			drawTri{v: [3]ebiten.Vertex{tl, br, bl}, depth: p.W},
		)
	}
	slices.SortStableFunc(r.tris, func(a, b drawTri) int {
		return compareDepth(b.depth, a.depth)
	})

	op := &ebiten.DrawTrianglesOptions{}
	if l.Blend == render3d.BlendAdditive {
		op.Blend = ebiten.BlendLighter
	}
	r.flushTris(screen, r.tris, sprite, op)
	return len(r.tris) / 2
}

func compareDepth(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func toRGBA(c render3d.Color3, a float64) color.RGBA {
	clamp := func(v float64) uint8 { return uint8(math.Round(math.Min(1, math.Max(0, v)) * 255)) }
	return color.RGBA{clamp(c.R * a), clamp(c.G * a), clamp(c.B * a), clamp(a)}
}
