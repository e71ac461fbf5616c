package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/1siamBot/forest-scene/engine/scene"
	"github.com/1siamBot/forest-scene/engine/scenery"
)

var (
	overviewTree     = color.RGBA{20, 90, 20, 255}
	overviewCloud    = color.RGBA{255, 255, 255, 150}
	overviewCampfire = color.RGBA{255, 120, 0, 255}
	overviewCamera   = color.RGBA{255, 255, 255, 220}
)

// DrawOverview draws a top-down map of the scene at posX, posY: terrain
// square, trees, clouds, the campfire and the camera with its view line.
func (r *SceneRenderer) DrawOverview(screen *ebiten.Image, sc *scene.SceneContext, posX, posY, size int) {
	if r.overviewImg == nil || r.overviewImg.Bounds().Dx() != size {
		r.overviewImg = ebiten.NewImage(size, size)
	}
	img := r.overviewImg
	img.Fill(color.RGBA{0, 0, 0, 180})

	// the map spans the cloud field, which is wider than any terrain
	span := 2 * scenery.CloudSpan
	scale := float64(size) / span
	toMap := func(x, z float64) (float32, float32) {
		return float32((x + span/2) * scale), float32((z + span/2) * scale)
	}

	half := sc.Terrain.Size / 2
	tx, tz := toMap(-half, -half)
	ts := float32(sc.Terrain.Size * scale)
	vector.DrawFilledRect(img, tx, tz, ts, ts, toRGBA(sc.Terrain.Color, 1), false)

	for _, n := range sc.Nodes() {
		x, z := toMap(n.Pos.X, n.Pos.Z)
		switch n.Kind {
		case scene.NodeTree:
			vector.DrawFilledRect(img, x-1, z-1, 2, 2, overviewTree, false)
		case scene.NodeCloud:
			vector.DrawFilledCircle(img, x, z, 3, overviewCloud, false)
		case scene.NodeCampfire:
			vector.DrawFilledCircle(img, x, z, 3, overviewCampfire, false)
		}
	}

	eye, target := sc.Camera.Eye, sc.Camera.Target
	ex, ez := toMap(eye.X, eye.Z)
	lx, lz := toMap(target.X, target.Z)
	vector.StrokeLine(img, ex, ez, lx, lz, 1, overviewCamera, false)
	vector.DrawFilledCircle(img, ex, ez, 2.5, overviewCamera, false)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(posX), float64(posY))
	screen.DrawImage(img, op)
}
