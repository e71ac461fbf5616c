package ui

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/1siamBot/forest-scene/engine/input"
)

// FrameStats is the per-frame information the stats line shows.
type FrameStats struct {
	Triangles, Culled int
	Fire, Smoke       int
	Trees, Clouds     int
	Tick              uint64
	Seed              uint64
}

// Overlay draws the centred play button while the simulation is paused,
// the optional stats line and the key help.
type Overlay struct {
	Ctrl      Controller
	ShowStats bool

	screenW, screenH int
	hovered          bool
}

func NewOverlay(ctrl Controller) *Overlay {
	return &Overlay{Ctrl: ctrl}
}

func (o *Overlay) playRect() image.Rectangle {
	const size = 80
	cx, cy := o.screenW/2, o.screenH/2
	return image.Rect(cx-size/2, cy-size/2, cx+size/2, cy+size/2)
}

// Update handles the play button and the stats key. It reports whether the
// click was consumed.
func (o *Overlay) Update(in *input.InputState, screenW, screenH int) bool {
	o.screenW, o.screenH = screenW, screenH
	if in.IsKeyJustPressed(input.KeyToggleStats) {
		o.ShowStats = !o.ShowStats
	}
	o.hovered = false
	if o.Ctrl.Playing() {
		return false
	}
	o.hovered = image.Pt(in.MouseX, in.MouseY).In(o.playRect())
	if o.hovered && in.LeftJustPressed {
		o.Ctrl.Toggle()
		return true
	}
	return false
}

// Draw paints the overlay.
func (o *Overlay) Draw(screen *ebiten.Image, st FrameStats) {
	if !o.Ctrl.Playing() {
		r := o.playRect()
		bg := color.RGBA{0, 0, 0, 120}
		if o.hovered {
			bg = color.RGBA{20, 60, 20, 170}
		}
		drawRoundedRect(screen, r, 12, bg)
		// play triangle
		cx, cy := float32(r.Min.X+r.Dx()/2), float32(r.Min.Y+r.Dy()/2)
		var path vector.Path
		path.MoveTo(cx-12, cy-18)
		path.LineTo(cx+20, cy)
		path.LineTo(cx-12, cy+18)
		path.Close()
		vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
		for i := range vs {
			vs[i].SrcX, vs[i].SrcY = 1, 1
			vs[i].ColorR, vs[i].ColorG, vs[i].ColorB, vs[i].ColorA = 1, 1, 1, 1
		}
		screen.DrawTriangles(vs, is, whitePixel(), &ebiten.DrawTrianglesOptions{AntiAlias: true})
		drawTextCentered(screen, "paused", image.Rect(r.Min.X, r.Max.Y+4, r.Max.X, r.Max.Y+20), textNorm)
	}

	if o.ShowStats {
		line := fmt.Sprintf("FPS %.0f  TPS %.0f  tris %d (culled %d)  fire %d  smoke %d  trees %d  clouds %d  tick %d  seed %d",
			ebiten.ActualFPS(), ebiten.ActualTPS(), st.Triangles, st.Culled, st.Fire, st.Smoke, st.Trees, st.Clouds, st.Tick, st.Seed)
		vector.DrawFilledRect(screen, 0, 0, float32(textWidth(line)+16), 22, overlayShade, false)
		drawText(screen, line, 8, 15, textNorm)
	}

	help := "space start/pause  tab panel  m map  f3 stats  n mute  esc quit"
	drawText(screen, help, 8, o.screenH-8, textDim)
}
