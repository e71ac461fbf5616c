package ui

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

var (
	panelBorder  = color.RGBA{60, 90, 60, 255}
	panelAccent  = color.RGBA{140, 220, 120, 255}
	folderBG     = color.RGBA{30, 42, 30, 240}
	btnNorm      = color.RGBA{44, 56, 44, 240}
	btnHover     = color.RGBA{64, 84, 64, 255}
	btnDisabled  = color.RGBA{28, 32, 28, 200}
	textNorm     = color.RGBA{220, 230, 215, 255}
	textDim      = color.RGBA{130, 140, 125, 255}
	textHeader   = color.RGBA{200, 230, 190, 255}
	playGreen    = color.RGBA{60, 170, 70, 255}
	pauseAmber   = color.RGBA{200, 140, 40, 255}
	overlayShade = color.RGBA{0, 0, 0, 90}
)

func face() font.Face { return basicfont.Face7x13 }

// drawText draws s with its baseline at y.
func drawText(dst *ebiten.Image, s string, x, y int, clr color.Color) {
	text.Draw(dst, s, face(), x, y, clr)
}

// drawTextCentered centres s inside r.
func drawTextCentered(dst *ebiten.Image, s string, r image.Rectangle, clr color.Color) {
	b := text.BoundString(face(), s)
	x := r.Min.X + (r.Dx()-b.Dx())/2
	y := r.Min.Y + (r.Dy()-b.Dy())/2 + b.Dy()
	text.Draw(dst, s, face(), x, y, clr)
}

func textWidth(s string) int { return text.BoundString(face(), s).Dx() }

// generatePanelTexture is a dark green brushed gradient for the panel
// background.
func generatePanelTexture(w, h int) *ebiten.Image {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			grad := 20.0 + 8.0*(1.0-float64(y)/float64(h))
			lineNoise := 2.0 * math.Sin(float64(y)*0.8+float64(x)*0.01)
			v := grad + lineNoise
			r := uint8(math.Max(0, math.Min(255, v*0.85)))
			g := uint8(math.Max(0, math.Min(255, v*1.1)))
			b := uint8(math.Max(0, math.Min(255, v*0.8)))
			img.SetNRGBA(x, y, color.NRGBA{r, g, b, 225})
		}
	}
	return ebiten.NewImageFromImage(img)
}

func drawBevelRect(dst *ebiten.Image, r image.Rectangle, highlight, shadow color.RGBA) {
	x, y := float32(r.Min.X), float32(r.Min.Y)
	w, h := float32(r.Dx()), float32(r.Dy())
	vector.StrokeLine(dst, x, y+0.5, x+w, y+0.5, 1, highlight, false)
	vector.StrokeLine(dst, x+0.5, y, x+0.5, y+h, 1, highlight, false)
	vector.StrokeLine(dst, x, y+h-0.5, x+w, y+h-0.5, 1, shadow, false)
	vector.StrokeLine(dst, x+w-0.5, y, x+w-0.5, y+h, 1, shadow, false)
}

// drawRoundedRect fills r with rounded corners. clr is premultiplied.
func drawRoundedRect(dst *ebiten.Image, r image.Rectangle, radius float32, clr color.Color) {
	var path vector.Path
	x0, y0 := float32(r.Min.X), float32(r.Min.Y)
	x1, y1 := float32(r.Max.X), float32(r.Max.Y)
	path.MoveTo(x0+radius, y0)
	path.LineTo(x1-radius, y0)
	path.ArcTo(x1, y0, x1, y0+radius, radius)
	path.LineTo(x1, y1-radius)
	path.ArcTo(x1, y1, x1-radius, y1, radius)
	path.LineTo(x0+radius, y1)
	path.ArcTo(x0, y1, x0, y1-radius, radius)
	path.LineTo(x0, y0+radius)
	path.ArcTo(x0, y0, x0+radius, y0, radius)
	path.Close()

	cr, cg, cb, ca := clr.RGBA()
	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = float32(cr) / 0xffff
		vs[i].ColorG = float32(cg) / 0xffff
		vs[i].ColorB = float32(cb) / 0xffff
		vs[i].ColorA = float32(ca) / 0xffff
	}
	dst.DrawTriangles(vs, is, whitePixel(), &ebiten.DrawTrianglesOptions{
		ColorScaleMode: ebiten.ColorScaleModePremultipliedAlpha,
		AntiAlias:      true,
	})
}

var white *ebiten.Image

func whitePixel() *ebiten.Image {
	if white == nil {
		white = ebiten.NewImage(3, 3)
		white.Fill(color.White)
	}
	return white
}

// drawButton draws a small labelled button.
func drawButton(dst *ebiten.Image, r image.Rectangle, label string, hovered, enabled bool) {
	bg := btnNorm
	fg := textNorm
	switch {
	case !enabled:
		bg, fg = btnDisabled, textDim
	case hovered:
		bg = btnHover
	}
	vector.DrawFilledRect(dst, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), bg, false)
	drawBevelRect(dst, r, color.RGBA{90, 110, 90, 200}, color.RGBA{10, 16, 10, 200})
	drawTextCentered(dst, label, r, fg)
}
