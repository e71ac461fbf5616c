package ui

import (
	"image"
	"image/color"
	"math"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/1siamBot/forest-scene/engine/input"
	"github.com/1siamBot/forest-scene/engine/settings"
)

// Controller is what the panel drives: it applies changed settings and
// starts or pauses the simulation.
type Controller interface {
	Apply(key settings.Key) bool
	Toggle()
	Playing() bool
}

const (
	panelPadding = 10
	rowHeight    = 22
	buttonSize   = 16
	buttonGap    = 4
	swatchWidth  = 34
	startHeight  = 30
)

type rowKind uint8

const (
	rowFolder rowKind = iota
	rowControl
)

type panelRow struct {
	kind   rowKind
	folder string
	ctrl   settings.Control
	top    int

	minus, plus image.Rectangle
}

// SettingsPanel is the collapsible settings sidebar on the right edge of
// the window, with a start/pause button on top.
type SettingsPanel struct {
	Settings *settings.Settings
	Ctrl     Controller
	Width    int
	Visible  bool

	screenW, screenH int
	collapsed        map[string]bool
	rows             []panelRow
	scroll           int
	contentH         int
	startRect        image.Rectangle

	bg    *ebiten.Image
	panel *ebiten.Image
	mx    int
	my    int
}

// NewSettingsPanel builds a visible panel with every folder open.
func NewSettingsPanel(s *settings.Settings, ctrl Controller) *SettingsPanel {
	p := &SettingsPanel{
		Settings:  s,
		Ctrl:      ctrl,
		Width:     280,
		Visible:   true,
		collapsed: map[string]bool{},
	}
	p.layout()
	return p
}

// Bounds is the panel rectangle in screen space.
func (p *SettingsPanel) Bounds() image.Rectangle {
	if !p.Visible {
		return image.Rectangle{}
	}
	return image.Rect(p.screenW-p.Width, 0, p.screenW, p.screenH)
}

// Contains reports whether the screen point lies over the panel.
func (p *SettingsPanel) Contains(x, y int) bool {
	return image.Pt(x, y).In(p.Bounds())
}

func (p *SettingsPanel) layout() {
	p.rows = p.rows[:0]
	p.startRect = image.Rect(panelPadding, panelPadding, p.Width-panelPadding, panelPadding+startHeight)
	top := p.startRect.Max.Y + panelPadding
	controls := settings.Controls()
	for _, folder := range settings.Folders() {
		p.rows = append(p.rows, panelRow{kind: rowFolder, folder: folder, top: top})
		top += rowHeight
		if p.collapsed[folder] {
			continue
		}
		for _, c := range controls {
			if c.Folder != folder {
				continue
			}
			by := top + (rowHeight-buttonSize)/2
			plus := image.Rect(p.Width-panelPadding-buttonSize, by, p.Width-panelPadding, by+buttonSize)
			minus := image.Rect(plus.Min.X-buttonGap-buttonSize, by, plus.Min.X-buttonGap, by+buttonSize)
			p.rows = append(p.rows, panelRow{kind: rowControl, folder: folder, ctrl: c, top: top, minus: minus, plus: plus})
			top += rowHeight
		}
	}
	p.contentH = top + panelPadding
}

// Update handles clicks and scrolling. It reports whether the pointer is
// over the panel so the caller can ignore the event.
func (p *SettingsPanel) Update(in *input.InputState, screenW, screenH int) bool {
	p.screenW, p.screenH = screenW, screenH
	if in.IsKeyJustPressed(input.KeyTogglePanel) {
		p.Visible = !p.Visible
	}
	if !p.Visible || !p.Contains(in.MouseX, in.MouseY) {
		p.mx, p.my = -1, -1
		return false
	}
	p.mx = in.MouseX - (screenW - p.Width)
	p.my = in.MouseY + p.scroll

	if in.ScrollY != 0 {
		p.scroll -= int(in.ScrollY * rowHeight)
		p.scroll = max(0, min(p.scroll, max(0, p.contentH-screenH)))
	}

	click := image.Pt(p.mx, p.my)
	if in.LeftJustPressed && click.In(p.startRect) {
		p.Ctrl.Toggle()
		return true
	}
	for _, r := range p.rows {
		switch r.kind {
		case rowFolder:
			header := image.Rect(0, r.top, p.Width, r.top+rowHeight)
			if in.LeftJustPressed && click.In(header) {
				p.collapsed[r.folder] = !p.collapsed[r.folder]
				p.layout()
				return true
			}
		case rowControl:
			dir := 0
			switch {
			case click.In(r.minus):
				dir = -1
			case click.In(r.plus):
				dir = 1
			}
			if dir != 0 && in.LeftRepeat {
				p.adjust(r.ctrl, dir)
				return true
			}
		}
	}
	return true
}

func (p *SettingsPanel) adjust(c settings.Control, dir int) {
	var changed bool
	if c.Type == settings.ControlColor {
		changed = p.Settings.CycleColor(c.Key, dir)
	} else {
		changed = p.Settings.Step(c.Key, dir)
	}
	if changed {
		p.Ctrl.Apply(c.Key)
	}
}

func (p *SettingsPanel) canAdjust(c settings.Control, dir int) bool {
	if c.Type == settings.ControlColor {
		return true
	}
	v, ok := p.Settings.Value(c.Key)
	if !ok {
		return false
	}
	if dir < 0 {
		return v > c.Min+c.Step*1e-6
	}
	return v < c.Max-c.Step*1e-6
}

// Draw paints the panel onto screen.
func (p *SettingsPanel) Draw(screen *ebiten.Image) {
	if !p.Visible || p.screenH <= 0 {
		return
	}
	if p.panel == nil || p.panel.Bounds().Dy() != p.screenH || p.panel.Bounds().Dx() != p.Width {
		p.panel = ebiten.NewImage(p.Width, p.screenH)
		p.bg = generatePanelTexture(p.Width, p.screenH)
	}
	p.panel.Clear()
	p.panel.DrawImage(p.bg, nil)

	p.drawStart()
	for _, r := range p.rows {
		y := r.top - p.scroll
		if y+rowHeight < 0 || y > p.screenH {
			continue
		}
		if r.kind == rowFolder {
			p.drawFolder(r, y)
		} else {
			p.drawControl(r, y)
		}
	}
	vector.StrokeLine(p.panel, 0.5, 0, 0.5, float32(p.screenH), 1, panelBorder, false)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(p.screenW-p.Width), 0)
	screen.DrawImage(p.panel, op)
}

func (p *SettingsPanel) drawStart() {
	r := p.startRect.Sub(image.Pt(0, p.scroll))
	label, clr := "START", playGreen
	if p.Ctrl.Playing() {
		label, clr = "PAUSE", pauseAmber
	}
	drawRoundedRect(p.panel, r, 6, clr)
	if image.Pt(p.mx, p.my-p.scroll).In(r) {
		drawBevelRect(p.panel, r, panelAccent, panelBorder)
	}
	drawTextCentered(p.panel, label, r, color.White)
}

func (p *SettingsPanel) drawFolder(r panelRow, y int) {
	vector.DrawFilledRect(p.panel, 0, float32(y), float32(p.Width), rowHeight-2, folderBG, false)
	chevron := "v"
	if p.collapsed[r.folder] {
		chevron = ">"
	}
	drawText(p.panel, chevron+" "+r.folder, panelPadding, y+15, textHeader)
}

func (p *SettingsPanel) drawControl(r panelRow, y int) {
	dy := y - r.top
	minus, plus := r.minus.Add(image.Pt(0, dy)), r.plus.Add(image.Pt(0, dy))
	drawText(p.panel, r.ctrl.Label, panelPadding+8, y+15, textNorm)

	hover := image.Pt(p.mx, p.my-p.scroll)
	if r.ctrl.Type == settings.ControlColor {
		c, _ := p.Settings.ColorValue(r.ctrl.Key)
		sw := image.Rect(minus.Min.X-buttonGap-swatchWidth, minus.Min.Y, minus.Min.X-buttonGap, minus.Max.Y)
		rgb := c.Color3()
		vector.DrawFilledRect(p.panel, float32(sw.Min.X), float32(sw.Min.Y), float32(sw.Dx()), float32(sw.Dy()),
			color.RGBA{uint8(rgb.R * 255), uint8(rgb.G * 255), uint8(rgb.B * 255), 255}, false)
		drawBevelRect(p.panel, sw, textNorm, panelBorder)
		drawButton(p.panel, minus, "<", hover.In(minus), true)
		drawButton(p.panel, plus, ">", hover.In(plus), true)
		return
	}

	v, _ := p.Settings.Value(r.ctrl.Key)
	value := formatValue(r.ctrl, v)
	drawText(p.panel, value, minus.Min.X-buttonGap-textWidth(value), y+15, textNorm)
	drawButton(p.panel, minus, "-", hover.In(minus), p.canAdjust(r.ctrl, -1))
	drawButton(p.panel, plus, "+", hover.In(plus), p.canAdjust(r.ctrl, 1))
}

// formatValue prints v with as many decimals as the control step needs.
func formatValue(c settings.Control, v float64) string {
	if c.Type == settings.ControlInt {
		return strconv.Itoa(int(math.Round(v)))
	}
	decimals := 0
	for step := c.Step; decimals < 6 && math.Abs(step-math.Round(step)) > 1e-9; step *= 10 {
		decimals++
	}
	return strconv.FormatFloat(v, 'f', decimals, 64)
}
