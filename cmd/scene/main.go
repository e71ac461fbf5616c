package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/1siamBot/forest-scene/engine/core"
	"github.com/1siamBot/forest-scene/engine/input"
	"github.com/1siamBot/forest-scene/engine/render"
	"github.com/1siamBot/forest-scene/engine/scene"
	"github.com/1siamBot/forest-scene/engine/settings"
	"github.com/1siamBot/forest-scene/engine/ui"
)

// Game implements ebiten.Game interface
type Game struct {
	scene    *scene.SceneContext
	renderer *render.SceneRenderer
	panel    *ui.SettingsPanel
	overlay  *ui.Overlay
	input    *input.InputState
	sound    *sceneSound
	log      core.Logger

	showOverview bool
	screenW      int
	screenH      int
}

func NewGame(s *settings.Settings, logger core.Logger) (*Game, error) {
	sc, err := scene.New(s, scene.Options{Logger: logger})
	if err != nil {
		return nil, err
	}
	g := &Game{
		scene:        sc,
		renderer:     render.NewSceneRenderer(),
		panel:        ui.NewSettingsPanel(s, sc),
		overlay:      ui.NewOverlay(sc),
		input:        input.NewInputState(),
		log:          logger,
		showOverview: true,
		screenW:      s.Width,
		screenH:      s.Height,
	}

	snd, err := newSceneSound(sc.Seed())
	if err != nil {
		logger.Warnf("audio disabled: %v", err)
	} else {
		g.sound = snd
		sc.Events.On(core.EvtSimStarted, func(core.Event) { snd.Play() })
		sc.Events.On(core.EvtSimPaused, func(core.Event) { snd.Pause() })
		if sc.Playing() {
			snd.Play()
		}
	}
	sc.Events.On(core.EvtSettingChanged, func(e core.Event) {
		logger.Debugf("event %s %v at tick %d", e.Type, e.Payload, e.Tick)
	})
	return g, nil
}

func (g *Game) Update() error {
	g.input.Update()
	if g.input.IsKeyJustPressed(input.KeyQuit) {
		return ebiten.Termination
	}

	overPanel := g.panel.Update(g.input, g.screenW, g.screenH)
	if !overPanel {
		g.overlay.Update(g.input, g.screenW, g.screenH)
	} else if g.input.IsKeyJustPressed(input.KeyToggleStats) {
		g.overlay.ShowStats = !g.overlay.ShowStats
	}

	if g.input.IsKeyJustPressed(input.KeyToggleSim) {
		g.scene.Toggle()
	}
	if g.input.IsKeyJustPressed(input.KeyToggleOverview) {
		g.showOverview = !g.showOverview
	}
	if g.input.IsKeyJustPressed(input.KeyMute) {
		g.scene.Mixer.Muted = !g.scene.Mixer.Muted
		g.log.Infof("muted: %v", g.scene.Mixer.Muted)
	}

	g.scene.Frame()
	if g.sound != nil {
		g.sound.SetLevels(g.scene.CrackleGain(), g.scene.AmbientGain())
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.scene)
	if g.showOverview {
		g.renderer.DrawOverview(screen, g.scene, 10, 30, 160)
	}
	g.panel.Draw(screen)

	st := g.renderer.Stats
	g.overlay.Draw(screen, ui.FrameStats{
		Triangles: st.Triangles,
		Culled:    st.Culled,
		Fire:      st.Fire,
		Smoke:     st.Smoke,
		Trees:     g.scene.Forest.Len(),
		Clouds:    g.scene.Sky.Len(),
		Tick:      g.scene.Loop.CurrentTick(),
		Seed:      g.scene.Seed(),
	})
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.screenW, g.screenH = outsideWidth, outsideHeight
	g.scene.Resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func main() {
	s, err := settings.Load(os.Args[0], os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		settings.Usage(os.Stderr, os.Args[0])
		return
	}
	if err != nil {
		log.Fatal(err)
	}
	logger := core.NewDefaultLogger("forest", s.Debug)

	ebiten.SetWindowSize(s.Width, s.Height)
	ebiten.SetWindowTitle("Forest Scene")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetVsyncEnabled(true)
	ebiten.SetTPS(s.TPS)

	game, err := NewGame(s, logger)
	if err != nil {
		log.Fatal(err)
	}

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
