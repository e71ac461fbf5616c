package main

import (
	"fmt"
	"io"

	ebaudio "github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/1siamBot/forest-scene/engine/audio"
)

const sampleRate = 44100

// sceneSound streams the synthesized campfire crackle and the wind bed
// through ebiten's audio players. Levels are set on the streams, which the
// audio goroutine reads while filling buffers.
type sceneSound struct {
	crackle *audio.Crackle
	wind    *audio.Wind
	players []*ebaudio.Player
}

func newSceneSound(seed uint64) (*sceneSound, error) {
	ctx := ebaudio.NewContext(sampleRate)
	s := &sceneSound{
		crackle: audio.NewCrackle(seed),
		wind:    audio.NewWind(seed, sampleRate),
	}
	for name, stream := range map[string]io.Reader{"crackle": s.crackle, "wind": s.wind} {
		p, err := ctx.NewPlayer(stream)
		if err != nil {
			return nil, fmt.Errorf("%s player: %w", name, err)
		}
		s.players = append(s.players, p)
	}
	return s, nil
}

func (s *sceneSound) Play() {
	for _, p := range s.players {
		p.Play()
	}
}

func (s *sceneSound) Pause() {
	for _, p := range s.players {
		p.Pause()
	}
}

// SetLevels hands the scene's crackle and ambient gains to the streams.
func (s *sceneSound) SetLevels(crackle, ambient float64) {
	s.crackle.SetGain(crackle)
	s.wind.SetGain(ambient)
}
