package main

import (
	"image/png"
	"math/rand/v2"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/1siamBot/forest-scene/engine/render3d"
	"github.com/1siamBot/forest-scene/engine/scenery"
)

func TestRenderHeightsShadesByHeight(t *testing.T) {
	terrain := scenery.NewTerrain(100, 5, render3d.Hex(0x44aa44))
	img := renderHeights(terrain, nil, 51)
	require.Equal(t, 51, img.Bounds().Dx())

	// brightness follows height: find the highest and lowest samples
	var hiG, loG uint8 = 0, 255
	for y := 0; y < 51; y++ {
		for x := 0; x < 51; x++ {
			g := img.RGBAAt(x, y).G
			hiG = max(hiG, g)
			loG = min(loG, g)
		}
	}
	assert.Greater(t, hiG, loG)
	assert.Equal(t, uint8(255), img.RGBAAt(0, 0).A)
}

func TestRenderHeightsMarksTrees(t *testing.T) {
	terrain := scenery.NewTerrain(100, 5, render3d.Hex(0x44aa44))
	rng := rand.New(rand.NewPCG(3, 0))
	forest := scenery.Plant(10, terrain, rng, render3d.Hex(0xff0000), render3d.Hex(0x00ff00))
	img := renderHeights(terrain, forest, 100)

	red := 0
	for y := 0; y < 100; y++ {
		for x := 0; x < 100; x++ {
			if img.RGBAAt(x, y) == toRGBA(1, 0, 0) {
				red++
			}
		}
	}
	assert.Positive(t, red)
	assert.LessOrEqual(t, red, 10)
}

func TestRunWritesPNG(t *testing.T) {
	out := filepath.Join(t.TempDir(), "h.png")
	require.NoError(t, run([]string{"-out", out, "-seed", "5", "-trees", "20", "-size", "64"}))

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 64, img.Bounds().Dx())

	assert.Error(t, run([]string{"-out", out, "-res", "1"}))
}
