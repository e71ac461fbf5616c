// Command heightmap renders a top-down preview of the scene's terrain and
// tree layout to a PNG. It reads the same FOREST_* variables and flags as
// the viewer, plus -out, -res and -size.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image/png"
	"log"
	"math/rand/v2"
	"os"
	"time"

	"github.com/1siamBot/forest-scene/engine/core"
	"github.com/1siamBot/forest-scene/engine/scenery"
	"github.com/1siamBot/forest-scene/engine/settings"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		log.Fatal(err)
	}
}

func run(args []string) error {
	s, err := settings.FromEnv()
	if err != nil {
		return err
	}
	fs := flag.NewFlagSet("heightmap", flag.ContinueOnError)
	s.Bind(fs)
	out := fs.String("out", "heightmap.png", "output PNG path")
	res := fs.Int("res", scenery.TerrainSegments+1, "samples per side")
	size := fs.Int("size", 512, "output image size in pixels")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := s.Validate(); err != nil {
		return err
	}
	if *res < 2 || *size < *res {
		return fmt.Errorf("heightmap: need 2 <= res <= size, got res=%d size=%d", *res, *size)
	}
	logger := core.NewDefaultLogger("heightmap", s.Debug)

	seed := uint64(s.Seed)
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewPCG(seed, 0))
	terrain := scenery.NewTerrain(s.TerrainSize, s.TerrainHeight, s.TerrainColor.Color3())
	forest := scenery.Plant(s.TreeCount, terrain, rng, s.TrunkColor.Color3(), s.LeavesColor.Color3())

	img := upscale(renderHeights(terrain, forest, *res), *size)
	f, err := os.Create(*out)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	logger.Infof("wrote %s (%dx%d, seed %d, %d trees)", *out, *size, *size, seed, forest.Len())
	return nil
}
