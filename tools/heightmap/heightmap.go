package main

import (
	"image"
	"image/color"
	"math"

	xdraw "golang.org/x/image/draw"

	"github.com/1siamBot/forest-scene/engine/scenery"
)

// renderHeights samples the terrain on a res×res grid and shades each
// sample from dark (lowest possible) to light (highest possible) in the
// terrain colour. Trees are marked with their trunk colour.
func renderHeights(t *scenery.Terrain, f *scenery.Forest, res int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, res, res))
	// |h| is bounded by 1.4·amplitude
	peak := 1.4 * t.Amplitude
	if peak <= 0 {
		peak = 1
	}
	half := t.Size / 2
	cell := t.Size / float64(res)
	for py := 0; py < res; py++ {
		for px := 0; px < res; px++ {
			x := -half + (float64(px)+0.5)*cell
			z := -half + (float64(py)+0.5)*cell
			shade := 0.35 + 0.65*(t.HeightAt(x, z)+peak)/(2*peak)
			img.SetRGBA(px, py, toRGBA(t.Color.R*shade, t.Color.G*shade, t.Color.B*shade))
		}
	}
	if f != nil {
		trunk := f.Color(scenery.PartTrunk)
		for _, tr := range f.Trees {
			px := int(math.Floor((tr.X + half) / cell))
			py := int(math.Floor((tr.Z + half) / cell))
			if image.Pt(px, py).In(img.Bounds()) {
				img.SetRGBA(px, py, toRGBA(trunk.R, trunk.G, trunk.B))
			}
		}
	}
	return img
}

// upscale resizes src to size×size with Catmull-Rom filtering.
func upscale(src image.Image, size int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Over, nil)
	return dst
}

func toRGBA(r, g, b float64) color.RGBA {
	c := func(v float64) uint8 { return uint8(math.Round(math.Max(0, math.Min(1, v)) * 255)) }
	return color.RGBA{c(r), c(g), c(b), 255}
}
