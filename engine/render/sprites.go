package render

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// SpriteSet holds the procedural textures the scene draws with.
type SpriteSet struct {
	// White is a solid texture for flat-coloured triangles.
	White *ebiten.Image
	// Glow is a soft round spot for flame billboards.
	Glow *ebiten.Image
	// Puff is a wider, softer spot for smoke billboards.
	Puff *ebiten.Image
}

const spriteSize = 32

// NewSpriteSet generates every sprite.
func NewSpriteSet() *SpriteSet {
	white := ebiten.NewImage(4, 4)
	white.Fill(color.White)
	return &SpriteSet{
		White: white,
		Glow:  ebiten.NewImageFromImage(radialSprite(spriteSize, 2.2)),
		Puff:  ebiten.NewImageFromImage(radialSprite(spriteSize, 1.2)),
	}
}

// radialSprite is a white disc whose alpha falls off as (1-r)^falloff.
// Pixels are premultiplied as ebiten expects.
func radialSprite(size int, falloff float64) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	c := float64(size-1) / 2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			r := math.Hypot(float64(x)-c, float64(y)-c) / c
			if r >= 1 {
				continue
			}
			a := uint8(math.Pow(1-r, falloff) * 255)
			img.SetRGBA(x, y, color.RGBA{a, a, a, a})
		}
	}
	return img
}
