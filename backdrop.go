package main

import (
	"image/color"

	"github.com/aquilax/go-perlin"
)

// Backdrop parameters
const (
	backdropDrift = 0.004 // Noise units per frame
	backdropLevel = 28.0  // Peak channel value, keeps the tint dark
)

// Backdrop produces a slowly drifting dark background color from Perlin
// noise. It only affects the clear color, never the particles.
type Backdrop struct {
	noise *perlin.Perlin
	t     float64
}

// NewBackdrop creates a backdrop seeded for reproducible drift
func NewBackdrop(seed int64) *Backdrop {
	return &Backdrop{noise: perlin.NewPerlin(2, 2, 3, seed)}
}

// Advance moves the backdrop one frame forward
func (b *Backdrop) Advance() {
	b.t += backdropDrift
}

// Color returns the current tint
func (b *Backdrop) Color() color.RGBA {
	return color.RGBA{
		R: b.channel(0),
		G: b.channel(17),
		B: b.channel(41),
		A: 255,
	}
}

func (b *Backdrop) channel(offset float64) uint8 {
	// Noise2D is roughly in [-1, 1]
	v := (b.noise.Noise2D(b.t, offset) + 1) / 2
	if v < 0 {
		v = 0
	} else if v > 1 {
		v = 1
	}
	return uint8(v * backdropLevel)
}
