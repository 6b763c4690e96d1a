package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Surface receives draw calls for one frame
type Surface interface {
	// Clear blanks the whole surface
	Clear()
	// Circle strokes a circle in stroke and fills it with the same color at
	// fillAlpha (0..1)
	Circle(x, y, r float64, stroke color.RGBA, fillAlpha float64)
}

// fillColor returns c at the given straight alpha
func fillColor(c color.RGBA, alpha float64) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(alpha*255 + 0.5)}
}

// ebitenSurface draws onto an ebiten image
type ebitenSurface struct {
	img        *ebiten.Image
	background color.Color // nil clears to transparent
}

func (s *ebitenSurface) Clear() {
	if s.background == nil {
		s.img.Clear()
		return
	}
	s.img.Fill(s.background)
}

func (s *ebitenSurface) Circle(x, y, r float64, stroke color.RGBA, fillAlpha float64) {
	cx, cy, cr := float32(x), float32(y), float32(r)
	if fillAlpha > 0 {
		vector.DrawFilledCircle(s.img, cx, cy, cr, fillColor(stroke, fillAlpha), true)
	}
	vector.StrokeCircle(s.img, cx, cy, cr, 1, stroke, true)
}
