package main

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrBadPalette reports an unusable palette configuration
var ErrBadPalette = errors.New("bad palette")

// DefaultPalette is the stock set of particle colors
var DefaultPalette = []string{
	"#0C39A0",
	"#FF2828",
	"#CF398E",
	"#FF7E14",
}

// ParsePalette converts hex color strings into opaque RGBA values
func ParsePalette(hexes []string) ([]color.RGBA, error) {
	if len(hexes) == 0 {
		return nil, fmt.Errorf("%w: no colors", ErrBadPalette)
	}
	out := make([]color.RGBA, 0, len(hexes))
	for i, h := range hexes {
		c, err := colorful.Hex(h)
		if err != nil {
			return nil, fmt.Errorf("%w: entry %d %q: %v", ErrBadPalette, i, h, err)
		}
		r, g, b := c.RGB255()
		out = append(out, color.RGBA{R: r, G: g, B: b, A: 255})
	}
	return out, nil
}

// blendOver composites c at alpha over bg
func blendOver(bg, c color.RGBA, alpha float64) color.RGBA {
	under, _ := colorful.MakeColor(bg)
	over, _ := colorful.MakeColor(c)
	r, g, b := under.BlendRgb(over, alpha).Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
