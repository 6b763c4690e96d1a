package main

import (
	"errors"
	"image/color"
	"testing"
)

func TestParsePalette(t *testing.T) {
	got, err := ParsePalette(DefaultPalette)
	if err != nil {
		t.Fatalf("ParsePalette: %v", err)
	}
	want := []color.RGBA{
		{R: 0x0C, G: 0x39, B: 0xA0, A: 255},
		{R: 0xFF, G: 0x28, B: 0x28, A: 255},
		{R: 0xCF, G: 0x39, B: 0x8E, A: 255},
		{R: 0xFF, G: 0x7E, B: 0x14, A: 255},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d colors, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("color %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestParsePaletteErrors(t *testing.T) {
	tests := []struct {
		name  string
		input []string
	}{
		{"Empty", nil},
		{"Not hex", []string{"#0C39A0", "blue"}},
		{"Short", []string{"#FFF0"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParsePalette(tt.input)
			if !errors.Is(err, ErrBadPalette) {
				t.Errorf("error = %v, want ErrBadPalette", err)
			}
		})
	}
}

func TestBlendOver(t *testing.T) {
	bg := color.RGBA{A: 255}
	c := color.RGBA{R: 200, G: 100, B: 50, A: 255}

	if got := blendOver(bg, c, 0); got != bg {
		t.Errorf("alpha 0 = %v, want %v", got, bg)
	}
	if got := blendOver(bg, c, 1); got != c {
		t.Errorf("alpha 1 = %v, want %v", got, c)
	}
	half := blendOver(bg, c, 0.5)
	if half.R < 99 || half.R > 101 || half.G < 49 || half.G > 51 {
		t.Errorf("alpha 0.5 = %v, want about {100 50 25}", half)
	}
}

func TestFillColor(t *testing.T) {
	c := color.RGBA{R: 1, G: 2, B: 3, A: 255}
	if got := fillColor(c, MaxOpacity); got != (color.NRGBA{R: 1, G: 2, B: 3, A: 51}) {
		t.Errorf("fillColor = %v", got)
	}
	if got := fillColor(c, 0); got.A != 0 {
		t.Errorf("zero alpha fill = %v", got)
	}
}
