package main

import (
	"errors"
	"fmt"
	"image/color"
	"math/rand"
)

// ErrCannotPlace is returned by Init when MaxPlacementAttempts is set and a
// particle could not be placed without overlap within that many draws.
var ErrCannotPlace = errors.New("cannot place particles without overlap")

// Field owns the particle population and the viewport it lives in
type Field struct {
	Width, Height float64
	Particles     []*Particle

	count       int
	radius      float64
	mass        float64
	palette     []color.RGBA
	maxAttempts int
	rng         *rand.Rand
	ctx         Context
}

// NewField creates an empty field. Call Init to populate it.
func NewField(cfg Config, palette []color.RGBA, rng *rand.Rand) *Field {
	return &Field{
		count:       cfg.Count,
		radius:      cfg.Radius,
		mass:        cfg.Mass,
		palette:     palette,
		maxAttempts: cfg.MaxPlacementAttempts,
		rng:         rng,
	}
}

// Init discards the current population and places a fresh one in a
// width x height viewport. Centers are rejection sampled until they clear
// every particle already placed. On error the previous population and
// viewport are left untouched.
//
// With no attempt cap this never returns for a count and radius that cannot
// fit the viewport; choosing a feasible combination is up to the caller.
// A viewport narrower than a particle's diameter is not rejected either: its
// centers land outside the viewport on that axis.
func (f *Field) Init(width, height float64) error {
	placed := make([]*Particle, 0, f.count)

	for i := 0; i < f.count; i++ {
		x, y, err := f.place(placed, width, height, f.radius)
		if err != nil {
			return fmt.Errorf("particle %d of %d in %.0fx%.0f: %w", i+1, f.count, width, height, err)
		}
		c := f.palette[f.rng.Intn(len(f.palette))]
		placed = append(placed, NewParticle(x, y, f.radius, f.mass, c, f.rng))
	}

	f.Width, f.Height = width, height
	f.Particles = placed
	return nil
}

// place draws a center for a new particle of radius r that does not overlap
// any of placed
func (f *Field) place(placed []*Particle, width, height, r float64) (float64, float64, error) {
	x, y := f.sample(width, height, r)
	attempts := 1
	for j := 0; j < len(placed); j++ {
		other := placed[j]
		if Distance(x, y, other.Pos.X, other.Pos.Y)-(r+other.Radius) < 0 {
			if f.maxAttempts > 0 && attempts >= f.maxAttempts {
				return 0, 0, ErrCannotPlace
			}
			x, y = f.sample(width, height, r)
			attempts++
			j = -1
		}
	}
	return x, y, nil
}

func (f *Field) sample(width, height, r float64) (float64, float64) {
	x := f.rng.Float64()*(width-2*r) + r
	y := f.rng.Float64()*(height-2*r) + r
	return x, y
}

// Resize rebuilds the field when the viewport changed. Returns true if it did.
func (f *Field) Resize(width, height float64) (bool, error) {
	if width == f.Width && height == f.Height && f.Particles != nil {
		return false, nil
	}
	return true, f.Init(width, height)
}

// Step updates every particle once against the whole field
func (f *Field) Step(ptr Pointer) {
	f.ctx = Context{Width: f.Width, Height: f.Height, Pointer: ptr}
	for _, p := range f.Particles {
		p.Update(&f.ctx, f.Particles)
	}
}

// Draw renders every particle without touching its state
func (f *Field) Draw(s Surface) {
	for _, p := range f.Particles {
		p.Draw(s)
	}
}

// Animate runs one full frame: clear, then draw and update each particle in
// turn.
func (f *Field) Animate(s Surface, ptr Pointer) {
	f.ctx = Context{Width: f.Width, Height: f.Height, Pointer: ptr}
	s.Clear()
	for _, p := range f.Particles {
		p.Draw(s)
		p.Update(&f.ctx, f.Particles)
	}
}
