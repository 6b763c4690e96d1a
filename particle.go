package main

import (
	"image/color"
	"math"
	"math/rand"
)

// Pointer highlight parameters
const (
	HighlightRadius = 90.0 // Pointer distance under which a particle brightens
	OpacityStep     = 0.02 // Opacity change per tick
	MaxOpacity      = 0.2  // Highlight fill ceiling
)

// Particle is a single circle of the field
type Particle struct {
	Pos     Vec2
	Vel     Vec2
	Radius  float64
	Mass    float64
	Color   color.RGBA
	Opacity float64 // Highlight fill alpha, 0..MaxOpacity
}

// Context is the per-frame view of the outside world a particle reacts to
type Context struct {
	Width, Height float64
	Pointer       Pointer
}

// NewParticle places a particle at (x, y) with a random velocity in
// [-0.5, 0.5) on each axis.
func NewParticle(x, y, radius, mass float64, c color.RGBA, rng *rand.Rand) *Particle {
	return &Particle{
		Pos:    Vec2{X: x, Y: y},
		Vel:    Vec2{X: rng.Float64() - 0.5, Y: rng.Float64() - 0.5},
		Radius: radius,
		Mass:   mass,
		Color:  c,
	}
}

// Draw renders the outline and the highlight fill
func (p *Particle) Draw(s Surface) {
	s.Circle(p.Pos.X, p.Pos.Y, p.Radius, p.Color, p.Opacity)
}

// Update advances the particle by one frame: collisions against every other
// particle in field, wall bounce, integration, then the pointer highlight.
//
// A touching pair is visited from both sides within a frame, so it can be
// resolved twice if it still overlaps and approaches after the first pass.
func (p *Particle) Update(ctx *Context, field []*Particle) {
	for _, other := range field {
		if other == p {
			continue
		}
		d := Distance(p.Pos.X, p.Pos.Y, other.Pos.X, other.Pos.Y)
		if d-(p.Radius+other.Radius) <= 0 {
			ResolveCollision(p, other)
		}
	}

	if p.Pos.X+p.Radius > ctx.Width || p.Pos.X-p.Radius < 0 {
		p.Vel.X = -p.Vel.X
	}
	if p.Pos.Y+p.Radius > ctx.Height || p.Pos.Y-p.Radius < 0 {
		p.Vel.Y = -p.Vel.Y
	}

	p.Pos.X += p.Vel.X
	p.Pos.Y += p.Vel.Y

	p.updateOpacity(ctx.Pointer)
}

func (p *Particle) updateOpacity(ptr Pointer) {
	d, ok := ptr.DistanceTo(p.Pos.X, p.Pos.Y)
	if ok && d < HighlightRadius && p.Opacity < MaxOpacity {
		p.Opacity = math.Min(p.Opacity+OpacityStep, MaxOpacity)
	} else if p.Opacity > 0 {
		p.Opacity = math.Max(p.Opacity-OpacityStep, 0)
	}
}
