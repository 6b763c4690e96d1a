package main

import (
	"image/color"
	"math"
	"math/rand"
	"testing"
)

func TestNewParticleVelocityRange(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 1000; i++ {
		p := NewParticle(0, 0, 15, 1, color.RGBA{A: 255}, rng)
		if p.Vel.X < -0.5 || p.Vel.X >= 0.5 || p.Vel.Y < -0.5 || p.Vel.Y >= 0.5 {
			t.Fatalf("velocity %v outside [-0.5, 0.5)", p.Vel)
		}
		if p.Opacity != 0 {
			t.Fatalf("new particle opacity = %v", p.Opacity)
		}
	}
}

func TestWallBounce(t *testing.T) {
	ctx := &Context{Width: 100, Height: 100}
	tests := []struct {
		name    string
		pos     Vec2
		vel     Vec2
		wantVel Vec2
	}{
		{"Right wall", Vec2{95, 50}, Vec2{1, 0.3}, Vec2{-1, 0.3}},
		{"Left wall", Vec2{5, 50}, Vec2{-1, 0.3}, Vec2{1, 0.3}},
		{"Bottom wall", Vec2{50, 95}, Vec2{0.3, 1}, Vec2{0.3, -1}},
		{"Top wall", Vec2{50, 5}, Vec2{0.3, -1}, Vec2{0.3, 1}},
		{"Corner", Vec2{95, 95}, Vec2{1, 1}, Vec2{-1, -1}},
		{"Touching is not beyond", Vec2{90, 50}, Vec2{0.5, 0}, Vec2{0.5, 0}},
		{"Interior", Vec2{50, 50}, Vec2{0.2, -0.4}, Vec2{0.2, -0.4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &Particle{Pos: tt.pos, Vel: tt.vel, Radius: 10, Mass: 1}
			p.Update(ctx, []*Particle{p})

			if p.Vel != tt.wantVel {
				t.Errorf("Vel = %v, want %v", p.Vel, tt.wantVel)
			}
			want := Vec2{tt.pos.X + tt.wantVel.X, tt.pos.Y + tt.wantVel.Y}
			if !nearVec(p.Pos, want) {
				t.Errorf("Pos = %v, want %v", p.Pos, want)
			}
		})
	}
}

func TestOpacityRisesUnderPointer(t *testing.T) {
	p := &Particle{Pos: Vec2{50, 50}, Radius: 15, Mass: 1}
	f := &Field{Width: 100, Height: 100, Particles: []*Particle{p}}
	ptr := Pointer{X: 50, Y: 50, Valid: true}

	for i := 0; i < 10; i++ {
		f.Step(ptr)
	}

	if math.Abs(p.Opacity-math.Min(MaxOpacity, 10*OpacityStep)) > eps {
		t.Errorf("opacity after 10 ticks = %v, want %v", p.Opacity, MaxOpacity)
	}
	if p.Pos != (Vec2{50, 50}) {
		t.Errorf("resting particle moved to %v", p.Pos)
	}
}

func TestOpacityDecays(t *testing.T) {
	p := &Particle{Pos: Vec2{50, 50}, Radius: 15, Mass: 1, Opacity: 0.05}
	ctx := &Context{Width: 100, Height: 100, Pointer: Pointer{X: 500, Y: 500, Valid: true}}

	want := []float64{0.03, 0.01, 0, 0}
	for i, w := range want {
		p.Update(ctx, nil)
		if math.Abs(p.Opacity-w) > eps {
			t.Fatalf("tick %d: opacity = %v, want %v", i+1, p.Opacity, w)
		}
	}
}

func TestOpacityIgnoresUnsetPointer(t *testing.T) {
	p := &Particle{Pos: Vec2{0, 0}, Radius: 15, Mass: 1}
	ctx := &Context{Width: 100, Height: 100}

	for i := 0; i < 5; i++ {
		p.Update(ctx, nil)
	}
	if p.Opacity != 0 {
		t.Errorf("opacity = %v with no pointer", p.Opacity)
	}
}

func TestOpacityStaysInRange(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	p := &Particle{Pos: Vec2{50, 50}, Radius: 15, Mass: 1}
	ctx := &Context{Width: 100, Height: 100}

	for frame := 0; frame < 2000; frame++ {
		switch rng.Intn(3) {
		case 0:
			ctx.Pointer = Pointer{}
		case 1:
			ctx.Pointer = Pointer{X: p.Pos.X, Y: p.Pos.Y, Valid: true}
		default:
			ctx.Pointer = Pointer{X: rng.Float64() * 400, Y: rng.Float64() * 400, Valid: true}
		}
		p.Update(ctx, nil)
		if p.Opacity < 0 || p.Opacity > MaxOpacity {
			t.Fatalf("frame %d: opacity %v outside [0, %v]", frame, p.Opacity, MaxOpacity)
		}
	}
}

func TestUpdateSkipsSelf(t *testing.T) {
	p := &Particle{Pos: Vec2{50, 50}, Vel: Vec2{0.25, 0.1}, Radius: 15, Mass: 1}
	p.Update(&Context{Width: 100, Height: 100}, []*Particle{p})

	if p.Vel != (Vec2{0.25, 0.1}) {
		t.Errorf("self collision changed velocity to %v", p.Vel)
	}
}

func TestParticleDraw(t *testing.T) {
	rec := &recordingSurface{}
	c := color.RGBA{R: 0xFF, G: 0x28, B: 0x28, A: 255}
	p := &Particle{Pos: Vec2{12, 34}, Radius: 15, Color: c, Opacity: 0.1}

	p.Draw(rec)

	if len(rec.circles) != 1 {
		t.Fatalf("got %d circles, want 1", len(rec.circles))
	}
	got := rec.circles[0]
	if got != (circleCall{X: 12, Y: 34, R: 15, Stroke: c, Alpha: 0.1}) {
		t.Errorf("circle = %+v", got)
	}
}
