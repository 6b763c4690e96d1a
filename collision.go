package main

import "math"

// RotateVelocity rotates v by angle radians
func RotateVelocity(v Vec2, angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	return Vec2{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// ResolveCollision exchanges momentum between two touching particles along
// the line joining their centers. Velocities are left alone when the pair is
// already separating.
func ResolveCollision(a, b *Particle) {
	dvx := a.Vel.X - b.Vel.X
	dvy := a.Vel.Y - b.Vel.Y

	dx := b.Pos.X - a.Pos.X
	dy := b.Pos.Y - a.Pos.Y

	if dvx*dx+dvy*dy < 0 {
		return
	}

	// Rotate into a frame where the line of centers is the x axis
	angle := -math.Atan2(dy, dx)

	m1, m2 := a.Mass, b.Mass
	total := m1 + m2

	u1 := RotateVelocity(a.Vel, angle)
	u2 := RotateVelocity(b.Vel, angle)

	// 1D elastic exchange on x, tangential y untouched
	v1 := Vec2{X: u1.X*(m1-m2)/total + u2.X*2*m2/total, Y: u1.Y}
	v2 := Vec2{X: u2.X*(m2-m1)/total + u1.X*2*m1/total, Y: u2.Y}

	a.Vel = RotateVelocity(v1, -angle)
	b.Vel = RotateVelocity(v2, -angle)
}
