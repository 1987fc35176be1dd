package main

import (
	"math"
	"math/rand"
)

// Step advances every particle of f by one frame. Only the name field moves;
// the shatter variant holds its particles in place.
func Step(f *Field, rng *rand.Rand) {
	if f.Variant != VariantNameField {
		return
	}
	radius := f.Profile().RepulsionRadius
	for i := range f.Particles {
		stepParticle(&f.Particles[i], f.Pointer, radius, rng)
	}
}

func stepParticle(p *Particle, pointer Vec, radius float64, rng *rand.Rand) {
	dx := pointer.X - p.Pos.X
	dy := pointer.Y - p.Pos.Y
	dist := math.Hypot(dx, dy)

	if dist < radius {
		force := (radius - dist) / radius
		randomForce := rng.Float64()*repulsionRandSpan + repulsionRandMin
		scatter := rng.Float64()*scatterSpan + scatterMin
		angle := math.Atan2(dy, dx) + (rng.Float64()-0.5)*angleJitter

		// angle points at the pointer, so the impulse is negated
		p.Vel.X -= math.Cos(angle) * force * scatter * randomForce
		p.Vel.Y -= math.Sin(angle) * force * scatter * randomForce

		p.Vel.X += math.Cos(angle+math.Pi/2) * (rng.Float64() - 0.5) * perpendicularSpan
		p.Vel.Y += math.Sin(angle+math.Pi/2) * (rng.Float64() - 0.5) * perpendicularSpan
	}

	p.Vel.X += (p.Target.X - p.Pos.X) * springFactor
	p.Vel.Y += (p.Target.Y - p.Pos.Y) * springFactor

	p.Vel.X *= frictionFactor
	p.Vel.Y *= frictionFactor

	p.Pos.X += p.Vel.X
	p.Pos.Y += p.Vel.Y
}
