package main

import (
	"math"
	"math/rand"
	"testing"
)

func singleParticleField(width float64, p Particle) *Field {
	f := NewField(VariantNameField, width, 600)
	f.Particles = []Particle{p}
	return f
}

func TestSpringReturnsToTarget(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	p := newParticle(100, 100, ClassNormal)
	p.Pos = Vec{200, 150}
	f := singleParticleField(1024, p)

	settled := -1
	for frame := 0; frame < 200; frame++ {
		Step(f, rng)
		q := f.Particles[0]
		if q.Pos.Dist(q.Target) < 1 && settled < 0 {
			settled = frame
		}
	}
	if settled < 0 {
		t.Fatalf("particle never came within 1 of its target: %+v", f.Particles[0])
	}
	q := f.Particles[0]
	if d := q.Pos.Dist(q.Target); d > 0.01 {
		t.Fatalf("after 200 frames distance = %v, want ~0", d)
	}
	if v := q.Vel.Len(); v > 0.01 {
		t.Fatalf("after 200 frames speed = %v, want ~0", v)
	}
}

func TestSpringEnvelopeShrinks(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	p := newParticle(0, 0, ClassNormal)
	p.Pos = Vec{80, -60}
	f := singleParticleField(1024, p)

	// the motion is underdamped, so compare the peak over successive windows
	prevPeak := math.Inf(1)
	for window := 0; window < 6; window++ {
		peak := 0.0
		for i := 0; i < 25; i++ {
			Step(f, rng)
			peak = math.Max(peak, f.Particles[0].Pos.Len())
		}
		if peak >= prevPeak {
			t.Fatalf("window %d: peak displacement %v did not shrink from %v", window, peak, prevPeak)
		}
		prevPeak = peak
	}
}

func TestNoRepulsionOutsideRadius(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	p := newParticle(300, 300, ClassNormal)
	f := singleParticleField(1024, p)
	radius := f.Profile().RepulsionRadius
	f.Pointer = Vec{300 + radius, 300}

	Step(f, rng)
	if got := f.Particles[0]; got.Pos != got.Target || got.Vel != (Vec{}) {
		t.Fatalf("particle at rest outside the radius moved: %+v", got)
	}

	displaced := newParticle(300, 300, ClassNormal)
	displaced.Pos = Vec{310, 290}
	f.Particles = []Particle{displaced}
	f.Pointer = Vec{310 + radius + 0.5, 290}
	Step(f, rng)

	wantVel := Vec{-10 * springFactor * frictionFactor, 10 * springFactor * frictionFactor}
	got := f.Particles[0]
	if math.Abs(got.Vel.X-wantVel.X) > 1e-9 || math.Abs(got.Vel.Y-wantVel.Y) > 1e-9 {
		t.Fatalf("velocity = %+v, want spring and friction only %+v", got.Vel, wantVel)
	}
}

func TestPointerOnTargetPushes(t *testing.T) {
	for _, width := range []float64{400, 1024} {
		rng := rand.New(rand.NewSource(3))
		p := newParticle(50, 50, ClassNormal)
		f := singleParticleField(width, p)
		f.Pointer = p.Target

		Step(f, rng)
		if d := f.Particles[0].Pos.Dist(p.Target); d < 0.5 {
			t.Fatalf("width %v: pointer on the particle moved it only %v", width, d)
		}
	}
}

func TestRepulsionPushesAway(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		rng := rand.New(rand.NewSource(seed))
		f := singleParticleField(1024, newParticle(100, 100, ClassNormal))
		f.Pointer = Vec{95, 100}

		Step(f, rng)
		if x := f.Particles[0].Pos.X; x <= 100 {
			t.Fatalf("seed %d: particle moved toward the pointer (x=%v)", seed, x)
		}
	}
}

func TestStepLeavesShatterStill(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	f := NewField(VariantShatter, 1024, 768)
	p := newParticle(10, 10, ClassNormal)
	f.Particles = []Particle{p}
	f.Pointer = p.Pos

	Step(f, rng)
	if f.Particles[0] != p {
		t.Fatalf("shatter particle moved: %+v", f.Particles[0])
	}
}

func TestCompactRadiusIsLarger(t *testing.T) {
	compact := profileFor(LayoutCompact, 400)
	wide := profileFor(LayoutWide, 1024)
	if compact.RepulsionRadius <= wide.RepulsionRadius {
		t.Fatalf("compact radius %v should exceed wide radius %v", compact.RepulsionRadius, wide.RepulsionRadius)
	}
}

func TestPerpendicularJitterPerAxis(t *testing.T) {
	const seed = 21
	p := newParticle(100, 100, ClassNormal)
	f := singleParticleField(1024, p)
	f.Pointer = Vec{90, 95}
	Step(f, rand.New(rand.NewSource(seed)))

	// replay the draws: multiplier, scatter, angle, then one jitter per axis
	rng := rand.New(rand.NewSource(seed))
	dx, dy := f.Pointer.X-p.Pos.X, f.Pointer.Y-p.Pos.Y
	radius := f.Profile().RepulsionRadius
	force := (radius - math.Hypot(dx, dy)) / radius
	randomForce := rng.Float64()*repulsionRandSpan + repulsionRandMin
	scatter := rng.Float64()*scatterSpan + scatterMin
	angle := math.Atan2(dy, dx) + (rng.Float64()-0.5)*angleJitter
	jitterX := (rng.Float64() - 0.5) * perpendicularSpan
	jitterY := (rng.Float64() - 0.5) * perpendicularSpan
	want := Vec{
		(-math.Cos(angle)*force*scatter*randomForce + math.Cos(angle+math.Pi/2)*jitterX) * frictionFactor,
		(-math.Sin(angle)*force*scatter*randomForce + math.Sin(angle+math.Pi/2)*jitterY) * frictionFactor,
	}

	got := f.Particles[0].Vel
	if math.Abs(got.X-want.X) > 1e-9 || math.Abs(got.Y-want.Y) > 1e-9 {
		t.Fatalf("velocity = %+v, want %+v", got, want)
	}
}
