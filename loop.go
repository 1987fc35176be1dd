package main

import (
	"context"
	"image"
	"math/rand"
	"time"
)

// Animator owns one view: the field, its builder and the random source all
// layout and force randomness is drawn from.
type Animator struct {
	Field    *Field
	Builder  *Builder
	Renderer *Renderer
	rng      *rand.Rand
	seed     int64
}

func NewAnimator(field *Field, builder *Builder, renderer *Renderer, seed int64) *Animator {
	return &Animator{
		Field:    field,
		Builder:  builder,
		Renderer: renderer,
		rng:      rand.New(rand.NewSource(seed)),
		seed:     seed,
	}
}

func (a *Animator) Seed() int64 {
	return a.seed
}

// Rebuild reseeds the random source and lays out a new generation, so a seed
// always reproduces the same layout and the same force sequence after it.
func (a *Animator) Rebuild(seed int64) {
	a.seed = seed
	a.rng = rand.New(rand.NewSource(seed))
	a.Builder.Rebuild(a.Field, a.rng)
}

// Resize changes the viewport and rebuilds with the current seed.
func (a *Animator) Resize(width, height float64) {
	a.Field.Width = width
	a.Field.Height = height
	if a.Renderer != nil {
		a.Renderer.Resize(int(width), int(height))
	}
	a.Rebuild(a.seed)
}

// Tick advances the simulation by one frame without drawing.
func (a *Animator) Tick() {
	Step(a.Field, a.rng)
}

// Frame runs one simulation step and draws the result.
func (a *Animator) Frame() image.Image {
	a.Tick()
	if a.Renderer == nil {
		return nil
	}
	return a.Renderer.Draw(a.Field)
}

// Run calls frame once per tick until ctx is done. A closed ticks channel
// also ends the loop.
func Run(ctx context.Context, ticks <-chan time.Time, frame func()) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case _, ok := <-ticks:
			if !ok {
				return nil
			}
			frame()
		}
	}
}
