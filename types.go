package main

import "math"

type Vec struct {
	X, Y float64
}

func (v Vec) Sub(o Vec) Vec {
	return Vec{v.X - o.X, v.Y - o.Y}
}

func (v Vec) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

func (v Vec) Dist(o Vec) float64 {
	return v.Sub(o).Len()
}

func (v Vec) IsFinite() bool {
	return !math.IsInf(v.X, 0) && !math.IsInf(v.Y, 0) &&
		!math.IsNaN(v.X) && !math.IsNaN(v.Y)
}

// PointerOff is the pointer position used while no pointer is over the field.
var PointerOff = Vec{pointerOffValue, pointerOffValue}

type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Contains(p Vec) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

type Particle struct {
	Pos        Vec
	Target     Vec
	Vel        Vec
	Class      ColorClass
	Generation int
}

func newParticle(x, y float64, class ColorClass) Particle {
	p := Vec{x, y}
	return Particle{Pos: p, Target: p, Class: class}
}

// Hotspot is the interactive word of the shatter variant. Particles
// [First, Last) belong to it.
type Hotspot struct {
	Bounds Rect
	First  int
	Last   int
}

func (h *Hotspot) Owns(i int) bool {
	return h != nil && i >= h.First && i < h.Last
}

// Field is the whole simulation state of one view: the particles of the
// current build generation plus the pointer and hover state that input
// handlers write and the frame reads.
type Field struct {
	Width      float64
	Height     float64
	Variant    Variant
	Layout     Layout
	Particles  []Particle
	Pointer    Vec
	Hotspot    *Hotspot
	Hovering   bool
	Generation int
}

func NewField(variant Variant, width, height float64) *Field {
	return &Field{
		Width:   width,
		Height:  height,
		Variant: variant,
		Layout:  ClassifyLayout(width),
		Pointer: PointerOff,
	}
}

func (f *Field) Profile() LayoutProfile {
	return profileFor(f.Layout, f.Width)
}

func (f *Field) ResetPointer() {
	f.Pointer = PointerOff
	f.Hovering = false
}
