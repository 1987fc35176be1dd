package main

import (
	"log"
	"math"
	"math/rand"
)

// LayoutProfile holds every constant that depends on the viewport class.
type LayoutProfile struct {
	ShatterHeaderSize float64
	ShatterHeaderY    float64
	ShatterBodySize   float64
	ShatterBodyWidth  float64
	ShatterBodyGap    float64

	NameHeaderSize float64
	NameSize       float64
	NameLineHeight float64
	NameSpacing    float64
	// FragmentChance is the probability that a row item is debris rather
	// than a name.
	FragmentChance float64

	RepulsionRadius float64
}

func ClassifyLayout(width float64) Layout {
	if width < compactBreakpoint {
		return LayoutCompact
	}
	return LayoutWide
}

func profileFor(layout Layout, width float64) LayoutProfile {
	if layout == LayoutCompact {
		return LayoutProfile{
			ShatterHeaderSize: 28,
			ShatterHeaderY:    60,
			ShatterBodySize:   19,
			ShatterBodyWidth:  math.Max(width-40, 1),
			ShatterBodyGap:    80,
			NameHeaderSize:    28,
			NameSize:          28,
			NameLineHeight:    65,
			NameSpacing:       100,
			FragmentChance:    0.40,
			RepulsionRadius:   92.5,
		}
	}
	return LayoutProfile{
		ShatterHeaderSize: 36,
		ShatterHeaderY:    80,
		ShatterBodySize:   20,
		ShatterBodyWidth:  700,
		ShatterBodyGap:    120,
		NameHeaderSize:    36,
		NameSize:          22,
		NameLineHeight:    60,
		NameSpacing:       120,
		FragmentChance:    0.35,
		RepulsionRadius:   25,
	}
}

// Content is the text a build lays out.
type Content struct {
	Names []string

	NameHeader string

	ShatterHeader    string
	ShatterParagraph string
	LinkPrefix       string
	LinkWord         string
}

func DefaultContent() Content {
	return Content{
		NameHeader:    "their names",
		ShatterHeader: "Artist Statement",
		ShatterParagraph: "This work explores the fragmented nature of memory and testimony, rendering names as particles " +
			"that disperse and reform. Each interaction disrupts the surface, scattering individual stories before " +
			"they coalesce again, a visual metaphor for how collective memory is continuously shaped and reshaped. " +
			"The particles respond to presence, acknowledging the viewer's role in bearing witness. Through this " +
			"digital memorial, we confront the tension between remembering and forgetting, between permanence and " +
			"erasure. The names persist, returning to their positions despite disruption, insisting on being seen, " +
			"being counted, being remembered.",
		LinkPrefix: "enter the ",
		LinkWord:   "names",
	}
}

type Builder struct {
	sampler *Sampler
	content Content
}

func NewBuilder(sampler *Sampler, content Content) *Builder {
	return &Builder{sampler: sampler, content: content}
}

func (b *Builder) SetNames(names []string) {
	b.content.Names = names
}

func (b *Builder) Names() []string {
	return b.content.Names
}

// Rebuild discards every particle of f and lays out a new generation for the
// current viewport. The pointer survives and hover is recomputed against
// the new hotspot.
func (b *Builder) Rebuild(f *Field, rng *rand.Rand) {
	f.Layout = ClassifyLayout(f.Width)
	f.Generation++
	f.Particles = nil
	f.Hotspot = nil
	f.Hovering = false

	switch f.Variant {
	case VariantShatter:
		b.buildShatter(f)
	default:
		b.buildNameField(f, rng)
	}

	for i := range f.Particles {
		f.Particles[i].Generation = f.Generation
	}
	f.Hovering = f.Hotspot != nil && f.Hotspot.Bounds.Contains(f.Pointer)
	log.Printf("generation %d: %d particles (%s, %s, %.0fx%.0f)",
		f.Generation, len(f.Particles), f.Variant, f.Layout, f.Width, f.Height)
}

func (b *Builder) buildShatter(f *Field) {
	prof := f.Profile()

	headerSize := prof.ShatterHeaderSize
	headerWidth := b.sampler.Measure(FaceDisplay, headerSize, b.content.ShatterHeader)
	headerX := (f.Width - headerWidth) / 2
	headerY := prof.ShatterHeaderY
	f.Particles = append(f.Particles,
		b.sampler.Sample(b.content.ShatterHeader, FaceDisplay, headerSize, headerX, headerY, ClassAccent)...)

	bodySize := prof.ShatterBodySize
	maxWidth := prof.ShatterBodyWidth
	bodyX := (f.Width - maxWidth) / 2
	bodyY := headerY + prof.ShatterBodyGap
	lineHeight := bodySize * shatterLineSpacing

	lines := WrapText(b.sampler.faces.Measurer(FaceMono, bodySize), b.content.ShatterParagraph, maxWidth)
	for i, line := range lines {
		y := bodyY + float64(i)*lineHeight
		f.Particles = append(f.Particles, b.sampler.Sample(line, FaceMono, bodySize, bodyX, y, ClassNormal)...)
	}

	if b.content.LinkWord == "" {
		return
	}
	linkY := bodyY + float64(len(lines))*lineHeight + bodySize*(shatterLinkGap-shatterLineSpacing)
	spans, ranges := b.sampler.SampleSpans(
		[]string{b.content.LinkPrefix, b.content.LinkWord}, FaceMono, bodySize, bodyX, linkY, ClassNormal)
	base := len(f.Particles)
	f.Particles = append(f.Particles, spans...)
	word := ranges[len(ranges)-1]
	f.Hotspot = &Hotspot{
		Bounds: word.Bounds,
		First:  base + word.First,
		Last:   base + word.Last,
	}
}

func (b *Builder) buildNameField(f *Field, rng *rand.Rand) {
	prof := f.Profile()

	top := 0.0
	if b.content.NameHeader != "" {
		headerSize := prof.NameHeaderSize
		headerWidth := b.sampler.Measure(FaceDisplay, headerSize, b.content.NameHeader)
		headerY := headerSize + nameFieldPadding
		f.Particles = append(f.Particles, b.sampler.Sample(
			b.content.NameHeader, FaceDisplay, headerSize, (f.Width-headerWidth)/2, headerY, ClassAccent)...)
		top = headerY + 4 + nameFieldPadding
	}

	fontSize := prof.NameSize
	rows := int(math.Ceil(math.Max(f.Height-top, 0)/prof.NameLineHeight)) + rowOverscan
	for row := 0; row < rows; row++ {
		y := top + float64(row)*prof.NameLineHeight + fontSize + (rng.Float64()*rowBaselineJitter - rowBaselineJitter/2)
		b.fillRow(f, rng, prof, y)
	}
}

func (b *Builder) fillRow(f *Field, rng *rand.Rand, prof LayoutProfile, y float64) {
	fontSize := prof.NameSize
	x := rng.Float64() * rowStartJitter
	for x < f.Width+rowEdgeMargin {
		isName := rng.Float64() > prof.FragmentChance && len(b.content.Names) > 0
		if isName {
			text := b.content.Names[rng.Intn(len(b.content.Names))] + nameSeparator
			width := b.sampler.Measure(FaceDisplay, fontSize, text)
			if x+width > f.Width+rowEdgeMargin {
				return
			}
			f.Particles = append(f.Particles, b.sampler.Sample(text, FaceDisplay, fontSize, x, y, ClassNormal)...)
			x += width + prof.NameSpacing + rng.Float64()*advanceJitter
			continue
		}

		length := appendFragment(f, rng, x, y)
		x += float64(length) + prof.NameSpacing + rng.Float64()*advanceJitter
	}
}

// appendFragment scatters a short run of debris particles starting at x and
// returns its length.
func appendFragment(f *Field, rng *rand.Rand, x, y float64) int {
	length := rng.Intn(fragmentLengthSpan) + fragmentMinLength
	height := rng.Intn(fragmentHeightSpan) + fragmentMinHeight
	offset := rng.Float64()*fragmentRowOffset - fragmentRowOffset/2

	for j := 0; j < length; j += sampleStride {
		for k := 0; k < height; k += sampleStride {
			if rng.Float64() <= fragmentKeepChance {
				continue
			}
			px := x + float64(j)
			py := y + offset + (rng.Float64()*fragmentPixelSpan - fragmentPixelSpan/2) + float64(k) - float64(height)/2
			f.Particles = append(f.Particles, newParticle(px, py, ClassNormal))
		}
	}
	return length
}
