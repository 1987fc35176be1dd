package main

import (
	"image"
	"image/color"
	"math"
	"strings"

	"github.com/fogleman/gg"
)

type Sampler struct {
	faces *Typefaces
}

func NewSampler(faces *Typefaces) *Sampler {
	return &Sampler{faces: faces}
}

func (s *Sampler) Measure(role FaceRole, size float64, text string) float64 {
	return s.faces.Measure(role, size, text)
}

// Sample draws text offscreen with its baseline at (0, size) and turns every
// covered pixel on the stride grid into a particle placed relative to the
// baseline origin (x, y).
func (s *Sampler) Sample(text string, role FaceRole, size, x, y float64, class ColorClass) []Particle {
	width := int(math.Ceil(s.Measure(role, size, text)))
	if width <= 0 {
		return nil
	}
	height := int(math.Ceil(size)) + 4

	dc := gg.NewContext(width, height)
	dc.SetFontFace(s.faces.Face(role, size))
	dc.SetColor(color.White)
	dc.DrawString(text, 0, size)

	img, ok := dc.Image().(*image.RGBA)
	if !ok {
		return nil
	}
	return sampleMask(img, x, y, size, class)
}

// sampleMask keeps the stride-grid pixels of img whose alpha is above the
// threshold.
func sampleMask(img *image.RGBA, x, y, size float64, class ColorClass) []Particle {
	b := img.Bounds()
	var particles []Particle
	for py := 0; py < b.Dy(); py += sampleStride {
		for px := 0; px < b.Dx(); px += sampleStride {
			alpha := img.Pix[img.PixOffset(b.Min.X+px, b.Min.Y+py)+3]
			if alpha > alphaThreshold {
				particles = append(particles, newParticle(x+float64(px), y-size+float64(py), class))
			}
		}
	}
	return particles
}

type SpanRange struct {
	First  int
	Last   int
	Bounds Rect
}

// SampleSpans samples the pieces of one line separately, each shifted by the
// measured width of the pieces before it, so the result lines up with the
// whole line drawn at once. Ranges index into the returned slice.
func (s *Sampler) SampleSpans(spans []string, role FaceRole, size, x, y float64, class ColorClass) ([]Particle, []SpanRange) {
	var particles []Particle
	ranges := make([]SpanRange, 0, len(spans))
	offset := 0.0
	for _, span := range spans {
		width := s.Measure(role, size, span)
		first := len(particles)
		particles = append(particles, s.Sample(span, role, size, x+offset, y, class)...)
		ranges = append(ranges, SpanRange{
			First:  first,
			Last:   len(particles),
			Bounds: Rect{X: x + offset, Y: y - size, W: width, H: size + 4},
		})
		offset += width
	}
	return particles, ranges
}

// WrapText breaks text into lines no wider than maxWidth. A line always
// takes at least one word, even one wider than maxWidth.
func WrapText(measure func(string) float64, text string, maxWidth float64) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	current := words[0]
	for _, word := range words[1:] {
		candidate := current + " " + word
		if measure(candidate) < maxWidth {
			current = candidate
		} else {
			lines = append(lines, current)
			current = word
		}
	}
	return append(lines, current)
}
