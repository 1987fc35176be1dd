package main

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

// FaceRole picks which embedded font a line is drawn with: headers use the
// display face, body copy uses the monospace face.
type FaceRole int

const (
	FaceDisplay FaceRole = iota
	FaceMono
)

type faceKey struct {
	role FaceRole
	size float64
}

type Typefaces struct {
	fonts map[FaceRole]*truetype.Font
	faces map[faceKey]font.Face
}

func LoadTypefaces() (*Typefaces, error) {
	display, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse display font: %w", err)
	}
	mono, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse mono font: %w", err)
	}
	return &Typefaces{
		fonts: map[FaceRole]*truetype.Font{
			FaceDisplay: display,
			FaceMono:    mono,
		},
		faces: make(map[faceKey]font.Face),
	}, nil
}

// Face returns a cached face for role at size pixels.
func (t *Typefaces) Face(role FaceRole, size float64) font.Face {
	key := faceKey{role, size}
	if face, ok := t.faces[key]; ok {
		return face
	}
	face := truetype.NewFace(t.fonts[role], &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	t.faces[key] = face
	return face
}

// Measure returns the advance width of text in pixels.
func (t *Typefaces) Measure(role FaceRole, size float64, text string) float64 {
	if text == "" {
		return 0
	}
	adv := font.MeasureString(t.Face(role, size), text)
	return float64(adv) / 64
}

// Measurer binds a role and size so wrapping code only deals with strings.
func (t *Typefaces) Measurer(role FaceRole, size float64) func(string) float64 {
	return func(s string) float64 {
		return t.Measure(role, size, s)
	}
}
