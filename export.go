package main

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	"os"
)

var gifPalette = color.Palette{
	color.Black,
	paintColors[paintNormal],
	paintColors[paintAccent],
	paintColors[paintMuted],
}

func exportPNG(a *Animator, filename string) error {
	if a.Renderer == nil {
		return fmt.Errorf("no renderer available")
	}
	if len(a.Field.Particles) == 0 {
		return fmt.Errorf("nothing to export")
	}
	a.Renderer.Draw(a.Field)
	return a.Renderer.Context().SavePNG(filename)
}

// exportGIF records frames frames of the running animation. When sweep is
// set the pointer crosses the field once so the repulsion shows up.
func exportGIF(a *Animator, filename string, frames, fps int, sweep bool) error {
	if a.Renderer == nil {
		return fmt.Errorf("no renderer available")
	}
	if frames < 1 {
		return fmt.Errorf("frame count must be positive, got %d", frames)
	}
	if fps < 1 {
		fps = defaultFPS
	}

	f := a.Field
	delay := max(100/fps, 1)
	anim := &gif.GIF{}
	for i := 0; i < frames; i++ {
		if sweep {
			t := float64(i) / float64(frames)
			f.MovePointer(Vec{X: t * f.Width, Y: f.Height / 2})
		}
		img := a.Frame()
		bounds := img.Bounds()
		paletted := image.NewPaletted(bounds, gifPalette)
		draw.Draw(paletted, bounds, img, bounds.Min, draw.Src)
		anim.Image = append(anim.Image, paletted)
		anim.Delay = append(anim.Delay, delay)
	}
	if sweep {
		f.ResetPointer()
	}

	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	if err := gif.EncodeAll(file, anim); err != nil {
		return fmt.Errorf("failed to encode gif: %w", err)
	}
	return file.Close()
}

func exportVisualTXT(f *Field, term *TermRenderer, cols, rows int, filename string) error {
	if cols < 1 || rows < 1 {
		return fmt.Errorf("invalid export size %dx%d", cols, rows)
	}
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	for _, line := range term.RenderPlain(f, cols, rows) {
		if _, err := fmt.Fprintln(file, line); err != nil {
			return err
		}
	}
	return file.Close()
}
