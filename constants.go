package main

import "time"

type Variant int

const (
	VariantNameField Variant = iota
	VariantShatter
)

func (v Variant) String() string {
	switch v {
	case VariantShatter:
		return "shatter"
	default:
		return "names"
	}
}

// ColorClass is the fixed color tag of a particle.
type ColorClass int

const (
	ClassNormal ColorClass = iota
	ClassAccent
)

type Layout int

const (
	LayoutWide Layout = iota
	LayoutCompact
)

func (l Layout) String() string {
	if l == LayoutCompact {
		return "compact"
	}
	return "wide"
}

type Mode int

const (
	ModeLoading Mode = iota
	ModeRunning
)

type FileOperation int

const (
	FileOpSavePNG FileOperation = iota
	FileOpSaveVisualTXT
)

const (
	compactBreakpoint = 768.0

	alphaThreshold = 128
	sampleStride   = 2

	springFactor   = 0.08
	frictionFactor = 0.88

	repulsionRandMin   = 0.7
	repulsionRandSpan  = 0.3
	scatterMin         = 3.0
	scatterSpan        = 5.0
	angleJitter        = 0.8 // full width, centered on zero
	perpendicularSpan  = 3.0 // full width, centered on zero
	pointerOffValue    = -1000.0
	doubleTapWindow    = 300 * time.Millisecond
	defaultFPS         = 60
	defaultParticle    = 2
	defaultDotSize     = 2
	nameSeparator      = ","
	nameFieldPadding   = 24.0
	rowOverscan        = 2
	rowEdgeMargin      = 150.0
	rowStartJitter     = 100.0
	advanceJitter      = 150.0
	rowBaselineJitter  = 30.0
	fragmentMinLength  = 20
	fragmentLengthSpan = 40
	fragmentMinHeight  = 2
	fragmentHeightSpan = 8
	fragmentRowOffset  = 12.0
	fragmentPixelSpan  = 6.0
	fragmentKeepChance = 0.5
	shatterLineSpacing = 1.8
	shatterLinkGap     = 2.4
)
