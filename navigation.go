package main

import "time"

type ClickAction int

const (
	ClickNone ClickAction = iota
	ClickRegenerate
	ClickNavigate
)

// MovePointer records the latest pointer position. The next Step reads it;
// nothing is queued.
func (f *Field) MovePointer(p Vec) {
	f.Pointer = p
	f.Hovering = f.Hotspot != nil && f.Hotspot.Bounds.Contains(p)
}

// Gestures turns raw presses into clicks. Compact viewports behave like a
// touch screen: a press only moves the pointer and two presses within the
// double tap window regenerate. Wide viewports regenerate on every click.
type Gestures struct {
	lastPress time.Time
}

func (g *Gestures) Press(f *Field, p Vec, now time.Time) ClickAction {
	f.MovePointer(p)

	if f.Variant == VariantShatter {
		if f.Hovering {
			return ClickNavigate
		}
		return ClickNone
	}

	if f.Layout == LayoutWide {
		return ClickRegenerate
	}

	gap := now.Sub(g.lastPress)
	doubleTap := !g.lastPress.IsZero() && gap > 0 && gap < doubleTapWindow
	g.lastPress = now
	if doubleTap {
		g.lastPress = time.Time{}
		return ClickRegenerate
	}
	return ClickNone
}

// Release ends a touch on compact viewports, taking the pointer off the field
// so no repulsion lingers.
func (g *Gestures) Release(f *Field) {
	if f.Layout == LayoutCompact {
		f.ResetPointer()
	}
}
