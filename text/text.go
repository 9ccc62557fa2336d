// SPDX-License-Identifier: Unlicense OR MIT

/*
Package text implements text measurement and line layout over a set
of registered font faces.
*/
package text

import (
	"fmt"
	"image"

	"alertui.org/layout"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Typeface identifies a particular typeface design. The empty
// string denotes the default typeface.
type Typeface string

// Variant denotes a typeface variant such as "Mono" or "Smallcaps".
type Variant string

// Style is the font style.
type Style uint8

// Weight is a font weight, in CSS units subtracted 400 so the zero value
// is normal text weight.
type Weight int

// Font specifies a particular typeface variant, style and weight.
// The text size is given separately to the layout methods, so a Font
// is a valid map key for face lookup.
type Font struct {
	Typeface Typeface
	Variant  Variant
	Style    Style
	// Weight is the text weight. If zero, Normal is used instead.
	Weight Weight
}

// Face is an opaque handle to a typeface capable of laying out text.
// The concrete implementation is provided by font packages such as
// font/opentype.
type Face interface {
	// Layout returns the lines of a text, wrapped to the options'
	// maximum width.
	Layout(ppem fixed.Int26_6, str string, opts LayoutOptions) ([]Line, error)
	// Metrics returns the face metrics scaled to ppem.
	Metrics(ppem fixed.Int26_6) font.Metrics
}

// A FontFace is a Font and a matching Face.
type FontFace struct {
	Font Font
	Face Face
}

// A Line contains the measurements of one laid out line of text.
type Line struct {
	Text string
	// Width is the width of the line.
	Width fixed.Int26_6
	// Ascent is the height above the baseline.
	Ascent fixed.Int26_6
	// Descent is the height below the baseline, including
	// the line gap.
	Descent fixed.Int26_6
}

// LayoutOptions specify the constraints of a text layout.
type LayoutOptions struct {
	// MaxWidth is the maximum width of the layout, in pixels.
	MaxWidth int
	// SingleLine specifies that line breaks are ignored.
	SingleLine bool
}

const (
	Regular Style = iota
	Italic
)

const (
	Thin       Weight = -300
	ExtraLight Weight = -200
	Light      Weight = -100
	Normal     Weight = 0
	Medium     Weight = 100
	SemiBold   Weight = 200
	Bold       Weight = 300
	ExtraBold  Weight = 400
	Black      Weight = 500
)

// Alignment is the text alignment within its maximum width.
type Alignment uint8

const (
	Start Alignment = iota
	End
	Middle
)

// Measure lays out str with s and folds the lines into the
// dimensions of the text block: the width of the widest line, the
// summed line heights and the first baseline.
func Measure(s Shaper, font Font, ppem fixed.Int26_6, maxWidth int, str string) layout.Dimensions {
	lines := s.LayoutString(font, ppem, str, LayoutOptions{MaxWidth: maxWidth})
	return linesDimens(lines)
}

func linesDimens(lines []Line) layout.Dimensions {
	var width fixed.Int26_6
	var h int
	var baseline int
	if len(lines) > 0 {
		baseline = lines[0].Ascent.Ceil()
		var prevDesc fixed.Int26_6
		for _, l := range lines {
			h += (prevDesc + l.Ascent).Ceil()
			prevDesc = l.Descent
			if l.Width > width {
				width = l.Width
			}
		}
		h += lines[len(lines)-1].Descent.Ceil()
	}
	w := width.Ceil()
	return layout.Dimensions{
		Size: image.Point{
			X: w,
			Y: h,
		},
		Baseline: baseline,
	}
}

// Align returns the x offset that aligns a line of the given width
// within maxWidth.
func Align(align Alignment, width fixed.Int26_6, maxWidth int) fixed.Int26_6 {
	mw := fixed.I(maxWidth)
	switch align {
	case Middle:
		return fixed.I(((mw - width) / 2).Floor())
	case End:
		return fixed.I((mw - width).Floor())
	case Start:
		return 0
	default:
		panic(fmt.Errorf("unknown alignment %v", align))
	}
}

func (a Alignment) String() string {
	switch a {
	case Start:
		return "Start"
	case End:
		return "End"
	case Middle:
		return "Middle"
	default:
		panic("unreachable")
	}
}

func (s Style) String() string {
	switch s {
	case Regular:
		return "Regular"
	case Italic:
		return "Italic"
	default:
		panic("invalid Style")
	}
}

func (w Weight) String() string {
	switch w {
	case Thin:
		return "Thin"
	case ExtraLight:
		return "ExtraLight"
	case Light:
		return "Light"
	case Normal:
		return "Normal"
	case Medium:
		return "Medium"
	case SemiBold:
		return "SemiBold"
	case Bold:
		return "Bold"
	case ExtraBold:
		return "ExtraBold"
	case Black:
		return "Black"
	default:
		panic("invalid Weight")
	}
}
