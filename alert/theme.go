// SPDX-License-Identifier: Unlicense OR MIT

package alert

import (
	"image/color"

	"alertui.org/text"
	"alertui.org/unit"
)

// Palette is the color set a dialog derives its presentation from.
// The layout engine never interprets colors; they only reach the
// styles.
type Palette struct {
	// Accent colors Generic and Default action labels.
	Accent color.RGBA
	// Destructive colors Destructive action labels.
	Destructive color.RGBA
	// Disabled colors the label of any disabled action.
	Disabled color.RGBA
	// Primary colors the title and the body text.
	Primary color.RGBA
	// Separator colors the hairlines.
	Separator color.RGBA
	// Highlight fills a pressed button.
	Highlight color.RGBA
}

// Theme holds the fonts, text sizes and colors shared by the alert
// styles.
type Theme struct {
	Shaper text.Shaper
	Color  Palette

	TitleFont  text.Font
	BodyFont   text.Font
	ActionFont text.Font

	TitleSize  unit.Sp
	TextSize   unit.Sp
	ActionSize unit.Sp
}

// NewTheme returns a theme over the given font collection.
func NewTheme(fontCollection []text.FontFace) *Theme {
	t := &Theme{
		Shaper: text.NewCache(fontCollection),
	}
	t.Color.Accent = rgb(0x007aff)
	t.Color.Destructive = rgb(0xff3b30)
	t.Color.Disabled = rgb(0x999999)
	t.Color.Primary = rgb(0x000000)
	t.Color.Separator = rgb(0xc8c7cc)
	t.Color.Highlight = argb(0x1a000000)
	t.TitleFont = text.Font{Weight: text.SemiBold}
	t.TitleSize = unit.Sp(17)
	t.TextSize = unit.Sp(13)
	t.ActionSize = unit.Sp(17)
	return t
}

func rgb(c uint32) color.RGBA {
	return argb(0xff000000 | c)
}

func argb(c uint32) color.RGBA {
	return color.RGBA{A: uint8(c >> 24), R: uint8(c >> 16), G: uint8(c >> 8), B: uint8(c)}
}
