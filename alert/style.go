// SPDX-License-Identifier: Unlicense OR MIT

package alert

import (
	"image"
	"image/color"

	"alertui.org/text"
	"alertui.org/unit"
)

// ButtonStyle is the derived presentation of one action button.
type ButtonStyle struct {
	Text string
	// Color is the label color after the kind and disabled rules are
	// applied.
	Color    color.RGBA
	Font     text.Font
	TextSize unit.Sp
	// Highlight fills the button while it is pressed.
	Highlight color.RGBA
}

// DialogStyle is the derived presentation of a whole dialog.
type DialogStyle struct {
	Content Content

	TitleColor     color.RGBA
	TextColor      color.RGBA
	SeparatorColor color.RGBA

	TitleFont  text.Font
	BodyFont   text.Font
	ActionFont text.Font

	TitleSize  unit.Sp
	TextSize   unit.Sp
	ActionSize unit.Sp

	// Buttons matches Content.Actions in order.
	Buttons []ButtonStyle

	shaper text.Shaper
}

// ActionButton derives the presentation of a from th. The kind picks
// the label color and weight; a disabled action takes the disabled
// color regardless of kind.
func ActionButton(th *Theme, a Action) ButtonStyle {
	b := ButtonStyle{
		Text:      a.Title,
		Font:      actionFont(th.ActionFont, a.Kind),
		TextSize:  th.ActionSize,
		Highlight: th.Color.Highlight,
	}
	switch a.Kind {
	case Generic, Default:
		b.Color = th.Color.Accent
	case Destructive:
		b.Color = th.Color.Destructive
	}
	if a.Disabled {
		b.Color = th.Color.Disabled
	}
	return b
}

// Dialog derives the presentation of content from th.
func Dialog(th *Theme, content Content) DialogStyle {
	d := DialogStyle{
		Content:        content,
		TitleColor:     th.Color.Primary,
		TextColor:      th.Color.Primary,
		SeparatorColor: th.Color.Separator,
		TitleFont:      th.TitleFont,
		BodyFont:       th.BodyFont,
		ActionFont:     th.ActionFont,
		TitleSize:      th.TitleSize,
		TextSize:       th.TextSize,
		ActionSize:     th.ActionSize,
		Buttons:        make([]ButtonStyle, len(content.Actions)),
		shaper:         th.Shaper,
	}
	for i, a := range content.Actions {
		d.Buttons[i] = ActionButton(th, a)
	}
	return d
}

// Layout computes the dialog geometry for the given metric and
// available size.
func (d DialogStyle) Layout(metric unit.Metric, size image.Point) Result {
	e := Engine{
		Shaper:     d.shaper,
		Metric:     metric,
		TitleFont:  d.TitleFont,
		BodyFont:   d.BodyFont,
		ActionFont: d.ActionFont,
		TitleSize:  d.TitleSize,
		TextSize:   d.TextSize,
		ActionSize: d.ActionSize,
	}
	return e.Layout(d.Content, size)
}

// actionFont applies the weight for kind to font. Both measurement
// and presentation resolve the label font through it.
func actionFont(font text.Font, k Kind) text.Font {
	if k == Default {
		font.Weight = text.SemiBold
	}
	return font
}
