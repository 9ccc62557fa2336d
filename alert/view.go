// SPDX-License-Identifier: Unlicense OR MIT

package alert

import (
	"image"

	"alertui.org/unit"
	"alertui.org/widget"
)

// View owns the state of one presented alert: the derived style, the
// cached geometry, the per-action press state and the scroll-to-top
// detector of the hosting surface.
type View struct {
	theme   *Theme
	style   DialogStyle
	buttons []widget.Pressable
	scroll  widget.ScrollToTop

	// Last computed layout. The cache is an optimization only;
	// Layout is safe to call redundantly.
	metric unit.Metric
	size   image.Point
	valid  bool
	result Result
}

// NewView returns a view presenting content with th.
func NewView(th *Theme, content Content) *View {
	return &View{
		theme:   th,
		style:   Dialog(th, content),
		buttons: make([]widget.Pressable, len(content.Actions)),
	}
}

// Style returns the current derived presentation.
func (v *View) Style() DialogStyle {
	return v.style
}

// Layout returns the dialog geometry for metric and size, reusing the
// last result when neither changed since the previous call. It also
// re-establishes the scroll detector geometry for the viewport.
func (v *View) Layout(metric unit.Metric, size image.Point) Result {
	if !v.valid || metric != v.metric || size != v.size {
		v.result = v.style.Layout(metric, size)
		v.scroll.Resize(size)
		v.metric = metric
		v.size = size
		v.valid = true
	}
	return v.result
}

// UpdateTheme re-derives the presentation from th. It never touches
// geometry: the cached layout stays valid until the metric or the
// size changes.
func (v *View) UpdateTheme(th *Theme) {
	v.theme = th
	v.style = Dialog(th, v.style.Content)
}

// SetDisabled toggles action i. Disabling affects presentation and
// press delivery only, never geometry; a press in progress on the
// action is cancelled.
func (v *View) SetDisabled(i int, disabled bool) {
	v.style.Content.Actions[i].Disabled = disabled
	v.style.Buttons[i] = ActionButton(v.theme, v.style.Content.Actions[i])
	if disabled {
		v.buttons[i].Cancel()
	}
}

// OnAction registers fn to be called when action i is activated.
func (v *View) OnAction(i int, fn func()) {
	v.buttons[i].OnPress(fn)
}

// Button returns the press state of action i, for highlight lookup.
func (v *View) Button(i int) *widget.Pressable {
	return &v.buttons[i]
}

// Press begins a press on action i. Presses on disabled actions are
// not forwarded.
func (v *View) Press(i int) {
	if v.style.Content.Actions[i].Disabled {
		return
	}
	v.buttons[i].Press()
}

// Release completes a press on action i, firing its handlers if the
// press was delivered.
func (v *View) Release(i int) {
	v.buttons[i].Release()
}

// Cancel abandons a press on action i without activating it.
func (v *View) Cancel(i int) {
	v.buttons[i].Cancel()
}

// Scroll returns the scroll-to-top detector of the hosting surface.
func (v *View) Scroll() *widget.ScrollToTop {
	return &v.scroll
}
