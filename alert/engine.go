// SPDX-License-Identifier: Unlicense OR MIT

package alert

import (
	"image"

	"alertui.org/layout"
	"alertui.org/text"
	"alertui.org/unit"
	"golang.org/x/image/math/fixed"
)

// Dialog metrics. The hairline is always one device pixel and never
// scales with the metric.
const (
	// MaxWidth is the fixed dialog width. The content column is
	// MaxWidth minus the horizontal insets, regardless of the
	// available size.
	MaxWidth = unit.Dp(270)
	// Inset is the padding around the title and body block.
	Inset = unit.Dp(18)
	// ButtonHeight is the height of one action button.
	ButtonHeight = unit.Dp(44)
	// ButtonTitleInset pads an action label inside its button.
	ButtonTitleInset = unit.Dp(8)
	// TitleGap separates the title from the body text.
	TitleGap = unit.Dp(6)

	hairline = 1
)

// Engine computes alert geometry. It holds no state across calls:
// Layout is a pure function of the content and the available size.
type Engine struct {
	// Shaper measures text blocks and button labels. It is the
	// engine's only external dependency.
	Shaper text.Shaper
	// Metric converts the dialog metrics to device pixels.
	Metric unit.Metric

	TitleFont  text.Font
	BodyFont   text.Font
	ActionFont text.Font

	TitleSize  unit.Sp
	TextSize   unit.Sp
	ActionSize unit.Sp
}

// Layout measures content against the available size and returns the
// frame of every dialog element. Identical inputs yield identical
// results.
//
// The dialog width never exceeds the fixed maximum, and the content
// column always derives from that maximum, not from the clamped
// available width.
func (e *Engine) Layout(content Content, size image.Point) Result {
	var (
		maxW = e.Metric.Dp(MaxWidth)
		in   = e.Metric.Dp(Inset)
		btnH = e.Metric.Dp(ButtonHeight)
		lblI = e.Metric.Dp(ButtonTitleInset)
		gap  = e.Metric.Dp(TitleGap)
	)
	width := size.X
	if width > maxW {
		width = maxW
	}
	contentWidth := maxW - 2*in

	hasTitle := content.Title != ""
	var title layout.Dimensions
	if hasTitle {
		title = text.Measure(e.Shaper, e.TitleFont, fixed.I(e.Metric.Sp(e.TitleSize)), contentWidth, content.Title)
	}
	body := text.Measure(e.Shaper, e.BodyFont, fixed.I(e.Metric.Sp(e.TextSize)), contentWidth, content.Body)

	// Measure the action labels against an even split of the usable
	// width. A label taller than two thirds of a button forces the
	// vertical arrangement; a vertical hint is never demoted.
	n := len(content.Actions)
	axis := content.Hint
	labelW := make([]int, n)
	if n > 0 {
		maxActionWidth := width / n
		ppem := fixed.I(e.Metric.Sp(e.ActionSize))
		promote := false
		for i, a := range content.Actions {
			dims := text.Measure(e.Shaper, actionFont(e.ActionFont, a.Kind), ppem, maxActionWidth, a.Title)
			labelW[i] = dims.Size.X
			if 3*dims.Size.Y > 2*btnH {
				promote = true
			}
		}
		if axis == layout.Horizontal && promote {
			axis = layout.Vertical
		}
	}
	minActions := 0
	for _, w := range labelW {
		switch axis {
		case layout.Horizontal:
			minActions += w + lblI
		case layout.Vertical:
			if w+lblI > minActions {
				minActions = w + lblI
			}
		}
	}

	actionsHeight := 0
	if n > 0 {
		actionsHeight = btnH
		if axis == layout.Vertical {
			actionsHeight = btnH * n
		}
	}
	stacked := body.Size.Y
	if hasTitle {
		stacked += title.Size.Y + gap
	}

	res := Result{
		Size:            image.Pt(maxW, in+stacked+in+actionsHeight),
		Axis:            axis,
		MinActionsWidth: minActions,
		Actions:         make([]image.Rectangle, n),
	}
	y := in
	if hasTitle {
		x := in + (contentWidth-title.Size.X)/2
		res.Title = image.Rect(x, y, x+title.Size.X, y+title.Size.Y)
		y += title.Size.Y + gap
	}
	x := in + (contentWidth-body.Size.X)/2
	res.Text = image.Rect(x, y, x+body.Size.X, y+body.Size.Y)
	if n == 0 {
		return res
	}

	actionsTop := res.Size.Y - actionsHeight
	res.Separator = image.Rect(0, actionsTop-hairline, res.Size.X, actionsTop)
	switch axis {
	case layout.Horizontal:
		x := 0
		for i, w := range splitWidths(res.Size.X, n) {
			res.Actions[i] = image.Rect(x, actionsTop, x+w, actionsTop+btnH)
			x += w
		}
	case layout.Vertical:
		y := actionsTop
		for i := range res.Actions {
			res.Actions[i] = image.Rect(0, y, res.Size.X, y+btnH)
			y += btnH
		}
	}
	// Between adjacent buttons a hairline sits at the shared edge,
	// inset into the earlier button so the button frames still tile
	// exactly.
	for i := 1; i < n; i++ {
		var sep image.Rectangle
		switch axis {
		case layout.Horizontal:
			bx := res.Actions[i].Min.X
			sep = image.Rect(bx-hairline, actionsTop, bx, actionsTop+btnH)
		case layout.Vertical:
			by := res.Actions[i].Min.Y
			sep = image.Rect(0, by-hairline, res.Size.X, by)
		}
		res.ActionSeparators = append(res.ActionSeparators, sep)
	}
	return res
}

// splitWidths distributes total over n buttons. All but the last get
// the floored even share; the last absorbs the remainder so the
// widths tile total exactly.
func splitWidths(total, n int) []int {
	ws := make([]int, n)
	w := total / n
	for i := range ws {
		ws[i] = w
	}
	ws[n-1] = total - w*(n-1)
	return ws
}
