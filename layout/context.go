// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"image"

	"alertui.org/unit"
)

// Context carries the state needed by almost all layouts and widgets:
// the constraints of the active element and the metric of the display
// it is laid out for.
type Context struct {
	// Constraints track the constraints for the active widget or
	// layout.
	Constraints Constraints
	// Metric converts dps and sps to device pixels.
	Metric unit.Metric
}

// NewContext returns a Context for a display metric and an exact
// available size.
func NewContext(metric unit.Metric, size image.Point) Context {
	return Context{
		Constraints: Exact(size),
		Metric:      metric,
	}
}

// Dp converts v to pixels.
func (c Context) Dp(v unit.Dp) int {
	return c.Metric.Dp(v)
}

// Sp converts v to pixels.
func (c Context) Sp(v unit.Sp) int {
	return c.Metric.Sp(v)
}
