// SPDX-License-Identifier: Unlicense OR MIT

/*
Package alert implements a fixed-width alert dialog: an optional
title, a body text and a row or column of action buttons.

Engine computes the geometry of every dialog element from the content
and an available size. Theme, DialogStyle and ActionButton derive the
presentation, and View owns the per-dialog state: cached layout,
button press state and the scroll-to-top detector.
*/
package alert

import (
	"fmt"
	"image"
	"strings"

	"alertui.org/layout"
	"golang.org/x/exp/slices"
)

// Kind selects the presentation of an action, its color and font
// weight.
type Kind uint8

const (
	// Generic is a regular action.
	Generic Kind = iota
	// Default is the action a confirm gesture activates. Its label is
	// emphasized.
	Default
	// Destructive marks an action with irreversible consequences.
	Destructive
)

// Action describes one alert button.
type Action struct {
	Kind  Kind
	Title string
	// Disabled actions are dimmed and don't fire their handlers.
	// Disabling affects presentation only, never geometry.
	Disabled bool
}

// Content is the content of an alert, immutable for the alert's
// lifetime.
type Content struct {
	// Title is optional; an empty Title takes no space.
	Title string
	Body  string
	// Actions in presentation order.
	Actions []Action
	// Hint is the requested button arrangement. A Horizontal hint is
	// promoted to Vertical when a label doesn't fit its button; see
	// Engine.Layout.
	Hint layout.Axis
}

// Result is the computed geometry of an alert, a pure projection of
// the content and the available size.
type Result struct {
	// Size is the bounding size of the whole dialog.
	Size image.Point
	// Title is the title frame, or the zero rectangle when the
	// content has no title.
	Title image.Rectangle
	// Text is the body text frame.
	Text image.Rectangle
	// Separator is the hairline between the content block and the
	// actions region, spanning the full dialog width. Zero when there
	// are no actions.
	Separator image.Rectangle
	// Actions holds the button frames in content order.
	Actions []image.Rectangle
	// ActionSeparators holds the hairlines between adjacent buttons,
	// one fewer than there are buttons.
	ActionSeparators []image.Rectangle
	// Axis is the effective button arrangement after promotion.
	Axis layout.Axis
	// MinActionsWidth is the narrowest actions region that fits every
	// label with its insets. It is reported for width negotiation
	// upstream and does not feed the frames above.
	MinActionsWidth int
}

var kindNames = []string{"generic", "default", "destructive"}

// ParseKind returns the Kind named by s, ignoring case.
func ParseKind(s string) (Kind, error) {
	i := slices.Index(kindNames, strings.ToLower(s))
	if i == -1 {
		return 0, fmt.Errorf("alert: unknown action kind %q", s)
	}
	return Kind(i), nil
}

func (k Kind) String() string {
	switch k {
	case Generic:
		return "Generic"
	case Default:
		return "Default"
	case Destructive:
		return "Destructive"
	default:
		panic("unreachable")
	}
}
