// SPDX-License-Identifier: Unlicense OR MIT

// Package widget implements state tracking for user interface
// controls. Widgets contain persistent state and are driven by the
// host's input events; they do not know how they are drawn.
package widget
