// SPDX-License-Identifier: Unlicense OR MIT

package widget

import "image"

// ScrollToTop reports taps on the system top region as callbacks
// instead of scrolling. The detector keeps its surface scrollable at
// all times: Content is one unit taller than the viewport and Offset
// rests one unit down, so the surface is never at its top and the top
// tap signal is always delivered to it.
type ScrollToTop struct {
	content  image.Point
	offset   image.Point
	handlers []func()
}

// Resize re-establishes the detector geometry for the given viewport
// bounds. Call it whenever the viewport changes.
func (s *ScrollToTop) Resize(bounds image.Point) {
	s.content = image.Pt(bounds.X, bounds.Y+1)
	s.offset = image.Pt(0, 1)
}

// Content returns the content size for the current viewport.
func (s *ScrollToTop) Content() image.Point {
	return s.content
}

// Offset returns the scroll offset.
func (s *ScrollToTop) Offset() image.Point {
	return s.offset
}

// OnTop registers fn to be called on a top tap. Handlers run in
// registration order.
func (s *ScrollToTop) OnTop(fn func()) {
	s.handlers = append(s.handlers, fn)
}

// TopTap reports a tap on the top region. The registered handlers run
// exactly once and the return value is always false: the host surface
// must not perform its default scroll to top.
func (s *ScrollToTop) TopTap() bool {
	for _, fn := range s.handlers {
		fn()
	}
	return false
}
