// SPDX-License-Identifier: Unlicense OR MIT

package widget

// Pressable represents a pressable area, such as an alert action.
// Its state is advanced with Press, Release and Cancel and observed
// through Pressed and Clicked.
type Pressable struct {
	pressed bool
	// clicks counts completed presses not yet consumed by Clicked.
	clicks   int
	handlers []func()
}

// OnPress registers fn to be called when a press completes. Handlers
// run in registration order.
func (p *Pressable) OnPress(fn func()) {
	p.handlers = append(p.handlers, fn)
}

// Press begins a press. A press while already pressed is ignored.
func (p *Pressable) Press() {
	p.pressed = true
}

// Release completes the current press, if any, recording a click and
// running the registered handlers.
func (p *Pressable) Release() {
	wasPressed := p.pressed
	p.pressed = false
	if !wasPressed {
		return
	}
	p.clicks++
	for _, fn := range p.handlers {
		fn()
	}
}

// Cancel abandons the current press without recording a click.
func (p *Pressable) Cancel() {
	p.pressed = false
}

// Pressed reports whether the area is currently pressed.
func (p *Pressable) Pressed() bool {
	return p.pressed
}

// Clicked reports whether there are pending clicks as would be
// recorded by Release. If so, Clicked removes the earliest click.
func (p *Pressable) Clicked() bool {
	if p.clicks == 0 {
		return false
	}
	p.clicks--
	return true
}
