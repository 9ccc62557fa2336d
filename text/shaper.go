// SPDX-License-Identifier: Unlicense OR MIT

package text

import (
	"io"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Shaper implements layout and measurement of text.
type Shaper interface {
	// Layout a text according to a set of options.
	Layout(font Font, ppem fixed.Int26_6, txt io.Reader, opts LayoutOptions) ([]Line, error)
	// LayoutString is like Layout, but for strings.
	LayoutString(font Font, ppem fixed.Int26_6, str string, opts LayoutOptions) []Line
	// Metrics returns the font metrics for font.
	Metrics(font Font, ppem fixed.Int26_6) font.Metrics
}

// Cache implements layout and measurement of text from a set of
// registered fonts.
//
// If a font matches no registered face, Cache falls back to the
// first registered face.
//
// The LayoutString results are cached and re-used if possible.
type Cache struct {
	def   Typeface
	faces map[Font]*face
}

type face struct {
	face        Face
	layoutCache layoutCache
}

// NewCache returns a Cache registering the fonts of a collection.
func NewCache(collection []FontFace) *Cache {
	c := new(Cache)
	for _, ff := range collection {
		c.register(ff.Font, ff.Face)
	}
	return c
}

func (c *Cache) register(font Font, tf Face) {
	if c.faces == nil {
		c.def = font.Typeface
		c.faces = make(map[Font]*face)
	}
	c.faces[font] = &face{
		face: tf,
	}
}

func (c *Cache) Layout(font Font, ppem fixed.Int26_6, txt io.Reader, opts LayoutOptions) ([]Line, error) {
	str, err := io.ReadAll(txt)
	if err != nil {
		return nil, err
	}
	return c.LayoutString(font, ppem, string(str), opts), nil
}

func (c *Cache) LayoutString(font Font, ppem fixed.Int26_6, str string, opts LayoutOptions) []Line {
	tf := c.faceForFont(font)
	return tf.layout(ppem, str, opts)
}

func (c *Cache) Metrics(font Font, ppem fixed.Int26_6) font.Metrics {
	tf := c.faceForFont(font)
	return tf.metrics(ppem)
}

func (c *Cache) faceForStyle(font Font) *face {
	tf := c.faces[font]
	if tf == nil {
		font := font
		font.Weight = Normal
		tf = c.faces[font]
	}
	if tf == nil {
		font := font
		font.Style = Regular
		tf = c.faces[font]
	}
	if tf == nil {
		font := font
		font.Style = Regular
		font.Weight = Normal
		tf = c.faces[font]
	}
	return tf
}

func (c *Cache) faceForFont(font Font) *face {
	tf := c.faceForStyle(font)
	if tf == nil {
		font.Typeface = c.def
		tf = c.faceForStyle(font)
	}
	return tf
}

func (t *face) layout(ppem fixed.Int26_6, str string, opts LayoutOptions) []Line {
	if t == nil {
		return nil
	}
	lk := layoutKey{
		ppem: ppem,
		str:  str,
		opts: opts,
	}
	if l, ok := t.layoutCache.Get(lk); ok {
		return l
	}
	l, _ := t.face.Layout(ppem, str, opts)
	t.layoutCache.Put(lk, l)
	return l
}

func (t *face) metrics(ppem fixed.Int26_6) font.Metrics {
	return t.face.Metrics(ppem)
}
