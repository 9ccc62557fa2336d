// SPDX-License-Identifier: Unlicense OR MIT

// Package opentype implements text layout and measurement for OpenType
// files.
package opentype

import (
	"fmt"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/npillmayer/uax/segment"
	"github.com/npillmayer/uax/uax14"
	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"alertui.org/text"
)

// Face is a loaded OpenType font, laying out and measuring text
// through its glyph metrics. Faces are safe for concurrent use.
type Face struct {
	font   *sfnt.Font
	family string
	style  text.Style
	weight text.Weight

	mu  sync.Mutex
	buf sfnt.Buffer
}

const hinting = font.HintingFull

// Parse constructs a Face from source bytes.
func Parse(src []byte) (*Face, error) {
	fnt, err := sfnt.Parse(src)
	if err != nil {
		return nil, fmt.Errorf("opentype: failed parsing truetype font: %w", err)
	}
	return newFace(fnt), nil
}

// ParseCollection parses an OpenType font file, with support for
// collections. Single font files are supported, returning a slice with
// length 1. The returned faces are wrapped in text.FontFaces with
// font metadata inferred from the name table.
func ParseCollection(src []byte) ([]text.FontFace, error) {
	coll, err := sfnt.ParseCollection(src)
	if err != nil {
		return nil, fmt.Errorf("opentype: failed parsing font collection: %w", err)
	}
	out := make([]text.FontFace, coll.NumFonts())
	for i := range out {
		fnt, err := coll.Font(i)
		if err != nil {
			return nil, fmt.Errorf("opentype: reading font %d of collection: %w", i, err)
		}
		face := newFace(fnt)
		out[i] = text.FontFace{
			Font: face.Font(),
			Face: face,
		}
	}
	return out, nil
}

func newFace(fnt *sfnt.Font) *Face {
	f := &Face{font: fnt}
	var buf sfnt.Buffer
	if family, err := fnt.Name(&buf, sfnt.NameIDFamily); err == nil {
		f.family = family
	}
	if sub, err := fnt.Name(&buf, sfnt.NameIDSubfamily); err == nil {
		f.style, f.weight = parseSubfamily(sub)
	}
	return f
}

// parseSubfamily infers style and weight from a subfamily name such as
// "Bold Italic". Unknown terms leave the regular defaults.
func parseSubfamily(sub string) (text.Style, text.Weight) {
	style := text.Regular
	weight := text.Normal
	for _, term := range strings.Fields(strings.ToLower(sub)) {
		switch term {
		case "italic", "oblique":
			style = text.Italic
		case "thin":
			weight = text.Thin
		case "extralight", "ultralight":
			weight = text.ExtraLight
		case "light":
			weight = text.Light
		case "regular", "normal":
			weight = text.Normal
		case "medium":
			weight = text.Medium
		case "semibold", "demibold":
			weight = text.SemiBold
		case "bold":
			weight = text.Bold
		case "extrabold", "ultrabold":
			weight = text.ExtraBold
		case "black", "heavy":
			weight = text.Black
		}
	}
	return style, weight
}

// Font returns the font metadata inferred from the face's name table.
func (f *Face) Font() text.Font {
	return text.Font{
		Typeface: text.Typeface(f.family),
		Style:    f.style,
		Weight:   f.weight,
	}
}

// Layout wraps str at UAX#14 line break opportunities so no line
// exceeds the options' maximum width, unless a single segment is wider
// than the whole line.
func (f *Face) Layout(ppem fixed.Int26_6, str string, opts text.LayoutOptions) ([]text.Line, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.layoutText(ppem, str, opts), nil
}

// Metrics returns the face metrics scaled to ppem.
func (f *Face) Metrics(ppem fixed.Int26_6) font.Metrics {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.metrics(ppem)
}

func (f *Face) layoutText(ppem fixed.Int26_6, str string, opts text.LayoutOptions) []text.Line {
	m := f.metrics(ppem)
	lineTmpl := text.Line{
		Ascent: m.Ascent,
		// m.Height is equal to m.Ascent + m.Descent + linegap.
		// Compute the descent including the linegap.
		Descent: m.Height - m.Ascent,
	}
	breaks := breakOpportunities(str)
	maxDotX := fixed.I(opts.MaxWidth)
	type state struct {
		r     rune
		adv   fixed.Int26_6
		x     fixed.Int26_6
		idx   int
		valid bool
	}
	var lines []text.Line
	var prev, word state
	var start, bi int
	endLine := func() {
		line := lineTmpl
		line.Text = str[start:prev.idx]
		line.Width = prev.x + prev.adv
		lines = append(lines, line)
		start = prev.idx
		prev = state{idx: start}
		word = state{}
	}
	for prev.idx < len(str) {
		c, s := utf8.DecodeRuneInString(str[prev.idx:])
		nl := c == '\n'
		if opts.SingleLine && nl {
			nl = false
			c = ' '
			s = 1
		}
		a, ok := f.glyphAdvance(ppem, c)
		if !ok {
			prev.idx += s
			continue
		}
		next := state{
			r:     c,
			idx:   prev.idx + s,
			x:     prev.x + prev.adv,
			valid: true,
		}
		if nl {
			// The newline is zero width; use the previous
			// character for line measurements.
			prev.idx = next.idx
			endLine()
			continue
		}
		next.adv = a
		var k fixed.Int26_6
		if prev.valid {
			k = f.kern(ppem, prev.r, next.r)
		}
		// Break the line if we're out of space.
		if prev.idx > start && next.x+next.adv+k >= maxDotX {
			// If the line contains no break opportunity, break off
			// the last rune.
			if !word.valid {
				word = prev
			}
			next.x -= word.x + word.adv
			prev = word
			endLine()
		} else {
			next.adv += k
		}
		for bi < len(breaks) && breaks[bi] < next.idx {
			bi++
		}
		if bi < len(breaks) && breaks[bi] == next.idx {
			word = next
		}
		prev = next
	}
	endLine()
	return lines
}

// breakOpportunities returns the byte offsets in str after which a
// line break is allowed, per UAX#14.
func breakOpportunities(str string) []int {
	seg := segment.NewSegmenter(uax14.NewLineWrap())
	seg.Init(strings.NewReader(str))
	var breaks []int
	pos := 0
	for seg.Next() {
		pos += len(seg.Bytes())
		breaks = append(breaks, pos)
	}
	return breaks
}

func (f *Face) glyphAdvance(ppem fixed.Int26_6, r rune) (fixed.Int26_6, bool) {
	g, err := f.font.GlyphIndex(&f.buf, r)
	if err != nil {
		return 0, false
	}
	adv, err := f.font.GlyphAdvance(&f.buf, g, ppem, hinting)
	return adv, err == nil
}

func (f *Face) kern(ppem fixed.Int26_6, r0, r1 rune) fixed.Int26_6 {
	g0, err := f.font.GlyphIndex(&f.buf, r0)
	if err != nil {
		return 0
	}
	g1, err := f.font.GlyphIndex(&f.buf, r1)
	if err != nil {
		return 0
	}
	adv, err := f.font.Kern(&f.buf, g0, g1, ppem, hinting)
	if err != nil {
		return 0
	}
	return adv
}

func (f *Face) metrics(ppem fixed.Int26_6) font.Metrics {
	m, _ := f.font.Metrics(&f.buf, ppem, hinting)
	return m
}
