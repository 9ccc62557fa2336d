// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers"
	"github.com/tdewolff/canvas/renderers/pdf"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"

	"alertui.org/alert"
	"alertui.org/text"
	"alertui.org/unit"
)

// Canvas units are millimeters. Layout pixels are drawn at one
// printer's point per pixel.
const pxToMM = 25.4 / 72

func (c *cli) renderCommand() *cobra.Command {
	var (
		cfgPath string
		output  string
	)
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Draw the alert into a PDF, SVG or PNG file",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cfgPath)
			if err != nil {
				return err
			}
			return c.runRender(cfg, output)
		},
	}
	cmd.Flags().StringVarP(&cfgPath, "config", "c", "alert.toml", "alert description file")
	cmd.Flags().StringVarP(&output, "output", "o", "alert.pdf", "output file; the extension picks the format")
	return cmd
}

func (c *cli) runRender(cfg *config, output string) error {
	th, err := cfg.theme()
	if err != nil {
		return err
	}
	content, err := cfg.content()
	if err != nil {
		return err
	}
	metric := cfg.metric()
	st := alert.Dialog(th, content)
	res := st.Layout(metric, cfg.viewport(metric))
	c.logger.Debugf("Laid out %dx%d px, %d actions, %v", res.Size.X, res.Size.Y, len(res.Actions), res.Axis)

	d, err := newDrawer(th, metric)
	if err != nil {
		return err
	}
	cv := canvas.New(float64(res.Size.X)*pxToMM, float64(res.Size.Y)*pxToMM)
	ctx := canvas.NewContext(cv)
	ctx.SetCoordSystem(canvas.CartesianIV)
	d.dialog(ctx, st, res)

	if err := writeCanvas(cv, output); err != nil {
		return err
	}
	c.logger.Infof("Wrote %s", output)
	return nil
}

func writeCanvas(cv *canvas.Canvas, path string) error {
	if strings.ToLower(filepath.Ext(path)) != ".pdf" {
		return renderers.Write(path, cv)
	}
	var buf bytes.Buffer
	w := pdf.New(&buf, cv.W, cv.H, nil)
	cv.RenderTo(w)
	if err := w.Close(); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}

// drawer rasterizes dialog elements. The shaper breaks text into the
// same lines the layout measured; the canvas faces only draw them.
type drawer struct {
	shaper text.Shaper
	metric unit.Metric
	family *canvas.FontFamily
}

func newDrawer(th *alert.Theme, metric unit.Metric) (*drawer, error) {
	family := canvas.NewFontFamily("Go")
	for _, f := range []struct {
		ttf   []byte
		style canvas.FontStyle
	}{
		{goregular.TTF, canvas.FontRegular},
		{gomedium.TTF, canvas.FontMedium},
		{gobold.TTF, canvas.FontBold},
	} {
		if err := family.LoadFont(f.ttf, 0, f.style); err != nil {
			return nil, fmt.Errorf("load font: %w", err)
		}
	}
	return &drawer{shaper: th.Shaper, metric: metric, family: family}, nil
}

func (d *drawer) dialog(ctx *canvas.Context, st alert.DialogStyle, res alert.Result) {
	w := float64(res.Size.X) * pxToMM
	h := float64(res.Size.Y) * pxToMM
	corner := float64(d.metric.Dp(13)) * pxToMM

	ctx.SetFillColor(canvas.White)
	ctx.DrawPath(0, 0, canvas.RoundedRectangle(w, h, corner))

	// Wrap at the width the layout measured against, not at the
	// frame width, so the line breaks match.
	contentWidth := d.metric.Dp(alert.MaxWidth) - 2*d.metric.Dp(alert.Inset)
	centerX := res.Size.X / 2
	if st.Content.Title != "" {
		lines := d.shaper.LayoutString(st.TitleFont, fixed.I(d.metric.Sp(st.TitleSize)), st.Content.Title, text.LayoutOptions{MaxWidth: contentWidth})
		face := d.face(st.TitleFont, d.metric.Sp(st.TitleSize), st.TitleColor)
		d.textLines(ctx, face, centerX, res.Title.Min.Y, lines)
	}
	if st.Content.Body != "" {
		lines := d.shaper.LayoutString(st.BodyFont, fixed.I(d.metric.Sp(st.TextSize)), st.Content.Body, text.LayoutOptions{MaxWidth: contentWidth})
		face := d.face(st.BodyFont, d.metric.Sp(st.TextSize), st.TextColor)
		d.textLines(ctx, face, centerX, res.Text.Min.Y, lines)
	}

	ctx.SetFillColor(st.SeparatorColor)
	fillRect(ctx, res.Separator)
	for _, s := range res.ActionSeparators {
		fillRect(ctx, s)
	}

	inset := d.metric.Dp(alert.ButtonTitleInset)
	for i, btn := range res.Actions {
		b := st.Buttons[i]
		lines := d.shaper.LayoutString(b.Font, fixed.I(d.metric.Sp(b.TextSize)), b.Text, text.LayoutOptions{MaxWidth: btn.Dx() - 2*inset})
		face := d.face(b.Font, d.metric.Sp(b.TextSize), b.Color)
		top := btn.Min.Y + (btn.Dy()-blockHeight(lines))/2
		d.textLines(ctx, face, (btn.Min.X+btn.Max.X)/2, top, lines)
	}
}

func (d *drawer) face(f text.Font, sizePx int, col color.RGBA) *canvas.FontFace {
	style := canvas.FontRegular
	switch {
	case f.Weight >= text.Bold:
		style = canvas.FontBold
	case f.Weight >= text.Medium:
		style = canvas.FontMedium
	}
	return d.family.Face(float64(sizePx), col, style, canvas.FontNormal)
}

// textLines draws lines centered at centerX with the first line's top
// at topY, advancing baselines the way the layout folds line heights.
func (d *drawer) textLines(ctx *canvas.Context, face *canvas.FontFace, centerX, topY int, lines []text.Line) {
	y := topY
	var prevDesc fixed.Int26_6
	for _, l := range lines {
		y += (prevDesc + l.Ascent).Ceil()
		prevDesc = l.Descent
		str := strings.TrimRight(l.Text, "\n ")
		if str == "" {
			continue
		}
		ctx.DrawText(float64(centerX)*pxToMM, float64(y)*pxToMM, canvas.NewTextLine(face, str, canvas.Center))
	}
}

// blockHeight is the summed line height of lines, matching the
// measured height of the text block.
func blockHeight(lines []text.Line) int {
	h := 0
	var prevDesc fixed.Int26_6
	for _, l := range lines {
		h += (prevDesc + l.Ascent).Ceil()
		prevDesc = l.Descent
	}
	return h + prevDesc.Ceil()
}

func fillRect(ctx *canvas.Context, r image.Rectangle) {
	if r.Empty() {
		return
	}
	ctx.DrawPath(float64(r.Min.X)*pxToMM, float64(r.Min.Y)*pxToMM,
		canvas.Rectangle(float64(r.Dx())*pxToMM, float64(r.Dy())*pxToMM))
}
