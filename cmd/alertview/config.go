// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"fmt"
	"image"
	"image/color"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"alertui.org/alert"
	"alertui.org/font/gofont"
	"alertui.org/layout"
	"alertui.org/unit"
)

// config describes one alert: its content, an arrangement hint, theme
// color overrides and the host display parameters.
type config struct {
	Title   string         `toml:"title"`
	Body    string         `toml:"body"`
	Layout  string         `toml:"layout"`
	Actions []actionConfig `toml:"action"`

	// Scale is the device pixel density in pixels per dp.
	Scale float32 `toml:"scale"`
	// Width and Height are the host view bounds in dp.
	Width  int `toml:"width"`
	Height int `toml:"height"`

	Theme themeConfig `toml:"theme"`
}

type actionConfig struct {
	Kind     string `toml:"kind"`
	Title    string `toml:"title"`
	Disabled bool   `toml:"disabled"`
}

// themeConfig overrides theme colors with #rrggbb or #aarrggbb
// values. Empty fields keep the theme defaults.
type themeConfig struct {
	Accent      string `toml:"accent"`
	Destructive string `toml:"destructive"`
	Disabled    string `toml:"disabled"`
	Primary     string `toml:"primary"`
	Separator   string `toml:"separator"`
	Highlight   string `toml:"highlight"`
}

func loadConfig(path string) (*config, error) {
	cfg := &config{
		Scale:  1,
		Width:  320,
		Height: 568,
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	if cfg.Scale <= 0 {
		return nil, fmt.Errorf("load %s: scale must be positive", path)
	}
	return cfg, nil
}

// content assembles the alert content, rejecting unknown action kinds
// and arrangement hints. Actions without a kind are generic.
func (c *config) content() (alert.Content, error) {
	content := alert.Content{
		Title: c.Title,
		Body:  c.Body,
	}
	switch strings.ToLower(c.Layout) {
	case "", "horizontal":
		content.Hint = layout.Horizontal
	case "vertical":
		content.Hint = layout.Vertical
	default:
		return alert.Content{}, fmt.Errorf("unknown layout %q", c.Layout)
	}
	for _, a := range c.Actions {
		kind := alert.Generic
		if a.Kind != "" {
			var err error
			kind, err = alert.ParseKind(a.Kind)
			if err != nil {
				return alert.Content{}, err
			}
		}
		content.Actions = append(content.Actions, alert.Action{
			Kind:     kind,
			Title:    a.Title,
			Disabled: a.Disabled,
		})
	}
	return content, nil
}

// theme builds the alert theme from the Go font collection and the
// configured color overrides.
func (c *config) theme() (*alert.Theme, error) {
	th := alert.NewTheme(gofont.Collection())
	for _, o := range []struct {
		hex string
		dst *color.RGBA
	}{
		{c.Theme.Accent, &th.Color.Accent},
		{c.Theme.Destructive, &th.Color.Destructive},
		{c.Theme.Disabled, &th.Color.Disabled},
		{c.Theme.Primary, &th.Color.Primary},
		{c.Theme.Separator, &th.Color.Separator},
		{c.Theme.Highlight, &th.Color.Highlight},
	} {
		if o.hex == "" {
			continue
		}
		col, err := parseColor(o.hex)
		if err != nil {
			return nil, err
		}
		*o.dst = col
	}
	return th, nil
}

func (c *config) metric() unit.Metric {
	return unit.Metric{PxPerDp: c.Scale, PxPerSp: c.Scale}
}

func (c *config) viewport(m unit.Metric) image.Point {
	return image.Pt(m.Dp(unit.Dp(c.Width)), m.Dp(unit.Dp(c.Height)))
}

// parseColor parses #rrggbb and #aarrggbb colors.
func parseColor(s string) (color.RGBA, error) {
	h := strings.TrimPrefix(s, "#")
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	switch len(h) {
	case 6:
		v |= 0xff000000
	case 8:
	default:
		return color.RGBA{}, fmt.Errorf("parse color %q: want #rrggbb or #aarrggbb", s)
	}
	return color.RGBA{
		A: uint8(v >> 24),
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}, nil
}
