// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/BurntSushi/toml"

	"alertui.org/alert"
	"alertui.org/layout"
)

const testTOML = `
title = "Delete note"
body = "This cannot be undone."
layout = "vertical"
scale = 2.0
width = 375
height = 667

[theme]
accent = "#ff8800"

[[action]]
kind = "destructive"
title = "Delete"

[[action]]
kind = "default"
title = "Keep"
disabled = true

[[action]]
title = "Cancel"
`

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "alert.toml")
	if err := os.WriteFile(path, []byte(testTOML), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Title != "Delete note" {
		t.Errorf("got title %q, expected %q", cfg.Title, "Delete note")
	}
	if cfg.Scale != 2 {
		t.Errorf("got scale %g, expected 2", cfg.Scale)
	}
	if len(cfg.Actions) != 3 {
		t.Fatalf("got %d actions, expected 3", len(cfg.Actions))
	}
	if !cfg.Actions[1].Disabled {
		t.Error("second action is not disabled")
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "alert.toml")
	if err := os.WriteFile(path, []byte(`body = "hi"`), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Scale != 1 {
		t.Errorf("got default scale %g, expected 1", cfg.Scale)
	}
	if cfg.Width != 320 || cfg.Height != 568 {
		t.Errorf("got default bounds %dx%d, expected 320x568", cfg.Width, cfg.Height)
	}
}

func TestLoadConfigBadScale(t *testing.T) {
	path := filepath.Join(t.TempDir(), "alert.toml")
	if err := os.WriteFile(path, []byte(`scale = -1.0`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := loadConfig(path); err == nil {
		t.Error("negative scale was accepted")
	}
}

func TestConfigContent(t *testing.T) {
	var cfg config
	if _, err := toml.Decode(testTOML, &cfg); err != nil {
		t.Fatal(err)
	}
	content, err := cfg.content()
	if err != nil {
		t.Fatal(err)
	}
	if content.Hint != layout.Vertical {
		t.Errorf("got hint %v, expected Vertical", content.Hint)
	}
	kinds := []alert.Kind{alert.Destructive, alert.Default, alert.Generic}
	for i, k := range kinds {
		if got := content.Actions[i].Kind; got != k {
			t.Errorf("action %d: got kind %v, expected %v", i, got, k)
		}
	}
}

func TestConfigContentUnknownKind(t *testing.T) {
	cfg := config{
		Actions: []actionConfig{{Kind: "cancel", Title: "Cancel"}},
	}
	if _, err := cfg.content(); err == nil {
		t.Error("unknown action kind was accepted")
	}
}

func TestConfigContentUnknownLayout(t *testing.T) {
	cfg := config{Layout: "diagonal"}
	if _, err := cfg.content(); err == nil {
		t.Error("unknown layout was accepted")
	}
}

func TestConfigTheme(t *testing.T) {
	var cfg config
	if _, err := toml.Decode(testTOML, &cfg); err != nil {
		t.Fatal(err)
	}
	th, err := cfg.theme()
	if err != nil {
		t.Fatal(err)
	}
	accent := color.RGBA{A: 0xff, R: 0xff, G: 0x88, B: 0x00}
	if th.Color.Accent != accent {
		t.Errorf("got accent %v, expected %v", th.Color.Accent, accent)
	}
	def := alert.NewTheme(nil)
	if th.Color.Destructive != def.Color.Destructive {
		t.Error("destructive color does not keep the theme default")
	}
}

func TestConfigThemeBadColor(t *testing.T) {
	cfg := config{Theme: themeConfig{Accent: "red"}}
	if _, err := cfg.theme(); err == nil {
		t.Error("non-hex color was accepted")
	}
}

func TestConfigViewport(t *testing.T) {
	cfg := config{Scale: 2, Width: 375, Height: 667}
	got := cfg.viewport(cfg.metric())
	if expected := image.Pt(750, 1334); got != expected {
		t.Errorf("got viewport %v, expected %v", got, expected)
	}
}

func TestParseColor(t *testing.T) {
	for _, tc := range []struct {
		hex string
		col color.RGBA
	}{
		{"#007aff", color.RGBA{A: 0xff, R: 0x00, G: 0x7a, B: 0xff}},
		{"c8c7cc", color.RGBA{A: 0xff, R: 0xc8, G: 0xc7, B: 0xcc}},
		{"#1a000000", color.RGBA{A: 0x1a}},
	} {
		got, err := parseColor(tc.hex)
		if err != nil {
			t.Errorf("parse %q: %v", tc.hex, err)
			continue
		}
		if got != tc.col {
			t.Errorf("parse %q: got %v, expected %v", tc.hex, got, tc.col)
		}
	}
	for _, bad := range []string{"", "#ff", "#gggggg", "#12345"} {
		if _, err := parseColor(bad); err == nil {
			t.Errorf("parse %q: bad color was accepted", bad)
		}
	}
}
