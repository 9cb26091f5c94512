// SPDX-License-Identifier: Unlicense OR MIT

package input

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/lattice-ui/lattice/f32"
	"github.com/lattice-ui/lattice/io/key"
	"github.com/lattice-ui/lattice/unit"
)

func TestConfigRoundTrip(t *testing.T) {
	cfg := Defaults()
	cfg.MenuDelayMs = 500
	cfg.MousePan = MousePanAlways
	cfg.NavFocus = false

	path := filepath.Join(t.TempDir(), "input.toml")
	if err := cfg.Save(path); err != nil {
		t.Fatal(err)
	}
	got, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if got != cfg {
		t.Errorf("round trip mismatch:\ngot  %+v\nwant %+v", got, cfg)
	}
}

func TestConfigMissingFile(t *testing.T) {
	got, err := LoadConfig(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatal(err)
	}
	if got != Defaults() {
		t.Error("expected defaults for a missing file")
	}
}

func TestConfigPartialFile(t *testing.T) {
	// Absent fields keep their default values.
	path := filepath.Join(t.TempDir(), "input.toml")
	writeFile(t, path, "menu_delay_ms = 100\nmouse_pan = \"never\"\n")

	got, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	want := Defaults()
	want.MenuDelayMs = 100
	want.MousePan = MousePanNever
	if got != want {
		t.Errorf("merge mismatch:\ngot  %+v\nwant %+v", got, want)
	}
}

func TestConfigBadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.toml")
	writeFile(t, path, "mouse_pan = \"sideways\"\n")

	got, err := LoadConfig(path)
	if err == nil {
		t.Fatal("expected an error for an unknown enum value")
	}
	if got != Defaults() {
		t.Error("expected defaults on a parse error")
	}
}

func TestMousePanActive(t *testing.T) {
	cases := []struct {
		pan  MousePan
		mods key.Modifiers
		want bool
	}{
		{MousePanNever, key.ModAlt, false},
		{MousePanWithAlt, 0, false},
		{MousePanWithAlt, key.ModAlt, true},
		{MousePanWithCtrl, key.ModCtrl, true},
		{MousePanWithCtrl, key.ModAlt, false},
		{MousePanAlways, 0, true},
	}
	for _, c := range cases {
		if got := c.pan.IsActive(c.mods); got != c.want {
			t.Errorf("%v.IsActive(%v) = %v, want %v", c.pan, c.mods, got, c.want)
		}
	}
}

func TestWindowConfigScaling(t *testing.T) {
	cfg := NewWindowConfig(Defaults(), unit.Metric{PxPerDp: 2})

	if d := cfg.MenuDelay(); d != 250*time.Millisecond {
		t.Errorf("unexpected menu delay %v", d)
	}
	if d := cfg.ScrollDistance(f32.Point{Y: 1}); d != (f32.Point{Y: 48}) {
		t.Errorf("unexpected scroll distance %v", d)
	}
	if d := cfg.PanDistThresh(); d != 8 {
		t.Errorf("unexpected pan threshold %v", d)
	}
	if _, sub := cfg.KineticDecay(); sub != 400 {
		t.Errorf("unexpected kinetic decay %v", sub)
	}

	cfg.SetMetric(unit.Metric{PxPerDp: 1})
	if d := cfg.PanDistThresh(); d != 4 {
		t.Errorf("unexpected pan threshold after rescale %v", d)
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}
