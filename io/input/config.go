// SPDX-License-Identifier: Unlicense OR MIT

package input

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/lattice-ui/lattice/f32"
	"github.com/lattice-ui/lattice/io/key"
	"github.com/lattice-ui/lattice/unit"
)

// Config is event handling configuration. It serializes to TOML;
// absent fields take the Defaults values.
type Config struct {
	// MenuDelayMs is the delay before opening or closing menus on
	// mouse hover.
	MenuDelayMs uint32 `toml:"menu_delay_ms"`

	// TouchSelectDelayMs is the delay before a touch press switches
	// from panning to text selection mode.
	TouchSelectDelayMs uint32 `toml:"touch_select_delay_ms"`

	// KineticTimeoutMs is the maximum time between the last press
	// movement and release for the release to start kinetic
	// scrolling.
	KineticTimeoutMs uint32 `toml:"kinetic_timeout_ms"`

	// KineticDecayMul is the exponential velocity decay factor,
	// applied per second. This is the dominant decay at high speeds;
	// 1 means no decay, 0 an instant stop.
	KineticDecayMul float32 `toml:"kinetic_decay_mul"`

	// KineticDecaySub is the linear velocity decay in pixels per
	// second. This is the dominant decay at low speeds.
	KineticDecaySub float32 `toml:"kinetic_decay_sub"`

	// KineticGrabSub is the extra linear decay, in pixels per second,
	// applied while a scrolling region is grabbed.
	KineticGrabSub float32 `toml:"kinetic_grab_sub"`

	// ScrollDistDp is the distance to scroll per mouse wheel line.
	ScrollDistDp float32 `toml:"scroll_dist_dp"`

	// PanDistThreshDp is the drag distance before panning starts.
	PanDistThreshDp float32 `toml:"pan_dist_thresh_dp"`

	// MousePan controls when unhandled mouse drags pan general
	// widgets.
	MousePan MousePan `toml:"mouse_pan"`

	// MouseTextPan controls when mouse drags pan text widgets, where
	// panning conflicts with text selection.
	MouseTextPan MousePan `toml:"mouse_text_pan"`

	// MouseWheelActions allows the mouse wheel to trigger actions
	// such as switching the selected item of a list.
	MouseWheelActions bool `toml:"mouse_wheel_actions"`

	// MouseNavFocus: mouse clicks set navigation focus.
	MouseNavFocus bool `toml:"mouse_nav_focus"`

	// TouchNavFocus: touch presses set navigation focus.
	TouchNavFocus bool `toml:"touch_nav_focus"`

	// NavFocus enables keyboard navigation focus entirely.
	NavFocus bool `toml:"nav_focus"`
}

// Defaults returns the default configuration.
func Defaults() Config {
	return Config{
		MenuDelayMs:        250,
		TouchSelectDelayMs: 1000,
		KineticTimeoutMs:   50,
		KineticDecayMul:    0.625,
		KineticDecaySub:    200,
		KineticGrabSub:     10000,
		ScrollDistDp:       24,
		PanDistThreshDp:    4,
		MousePan:           MousePanWithAlt,
		MouseTextPan:       MousePanWithCtrl,
		MouseWheelActions:  true,
		MouseNavFocus:      true,
		TouchNavFocus:      true,
		NavFocus:           true,
	}
}

// LoadConfig reads configuration from a TOML file, merging it over
// the defaults. A missing file yields the defaults without error.
func LoadConfig(path string) (Config, error) {
	cfg := Defaults()
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	} else if err != nil {
		return cfg, fmt.Errorf("input: read config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Defaults(), fmt.Errorf("input: parse config: %w", err)
	}
	return cfg, nil
}

// Save writes the configuration to a TOML file.
func (c Config) Save(path string) error {
	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("input: encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("input: write config: %w", err)
	}
	return nil
}

// MousePan says when click-drag pans (scrolls) a widget.
type MousePan uint8

const (
	// MousePanNever disables mouse panning.
	MousePanNever MousePan = iota
	// MousePanWithAlt pans when the alt key is held.
	MousePanWithAlt
	// MousePanWithCtrl pans when the ctrl key is held.
	MousePanWithCtrl
	// MousePanAlways pans on any unhandled drag.
	MousePanAlways
)

// IsActive reports whether panning applies under the given modifiers.
func (p MousePan) IsActive(mods key.Modifiers) bool {
	switch p {
	case MousePanNever:
		return false
	case MousePanWithAlt:
		return mods.Contain(key.ModAlt)
	case MousePanWithCtrl:
		return mods.Contain(key.ModCtrl)
	case MousePanAlways:
		return true
	default:
		panic("unexpected MousePan value")
	}
}

var mousePanNames = map[MousePan]string{
	MousePanNever:    "never",
	MousePanWithAlt:  "with_alt",
	MousePanWithCtrl: "with_ctrl",
	MousePanAlways:   "always",
}

func (p MousePan) MarshalText() ([]byte, error) {
	name, ok := mousePanNames[p]
	if !ok {
		return nil, fmt.Errorf("input: unknown MousePan value %d", p)
	}
	return []byte(name), nil
}

func (p *MousePan) UnmarshalText(text []byte) error {
	for v, name := range mousePanNames {
		if name == string(text) {
			*p = v
			return nil
		}
	}
	return fmt.Errorf("input: unknown MousePan %q", text)
}

func (p MousePan) String() string {
	name, ok := mousePanNames[p]
	if !ok {
		panic("unexpected MousePan value")
	}
	return name
}

// WindowConfig is the configuration adjusted for one window's scale.
type WindowConfig struct {
	base   Config
	metric unit.Metric
}

// NewWindowConfig pairs a configuration with a window metric.
func NewWindowConfig(base Config, metric unit.Metric) WindowConfig {
	return WindowConfig{base: base, metric: metric}
}

// Base returns the unscaled configuration.
func (c *WindowConfig) Base() Config {
	return c.base
}

// SetMetric updates the window scale.
func (c *WindowConfig) SetMetric(metric unit.Metric) {
	c.metric = metric
}

// MenuDelay before opening/closing menus on mouse hover.
func (c *WindowConfig) MenuDelay() time.Duration {
	return time.Duration(c.base.MenuDelayMs) * time.Millisecond
}

// TouchSelectDelay before switching from panning to text selection.
func (c *WindowConfig) TouchSelectDelay() time.Duration {
	return time.Duration(c.base.TouchSelectDelayMs) * time.Millisecond
}

// KineticTimeout is the maximum pause between press movement and
// release which still starts kinetic scrolling.
func (c *WindowConfig) KineticTimeout() time.Duration {
	return time.Duration(c.base.KineticTimeoutMs) * time.Millisecond
}

// KineticDecay returns the exponential and linear velocity decay, the
// latter scaled to pixels per second.
func (c *WindowConfig) KineticDecay() (mul, sub float32) {
	return c.base.KineticDecayMul, c.metric.PxF32(unit.Dp(c.base.KineticDecaySub))
}

// KineticGrabSub is the grabbed decay rate in pixels per second.
func (c *WindowConfig) KineticGrabSub() float32 {
	return c.metric.PxF32(unit.Dp(c.base.KineticGrabSub))
}

// ScrollDistance converts wheel lines to a pixel offset.
func (c *WindowConfig) ScrollDistance(lines f32.Point) f32.Point {
	d := c.metric.PxF32(unit.Dp(c.base.ScrollDistDp))
	return f32.Point{X: d * lines.X, Y: d * lines.Y}
}

// PanDistThresh is the pixel drag distance before panning starts.
func (c *WindowConfig) PanDistThresh() float32 {
	return c.metric.PxF32(unit.Dp(c.base.PanDistThreshDp))
}

// MousePanActive reports whether an unhandled mouse drag should pan
// under the held modifiers.
func (c *WindowConfig) MousePanActive(mods key.Modifiers) bool {
	return c.base.MousePan.IsActive(mods)
}

// MouseTextPanActive is the MousePanActive variant for text widgets.
func (c *WindowConfig) MouseTextPanActive(mods key.Modifiers) bool {
	return c.base.MouseTextPan.IsActive(mods)
}

// MouseWheelActions reports whether the mouse wheel may trigger
// widget actions beyond scrolling.
func (c *WindowConfig) MouseWheelActions() bool {
	return c.base.MouseWheelActions
}

// MouseNavFocus: mouse clicks set navigation focus.
func (c *WindowConfig) MouseNavFocus() bool {
	return c.base.NavFocus && c.base.MouseNavFocus
}

// TouchNavFocus: touch presses set navigation focus.
func (c *WindowConfig) TouchNavFocus() bool {
	return c.base.NavFocus && c.base.TouchNavFocus
}
