package config

import (
	"fmt"
	"time"
)

// Config is the full editor configuration.
type Config struct {
	// Gesture controls palette gesture timing.
	Gesture GestureConfig

	// Palette seeds the color slots. Exactly eight values when set; empty
	// means the built-in seed.
	Palette PaletteConfig

	// Zoom controls the display zoom stepping.
	Zoom ZoomConfig

	// Keymap points at user binding overrides.
	Keymap KeymapConfig

	// LogLevel is the editor log level ("debug", "info", "warn", "error").
	LogLevel string
}

// GestureConfig controls gesture disambiguation timing.
type GestureConfig struct {
	// HoldDelay is how long a press is held before edit mode opens.
	HoldDelay time.Duration
}

// PaletteConfig seeds the palette.
type PaletteConfig struct {
	// Colors are the seed values in order. Empty uses the built-in seed.
	Colors []string
}

// ZoomConfig controls the zoom display value.
type ZoomConfig struct {
	// Step is the percent change per zoom keystroke.
	Step int

	// Min and Max bound the zoom percent.
	Min int
	Max int
}

// KeymapConfig points at user keymap overrides.
type KeymapConfig struct {
	// OverridesPath is a JSON bindings file. Empty disables overrides.
	OverridesPath string
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Gesture: GestureConfig{
			HoldDelay: 500 * time.Millisecond,
		},
		Zoom: ZoomConfig{
			Step: 10,
			Min:  50,
			Max:  200,
		},
		LogLevel: "warn",
	}
}

// Validate checks cross-field constraints.
func (c Config) Validate() error {
	if c.Gesture.HoldDelay <= 0 {
		return fmt.Errorf("%w: gesture hold delay must be positive", ErrInvalidValue)
	}
	if n := len(c.Palette.Colors); n != 0 && n != 8 {
		return fmt.Errorf("%w: palette colors must be exactly 8, got %d", ErrInvalidValue, n)
	}
	if c.Zoom.Step <= 0 || c.Zoom.Min <= 0 || c.Zoom.Max < c.Zoom.Min {
		return fmt.Errorf("%w: zoom bounds", ErrInvalidValue)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log level %q", ErrInvalidValue, c.LogLevel)
	}
	return nil
}

// applyMap overlays raw loader output onto the config.
func (c *Config) applyMap(raw map[string]any) {
	if raw == nil {
		return
	}

	if g, ok := raw["gesture"].(map[string]any); ok {
		if ms, ok := toInt(g["hold_millis"]); ok {
			c.Gesture.HoldDelay = time.Duration(ms) * time.Millisecond
		}
	}
	if p, ok := raw["palette"].(map[string]any); ok {
		if colors, ok := toStrings(p["colors"]); ok {
			c.Palette.Colors = colors
		}
	}
	if z, ok := raw["zoom"].(map[string]any); ok {
		if v, ok := toInt(z["step"]); ok {
			c.Zoom.Step = v
		}
		if v, ok := toInt(z["min"]); ok {
			c.Zoom.Min = v
		}
		if v, ok := toInt(z["max"]); ok {
			c.Zoom.Max = v
		}
	}
	if k, ok := raw["keymap"].(map[string]any); ok {
		if s, ok := k["overrides"].(string); ok {
			c.Keymap.OverridesPath = s
		}
	}
	if s, ok := raw["log_level"].(string); ok {
		c.LogLevel = s
	}
}

func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case uint64:
		return int(n), true
	case float64:
		return int(n), true
	default:
		return 0, false
	}
}

func toStrings(v any) ([]string, bool) {
	list, ok := v.([]any)
	if !ok {
		return nil, false
	}
	out := make([]string, 0, len(list))
	for _, item := range list {
		s, ok := item.(string)
		if !ok {
			return nil, false
		}
		out = append(out, s)
	}
	return out, true
}
