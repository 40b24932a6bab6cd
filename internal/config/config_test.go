package config

import (
	"errors"
	"reflect"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Gesture.HoldDelay != 500*time.Millisecond {
		t.Errorf("hold delay = %v", cfg.Gesture.HoldDelay)
	}
	if cfg.Zoom.Step != 10 || cfg.Zoom.Min != 50 || cfg.Zoom.Max != 200 {
		t.Errorf("zoom = %+v", cfg.Zoom)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("log level = %q", cfg.LogLevel)
	}
	if len(cfg.Palette.Colors) != 0 {
		t.Error("defaults must defer to the built-in palette seed")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults must validate: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"defaults", func(*Config) {}, true},
		{"zero hold delay", func(c *Config) { c.Gesture.HoldDelay = 0 }, false},
		{"palette wrong size", func(c *Config) { c.Palette.Colors = []string{"#fff"} }, false},
		{"palette full size", func(c *Config) {
			c.Palette.Colors = make([]string, 8)
		}, true},
		{"zoom step zero", func(c *Config) { c.Zoom.Step = 0 }, false},
		{"zoom max below min", func(c *Config) { c.Zoom.Max = 40 }, false},
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.ok && err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
			if !tt.ok {
				if err == nil {
					t.Fatal("Validate() = nil, want error")
				}
				if !errors.Is(err, ErrInvalidValue) {
					t.Errorf("error = %v, want ErrInvalidValue", err)
				}
			}
		})
	}
}

func TestApplyMapPartialOverlay(t *testing.T) {
	cfg := DefaultConfig()
	cfg.applyMap(map[string]any{
		"gesture": map[string]any{"hold_millis": int64(750)},
		"zoom":    map[string]any{"step": int64(25)},
	})

	if cfg.Gesture.HoldDelay != 750*time.Millisecond {
		t.Errorf("hold delay = %v", cfg.Gesture.HoldDelay)
	}
	if cfg.Zoom.Step != 25 {
		t.Errorf("zoom step = %d", cfg.Zoom.Step)
	}

	// Untouched keys keep their defaults.
	if cfg.Zoom.Min != 50 || cfg.Zoom.Max != 200 {
		t.Errorf("zoom bounds changed: %+v", cfg.Zoom)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("log level changed: %q", cfg.LogLevel)
	}
}

func TestApplyMapAllKeys(t *testing.T) {
	colors := []any{
		"#111111", "#222222", "#333333", "#444444",
		"#555555", "#666666", "#777777", "#888888",
	}
	cfg := DefaultConfig()
	cfg.applyMap(map[string]any{
		"palette":   map[string]any{"colors": colors},
		"keymap":    map[string]any{"overrides": "/tmp/keys.json"},
		"log_level": "debug",
	})

	if len(cfg.Palette.Colors) != 8 || cfg.Palette.Colors[0] != "#111111" {
		t.Errorf("palette = %v", cfg.Palette.Colors)
	}
	if cfg.Keymap.OverridesPath != "/tmp/keys.json" {
		t.Errorf("overrides path = %q", cfg.Keymap.OverridesPath)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("log level = %q", cfg.LogLevel)
	}
}

func TestApplyMapIgnoresWrongTypes(t *testing.T) {
	cfg := DefaultConfig()
	cfg.applyMap(map[string]any{
		"gesture":   map[string]any{"hold_millis": "soon"},
		"palette":   map[string]any{"colors": []any{"#111111", 42}},
		"log_level": 3,
	})

	if !reflect.DeepEqual(cfg, DefaultConfig()) {
		t.Errorf("mistyped values must be ignored, got %+v", cfg)
	}
}

func TestForPathUnknownExtension(t *testing.T) {
	if _, err := ForPath("config.ini"); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("error = %v, want ErrUnknownFormat", err)
	}
}

func TestDeepMerge(t *testing.T) {
	dst := map[string]any{
		"zoom":      map[string]any{"step": 10, "min": 50},
		"log_level": "warn",
	}
	src := map[string]any{
		"zoom":      map[string]any{"step": 20},
		"log_level": "debug",
		"extra":     true,
	}

	got := DeepMerge(dst, src)

	zoom := got["zoom"].(map[string]any)
	if zoom["step"] != 20 {
		t.Errorf("step = %v, want src value", zoom["step"])
	}
	if zoom["min"] != 50 {
		t.Errorf("min = %v, want dst value preserved", zoom["min"])
	}
	if got["log_level"] != "debug" || got["extra"] != true {
		t.Errorf("scalars = %v / %v", got["log_level"], got["extra"])
	}
}

func TestDeepMergeNilDst(t *testing.T) {
	got := DeepMerge(nil, map[string]any{"a": 1})
	if got["a"] != 1 {
		t.Errorf("got = %v", got)
	}
}
