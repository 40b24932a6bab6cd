// Package config loads editor configuration: gesture timing, palette seed
// colors, zoom stepping, keymap overrides, and log level.
//
// Files may be TOML or YAML; loaders produce a generic map that is merged
// over the defaults, so a partial file only overrides what it names. A
// missing file is not an error.
//
// The Watcher is host-facing hot-reload support: a long-running embedding
// application starts one alongside its initial Load and receives each
// successfully reloaded Config through its callback. Short-lived callers
// (the scripted demo binary among them) load once and never start it.
package config
