package keymap

import (
	"fmt"

	"github.com/tidwall/gjson"
)

// LoadJSON installs user binding overrides from a JSON document of the form:
//
//	{"bindings": [
//	  {"chord": "C-S-b", "action": "format.toggleBold"},
//	  {"chord": "C-S-j", "action": "palette.apply", "index": 3}
//	]}
//
// Overrides shadow defaults for the same chord. Returns the number of
// bindings installed.
func (k *Keymap) LoadJSON(data []byte) (int, error) {
	if !gjson.ValidBytes(data) {
		return 0, fmt.Errorf("keymap overrides: invalid JSON")
	}

	doc := gjson.ParseBytes(data)
	list := doc.Get("bindings")
	if !list.Exists() {
		return 0, nil
	}
	if !list.IsArray() {
		return 0, fmt.Errorf("keymap overrides: bindings must be an array")
	}

	count := 0
	var loadErr error
	list.ForEach(func(_, entry gjson.Result) bool {
		chord := entry.Get("chord").String()
		action := entry.Get("action").String()
		if chord == "" || action == "" {
			loadErr = fmt.Errorf("keymap overrides: binding %d missing chord or action", count)
			return false
		}

		b := NewBinding(chord, action).
			WithDescription(entry.Get("description").String())
		if idx := entry.Get("index"); idx.Exists() {
			b = b.WithIndex(int(idx.Int()))
		}
		if delta := entry.Get("delta"); delta.Exists() {
			b = b.WithDelta(delta.Float())
		}
		if level := entry.Get("level"); level.Exists() {
			b = b.WithLevel(int(level.Int()))
		}

		if err := k.Add(b); err != nil {
			loadErr = err
			return false
		}
		count++
		return true
	})
	if loadErr != nil {
		return count, loadErr
	}
	return count, nil
}
