package palette

import (
	"fmt"

	"github.com/tidwall/sjson"
)

// Snapshot renders the palette as a JSON document for debug output:
// the ordered colors plus the active index (-1 when none).
func (p *Palette) Snapshot() (string, error) {
	p.mu.Lock()
	colors := make([]string, Size)
	copy(colors, p.colors[:])
	active := p.active
	p.mu.Unlock()

	out := "{}"
	var err error
	for i, c := range colors {
		out, err = sjson.Set(out, fmt.Sprintf("colors.%d", i), c)
		if err != nil {
			return "", fmt.Errorf("snapshot colors: %w", err)
		}
	}
	out, err = sjson.Set(out, "active", active)
	if err != nil {
		return "", fmt.Errorf("snapshot active: %w", err)
	}
	return out, nil
}
