package palette

import (
	"fmt"
	"sync"

	"github.com/lucasb-eyer/go-colorful"
)

// Size is the fixed slot count of every palette.
const Size = 8

// Direction selects a neighbor for Move.
type Direction uint8

const (
	// DirUp moves a slot toward index 0.
	DirUp Direction = iota
	// DirDown moves a slot toward the last index.
	DirDown
)

// String returns a string representation of the direction.
func (d Direction) String() string {
	if d == DirUp {
		return "up"
	}
	return "down"
}

// ForegroundApplier applies a foreground color to the live selection.
// Returns false when no selection exists and nothing was applied.
type ForegroundApplier interface {
	ApplyForeground(color string) bool
}

// Palette is the ordered, fixed-capacity color sequence.
type Palette struct {
	mu      sync.Mutex
	colors  [Size]string
	active  int // last applied slot, -1 when none
	applier ForegroundApplier
}

// defaultSeed is the initial color set.
var defaultSeed = [Size]string{
	"#1a1a1a",
	"#c0392b",
	"#d35400",
	"#b7950b",
	"#1e8449",
	"#1f618d",
	"#6c3483",
	"#7f8c8d",
}

// New creates a palette from a seed of exactly Size colors. Each value must
// parse as a hex color; values are normalized to lowercase "#rrggbb" form.
func New(seed []string, applier ForegroundApplier) (*Palette, error) {
	if len(seed) != Size {
		return nil, fmt.Errorf("%w: got %d", ErrSeedSize, len(seed))
	}

	p := &Palette{active: -1, applier: applier}
	for i, v := range seed {
		norm, err := Normalize(v)
		if err != nil {
			return nil, fmt.Errorf("seed slot %d: %w", i, err)
		}
		p.colors[i] = norm
	}
	return p, nil
}

// Default creates a palette with the built-in seed colors.
func Default(applier ForegroundApplier) *Palette {
	p, err := New(defaultSeed[:], applier)
	if err != nil {
		panic(err) // built-in seed is always valid
	}
	return p
}

// Normalize parses a hex-like color value and returns it in lowercase
// "#rrggbb" form. Both "#abc" and "#aabbcc" inputs are accepted.
func Normalize(v string) (string, error) {
	if len(v) == 4 && v[0] == '#' {
		v = string([]byte{'#', v[1], v[1], v[2], v[2], v[3], v[3]})
	}
	c, err := colorful.Hex(v)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidColor, v)
	}
	return c.Hex(), nil
}

// Colors returns a copy of the ordered color values.
func (p *Palette) Colors() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, Size)
	copy(out, p.colors[:])
	return out
}

// Color returns the value at index, or false when out of range.
func (p *Palette) Color(index int) (string, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if index < 0 || index >= Size {
		return "", false
	}
	return p.colors[index], true
}

// ActiveIndex returns the last explicitly applied slot, or false when no
// color has been applied. The index is not remapped when the palette is
// later reordered.
func (p *Palette) ActiveIndex() (int, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.active < 0 {
		return 0, false
	}
	return p.active, true
}

// Apply applies the color at index to the live selection and records the
// slot as active. A no-op returning false when the index is out of range or
// no selection exists.
func (p *Palette) Apply(index int) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if index < 0 || index >= Size || p.applier == nil {
		return false
	}
	if !p.applier.ApplyForeground(p.colors[index]) {
		return false
	}
	p.active = index
	return true
}

// Move swaps the slot at index with its immediate neighbor in the given
// direction. The first slot cannot move up and the last cannot move down;
// both are silent no-ops returning false.
func (p *Palette) Move(index int, dir Direction) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if index < 0 || index >= Size {
		return false
	}

	neighbor := index - 1
	if dir == DirDown {
		neighbor = index + 1
	}
	if neighbor < 0 || neighbor >= Size {
		return false
	}

	p.colors[index], p.colors[neighbor] = p.colors[neighbor], p.colors[index]
	return true
}

// ReorderByDrag removes the slot at source and reinserts it at target, with
// the slots between shifting one position (splice, not swap). A no-op
// returning false when source equals target or either index is out of
// range. The active index is not remapped.
func (p *Palette) ReorderByDrag(source, target int) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if source == target {
		return false
	}
	if source < 0 || source >= Size || target < 0 || target >= Size {
		return false
	}

	moved := p.colors[source]
	if source < target {
		copy(p.colors[source:target], p.colors[source+1:target+1])
	} else {
		copy(p.colors[target+1:source+1], p.colors[target:source])
	}
	p.colors[target] = moved
	return true
}

// Edit replaces the value at index in place. The value is validated and
// normalized; the sequence length and every other slot are untouched, and
// the active index is unchanged regardless of which slot was edited.
func (p *Palette) Edit(index int, value string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if index < 0 || index >= Size {
		return fmt.Errorf("%w: %d", ErrIndexRange, index)
	}

	norm, err := Normalize(value)
	if err != nil {
		return err
	}
	p.colors[index] = norm
	return nil
}
