package keymap

import (
	"fmt"
	"sync"

	"github.com/dshills/inkwell/internal/input"
	"github.com/dshills/inkwell/internal/input/key"
)

// Keymap resolves key events to actions. Later additions shadow earlier
// ones for the same chord, so user overrides win over defaults.
type Keymap struct {
	mu       sync.RWMutex
	bindings map[string]Binding // canonical chord -> binding
}

// New creates an empty keymap.
func New() *Keymap {
	return &Keymap{bindings: make(map[string]Binding)}
}

// NewDefault creates a keymap preloaded with the built-in bindings.
func NewDefault() *Keymap {
	km := New()
	for _, b := range DefaultBindings() {
		// Built-in chords are statically known to parse.
		if err := km.Add(b); err != nil {
			panic(err)
		}
	}
	return km
}

// Add installs a binding, replacing any existing binding for the chord.
func (k *Keymap) Add(b Binding) error {
	ev, err := key.Parse(b.Chord)
	if err != nil {
		return fmt.Errorf("binding %q: %w", b.Chord, err)
	}

	k.mu.Lock()
	defer k.mu.Unlock()
	k.bindings[ev.Chord()] = b
	return nil
}

// Resolve maps a key event to its action. Returns false when no binding
// covers the chord.
func (k *Keymap) Resolve(ev key.Event) (input.Action, bool) {
	k.mu.RLock()
	defer k.mu.RUnlock()

	b, ok := k.bindings[ev.Chord()]
	if !ok {
		return input.Action{}, false
	}
	return input.Action{
		Name:   b.Action,
		Args:   b.Args,
		Source: input.SourceKeyboard,
	}, true
}

// Len returns the number of installed bindings.
func (k *Keymap) Len() int {
	k.mu.RLock()
	defer k.mu.RUnlock()
	return len(k.bindings)
}
