package snippet

import (
	"strings"
	"sync"

	"github.com/dshills/inkwell/internal/surface"
)

// SizePx is the fixed pixel size of snippet prefix text.
const SizePx = 24.0

// prefixStyle is the style every snippet prefix carries: bold at the fixed
// snippet size. The user types the snippet body in this style until a later
// formatting command overrides it.
var prefixStyle = surface.Style{Attrs: surface.AttrBold, SizePx: SizePx}

// Inserter inserts snippet tokens at the caret.
type Inserter struct {
	mu       sync.Mutex
	surf     *surface.Adapter
	counters *Counters

	// justInserted is set on snippet insertion and cleared by Tab. Nothing
	// else reads it yet; its lifecycle is kept for the continuation rule.
	justInserted bool
}

// NewInserter creates an inserter over the given surface adapter.
func NewInserter(surf *surface.Adapter) *Inserter {
	return &Inserter{surf: surf, counters: NewCounters()}
}

// Counters returns the inserter's numbered-family counters.
func (i *Inserter) Counters() *Counters {
	return i.counters
}

// JustInserted reports whether the last edit through the inserter was a
// snippet insertion not yet followed by Tab.
func (i *Inserter) JustInserted() bool {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.justInserted
}

// Insert inserts the literal prefix text (e.g. "V: ") as a bold span at the
// caret, replacing any current selection. A line break goes in first when
// the caret's block already holds non-whitespace text. The cursor is left
// collapsed just after the span.
//
// Returns false when no selection exists.
func (i *Inserter) Insert(prefix string) bool {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.insertLocked(prefix)
}

// InsertNumbered inserts the family's numbered prefix (e.g. "C3: ") and
// advances the family counter. The other family's counter is untouched.
//
// Returns false, without advancing the counter, when no selection exists.
func (i *Inserter) InsertNumbered(f Family) bool {
	i.mu.Lock()
	defer i.mu.Unlock()

	if int(f) >= int(familyCount) {
		return false
	}
	if !i.insertLocked(i.counters.label(f)) {
		return false
	}
	i.counters.take(f)
	return true
}

// InsertTabBreak handles the Tab key: it always inserts a line break
// followed by a formatting-reset placeholder, consuming the key so the host
// never sees it as focus navigation. It also clears the just-inserted flag.
//
// Returns false when no selection exists.
func (i *Inserter) InsertTabBreak() bool {
	i.mu.Lock()
	defer i.mu.Unlock()

	ok := i.surf.WithSelection(func(surface.Selection) {
		s := i.surf.Surface()
		s.InsertLineBreak()
		s.InsertFragment(surface.Fragment{{Style: surface.Style{}}})
		s.CollapseAfter()
	})
	if ok {
		i.justInserted = false
	}
	return ok
}

func (i *Inserter) insertLocked(prefix string) bool {
	ok := i.surf.WithSelection(func(sel surface.Selection) {
		s := i.surf.Surface()
		if strings.TrimSpace(s.BlockText(sel.Start().Block)) != "" {
			s.InsertLineBreak()
		}
		s.InsertFragment(surface.Fragment{{Text: prefix, Style: prefixStyle}})
		s.CollapseAfter()
	})
	if ok {
		i.justInserted = true
	}
	return ok
}
