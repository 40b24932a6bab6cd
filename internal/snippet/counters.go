package snippet

import "fmt"

// Family identifies a numbered snippet prefix family.
type Family uint8

const (
	// FamilyVerse numbers snippets with the "V" prefix.
	FamilyVerse Family = iota
	// FamilyChorus numbers snippets with the "C" prefix.
	FamilyChorus

	familyCount
)

// Prefix returns the family's literal prefix letter.
func (f Family) Prefix() string {
	switch f {
	case FamilyVerse:
		return "V"
	case FamilyChorus:
		return "C"
	default:
		return ""
	}
}

// String returns a string representation of the family.
func (f Family) String() string {
	switch f {
	case FamilyVerse:
		return "verse"
	case FamilyChorus:
		return "chorus"
	default:
		return "unknown"
	}
}

// Counters holds one monotonic counter per numbered family. Counters start
// at 1, advance only on successful insertion, and are never reset for the
// life of the editor instance.
type Counters struct {
	next [familyCount]int
}

// NewCounters creates counters with every family at 1.
func NewCounters() *Counters {
	c := &Counters{}
	for i := range c.next {
		c.next[i] = 1
	}
	return c
}

// Peek returns the value the family's next snippet will carry.
func (c *Counters) Peek(f Family) int {
	if int(f) >= len(c.next) {
		return 0
	}
	return c.next[f]
}

// take returns the family's current value and advances it.
func (c *Counters) take(f Family) int {
	n := c.next[f]
	c.next[f]++
	return n
}

// label formats the numbered prefix text for the family's next snippet.
func (c *Counters) label(f Family) string {
	return fmt.Sprintf("%s%d: ", f.Prefix(), c.next[f])
}
