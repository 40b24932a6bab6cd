package format

import (
	"sync"

	"github.com/dshills/inkwell/internal/schedule"
	"github.com/dshills/inkwell/internal/surface"
)

// Dispatcher routes formatting commands to the host surface and keeps the
// active FormatState current.
type Dispatcher struct {
	mu    sync.Mutex
	surf  *surface.Adapter
	sched *schedule.Queue
	state State
}

// NewDispatcher creates a dispatcher over the given surface adapter and run
// queue.
func NewDispatcher(surf *surface.Adapter, sched *schedule.Queue) *Dispatcher {
	return &Dispatcher{surf: surf, sched: sched}
}

// ToggleInline flips an inline attribute on the current selection. On a
// collapsed selection the host establishes typing state instead. Toggling
// the same attribute twice restores the prior FormatState.
//
// Returns the refresh token for the deferred state re-query, or the zero
// token when no selection existed and nothing happened.
func (d *Dispatcher) ToggleInline(attr surface.Attr) schedule.Token {
	applied := d.surf.WithSelection(func(surface.Selection) {
		d.surf.Surface().ToggleInline(attr)
	})
	if !applied {
		return schedule.Token{}
	}
	return d.deferRefresh()
}

// SetBlock replaces the block wrapper of every block touched by the
// selection. Heading level 0 is the paragraph sentinel and clears block
// formatting.
func (d *Dispatcher) SetBlock(level int) schedule.Token {
	kind := surface.BlockFromHeadingLevel(level)
	applied := d.surf.WithSelection(func(surface.Selection) {
		d.surf.Surface().SetBlock(kind)
	})
	if !applied {
		return schedule.Token{}
	}
	return d.deferRefresh()
}

// ToggleList toggles the selection's blocks between the given list kind and
// plain paragraphs.
func (d *Dispatcher) ToggleList(kind surface.BlockKind) schedule.Token {
	if !kind.IsList() {
		return schedule.Token{}
	}
	applied := d.surf.WithSelection(func(surface.Selection) {
		s := d.surf.Surface()
		if s.IsBlockActive(kind) {
			s.SetBlock(surface.BlockParagraph)
		} else {
			s.SetBlock(kind)
		}
	})
	if !applied {
		return schedule.Token{}
	}
	return d.deferRefresh()
}

// ApplyForeground sets the foreground color of the current selection.
func (d *Dispatcher) ApplyForeground(color string) schedule.Token {
	applied := d.surf.WithSelection(func(surface.Selection) {
		d.surf.Surface().ApplyForeground(color)
	})
	if !applied {
		return schedule.Token{}
	}
	return d.deferRefresh()
}

// QueryActiveFormats returns the most recently computed FormatState. It
// reflects the selection as of the last completed refresh turn.
func (d *Dispatcher) QueryActiveFormats() State {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state
}

// SelectionChanged schedules a state refresh in response to a cursor-moving
// interaction. Every cursor move must be followed by one.
func (d *Dispatcher) SelectionChanged() schedule.Token {
	return d.deferRefresh()
}

// RefreshNow recomputes FormatState synchronously. Only correct when no
// mutation is in flight; command paths go through the deferred refresh.
func (d *Dispatcher) RefreshNow() State {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.state = readState(d.surf.Surface())
	return d.state
}

func (d *Dispatcher) deferRefresh() schedule.Token {
	return d.sched.Defer(func() {
		d.mu.Lock()
		defer d.mu.Unlock()
		d.state = readState(d.surf.Surface())
	})
}
