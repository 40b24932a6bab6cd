package gesture

import (
	"sync"
	"time"

	"github.com/dshills/inkwell/internal/schedule"
)

// DefaultHoldDelay is how long a press must be held, without release or
// drag start, to promote into edit mode.
const DefaultHoldDelay = 500 * time.Millisecond

// State is the press-side state of a palette entry interaction.
type State uint8

const (
	// StateIdle means no press interaction is in progress.
	StateIdle State = iota
	// StatePressPending means a pointer is down and the hold timer is live.
	StatePressPending
	// StateEditing means the hold timer fired and edit mode is open.
	StateEditing
)

// String returns a string representation of the state.
func (s State) String() string {
	switch s {
	case StatePressPending:
		return "press-pending"
	case StateEditing:
		return "editing"
	default:
		return "idle"
	}
}

// Callbacks are the actions the machine commits. Any nil callback is
// skipped. All callbacks run while the machine lock is released.
type Callbacks struct {
	// Apply fires on a native click (press released before the hold timer).
	Apply func(index int)

	// OpenEditor fires one cooperative turn after the machine enters
	// Editing, pulsing the edit affordance open for the index.
	OpenEditor func(index int)

	// Reorder fires on a drop over an entry other than the drag source.
	Reorder func(source, target int)

	// ColorAt supplies the value for the drag proxy. Optional.
	ColorAt func(index int) (string, bool)
}

// Machine is the per-palette gesture disambiguator. At most one press, one
// drag source, and one drop target exist at a time.
type Machine struct {
	mu        sync.Mutex
	clock     Clock
	sched     *schedule.Queue
	cb        Callbacks
	holdDelay time.Duration

	state      State
	pressIndex int
	timer      Timer

	dragging   bool
	dragSource int
	dropTarget int // -1 when none
	proxy      *DragProxy
}

// Option configures a Machine.
type Option func(*Machine)

// WithClock substitutes the timer clock.
func WithClock(c Clock) Option {
	return func(m *Machine) { m.clock = c }
}

// WithHoldDelay overrides the long-press threshold.
func WithHoldDelay(d time.Duration) Option {
	return func(m *Machine) { m.holdDelay = d }
}

// NewMachine creates a gesture machine committing through the given
// callbacks and deferring its edit-open pulse on the given run queue.
func NewMachine(sched *schedule.Queue, cb Callbacks, opts ...Option) *Machine {
	m := &Machine{
		clock:      WallClock(),
		sched:      sched,
		cb:         cb,
		holdDelay:  DefaultHoldDelay,
		dropTarget: -1,
		dragSource: -1,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// State returns the press-side state.
func (m *Machine) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Dragging returns the drag source index, or false when no drag is live.
func (m *Machine) Dragging() (int, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.dragging {
		return 0, false
	}
	return m.dragSource, true
}

// DropTarget returns the current drop target index, or false when none.
func (m *Machine) DropTarget() (int, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.dropTarget < 0 {
		return 0, false
	}
	return m.dropTarget, true
}

// Proxy returns the live drag proxy, or nil outside a drag.
func (m *Machine) Proxy() *DragProxy {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.proxy
}

// PointerDown starts the hold timer for the entry and enters PressPending.
// A press on a second entry while one is pending restarts tracking on the
// new entry.
func (m *Machine) PointerDown(index int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.cancelTimerLocked()
	m.state = StatePressPending
	m.pressIndex = index
	m.timer = m.clock.AfterFunc(m.holdDelay, func() { m.holdFired(index) })
}

// PointerUp cancels a pending hold. The click action itself arrives through
// the host's native click event (see Click); the timer exists solely to
// promote a held press into edit mode.
func (m *Machine) PointerUp(index int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state == StatePressPending && m.pressIndex == index {
		m.cancelTimerLocked()
		m.state = StateIdle
	}
}

// PointerLeave cancels a pending hold when the pointer leaves the entry.
func (m *Machine) PointerLeave(index int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state == StatePressPending && m.pressIndex == index {
		m.cancelTimerLocked()
		m.state = StateIdle
	}
}

// Click delivers the host's native click on an entry, applying its color.
// A click that lands after the machine has entered Editing is swallowed so
// the two gestures never conflict.
func (m *Machine) Click(index int) {
	m.mu.Lock()
	if m.state == StateEditing || m.dragging {
		m.mu.Unlock()
		return
	}
	apply := m.cb.Apply
	m.mu.Unlock()

	if apply != nil {
		apply(index)
	}
}

// holdFired runs when the hold timer expires. The press must still be
// pending on the same entry and no drag may have started.
func (m *Machine) holdFired(index int) {
	m.mu.Lock()
	if m.state != StatePressPending || m.pressIndex != index || m.dragging {
		m.mu.Unlock()
		return
	}
	m.timer = nil
	m.state = StateEditing
	open := m.cb.OpenEditor
	sched := m.sched
	m.mu.Unlock()

	// Pulse the edit affordance open on the next cooperative turn so the
	// host's pending layout work settles first.
	if open != nil && sched != nil {
		sched.Defer(func() { open(index) })
	}
}

// EditorClosed reports that the edit affordance lost focus or was
// confirmed; either way the machine returns to Idle.
func (m *Machine) EditorClosed() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state == StateEditing {
		m.state = StateIdle
	}
}

// DragStart delivers the host's native drag initiation for an entry. Any
// pending hold is cancelled immediately and a proxy is constructed for the
// duration of the drag.
func (m *Machine) DragStart(index int) *DragProxy {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.cancelTimerLocked()
	m.state = StateIdle

	m.dragging = true
	m.dragSource = index
	m.dropTarget = -1

	m.proxy = &DragProxy{Index: index}
	if m.cb.ColorAt != nil {
		if c, ok := m.cb.ColorAt(index); ok {
			m.proxy.Color = c
		}
	}
	return m.proxy
}

// DragOver marks an entry as the current drop target. Indicator state only;
// no mutation happens until Drop.
func (m *Machine) DragOver(index int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.dragging {
		m.dropTarget = index
	}
}

// DragLeave clears the drop target without mutation.
func (m *Machine) DragLeave(index int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.dragging && m.dropTarget == index {
		m.dropTarget = -1
	}
}

// Drop commits the reorder when the entry differs from the drag source;
// dropping on the source is a no-op. Drag state is cleared either way.
func (m *Machine) Drop(index int) {
	m.mu.Lock()
	if !m.dragging {
		m.mu.Unlock()
		return
	}
	source := m.dragSource
	reorder := m.cb.Reorder
	m.clearDragLocked()
	m.mu.Unlock()

	if index != source && reorder != nil {
		reorder(source, index)
	}
}

// DragEnd clears drag state after a drag that completed without a drop.
func (m *Machine) DragEnd() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.clearDragLocked()
}

func (m *Machine) cancelTimerLocked() {
	if m.timer != nil {
		m.timer.Stop()
		m.timer = nil
	}
}

func (m *Machine) clearDragLocked() {
	m.dragging = false
	m.dragSource = -1
	m.dropTarget = -1
	m.proxy = nil
}
