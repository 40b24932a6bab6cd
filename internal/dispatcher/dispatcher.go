package dispatcher

import (
	"sort"
	"sync"

	"github.com/dshills/inkwell/internal/input"
)

// HandlerFunc executes a single action.
type HandlerFunc func(action input.Action) Result

// Result reports the outcome of a dispatch.
type Result struct {
	// Handled is true when a handler ran and performed the action. A
	// handler that hit an expected idle state (no selection, out-of-range
	// index) returns Handled false with no error.
	Handled bool

	// Err is set for real faults only, never for idle-state no-ops.
	Err error
}

// Handled is the successful result.
var Handled = Result{Handled: true}

// NoOp is the silent idle-state result.
var NoOp = Result{}

// Dispatcher routes actions to registered handlers.
type Dispatcher struct {
	mu       sync.RWMutex
	handlers map[string]HandlerFunc
}

// New creates an empty dispatcher.
func New() *Dispatcher {
	return &Dispatcher{handlers: make(map[string]HandlerFunc)}
}

// Register installs a handler for the action name, replacing any existing
// one.
func (d *Dispatcher) Register(name string, fn HandlerFunc) {
	if fn == nil {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers[name] = fn
}

// Dispatch runs the handler registered for the action's name. An unknown
// name returns the NoOp result.
func (d *Dispatcher) Dispatch(action input.Action) Result {
	d.mu.RLock()
	fn, ok := d.handlers[action.Name]
	d.mu.RUnlock()

	if !ok {
		return NoOp
	}
	return fn(action)
}

// Actions returns the sorted registered action names.
func (d *Dispatcher) Actions() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()

	names := make([]string, 0, len(d.handlers))
	for name := range d.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
