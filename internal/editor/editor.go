package editor

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/dshills/inkwell/internal/config"
	"github.com/dshills/inkwell/internal/dispatcher"
	"github.com/dshills/inkwell/internal/format"
	"github.com/dshills/inkwell/internal/input/key"
	"github.com/dshills/inkwell/internal/input/keymap"
	"github.com/dshills/inkwell/internal/palette"
	"github.com/dshills/inkwell/internal/palette/gesture"
	"github.com/dshills/inkwell/internal/schedule"
	"github.com/dshills/inkwell/internal/snippet"
	"github.com/dshills/inkwell/internal/surface"
)

// Editor owns all core editing state for one document surface.
type Editor struct {
	surf     *surface.Adapter
	sched    *schedule.Queue
	formats  *format.Dispatcher
	fonts    *format.Adjuster
	snippets *snippet.Inserter
	colors   *palette.Palette
	gestures *gesture.Machine
	keys     *keymap.Keymap
	disp     *dispatcher.Dispatcher
	zoom     Zoom
	log      *log.Logger
}

// Option configures an Editor.
type Option func(*options)

type options struct {
	cfg    config.Config
	logger *log.Logger
	clock  gesture.Clock
}

// WithConfig applies a loaded configuration.
func WithConfig(cfg config.Config) Option {
	return func(o *options) { o.cfg = cfg }
}

// WithLogger attaches a logger. The default logger is silent.
func WithLogger(l *log.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithClock substitutes the gesture timer clock (tests use a manual clock).
func WithClock(c gesture.Clock) Option {
	return func(o *options) { o.clock = c }
}

// New creates an editor over the given host surface.
func New(host surface.Surface, opts ...Option) (*Editor, error) {
	o := options{
		cfg:    config.DefaultConfig(),
		logger: log.New(io.Discard),
		clock:  gesture.WallClock(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	adapter := surface.NewAdapter(host)
	sched := schedule.NewQueue()
	formats := format.NewDispatcher(adapter, sched)

	e := &Editor{
		surf:     adapter,
		sched:    sched,
		formats:  formats,
		fonts:    format.NewAdjuster(adapter),
		snippets: snippet.NewInserter(adapter),
		keys:     keymap.NewDefault(),
		disp:     dispatcher.New(),
		zoom:     NewZoom(o.cfg.Zoom.Step, o.cfg.Zoom.Min, o.cfg.Zoom.Max),
		log:      o.logger,
	}

	if path := o.cfg.Keymap.OverridesPath; path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("keymap overrides %s: %w", path, err)
		}
		if _, err := e.keys.LoadJSON(data); err != nil {
			return nil, fmt.Errorf("keymap overrides %s: %w", path, err)
		}
	}

	applier := applierFunc(func(color string) bool {
		return !e.formats.ApplyForeground(color).Zero()
	})

	if len(o.cfg.Palette.Colors) > 0 {
		p, err := palette.New(o.cfg.Palette.Colors, applier)
		if err != nil {
			return nil, err
		}
		e.colors = p
	} else {
		e.colors = palette.Default(applier)
	}

	e.gestures = gesture.NewMachine(sched, gesture.Callbacks{
		Apply: func(index int) {
			if e.colors.Apply(index) {
				e.log.Debug("palette color applied", "index", index)
			}
		},
		OpenEditor: func(index int) {
			e.log.Debug("palette edit opened", "index", index)
		},
		Reorder: func(source, target int) {
			if e.colors.ReorderByDrag(source, target) {
				e.log.Debug("palette reordered", "source", source, "target", target)
			}
		},
		ColorAt: e.colors.Color,
	}, gesture.WithClock(o.clock), gesture.WithHoldDelay(o.cfg.Gesture.HoldDelay))

	e.registerHandlers()
	return e, nil
}

// applierFunc adapts a closure to the palette's ForegroundApplier.
type applierFunc func(color string) bool

func (f applierFunc) ApplyForeground(color string) bool {
	return f(color)
}

// HandleKey routes a keyboard chord through the keymap to its handler.
// Unbound chords return the no-op result so the host can fall through to
// its native handling; bound chords are always consumed.
func (e *Editor) HandleKey(ev key.Event) dispatcher.Result {
	action, ok := e.keys.Resolve(ev)
	if !ok {
		return dispatcher.NoOp
	}
	e.log.Debug("shortcut", "chord", ev.Chord(), "action", action.Name)
	return e.disp.Dispatch(action)
}

// RunTurn runs one cooperative turn of deferred work (FormatState
// refreshes, gesture edit pulses).
func (e *Editor) RunTurn() int {
	return e.sched.RunTurn()
}

// Scheduler returns the editor's cooperative run queue.
func (e *Editor) Scheduler() *schedule.Queue {
	return e.sched
}

// Formats returns the formatting dispatcher.
func (e *Editor) Formats() *format.Dispatcher {
	return e.formats
}

// Fonts returns the font-size adjuster.
func (e *Editor) Fonts() *format.Adjuster {
	return e.fonts
}

// Snippets returns the snippet inserter.
func (e *Editor) Snippets() *snippet.Inserter {
	return e.snippets
}

// Palette returns the color palette.
func (e *Editor) Palette() *palette.Palette {
	return e.colors
}

// Gestures returns the palette gesture machine.
func (e *Editor) Gestures() *gesture.Machine {
	return e.gestures
}

// Keymap returns the shortcut keymap.
func (e *Editor) Keymap() *keymap.Keymap {
	return e.keys
}

// Zoom returns the current zoom percent.
func (e *Editor) Zoom() int {
	return e.zoom.Value()
}

// FormatState returns the most recently refreshed format state.
func (e *Editor) FormatState() format.State {
	return e.formats.QueryActiveFormats()
}
