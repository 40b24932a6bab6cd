package dispatcher

import (
	"errors"
	"reflect"
	"testing"

	"github.com/dshills/inkwell/internal/input"
)

func TestDispatchRoutesToHandler(t *testing.T) {
	d := New()
	var got input.Action
	d.Register("format.toggleBold", func(a input.Action) Result {
		got = a
		return Handled
	})

	action := input.Action{Name: "format.toggleBold", Source: input.SourceKeyboard}
	res := d.Dispatch(action)

	if !res.Handled || res.Err != nil {
		t.Errorf("result = %+v, want handled", res)
	}
	if got.Name != "format.toggleBold" || got.Source != input.SourceKeyboard {
		t.Errorf("handler received %+v", got)
	}
}

func TestDispatchUnknownAction(t *testing.T) {
	d := New()
	res := d.Dispatch(input.Action{Name: "no.such.action"})
	if res.Handled || res.Err != nil {
		t.Errorf("result = %+v, want silent no-op", res)
	}
}

func TestDispatchPropagatesError(t *testing.T) {
	d := New()
	fault := errors.New("surface detached")
	d.Register("broken", func(input.Action) Result {
		return Result{Err: fault}
	})

	res := d.Dispatch(input.Action{Name: "broken"})
	if !errors.Is(res.Err, fault) {
		t.Errorf("err = %v, want %v", res.Err, fault)
	}
}

func TestRegisterReplacesHandler(t *testing.T) {
	d := New()
	d.Register("act", func(input.Action) Result { return NoOp })
	d.Register("act", func(input.Action) Result { return Handled })

	if res := d.Dispatch(input.Action{Name: "act"}); !res.Handled {
		t.Error("second registration must win")
	}
	if len(d.Actions()) != 1 {
		t.Error("replacement must not grow the registry")
	}
}

func TestRegisterNilIsIgnored(t *testing.T) {
	d := New()
	d.Register("act", nil)
	if len(d.Actions()) != 0 {
		t.Error("nil handler must not be registered")
	}
}

func TestActionsSorted(t *testing.T) {
	d := New()
	for _, name := range []string{"view.zoomIn", "format.toggleBold", "palette.apply"} {
		d.Register(name, func(input.Action) Result { return Handled })
	}

	want := []string{"format.toggleBold", "palette.apply", "view.zoomIn"}
	if got := d.Actions(); !reflect.DeepEqual(got, want) {
		t.Errorf("Actions() = %v, want %v", got, want)
	}
}
