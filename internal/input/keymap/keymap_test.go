package keymap

import (
	"testing"

	"github.com/dshills/inkwell/internal/input"
	"github.com/dshills/inkwell/internal/input/key"
)

func TestDefaultBindingsResolve(t *testing.T) {
	km := NewDefault()

	tests := []struct {
		name   string
		event  key.Event
		action string
	}{
		{"bold", key.NewEvent("b", key.ModCtrl), "format.toggleBold"},
		{"italic", key.NewEvent("i", key.ModCtrl), "format.toggleItalic"},
		{"underline", key.NewEvent("u", key.ModCtrl), "format.toggleUnderline"},
		{"zoom in", key.NewEvent("=", key.ModCtrl), "view.zoomIn"},
		{"zoom out", key.NewEvent("-", key.ModCtrl), "view.zoomOut"},
		{"zoom reset", key.NewEvent("0", key.ModCtrl), "view.zoomReset"},
		{"font grow", key.NewEvent(".", key.ModCtrl|key.ModShift), "font.step"},
		{"palette", key.NewEvent("j", key.ModCtrl|key.ModShift), "palette.apply"},
		{"tab", key.NewEvent("tab", key.ModNone), "snippet.tabBreak"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, ok := km.Resolve(tt.event)
			if !ok {
				t.Fatalf("chord %q not bound", tt.event.Chord())
			}
			if action.Name != tt.action {
				t.Errorf("action = %q, want %q", action.Name, tt.action)
			}
			if action.Source != input.SourceKeyboard {
				t.Errorf("source = %v, want keyboard", action.Source)
			}
		})
	}
}

func TestCmdVariantResolves(t *testing.T) {
	km := NewDefault()

	ctrl, ok1 := km.Resolve(key.NewEvent("b", key.ModCtrl))
	cmd, ok2 := km.Resolve(key.NewEvent("b", key.ModMeta))
	if !ok1 || !ok2 {
		t.Fatal("both variants must resolve")
	}
	if ctrl.Name != cmd.Name {
		t.Errorf("Ctrl resolves %q but Cmd resolves %q", ctrl.Name, cmd.Name)
	}
}

func TestDefaultBindingArgs(t *testing.T) {
	km := NewDefault()

	grow, _ := km.Resolve(key.NewEvent(".", key.ModCtrl|key.ModShift))
	if grow.Args.Delta != 1 {
		t.Errorf("grow delta = %v, want 1", grow.Args.Delta)
	}
	shrink, _ := km.Resolve(key.NewEvent(",", key.ModCtrl|key.ModShift))
	if shrink.Args.Delta != -1 {
		t.Errorf("shrink delta = %v, want -1", shrink.Args.Delta)
	}

	second, _ := km.Resolve(key.NewEvent("k", key.ModCtrl|key.ModShift))
	if second.Args.Index != 1 {
		t.Errorf("palette index = %d, want 1", second.Args.Index)
	}
}

func TestUnboundChord(t *testing.T) {
	km := NewDefault()
	if _, ok := km.Resolve(key.NewEvent("q", key.ModCtrl)); ok {
		t.Error("unbound chord must not resolve")
	}
}

func TestAddShadowsExisting(t *testing.T) {
	km := NewDefault()
	before := km.Len()

	if err := km.Add(NewBinding("Ctrl+B", "format.toggleItalic")); err != nil {
		t.Fatalf("Add: %v", err)
	}

	if km.Len() != before {
		t.Error("re-binding an existing chord must not grow the map")
	}
	action, _ := km.Resolve(key.NewEvent("b", key.ModCtrl))
	if action.Name != "format.toggleItalic" {
		t.Errorf("action = %q, want the override", action.Name)
	}
}

func TestAddRejectsBadChord(t *testing.T) {
	km := New()
	if err := km.Add(NewBinding("X-b", "format.toggleBold")); err == nil {
		t.Error("invalid chord must be rejected")
	}
}

func TestLoadJSON(t *testing.T) {
	km := NewDefault()

	doc := `{"bindings": [
		{"chord": "C-S-b", "action": "format.toggleBold", "description": "Bold too"},
		{"chord": "C-S-j", "action": "palette.apply", "index": 3},
		{"chord": "C-S-m", "action": "font.step", "delta": 2}
	]}`
	n, err := km.LoadJSON([]byte(doc))
	if err != nil {
		t.Fatalf("LoadJSON: %v", err)
	}
	if n != 3 {
		t.Errorf("installed = %d, want 3", n)
	}

	// New chord.
	a, ok := km.Resolve(key.NewEvent("b", key.ModCtrl|key.ModShift))
	if !ok || a.Name != "format.toggleBold" {
		t.Errorf("C-S-b = %q, %v", a.Name, ok)
	}

	// Override shadows the default index.
	a, _ = km.Resolve(key.NewEvent("j", key.ModCtrl|key.ModShift))
	if a.Args.Index != 3 {
		t.Errorf("palette index = %d, want override 3", a.Args.Index)
	}

	a, _ = km.Resolve(key.NewEvent("m", key.ModCtrl|key.ModShift))
	if a.Args.Delta != 2 {
		t.Errorf("delta = %v, want 2", a.Args.Delta)
	}
}

func TestLoadJSONEmptyDocument(t *testing.T) {
	km := NewDefault()
	before := km.Len()

	n, err := km.LoadJSON([]byte(`{}`))
	if err != nil || n != 0 {
		t.Errorf("LoadJSON({}) = %d, %v", n, err)
	}
	if km.Len() != before {
		t.Error("empty document must not change the map")
	}
}

func TestLoadJSONErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"invalid json", `{"bindings": [`},
		{"bindings not array", `{"bindings": "C-b"}`},
		{"missing action", `{"bindings": [{"chord": "C-S-b"}]}`},
		{"bad chord", `{"bindings": [{"chord": "X-b", "action": "format.toggleBold"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			km := NewDefault()
			if _, err := km.LoadJSON([]byte(tt.doc)); err == nil {
				t.Error("expected error")
			}
		})
	}
}
