package input

import (
	"bytes"
	"errors"
	"math"
	"testing"
)

func TestReadKey(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want string
	}{
		{"letter", []byte("w"), "w"},
		{"upper case folds", []byte("R"), "r"},
		{"space", []byte(" "), "space"},
		{"enter", []byte("\r"), "enter"},
		{"arrow up CSI", []byte("\x1b[A"), "arrow_up"},
		{"arrow left SS3", []byte("\x1bOD"), "arrow_left"},
		{"f5", []byte("\x1b[15~"), "f5"},
		{"f9", []byte("\x1b[20~"), "f9"},
		{"bare escape", []byte("\x1bq"), "escape"},
		{"unknown sequence", []byte("\x1b[Z"), ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadKey(bytes.NewReader(tt.in))
			if err != nil {
				t.Fatalf("ReadKey: %v", err)
			}
			if got != tt.want {
				t.Errorf("ReadKey(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestReadKey_CtrlC(t *testing.T) {
	if _, err := ReadKey(bytes.NewReader([]byte{3})); !errors.Is(err, ErrInterrupted) {
		t.Errorf("err = %v, want ErrInterrupted", err)
	}
}

func TestCombine(t *testing.T) {
	tests := []struct {
		name    string
		actions []Action
		want    Intent
	}{
		{"nothing", nil, Intent{}},
		{"single", []Action{ActionMoveEast}, Intent{Move: MoveEast}},
		{"diagonal from two keys", []Action{ActionMoveNorth, ActionMoveWest}, Intent{Move: MoveNorthWest}},
		{"opposites cancel", []Action{ActionMoveNorth, ActionMoveSouth}, Intent{}},
		{"diagonal action", []Action{ActionMoveSouthEast}, Intent{Move: MoveSouthEast}},
		{"clamped", []Action{ActionMoveEast, ActionMoveNorthEast}, Intent{Move: MoveNorthEast}},
		{"light and reset", []Action{ActionToggleLight, ActionReset}, Intent{ToggleLight: true, Reset: true}},
		{"meta ignored", []Action{ActionQuit, ActionDumpMap}, Intent{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Combine(tt.actions...); got != tt.want {
				t.Errorf("Combine(%v) = %+v, want %+v", tt.actions, got, tt.want)
			}
		})
	}
}

func TestMoveVector(t *testing.T) {
	if v := MoveNone.Vector(); !v.IsZero() {
		t.Errorf("MoveNone.Vector() = %+v, want zero", v)
	}
	if v := MoveNorth.Vector(); v.X != 0 || v.Y != -1 {
		t.Errorf("MoveNorth.Vector() = %+v", v)
	}
	v := MoveSouthWest.Vector()
	if math.Abs(v.Len()-1) > 1e-9 || v.X >= 0 || v.Y <= 0 {
		t.Errorf("MoveSouthWest.Vector() = %+v, want a unit vector pointing down-left", v)
	}
}

func TestBindings_ResolveUnknown(t *testing.T) {
	b := NewBindings()
	if got := b.Resolve("arrow_up"); got != ActionMoveNorth {
		t.Errorf("Resolve(arrow_up) = %v", got)
	}
	if got := b.Resolve("f12"); got != ActionNone {
		t.Errorf("Resolve(f12) = %v, want ActionNone", got)
	}
	if got := b.MapToIntent(DebouncedInput{Code: "u"}); got.Move != MoveNorthEast {
		t.Errorf("MapToIntent(u) = %+v", got)
	}
}

func TestBindings_ApplyOverrides(t *testing.T) {
	b := NewBindings()
	b.ApplyOverrides(map[string][]string{
		"toggle_light": {"g"},
		"move_north":   {"i", "arrow_down"},
		"teleport":     {"t"},
	})

	if got := b.Resolve("g"); got != ActionToggleLight {
		t.Errorf("g -> %v, want toggle_light", got)
	}
	if got := b.Resolve("f"); got != ActionNone {
		t.Errorf("old light key still bound to %v", got)
	}
	if got := b.Resolve("i"); got != ActionMoveNorth {
		t.Errorf("i -> %v, want move_north", got)
	}
	if got := b.Resolve("arrow_up"); got != ActionMoveNorth {
		t.Error("reserved arrow_up was unbound")
	}
	if got := b.Resolve("arrow_down"); got != ActionMoveSouth {
		t.Error("reserved arrow_down was stolen by an override")
	}
	if got := b.Resolve("t"); got != ActionNone {
		t.Errorf("unknown action name bound t to %v", got)
	}
}

func TestBindings_ByActionSorted(t *testing.T) {
	b := NewBindings()
	codes := b.ByAction()[ActionMoveNorth]
	want := []string{"arrow_up", "gamepad_dpad_up", "k", "w"}
	if len(codes) != len(want) {
		t.Fatalf("codes = %v, want %v", codes, want)
	}
	for i := range want {
		if codes[i] != want[i] {
			t.Errorf("codes = %v, want %v", codes, want)
			break
		}
	}
}

func TestParseAction(t *testing.T) {
	for a, name := range actionNames {
		if a == ActionNone {
			continue
		}
		got, ok := ParseAction(name)
		if !ok || got != a {
			t.Errorf("ParseAction(%q) = %v, %v", name, got, ok)
		}
	}
	if _, ok := ParseAction("none"); ok {
		t.Error("ParseAction accepted none")
	}
}
