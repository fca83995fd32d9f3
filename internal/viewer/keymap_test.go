package viewer

import (
	"testing"

	"github.com/Faultbox/meshview/internal/engine/input"
)

func TestDefaultKeymap(t *testing.T) {
	km := DefaultKeymap()
	tests := map[input.Key]Action{
		input.KeyF:      ActionToggleMode,
		input.KeyR:      ActionToggleRotation,
		input.KeyB:      ActionResetCamera,
		input.KeyP:      ActionScreenshot,
		input.KeyEscape: ActionQuit,
		input.KeyZ:      ActionNone,
	}
	for k, want := range tests {
		if got := km.Lookup(k); got != want {
			t.Errorf("Lookup(%v) = %v, want %v", k, got, want)
		}
	}
}

func TestKeymapBind(t *testing.T) {
	tests := []struct {
		name      string
		overrides map[string]string
		key       input.Key
		want      Action
		wantErr   bool
	}{
		{"rebind", map[string]string{"w": "toggle_mode"}, input.KeyW, ActionToggleMode, false},
		{"case insensitive", map[string]string{"Q": "QUIT"}, input.KeyQ, ActionQuit, false},
		{"unbind", map[string]string{"escape": "none"}, input.KeyEscape, ActionNone, false},
		{"unknown key", map[string]string{"ctrl": "quit"}, input.KeyUnknown, ActionNone, true},
		{"unknown action", map[string]string{"x": "explode"}, input.KeyX, ActionNone, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			km := DefaultKeymap()
			err := km.Bind(tt.overrides)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Bind() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got := km.Lookup(tt.key); got != tt.want {
				t.Errorf("Lookup(%v) = %v, want %v", tt.key, got, tt.want)
			}
		})
	}
}

func TestActionNames(t *testing.T) {
	for a := ActionToggleMode; a <= ActionQuit; a++ {
		got, ok := ParseAction(a.String())
		if !ok || got != a {
			t.Errorf("ParseAction(%q) = %v, %v", a.String(), got, ok)
		}
	}
}

func TestRandomPalette(t *testing.T) {
	a := RandomPalette(50, 7)
	b := RandomPalette(50, 7)
	c := RandomPalette(50, 8)

	if len(a) != 50 {
		t.Fatalf("len = %d, want 50", len(a))
	}
	same := true
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("color %d differs for equal seeds: %v vs %v", i, a[i], b[i])
		}
		if a[i].A != 0xff {
			t.Errorf("color %d not opaque: %v", i, a[i])
		}
		if a[i] != c[i] {
			same = false
		}
	}
	if same {
		t.Error("different seeds produced the same palette")
	}
}
