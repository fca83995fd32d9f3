package viewer

import (
	"fmt"
	"strings"

	"github.com/Faultbox/meshview/internal/engine/input"
)

// Action is something a key press can trigger.
type Action int

const (
	ActionNone Action = iota
	ActionToggleMode
	ActionToggleRotation
	ActionResetCamera
	ActionScreenshot
	ActionToggleBounds
	ActionToggleFPS
	ActionQuit
)

var actionNames = map[Action]string{
	ActionToggleMode:     "toggle_mode",
	ActionToggleRotation: "toggle_rotation",
	ActionResetCamera:    "reset_camera",
	ActionScreenshot:     "screenshot",
	ActionToggleBounds:   "toggle_bounds",
	ActionToggleFPS:      "toggle_fps",
	ActionQuit:           "quit",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "none"
}

// ParseAction converts a config action name into an Action.
func ParseAction(s string) (Action, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for a, name := range actionNames {
		if name == s {
			return a, true
		}
	}
	return ActionNone, false
}

// Keymap binds keys to actions.
type Keymap map[input.Key]Action

// DefaultKeymap returns the stock bindings: F toggles fill, R toggles
// rotation, B resets the camera, P saves a screenshot, G toggles the bounds
// box, H toggles the FPS text and Escape quits.
func DefaultKeymap() Keymap {
	return Keymap{
		input.KeyF:      ActionToggleMode,
		input.KeyR:      ActionToggleRotation,
		input.KeyB:      ActionResetCamera,
		input.KeyP:      ActionScreenshot,
		input.KeyG:      ActionToggleBounds,
		input.KeyH:      ActionToggleFPS,
		input.KeyEscape: ActionQuit,
	}
}

// Lookup returns the action bound to k.
func (m Keymap) Lookup(k input.Key) Action {
	return m[k]
}

// Bind applies overrides given as key name to action name on top of the
// keymap. An action name of "none" unbinds the key.
func (m Keymap) Bind(overrides map[string]string) error {
	for keyName, actionName := range overrides {
		k, ok := input.ParseKey(keyName)
		if !ok {
			return fmt.Errorf("unknown key %q", keyName)
		}
		if strings.EqualFold(strings.TrimSpace(actionName), "none") {
			delete(m, k)
			continue
		}
		a, ok := ParseAction(actionName)
		if !ok {
			return fmt.Errorf("unknown action %q for key %q", actionName, keyName)
		}
		m[k] = a
	}
	return nil
}
