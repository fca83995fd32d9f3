package input

import "strings"

// Key is a platform-neutral key code. Only the keys the viewer can bind are
// listed; everything else arrives as KeyUnknown.
type Key int

const (
	KeyUnknown Key = iota
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
	KeyEscape
	KeySpace
	KeyEnter
	KeyTab
	KeyF1
	KeyF2
	KeyF12
)

var keyNames = map[Key]string{
	KeyEscape: "escape",
	KeySpace:  "space",
	KeyEnter:  "enter",
	KeyTab:    "tab",
	KeyF1:     "f1",
	KeyF2:     "f2",
	KeyF12:    "f12",
}

// String returns the lower-case key name used in config files.
func (k Key) String() string {
	if k >= KeyA && k <= KeyZ {
		return string(rune('a' + int(k-KeyA)))
	}
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "unknown"
}

// ParseKey converts a config key name into a Key. Matching ignores case.
func ParseKey(s string) (Key, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) == 1 && s[0] >= 'a' && s[0] <= 'z' {
		return KeyA + Key(s[0]-'a'), true
	}
	for k, name := range keyNames {
		if name == s {
			return k, true
		}
	}
	if s == "esc" {
		return KeyEscape, true
	}
	return KeyUnknown, false
}
