package window

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/meshview/internal/engine/input"
)

// Poll drains pending SDL events into q as platform-neutral input events.
// It returns true when a quit was requested.
func Poll(q *input.Queue) bool {
	quit := false

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			q.Push(input.Quit())
			quit = true

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
				q.Push(input.Resize(int(e.Data1), int(e.Data2)))
			}

		case *sdl.KeyboardEvent:
			if e.Type == sdl.KEYDOWN && e.Repeat == 0 {
				q.Push(input.KeyDown(translateKey(e.Keysym.Scancode)))
			}

		case *sdl.MouseMotionEvent:
			q.Push(input.PointerMove(float32(e.X), float32(e.Y)))

		case *sdl.MouseButtonEvent:
			b := translateButton(e.Button)
			if b == input.ButtonNone {
				continue
			}
			if e.Type == sdl.MOUSEBUTTONDOWN {
				q.Push(input.PointerDown(b, float32(e.X), float32(e.Y)))
			} else if e.Type == sdl.MOUSEBUTTONUP {
				q.Push(input.PointerUp(b, float32(e.X), float32(e.Y)))
			}

		case *sdl.MouseWheelEvent:
			dy := float32(e.Y)
			if e.Direction == sdl.MOUSEWHEEL_FLIPPED {
				dy = -dy
			}
			if dy != 0 {
				q.Push(input.Scroll(dy))
			}
		}
	}

	return quit
}

func translateButton(b uint8) input.Button {
	switch b {
	case sdl.BUTTON_LEFT:
		return input.ButtonLeft
	case sdl.BUTTON_MIDDLE:
		return input.ButtonMiddle
	case sdl.BUTTON_RIGHT:
		return input.ButtonRight
	default:
		return input.ButtonNone
	}
}

func translateKey(sc sdl.Scancode) input.Key {
	if sc >= sdl.SCANCODE_A && sc <= sdl.SCANCODE_Z {
		return input.KeyA + input.Key(sc-sdl.SCANCODE_A)
	}
	switch sc {
	case sdl.SCANCODE_ESCAPE:
		return input.KeyEscape
	case sdl.SCANCODE_SPACE:
		return input.KeySpace
	case sdl.SCANCODE_RETURN:
		return input.KeyEnter
	case sdl.SCANCODE_TAB:
		return input.KeyTab
	case sdl.SCANCODE_F1:
		return input.KeyF1
	case sdl.SCANCODE_F2:
		return input.KeyF2
	case sdl.SCANCODE_F12:
		return input.KeyF12
	default:
		return input.KeyUnknown
	}
}
