// Package input defines the viewer's input event vocabulary and the queue
// that buffers events between platform polls and frame processing.
package input

// EventType identifies the kind of an Event.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventResize
	EventKeyDown
	EventPointerMove
	EventPointerDown
	EventPointerUp
	EventScroll
)

func (t EventType) String() string {
	switch t {
	case EventQuit:
		return "quit"
	case EventResize:
		return "resize"
	case EventKeyDown:
		return "key-down"
	case EventPointerMove:
		return "pointer-move"
	case EventPointerDown:
		return "pointer-down"
	case EventPointerUp:
		return "pointer-up"
	case EventScroll:
		return "scroll"
	default:
		return "none"
	}
}

// Button is a pointer button.
type Button uint8

const (
	ButtonNone Button = iota
	ButtonLeft
	ButtonMiddle
	ButtonRight
)

// Event is one platform-neutral input event. Only the fields relevant to
// Type are set.
type Event struct {
	Type   EventType
	Key    Key
	Button Button
	X, Y   float32 // pointer position in window pixels
	Scroll float32 // wheel units, positive away from the user
	Width  int
	Height int
}

// Quit returns a quit event.
func Quit() Event { return Event{Type: EventQuit} }

// Resize returns a resize event.
func Resize(w, h int) Event { return Event{Type: EventResize, Width: w, Height: h} }

// KeyDown returns a key press event.
func KeyDown(k Key) Event { return Event{Type: EventKeyDown, Key: k} }

// PointerMove returns a pointer motion event.
func PointerMove(x, y float32) Event { return Event{Type: EventPointerMove, X: x, Y: y} }

// PointerDown returns a button press event.
func PointerDown(b Button, x, y float32) Event {
	return Event{Type: EventPointerDown, Button: b, X: x, Y: y}
}

// PointerUp returns a button release event.
func PointerUp(b Button, x, y float32) Event {
	return Event{Type: EventPointerUp, Button: b, X: x, Y: y}
}

// Scroll returns a wheel event.
func Scroll(delta float32) Event { return Event{Type: EventScroll, Scroll: delta} }

// Queue buffers events in arrival order until the next frame drains them.
type Queue struct {
	events []Event
}

// NewQueue creates an empty queue.
func NewQueue() *Queue {
	return &Queue{
		events: make([]Event, 0, 16),
	}
}

// Push appends an event.
func (q *Queue) Push(e Event) {
	q.events = append(q.events, e)
}

// Len returns the number of pending events.
func (q *Queue) Len() int {
	return len(q.events)
}

// Drain calls fn for every pending event in arrival order and empties the
// queue. Events pushed by fn are delivered in the same drain.
func (q *Queue) Drain(fn func(Event)) {
	for i := 0; i < len(q.events); i++ {
		fn(q.events[i])
	}
	q.events = q.events[:0]
}
