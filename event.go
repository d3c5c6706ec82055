package glstart

import "fmt"

// EventKind identifies a window event.
type EventKind int

const (
	CloseRequested  EventKind = iota // Window close was requested
	Resized                          // Framebuffer size changed
	RedrawRequested                  // Window contents must be redrawn
)

// String returns the event kind name.
func (k EventKind) String() string {
	switch k {
	case CloseRequested:
		return "CloseRequested"
	case Resized:
		return "Resized"
	case RedrawRequested:
		return "RedrawRequested"
	default:
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
}

// Event is a single window event. Width and Height are set for Resized only.
type Event struct {
	Kind          EventKind
	Width, Height int
}

// Handler reacts to window events.
type Handler interface {
	Resize(width, height int)
	Redraw() error
}

// RedrawFunc adapts a plain draw function to a Handler that ignores resizes.
type RedrawFunc func() error

// Resize implements Handler.
func (f RedrawFunc) Resize(width, height int) {}

// Redraw implements Handler.
func (f RedrawFunc) Redraw() error { return f() }

// Queue buffers events between two dispatches.
// Window callbacks push into it while the event loop is blocked waiting for input.
type Queue struct {
	events []Event
}

// Push appends an event.
func (q *Queue) Push(e Event) {
	q.events = append(q.events, e)
}

// Len returns the number of pending events.
func (q *Queue) Len() int {
	return len(q.events)
}

// Dispatch hands every pending event to h in the order they were pushed.
// Resizes are delivered one by one, without coalescing.
//
// CloseRequested stops dispatch: the remaining events are dropped and closed is true.
// A redraw error also stops dispatch and is returned.
func (q *Queue) Dispatch(h Handler) (closed bool, err error) {
	events := q.events
	q.events = nil

	for _, e := range events {
		switch e.Kind {
		case CloseRequested:
			return true, nil
		case Resized:
			h.Resize(e.Width, e.Height)
		case RedrawRequested:
			if err := h.Redraw(); err != nil {
				return false, fmt.Errorf("redraw: %w", err)
			}
		}
	}

	return false, nil
}
