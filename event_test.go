package glstart_test

import (
	"errors"
	"testing"

	"github.com/go-theft-auto/glstart"
)

// mockHandler records the events it receives.
type mockHandler struct {
	calls     []string
	sizes     [][2]int
	redrawErr error
}

func (m *mockHandler) Resize(width, height int) {
	m.calls = append(m.calls, "resize")
	m.sizes = append(m.sizes, [2]int{width, height})
}

func (m *mockHandler) Redraw() error {
	m.calls = append(m.calls, "redraw")
	return m.redrawErr
}

func TestQueueDispatchOrder(t *testing.T) {
	var q glstart.Queue
	q.Push(glstart.Event{Kind: glstart.Resized, Width: 640, Height: 480})
	q.Push(glstart.Event{Kind: glstart.RedrawRequested})
	q.Push(glstart.Event{Kind: glstart.Resized, Width: 800, Height: 600})
	q.Push(glstart.Event{Kind: glstart.RedrawRequested})

	h := &mockHandler{}
	closed, err := q.Dispatch(h)
	if err != nil {
		t.Fatalf("Dispatch() returned error: %v", err)
	}
	if closed {
		t.Error("expected closed to be false")
	}

	want := []string{"resize", "redraw", "resize", "redraw"}
	if len(h.calls) != len(want) {
		t.Fatalf("expected calls %v, got %v", want, h.calls)
	}
	for i := range want {
		if h.calls[i] != want[i] {
			t.Errorf("call %d: expected %s, got %s", i, want[i], h.calls[i])
		}
	}

	// Resizes are not coalesced
	if len(h.sizes) != 2 || h.sizes[0] != [2]int{640, 480} || h.sizes[1] != [2]int{800, 600} {
		t.Errorf("unexpected sizes %v", h.sizes)
	}

	if q.Len() != 0 {
		t.Errorf("expected empty queue after dispatch, got %d", q.Len())
	}
}

func TestQueueDispatchClose(t *testing.T) {
	var q glstart.Queue
	q.Push(glstart.Event{Kind: glstart.RedrawRequested})
	q.Push(glstart.Event{Kind: glstart.CloseRequested})
	q.Push(glstart.Event{Kind: glstart.RedrawRequested})

	h := &mockHandler{}
	closed, err := q.Dispatch(h)
	if err != nil {
		t.Fatalf("Dispatch() returned error: %v", err)
	}
	if !closed {
		t.Error("expected closed to be true")
	}
	if len(h.calls) != 1 {
		t.Errorf("expected events after close to be dropped, got calls %v", h.calls)
	}
	if q.Len() != 0 {
		t.Errorf("expected dropped events to leave the queue, got %d", q.Len())
	}
}

func TestQueueDispatchRedrawError(t *testing.T) {
	errDraw := errors.New("draw failed")

	var q glstart.Queue
	q.Push(glstart.Event{Kind: glstart.RedrawRequested})
	q.Push(glstart.Event{Kind: glstart.Resized, Width: 1, Height: 1})

	h := &mockHandler{redrawErr: errDraw}
	closed, err := q.Dispatch(h)
	if !errors.Is(err, errDraw) {
		t.Fatalf("expected wrapped draw error, got %v", err)
	}
	if closed {
		t.Error("expected closed to be false")
	}
	if len(h.sizes) != 0 {
		t.Error("expected dispatch to stop at the failing redraw")
	}
}

func TestQueueDispatchEmpty(t *testing.T) {
	var q glstart.Queue
	h := &mockHandler{}

	closed, err := q.Dispatch(h)
	if closed || err != nil {
		t.Errorf("expected (false, nil), got (%v, %v)", closed, err)
	}
	if len(h.calls) != 0 {
		t.Errorf("expected no calls, got %v", h.calls)
	}
}

func TestRedrawFunc(t *testing.T) {
	draws := 0
	var h glstart.Handler = glstart.RedrawFunc(func() error {
		draws++
		return nil
	})

	h.Resize(100, 100)
	if err := h.Redraw(); err != nil {
		t.Fatalf("Redraw() returned error: %v", err)
	}
	if draws != 1 {
		t.Errorf("expected 1 draw, got %d", draws)
	}
}

func TestEventKindString(t *testing.T) {
	tests := []struct {
		kind glstart.EventKind
		want string
	}{
		{glstart.CloseRequested, "CloseRequested"},
		{glstart.Resized, "Resized"},
		{glstart.RedrawRequested, "RedrawRequested"},
		{glstart.EventKind(42), "EventKind(42)"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("expected %q, got %q", tt.want, got)
		}
	}
}
