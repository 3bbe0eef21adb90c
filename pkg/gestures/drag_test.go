package gestures

import (
	"math"
	"testing"
	"time"
)

// dragHarness drives a recognizer the way a host input loop would: down adds
// the pointer and closes the arena, up sweeps it.
type dragHarness struct {
	arena      *GestureArena
	recognizer *HorizontalDragGestureRecognizer
	now        time.Time

	starts  []DragStartDetails
	updates []DragUpdateDetails
	ends    []DragEndDetails
	cancels int
}

func newDragHarness() *dragHarness {
	h := &dragHarness{
		arena: NewGestureArena(),
		now:   time.Unix(500, 0),
	}
	r := NewHorizontalDragGestureRecognizer(h.arena)
	r.Now = func() time.Time { return h.now }
	r.OnStart = func(d DragStartDetails) { h.starts = append(h.starts, d) }
	r.OnUpdate = func(d DragUpdateDetails) { h.updates = append(h.updates, d) }
	r.OnEnd = func(d DragEndDetails) { h.ends = append(h.ends, d) }
	r.OnCancel = func() { h.cancels++ }
	h.recognizer = r
	return h
}

// send advances time by one frame and dispatches a pointer sample.
func (h *dragHarness) send(phase PointerPhase, x, y float64) {
	h.now = h.now.Add(16 * time.Millisecond)
	event := PointerEvent{PointerID: 1, Position: Offset{X: x, Y: y}, Phase: phase}
	switch phase {
	case PointerPhaseDown:
		h.recognizer.AddPointer(event)
		h.arena.Close(1)
	case PointerPhaseUp:
		h.recognizer.HandleEvent(event)
		h.arena.Sweep(1)
	default:
		h.recognizer.HandleEvent(event)
	}
}

func TestDragRecognizedAfterSlop(t *testing.T) {
	h := newDragHarness()

	h.send(PointerPhaseDown, 10, 300)
	h.send(PointerPhaseMove, 20, 300) // 10px, below slop
	if len(h.starts) != 0 {
		t.Fatal("drag must not start below the touch slop")
	}

	h.send(PointerPhaseMove, 40, 300) // 30px, beyond slop
	if len(h.starts) != 1 {
		t.Fatalf("starts = %d, want 1", len(h.starts))
	}
	if h.starts[0].Position.X != 10 {
		t.Errorf("start position X = %v, want the down position 10", h.starts[0].Position.X)
	}
	if len(h.updates) != 1 || h.updates[0].PrimaryDelta != 20 {
		t.Fatalf("updates = %+v, want one update with PrimaryDelta 20", h.updates)
	}

	h.send(PointerPhaseUp, 40, 300)
	if len(h.ends) != 1 {
		t.Fatalf("ends = %d, want 1", len(h.ends))
	}
	if h.ends[0].Velocity.X <= 0 {
		t.Errorf("release velocity X = %v, want positive for a rightward drag", h.ends[0].Velocity.X)
	}
}

func TestDragVelocitySmoothing(t *testing.T) {
	h := newDragHarness()

	h.send(PointerPhaseDown, 10, 300)
	h.send(PointerPhaseMove, 20, 300)
	h.send(PointerPhaseMove, 40, 300)
	h.send(PointerPhaseUp, 40, 300)

	// 10px then 20px at 16ms frames through the 0.8/0.2 exponential filter:
	// 0.2*(10/0.016) = 125, then 125*0.8 + 0.2*(20/0.016) = 350.
	got := h.ends[0].Velocity.X
	if math.Abs(got-350) > 1e-6 {
		t.Errorf("smoothed velocity = %v, want 350", got)
	}
}

func TestDragPointerGate(t *testing.T) {
	h := newDragHarness()
	h.recognizer.ShouldAddPointer = func(event PointerEvent) bool {
		return event.Position.X < 20
	}

	h.send(PointerPhaseDown, 50, 300)
	if h.recognizer.IsTracking() {
		t.Fatal("pointer outside the gate must not be tracked")
	}
	h.send(PointerPhaseMove, 100, 300)
	if len(h.starts) != 0 {
		t.Error("gated pointer must never start a drag")
	}

	h.send(PointerPhaseDown, 10, 300)
	if !h.recognizer.IsTracking() {
		t.Fatal("pointer inside the gate must be tracked")
	}
}

func TestDragAcceptPredicateRejects(t *testing.T) {
	h := newDragHarness()
	h.recognizer.ShouldAccept = func(totalDelta float64) bool {
		return totalDelta > 0
	}

	h.send(PointerPhaseDown, 200, 300)
	h.send(PointerPhaseMove, 150, 300) // leftward, predicate rejects

	if len(h.starts) != 0 {
		t.Error("rejected drag must not start")
	}
	h.send(PointerPhaseMove, 100, 300)
	if len(h.updates) != 0 {
		t.Error("rejected lineage must not deliver updates")
	}
}

func TestDragVerticalDominantRejected(t *testing.T) {
	h := newDragHarness()

	h.send(PointerPhaseDown, 10, 300)
	h.send(PointerPhaseMove, 15, 340) // mostly vertical

	if len(h.starts) != 0 {
		t.Error("vertically dominant motion must not start a horizontal drag")
	}
	if h.recognizer.IsTracking() && len(h.updates) != 0 {
		t.Error("rejected lineage must not deliver updates")
	}
}

func TestDragSurvivesDirectionReversal(t *testing.T) {
	h := newDragHarness()
	h.recognizer.ShouldAccept = func(totalDelta float64) bool {
		return totalDelta > 0
	}

	h.send(PointerPhaseDown, 10, 300)
	h.send(PointerPhaseMove, 50, 300) // rightward, accepted, drag starts
	if len(h.starts) != 1 {
		t.Fatal("drag should have started")
	}

	// Reversing past the start point must not re-consult the predicate.
	h.send(PointerPhaseMove, 5, 300)
	if len(h.updates) != 2 {
		t.Fatalf("updates = %d, want 2 (reversal keeps the drag alive)", len(h.updates))
	}
	h.send(PointerPhaseUp, 5, 300)
	if len(h.ends) != 1 {
		t.Error("reversed drag must still end normally")
	}
}

func TestDragDegenerateUpDeliversStartThenEnd(t *testing.T) {
	h := newDragHarness()

	// Lone member wins at arena close; the pointer lifts without a
	// qualifying move.
	h.send(PointerPhaseDown, 10, 300)
	h.send(PointerPhaseUp, 12, 300)

	if len(h.starts) != 1 {
		t.Fatalf("starts = %d, want a degenerate start before the end", len(h.starts))
	}
	if len(h.ends) != 1 {
		t.Fatalf("ends = %d, want 1", len(h.ends))
	}
	if len(h.updates) != 0 {
		t.Errorf("updates = %d, want 0", len(h.updates))
	}
}

func TestDragCancelAfterAccept(t *testing.T) {
	h := newDragHarness()

	h.send(PointerPhaseDown, 10, 300)
	h.send(PointerPhaseMove, 50, 300)
	h.send(PointerPhaseCancel, 50, 300)

	if h.cancels != 1 {
		t.Errorf("cancels = %d, want 1", h.cancels)
	}
	if len(h.ends) != 0 {
		t.Error("cancelled drag must not deliver an end")
	}
	if h.recognizer.IsTracking() {
		t.Error("cancelled lineage must stop tracking")
	}
}
