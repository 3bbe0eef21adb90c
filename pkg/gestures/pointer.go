// Package gestures provides pointer event types, the gesture arena, and drag
// recognition for interactive navigation transitions.
//
// The host input system delivers [PointerEvent]s for each pointer lineage in
// temporal order. Recognizers register with a [GestureArena] on pointer down
// and compete for the gesture; the arena guarantees at most one winner per
// pointer, so a back-swipe recognizer can coexist with scrolling and taps.
package gestures

import (
	"fmt"

	"github.com/go-drift/swipeback/pkg/graphics"
)

// DefaultTouchSlop is the distance in logical pixels a pointer must travel
// before a drag is recognized.
const DefaultTouchSlop = 18.0

// PointerPhase identifies the stage of a pointer event within its lineage.
type PointerPhase int

const (
	// PointerPhaseDown is the initial contact of a pointer.
	PointerPhaseDown PointerPhase = iota
	// PointerPhaseMove is a position change while the pointer is down.
	PointerPhaseMove
	// PointerPhaseUp is the pointer being lifted.
	PointerPhaseUp
	// PointerPhaseCancel means the lineage was aborted (pointer lost,
	// gesture preempted by the platform).
	PointerPhaseCancel
)

// String returns a human-readable representation of the phase.
func (p PointerPhase) String() string {
	switch p {
	case PointerPhaseDown:
		return "down"
	case PointerPhaseMove:
		return "move"
	case PointerPhaseUp:
		return "up"
	case PointerPhaseCancel:
		return "cancel"
	default:
		return fmt.Sprintf("PointerPhase(%d)", int(p))
	}
}

// PointerEvent is a single sample of a pointer lineage.
type PointerEvent struct {
	// PointerID identifies the lineage this sample belongs to.
	PointerID int64

	// Position is the pointer location in surface coordinates.
	Position Offset

	// Phase is the stage of the lineage this sample represents.
	Phase PointerPhase
}

// Offset is an alias for graphics.Offset; all gesture positions and
// velocities use it.
type Offset = graphics.Offset
