package gestures

import (
	"math"
	"time"
)

// DragStartDetails describes the start of a drag.
type DragStartDetails struct {
	// Position is where the pointer first made contact.
	Position Offset
}

// DragUpdateDetails describes a drag update.
type DragUpdateDetails struct {
	// Position is the current pointer location.
	Position Offset
	// Delta is the movement since the previous sample.
	Delta Offset
	// PrimaryDelta is the movement along the recognizer's axis.
	PrimaryDelta float64
}

// DragEndDetails describes the end of a drag.
type DragEndDetails struct {
	// Position is the pointer location at release.
	Position Offset
	// Velocity is the smoothed release velocity in pixels/second.
	Velocity Offset
	// PrimaryVelocity is the velocity along the recognizer's axis.
	PrimaryVelocity float64
}

// HorizontalDragGestureRecognizer recognizes horizontal drags with
// conditional acceptance.
//
// Acceptance runs in two stages, both re-evaluated per pointer sample until
// the recognizer wins its arena:
//
//   - ShouldAddPointer gates the initial down sample. Returning false means
//     the lineage is never tracked (e.g. the touch is outside an edge
//     detection band).
//   - ShouldAccept is consulted on every move sample once horizontal motion
//     exceeds the touch slop, receiving the cumulative horizontal delta.
//     Returning false rejects the lineage in the arena.
//
// Once the recognizer has won the arena, an in-progress drag is never
// dropped: the predicates are no longer consulted, even if the drag
// direction reverses or the caller's configuration changes mid-gesture.
type HorizontalDragGestureRecognizer struct {
	Arena *GestureArena

	// ShouldAddPointer gates the down sample. Nil accepts all pointers.
	ShouldAddPointer func(event PointerEvent) bool

	// ShouldAccept is consulted when horizontal movement exceeds the slop,
	// with the cumulative horizontal delta since the down sample. Nil
	// accepts all drags.
	ShouldAccept func(totalDelta float64) bool

	OnStart  func(DragStartDetails)
	OnUpdate func(DragUpdateDetails)
	OnEnd    func(DragEndDetails)
	OnCancel func()

	// Now supplies timestamps for velocity tracking. Defaults to time.Now.
	Now func() time.Time

	pointer   int64     // current pointer being tracked
	start     Offset    // initial touch position
	last      Offset    // most recent touch position
	lastTime  time.Time // timestamp of last update (for velocity)
	velocityX float64   // smoothed horizontal velocity in pixels/second
	velocityY float64   // smoothed vertical velocity in pixels/second
	slop      float64   // minimum distance before recognizing a drag
	tracking  bool      // true while a pointer lineage is being followed
	accepted  bool      // true after winning the gesture arena
	reject    bool      // true if the gesture was rejected
	started   bool      // true after OnStart has been called
}

// NewHorizontalDragGestureRecognizer creates a recognizer competing in arena.
func NewHorizontalDragGestureRecognizer(arena *GestureArena) *HorizontalDragGestureRecognizer {
	return &HorizontalDragGestureRecognizer{Arena: arena}
}

func (r *HorizontalDragGestureRecognizer) now() time.Time {
	if r.Now != nil {
		return r.Now()
	}
	return time.Now()
}

// AddPointer begins tracking a pointer lineage from its down sample.
func (r *HorizontalDragGestureRecognizer) AddPointer(event PointerEvent) {
	if r.Arena == nil {
		return
	}
	if r.ShouldAddPointer != nil && !r.ShouldAddPointer(event) {
		return
	}
	r.pointer = event.PointerID
	r.start = event.Position
	r.last = event.Position
	r.lastTime = r.now()
	r.velocityX = 0
	r.velocityY = 0
	r.slop = DefaultTouchSlop
	r.tracking = true
	r.accepted = false
	r.reject = false
	r.started = false
	r.Arena.Add(event.PointerID, r)
	r.Arena.Hold(event.PointerID, r)
}

// HandleEvent processes move/up/cancel samples for the tracked pointer.
func (r *HorizontalDragGestureRecognizer) HandleEvent(event PointerEvent) {
	if !r.tracking || event.PointerID != r.pointer || r.reject {
		return
	}
	switch event.Phase {
	case PointerPhaseMove:
		r.handleMove(event)
	case PointerPhaseUp:
		r.handleUp(event)
	case PointerPhaseCancel:
		r.handleCancel()
	}
}

// handleMove processes pointer move events, deciding whether to accept the
// gesture and tracking velocity for fling detection.
func (r *HorizontalDragGestureRecognizer) handleMove(event PointerEvent) {
	now := r.now()
	dt := now.Sub(r.lastTime).Seconds()

	// Cumulative movement from the down sample
	total := event.Position.Sub(r.start)
	primary := math.Abs(total.X)
	orthogonal := math.Abs(total.Y)

	// Gesture recognition: decide to accept or reject once slop is exceeded.
	// The predicate is consulted until the drag has started; after that an
	// in-progress drag is never dropped.
	if !r.started {
		if primary > r.slop && primary >= orthogonal {
			// Horizontal movement dominant: ask the callback
			shouldAccept := true
			if r.ShouldAccept != nil {
				shouldAccept = r.ShouldAccept(total.X)
			}
			if !shouldAccept {
				// Callback rejected: let other recognizers handle it
				r.reject = true
				r.Arena.Reject(r.pointer, r)
				return
			}
			if !r.accepted {
				r.Arena.Resolve(r.pointer, r)
			}
			if r.accepted {
				// Either the arena was already won (lone member at
				// close) or the resolve just succeeded; the qualifying
				// move starts the drag.
				r.ensureStarted()
			}
		} else if orthogonal > r.slop {
			// Vertical movement dominant: reject (likely a scroll)
			r.reject = true
			r.Arena.Reject(r.pointer, r)
			return
		}
	}

	// Update velocity using exponential smoothing for stable fling detection
	delta := event.Position.Sub(r.last)
	if dt > 0 {
		r.velocityX = r.velocityX*0.8 + (delta.X/dt)*0.2
		r.velocityY = r.velocityY*0.8 + (delta.Y/dt)*0.2
	}

	// Dispatch update once the drag is running
	if r.started {
		if r.OnUpdate != nil {
			r.OnUpdate(DragUpdateDetails{
				Position:     event.Position,
				Delta:        delta,
				PrimaryDelta: delta.X,
			})
		}
	}

	r.last = event.Position
	r.lastTime = now
}

func (r *HorizontalDragGestureRecognizer) handleUp(event PointerEvent) {
	r.tracking = false
	if r.accepted {
		// Degenerate case: arena won without a qualifying move. Deliver a
		// start so the end has a matching begin.
		r.ensureStarted()
		if r.OnEnd != nil {
			r.OnEnd(DragEndDetails{
				Position:        event.Position,
				Velocity:        Offset{X: r.velocityX, Y: r.velocityY},
				PrimaryVelocity: r.velocityX,
			})
		}
	} else {
		r.Arena.Reject(r.pointer, r)
	}
}

func (r *HorizontalDragGestureRecognizer) handleCancel() {
	r.tracking = false
	if r.accepted && r.OnCancel != nil {
		r.OnCancel()
	}
	r.reject = true
	r.Arena.Reject(r.pointer, r)
}

// AcceptGesture is the arena's win notification. The drag itself starts on
// the first qualifying move sample (or at release for a degenerate
// zero-movement win).
func (r *HorizontalDragGestureRecognizer) AcceptGesture(pointerID int64) {
	if pointerID != r.pointer || r.reject {
		return
	}
	r.accepted = true
}

// RejectGesture is the arena's loss notification.
func (r *HorizontalDragGestureRecognizer) RejectGesture(pointerID int64) {
	if pointerID != r.pointer {
		return
	}
	r.reject = true
}

func (r *HorizontalDragGestureRecognizer) ensureStarted() {
	if r.started {
		return
	}
	r.started = true
	if r.OnStart != nil {
		r.OnStart(DragStartDetails{Position: r.start})
	}
}

// IsTracking reports whether a pointer lineage is currently being followed.
func (r *HorizontalDragGestureRecognizer) IsTracking() bool {
	return r.tracking
}

// Dispose withdraws the recognizer from any in-flight arena contest.
func (r *HorizontalDragGestureRecognizer) Dispose() {
	if r.tracking && !r.reject && r.Arena != nil {
		r.reject = true
		r.tracking = false
		r.Arena.Reject(r.pointer, r)
	}
}
