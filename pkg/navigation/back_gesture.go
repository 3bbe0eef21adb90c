package navigation

import (
	"math"
	"time"

	"github.com/go-drift/swipeback/pkg/animation"
	"github.com/go-drift/swipeback/pkg/gestures"
	"github.com/go-drift/swipeback/pkg/graphics"
)

// GestureStatus is the lifecycle state of a route's back gesture.
type GestureStatus int

const (
	// GestureIdle means no back gesture is in flight.
	GestureIdle GestureStatus = iota
	// GestureDragging means the finger is down and driving the transition.
	GestureDragging
	// GestureResolving means the finger has lifted and the terminal
	// animation is running.
	GestureResolving
)

// String returns a human-readable representation of the status.
func (s GestureStatus) String() string {
	switch s {
	case GestureDragging:
		return "dragging"
	case GestureResolving:
		return "resolving"
	default:
		return "idle"
	}
}

// backGestureHooks are the capabilities a back gesture needs from its route
// and navigator. The probes are closures rather than cached values because
// the answers can change between drag end and animation completion (e.g. a
// programmatic navigation lands on top of the resolving gesture).
type backGestureHooks struct {
	// progress is the route's transition controller (1 = shown, 0 = gone).
	progress *animation.AnimationController
	// config re-reads the route's gesture settings.
	config func() GestureConfig
	// isCurrent reports whether the route is still topmost.
	isCurrent func() bool
	// isActive reports whether the route is still anywhere in the stack.
	isActive func() bool
	// pop performs the actual navigation pop.
	pop func()
	// finished is called exactly once when the gesture fully resolves.
	finished func()
}

// BackGestureController is the live handle of one back gesture, from drag
// start until the terminal animation settles.
//
// DragUpdate moves the transition progress with the finger; DragEnd resolves
// the gesture from release velocity and position and drives the remainder of
// the transition. The pop callback fires at most once, and only if the
// gesture resolves to completion while the route is still current.
type BackGestureController struct {
	hooks    backGestureHooks
	resolved bool
	finished bool
}

func newBackGestureController(hooks backGestureHooks) *BackGestureController {
	return &BackGestureController{hooks: hooks}
}

// Status returns the gesture's lifecycle state.
func (b *BackGestureController) Status() GestureStatus {
	switch {
	case b.finished:
		return GestureIdle
	case b.resolved:
		return GestureResolving
	default:
		return GestureDragging
	}
}

// Progress returns the live transition progress (1 = fully shown, 0 = fully
// dismissed).
func (b *BackGestureController) Progress() float64 {
	return b.hooks.progress.Value
}

// DragUpdate applies one direction-normalized drag delta, expressed as a
// fraction of the surface width. A positive delta moves toward dismissal,
// decreasing the transition progress.
//
// Calling DragUpdate after DragEnd is a programming error and panics.
func (b *BackGestureController) DragUpdate(delta float64) {
	if b.resolved {
		panic("navigation: DragUpdate on a resolved back gesture")
	}
	b.hooks.progress.SetValue(b.hooks.progress.Value - delta)
}

// DragEnd resolves the gesture. velocity is direction-normalized, in
// screen-widths per second; positive means toward dismissal.
//
// Resolution:
//   - If the route is no longer current, position and velocity are ignored:
//     a route still in the stack is restored, a removed one finishes leaving.
//   - A fling at or above the configured minimum velocity resolves by sign:
//     toward dismissal completes the pop, toward the page cancels it.
//   - Otherwise the midpoint decides: progress above 0.5 restores the page;
//     at or below 0.5 the pop completes.
//
// The remaining travel animates over a duration proportional to the
// distance, bounded to 20%-80% of the configured base duration, using
// animation.BackGestureCurve. Calling DragEnd twice panics.
func (b *BackGestureController) DragEnd(velocity float64) {
	if b.resolved {
		panic("navigation: DragEnd on a resolved back gesture")
	}
	b.resolved = true

	cfg := b.hooks.config()
	value := b.hooks.progress.Value

	var shouldReverse bool
	switch {
	case !b.hooks.isCurrent():
		// A navigation already happened on top of this drag's resolution.
		shouldReverse = b.hooks.isActive()
	case math.Abs(velocity) >= cfg.MinFlingVelocity:
		shouldReverse = velocity <= 0
	default:
		shouldReverse = value > 0.5
	}

	target := 0.0
	distance := value
	if shouldReverse {
		target = 1.0
		distance = 1.0 - value
	}

	// Proportional-but-bounded: a near-complete drag finishes quickly, a
	// barely-started reversal still takes meaningful time.
	scale := 0.2 + 0.6*distance
	duration := time.Duration(math.Round(scale*float64(cfg.baseDuration().Milliseconds()))) * time.Millisecond

	completing := !shouldReverse
	done := b.hooks.progress.AnimateToValue(target, duration, animation.BackGestureCurve)
	select {
	case <-done:
		// The value change was instantaneous; settle synchronously.
		b.finish(completing)
	default:
		// The user-gesture signal stays asserted while the terminal
		// animation runs; the status callback clears it exactly once, even
		// if the animation is preempted by a programmatic transition.
		var unsubscribe func()
		unsubscribe = b.hooks.progress.AddStatusListener(func(status animation.AnimationStatus) {
			if status == animation.AnimationForward || status == animation.AnimationReverse {
				return
			}
			unsubscribe()
			b.finish(completing)
		})
	}
}

// finish fires the pop (when completing and still current) and releases the
// gesture. Idempotent.
func (b *BackGestureController) finish(completing bool) {
	if b.finished {
		return
	}
	b.finished = true
	if completing && b.hooks.isCurrent() {
		b.hooks.pop()
	}
	if b.hooks.finished != nil {
		b.hooks.finished()
	}
}

// BackGestureDetector bridges the host's pointer events to a route's back
// gesture.
//
// The detector owns a horizontal drag recognizer whose acceptance predicates
// re-read the route's gesture configuration on every sample, converts pixel
// deltas and velocities into direction-normalized screen-width fractions,
// and holds the gesture handle for the duration of one drag.
type BackGestureDetector struct {
	route        *PageRoute
	surfaceWidth float64
	insets       graphics.EdgeInsets
	recognizer   *gestures.HorizontalDragGestureRecognizer
	gesture      *BackGestureController
}

// NewBackGestureDetector creates a detector for route, competing in arena.
// surfaceWidth and insets describe the surface the route is presented on.
func NewBackGestureDetector(route *PageRoute, arena *gestures.GestureArena, surfaceWidth float64, insets graphics.EdgeInsets) *BackGestureDetector {
	d := &BackGestureDetector{
		route:        route,
		surfaceWidth: surfaceWidth,
		insets:       insets,
	}
	r := gestures.NewHorizontalDragGestureRecognizer(arena)
	r.ShouldAddPointer = d.allowDown
	r.ShouldAccept = d.allowDrag
	r.OnStart = d.onStart
	r.OnUpdate = d.onUpdate
	r.OnEnd = d.onEnd
	r.OnCancel = d.onCancel
	d.recognizer = r
	return d
}

// SetSurface updates the surface geometry (rotation, window resize).
func (d *BackGestureDetector) SetSurface(width float64, insets graphics.EdgeInsets) {
	d.surfaceWidth = width
	d.insets = insets
}

// HandlePointer feeds one pointer sample to the detector.
func (d *BackGestureDetector) HandlePointer(event gestures.PointerEvent) {
	if event.Phase == gestures.PointerPhaseDown {
		d.recognizer.AddPointer(event)
		return
	}
	d.recognizer.HandleEvent(event)
}

// Recognizer exposes the underlying recognizer so a host can dispose it.
func (d *BackGestureDetector) Recognizer() *gestures.HorizontalDragGestureRecognizer {
	return d.recognizer
}

// leadingInset is the safe-area inset on the gesture's starting edge.
func (d *BackGestureDetector) leadingInset() float64 {
	if d.route.Gesture.Direction == TextDirectionRTL {
		return d.insets.Right
	}
	return d.insets.Left
}

// fromLeadingEdge converts a surface x-coordinate into a distance from the
// leading edge.
func (d *BackGestureDetector) fromLeadingEdge(x float64) float64 {
	if d.route.Gesture.Direction == TextDirectionRTL {
		return d.surfaceWidth - x
	}
	return x
}

// toLogical normalizes a horizontal quantity so that positive always means
// toward dismissal, regardless of reading order.
func (d *BackGestureDetector) toLogical(value float64) float64 {
	if d.route.Gesture.Direction == TextDirectionRTL {
		return -value
	}
	return value
}

func (d *BackGestureDetector) allowDown(event gestures.PointerEvent) bool {
	if !d.route.CanStartPopGesture() {
		return false
	}
	cfg := d.route.Gesture
	return allowDragSample(cfg, detectionAreaFor(cfg, d.leadingInset()), dragSample{
		position:      d.fromLeadingEdge(event.Position.X),
		isInitialDown: true,
	}, d.gesture != nil)
}

func (d *BackGestureDetector) allowDrag(totalDelta float64) bool {
	cfg := d.route.Gesture
	return allowDragSample(cfg, detectionAreaFor(cfg, d.leadingInset()), dragSample{
		deltaX: totalDelta,
	}, d.gesture != nil)
}

func (d *BackGestureDetector) onStart(details gestures.DragStartDetails) {
	if d.gesture != nil {
		panic("navigation: drag started while a back gesture is active")
	}
	d.gesture = d.route.StartPopGesture()
}

func (d *BackGestureDetector) onUpdate(details gestures.DragUpdateDetails) {
	if d.gesture == nil {
		return
	}
	d.gesture.DragUpdate(d.toLogical(details.PrimaryDelta / d.surfaceWidth))
}

func (d *BackGestureDetector) onEnd(details gestures.DragEndDetails) {
	if d.gesture == nil {
		return
	}
	gesture := d.gesture
	d.gesture = nil

	// The release only counts as directional when the motion is horizontal
	// enough; a mostly-vertical lift resolves by position alone.
	velocity := 0.0
	if math.Abs(details.Velocity.X) > math.Abs(details.Velocity.Y) {
		velocity = details.Velocity.X / d.surfaceWidth
	}
	gesture.DragEnd(d.toLogical(velocity))
}

// onCancel resolves a lost pointer as a zero-velocity release. Safe to call
// with no gesture active.
func (d *BackGestureDetector) onCancel() {
	if d.gesture == nil {
		return
	}
	gesture := d.gesture
	d.gesture = nil
	gesture.DragEnd(0)
}
