package animation

import (
	"fmt"
	"time"
)

// AnimationStatus represents the current state of an animation.
//
// The status follows this state machine:
//
//	                Forward()
//	Dismissed ──────────────────► Completed
//	    ▲                              │
//	    │         Reverse()            │
//	    └──────────────────────────────┘
//
// While animating, status is AnimationForward or AnimationReverse.
// When stopped, status is AnimationDismissed (at 0) or AnimationCompleted (at 1).
type AnimationStatus int

const (
	// AnimationDismissed means the animation is stopped at the lower bound (0.0).
	AnimationDismissed AnimationStatus = iota
	// AnimationForward means the animation is playing toward the upper bound (1.0).
	AnimationForward
	// AnimationReverse means the animation is playing toward the lower bound (0.0).
	AnimationReverse
	// AnimationCompleted means the animation is stopped at the upper bound (1.0).
	AnimationCompleted
)

// String returns a human-readable representation of the animation status.
func (s AnimationStatus) String() string {
	switch s {
	case AnimationDismissed:
		return "dismissed"
	case AnimationForward:
		return "forward"
	case AnimationReverse:
		return "reverse"
	case AnimationCompleted:
		return "completed"
	default:
		return fmt.Sprintf("AnimationStatus(%d)", int(s))
	}
}

// AnimationController drives an animation by producing values over time.
//
// The controller manages a Value that progresses from LowerBound (default 0.0)
// to UpperBound (default 1.0) over the specified Duration. The Curve function
// transforms linear progress into eased motion.
//
// Beyond the time-driven Forward/Reverse/AnimateTo operations, the controller
// supports direct coupling to user input: SetValue mutates the value
// immediately (interrupting any running animation), and AnimateToValue runs a
// one-off animation with its own duration and curve, returning a channel that
// closes when the value settles. This is the contract interactive transitions
// such as the navigation back swipe are built on: the gesture writes values
// while the finger moves, then hands the remainder to AnimateToValue.
//
// Use [Tween] to map the 0-1 value to other ranges.
//
// Always call Dispose when done to stop the animation and release resources.
type AnimationController struct {
	// Value is the current animation value, ranging from 0.0 to 1.0.
	Value float64

	// Duration is the length of a full-range animation.
	Duration time.Duration

	// Curve transforms linear progress (optional).
	Curve func(float64) float64

	// LowerBound is the minimum value (default 0.0).
	LowerBound float64

	// UpperBound is the maximum value (default 1.0).
	UpperBound float64

	status          AnimationStatus
	ticker          *Ticker
	target          float64
	startValue      float64
	activeDuration  time.Duration
	activeCurve     func(float64) float64
	done            chan struct{}
	listeners       map[int]func()
	statusListeners map[int]func(AnimationStatus)
	nextListenerID  int
}

// NewAnimationController creates an animation controller with the given duration.
func NewAnimationController(duration time.Duration) *AnimationController {
	return &AnimationController{
		Value:           0,
		Duration:        duration,
		LowerBound:      0,
		UpperBound:      1,
		Curve:           LinearCurve,
		status:          AnimationDismissed,
		listeners:       make(map[int]func()),
		statusListeners: make(map[int]func(AnimationStatus)),
	}
}

// Forward animates from the current value to the upper bound (1.0).
func (c *AnimationController) Forward() {
	c.animateTo(c.UpperBound, c.Duration, c.Curve, AnimationForward)
}

// Reverse animates from the current value to the lower bound (0.0).
func (c *AnimationController) Reverse() {
	c.animateTo(c.LowerBound, c.Duration, c.Curve, AnimationReverse)
}

// AnimateTo animates to a specific target value using the controller's
// Duration and Curve.
func (c *AnimationController) AnimateTo(target float64) {
	c.AnimateToValue(target, c.Duration, c.Curve)
}

// AnimateToValue animates to target over the given duration with the given
// curve, overriding the controller's defaults for this animation only.
//
// The returned channel closes when the animation settles at the target, or
// when it is interrupted by SetValue, Stop, or another animation. If the
// value change is instantaneous (duration <= 0 or the value is already at
// the target), the channel is closed before AnimateToValue returns and any
// status change is delivered synchronously.
func (c *AnimationController) AnimateToValue(target float64, duration time.Duration, curve func(float64) float64) <-chan struct{} {
	if duration <= 0 || target == c.Value {
		c.stopTicker()
		c.closeDone()
		c.Value = target
		c.notifyListeners()
		c.settleStatus()
		closed := make(chan struct{})
		close(closed)
		return closed
	}

	direction := AnimationReverse
	if target > c.Value {
		direction = AnimationForward
	}
	c.animateTo(target, duration, curve, direction)
	return c.done
}

// Done returns the completion channel of the running animation, or nil when
// no animation is in flight.
func (c *AnimationController) Done() <-chan struct{} {
	return c.done
}

// SetValue immediately sets the value, interrupting any running animation.
// The value is clamped to [LowerBound, UpperBound]. Value listeners are
// notified; the status is left untouched so that a stream of interactive
// updates does not churn status listeners.
func (c *AnimationController) SetValue(value float64) {
	c.stopTicker()
	c.closeDone()
	if value < c.LowerBound {
		value = c.LowerBound
	}
	if value > c.UpperBound {
		value = c.UpperBound
	}
	c.Value = value
	c.notifyListeners()
}

func (c *AnimationController) animateTo(target float64, duration time.Duration, curve func(float64) float64, direction AnimationStatus) {
	c.stopTicker()
	c.closeDone()

	c.target = target
	c.startValue = c.Value
	c.activeDuration = duration
	c.activeCurve = curve
	c.done = make(chan struct{})
	c.setStatus(direction)

	c.ticker = NewTicker(func(elapsed time.Duration) {
		c.tick(elapsed)
	})
	c.ticker.Start()
}

func (c *AnimationController) tick(elapsed time.Duration) {
	if c.activeDuration <= 0 {
		c.Value = c.target
		c.notifyListeners()
		c.finish()
		return
	}

	// Calculate progress as fraction of the animation's duration
	progress := float64(elapsed) / float64(c.activeDuration)
	if progress >= 1.0 {
		progress = 1.0
	}

	// Interpolate from start to target
	eased := progress
	if c.activeCurve != nil {
		eased = c.activeCurve(progress)
	}
	c.Value = c.startValue + (c.target-c.startValue)*eased
	c.notifyListeners()

	if progress >= 1.0 {
		c.finish()
	}
}

// finish stops the ticker, settles the terminal status, and signals completion.
func (c *AnimationController) finish() {
	c.stopTicker()
	c.settleStatus()
	c.closeDone()
}

// settleStatus updates the status when the value rests at a bound.
// A value at rest between the bounds keeps its previous status.
func (c *AnimationController) settleStatus() {
	if c.Value <= c.LowerBound {
		c.setStatus(AnimationDismissed)
	} else if c.Value >= c.UpperBound {
		c.setStatus(AnimationCompleted)
	}
}

// Reset immediately sets the value to the lower bound.
func (c *AnimationController) Reset() {
	c.Stop()
	c.Value = c.LowerBound
	c.setStatus(AnimationDismissed)
	c.notifyListeners()
}

// Stop stops the animation at the current value.
func (c *AnimationController) Stop() {
	c.stopTicker()
	c.closeDone()
}

func (c *AnimationController) stopTicker() {
	if c.ticker != nil {
		c.ticker.Stop()
		c.ticker = nil
	}
}

func (c *AnimationController) closeDone() {
	if c.done != nil {
		close(c.done)
		c.done = nil
	}
}

// Status returns the current animation status.
func (c *AnimationController) Status() AnimationStatus {
	return c.status
}

// IsAnimating returns true if the animation is currently running.
func (c *AnimationController) IsAnimating() bool {
	return c.status == AnimationForward || c.status == AnimationReverse
}

// IsCompleted returns true if the animation finished at the upper bound.
func (c *AnimationController) IsCompleted() bool {
	return c.status == AnimationCompleted
}

// IsDismissed returns true if the animation is at the lower bound.
func (c *AnimationController) IsDismissed() bool {
	return c.status == AnimationDismissed
}

// AddListener adds a callback that fires whenever the value changes.
// Returns an unsubscribe function.
func (c *AnimationController) AddListener(fn func()) func() {
	id := c.nextListenerID
	c.nextListenerID++
	c.listeners[id] = fn
	return func() {
		delete(c.listeners, id)
	}
}

// AddStatusListener adds a callback that fires whenever the status changes.
// Returns an unsubscribe function.
func (c *AnimationController) AddStatusListener(fn func(AnimationStatus)) func() {
	id := c.nextListenerID
	c.nextListenerID++
	c.statusListeners[id] = fn
	return func() {
		delete(c.statusListeners, id)
	}
}

func (c *AnimationController) setStatus(status AnimationStatus) {
	if c.status == status {
		return
	}
	c.status = status
	for _, listener := range c.statusListeners {
		listener(status)
	}
}

func (c *AnimationController) notifyListeners() {
	for _, listener := range c.listeners {
		listener()
	}
}

// Dispose cleans up resources used by the controller.
func (c *AnimationController) Dispose() {
	c.Stop()
	c.listeners = nil
	c.statusListeners = nil
}
