package navigation

import (
	"time"

	"github.com/go-drift/swipeback/pkg/animation"
)

// TransitionDuration is the default duration for page transitions.
const TransitionDuration = 450 * time.Millisecond

// GestureConfig holds the per-route back-swipe settings.
//
// The configuration is re-read on every pointer sample, so it may change
// while a gesture is tracked; a drag that has already started is immune to
// such changes until it resolves.
type GestureConfig struct {
	// Enabled allows the back swipe on this route.
	Enabled bool

	// EdgeOnly restricts where a gesture may start to a band at the leading
	// edge. When false, a drag may start anywhere on the surface.
	EdgeOnly bool

	// DetectionWidth is the minimum width of the edge detection band in
	// logical pixels. The effective width is the larger of this and the
	// leading safe-area inset, so the band is usable on notched screens.
	DetectionWidth float64

	// DetectionStartOffset shifts the detection band away from the leading
	// edge, in logical pixels.
	DetectionStartOffset float64

	// MinFlingVelocity is the release speed, in screen-widths per second,
	// at which velocity overrides position when resolving the gesture.
	MinFlingVelocity float64

	// BaseDuration scales the terminal animation after release. Zero means
	// TransitionDuration.
	BaseDuration time.Duration

	// Direction is the reading order, which fixes the dismiss direction.
	Direction TextDirection
}

// DefaultGestureConfig returns the standard iOS-style back-swipe settings.
func DefaultGestureConfig() GestureConfig {
	return GestureConfig{
		Enabled:          true,
		EdgeOnly:         true,
		DetectionWidth:   20,
		MinFlingVelocity: 1.0,
		BaseDuration:     TransitionDuration,
		Direction:        TextDirectionLTR,
	}
}

// baseDuration returns the configured terminal-animation base, falling back
// to the default transition duration.
func (c GestureConfig) baseDuration() time.Duration {
	if c.BaseDuration > 0 {
		return c.BaseDuration
	}
	return TransitionDuration
}

// TransitionRoute is implemented by routes that own a transition animation
// controller. The navigator and the back gesture use it to observe and drive
// a route's transition progress.
type TransitionRoute interface {
	Route
	TransitionController() *animation.AnimationController
}

// PageRoute is a route with an animated page transition and an interactive
// back swipe.
//
// The transition controller's value is the route's transition progress:
// 1.0 means the page is fully shown, 0.0 fully dismissed. DidPush animates
// it forward with the iOS navigation curve; DidPop reverses it; the back
// gesture drags it directly.
type PageRoute struct {
	BaseRoute

	// Gesture configures the back swipe. Mutable between pointer samples.
	Gesture GestureConfig

	// FullscreenDialog marks modal-style pages, which are presented from the
	// bottom and do not take part in the back gesture.
	FullscreenDialog bool

	// Duration overrides the default transition duration when positive.
	Duration time.Duration

	controller     *animation.AnimationController
	navigator      *Navigator
	isInitialRoute bool
	backGesture    *BackGestureController
}

// NewPageRoute creates a PageRoute with default gesture settings.
func NewPageRoute(settings RouteSettings) *PageRoute {
	return &PageRoute{
		BaseRoute: NewBaseRoute(settings),
		Gesture:   DefaultGestureConfig(),
	}
}

// TransitionController returns this route's transition animation controller,
// or nil before the route is pushed (or for the initial route, which never
// animates in).
func (r *PageRoute) TransitionController() *animation.AnimationController {
	return r.controller
}

// SetInitialRoute marks this as the initial route (no entrance animation).
func (r *PageRoute) SetInitialRoute() {
	r.isInitialRoute = true
}

// Navigator returns the navigator this route is attached to, or nil.
func (r *PageRoute) Navigator() *Navigator {
	return r.navigator
}

func (r *PageRoute) attach(nav *Navigator) {
	r.navigator = nav
}

func (r *PageRoute) detach() {
	r.navigator = nil
}

func (r *PageRoute) transitionDuration() time.Duration {
	if r.Duration > 0 {
		return r.Duration
	}
	return TransitionDuration
}

// DidPush starts the entrance transition.
func (r *PageRoute) DidPush() {
	if r.isInitialRoute {
		return
	}
	r.controller = animation.NewAnimationController(r.transitionDuration())
	r.controller.Curve = animation.IOSNavigationCurve
	r.controller.Forward()
}

// DidPop starts the exit transition. A route dismissed by a completed back
// gesture is already at rest and is not re-animated.
func (r *PageRoute) DidPop(result any) {
	if r.controller != nil && !r.controller.IsDismissed() {
		r.controller.Reverse()
	}
}

// PopGestureInProgress reports whether a back gesture on this route is
// dragging or resolving.
func (r *PageRoute) PopGestureInProgress() bool {
	return r.backGesture != nil
}

// PopGestureStatus returns the state of this route's back gesture.
func (r *PageRoute) PopGestureStatus() GestureStatus {
	if r.backGesture == nil {
		return GestureIdle
	}
	return r.backGesture.Status()
}

// CanStartPopGesture reports whether a back swipe may begin on this route.
//
// A route is eligible when it sits above another route, allows the gesture,
// is not a fullscreen dialog, does not consume pops internally, is fully
// shown (not mid-transition), and no user gesture is already in progress on
// its navigator.
func (r *PageRoute) CanStartPopGesture() bool {
	if r.navigator == nil || r.navigator.IsFirst(r) {
		return false
	}
	if !r.Gesture.Enabled || r.FullscreenDialog || r.WillHandlePopInternally() {
		return false
	}
	if r.navigator.UserGestureInProgress() {
		return false
	}
	return r.controller != nil && r.controller.IsCompleted()
}

// StartPopGesture begins an interactive back gesture and returns its
// controller handle.
//
// Calling StartPopGesture while the route is not eligible, in particular
// while another gesture is active or resolving, is a programming error and
// panics: the caller (the gesture detector) is responsible for gating starts
// through CanStartPopGesture.
func (r *PageRoute) StartPopGesture() *BackGestureController {
	if r.backGesture != nil {
		panic("navigation: back gesture already in progress for this route")
	}
	if !r.CanStartPopGesture() {
		panic("navigation: route is not eligible for a back gesture")
	}

	nav := r.navigator
	nav.DidStartUserGesture()
	r.backGesture = newBackGestureController(backGestureHooks{
		progress:  r.controller,
		config:    func() GestureConfig { return r.Gesture },
		isCurrent: func() bool { return nav.IsCurrent(r) },
		isActive:  func() bool { return nav.IsActive(r) },
		pop:       func() { nav.Pop(nil) },
		finished: func() {
			r.backGesture = nil
			nav.DidStopUserGesture()
		},
	})
	return r.backGesture
}
