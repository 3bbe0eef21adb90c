// Package navigation provides a route stack with interactive, gesture-driven
// back navigation.
//
// # Route Stack
//
// [Navigator] manages a stack of [Route] values with push/pop semantics:
//
//	nav := navigation.NewNavigator()
//	nav.Push(navigation.NewPageRoute(navigation.RouteSettings{Name: "/"}))
//	nav.Push(navigation.NewPageRoute(navigation.RouteSettings{Name: "/details"}))
//	nav.Pop(nil)
//
// [PageRoute] owns an [animation.AnimationController] that drives its
// slide-in/slide-out transition; visual layers subscribe to the controller
// and render the transition however they like. Rendering itself is out of
// scope for this package.
//
// # Back Swipe
//
// The interactive back gesture is exposed through [BackGestureDetector],
// which bridges a horizontal drag recognizer to the top route's transition
// controller:
//
//	detector := navigation.NewBackGestureDetector(route, gestures.DefaultArena,
//	    surfaceWidth, insets)
//	// feed pointer events from the host input system:
//	detector.HandlePointer(event)
//
// While the finger moves, the route's transition progress tracks the drag
// one-to-one (1.0 = page fully shown, 0.0 = fully dismissed). On release the
// gesture resolves: a fling toward the dismiss direction or a drag past the
// midpoint completes the pop; anything else restores the page. The remainder
// animates with [animation.BackGestureCurve] over a duration proportional to
// the remaining travel, and the route is popped only if it is still current
// when the animation finishes.
package navigation

// TextDirection is the reading order of the surface, which determines the
// dismiss direction of the back gesture.
type TextDirection int

const (
	// TextDirectionLTR reads left-to-right; the back gesture swipes right.
	TextDirectionLTR TextDirection = iota
	// TextDirectionRTL reads right-to-left; the back gesture swipes left.
	TextDirectionRTL
)

// String returns a human-readable representation of the direction.
func (d TextDirection) String() string {
	if d == TextDirectionRTL {
		return "rtl"
	}
	return "ltr"
}

// RouteSettings contains configuration and parameters for a route.
type RouteSettings struct {
	// Name is the route path (e.g., "/home", "/products/123").
	Name string

	// Arguments contains arbitrary data passed during navigation.
	Arguments any
}

// Route represents a screen in the navigation stack.
type Route interface {
	// Settings returns the route configuration.
	Settings() RouteSettings

	// DidPush is called when the route is pushed onto the navigator.
	DidPush()

	// DidPop is called when the route is popped from the navigator.
	DidPop(result any)

	// DidChangeNext is called when the next route in the stack changes.
	DidChangeNext(nextRoute Route)

	// DidChangePrevious is called when the previous route in the stack changes.
	DidChangePrevious(previousRoute Route)

	// WillPop is called before the route is popped.
	// Return false to prevent the pop.
	WillPop() bool

	// WillHandlePopInternally reports whether the route consumes pop
	// requests itself (e.g. it has internal state to unwind first). Such
	// routes are not eligible for the back gesture.
	WillHandlePopInternally() bool
}

// attachable is implemented by routes that need a reference to their
// navigator. The navigator attaches on push and detaches on removal.
type attachable interface {
	attach(nav *Navigator)
	detach()
}

// BaseRoute provides a default implementation of Route lifecycle methods.
type BaseRoute struct {
	settings RouteSettings
}

// NewBaseRoute creates a BaseRoute with the given settings.
func NewBaseRoute(settings RouteSettings) BaseRoute {
	return BaseRoute{settings: settings}
}

// Settings returns the route settings.
func (r *BaseRoute) Settings() RouteSettings {
	return r.settings
}

// DidPush is a no-op by default.
func (r *BaseRoute) DidPush() {}

// DidPop is a no-op by default.
func (r *BaseRoute) DidPop(result any) {}

// DidChangeNext is a no-op by default.
func (r *BaseRoute) DidChangeNext(nextRoute Route) {}

// DidChangePrevious is a no-op by default.
func (r *BaseRoute) DidChangePrevious(previousRoute Route) {}

// WillPop returns true by default, allowing the pop.
func (r *BaseRoute) WillPop() bool {
	return true
}

// WillHandlePopInternally returns false by default.
func (r *BaseRoute) WillHandlePopInternally() bool {
	return false
}
