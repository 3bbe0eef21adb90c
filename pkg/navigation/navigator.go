package navigation

import (
	"go.uber.org/atomic"

	"github.com/go-drift/swipeback/pkg/animation"
)

// NavigatorObserver receives navigation events.
type NavigatorObserver interface {
	// DidPush is called after a route is pushed, with the route below it.
	DidPush(route, previousRoute Route)
	// DidPop is called after a route is popped, with the new top route.
	DidPop(route, previousRoute Route)
	// DidRemove is called when a route is removed without animation.
	DidRemove(route, previousRoute Route)
	// DidReplace is called when a route is swapped in place.
	DidReplace(newRoute, oldRoute Route)
}

// Navigator manages a stack of routes using imperative navigation.
//
// Navigator provides push/pop stack semantics plus the probes interactive
// transitions depend on: per-route stack queries (IsCurrent, IsActive,
// IsFirst) and the user-gesture signal. The gesture signal is a counter so
// nested gestures on separate navigators compose, and it is atomic because
// platform callbacks may observe it from outside the frame loop.
//
// All stack mutation must happen on the frame loop; exclusivity between the
// back gesture and programmatic navigation is enforced by the gesture state
// machine, not by locking.
type Navigator struct {
	routes       []Route
	exitingRoute Route // route currently animating out
	observers    []NavigatorObserver
	userGestures atomic.Int32
}

// NewNavigator creates an empty navigator with the given observers.
func NewNavigator(observers ...NavigatorObserver) *Navigator {
	return &Navigator{observers: observers}
}

// Push adds a route to the top of the stack.
func (n *Navigator) Push(route Route) {
	var previousTop Route
	if len(n.routes) > 0 {
		previousTop = n.routes[len(n.routes)-1]
		previousTop.DidChangeNext(route)
	}
	n.routes = append(n.routes, route)

	route.DidChangePrevious(previousTop)
	if a, ok := route.(attachable); ok {
		a.attach(n)
	}
	route.DidPush()

	for _, observer := range n.observers {
		observer.DidPush(route, previousTop)
	}
}

// Pop removes the current route from the stack.
// The result is passed to the popped route's DidPop callback.
// Does nothing if only one route remains (can't pop the root) or if a pop
// animation is already in flight.
func (n *Navigator) Pop(result any) {
	if len(n.routes) <= 1 {
		return
	}
	if n.exitingRoute != nil {
		return
	}

	popped := n.routes[len(n.routes)-1]
	n.routes = n.routes[:len(n.routes)-1]

	// Keep the popped route visible while it animates out
	n.exitingRoute = popped

	// Start the exit animation
	popped.DidPop(result)

	// Remove the route once its transition controller reaches rest. A route
	// popped by a completed back gesture is already dismissed and is removed
	// immediately.
	if tr, ok := popped.(TransitionRoute); ok && tr.TransitionController() != nil && !tr.TransitionController().IsDismissed() {
		controller := tr.TransitionController()
		var unsubscribe func()
		unsubscribe = controller.AddStatusListener(func(status animation.AnimationStatus) {
			if status == animation.AnimationDismissed {
				unsubscribe()
				n.clearExiting(popped)
			}
		})
	} else {
		n.clearExiting(popped)
	}

	// Notify new top route
	if len(n.routes) > 0 {
		n.routes[len(n.routes)-1].DidChangeNext(nil)
	}

	var previousRoute Route
	if len(n.routes) > 0 {
		previousRoute = n.routes[len(n.routes)-1]
	}
	for _, observer := range n.observers {
		observer.DidPop(popped, previousRoute)
	}
}

func (n *Navigator) clearExiting(route Route) {
	if n.exitingRoute != route {
		return
	}
	n.exitingRoute = nil
	if a, ok := route.(attachable); ok {
		a.detach()
	}
}

// PopUntil removes routes until the predicate returns true for the top route.
// Each route's WillPop is checked before removal; removal stops if WillPop
// returns false. Routes are removed without animation.
func (n *Navigator) PopUntil(predicate func(Route) bool) {
	for len(n.routes) > 1 {
		top := n.routes[len(n.routes)-1]
		if predicate(top) {
			break
		}
		if !top.WillPop() {
			break
		}
		n.routes = n.routes[:len(n.routes)-1]

		var previous Route
		if len(n.routes) > 0 {
			previous = n.routes[len(n.routes)-1]
		}
		top.DidPop(nil)
		if a, ok := top.(attachable); ok {
			a.detach()
		}
		for _, observer := range n.observers {
			observer.DidRemove(top, previous)
		}
	}
	// Notify new top
	if len(n.routes) > 0 {
		n.routes[len(n.routes)-1].DidChangeNext(nil)
	}
}

// PushReplacement replaces the current route with a new route.
// The old route receives DidPop, the new route receives DidPush.
func (n *Navigator) PushReplacement(route Route) {
	if len(n.routes) == 0 {
		n.Push(route)
		return
	}
	oldRoute := n.routes[len(n.routes)-1]

	var previousOfOld Route
	if len(n.routes) > 1 {
		previousOfOld = n.routes[len(n.routes)-2]
	}

	n.routes[len(n.routes)-1] = route
	oldRoute.DidPop(nil)
	if a, ok := oldRoute.(attachable); ok {
		a.detach()
	}

	route.DidChangePrevious(previousOfOld)
	if a, ok := route.(attachable); ok {
		a.attach(n)
	}
	route.DidPush()

	for _, observer := range n.observers {
		observer.DidReplace(route, oldRoute)
	}
}

// CanPop returns true if there are routes that can be popped.
// Returns false if only the root route remains.
func (n *Navigator) CanPop() bool {
	return len(n.routes) > 1
}

// MaybePop attempts to pop if possible.
// Checks CanPop and the top route's WillPop before popping.
// Returns true if a route was popped, false otherwise.
func (n *Navigator) MaybePop(result any) bool {
	if !n.CanPop() {
		return false
	}
	top := n.routes[len(n.routes)-1]
	if !top.WillPop() {
		return false
	}
	n.Pop(result)
	return true
}

// IsCurrent reports whether route is the topmost route of the stack.
func (n *Navigator) IsCurrent(route Route) bool {
	return len(n.routes) > 0 && n.routes[len(n.routes)-1] == route
}

// IsActive reports whether route is anywhere in the stack. A route that is
// animating out after a pop is no longer active.
func (n *Navigator) IsActive(route Route) bool {
	for _, r := range n.routes {
		if r == route {
			return true
		}
	}
	return false
}

// IsFirst reports whether route is the bottommost route of the stack.
func (n *Navigator) IsFirst(route Route) bool {
	return len(n.routes) > 0 && n.routes[0] == route
}

// Top returns the topmost route, or nil for an empty stack.
func (n *Navigator) Top() Route {
	if len(n.routes) == 0 {
		return nil
	}
	return n.routes[len(n.routes)-1]
}

// StackDepth returns the number of routes on the stack.
func (n *Navigator) StackDepth() int {
	return len(n.routes)
}

// DidStartUserGesture marks the start of a user-driven transition (a back
// swipe). Dependent transition logic uses this signal to follow the gesture
// linearly instead of applying its default curves. Calls nest.
func (n *Navigator) DidStartUserGesture() {
	n.userGestures.Inc()
}

// DidStopUserGesture ends one started user gesture.
func (n *Navigator) DidStopUserGesture() {
	n.userGestures.Dec()
}

// UserGestureInProgress reports whether any user-driven transition is
// running, including the terminal animation after the finger has lifted.
func (n *Navigator) UserGestureInProgress() bool {
	return n.userGestures.Load() > 0
}
