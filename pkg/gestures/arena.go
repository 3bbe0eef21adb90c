package gestures

import "sync"

// GestureArenaMember is a recognizer competing for a pointer lineage.
type GestureArenaMember interface {
	// AcceptGesture is called when the member wins the arena for the pointer.
	AcceptGesture(pointerID int64)
	// RejectGesture is called when the member loses the arena for the pointer.
	RejectGesture(pointerID int64)
}

// DefaultArena is the arena shared by recognizers when the host does not
// provide its own.
var DefaultArena = NewGestureArena()

// GestureArena disambiguates between recognizers competing for the same
// pointer lineage.
//
// Lifecycle per pointer: recognizers Add themselves on pointer down; the host
// Closes the arena after dispatching the down event (a lone member wins
// immediately); members Resolve (claim) or Reject (withdraw) as further
// samples arrive; on pointer up the host Sweeps the arena, forcing a win for
// the first remaining member unless a member put the arena on Hold.
//
// At most one member wins per pointer. Every other member receives
// RejectGesture exactly once.
type GestureArena struct {
	mu     sync.Mutex
	arenas map[int64]*arena
}

type arena struct {
	members         []GestureArenaMember
	isOpen          bool
	isHeld          bool
	hasPendingSweep bool
}

// NewGestureArena creates an empty arena manager.
func NewGestureArena() *GestureArena {
	return &GestureArena{
		arenas: make(map[int64]*arena),
	}
}

// Add registers a member to compete for the pointer. Must be called while
// the arena is still open (before Close).
func (g *GestureArena) Add(pointerID int64, member GestureArenaMember) {
	g.mu.Lock()
	a, ok := g.arenas[pointerID]
	if !ok {
		a = &arena{isOpen: true}
		g.arenas[pointerID] = a
	}
	if a.isOpen {
		a.members = append(a.members, member)
	}
	g.mu.Unlock()
}

// Close seals the arena for the pointer. Called by the host after the down
// event has been dispatched to all interested recognizers. If only one
// member is registered, it wins immediately.
func (g *GestureArena) Close(pointerID int64) {
	g.mu.Lock()
	a, ok := g.arenas[pointerID]
	if !ok {
		g.mu.Unlock()
		return
	}
	a.isOpen = false
	g.mu.Unlock()
	g.tryResolve(pointerID)
}

// Sweep forces resolution after the pointer lineage ends. The first
// remaining member wins. A held arena defers the sweep until Release.
func (g *GestureArena) Sweep(pointerID int64) {
	g.mu.Lock()
	a, ok := g.arenas[pointerID]
	if !ok {
		g.mu.Unlock()
		return
	}
	if a.isHeld {
		a.hasPendingSweep = true
		g.mu.Unlock()
		return
	}
	delete(g.arenas, pointerID)
	members := a.members
	g.mu.Unlock()

	if len(members) == 0 {
		return
	}
	members[0].AcceptGesture(pointerID)
	for _, member := range members[1:] {
		member.RejectGesture(pointerID)
	}
}

// Hold defers sweeping so the member can keep competing past pointer up
// (e.g. waiting out a double-tap window or a conditional drag decision).
func (g *GestureArena) Hold(pointerID int64, member GestureArenaMember) {
	g.mu.Lock()
	if a, ok := g.arenas[pointerID]; ok {
		a.isHeld = true
	}
	g.mu.Unlock()
}

// Release undoes Hold. If a sweep was requested while held, it runs now.
func (g *GestureArena) Release(pointerID int64) {
	g.mu.Lock()
	a, ok := g.arenas[pointerID]
	if !ok {
		g.mu.Unlock()
		return
	}
	a.isHeld = false
	pending := a.hasPendingSweep
	g.mu.Unlock()
	if pending {
		g.Sweep(pointerID)
	}
}

// Resolve declares the member the winner. All other members are rejected.
func (g *GestureArena) Resolve(pointerID int64, member GestureArenaMember) {
	g.mu.Lock()
	a, ok := g.arenas[pointerID]
	if !ok {
		g.mu.Unlock()
		return
	}
	delete(g.arenas, pointerID)
	members := a.members
	g.mu.Unlock()

	member.AcceptGesture(pointerID)
	for _, other := range members {
		if other != member {
			other.RejectGesture(pointerID)
		}
	}
}

// Reject withdraws the member from the arena. If exactly one member remains
// in a closed arena, it wins.
func (g *GestureArena) Reject(pointerID int64, member GestureArenaMember) {
	g.mu.Lock()
	a, ok := g.arenas[pointerID]
	if !ok {
		g.mu.Unlock()
		return
	}
	for i, other := range a.members {
		if other == member {
			a.members = append(a.members[:i], a.members[i+1:]...)
			break
		}
	}
	g.mu.Unlock()

	member.RejectGesture(pointerID)
	g.tryResolve(pointerID)
}

// tryResolve awards the arena to a lone remaining member once closed.
func (g *GestureArena) tryResolve(pointerID int64) {
	g.mu.Lock()
	a, ok := g.arenas[pointerID]
	if !ok || a.isOpen || len(a.members) != 1 {
		g.mu.Unlock()
		return
	}
	winner := a.members[0]
	delete(g.arenas, pointerID)
	g.mu.Unlock()

	winner.AcceptGesture(pointerID)
}
