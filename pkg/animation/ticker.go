// Package animation provides the time-based animation primitives that drive
// page transitions.
//
// # Core Components
//
//   - [AnimationController]: Drives a value from 0.0 to 1.0 over a duration
//     with a configurable easing curve. Supports direct value mutation and
//     per-animation duration/curve overrides for gesture-driven transitions.
//
//   - [Tween]: Maps the controller's 0-1 value to other ranges or types.
//
//   - Curves: Easing functions such as [EaseOut], [IOSNavigationCurve], and
//     [BackGestureCurve]. Use [CubicBezier] for custom curves.
//
//   - [Ticker]: The frame-pump primitive. The host loop calls [StepTickers]
//     once per frame to advance all running animations.
//
// # Basic Usage
//
//	controller := animation.NewAnimationController(300 * time.Millisecond)
//	controller.Curve = animation.EaseOut
//	controller.AddListener(func() { render(controller.Value) })
//	controller.Forward()
//
//	// each frame:
//	animation.StepTickers()
//
// Time is read through the package [Clock], which tests replace via
// [SetClock] to advance animations deterministically.
package animation

import (
	"sync"
	"time"
)

var (
	tickerMu      sync.Mutex
	activeTickers = make(map[*Ticker]struct{})
)

// Ticker calls a callback on each frame while active.
//
// Ticker is the low-level timing primitive used by [AnimationController].
// Most code should use AnimationController directly rather than Ticker.
//
// The callback receives the elapsed time since Start was called. Tickers are
// driven by the host's frame loop via [StepTickers].
type Ticker struct {
	callback func(elapsed time.Duration)
	isActive bool
	start    time.Time
}

// NewTicker creates a new ticker with the given callback.
func NewTicker(callback func(elapsed time.Duration)) *Ticker {
	return &Ticker{
		callback: callback,
	}
}

// Start activates the ticker.
func (t *Ticker) Start() {
	if t.isActive {
		return
	}
	t.isActive = true
	t.start = Now()
	tickerMu.Lock()
	activeTickers[t] = struct{}{}
	tickerMu.Unlock()
}

// Stop deactivates the ticker.
func (t *Ticker) Stop() {
	if !t.isActive {
		return
	}
	t.isActive = false
	tickerMu.Lock()
	delete(activeTickers, t)
	tickerMu.Unlock()
}

// IsActive returns whether the ticker is currently running.
func (t *Ticker) IsActive() bool {
	return t.isActive
}

// Elapsed returns the time since the ticker started.
func (t *Ticker) Elapsed() time.Duration {
	if !t.isActive {
		return 0
	}
	return Now().Sub(t.start)
}

// StepTickers advances all active tickers.
// This should be called once per frame from the host loop.
func StepTickers() {
	tickerMu.Lock()
	if len(activeTickers) == 0 {
		tickerMu.Unlock()
		return
	}
	// Make a copy to avoid holding lock during callbacks
	tickers := make([]*Ticker, 0, len(activeTickers))
	for ticker := range activeTickers {
		tickers = append(tickers, ticker)
	}
	tickerMu.Unlock()

	for _, ticker := range tickers {
		if ticker.isActive && ticker.callback != nil {
			elapsed := Now().Sub(ticker.start)
			ticker.callback(elapsed)
		}
	}
}

// HasActiveTickers returns true if any tickers are active.
func HasActiveTickers() bool {
	tickerMu.Lock()
	defer tickerMu.Unlock()
	return len(activeTickers) > 0
}
