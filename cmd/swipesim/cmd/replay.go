package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-drift/swipeback/cmd/swipesim/internal/scenario"
	"github.com/go-drift/swipeback/pkg/animation"
	"github.com/go-drift/swipeback/pkg/gestures"
	"github.com/go-drift/swipeback/pkg/graphics"
	"github.com/go-drift/swipeback/pkg/navigation"
)

func init() {
	RegisterCommand(&Command{
		Name:  "replay",
		Short: "Replay a gesture scenario and print the timeline",
		Long: `Replay loads a YAML scenario, builds the described route stack, and
feeds the scripted pointer events through the back-gesture detector
on a simulated clock. It prints the transition progress frame by
frame and reports how the gesture resolved.`,
		Usage: "swipesim replay <scenario.yaml>",
		Run:   runReplay,
	})
	RegisterCommand(&Command{
		Name:  "check",
		Short: "Validate a scenario file",
		Long:  `Check parses and validates a scenario file without replaying it.`,
		Usage: "swipesim check <scenario.yaml>",
		Run:   runCheck,
	})
}

func runReplay(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("replay requires exactly one scenario file")
	}
	sc, err := scenario.Load(args[0])
	if err != nil {
		return err
	}
	return replay(os.Stdout, sc)
}

func runCheck(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("check requires exactly one scenario file")
	}
	sc, err := scenario.Load(args[0])
	if err != nil {
		return err
	}
	fmt.Printf("%s: ok (%d events over %dms, stack %v)\n",
		sc.Name, len(sc.Events), sc.Events[len(sc.Events)-1].At, sc.Routes)
	return nil
}

// scriptClock is the simulated time source driving the animation package.
type scriptClock struct {
	now time.Time
}

func (c *scriptClock) Now() time.Time { return c.now }

// stackLogger prints navigation events with scenario timestamps.
type stackLogger struct {
	out     io.Writer
	elapsed func() time.Duration
	quiet   bool
}

func (l *stackLogger) log(format string, args ...any) {
	if l.quiet {
		return
	}
	fmt.Fprintf(l.out, "%6dms  %s\n",
		l.elapsed().Milliseconds(), fmt.Sprintf(format, args...))
}

func (l *stackLogger) DidPush(route, previous navigation.Route) {
	l.log("push  %s", route.Settings().Name)
}

func (l *stackLogger) DidPop(route, previous navigation.Route) {
	name := "(none)"
	if previous != nil {
		name = previous.Settings().Name
	}
	l.log("pop   %s -> %s", route.Settings().Name, name)
}

func (l *stackLogger) DidRemove(route, previous navigation.Route) {
	l.log("remove %s", route.Settings().Name)
}

func (l *stackLogger) DidReplace(newRoute, oldRoute navigation.Route) {
	l.log("replace %s -> %s", oldRoute.Settings().Name, newRoute.Settings().Name)
}

// settleBudget caps simulated frames after the script ends, so a scenario
// that never resolves (e.g. a missing up event) fails instead of spinning.
const settleBudget = 4096

func replay(out io.Writer, sc *scenario.Scenario) error {
	clock := &scriptClock{now: time.Unix(0, 0)}
	prev := animation.SetClock(clock)
	defer animation.SetClock(prev)

	logger := &stackLogger{out: out, quiet: true}
	nav := navigation.NewNavigator(logger)

	cfg := gestureConfig(sc)
	var top *navigation.PageRoute
	for i, name := range sc.Routes {
		route := navigation.NewPageRoute(navigation.RouteSettings{Name: name})
		route.Gesture = cfg
		if i == 0 {
			route.SetInitialRoute()
		}
		nav.Push(route)
		// Entrance transitions settle before the script starts.
		for f := 0; animation.HasActiveTickers() && f < settleBudget; f++ {
			clock.now = clock.now.Add(sc.Frame())
			animation.StepTickers()
		}
		top = route
	}

	insets := graphics.EdgeInsets{
		Top:    sc.Surface.Insets.Top,
		Right:  sc.Surface.Insets.Right,
		Bottom: sc.Surface.Insets.Bottom,
		Left:   sc.Surface.Insets.Left,
	}
	detector := navigation.NewBackGestureDetector(top, gestures.NewGestureArena(), sc.Surface.Width, insets)
	detector.Recognizer().Now = clock.Now

	start := clock.now
	elapsed := func() time.Duration { return clock.now.Sub(start) }
	logger.elapsed = elapsed
	logger.quiet = false

	fmt.Fprintf(out, "%s: %s surface %.0fx%.0f, stack %v\n",
		sc.Name, sc.Direction, sc.Surface.Width, sc.Surface.Height, sc.Routes)

	// The page's leading edge slides across the surface as the transition
	// progresses.
	slide := animation.TweenFloat64(sc.Surface.Width, 0)

	progress := top.TransitionController()
	lastValue := progress.Value
	next := 0
	for frames := 0; ; frames++ {
		nowMs := int(elapsed().Milliseconds())
		for next < len(sc.Events) && sc.Events[next].At <= nowMs {
			ev := sc.Events[next]
			next++
			fmt.Fprintf(out, "%6dms  %-6s (%.0f, %.0f)\n", ev.At, ev.Phase, ev.X, ev.Y)
			detector.HandlePointer(pointerEvent(ev))
		}

		if progress.Value != lastValue {
			lastValue = progress.Value
			fmt.Fprintf(out, "%6dms  progress %.3f  edge x=%.1f  [%s]\n",
				nowMs, progress.Value, slide.Evaluate(1-progress.Value), top.PopGestureStatus())
		}

		if next >= len(sc.Events) && !animation.HasActiveTickers() && !top.PopGestureInProgress() {
			break
		}
		if frames >= settleBudget {
			return fmt.Errorf("scenario did not settle within %d frames (missing up/cancel event?)", settleBudget)
		}

		clock.now = clock.now.Add(sc.Frame())
		animation.StepTickers()
	}

	result := "cancelled (page restored)"
	if !nav.IsActive(top) {
		result = "completed (page popped)"
	}
	fmt.Fprintf(out, "%6dms  done: %s, stack depth %d, top %s\n",
		elapsed().Milliseconds(), result, nav.StackDepth(), nav.Top().Settings().Name)
	return nil
}

func gestureConfig(sc *scenario.Scenario) navigation.GestureConfig {
	cfg := navigation.DefaultGestureConfig()
	if sc.Gesture.Enabled != nil {
		cfg.Enabled = *sc.Gesture.Enabled
	}
	if sc.Gesture.EdgeOnly != nil {
		cfg.EdgeOnly = *sc.Gesture.EdgeOnly
	}
	if sc.Gesture.DetectionWidth > 0 {
		cfg.DetectionWidth = sc.Gesture.DetectionWidth
	}
	if sc.Gesture.DetectionStartOffset > 0 {
		cfg.DetectionStartOffset = sc.Gesture.DetectionStartOffset
	}
	if sc.Gesture.MinFlingVelocity > 0 {
		cfg.MinFlingVelocity = sc.Gesture.MinFlingVelocity
	}
	if d := sc.Gesture.BaseDuration(); d > 0 {
		cfg.BaseDuration = d
	}
	if sc.Direction == "rtl" {
		cfg.Direction = navigation.TextDirectionRTL
	}
	return cfg
}

func pointerEvent(ev scenario.Event) gestures.PointerEvent {
	phase := gestures.PointerPhaseDown
	switch ev.Phase {
	case "move":
		phase = gestures.PointerPhaseMove
	case "up":
		phase = gestures.PointerPhaseUp
	case "cancel":
		phase = gestures.PointerPhaseCancel
	}
	return gestures.PointerEvent{
		PointerID: 1,
		Position:  graphics.Offset{X: ev.X, Y: ev.Y},
		Phase:     phase,
	}
}
