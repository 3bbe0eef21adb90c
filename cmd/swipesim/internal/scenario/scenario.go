// Package scenario loads YAML gesture scenarios for the simulator.
package scenario

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Scenario is a replayable pointer-event script against a route stack.
type Scenario struct {
	// Name labels the scenario in output. Defaults to the file name.
	Name string `yaml:"name,omitempty"`

	// Surface describes the screen the routes are presented on.
	Surface Surface `yaml:"surface"`

	// Direction is the reading order: "ltr" (default) or "rtl".
	Direction string `yaml:"direction,omitempty"`

	// Gesture overrides the default back-swipe configuration.
	Gesture Gesture `yaml:"gesture"`

	// Routes is the initial stack, bottom first. Defaults to ["/", "/page"].
	Routes []string `yaml:"routes,omitempty"`

	// FrameMs is the simulated frame interval in milliseconds. Default 16.
	FrameMs int `yaml:"frameMs,omitempty"`

	// Events is the pointer script, ordered by time.
	Events []Event `yaml:"events"`
}

// Surface is the simulated screen geometry.
type Surface struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Insets Insets  `yaml:"insets"`
}

// Insets are the safe-area insets of the surface.
type Insets struct {
	Top    float64 `yaml:"top,omitempty"`
	Right  float64 `yaml:"right,omitempty"`
	Bottom float64 `yaml:"bottom,omitempty"`
	Left   float64 `yaml:"left,omitempty"`
}

// Gesture mirrors the back-swipe configuration surface. Zero values fall
// back to the defaults at resolve time.
type Gesture struct {
	Enabled              *bool   `yaml:"enabled,omitempty"`
	EdgeOnly             *bool   `yaml:"edgeOnly,omitempty"`
	DetectionWidth       float64 `yaml:"detectionWidth,omitempty"`
	DetectionStartOffset float64 `yaml:"detectionStartOffset,omitempty"`
	MinFlingVelocity     float64 `yaml:"minFlingVelocity,omitempty"`
	BaseDurationMs       int     `yaml:"baseDurationMs,omitempty"`
}

// Event is one pointer sample.
type Event struct {
	// At is the scenario time of the sample in milliseconds.
	At int `yaml:"at"`

	// Phase is "down", "move", "up", or "cancel".
	Phase string `yaml:"phase"`

	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Load reads and validates a scenario file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario: %w", err)
	}

	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse scenario: %w", err)
	}
	s.applyDefaults(path)
	if err := s.validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Scenario) applyDefaults(path string) {
	if s.Name == "" {
		s.Name = path
	}
	if s.Surface.Width == 0 {
		s.Surface.Width = 390
	}
	if s.Surface.Height == 0 {
		s.Surface.Height = 844
	}
	if s.Direction == "" {
		s.Direction = "ltr"
	}
	if s.FrameMs == 0 {
		s.FrameMs = 16
	}
	if len(s.Routes) == 0 {
		s.Routes = []string{"/", "/page"}
	}
}

func (s *Scenario) validate() error {
	if s.Direction != "ltr" && s.Direction != "rtl" {
		return fmt.Errorf("direction must be \"ltr\" or \"rtl\" (got %q)", s.Direction)
	}
	if len(s.Routes) < 2 {
		return fmt.Errorf("routes needs at least two entries to have anything to pop")
	}
	if len(s.Events) == 0 {
		return fmt.Errorf("scenario has no events")
	}
	last := -1
	for i, ev := range s.Events {
		switch ev.Phase {
		case "down", "move", "up", "cancel":
		default:
			return fmt.Errorf("events[%d]: unknown phase %q", i, ev.Phase)
		}
		if ev.At < last {
			return fmt.Errorf("events[%d]: out of order at %dms (previous %dms)", i, ev.At, last)
		}
		last = ev.At
	}
	return nil
}

// Frame returns the frame interval as a duration.
func (s *Scenario) Frame() time.Duration {
	return time.Duration(s.FrameMs) * time.Millisecond
}

// BaseDuration returns the configured terminal-animation base, or zero when
// unset.
func (g Gesture) BaseDuration() time.Duration {
	return time.Duration(g.BaseDurationMs) * time.Millisecond
}
