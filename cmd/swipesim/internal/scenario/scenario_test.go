package scenario

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeScenario(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "swipe.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeScenario(t, `
events:
  - { at: 0, phase: down, x: 10, y: 300 }
  - { at: 16, phase: up, x: 10, y: 300 }
`)
	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Surface.Width != 390 || s.Surface.Height != 844 {
		t.Errorf("surface = %+v, want 390x844 defaults", s.Surface)
	}
	if s.Direction != "ltr" {
		t.Errorf("direction = %q, want ltr", s.Direction)
	}
	if s.FrameMs != 16 {
		t.Errorf("frameMs = %d, want 16", s.FrameMs)
	}
	if len(s.Routes) != 2 {
		t.Errorf("routes = %v, want two defaults", s.Routes)
	}
	if s.Name != path {
		t.Errorf("name = %q, want the file path", s.Name)
	}
}

func TestLoadFullScenario(t *testing.T) {
	path := writeScenario(t, `
name: edge-fling
surface:
  width: 400
  height: 800
  insets: { left: 12 }
direction: rtl
gesture:
  enabled: true
  edgeOnly: false
  minFlingVelocity: 2.5
  baseDurationMs: 500
routes: ["/", "/a", "/b"]
frameMs: 8
events:
  - { at: 0, phase: down, x: 395, y: 300 }
  - { at: 8, phase: move, x: 340, y: 300 }
  - { at: 16, phase: up, x: 340, y: 300 }
`)
	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Name != "edge-fling" {
		t.Errorf("name = %q", s.Name)
	}
	if s.Gesture.EdgeOnly == nil || *s.Gesture.EdgeOnly {
		t.Error("edgeOnly = true, want explicit false to survive parsing")
	}
	if s.Gesture.MinFlingVelocity != 2.5 {
		t.Errorf("minFlingVelocity = %v, want 2.5", s.Gesture.MinFlingVelocity)
	}
	if got := s.Gesture.BaseDuration().Milliseconds(); got != 500 {
		t.Errorf("baseDuration = %dms, want 500", got)
	}
	if len(s.Routes) != 3 {
		t.Errorf("routes = %v", s.Routes)
	}
}

func TestLoadRejectsInvalidScenarios(t *testing.T) {
	cases := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			"unknown phase",
			"events: [{ at: 0, phase: hover, x: 1, y: 1 }]",
			"unknown phase",
		},
		{
			"out of order",
			"events: [{ at: 20, phase: down, x: 1, y: 1 }, { at: 10, phase: up, x: 1, y: 1 }]",
			"out of order",
		},
		{
			"no events",
			"direction: ltr",
			"no events",
		},
		{
			"bad direction",
			"direction: sideways\nevents: [{ at: 0, phase: down, x: 1, y: 1 }]",
			"direction",
		},
		{
			"single route",
			"routes: [\"/\"]\nevents: [{ at: 0, phase: down, x: 1, y: 1 }]",
			"at least two",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(writeScenario(t, tc.content))
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("Load error = %v, want containing %q", err, tc.wantErr)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err == nil || !strings.Contains(err.Error(), "failed to read scenario") {
		t.Errorf("Load error = %v, want read failure", err)
	}
}
