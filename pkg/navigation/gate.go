package navigation

// DetectionArea is the band of the surface where an edge-restricted back
// gesture may start, expressed as a distance range from the leading edge
// (reading-direction-relative: the left edge for LTR, the right for RTL).
type DetectionArea struct {
	StartOffset float64
	Width       float64
}

// Contains reports whether a leading-edge distance falls inside the band.
// Both boundaries are inclusive.
func (a DetectionArea) Contains(position float64) bool {
	return position >= a.StartOffset && position <= a.StartOffset+a.Width
}

// detectionAreaFor derives the detection band from the configuration. The
// band is at least as wide as the leading safe-area inset so a notch or
// curved corner never swallows the gesture. A nil result means the whole
// surface is a valid start area.
func detectionAreaFor(cfg GestureConfig, leadingInset float64) *DetectionArea {
	if !cfg.EdgeOnly {
		return nil
	}
	width := cfg.DetectionWidth
	if leadingInset > width {
		width = leadingInset
	}
	return &DetectionArea{
		StartOffset: cfg.DetectionStartOffset,
		Width:       width,
	}
}

// dragSample is one pointer sample as seen by the drag gate.
type dragSample struct {
	// deltaX is the raw horizontal delta of the sample in surface
	// coordinates (not direction-adjusted).
	deltaX float64

	// position is the pointer's distance from the leading edge
	// (reading-direction-relative). Only consulted on the initial down.
	position float64

	// isInitialDown marks the first sample of a pointer lineage.
	isInitialDown bool
}

// allowDragSample decides whether a pointer sample may open or continue a
// back drag. It is evaluated on every incoming sample, never cached, since
// the configuration may change mid-gesture.
func allowDragSample(cfg GestureConfig, area *DetectionArea, sample dragSample, tracking bool) bool {
	// An in-progress drag is never dropped, even if the direction reverses
	// or the configuration changes under it.
	if tracking {
		return true
	}

	if !cfg.Enabled {
		return false
	}

	// Direction correctness. A delta of exactly zero is neutral: it can
	// open a gesture whose direction is not yet known (e.g. the down
	// sample, or a first move that is purely vertical).
	if cfg.Direction == TextDirectionRTL {
		if sample.deltaX > 0 {
			return false
		}
	} else if sample.deltaX < 0 {
		return false
	}

	// Edge restriction applies to where the gesture starts, not where it
	// travels.
	if area != nil && sample.isInitialDown && !area.Contains(sample.position) {
		return false
	}

	return true
}
