// Package graphics provides the geometry value types shared by the gesture
// and animation packages.
package graphics

// Offset is a 2D point or translation in logical pixels.
type Offset struct {
	X float64
	Y float64
}

// Add returns the component-wise sum of two offsets.
func (o Offset) Add(other Offset) Offset {
	return Offset{X: o.X + other.X, Y: o.Y + other.Y}
}

// Sub returns the component-wise difference of two offsets.
func (o Offset) Sub(other Offset) Offset {
	return Offset{X: o.X - other.X, Y: o.Y - other.Y}
}

// Size is a width/height pair in logical pixels.
type Size struct {
	Width  float64
	Height float64
}

// EdgeInsets describes padding from each edge of a surface, typically the
// platform safe area (notches, curved screen corners, system bars).
type EdgeInsets struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}
