// Package geometry provides the rectangle math used to position windows
// on a monitor. Coordinates are virtual-screen pixels: the primary
// monitor's top-left corner is (0, 0) and monitors to the left or above
// it have negative coordinates.
package geometry

// Rect is an axis-aligned rectangle. Left/Top are inclusive, Right/Bottom
// exclusive, matching the Win32 RECT convention.
type Rect struct {
	Left   int
	Top    int
	Right  int
	Bottom int
}

// Point is a position in virtual-screen coordinates.
type Point struct {
	X int
	Y int
}

func (r Rect) Width() int  { return r.Right - r.Left }
func (r Rect) Height() int { return r.Bottom - r.Top }

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.Right <= r.Left || r.Bottom <= r.Top
}

// Contains reports whether p lies inside the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Left && p.X < r.Right && p.Y >= r.Top && p.Y < r.Bottom
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.Left + r.Width()/2, Y: r.Top + r.Height()/2}
}

// CenterIn returns the top-left corner that centers a window of the given
// size within bounds. Offsets use truncating integer division, so a window
// that does not divide evenly sits one pixel closer to the top-left edge.
// Windows larger than bounds get a corner outside of it; callers decide
// whether that is acceptable.
func CenterIn(width, height int, bounds Rect) Point {
	return Point{
		X: bounds.Left + (bounds.Width()-width)/2,
		Y: bounds.Top + (bounds.Height()-height)/2,
	}
}
