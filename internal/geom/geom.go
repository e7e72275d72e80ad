// Package geom provides axis-aligned rectangle collision utilities for the
// game engine. It contains pure functions only, with no external dependencies,
// to keep the physics core deterministic and testable.
package geom

// Rect is an axis-aligned rectangle in field coordinates.
// The origin is the top-left corner; y increases downward.
type Rect struct {
	X, Y float64 // Top-left corner position
	W, H float64 // Width and height, both > 0
}

// NewRect creates a rectangle with the given position and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// CenterX returns the x-coordinate of the rectangle's center.
func (r Rect) CenterX() float64 {
	return r.X + r.W/2
}

// CenterY returns the y-coordinate of the rectangle's center.
func (r Rect) CenterY() float64 {
	return r.Y + r.H/2
}

// Contains reports whether the point (x, y) lies inside the rectangle.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Overlaps reports whether two rectangles intersect.
// Rectangles that merely touch along an edge do not overlap.
func Overlaps(a, b Rect) bool {
	if a.Right() <= b.X || b.Right() <= a.X {
		return false
	}
	if a.Bottom() <= b.Y || b.Bottom() <= a.Y {
		return false
	}
	return true
}

// Axis identifies the side of a static rectangle through which a moving
// rectangle penetrated. The order of the constants is load-bearing: when two
// penetration depths tie, the axis declared first wins.
type Axis int

const (
	AxisLeft Axis = iota
	AxisRight
	AxisTop
	AxisBottom
)

// String returns a human-readable name for the axis.
func (a Axis) String() string {
	switch a {
	case AxisLeft:
		return "left"
	case AxisRight:
		return "right"
	case AxisTop:
		return "top"
	case AxisBottom:
		return "bottom"
	default:
		return "unknown"
	}
}

// MinPenetration returns the axis of minimum penetration of moving into
// static, along with the penetration depth on that axis. The two rectangles
// must overlap. Ties are broken in declaration order: left, right, top,
// bottom. Collision resolution depends on this order being stable, so it
// must not be reordered.
func MinPenetration(moving, static Rect) (Axis, float64) {
	depths := [4]float64{
		moving.Right() - static.X,  // AxisLeft
		static.Right() - moving.X,  // AxisRight
		moving.Bottom() - static.Y, // AxisTop
		static.Bottom() - moving.Y, // AxisBottom
	}

	axis := AxisLeft
	amount := depths[0]
	for i := 1; i < len(depths); i++ {
		if depths[i] < amount {
			axis = Axis(i)
			amount = depths[i]
		}
	}
	return axis, amount
}

// Clamp restricts a value to the closed interval [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
