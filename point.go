package pathgeom

import (
	"fmt"
	"math"
)

// Point is a 2D point with single-precision coordinates.
type Point struct {
	X float32
	Y float32
}

// Pt returns the point (x, y).
func Pt(x, y float32) Point {
	return Point{X: x, Y: y}
}

// Splat returns the point's x and y coordinates.
func (pt Point) Splat() (float32, float32) {
	return pt.X, pt.Y
}

func (pt Point) String() string {
	return fmt.Sprintf("(%g, %g)", pt.X, pt.Y)
}

// Translate returns the point moved by o.
func (pt Point) Translate(o Vec2) Point {
	return Point{
		X: pt.X + o.X,
		Y: pt.Y + o.Y,
	}
}

// Sub computes pt−o.
func (pt Point) Sub(o Point) Vec2 {
	return Vec2{
		X: pt.X - o.X,
		Y: pt.Y - o.Y,
	}
}

// Lerp linearly interpolates between two points.
//
// It uses the weighted form (1−t)·pt + t·o, so that t = 0 and t = 1 return
// pt and o exactly. Values of t outside [0, 1] extrapolate.
func (pt Point) Lerp(o Point, t float32) Point {
	mt := 1 - t
	return Point{
		X: pt.X*mt + o.X*t,
		Y: pt.Y*mt + o.Y*t,
	}
}

// Midpoint returns the midpoint of two points.
func (pt Point) Midpoint(o Point) Point {
	return Point{
		X: 0.5 * (pt.X + o.X),
		Y: 0.5 * (pt.Y + o.Y),
	}
}

// Distance returns the euclidean distance between two points.
func (pt Point) Distance(o Point) float32 {
	x := float64(pt.X - o.X)
	y := float64(pt.Y - o.Y)
	return float32(math.Hypot(x, y))
}

// DistanceSquared returns the squared euclidean distance between two points.
func (pt Point) DistanceSquared(o Point) float32 {
	x := pt.X - o.X
	y := pt.Y - o.Y
	return x*x + y*y
}

// IsInf reports whether at least one of x and y is infinite.
func (pt Point) IsInf() bool {
	return math.IsInf(float64(pt.X), 0) || math.IsInf(float64(pt.Y), 0)
}

// IsNaN reports whether at least one of x and y is NaN.
func (pt Point) IsNaN() bool {
	return math.IsNaN(float64(pt.X)) || math.IsNaN(float64(pt.Y))
}
