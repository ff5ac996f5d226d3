package pathgeom

import (
	"fmt"
	"math"
)

var _ Intersecter = Curve{}

// Curve is a quadratic Bézier segment: two endpoints and one control point.
//
// There is no constraint on the relative position of the three points.
// Degenerate configurations (collinear points, coincident endpoints) are
// legal; operations on them follow the package's garbage-in, garbage-out
// policy rather than failing.
type Curve struct {
	// The curve's start (index 0) and end (index 1) points.
	Endpoints [2]Point
	// The Bézier control point.
	ControlPoint Point
}

// NewCurve returns the curve running from start to end, pulled towards
// control. Any three points are accepted.
func NewCurve(start, control, end Point) Curve {
	return Curve{
		Endpoints:    [2]Point{start, end},
		ControlPoint: control,
	}
}

func (c Curve) String() string {
	return fmt.Sprintf("Curve(%s, %s, %s)", c.Endpoints[0], c.ControlPoint, c.Endpoints[1])
}

// Eval evaluates the curve at parameter t by one level of de Casteljau
// interpolation. Values of t outside [0, 1] extrapolate the curve; only
// [Curve.SolveTForX] clamps its result.
func (c Curve) Eval(t float32) Point {
	p0, p1, p2 := c.Endpoints[0], c.ControlPoint, c.Endpoints[1]
	return p0.Lerp(p1, t).Lerp(p1.Lerp(p2, t), t)
}

// Subdivide splits the curve at parameter t into two curves that together
// reproduce the original shape exactly (up to rounding). The first returned
// curve covers [0, t], the second [t, 1]; they share the split point, so
// a.Eval(1) == b.Eval(0).
func (c Curve) Subdivide(t float32) (Curve, Curve) {
	p0, p1, p2 := c.Endpoints[0], c.ControlPoint, c.Endpoints[1]
	ap1, bp1 := p0.Lerp(p1, t), p1.Lerp(p2, t)
	mid := ap1.Lerp(bp1, t)
	return NewCurve(p0, ap1, mid), NewCurve(mid, bp1, p2)
}

// SubdivideAtX splits the curve where its x coordinate equals x and returns
// the two halves ordered by increasing x: the first curve always spans the
// lower x range, even when the curve itself runs right to left. The curve's
// x coordinate must be monotonic in t.
func (c Curve) SubdivideAtX(x float32) (Curve, Curve) {
	prev, next := c.Subdivide(c.SolveTForX(x))
	if c.Endpoints[0].X <= c.Endpoints[1].X {
		return prev, next
	}
	return next, prev
}

// SolveTForX returns the parameter t at which the curve's x coordinate
// equals x, clamped to [0, 1]. The curve's x coordinate must be monotonic
// in t over the queried range; no check is performed.
//
// The root is computed in double precision with the Citardauq formula,
// which avoids the catastrophic cancellation the textbook quadratic formula
// suffers from when the t² coefficient is small (nearly straight curves).
//
// https://math.stackexchange.com/a/311397
func (c Curve) SolveTForX(x float32) float32 {
	p0x := float64(c.Endpoints[0].X)
	p1x := float64(c.ControlPoint.X)
	p2x := float64(c.Endpoints[1].X)
	xx := float64(x)

	a := p0x - 2.0*p1x + p2x
	b := -2.0*p0x + 2.0*p1x
	cc := p0x - xx

	t := 2.0 * cc / (-b - math.Sqrt(b*b-4.0*a*cc))
	// The negated comparison sends NaN (a negative discriminant, from an
	// x the curve never reaches) into the lower clamp, so the result is
	// always a usable parameter.
	if !(t > 0.0) {
		t = 0.0
	} else if t > 1.0 {
		t = 1.0
	}
	return float32(t)
}

// SolveYForX returns the curve's y coordinate where its x coordinate equals
// x. Like [Curve.SolveTForX], it assumes x is monotonic in t.
func (c Curve) SolveYForX(x float32) float32 {
	return c.Eval(c.SolveTForX(x)).Y
}

// The epsilon used to reject inflection parameters at or near the curve's
// endpoints, where rounding would otherwise report spurious inflections.
// This is the conventional approximation epsilon for float32.
const inflectionEpsilon = 1e-5

// InflectionPoints returns, independently for the x and y channels, the
// parameter at which that channel's derivative changes sign. A channel
// reports ok = false when its control polygon has no such parameter
// strictly inside (0, 1), including all degenerate cases (a straight
// channel yields an infinite or NaN ratio, which fails the range check).
func (c Curve) InflectionPoints() (tx, ty float32, okX, okY bool) {
	tx, okX = inflectionPointT(c.Endpoints[0].X, c.ControlPoint.X, c.Endpoints[1].X)
	ty, okY = inflectionPointT(c.Endpoints[0].Y, c.ControlPoint.Y, c.Endpoints[1].Y)
	return tx, ty, okX, okY
}

func inflectionPointT(p0, p1, p2 float32) (float32, bool) {
	num := p0 - p1
	denom := p0 - 2.0*p1 + p2
	t := num / denom
	if t > inflectionEpsilon && t < 1.0-inflectionEpsilon {
		return t, true
	}
	return 0, false
}

// Baseline returns the chord connecting the curve's endpoints, ignoring the
// control point. Intersection and flattening use it as a cheap linear
// approximation of the curve.
func (c Curve) Baseline() Line {
	return Line{c.Endpoints[0], c.Endpoints[1]}
}

// Element returns the curve as a QuadTo path element, carrying the control
// and end points. The start point is implicit: path-drawing state is
// assumed to already be positioned at the curve's start.
func (c Curve) Element() PathElement {
	return QuadTo(c.ControlPoint, c.Endpoints[1])
}

// XRange returns the x extent spanned by the curve's endpoints. For an
// x-monotone curve this is the curve's full x range.
func (c Curve) XRange() (float32, float32) {
	if c.Endpoints[0].X <= c.Endpoints[1].X {
		return c.Endpoints[0].X, c.Endpoints[1].X
	}
	return c.Endpoints[1].X, c.Endpoints[0].X
}

// Intersect returns the point where the curve crosses the other primitive,
// if any. It delegates to [Intersect]; both primitives must be monotonic
// in x.
func (c Curve) Intersect(other Intersecter) (Point, bool) {
	return Intersect(c, other)
}

func (c Curve) Start() Point {
	return c.Endpoints[0]
}

func (c Curve) End() Point {
	return c.Endpoints[1]
}

func (c Curve) IsInf() bool {
	return c.Endpoints[0].IsInf() || c.ControlPoint.IsInf() || c.Endpoints[1].IsInf()
}

func (c Curve) IsNaN() bool {
	return c.Endpoints[0].IsNaN() || c.ControlPoint.IsNaN() || c.Endpoints[1].IsNaN()
}
