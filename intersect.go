package pathgeom

import "math"

// Intersecter is the capability shared by primitives that can take part in
// intersection tests. It is the x-monotone view of a primitive: an x range
// and a single y coordinate for every x inside it. [Curve] and [Line] both
// satisfy it; the intersection machinery never needs to know which concrete
// primitives exist.
type Intersecter interface {
	// XRange returns the primitive's x extent, min before max.
	XRange() (float32, float32)
	// SolveYForX returns the primitive's y coordinate at x. The primitive
	// must be monotonic in x for the result to be meaningful.
	SolveYForX(x float32) float32
}

const intersectionSteps = 32

// Intersect returns the point where two x-monotone primitives cross, if
// any. It reports false when their x ranges don't overlap, when the
// primitives don't cross over the shared range, and for the degenerate
// parallel and coincident cases.
//
// Both primitives must be monotonic in x over their full extent; a
// primitive that crosses the other more than once over the shared range
// yields one of the crossings. Callers wanting every crossing split their
// segments into monotone pieces first.
func Intersect(a, b Intersecter) (Point, bool) {
	if la, ok := a.(Line); ok {
		if lb, ok := b.(Line); ok {
			return intersectLineLine(la, lb)
		}
		if la.P0.X == la.P1.X {
			return intersectVertical(la, b)
		}
	}
	if lb, ok := b.(Line); ok && lb.P0.X == lb.P1.X {
		return intersectVertical(lb, a)
	}

	aMin, aMax := a.XRange()
	bMin, bMax := b.XRange()
	lo := math.Max(float64(aMin), float64(bMin))
	hi := math.Min(float64(aMax), float64(bMax))
	if hi < lo {
		return Point{}, false
	}

	// Bisect on the sign of the y difference over the shared x range. The
	// probe x is carried in double precision so halving stays exact.
	delta := func(x float64) float64 {
		xx := float32(x)
		return float64(a.SolveYForX(xx)) - float64(b.SolveYForX(xx))
	}

	dLo, dHi := delta(lo), delta(hi)
	if dLo == 0 {
		return crossingAt(a, float32(lo))
	}
	if dHi == 0 {
		return crossingAt(a, float32(hi))
	}
	if math.Signbit(dLo) == math.Signbit(dHi) {
		return Point{}, false
	}
	for i := 0; i < intersectionSteps; i++ {
		mid := 0.5 * (lo + hi)
		dMid := delta(mid)
		if dMid == 0 {
			return crossingAt(a, float32(mid))
		}
		if math.Signbit(dMid) == math.Signbit(dLo) {
			lo, dLo = mid, dMid
		} else {
			hi = mid
		}
	}
	return crossingAt(a, float32(0.5*(lo+hi)))
}

func crossingAt(a Intersecter, x float32) (Point, bool) {
	pt := Pt(x, a.SolveYForX(x))
	if pt.IsNaN() {
		return Point{}, false
	}
	return pt, true
}

// intersectLineLine is the analytic pair: the generic bisection cannot
// handle vertical lines, whose y-for-x view is undefined.
func intersectLineLine(a, b Line) (Point, bool) {
	pt, ok := a.CrossingPoint(b)
	if !ok {
		return Point{}, false
	}
	if !onSegment(a, pt) || !onSegment(b, pt) {
		return Point{}, false
	}
	return pt, true
}

// intersectVertical handles a vertical line against any other primitive:
// the crossing, if there is one, is pinned to the line's x.
func intersectVertical(l Line, o Intersecter) (Point, bool) {
	x := l.P0.X
	min, max := o.XRange()
	if x < min || x > max {
		return Point{}, false
	}
	y := o.SolveYForX(x)
	y0, y1 := l.P0.Y, l.P1.Y
	if y1 < y0 {
		y0, y1 = y1, y0
	}
	if !(y >= y0 && y <= y1) {
		return Point{}, false
	}
	return Pt(x, y), true
}

// onSegment reports whether pt, already known to be on the line's infinite
// extension, lies within the segment itself.
func onSegment(l Line, pt Point) bool {
	const epsilon = 1e-6
	d := l.P1.Sub(l.P0)
	d2 := d.Hypot2()
	if d2 == 0 {
		return pt.Sub(l.P0).Hypot2() <= epsilon
	}
	u := pt.Sub(l.P0).Dot(d) / d2
	return u >= -epsilon && u <= 1+epsilon
}
