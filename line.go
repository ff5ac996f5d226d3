package pathgeom

var _ Intersecter = Line{}

// Line is a straight segment from P0 to P1. It offers the same solve and
// subdivide surface as [Curve] so that both primitives can participate in
// intersection tests interchangeably.
type Line struct {
	// The line's start point.
	P0 Point
	// The line's end point.
	P1 Point
}

// Eval evaluates the line at parameter t. Values of t outside [0, 1]
// extrapolate.
func (l Line) Eval(t float32) Point {
	return l.P0.Lerp(l.P1, t)
}

// Length returns the length of the line.
func (l Line) Length() float32 {
	return l.P1.Sub(l.P0).Hypot()
}

// Subdivide splits the line at parameter t into two lines sharing the
// split point.
func (l Line) Subdivide(t float32) (Line, Line) {
	mid := l.Eval(t)
	return Line{l.P0, mid}, Line{mid, l.P1}
}

// SubdivideAtX splits the line where its x coordinate equals x and returns
// the two halves ordered by increasing x, mirroring [Curve.SubdivideAtX].
func (l Line) SubdivideAtX(x float32) (Line, Line) {
	prev, next := l.Subdivide(l.SolveTForX(x))
	if l.P0.X <= l.P1.X {
		return prev, next
	}
	return next, prev
}

// SolveTForX returns the parameter t at which the line's x coordinate
// equals x, clamped to [0, 1]. The solve happens in double precision like
// the curve's, so both primitives round identically.
func (l Line) SolveTForX(x float32) float32 {
	p0x := float64(l.P0.X)
	p1x := float64(l.P1.X)
	t := (float64(x) - p0x) / (p1x - p0x)
	if !(t > 0.0) {
		t = 0.0
	} else if t > 1.0 {
		t = 1.0
	}
	return float32(t)
}

// SolveYForX returns the line's y coordinate where its x coordinate equals
// x. A vertical line has no single such y; the clamp then collapses the
// result to an endpoint, and [Intersect] routes vertical lines around this
// method entirely.
func (l Line) SolveYForX(x float32) float32 {
	return l.Eval(l.SolveTForX(x)).Y
}

// XRange returns the x extent spanned by the line.
func (l Line) XRange() (float32, float32) {
	if l.P0.X <= l.P1.X {
		return l.P0.X, l.P1.X
	}
	return l.P1.X, l.P0.X
}

// CrossingPoint computes the point where two lines, if extended to
// infinity, would cross. It reports false for parallel (or degenerate)
// lines.
func (l Line) CrossingPoint(o Line) (Point, bool) {
	ab := l.P1.Sub(l.P0)
	cd := o.P1.Sub(o.P0)
	pcd := ab.Cross(cd)
	if pcd == 0 {
		return Point{}, false
	}
	h := ab.Cross(l.P0.Sub(o.P0)) / pcd
	return o.P0.Translate(cd.Mul(h)), true
}

// Element returns the line as a LineTo path element. The start point is
// implicit from path-drawing state.
func (l Line) Element() PathElement {
	return LineTo(l.P1)
}

// Intersect returns the point where the line crosses the other primitive,
// if any. It delegates to [Intersect].
func (l Line) Intersect(other Intersecter) (Point, bool) {
	return Intersect(l, other)
}

func (l Line) Start() Point { return l.P0 }
func (l Line) End() Point   { return l.P1 }

func (l Line) IsInf() bool {
	return l.P0.IsInf() || l.P1.IsInf()
}

func (l Line) IsNaN() bool {
	return l.P0.IsNaN() || l.P1.IsNaN()
}
