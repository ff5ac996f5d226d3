package pathgeom

import "testing"

func TestIntersectLineLine(t *testing.T) {
	hLine := Line{Pt(0, 0), Pt(100, 0)}
	vLine := Line{Pt(10, -10), Pt(10, 10)}
	pt, ok := Intersect(hLine, vLine)
	if !ok {
		t.Fatal("expected an intersection")
	}
	assertNear(t, Pt(10, 0), pt, 1e-5)

	// Crossing point outside one of the segments.
	vLine = Line{Pt(10, 10), Pt(10, 20)}
	if pt, ok := Intersect(hLine, vLine); ok {
		t.Errorf("expected no intersection, got %v", pt)
	}
	vLine = Line{Pt(-10, -10), Pt(-10, 10)}
	if pt, ok := Intersect(hLine, vLine); ok {
		t.Errorf("expected no intersection, got %v", pt)
	}
}

func TestIntersectParallelLines(t *testing.T) {
	a := Line{Pt(0, 0), Pt(10, 0)}
	b := Line{Pt(0, 1), Pt(10, 1)}
	if pt, ok := Intersect(a, b); ok {
		t.Errorf("expected no intersection, got %v", pt)
	}
}

func TestIntersectCurveLine(t *testing.T) {
	// The rising half of an arch against a horizontal probe line. The
	// curve is x(t) = 5t, y(t) = 10t − 5t², so y = 3 at x = 5·(10−√40)/10.
	c := NewCurve(Pt(0, 0), Pt(2.5, 5), Pt(5, 5))
	l := Line{Pt(0, 3), Pt(10, 3)}
	pt, ok := Intersect(c, l)
	if !ok {
		t.Fatal("expected an intersection")
	}
	assertNear(t, Pt(1.8377223, 3), pt, 1e-3)

	// Symmetric from the line's side.
	pt, ok = l.Intersect(c)
	if !ok {
		t.Fatal("expected an intersection")
	}
	assertNear(t, Pt(1.8377223, 3), pt, 1e-3)

	// A probe above the curve's y range never crosses.
	if pt, ok := Intersect(c, Line{Pt(0, 20), Pt(10, 20)}); ok {
		t.Errorf("expected no intersection, got %v", pt)
	}
}

func TestIntersectCurveVerticalLine(t *testing.T) {
	c := NewCurve(Pt(0, 0), Pt(5, 10), Pt(10, 0))
	pt, ok := Intersect(c, Line{Pt(5, -10), Pt(5, 10)})
	if !ok {
		t.Fatal("expected an intersection")
	}
	assertNear(t, Pt(5, 5), pt, 1e-4)

	// The vertical line's y span ends below the curve.
	if pt, ok := Intersect(c, Line{Pt(5, -10), Pt(5, 2)}); ok {
		t.Errorf("expected no intersection, got %v", pt)
	}
}

func TestIntersectCurveCurve(t *testing.T) {
	// A rising monotone piece against a flat degenerate curve at y = 4:
	// 10t − 5t² = 4 at t = (10−√20)/10, i.e. x = 5t ≈ 2.7639.
	a := NewCurve(Pt(0, 0), Pt(2.5, 5), Pt(5, 5))
	b := NewCurve(Pt(0, 4), Pt(2.5, 4), Pt(5, 4))
	pt, ok := a.Intersect(b)
	if !ok {
		t.Fatal("expected an intersection")
	}
	assertNear(t, Pt(2.7639320, 4), pt, 1e-3)
}

func TestIntersectDisjointXRanges(t *testing.T) {
	a := NewCurve(Pt(0, 0), Pt(2.5, 5), Pt(5, 5))
	b := Line{Pt(6, 0), Pt(10, 10)}
	if pt, ok := Intersect(a, b); ok {
		t.Errorf("expected no intersection, got %v", pt)
	}
}
