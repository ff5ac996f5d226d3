package pathgeom

import (
	"math"
	"testing"
)

func TestPointLerpEndpoints(t *testing.T) {
	p0 := Pt(0.1, -2.5)
	p1 := Pt(731.25, 0.3)
	if got := p0.Lerp(p1, 0); got != p0 {
		t.Errorf("got %v, want %v", got, p0)
	}
	if got := p0.Lerp(p1, 1); got != p1 {
		t.Errorf("got %v, want %v", got, p1)
	}
	if got, want := p0.Lerp(p1, 0.5), p0.Midpoint(p1); got.Distance(want) > 1e-5 {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestPointDistance(t *testing.T) {
	if got, want := Pt(0, 0).Distance(Pt(3, 4)), float32(5.0); got != want {
		t.Errorf("got %g, want %g", got, want)
	}
}

func TestPointIsNaN(t *testing.T) {
	nan := float32(math.NaN())
	if Pt(1, 2).IsNaN() {
		t.Error("point is NaN but shouldn't be")
	}
	if !Pt(nan, 2).IsNaN() || !Pt(1, nan).IsNaN() {
		t.Error("point isn't NaN but should be")
	}
}

func TestVec2Cross(t *testing.T) {
	if got, want := Vec(1, 0).Cross(Vec(0, 1)), float32(1.0); got != want {
		t.Errorf("got %g, want %g", got, want)
	}
	if got, want := Vec(0, 1).Cross(Vec(1, 0)), float32(-1.0); got != want {
		t.Errorf("got %g, want %g", got, want)
	}
}
