package pathgeom

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func assertNear(t *testing.T, p0 Point, p1 Point, epsilon float32) {
	t.Helper()
	if d := p0.Distance(p1); d > epsilon {
		t.Errorf("got %v, want %v (distance %g > %g)", p1, p0, d, epsilon)
	}
}
