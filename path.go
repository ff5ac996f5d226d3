package pathgeom

import "fmt"

type PathElementKind int

const (
	// Move directly to the point without drawing anything, starting a new
	// subpath.
	MoveToKind PathElementKind = iota + 1
	// Draw a line from the current location to the point.
	LineToKind
	// Draw a quadratic Bézier using the current location, the control
	// point, and the end point.
	QuadToKind
	// Close off the subpath.
	ClosePathKind
)

// PathElement is one drawing command of a path. It is a tagged union; which
// of P0 and P1 are meaningful depends on Kind. Each command starts from the
// pen position left behind by the previous one, which is why elements carry
// no explicit start point.
type PathElement struct {
	Kind PathElementKind
	P0   Point
	P1   Point
}

func (el PathElement) String() string {
	switch el.Kind {
	case MoveToKind:
		return fmt.Sprintf("MoveTo(%s)", el.P0)
	case LineToKind:
		return fmt.Sprintf("LineTo(%s)", el.P0)
	case QuadToKind:
		return fmt.Sprintf("QuadTo(%s, %s)", el.P0, el.P1)
	case ClosePathKind:
		return "ClosePath()"
	default:
		return "InvalidPathElement"
	}
}

func (el PathElement) IsInf() bool {
	return el.P0.IsInf() || el.P1.IsInf()
}

func (el PathElement) IsNaN() bool {
	return el.P0.IsNaN() || el.P1.IsNaN()
}

func MoveTo(pt Point) PathElement {
	return PathElement{Kind: MoveToKind, P0: pt}
}

func LineTo(pt Point) PathElement {
	return PathElement{Kind: LineToKind, P0: pt}
}

// QuadTo returns a quadratic Bézier command with control point p0 and end
// point p1.
func QuadTo(p0, p1 Point) PathElement {
	return PathElement{Kind: QuadToKind, P0: p0, P1: p1}
}

func ClosePath() PathElement {
	return PathElement{Kind: ClosePathKind}
}
