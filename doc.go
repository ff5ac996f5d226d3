// Package pathgeom provides the curve primitives used by vector-path
// processing pipelines, such as font and vector-graphics rasterizers.
//
// The central type is [Curve], a quadratic Bézier segment stored in single
// precision. It supports parametric evaluation, de Casteljau subdivision,
// solving for the parameter at a given x coordinate, and per-channel
// inflection detection. [Line] is the straight-segment counterpart and
// doubles as a curve's baseline (the chord between its endpoints).
//
// # Values, not objects
//
// Every primitive is a plain value: operations never mutate their receiver
// and return fresh values instead. Copying a primitive copies its points,
// so values may be shared freely across goroutines without coordination.
//
// # Precision
//
// Coordinates are stored as float32, matching the storage format of font
// outlines. The x root solver widens to float64 internally, because even
// the stable quadratic form loses precision in single precision on
// near-degenerate curves, and narrows the result back.
//
// # Intersection
//
// [Intersecter] describes the capability shared by all primitives that can
// participate in intersection tests: they expose an x-range and can report
// their y coordinate for an x inside it. [Intersect] consumes two such
// views and finds their crossing, so any pair of primitives (curve–curve,
// curve–line, line–line) goes through the same entry point. Inputs are
// assumed to be monotonic in x; callers split non-monotone segments first
// (see [Curve.SubdivideAtX]).
//
// # Errors
//
// There are none. All operations are total over finite inputs; degenerate
// geometry produces a numeric result (possibly NaN, possibly a clamped
// boundary value) rather than a failure. Preconditions such as
// x-monotonicity before root solving are the caller's responsibility.
package pathgeom
