// Package rattrig implements planar and solid geometry in the style of
// rational trigonometry.
//
// Rational trigonometry, developed by Norman Wildberger, replaces
// distance with quadrance (squared distance) and angle with spread
// (squared sine of the angle). Both are computable with nothing but
// addition, subtraction, multiplication, and division, so every
// formula here is exact over integer coordinates and, via the exact
// subpackage, over arbitrary-precision rationals. Floating point works
// too, with the usual rounding caveats.
//
// The functions in this package use the tuple convention: points and
// vectors are [2]T or [3]T coordinate arrays, and lines are [3]T
// coefficient arrays (a, b, c) describing a·x + b·y + c = 0. The geom
// subpackage wraps the same operations in named Point, Vec, Line, and
// Triangle types, and the valid subpackage builds boolean predicates
// from them.
//
// Functions that divide define a fixed fallback instead of failing:
// a zero denominator, such as the zero vector passed to [Spread],
// yields a zero result. See each function's documentation.
package rattrig

import "golang.org/x/exp/constraints"

// Scalar is a constraint for the coordinate types that the formulas in
// this package can handle. Unsigned integers are excluded because
// subtraction must produce correctly signed results for orientation
// tests.
type Scalar interface {
	constraints.Signed | constraints.Float
}
