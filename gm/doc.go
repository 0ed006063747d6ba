// Package gm (stands for geometry math) provides the 2d affine geometry primitives
// used for coordinate math in the editor.
//
// It includes a point type called Point, an affine transformation matrix named
// Matrix and a plain rectangle Rect, plus a few free functions to transform points,
// compose matrices and test points for collinearity.
//
// All values are immutable and all functions are pure. Nothing in this package
// panics or returns an error: degenerate input, like inverting a singular Matrix,
// produces non-finite values that propagate to the caller.
package gm
