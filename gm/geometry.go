package gm

import "math"

// Coordinate is satisfied by every struct type that is made of exactly an X and
// a Y float64 field, like Point or the vector types of other libraries.
type Coordinate interface {
	~struct{ X, Y float64 }
}

// Transform applies the matrices to p one after another, starting with the first one.
func Transform[P Coordinate](p P, matrices ...Matrix) Point {
	result := Point(p)
	for _, m := range matrices {
		result = m.Apply(result)
	}

	return result
}

// FlattenTransforms composes the matrices into one. Each matrix is multiplied
// onto the result from the left, so flattening [A, B] yields B.Dot(A). Applied to
// a point this has the same effect as calling Transform with the same matrices.
//
// An empty list flattens to the identity.
func FlattenTransforms(matrices []Matrix) Matrix {
	result := IdentityMatrix()
	for _, m := range matrices {
		result = m.Dot(result)
	}

	return result
}

// Distance returns the euclidean distance between p1 and p2.
func Distance(p1, p2 Point) float64 {
	dx := p2.X - p1.X
	dy := p2.Y - p1.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// AreCollinear returns true if all points lie on the line through the first two
// points. Less than three points are always collinear.
func AreCollinear(points ...Point) bool {
	if len(points) < 3 {
		return true
	}

	a, b := points[0], points[1]
	for _, c := range points {
		if math.Abs(doubleArea(a, b, c)) >= Epsilon {
			return false
		}
	}

	return true
}

// doubleArea returns twice the signed area of the triangle abc.
func doubleArea(a, b, c Point) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

// Lerp interpolates linearly between a and b. Values of t outside
// of [0, 1] extrapolate.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// FloorMod returns num modulo maxNum in the range [0, maxNum) for
// positive maxNum, also for negative values of num.
func FloorMod(num, maxNum float64) float64 {
	return math.Mod(math.Mod(num, maxNum)+maxNum, maxNum)
}
