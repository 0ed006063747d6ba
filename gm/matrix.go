package gm

import (
	"fmt"
	"log/slog"
	"math"
)

// Matrix represents a 2d affine transformation. The six coefficients describe the map
//
//	x' = A*x + C*y + E
//	y' = B*x + D*y + F
//
// which is the 3x3 homogeneous matrix
//
//	| A  C  E |
//	| B  D  F |
//	| 0  0  1 |
//
// The zero value is the all-zero matrix, not the identity.
// Use IdentityMatrix to build a new identity transformation.
type Matrix struct {
	A, B, C, D, E, F float64
}

// IdentityMatrix returns the identity transformation.
func IdentityMatrix() Matrix {
	return Matrix{A: 1, D: 1}
}

func MatrixOf(a, b, c, d, e, f float64) Matrix {
	return Matrix{A: a, B: b, C: c, D: d, E: e, F: f}
}

// TranslationMatrix returns a matrix that moves a point by the given offset.
func TranslationMatrix(offset Point) Matrix {
	return Matrix{A: 1, D: 1, E: offset.X, F: offset.Y}
}

// ScaleMatrix returns a matrix that scales each axis independently.
func ScaleMatrix(scale Point) Matrix {
	return Matrix{A: scale.X, D: scale.Y}
}

// RotationMatrix returns a matrix rotating by the given angle. With the
// y axis pointing down, as on screen, the rotation is clockwise.
func RotationMatrix(angle Rad) Matrix {
	sin, cos := math.Sincos(float64(angle))
	return Matrix{A: cos, B: sin, C: -sin, D: cos}
}

// FromTRS builds the matrix of a node transform: a point is scaled first,
// then rotated and finally moved by translation.
func FromTRS(translation, scale Point, rotation Rad) Matrix {
	return TranslationMatrix(translation).
		Dot(RotationMatrix(rotation)).
		Dot(ScaleMatrix(scale))
}

// Translate returns m with a translation applied before it, in local space.
func (m Matrix) Translate(offset Point) Matrix {
	return m.Dot(TranslationMatrix(offset))
}

// ScaleBy returns m with a scale applied before it, in local space.
func (m Matrix) ScaleBy(scale Point) Matrix {
	return m.Dot(ScaleMatrix(scale))
}

// Rotate returns m with a rotation applied before it, in local space.
func (m Matrix) Rotate(angle Rad) Matrix {
	return m.Dot(RotationMatrix(angle))
}

// Dot multiplies m with other. The effect of the resulting transformation
// is the same as transforming a point first by other and then by m.
//
// Dot is associative but not commutative.
func (m Matrix) Dot(n Matrix) Matrix {
	return Matrix{
		A: m.A*n.A + m.C*n.B,
		B: m.B*n.A + m.D*n.B,
		C: m.A*n.C + m.C*n.D,
		D: m.B*n.C + m.D*n.D,
		E: m.A*n.E + m.C*n.F + m.E,
		F: m.B*n.E + m.D*n.F + m.F,
	}
}

// Determinant returns the determinant of the linear part.
// A determinant of zero means the matrix can not be inverted.
func (m Matrix) Determinant() float64 {
	return m.A*m.D - m.B*m.C
}

// Invert returns the inverse of the transformation. The inverse of a singular
// matrix contains infinite or NaN components; use IsFinite to check the result.
func (m Matrix) Invert() Matrix {
	det := m.Determinant()
	return Matrix{
		A: m.D / det,
		B: -m.B / det,
		C: -m.C / det,
		D: m.A / det,
		E: (m.C*m.F - m.D*m.E) / det,
		F: (m.B*m.E - m.A*m.F) / det,
	}
}

// Scale returns the smallest uniform scale the matrix applies, taking skew
// into account. For an axis aligned scale this is the smaller of both scale
// factors. A matrix that collapses both axes has a scale of zero.
func (m Matrix) Scale() float64 {
	linear := m
	linear.E = 0
	linear.F = 0

	vecA := linear.Apply(Point{X: 0, Y: 1})
	vecB := linear.Apply(Point{X: 1, Y: 0})

	scaleX := vecA.Length()
	scaleY := vecB.Length()

	// signed area of the parallelogram spanned by the mapped unit square
	cross := vecA.Y*vecB.X - vecA.X*vecB.Y

	maxScale := max(scaleX, scaleY)
	if maxScale == 0 {
		return 0
	}

	return math.Abs(cross) / maxScale
}

// Apply applies the transformation to the given point and returns
// the transformed point.
func (m Matrix) Apply(p Point) Point {
	return Point{
		X: m.A*p.X + m.C*p.Y + m.E,
		Y: m.B*p.X + m.D*p.Y + m.F,
	}
}

// ApplyVec applies the transformation to a vector. This is different from
// transforming a point in that the translation is not applied.
func (m Matrix) ApplyVec(vec Point) Point {
	return Point{
		X: m.A*vec.X + m.C*vec.Y,
		Y: m.B*vec.X + m.D*vec.Y,
	}
}

// IsFinite returns false if any component is infinite or NaN.
func (m Matrix) IsFinite() bool {
	for _, value := range [...]float64{m.A, m.B, m.C, m.D, m.E, m.F} {
		if math.IsInf(value, 0) || math.IsNaN(value) {
			return false
		}
	}

	return true
}

// Equals compares the matrices component wise using Epsilon.
func (m Matrix) Equals(other Matrix) bool {
	return math.Abs(m.A-other.A) < Epsilon &&
		math.Abs(m.B-other.B) < Epsilon &&
		math.Abs(m.C-other.C) < Epsilon &&
		math.Abs(m.D-other.D) < Epsilon &&
		math.Abs(m.E-other.E) < Epsilon &&
		math.Abs(m.F-other.F) < Epsilon
}

func (m Matrix) IsIdentity() bool {
	return m.Equals(IdentityMatrix())
}

func (m Matrix) String() string {
	return fmt.Sprintf("Matrix(%v, %v, %v, %v, %v, %v)", m.A, m.B, m.C, m.D, m.E, m.F)
}

func (m Matrix) LogValue() slog.Value {
	return slog.StringValue(m.String())
}
