package gm

import (
	"fmt"
	"log/slog"
	"math"
)

// DefaultEpsilon is the tolerance used for approximate equality and
// collinearity checks.
const DefaultEpsilon = 1e-8

// Epsilon is the tolerance currently in use. Two values closer than Epsilon
// are considered equal.
var Epsilon = DefaultEpsilon

// Point is a 2d coordinate.
type Point struct {
	X, Y float64
}

func PointOf(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Equals returns true if both coordinates differ by strictly less than Epsilon.
func (p Point) Equals(other Point) bool {
	return math.Abs(p.X-other.X) < Epsilon && math.Abs(p.Y-other.Y) < Epsilon
}

func (p Point) Add(other Point) Point {
	p.X += other.X
	p.Y += other.Y
	return p
}

func (p Point) Sub(other Point) Point {
	p.X -= other.X
	p.Y -= other.Y
	return p
}

func (p Point) Mul(scalar float64) Point {
	p.X *= scalar
	p.Y *= scalar
	return p
}

// Length returns the distance of the point to the origin.
func (p Point) Length() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y)
}

func (p Point) String() string {
	return fmt.Sprintf("(%v, %v)", p.X, p.Y)
}

func (p Point) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Float64("x", p.X),
		slog.Float64("y", p.Y),
	)
}
