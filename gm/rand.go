package gm

import (
	"math"
	"math/rand/v2"
)

// RandomIn returns a random value uniformly sampled from the given range, excluding max.
func RandomIn(min, max float64) float64 {
	return Lerp(min, max, rand.Float64())
}

// RandomPoint returns a point with both coordinates sampled from the given range.
func RandomPoint(min, max float64) Point {
	return Point{
		X: RandomIn(min, max),
		Y: RandomIn(min, max),
	}
}

// RandomMatrix returns a random invertible transformation made of a scale,
// a rotation, a skew and a translation.
func RandomMatrix() Matrix {
	for {
		skew := Matrix{A: 1, C: RandomIn(-1, 1), D: 1}

		m := FromTRS(
			RandomPoint(-100, 100),
			RandomPoint(0.25, 4),
			Rad(RandomIn(0, 2*math.Pi)),
		).Dot(skew)

		if math.Abs(m.Determinant()) > 1e-3 {
			return m
		}
	}
}
