package gm

import "math"

// Rad is an angle in radians.
type Rad float64

func DegToRad(deg float64) Rad {
	return Rad(math.Pi / 180 * deg)
}

func (r Rad) Degrees() float64 {
	return float64(r) * (180 / math.Pi)
}

// Radians returns the value of the angle in radians as float64.
func (r Rad) Radians() float64 {
	return float64(r)
}

// Normalized returns the angle normalized to the range [0, 2π).
func (r Rad) Normalized() Rad {
	return Rad(FloorMod(float64(r), 2*math.Pi))
}
