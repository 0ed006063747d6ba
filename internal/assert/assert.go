// Package assert contains tolerance based assertions for the gm value types.
package assert

import (
	"github.com/oliverbestmann/planar/gm"
	"github.com/stretchr/testify/require"
)

func PointInDelta(t require.TestingT, expected, actual gm.Point, delta float64) {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}

	require.InDelta(t, expected.X, actual.X, delta, "x of %s", actual)
	require.InDelta(t, expected.Y, actual.Y, delta, "y of %s", actual)
}

func MatrixInDelta(t require.TestingT, expected, actual gm.Matrix, delta float64) {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}

	require.InDeltaSlice(t, components(expected), components(actual), delta,
		"expected %s, got %s", expected, actual)
}

func components(m gm.Matrix) []float64 {
	return []float64{m.A, m.B, m.C, m.D, m.E, m.F}
}
