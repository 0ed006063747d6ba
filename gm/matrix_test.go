package gm_test

import (
	"math"
	"testing"

	"github.com/oliverbestmann/planar/gm"
	"github.com/oliverbestmann/planar/internal/assert"
	"github.com/stretchr/testify/require"
)

func TestMatrix_Identity(t *testing.T) {
	require.Equal(t, gm.MatrixOf(1, 0, 0, 1, 0, 0), gm.IdentityMatrix())
	require.True(t, gm.IdentityMatrix().IsIdentity())
	require.False(t, gm.Matrix{}.IsIdentity())
}

func TestMatrix_DotIdentity(t *testing.T) {
	m := gm.MatrixOf(2, 1, -1, 3, 5, 7)

	require.Equal(t, m, m.Dot(gm.IdentityMatrix()))
	require.Equal(t, m, gm.IdentityMatrix().Dot(m))
}

func TestMatrix_Dot(t *testing.T) {
	m := gm.MatrixOf(1, 2, 3, 4, 5, 6)
	n := gm.MatrixOf(7, 8, 9, 10, 11, 12)

	require.Equal(t, gm.MatrixOf(
		1*7+3*8,
		2*7+4*8,
		1*9+3*10,
		2*9+4*10,
		1*11+3*12+5,
		2*11+4*12+6,
	), m.Dot(n))
}

func TestMatrix_DotAssociative(t *testing.T) {
	for range 100 {
		a := gm.RandomMatrix()
		b := gm.RandomMatrix()
		c := gm.RandomMatrix()

		assert.MatrixInDelta(t, a.Dot(b).Dot(c), a.Dot(b.Dot(c)), 1e-6)
	}
}

func TestMatrix_DotNotCommutative(t *testing.T) {
	a := gm.TranslationMatrix(gm.PointOf(10, 0))
	b := gm.ScaleMatrix(gm.PointOf(2, 2))

	require.NotEqual(t, a.Dot(b), b.Dot(a))
	require.Equal(t, 10.0, a.Dot(b).E)
	require.Equal(t, 20.0, b.Dot(a).E)
}

func TestMatrix_DotDoesNotModify(t *testing.T) {
	m := gm.MatrixOf(2, 0, 0, 3, 5, 7)
	n := gm.RotationMatrix(1)

	_ = m.Dot(n)
	_ = m.Invert()

	require.Equal(t, gm.MatrixOf(2, 0, 0, 3, 5, 7), m)
	require.Equal(t, gm.RotationMatrix(1), n)
}

func TestMatrix_Invert(t *testing.T) {
	m := gm.MatrixOf(2, 0, 0, 3, 5, 7)
	p := gm.PointOf(1, 1)

	assert.PointInDelta(t, p, gm.Transform(p, m, m.Invert()), 1e-6)
	assert.MatrixInDelta(t, gm.MatrixOf(0.5, 0, 0, 1.0/3, -2.5, -7.0/3), m.Invert(), 1e-12)
}

func TestMatrix_InvertRoundTrip(t *testing.T) {
	for range 100 {
		m := gm.RandomMatrix()
		p := gm.RandomPoint(-1000, 1000)

		assert.PointInDelta(t, p, gm.Transform(p, m, m.Invert()), 1e-6)
		assert.MatrixInDelta(t, gm.IdentityMatrix(), m.Dot(m.Invert()), 1e-6)
		assert.MatrixInDelta(t, m, m.Invert().Invert(), 1e-6)
	}
}

func TestMatrix_InvertIdentity(t *testing.T) {
	require.True(t, gm.IdentityMatrix().Invert().Equals(gm.IdentityMatrix()))
}

func TestMatrix_InvertSingular(t *testing.T) {
	t.Run("zero determinant", func(t *testing.T) {
		m := gm.MatrixOf(1, 2, 2, 4, 0, 0)
		require.Equal(t, 0.0, m.Determinant())

		inverse := m.Invert()
		require.False(t, inverse.IsFinite())
		require.True(t, math.IsInf(inverse.A, 1))
	})

	t.Run("zero matrix", func(t *testing.T) {
		inverse := gm.Matrix{}.Invert()
		require.False(t, inverse.IsFinite())
		require.True(t, math.IsNaN(inverse.A))
	})
}

func TestMatrix_IsFinite(t *testing.T) {
	require.True(t, gm.IdentityMatrix().IsFinite())
	require.True(t, gm.RandomMatrix().Invert().IsFinite())
	require.False(t, gm.MatrixOf(1, 0, 0, 1, math.Inf(-1), 0).IsFinite())
	require.False(t, gm.MatrixOf(1, 0, 0, 1, 0, math.NaN()).IsFinite())
}

func TestMatrix_Scale(t *testing.T) {
	t.Run("uniform", func(t *testing.T) {
		for _, k := range []float64{0.5, 1, 2, 3, 10} {
			require.Equal(t, k, gm.MatrixOf(k, 0, 0, k, 0, 0).Scale())
		}
	})

	t.Run("zero", func(t *testing.T) {
		require.Equal(t, 0.0, gm.MatrixOf(0, 0, 0, 0, 0, 0).Scale())
		require.Equal(t, 0.0, gm.MatrixOf(0, 0, 0, 0, 5, 7).Scale())
	})

	t.Run("one axis collapsed", func(t *testing.T) {
		require.Equal(t, 0.0, gm.MatrixOf(2, 0, 0, 0, 0, 0).Scale())
	})

	t.Run("non uniform", func(t *testing.T) {
		require.Equal(t, 2.0, gm.ScaleMatrix(gm.PointOf(2, 3)).Scale())
		require.Equal(t, 2.0, gm.ScaleMatrix(gm.PointOf(3, 2)).Scale())
		require.Equal(t, 2.0, gm.ScaleMatrix(gm.PointOf(-2, 3)).Scale())
	})

	t.Run("ignores translation", func(t *testing.T) {
		require.Equal(t, 2.0, gm.MatrixOf(2, 0, 0, 3, 100, -100).Scale())
	})

	t.Run("rotation", func(t *testing.T) {
		m := gm.RotationMatrix(0.3).ScaleBy(gm.PointOf(2, 2))
		require.InDelta(t, 2.0, m.Scale(), 1e-9)
	})

	t.Run("skew", func(t *testing.T) {
		// x' = x + y
		m := gm.MatrixOf(1, 0, 1, 1, 0, 0)
		require.InDelta(t, 1/math.Sqrt2, m.Scale(), 1e-12)
	})
}

func TestMatrix_Apply(t *testing.T) {
	m := gm.MatrixOf(2, 0, 0, 3, 5, 7)
	require.Equal(t, gm.PointOf(7, 10), m.Apply(gm.PointOf(1, 1)))
	require.Equal(t, gm.PointOf(2, 3), m.ApplyVec(gm.PointOf(1, 1)))
}

func TestMatrix_Rotation(t *testing.T) {
	t.Run("rotate 180°", func(t *testing.T) {
		m := gm.RotationMatrix(math.Pi)

		assert.PointInDelta(t, gm.PointOf(-1, -1), m.Apply(gm.PointOf(1, 1)), 1e-6)
		assert.PointInDelta(t, gm.PointOf(0, -1), m.Apply(gm.PointOf(0, 1)), 1e-6)
	})

	t.Run("rotate 90°", func(t *testing.T) {
		m := gm.RotationMatrix(math.Pi / 2)

		assert.PointInDelta(t, gm.PointOf(-1, 1), m.Apply(gm.PointOf(1, 1)), 1e-6)
		assert.PointInDelta(t, gm.PointOf(0, 1), m.Apply(gm.PointOf(1, 0)), 1e-6)
		assert.PointInDelta(t, gm.PointOf(-1, 0), m.Apply(gm.PointOf(0, 1)), 1e-6)
	})

	t.Run("compose", func(t *testing.T) {
		m := gm.RotationMatrix(math.Pi).Dot(gm.RotationMatrix(math.Pi / 2))
		assert.MatrixInDelta(t, gm.RotationMatrix(math.Pi*1.5), m, 1e-12)
	})
}

func TestMatrix_Builders(t *testing.T) {
	tr := gm.IdentityMatrix().Translate(gm.PointOf(2, 1))
	require.Equal(t, gm.PointOf(12, 11), tr.Apply(gm.PointOf(10, 10)))

	// rotate by 90° first, then move by (10, 0)
	tr = gm.IdentityMatrix().Translate(gm.PointOf(10, 0)).Rotate(gm.DegToRad(90))
	assert.PointInDelta(t, gm.PointOf(10, 1), tr.Apply(gm.PointOf(1, 0)), 1e-9)

	// move by (10, 0) first, then rotate by 90°
	tr = gm.IdentityMatrix().Rotate(gm.DegToRad(90)).Translate(gm.PointOf(10, 0))
	assert.PointInDelta(t, gm.PointOf(0, 11), tr.Apply(gm.PointOf(1, 0)), 1e-9)

	// move by 5 first, then scale by 2
	tr = gm.IdentityMatrix().ScaleBy(gm.PointOf(2, 2)).Translate(gm.PointOf(5, 0))
	assert.PointInDelta(t, gm.PointOf(30, 0), tr.Apply(gm.PointOf(10, 0)), 1e-9)
}

func TestFromTRS(t *testing.T) {
	m := gm.FromTRS(gm.PointOf(10, 20), gm.PointOf(2, 3), 0)
	require.Equal(t, gm.PointOf(12, 23), m.Apply(gm.PointOf(1, 1)))

	m = gm.FromTRS(gm.PointOf(10, 20), gm.PointOf(2, 2), gm.DegToRad(90))
	assert.PointInDelta(t, gm.PointOf(10, 22), m.Apply(gm.PointOf(1, 0)), 1e-9)
}

func TestMatrix_Equals(t *testing.T) {
	m := gm.MatrixOf(1, 2, 3, 4, 5, 6)

	require.True(t, m.Equals(gm.MatrixOf(1, 2, 3, 4, 5, 6+0.5e-8)))
	require.False(t, m.Equals(gm.MatrixOf(1, 2, 3, 4, 5, 6+2e-8)))
}

func TestMatrix_String(t *testing.T) {
	require.Equal(t, "Matrix(1, 0, 0, 1, 0, 0)", gm.IdentityMatrix().String())
}
