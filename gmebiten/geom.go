// Package gmebiten converts between gm and the matrix types of ebiten.
package gmebiten

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/oliverbestmann/planar/gm"
)

// GeoM converts the matrix into an ebiten.GeoM describing the same transformation.
func GeoM(m gm.Matrix) ebiten.GeoM {
	var g ebiten.GeoM
	g.SetElement(0, 0, m.A)
	g.SetElement(0, 1, m.C)
	g.SetElement(0, 2, m.E)
	g.SetElement(1, 0, m.B)
	g.SetElement(1, 1, m.D)
	g.SetElement(1, 2, m.F)
	return g
}

// FromGeoM converts an ebiten.GeoM back into a Matrix.
func FromGeoM(g ebiten.GeoM) gm.Matrix {
	return gm.Matrix{
		A: g.Element(0, 0),
		B: g.Element(1, 0),
		C: g.Element(0, 1),
		D: g.Element(1, 1),
		E: g.Element(0, 2),
		F: g.Element(1, 2),
	}
}

// FlattenGeoM composes the matrices with the same ordering as gm.FlattenTransforms.
func FlattenGeoM(matrices []gm.Matrix) ebiten.GeoM {
	var g ebiten.GeoM
	for _, m := range matrices {
		// Concat applies m after everything already in g
		g.Concat(GeoM(m))
	}

	return g
}

// Apply transforms the point using ebiten's matrix implementation.
func Apply(g ebiten.GeoM, p gm.Point) gm.Point {
	x, y := g.Apply(p.X, p.Y)
	return gm.Point{X: x, Y: y}
}

// DrawImageOptions returns options to draw an image with the given transformation.
func DrawImageOptions(m gm.Matrix) *ebiten.DrawImageOptions {
	return &ebiten.DrawImageOptions{GeoM: GeoM(m)}
}
