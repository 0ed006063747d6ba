package gm

import "fmt"

// Rect is a plain rectangle given by its left, top, right and bottom edges.
// Nothing about the order of the edges is enforced.
type Rect struct {
	L, T, R, B float64
}

func RectOf(l, t, r, b float64) Rect {
	return Rect{L: l, T: t, R: r, B: b}
}

// RectWithPoints returns the smallest rect containing both points.
func RectWithPoints(a, b Point) Rect {
	return Rect{
		L: min(a.X, b.X),
		T: min(a.Y, b.Y),
		R: max(a.X, b.X),
		B: max(a.Y, b.Y),
	}
}

func (r Rect) Width() float64 {
	return r.R - r.L
}

func (r Rect) Height() float64 {
	return r.B - r.T
}

func (r Rect) Center() Point {
	return Point{
		X: Lerp(r.L, r.R, 0.5),
		Y: Lerp(r.T, r.B, 0.5),
	}
}

func (r Rect) Translate(offset Point) Rect {
	return Rect{
		L: r.L + offset.X,
		T: r.T + offset.Y,
		R: r.R + offset.X,
		B: r.B + offset.Y,
	}
}

func (r Rect) Contains(p Point) bool {
	return r.L <= p.X && p.X <= r.R &&
		r.T <= p.Y && p.Y <= r.B
}

// TransformBounds transforms all four corners of the rect and returns
// their axis aligned bounding box.
func (r Rect) TransformBounds(m Matrix) Rect {
	p0 := m.Apply(Point{X: r.L, Y: r.T})
	p1 := m.Apply(Point{X: r.R, Y: r.T})
	p2 := m.Apply(Point{X: r.R, Y: r.B})
	p3 := m.Apply(Point{X: r.L, Y: r.B})

	return Rect{
		L: min(p0.X, p1.X, p2.X, p3.X),
		T: min(p0.Y, p1.Y, p2.Y, p3.Y),
		R: max(p0.X, p1.X, p2.X, p3.X),
		B: max(p0.Y, p1.Y, p2.Y, p3.Y),
	}
}

func (r Rect) String() string {
	return fmt.Sprintf("Rect(l=%v, t=%v, r=%v, b=%v)", r.L, r.T, r.R, r.B)
}
