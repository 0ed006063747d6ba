// Package gmcp converts between gm and the vector and bounding box
// types of the chipmunk physics engine.
package gmcp

import (
	"github.com/jakecoffman/cp/v2"
	"github.com/oliverbestmann/planar/gm"
)

func Vector(p gm.Point) cp.Vector {
	return cp.Vector(p)
}

func PointOf(v cp.Vector) gm.Point {
	return gm.Point(v)
}

// BB converts the rect into a bounding box. chipmunk uses a y-up convention,
// so the smaller y value of the rect, its top edge, becomes the bottom edge
// of the bounding box.
func BB(r gm.Rect) cp.BB {
	return cp.BB{
		L: r.L,
		B: r.T,
		R: r.R,
		T: r.B,
	}
}

// RectOf converts the bounding box back into a rect.
func RectOf(bb cp.BB) gm.Rect {
	return gm.Rect{
		L: bb.L,
		T: bb.B,
		R: bb.R,
		B: bb.T,
	}
}

// TransformVertices applies the matrices to each vertex, see gm.Transform.
// The input slice is not modified.
func TransformVertices(verts []cp.Vector, matrices ...gm.Matrix) []cp.Vector {
	result := make([]cp.Vector, len(verts))
	for idx, vert := range verts {
		result[idx] = Vector(gm.Transform(vert, matrices...))
	}

	return result
}

// VerticesCollinear returns true if all vertices lie on a common line, see gm.AreCollinear.
func VerticesCollinear(verts []cp.Vector) bool {
	points := make([]gm.Point, len(verts))
	for idx, vert := range verts {
		points[idx] = PointOf(vert)
	}

	return gm.AreCollinear(points...)
}
