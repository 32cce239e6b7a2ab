package advanced

import (
	"iter"

	"github.com/pkg/errors"

	"github.com/osuushi/cdt/internal"
)

// Insert the polygon's points in order, then constrain each side that can be
// constrained. Sides that would cross an existing constraint, or that join a
// point to itself because of a duplicate, are skipped rather than treated as
// errors. This is the "brush" operation: stamping a shape onto the mesh.
//
// Returns the vertex for each point, in order.
func (m *Mesh) InsertPolygon(poly Polygon) ([]VertexHandle, error) {
	handles := make([]VertexHandle, len(poly.Points))
	for i, p := range poly.Points {
		v, err := m.Insert(p)
		if err != nil && !errors.Is(err, ErrDuplicatePoint) {
			return handles[:i], err
		}
		handles[i] = v
	}

	n := len(handles)
	sides := n - 1
	if poly.Closed {
		sides = n
	}
	for i := 0; i < sides; i++ {
		a, b := handles[i], handles[internal.CircularIndex(i+1, n)]
		if a == b || !m.CanAddConstraint(a, b) {
			continue
		}
		if err := m.AddConstraint(a, b); err != nil {
			return handles, err
		}
	}
	return handles, nil
}

// The corners of an axis-aligned square around center, clockwise from the top
// left in screen coordinates (y down).
func BoxCorners(center Point, halfSize float64) Polygon {
	return Polygon{
		Points: []Point{
			{X: center.X - halfSize, Y: center.Y - halfSize},
			{X: center.X + halfSize, Y: center.Y - halfSize},
			{X: center.X + halfSize, Y: center.Y + halfSize},
			{X: center.X - halfSize, Y: center.Y + halfSize},
		},
		Closed: true,
	}
}

// The triangles lying inside the given loops by the even-odd rule, so that
// loops nested inside other loops are holes. Each triangle is tested at its
// centroid, which is only meaningful when every loop side is a constraint (as
// InsertPolygon arranges when nothing crosses).
func (m *Mesh) FacesInside(loops []Polygon) iter.Seq[FaceHandle] {
	list := internal.PolygonList(loops)
	return func(yield func(FaceHandle) bool) {
		for f := range m.InnerFaces() {
			corners := m.FacePositions(f)
			centroid := Point{
				X: (corners[0].X + corners[1].X + corners[2].X) / 3,
				Y: (corners[0].Y + corners[1].Y + corners[2].Y) / 3,
			}
			if list.ContainsPoint(centroid) && !yield(f) {
				return
			}
		}
	}
}
