package advanced

// This contains no actual tests. It is just a helper for checking mesh
// validity.

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/osuushi/cdt/internal"
)

// Helper to check that a mesh is valid. The rules are:
//  1. Twins, next and prev agree with each other, and a half-edge ends where its
//     next begins.
//  2. Every inner face is a counterclockwise triangle of three half-edges.
//  3. Every placed vertex's outgoing edge starts at that vertex.
//  4. Euler's formula holds, counting the outer face.
//  5. The outer face's cycle never turns left, so the hull is convex.
//  6. The triangles' areas sum to the hull's area.
//  7. Every edge that isn't a constraint is locally Delaunay.
//  8. Every added constraint is present as a chain of constraint edges.
func AssertValidMesh(t *testing.T, m *Mesh) {
	t.Helper()
	if !m.IsTriangulated() {
		require.Empty(t, m.edges, "edges exist before the first triangle")
		return
	}
	require.Empty(t, m.pending, "pending vertices remain after triangulation")

	for e := range m.HalfEdges() {
		he := m.edges[e]
		require.NotEqual(t, NoEdge, he.next, "%v has no next", e)
		require.Equal(t, e, m.edges[he.next].prev, "next/prev mismatch at %v", e)
		require.Equal(t, e, m.edges[he.prev].next, "prev/next mismatch at %v", e)
		require.Equal(t, he.face, m.edges[he.next].face, "%v and its next are on different faces", e)
		require.Equal(t, m.Dest(e), m.Origin(he.next), "%v does not end where its next begins", e)
		require.NotEqual(t, he.origin, m.edges[e.Twin()].origin, "%v is a loop", e)
		require.True(t, m.ValidFace(he.face) || he.face == OuterFace, "%v has invalid face %v", e, he.face)
	}

	for f := range m.InnerFaces() {
		e := m.faces[f].edge
		require.Equal(t, f, m.edges[e].face, "%v's edge is not on it", f)
		require.Equal(t, e, m.Next(m.Next(m.Next(e))), "%v is not a triangle", f)
		positions := m.FacePositions(f)
		require.Equal(t, internal.CounterClockwise, internal.Orientation(positions[0], positions[1], positions[2]),
			"%v is not counterclockwise: %v", f, positions)
	}

	for v := range m.Vertices() {
		out := m.OutgoingEdge(v)
		require.NotEqual(t, NoEdge, out, "%v has no outgoing edge", v)
		require.Equal(t, v, m.Origin(out), "%v's outgoing edge starts elsewhere", v)
	}

	require.Equal(t, 2, m.NumVertices()-m.NumUndirectedEdges()+m.NumFaces()+1, "Euler's formula")

	var hull Polygon
	for e := range m.HullEdges() {
		require.Equal(t, OuterFace, m.Face(e))
		next := m.Next(e)
		turn := internal.Orientation(m.Position(m.Origin(e)), m.Position(m.Dest(e)), m.Position(m.Dest(next)))
		require.NotEqual(t, internal.CounterClockwise, turn, "hull is not convex at %v", m.Position(m.Dest(e)))
		hull.Points = append(hull.Points, m.Position(m.Origin(e)))
	}
	var area float64
	for _, tri := range m.Triangles() {
		area += tri.SignedArea()
	}
	hullArea := -hull.SignedArea()
	require.InDelta(t, hullArea, area, 1e-9*math.Max(1, hullArea), "triangle areas don't cover the hull")

	for e := range m.UndirectedEdges() {
		require.False(t, m.isIllegal(e.Edge), "%v-%v is not locally Delaunay", e.Positions[0], e.Positions[1])
	}

	for _, pair := range m.Constraints() {
		require.True(t, hasConstraintChain(m, pair[0], pair[1]), "constraint %v-%v is missing",
			m.Position(pair[0]), m.Position(pair[1]))
	}
}

// Follow constraint edges from a toward b along the segment between them.
func hasConstraintChain(m *Mesh, a, b VertexHandle) bool {
	pa, pb := m.Position(a), m.Position(b)
	cur := a
	for steps := 0; steps <= m.NumVertices(); steps++ {
		if e := m.FindEdge(cur, b); e != NoEdge {
			return m.IsConstraint(e)
		}
		next := NoVertex
		for e := range m.OutgoingEdges(cur) {
			px := m.Position(m.Dest(e))
			if m.IsConstraint(e) &&
				internal.Orientation(pa, pb, px) == internal.Collinear &&
				internal.SameDirection(m.Position(cur), pb, px) {
				next = m.Dest(e)
				break
			}
		}
		if next == NoVertex {
			return false
		}
		cur = next
	}
	return false
}

// Check the empty circumcircle property against every vertex, not just the
// neighbors. Only meaningful without constraints. Quadratic, so keep meshes
// small.
func AssertGloballyDelaunay(t *testing.T, m *Mesh) {
	t.Helper()
	for f := range m.InnerFaces() {
		corners := m.FacePositions(f)
		for v := range m.Vertices() {
			side := internal.InCircle(corners[0], corners[1], corners[2], m.Position(v))
			require.NotEqual(t, internal.Inside, side, "%v is inside the circumcircle of %v", m.Position(v), m.FaceTriangle(f))
		}
	}
}
