package advanced

import (
	"go.uber.org/zap"

	"github.com/osuushi/cdt/internal"
)

// Classify p against the mesh, starting the walk from the most recently
// modified region. Locate never modifies the mesh.
//
// Boundary tests are exact: a point is OnEdge or OnVertex only if it lies
// exactly on the edge's line or exactly at the vertex's coordinates. Until the
// first triangle exists, a query is OnVertex if it hits one of three or more
// pending vertices, and NoTriangulation otherwise.
func (m *Mesh) Locate(p Point) Location {
	return m.locate(p, m.hint)
}

// Like Locate, but start walking from the given face. Useful when successive
// queries are spatially close to a face the caller already knows.
func (m *Mesh) LocateFrom(p Point, start FaceHandle) Location {
	return m.locate(p, start)
}

// A tiny xorshift generator. The walk picks which edge to test first at random,
// because a walk that always tests edges in the same order can cycle forever in
// a non-Delaunay (constrained) triangulation. The seed is fixed per query, so
// results do not depend on earlier queries.
type walkRand uint32

func (r *walkRand) next() int {
	x := uint32(*r)
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	*r = walkRand(x)
	return int(x % 3)
}

func (m *Mesh) locate(p Point, start FaceHandle) Location {
	if !m.IsTriangulated() {
		if v, ok := m.index[p]; ok && len(m.vertices) >= 3 {
			return m.vertexLocation(v)
		}
		return noLocation()
	}
	if !m.ValidFace(start) {
		start = FaceHandle(len(m.faces) - 1)
	}

	rng := walkRand(0x9e3779b9)
	budget := 3*len(m.faces) + 16
	if m.walkBudget > 0 {
		budget = m.walkBudget
	}
	f := start
	for step := 0; step < budget; step++ {
		edges := m.FaceAdjacentEdges(f)
		offset := rng.next()
		crossed := NoEdge
		for i := 0; i < 3; i++ {
			e := edges[(offset+i)%3]
			if m.orientation(e, p) == internal.Clockwise {
				crossed = e
				break
			}
		}
		if crossed == NoEdge {
			return m.classifyInFace(f, p)
		}

		twin := crossed.Twin()
		if m.edges[twin].face == OuterFace {
			return Location{Kind: OutsideConvexHull, Vertex: NoVertex, Edge: twin, Face: NoFace}
		}
		f = m.edges[twin].face
	}

	m.logger().Warn("location walk exceeded its step budget, scanning all faces",
		zap.Float64("x", p.X),
		zap.Float64("y", p.Y),
		zap.Int("budget", budget),
	)
	return m.locateByScan(p)
}

// Which side of e's line p is on. CounterClockwise means p is on e's face side.
func (m *Mesh) orientation(e EdgeHandle, p Point) internal.Direction {
	return internal.Orientation(m.Position(m.Origin(e)), m.Position(m.Dest(e)), p)
}

// Classify p, which is known not to lie strictly outside any side of f.
func (m *Mesh) classifyInFace(f FaceHandle, p Point) Location {
	var onLine []EdgeHandle
	for _, e := range m.FaceAdjacentEdges(f) {
		if m.orientation(e, p) == internal.Collinear {
			onLine = append(onLine, e)
		}
	}

	switch len(onLine) {
	case 0:
		return Location{Kind: OnFace, Vertex: NoVertex, Edge: NoEdge, Face: f}
	case 1:
		return Location{Kind: OnEdge, Vertex: NoVertex, Edge: onLine[0], Face: NoFace}
	}
	// On two sides' lines at once means at their shared corner
	for _, v := range m.FaceVertices(f) {
		if m.Position(v) == p {
			return m.vertexLocation(v)
		}
	}
	fatalf("%v lies on %d sides of %v but at none of its corners", p, len(onLine), f)
	return noLocation()
}

func (m *Mesh) vertexLocation(v VertexHandle) Location {
	return Location{Kind: OnVertex, Vertex: v, Edge: NoEdge, Face: NoFace}
}

// Exhaustive fallback for when the walk fails to converge.
func (m *Mesh) locateByScan(p Point) Location {
	for f := range m.InnerFaces() {
		inside := true
		for _, e := range m.FaceAdjacentEdges(f) {
			if m.orientation(e, p) == internal.Clockwise {
				inside = false
				break
			}
		}
		if inside {
			return m.classifyInFace(f, p)
		}
	}
	// Hull half-edges have the outside on their left
	for h := range m.HullEdges() {
		if m.orientation(h, p) == internal.CounterClockwise {
			return Location{Kind: OutsideConvexHull, Vertex: NoVertex, Edge: h, Face: NoFace}
		}
	}
	fatalf("%v is neither inside any face nor outside the hull", p)
	return noLocation()
}
