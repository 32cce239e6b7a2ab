package advanced

import "iter"

// Iterators over the mesh. Each call returns a fresh sequence, so they can be
// restarted freely. Behavior is undefined if the mesh is mutated during
// iteration.

type UndirectedEdge struct {
	// The even half of the twin pair. Its twin runs the other way.
	Edge       EdgeHandle
	Positions  [2]Point
	Constraint bool
}

func (m *Mesh) UndirectedEdges() iter.Seq[UndirectedEdge] {
	return func(yield func(UndirectedEdge) bool) {
		for i := 0; i < len(m.edges); i += 2 {
			e := EdgeHandle(i)
			edge := UndirectedEdge{
				Edge:       e,
				Positions:  m.EdgePositions(e),
				Constraint: m.fixed[e.Undirected()],
			}
			if !yield(edge) {
				return
			}
		}
	}
}

// Every directed half-edge, including hull half-edges on the outer face.
func (m *Mesh) HalfEdges() iter.Seq[EdgeHandle] {
	return func(yield func(EdgeHandle) bool) {
		for i := range m.edges {
			if !yield(EdgeHandle(i)) {
				return
			}
		}
	}
}

// The triangles of the mesh. The outer face is skipped.
func (m *Mesh) InnerFaces() iter.Seq[FaceHandle] {
	return func(yield func(FaceHandle) bool) {
		for i := 1; i < len(m.faces); i++ {
			if !yield(FaceHandle(i)) {
				return
			}
		}
	}
}

func (m *Mesh) Vertices() iter.Seq[VertexHandle] {
	return func(yield func(VertexHandle) bool) {
		for i := range m.vertices {
			if !yield(VertexHandle(i)) {
				return
			}
		}
	}
}

// The half-edges leaving v, in counterclockwise order. Empty for a vertex that
// is not yet part of a triangle.
func (m *Mesh) OutgoingEdges(v VertexHandle) iter.Seq[EdgeHandle] {
	return func(yield func(EdgeHandle) bool) {
		start := m.vertices[v].out
		if start == NoEdge {
			return
		}
		e := start
		for {
			if !yield(e) {
				return
			}
			e = m.edges[e].prev.Twin()
			if e == start {
				return
			}
		}
	}
}

// The hull half-edges, following the outer face's cycle (clockwise around the
// hull).
func (m *Mesh) HullEdges() iter.Seq[EdgeHandle] {
	return func(yield func(EdgeHandle) bool) {
		start := m.faces[OuterFace].edge
		if start == NoEdge {
			return
		}
		e := start
		for {
			if !yield(e) {
				return
			}
			e = m.edges[e].next
			if e == start {
				return
			}
		}
	}
}

func (m *Mesh) Triangles() []Triangle {
	triangles := make([]Triangle, 0, m.NumFaces())
	for f := range m.InnerFaces() {
		triangles = append(triangles, m.FaceTriangle(f))
	}
	return triangles
}
