package advanced

import (
	"go.uber.org/zap"

	"github.com/osuushi/cdt/internal"
)

// A constrained Delaunay triangulation stored as a half-edge mesh. Vertices,
// half-edges and faces live in flat arenas and refer to each other by handle.
//
// Every triangle is counterclockwise, with its three half-edges forming a next
// cycle. Hull half-edges belong to OuterFace, whose cycle runs around the hull
// in the other direction. Until three non-collinear points have been inserted
// there are no faces at all; vertices wait in a pending list.
//
// A Mesh is not safe for concurrent use. Read-only methods may run alongside
// each other, but not alongside a mutation.
type Mesh struct {
	Logger *zap.Logger

	// When set, inserting an existing coordinate returns the existing vertex
	// together with ErrDuplicatePoint instead of succeeding silently.
	RejectDuplicates bool

	vertices []vertex
	edges    []halfEdge
	fixed    []bool // constraint flag, per twin pair
	faces    []face
	index    map[Point]VertexHandle

	// Vertices inserted before the first triangle exists. They are all collinear.
	pending []VertexHandle
	// Constraints requested before the first triangle exists.
	deferred [][2]VertexHandle
	// Every successful AddConstraint call, in order.
	constraints [][2]VertexHandle

	// Where the next location walk starts. Only mutations move it.
	hint FaceHandle
	// Overrides the walk's step budget when positive.
	walkBudget int
}

type vertex struct {
	pos Point
	out EdgeHandle // any outgoing half-edge, or NoEdge while pending
}

type halfEdge struct {
	origin VertexHandle
	next   EdgeHandle
	prev   EdgeHandle
	face   FaceHandle
}

type face struct {
	edge EdgeHandle
}

func NewMesh() *Mesh {
	return &Mesh{
		Logger: zap.NewNop(),
		faces:  []face{{edge: NoEdge}}, // OuterFace
		index:  make(map[Point]VertexHandle),
		hint:   NoFace,
	}
}

func (m *Mesh) logger() *zap.Logger {
	if m.Logger == nil {
		return zap.NewNop()
	}
	return m.Logger
}

// True once three non-collinear points exist and the mesh has faces.
func (m *Mesh) IsTriangulated() bool {
	return len(m.faces) > 1
}

func (m *Mesh) NumVertices() int {
	return len(m.vertices)
}

// Number of triangles. The outer face is not counted.
func (m *Mesh) NumFaces() int {
	return len(m.faces) - 1
}

func (m *Mesh) NumUndirectedEdges() int {
	return len(m.edges) / 2
}

func (m *Mesh) NumConstraints() int {
	count := 0
	for _, fixed := range m.fixed {
		if fixed {
			count++
		}
	}
	return count
}

func (m *Mesh) ValidVertex(v VertexHandle) bool {
	return v >= 0 && int(v) < len(m.vertices)
}

func (m *Mesh) ValidEdge(e EdgeHandle) bool {
	return e >= 0 && int(e) < len(m.edges)
}

// Reports whether f is a triangle of the mesh. OuterFace is not.
func (m *Mesh) ValidFace(f FaceHandle) bool {
	return f > OuterFace && int(f) < len(m.faces)
}

// Accessors. These do not check their handles; see the Valid* methods.

func (m *Mesh) Position(v VertexHandle) Point {
	return m.vertices[v].pos
}

// Some half-edge leaving v, or NoEdge if v is not yet part of a triangle.
func (m *Mesh) OutgoingEdge(v VertexHandle) EdgeHandle {
	return m.vertices[v].out
}

func (m *Mesh) Origin(e EdgeHandle) VertexHandle {
	return m.edges[e].origin
}

func (m *Mesh) Dest(e EdgeHandle) VertexHandle {
	return m.edges[e.Twin()].origin
}

func (m *Mesh) Twin(e EdgeHandle) EdgeHandle {
	return e.Twin()
}

func (m *Mesh) Next(e EdgeHandle) EdgeHandle {
	return m.edges[e].next
}

func (m *Mesh) Prev(e EdgeHandle) EdgeHandle {
	return m.edges[e].prev
}

func (m *Mesh) Face(e EdgeHandle) FaceHandle {
	return m.edges[e].face
}

func (m *Mesh) IsConstraint(e EdgeHandle) bool {
	return m.fixed[e.Undirected()]
}

// True if either side of the edge is the outer face.
func (m *Mesh) IsHullEdge(e EdgeHandle) bool {
	return m.edges[e].face == OuterFace || m.edges[e.Twin()].face == OuterFace
}

func (m *Mesh) EdgePositions(e EdgeHandle) [2]Point {
	return [2]Point{m.Position(m.Origin(e)), m.Position(m.Dest(e))}
}

func (m *Mesh) EdgeSegment(e EdgeHandle) internal.Segment {
	return internal.Segment{Start: m.Position(m.Origin(e)), End: m.Position(m.Dest(e))}
}

// The vertex across the triangle from e. Only meaningful for inner faces.
func (m *Mesh) apex(e EdgeHandle) VertexHandle {
	return m.edges[m.edges[e].prev].origin
}

func (m *Mesh) FaceAdjacentEdges(f FaceHandle) [3]EdgeHandle {
	e0 := m.faces[f].edge
	e1 := m.edges[e0].next
	return [3]EdgeHandle{e0, e1, m.edges[e1].next}
}

func (m *Mesh) FaceVertices(f FaceHandle) [3]VertexHandle {
	edges := m.FaceAdjacentEdges(f)
	return [3]VertexHandle{m.Origin(edges[0]), m.Origin(edges[1]), m.Origin(edges[2])}
}

// Corner positions in counterclockwise order.
func (m *Mesh) FacePositions(f FaceHandle) [3]Point {
	vertices := m.FaceVertices(f)
	return [3]Point{m.Position(vertices[0]), m.Position(vertices[1]), m.Position(vertices[2])}
}

func (m *Mesh) FaceTriangle(f FaceHandle) Triangle {
	positions := m.FacePositions(f)
	return Triangle{A: positions[0], B: positions[1], C: positions[2]}
}

// How many of the face's sides are constraint edges. Faces with two or more are
// typically inside (or at a corner of) a constrained region.
func (m *Mesh) ConstraintEdgeCount(f FaceHandle) int {
	count := 0
	for _, e := range m.FaceAdjacentEdges(f) {
		if m.IsConstraint(e) {
			count++
		}
	}
	return count
}

// The half-edge from a to b, or NoEdge if the two are not adjacent.
func (m *Mesh) FindEdge(a, b VertexHandle) EdgeHandle {
	if m.vertices[a].out == NoEdge {
		return NoEdge
	}
	for e := range m.OutgoingEdges(a) {
		if m.Dest(e) == b {
			return e
		}
	}
	return NoEdge
}

// Arena allocation. All topology changes go through topology.go; these only
// append records.

func (m *Mesh) newVertex(p Point) VertexHandle {
	v := VertexHandle(len(m.vertices))
	m.vertices = append(m.vertices, vertex{pos: p, out: NoEdge})
	m.index[p] = v
	return v
}

// Allocate the twin pair a->b / b->a and return the a->b half.
func (m *Mesh) newEdgePair(a, b VertexHandle) EdgeHandle {
	e := EdgeHandle(len(m.edges))
	m.edges = append(m.edges,
		halfEdge{origin: a, next: NoEdge, prev: NoEdge, face: NoFace},
		halfEdge{origin: b, next: NoEdge, prev: NoEdge, face: NoFace},
	)
	m.fixed = append(m.fixed, false)
	return e
}

func (m *Mesh) newFace() FaceHandle {
	f := FaceHandle(len(m.faces))
	m.faces = append(m.faces, face{edge: NoEdge})
	return f
}
