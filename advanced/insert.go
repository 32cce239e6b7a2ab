package advanced

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/osuushi/cdt/internal"
)

// Insert a point and return its vertex. Inserting a coordinate that is already
// a vertex returns that vertex (see RejectDuplicates).
//
// May panic with a TriangulateError if the mesh is found to be inconsistent.
func (m *Mesh) Insert(p Point) (VertexHandle, error) {
	if !p.IsFinite() {
		return NoVertex, errors.Wrapf(ErrInvalidPoint, "cannot insert %v", p)
	}
	if existing, ok := m.index[p]; ok {
		if m.RejectDuplicates {
			return existing, errors.Wrapf(ErrDuplicatePoint, "%v is already %v", p, existing)
		}
		return existing, nil
	}

	v := m.newVertex(p)
	if m.IsTriangulated() {
		m.place(v)
	} else {
		m.addPending(v)
	}
	return v, nil
}

// Hold v until there are three non-collinear points. Every pending vertex is
// collinear with the first two, so one orientation test decides.
func (m *Mesh) addPending(v VertexHandle) {
	m.pending = append(m.pending, v)
	if len(m.pending) < 3 {
		return
	}

	a, b := m.pending[0], m.pending[1]
	switch internal.Orientation(m.Position(a), m.Position(b), m.Position(v)) {
	case internal.Collinear:
		return
	case internal.CounterClockwise:
		m.hint = m.buildFirstTriangle(a, b, v)
	case internal.Clockwise:
		m.hint = m.buildFirstTriangle(b, a, v)
	}

	rest := m.pending[2 : len(m.pending)-1]
	m.pending = nil
	m.logger().Debug("formed first triangle", zap.Int("waiting", len(rest)))
	for _, u := range rest {
		m.place(u)
	}

	deferred := m.deferred
	m.deferred = nil
	for _, pair := range deferred {
		m.addConstraint(pair[0], pair[1])
	}
}

// Connect an allocated vertex into the triangulation, then restore the
// Delaunay property around it.
func (m *Mesh) place(v VertexHandle) {
	p := m.Position(v)
	loc := m.locate(p, m.hint)

	var dirty []EdgeHandle
	switch loc.Kind {
	case OnFace:
		dirty = m.splitFace(loc.Face, v)
	case OnEdge:
		dirty = m.splitEdge(loc.Edge, v)
	case OutsideConvexHull:
		dirty = m.extendHull(loc.Edge, v)
	default:
		fatalf("cannot place %v at %v: located %v", v, p, loc)
	}

	flips := m.legalize(dirty)
	m.hint = m.faceNear(v)
	m.logger().Debug("inserted vertex",
		zap.Int("vertex", int(v)),
		zap.Stringer("location", loc.Kind),
		zap.Int("flips", flips),
	)
}

// Some triangle with v as a corner.
func (m *Mesh) faceNear(v VertexHandle) FaceHandle {
	e := m.vertices[v].out
	if f := m.edges[e].face; f != OuterFace {
		return f
	}
	return m.edges[e.Twin()].face
}
