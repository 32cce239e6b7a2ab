package advanced

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/osuushi/cdt/internal"
)

// Constraint insertion follows the edge flipping approach: collect the edges
// the new segment crosses, and flip them one at a time (putting back any whose
// quad is not yet convex) until none cross. The segment is then an edge.
//
// A segment that passes exactly through other vertices is handled as a chain
// of pieces, each ending at one of those vertices, so the realized constraint
// is a chain of constrained edges.

// A run of the constraint segment between two vertices with no vertex strictly
// between them, and the mesh edges it currently crosses.
type segmentPiece struct {
	from, to VertexHandle
	crossed  []EdgeHandle
}

// Reports whether AddConstraint(a, b) would succeed: the handles are distinct
// vertices and the segment between them crosses no existing constraint.
func (m *Mesh) CanAddConstraint(a, b VertexHandle) bool {
	if !m.ValidVertex(a) || !m.ValidVertex(b) || a == b {
		return false
	}
	if !m.IsTriangulated() {
		return true
	}
	return m.firstCrossedConstraint(a, b) == NoEdge
}

// Make the segment between a and b part of the mesh, and mark it so that no
// later operation removes it. Adding a constraint that already exists is a
// no-op.
//
// Before the mesh has its first triangle, the request is recorded and carried
// out as soon as the triangle forms.
//
// May panic with a TriangulateError if the mesh is found to be inconsistent.
func (m *Mesh) AddConstraint(a, b VertexHandle) error {
	if !m.ValidVertex(a) || !m.ValidVertex(b) {
		return errors.Wrapf(ErrInvalidHandle, "constraint %v-%v", a, b)
	}
	if a == b {
		return errors.Wrapf(ErrDegenerateConstraint, "constraint endpoints are both %v", a)
	}

	if !m.IsTriangulated() {
		m.deferred = append(m.deferred, [2]VertexHandle{a, b})
		m.constraints = append(m.constraints, [2]VertexHandle{a, b})
		return nil
	}

	if e := m.firstCrossedConstraint(a, b); e != NoEdge {
		return errors.Wrapf(ErrDegenerateConstraint, "%v-%v would cross the constraint %v-%v",
			a, b, m.Origin(e), m.Dest(e))
	}
	m.addConstraint(a, b)
	m.constraints = append(m.constraints, [2]VertexHandle{a, b})
	return nil
}

// The constraints added so far, in the order they were requested.
func (m *Mesh) Constraints() [][2]VertexHandle {
	return append([][2]VertexHandle(nil), m.constraints...)
}

func (m *Mesh) firstCrossedConstraint(a, b VertexHandle) EdgeHandle {
	for _, piece := range m.traceSegment(a, b) {
		for _, e := range piece.crossed {
			if m.fixed[e.Undirected()] {
				return e
			}
		}
	}
	return NoEdge
}

// Realize the constraint a-b, which must not cross any existing constraint.
func (m *Mesh) addConstraint(a, b VertexHandle) {
	// Piece boundaries are vertices, which flips never move, so the pieces can
	// be found up front. Crossed edges are recomputed per piece, since the
	// flips for one piece change the triangles around the next.
	pieces := m.traceSegment(a, b)
	flips := 0
	for _, piece := range pieces {
		flips += m.insertPiece(m.tracePiece(piece.from, piece.to))
	}
	m.logger().Debug("added constraint",
		zap.Int("from", int(a)),
		zap.Int("to", int(b)),
		zap.Int("pieces", len(pieces)),
		zap.Int("flips", flips),
	)
}

func (m *Mesh) insertPiece(piece segmentPiece) int {
	a, b := piece.from, piece.to
	flips := 0
	var created []EdgeHandle
	if len(piece.crossed) > 0 {
		segment := internal.Segment{Start: m.Position(a), End: m.Position(b)}
		queue := append([]EdgeHandle(nil), piece.crossed...)
		// Each pass over the queue flips at least one edge, and each edge is
		// flipped a bounded number of times.
		limit := (len(queue)+1)*(len(queue)+1)*4 + 64
		for iterations := 0; len(queue) > 0; iterations++ {
			if iterations > limit {
				fatalf("constraint %v-%v did not resolve after %d iterations", a, b, iterations)
			}
			e := queue[0]
			queue = queue[1:]
			if m.fixed[e.Undirected()] {
				fatalf("constraint %v-%v crosses constraint edge %v", a, b, e)
			}
			if !m.flip(e) {
				queue = append(queue, e)
				continue
			}
			flips++
			if m.EdgeSegment(e).ProperlyCrosses(segment) {
				queue = append(queue, e)
			} else {
				created = append(created, e)
			}
		}
	}

	e := m.FindEdge(a, b)
	if e == NoEdge {
		fatalf("constraint %v-%v is not an edge after flipping", a, b)
	}
	m.fixed[e.Undirected()] = true
	return flips + m.legalize(created)
}

// Split the segment a-b into pieces at every vertex it passes through.
func (m *Mesh) traceSegment(a, b VertexHandle) []segmentPiece {
	var pieces []segmentPiece
	for from := a; from != b; {
		if len(pieces) > len(m.vertices) {
			fatalf("tracing %v-%v visited more pieces than there are vertices", a, b)
		}
		piece := m.tracePiece(from, b)
		pieces = append(pieces, piece)
		from = piece.to
	}
	return pieces
}

// Walk from a toward b, collecting crossed edges, until reaching b or some
// other vertex exactly on the segment.
func (m *Mesh) tracePiece(a, b VertexHandle) segmentPiece {
	pa, pb := m.Position(a), m.Position(b)

	// An edge straight toward b ends the piece immediately
	for e := range m.OutgoingEdges(a) {
		x := m.Dest(e)
		if x == b {
			return segmentPiece{from: a, to: b}
		}
		px := m.Position(x)
		if internal.Orientation(pa, pb, px) == internal.Collinear && internal.SameDirection(pa, pb, px) {
			return segmentPiece{from: a, to: x}
		}
	}

	// Otherwise find the triangle at a whose wedge contains the segment. Its
	// far side is the first crossed edge.
	crossing := NoEdge
	for e := range m.OutgoingEdges(a) {
		if m.edges[e].face == OuterFace {
			continue
		}
		px := m.Position(m.Dest(e))
		py := m.Position(m.apex(e))
		if internal.Orientation(pa, px, pb) == internal.CounterClockwise &&
			internal.Orientation(pa, py, pb) == internal.Clockwise {
			crossing = m.edges[e].next
			break
		}
	}
	if crossing == NoEdge {
		fatalf("no triangle at %v contains the direction toward %v", a, b)
	}

	// Crossed edges are kept oriented with their origin right of a->b and
	// their destination left of it.
	crossed := []EdgeHandle{crossing}
	for e := crossing; ; {
		if len(crossed) > len(m.edges) {
			fatalf("tracing %v-%v crossed more edges than exist", a, b)
		}
		twin := e.Twin()
		if m.edges[twin].face == OuterFace {
			fatalf("tracing %v-%v left the hull", a, b)
		}
		z := m.apex(twin)
		if z == b {
			return segmentPiece{from: a, to: b, crossed: crossed}
		}
		switch internal.Orientation(pa, pb, m.Position(z)) {
		case internal.Collinear:
			return segmentPiece{from: a, to: z, crossed: crossed}
		case internal.CounterClockwise:
			e = m.edges[twin].next
		case internal.Clockwise:
			e = m.edges[twin].prev
		}
		crossed = append(crossed, e)
	}
}
