// An incremental constrained Delaunay triangulation package for Go.
//
// Points are inserted one at a time, and the mesh is kept Delaunay except
// across constraint edges, which can be added between any two vertices as long
// as they don't cross an existing constraint. Any point can be located
// against the mesh: on a vertex, on an edge, inside a triangle, or outside the
// convex hull.
//
// This package is the safe entry point: internal consistency failures come back
// as errors wrapping ErrPredicateFailure instead of panics. The advanced
// package exposes the underlying mesh and its half-edge structure.
//
// A Triangulation is not safe for concurrent use. Callers that share one
// between goroutines must hold an exclusive lock around mutations; read-only
// calls may share a read lock.
package cdt

import (
	"io"
	"iter"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/osuushi/cdt/advanced"
)

type Point = advanced.Point
type Polygon = advanced.Polygon
type Triangle = advanced.Triangle
type VertexHandle = advanced.VertexHandle
type EdgeHandle = advanced.EdgeHandle
type FaceHandle = advanced.FaceHandle
type Location = advanced.Location
type LocationKind = advanced.LocationKind
type UndirectedEdge = advanced.UndirectedEdge
type Snapshot = advanced.Snapshot

const (
	NoTriangulation   = advanced.NoTriangulation
	OnVertex          = advanced.OnVertex
	OnEdge            = advanced.OnEdge
	OnFace            = advanced.OnFace
	OutsideConvexHull = advanced.OutsideConvexHull
)

var (
	ErrDuplicatePoint       = advanced.ErrDuplicatePoint
	ErrDegenerateConstraint = advanced.ErrDegenerateConstraint
	ErrInvalidHandle        = advanced.ErrInvalidHandle
	ErrInvalidPoint         = advanced.ErrInvalidPoint
	ErrPredicateFailure     = advanced.ErrPredicateFailure
)

type Triangulation struct {
	mesh   *advanced.Mesh
	logger *zap.Logger
}

// Create an empty triangulation. A nil logger disables logging.
func New(logger *zap.Logger) *Triangulation {
	if logger == nil {
		logger = zap.NewNop()
	}
	mesh := advanced.NewMesh()
	mesh.Logger = logger
	return &Triangulation{mesh: mesh, logger: logger}
}

// Rebuild a triangulation from a snapshot.
func FromSnapshot(s Snapshot, logger *zap.Logger) (t *Triangulation, err error) {
	t = New(logger)
	defer func() {
		if err != nil {
			t = nil
		}
	}()
	defer t.recover(&err, "replay")
	if err := t.mesh.Replay(s); err != nil {
		return nil, err
	}
	return t, nil
}

// Decode a snapshot written with Snapshot.Write.
func ReadSnapshot(r io.Reader) (Snapshot, error) {
	return advanced.ReadSnapshot(r)
}

// Recover a TriangulateError into *err, logging it. Must be deferred directly.
func (t *Triangulation) recover(err *error, op string) {
	recoveredErr := advanced.HandleTriangulatePanicRecover(recover())
	if recoveredErr != nil {
		t.logger.Error("triangulation failed", zap.String("op", op), zap.Error(recoveredErr))
		*err = recoveredErr
	}
}

// Make duplicate insertion return ErrDuplicatePoint (with the existing
// vertex) instead of succeeding.
func (t *Triangulation) SetRejectDuplicates(reject bool) {
	t.mesh.RejectDuplicates = reject
}

// The underlying mesh, for read access to the half-edge structure. Mutating it
// directly bypasses panic recovery.
func (t *Triangulation) Mesh() *advanced.Mesh {
	return t.mesh
}

func (t *Triangulation) Insert(p Point) (v VertexHandle, err error) {
	defer t.recover(&err, "insert")
	return t.mesh.Insert(p)
}

// Insert the polygon's corners and constrain its sides where possible. See
// advanced.Mesh.InsertPolygon.
func (t *Triangulation) InsertPolygon(poly Polygon) (vertices []VertexHandle, err error) {
	defer t.recover(&err, "insert polygon")
	return t.mesh.InsertPolygon(poly)
}

// Reports whether AddConstraint(a, b) would succeed. An internal failure while
// checking is logged and reported as false.
func (t *Triangulation) CanAddConstraint(a, b VertexHandle) (ok bool) {
	var err error
	defer func() {
		if err != nil {
			ok = false
		}
	}()
	defer t.recover(&err, "can add constraint")
	return t.mesh.CanAddConstraint(a, b)
}

func (t *Triangulation) AddConstraint(a, b VertexHandle) (err error) {
	defer t.recover(&err, "add constraint")
	return t.mesh.AddConstraint(a, b)
}

func (t *Triangulation) Locate(p Point) (loc Location, err error) {
	defer t.recover(&err, "locate")
	return t.mesh.Locate(p), nil
}

func (t *Triangulation) UndirectedEdges() iter.Seq[UndirectedEdge] {
	return t.mesh.UndirectedEdges()
}

func (t *Triangulation) InnerFaces() iter.Seq[FaceHandle] {
	return t.mesh.InnerFaces()
}

func (t *Triangulation) Position(v VertexHandle) (Point, error) {
	if !t.mesh.ValidVertex(v) {
		return Point{}, errors.Wrapf(ErrInvalidHandle, "%v", v)
	}
	return t.mesh.Position(v), nil
}

// Corner positions of a triangle, counterclockwise.
func (t *Triangulation) FacePositions(f FaceHandle) ([3]Point, error) {
	if !t.mesh.ValidFace(f) {
		return [3]Point{}, errors.Wrapf(ErrInvalidHandle, "%v", f)
	}
	return t.mesh.FacePositions(f), nil
}

// The half-edges bounding a triangle, in next order.
func (t *Triangulation) FaceAdjacentEdges(f FaceHandle) ([3]EdgeHandle, error) {
	if !t.mesh.ValidFace(f) {
		return [3]EdgeHandle{}, errors.Wrapf(ErrInvalidHandle, "%v", f)
	}
	return t.mesh.FaceAdjacentEdges(f), nil
}

func (t *Triangulation) IsConstraint(e EdgeHandle) (bool, error) {
	if !t.mesh.ValidEdge(e) {
		return false, errors.Wrapf(ErrInvalidHandle, "%v", e)
	}
	return t.mesh.IsConstraint(e), nil
}

func (t *Triangulation) Snapshot() Snapshot {
	return t.mesh.Snapshot()
}

// How many sides of a triangle are constraint edges.
func (t *Triangulation) ConstraintEdgeCount(f FaceHandle) (int, error) {
	if !t.mesh.ValidFace(f) {
		return 0, errors.Wrapf(ErrInvalidHandle, "%v", f)
	}
	return t.mesh.ConstraintEdgeCount(f), nil
}
