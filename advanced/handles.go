package advanced

import (
	"fmt"

	"github.com/osuushi/cdt/internal"
)

type Point = internal.Point
type Triangle = internal.Triangle
type Polygon = internal.Polygon

// Handles are indices into the mesh's arenas. Nothing is ever deleted, so a
// handle stays valid (and keeps referring to the same element) for the life of
// the mesh. Faces keep their handle across flips, but the triangle they
// describe changes.
type VertexHandle int
type EdgeHandle int
type FaceHandle int

const (
	NoVertex VertexHandle = -1
	NoEdge   EdgeHandle   = -1
	NoFace   FaceHandle   = -1

	// The single unbounded face outside the convex hull. Hull half-edges point
	// at it, and its boundary cycle runs clockwise around the hull.
	OuterFace FaceHandle = 0
)

// Half-edges are allocated in twin pairs, so the twin is always the other
// member of the pair, and the pair index identifies the undirected edge.
func (e EdgeHandle) Twin() EdgeHandle {
	return e ^ 1
}

func (e EdgeHandle) Undirected() int {
	return int(e) >> 1
}

func (v VertexHandle) String() string { return fmt.Sprintf("VertexHandle(%d)", int(v)) }
func (e EdgeHandle) String() string   { return fmt.Sprintf("EdgeHandle(%d)", int(e)) }
func (f FaceHandle) String() string   { return fmt.Sprintf("FaceHandle(%d)", int(f)) }

type LocationKind int

const (
	NoTriangulation LocationKind = iota
	OnVertex
	OnEdge
	OnFace
	OutsideConvexHull
)

func (k LocationKind) String() string {
	switch k {
	case OnVertex:
		return "OnVertex"
	case OnEdge:
		return "OnEdge"
	case OnFace:
		return "OnFace"
	case OutsideConvexHull:
		return "OutsideConvexHull"
	}
	return "NoTriangulation"
}

// The result of a point location query. Only the field matching Kind is set;
// the others hold their No* value.
//
//	OnVertex           Vertex is the vertex at the query point
//	OnEdge             Edge is a half-edge whose segment contains the point; its
//	                   face is always a triangle
//	OnFace             Face is the triangle strictly containing the point
//	OutsideConvexHull  Edge is a hull half-edge (its face is OuterFace) that the
//	                   point lies strictly outside of
type Location struct {
	Kind   LocationKind
	Vertex VertexHandle
	Edge   EdgeHandle
	Face   FaceHandle
}

func noLocation() Location {
	return Location{Kind: NoTriangulation, Vertex: NoVertex, Edge: NoEdge, Face: NoFace}
}

func (l Location) String() string {
	switch l.Kind {
	case OnVertex:
		return fmt.Sprintf("OnVertex(%v)", l.Vertex)
	case OnEdge:
		return fmt.Sprintf("OnEdge(%v)", l.Edge)
	case OnFace:
		return fmt.Sprintf("OnFace(%v)", l.Face)
	case OutsideConvexHull:
		return fmt.Sprintf("OutsideConvexHull(%v)", l.Edge)
	}
	return "NoTriangulation"
}
