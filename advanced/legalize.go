package advanced

import "github.com/osuushi/cdt/internal"

// Worklist of edges whose Delaunay status needs rechecking.
type EdgeStack []EdgeHandle

func (s *EdgeStack) Push(edges ...EdgeHandle) {
	*s = append(*s, edges...)
}

func (s *EdgeStack) Pop() EdgeHandle {
	if len(*s) == 0 {
		return NoEdge
	}
	e := (*s)[len(*s)-1]
	*s = (*s)[:len(*s)-1]
	return e
}

func (s *EdgeStack) Peek() EdgeHandle {
	if len(*s) == 0 {
		return NoEdge
	}
	return (*s)[len(*s)-1]
}

func (s *EdgeStack) Empty() bool {
	return len(*s) == 0
}

// An edge is illegal if it is not a constraint, has a triangle on both sides,
// and the far vertex of one triangle lies strictly inside the circumcircle of
// the other. Cocircular quads are legal either way.
func (m *Mesh) isIllegal(e EdgeHandle) bool {
	if m.fixed[e.Undirected()] || m.IsHullEdge(e) {
		return false
	}
	a, b := m.Origin(e), m.Dest(e)
	c, d := m.apex(e), m.apex(e.Twin())
	return internal.InCircle(m.Position(a), m.Position(b), m.Position(c), m.Position(d)) == internal.Inside
}

// Flip illegal edges until none of the given edges, nor any edge uncovered by
// a flip, is illegal. Returns the number of flips.
func (m *Mesh) legalize(edges []EdgeHandle) int {
	var stack EdgeStack
	stack.Push(edges...)
	// Lawson flipping terminates after at most quadratically many flips. Past
	// that, the predicates are lying to us.
	limit := len(m.edges)*len(m.edges) + 16
	flips := 0
	for !stack.Empty() {
		e := stack.Pop()
		if !m.isIllegal(e) {
			continue
		}
		e1 := m.edges[e].next
		e2 := m.edges[e1].next
		t1 := m.edges[e.Twin()].next
		t2 := m.edges[t1].next
		if !m.flip(e) {
			// An illegal edge always has a convex quad, so this is unreachable
			// with consistent predicates.
			fatalf("illegal edge %v could not be flipped", e)
		}
		flips++
		if flips > limit {
			fatalf("legalization did not terminate after %d flips", flips)
		}
		stack.Push(e1, e2, t1, t2)
	}
	return flips
}
