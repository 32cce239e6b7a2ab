package advanced

import "github.com/osuushi/cdt/internal"

// All rewiring of the half-edge structure happens in this file. Each operation
// leaves the mesh fully consistent (twins, next/prev cycles, faces, and every
// vertex's outgoing edge) before it returns, and each returns the edges whose
// Delaunay status may have changed.

func (m *Mesh) setNext(a, b EdgeHandle) {
	m.edges[a].next = b
	m.edges[b].prev = a
}

// Make e0, e1, e2 the boundary cycle of f.
func (m *Mesh) link(f FaceHandle, e0, e1, e2 EdgeHandle) {
	m.setNext(e0, e1)
	m.setNext(e1, e2)
	m.setNext(e2, e0)
	m.edges[e0].face = f
	m.edges[e1].face = f
	m.edges[e2].face = f
	m.faces[f].edge = e0
}

// Create the first triangle. The vertices must be counterclockwise.
func (m *Mesh) buildFirstTriangle(a, b, c VertexHandle) FaceHandle {
	ab := m.newEdgePair(a, b)
	bc := m.newEdgePair(b, c)
	ca := m.newEdgePair(c, a)
	f := m.newFace()
	m.link(f, ab, bc, ca)
	// The outer face runs the other way: b->a, a->c, c->b
	m.link(OuterFace, ab.Twin(), ca.Twin(), bc.Twin())
	m.vertices[a].out = ab
	m.vertices[b].out = bc
	m.vertices[c].out = ca
	return f
}

// Split triangle f into three by connecting v, which must lie strictly inside
// it, to each corner.
func (m *Mesh) splitFace(f FaceHandle, v VertexHandle) []EdgeHandle {
	e0 := m.faces[f].edge
	e1 := m.edges[e0].next
	e2 := m.edges[e1].next
	a, b, c := m.Origin(e0), m.Origin(e1), m.Origin(e2)

	va := m.newEdgePair(v, a)
	vb := m.newEdgePair(v, b)
	vc := m.newEdgePair(v, c)
	f1 := m.newFace()
	f2 := m.newFace()

	m.link(f, e0, vb.Twin(), va)  // a->b, b->v, v->a
	m.link(f1, e1, vc.Twin(), vb) // b->c, c->v, v->b
	m.link(f2, e2, va.Twin(), vc) // c->a, a->v, v->c
	m.vertices[v].out = va
	m.hint = f
	return []EdgeHandle{e0, e1, e2}
}

// Split the edge e at v, which must lie strictly between its endpoints. The
// one or two triangles beside the edge each become two. Both halves of the
// split edge keep its constraint flag.
func (m *Mesh) splitEdge(e EdgeHandle, v VertexHandle) []EdgeHandle {
	if m.edges[e].face == OuterFace {
		e = e.Twin()
	}
	t := e.Twin()
	b := m.Origin(t)
	e1 := m.edges[e].next
	e2 := m.edges[e1].next
	c := m.Origin(e2)
	f := m.edges[e].face
	g := m.edges[t].face
	hullPrev := m.edges[t].prev

	// e stays a->v, t becomes v->a, and n takes over v->b
	n := m.newEdgePair(v, b)
	m.fixed[n.Undirected()] = m.fixed[e.Undirected()]
	m.edges[t].origin = v
	if m.vertices[b].out == t {
		m.vertices[b].out = n.Twin()
	}

	vc := m.newEdgePair(v, c)
	f2 := m.newFace()
	m.link(f, e, vc, e2)         // a->v, v->c, c->a
	m.link(f2, n, e1, vc.Twin()) // v->b, b->c, c->v
	m.vertices[v].out = n
	m.hint = f

	if g == OuterFace {
		// The hull ran ... -> b->a -> ...; it now runs ... -> b->v -> v->a -> ...
		m.setNext(hullPrev, n.Twin())
		m.setNext(n.Twin(), t)
		m.edges[n.Twin()].face = OuterFace
		m.faces[OuterFace].edge = t
		return []EdgeHandle{e1, e2}
	}

	t1 := m.edges[t].next
	t2 := m.edges[t1].next
	d := m.Origin(t2)
	vd := m.newEdgePair(v, d)
	g2 := m.newFace()
	m.link(g, t, t1, vd.Twin())  // v->a, a->d, d->v
	m.link(g2, n.Twin(), vd, t2) // b->v, v->d, d->b
	return []EdgeHandle{e1, e2, t1, t2}
}

// Replace the diagonal e of the quadrilateral formed by its two triangles with
// the other diagonal. The handles e and e.Twin() survive and now describe the
// new diagonal, as do the two face handles.
//
// The flip is refused (and nothing changes) if e is a constraint edge, lies on
// the hull, or if the quadrilateral is not strictly convex.
func (m *Mesh) flip(e EdgeHandle) bool {
	if m.fixed[e.Undirected()] {
		return false
	}
	t := e.Twin()
	f, g := m.edges[e].face, m.edges[t].face
	if f == OuterFace || g == OuterFace {
		return false
	}

	e1 := m.edges[e].next  // b->c
	e2 := m.edges[e1].next // c->a
	t1 := m.edges[t].next  // a->d
	t2 := m.edges[t1].next // d->b
	a, b := m.Origin(e), m.Origin(t)
	c, d := m.Origin(e2), m.Origin(t2)
	pa, pb, pc, pd := m.Position(a), m.Position(b), m.Position(c), m.Position(d)
	if internal.Orientation(pd, pc, pa) != internal.CounterClockwise ||
		internal.Orientation(pc, pd, pb) != internal.CounterClockwise {
		return false
	}

	m.edges[e].origin = d
	m.edges[t].origin = c
	m.link(f, e, e2, t1) // d->c, c->a, a->d
	m.link(g, t, t2, e1) // c->d, d->b, b->c
	m.vertices[a].out = t1
	m.vertices[b].out = e1
	return true
}

// Connect v, which lies outside the hull, to every hull edge it can see. h is
// a hull half-edge (on OuterFace) that v lies strictly outside of.
func (m *Mesh) extendHull(h EdgeHandle, v VertexHandle) []EdgeHandle {
	p := m.Position(v)
	visible := func(e EdgeHandle) bool {
		return internal.Orientation(m.Position(m.Origin(e)), m.Position(m.Dest(e)), p) == internal.CounterClockwise
	}
	if !visible(h) {
		h = NoEdge
		for e := range m.HullEdges() {
			if visible(e) {
				h = e
				break
			}
		}
		if h == NoEdge {
			fatalf("no hull edge is visible from %v", p)
		}
	}

	// Grow the visible chain in both directions around the hull
	first, last := h, h
	for m.edges[first].prev != last && visible(m.edges[first].prev) {
		first = m.edges[first].prev
	}
	for m.edges[last].next != first && visible(m.edges[last].next) {
		last = m.edges[last].next
	}
	before, after := m.edges[first].prev, m.edges[last].next
	if before == last {
		fatalf("every hull edge is visible from %v", p)
	}

	var chain []EdgeHandle
	for e := first; ; e = m.edges[e].next {
		chain = append(chain, e)
		if e == last {
			break
		}
	}

	firstSpoke := m.newEdgePair(m.Origin(first), v)
	spoke := firstSpoke
	var created FaceHandle
	for _, e := range chain {
		nextSpoke := m.newEdgePair(m.Dest(e), v)
		created = m.newFace()
		m.link(created, e, nextSpoke, spoke.Twin()) // o->d, d->v, v->o
		spoke = nextSpoke
	}

	// The hull now runs before -> v0->v -> v->vk -> after
	lastSpoke := spoke.Twin()
	m.setNext(before, firstSpoke)
	m.setNext(firstSpoke, lastSpoke)
	m.setNext(lastSpoke, after)
	m.edges[firstSpoke].face = OuterFace
	m.edges[lastSpoke].face = OuterFace
	m.faces[OuterFace].edge = firstSpoke
	m.vertices[v].out = lastSpoke
	m.hint = created
	return chain
}
