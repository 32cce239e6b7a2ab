package advanced

import (
	"fmt"
	"strings"

	"github.com/logrusorgru/aurora"

	"github.com/osuushi/cdt/dbg"
)

// Debugging helpers.

func (m *Mesh) String() string {
	return fmt.Sprintf("Mesh{vertices: %d, edges: %d, faces: %d, constraints: %d, pending: %d}",
		m.NumVertices(), m.NumUndirectedEdges(), m.NumFaces(), m.NumConstraints(), len(m.pending))
}

// Constraint edges are magenta, hull edges cyan, and the rest green.
func (m *Mesh) EdgeDbgName(e EdgeHandle) string {
	name := dbg.Name(e)
	switch {
	case m.IsConstraint(e):
		return aurora.Magenta(name).String()
	case m.IsHullEdge(e):
		return aurora.Cyan(name).String()
	}
	return aurora.Green(name).String()
}

func (m *Mesh) EdgeString(e EdgeHandle) string {
	return fmt.Sprintf("Edge %s %v -> %v <twin: %s, next: %s, prev: %s, face: %s>",
		m.EdgeDbgName(e),
		m.Position(m.Origin(e)),
		m.Position(m.Dest(e)),
		dbg.Name(e.Twin()),
		dbg.Name(m.edges[e].next),
		dbg.Name(m.edges[e].prev),
		dbg.Name(m.edges[e].face),
	)
}

// One line per half-edge.
func (m *Mesh) Dump() string {
	var parts []string
	parts = append(parts, m.String())
	for e := range m.HalfEdges() {
		parts = append(parts, m.EdgeString(e))
	}
	return strings.Join(parts, "\n")
}
