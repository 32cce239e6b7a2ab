package advanced

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/osuushi/cdt/internal"
)

func TestLocateEmpty(t *testing.T) {
	m := NewMesh()
	loc := m.Locate(Point{X: 1, Y: 2})
	assert.Equal(t, NoTriangulation, loc.Kind)
	assert.Equal(t, NoVertex, loc.Vertex)
	assert.Equal(t, NoEdge, loc.Edge)
	assert.Equal(t, NoFace, loc.Face)
	assert.Equal(t, "NoTriangulation", loc.String())
}

func TestLocateCollinearVertices(t *testing.T) {
	m := NewMesh()
	v := insertAll(t, m, []Point{{X: 0, Y: 0}, {X: 1, Y: 0}})
	assert.Equal(t, NoTriangulation, m.Locate(Point{X: 1, Y: 0}).Kind)

	v = append(v, insertAll(t, m, []Point{{X: 2, Y: 0}})...)
	require.False(t, m.IsTriangulated())
	loc := m.Locate(Point{X: 1, Y: 0})
	assert.Equal(t, OnVertex, loc.Kind)
	assert.Equal(t, v[1], loc.Vertex)
	assert.Equal(t, "OnVertex(VertexHandle(1))", loc.String())
	assert.Equal(t, NoTriangulation, m.Locate(Point{X: 0.5, Y: 0}).Kind)
}

func TestLocateEveryVertex(t *testing.T) {
	m := NewMesh()
	v := insertAll(t, m, RandomCloud(3, 300, 100))
	for _, u := range v {
		loc := m.Locate(m.Position(u))
		require.Equal(t, OnVertex, loc.Kind)
		assert.Equal(t, u, loc.Vertex)
	}
}

func TestLocateEdgeMidpoints(t *testing.T) {
	// Grid midpoints are exactly representable, so they lie exactly on their edges
	m := NewMesh()
	insertAll(t, m, Grid(6))
	for edge := range m.UndirectedEdges() {
		a, b := edge.Positions[0], edge.Positions[1]
		mid := Point{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
		loc := m.Locate(mid)
		require.Equal(t, OnEdge, loc.Kind, "midpoint of %v-%v", a, b)
		assert.ElementsMatch(t, []Point{a, b}, m.EdgePositions(loc.Edge))
		assert.NotEqual(t, OuterFace, m.Face(loc.Edge))
	}
}

func TestLocateAgreesWithScan(t *testing.T) {
	m := NewMesh()
	insertAll(t, m, RandomCloud(4, 250, 100))
	v := insertAll(t, m, []Point{{X: 10, Y: 10}, {X: 90, Y: 20}, {X: 50, Y: 95}})
	require.NoError(t, m.AddConstraint(v[0], v[1]))
	require.NoError(t, m.AddConstraint(v[1], v[2]))

	rng := rand.New(rand.NewSource(99))
	for i := 0; i < 500; i++ {
		p := Point{X: rng.Float64()*140 - 20, Y: rng.Float64()*140 - 20}
		walked := m.Locate(p)
		scanned := m.locateByScan(p)
		require.Equal(t, scanned.Kind, walked.Kind, "%v", p)

		switch walked.Kind {
		case OnFace:
			assert.Equal(t, scanned.Face, walked.Face)
			for _, e := range m.FaceAdjacentEdges(walked.Face) {
				assert.Equal(t, internal.CounterClockwise, m.orientation(e, p))
			}
		case OutsideConvexHull:
			assert.Equal(t, OuterFace, m.Face(walked.Edge))
			assert.Equal(t, internal.CounterClockwise, m.orientation(walked.Edge, p))
		default:
			t.Fatalf("unexpected %v for random point %v", walked, p)
		}
	}
}

func TestLocateFromAnyFace(t *testing.T) {
	m := NewMesh()
	insertAll(t, m, RandomCloud(8, 60, 10))
	target := Point{X: 5.1234, Y: 4.9876}
	expected := m.Locate(target)
	for f := range m.InnerFaces() {
		assert.Equal(t, expected, m.LocateFrom(target, f))
	}
	// Invalid starts fall back to some face
	assert.Equal(t, expected, m.LocateFrom(target, NoFace))
	assert.Equal(t, expected, m.LocateFrom(target, OuterFace))
}

func TestLocateDoesNotMutate(t *testing.T) {
	m := NewMesh()
	insertAll(t, m, RandomCloud(9, 40, 10))
	before := m.Dump()
	for _, p := range RandomCloud(10, 40, 12) {
		m.Locate(p)
	}
	assert.Equal(t, before, m.Dump())
}

// A walk that runs out of steps scans every face instead, and says so.
func TestLocateFallsBackToScan(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	m := NewMesh()
	insertAll(t, m, []Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}})
	insertAll(t, m, RandomCloud(12, 30, 10))
	m.Logger = zap.New(core)

	p := Point{X: 3.3, Y: 6.6}
	expected := m.Locate(p)
	require.Equal(t, OnFace, expected.Kind)
	assert.Zero(t, logs.Len())

	start := m.Locate(Point{X: 6.7, Y: 3.1})
	require.Equal(t, OnFace, start.Kind)
	require.NotEqual(t, expected.Face, start.Face)

	m.walkBudget = 1
	assert.Equal(t, expected, m.LocateFrom(p, start.Face))
	assert.Equal(t, 1, logs.FilterMessage("location walk exceeded its step budget, scanning all faces").Len())
}

func TestWalkRandIsDeterministic(t *testing.T) {
	a, b := walkRand(0x9e3779b9), walkRand(0x9e3779b9)
	seen := map[int]bool{}
	for i := 0; i < 100; i++ {
		x := a.next()
		assert.Equal(t, x, b.next())
		assert.True(t, x >= 0 && x < 3)
		seen[x] = true
	}
	assert.Len(t, seen, 3)
}
