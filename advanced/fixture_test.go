package advanced

import (
	"embed"
	"log"
	"math"
	"math/rand"

	"github.com/osuushi/cdt/internal"
)

// Fixtures are available by name in the fixtures/ directory, sans extension.
// Polygons and polylines become constraint loops and chains, and circles
// become lone points.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) *internal.SVGShapes {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}
	defer fixture.Close()

	shapes, err := internal.ReadSVG(fixture)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}
	return shapes
}

// Build a mesh from fixture shapes, constraining every side that can be
// constrained.
func meshFromShapes(shapes *internal.SVGShapes) *Mesh {
	m := NewMesh()
	for _, poly := range shapes.Polygons {
		if _, err := m.InsertPolygon(poly); err != nil {
			log.Fatalf("Failed to insert %v: %v", poly, err)
		}
	}
	for _, p := range shapes.Points {
		if _, err := m.Insert(p); err != nil {
			log.Fatalf("Failed to insert %v: %v", p, err)
		}
	}
	return m
}

// Some ad hoc code specified fixtures

func makeStar(x, y, outerRadius, innerRadius float64) Polygon {
	var points []Point
	for i := 0; i < 10; i++ {
		angle := 2 * math.Pi * float64(i) / 10
		r := outerRadius
		if i%2 == 1 {
			r = innerRadius
		}
		points = append(points, Point{X: x + r*math.Cos(angle), Y: y + r*math.Sin(angle)})
	}
	return Polygon{Points: points, Closed: true}
}

func SimpleStar() []Polygon {
	return []Polygon{makeStar(0, 0, 5, 2)}
}

func SquareWithHole() []Polygon {
	return []Polygon{
		{Points: []Point{{X: -5, Y: -5}, {X: 5, Y: -5}, {X: 5, Y: 5}, {X: -5, Y: 5}}, Closed: true},
		{Points: []Point{{X: -2, Y: -2}, {X: -2, Y: 2}, {X: 2, Y: 2}, {X: 2, Y: -2}}, Closed: true},
	}
}

func StarOutline() []Polygon {
	return []Polygon{
		makeStar(0, 0, 10, 5),
		makeStar(0, 0, 8, 3).Reverse(),
	}
}

func StarStripes() []Polygon {
	// Multiple inset stars
	var list []Polygon
	const outerRadius = 10
	const n = 20
	var scale float64 = 1
	const indentScale = 0.7
	const gapScale = 0.9

	for i := 0; i < n; i++ {
		r := outerRadius * scale
		poly := makeStar(0, 0, r, r*indentScale)
		if i%2 == 1 {
			poly = poly.Reverse()
		}
		list = append(list, poly)
		scale *= gapScale
	}
	return list
}

func MultiLayeredHoles() []Polygon {
	return []Polygon{
		// Outer star
		makeStar(0, 0, 10, 7),
		// Top hole
		makeStar(1.5, 5, 3, 2).Reverse(),
		// Top inner
		makeStar(1.5, 5, 2, 1),
		// Bottom hole
		makeStar(1.8, -5, 3, 2).Reverse(),
		// Bottom inner
		makeStar(1.8, -5, 2, 1),
		// Left hole
		makeStar(-3, 0, 4, 2).Reverse(),
		// Left inner
		makeStar(-3, 0, 3, 1),
	}
}

// A fixed-seed cloud of n points in a size by size square.
func RandomCloud(seed int64, n int, size float64) []Point {
	rng := rand.New(rand.NewSource(seed))
	points := make([]Point, n)
	for i := range points {
		points[i] = Point{X: rng.Float64() * size, Y: rng.Float64() * size}
	}
	return points
}

// An n by n grid with unit spacing. Full of cocircular quads.
func Grid(n int) []Point {
	var points []Point
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			points = append(points, Point{X: float64(x), Y: float64(y)})
		}
	}
	return points
}
