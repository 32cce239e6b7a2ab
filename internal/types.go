package internal

import (
	"fmt"
	"math"
)

// Points are compared by exact coordinate equality. Two inserted points are the
// same vertex only if they are bit-for-bit equal (up to the sign of zero), since
// any tolerance here would be inconsistent with the exact predicates.
type Point struct {
	X float64
	Y float64
}

// False if either coordinate is NaN or infinite.
func (p Point) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

type Segment struct {
	Start Point
	End   Point
}

// Reports whether the two segments cross at a single point interior to both.
// Touching at an endpoint, or overlapping collinearly, does not count.
func (s Segment) ProperlyCrosses(other Segment) bool {
	o1 := Orientation(s.Start, s.End, other.Start)
	o2 := Orientation(s.Start, s.End, other.End)
	if o1 == Collinear || o2 == Collinear || o1 == o2 {
		return false
	}
	o3 := Orientation(other.Start, other.End, s.Start)
	o4 := Orientation(other.Start, other.End, s.End)
	return o3 != Collinear && o4 != Collinear && o3 != o4
}

type Triangle struct {
	A, B, C Point
}

// Twice the area is the cross product; halve it. Positive for CCW triangles.
func (t Triangle) SignedArea() float64 {
	return ((t.B.X-t.A.X)*(t.C.Y-t.A.Y) - (t.B.Y-t.A.Y)*(t.C.X-t.A.X)) / 2
}

func (t Triangle) String() string {
	return fmt.Sprintf("Triangle{%v, %v, %v}", t.A, t.B, t.C)
}

// A Polygon is an ordered loop of points. When Closed is false it is an open
// chain (a polyline), and the last point does not connect back to the first.
type Polygon struct {
	Points []Point
	Closed bool
}

// Shoelace formula. Positive for counterclockwise loops.
func (poly Polygon) SignedArea() float64 {
	var area float64
	for i, p := range poly.Points {
		q := poly.Points[CircularIndex(i+1, len(poly.Points))]
		area += p.X*q.Y - q.X*p.Y
	}
	return area / 2
}

func (poly Polygon) IsCCW() bool {
	return poly.SignedArea() > 0
}

func (poly Polygon) Reverse() Polygon {
	newPoly := Polygon{Closed: poly.Closed}
	for i := len(poly.Points) - 1; i >= 0; i-- {
		newPoly.Points = append(newPoly.Points, poly.Points[i])
	}
	return newPoly
}

// Even-odd rule point-in-polygon. Points exactly on the boundary may land on
// either side.
func (poly Polygon) ContainsPoint(p Point) bool {
	return poly.CrossingCount(p)%2 == 1
}

// How many sides cross the ray running from p in the +X direction.
func (poly Polygon) CrossingCount(p Point) int {
	crossingCount := 0
	for i, vertex := range poly.Points {
		nextVertex := poly.Points[CircularIndex(i+1, len(poly.Points))]
		switch {
		case vertex.Y <= p.Y && nextVertex.Y > p.Y:
			if Orientation(vertex, nextVertex, p) == CounterClockwise {
				crossingCount++
			}
		case nextVertex.Y <= p.Y && vertex.Y > p.Y:
			if Orientation(vertex, nextVertex, p) == Clockwise {
				crossingCount++
			}
		}
	}
	return crossingCount
}

// A set of loops read together, where loops inside other loops are holes.
type PolygonList []Polygon

// Even-odd rule across every loop in the list.
func (list PolygonList) ContainsPoint(p Point) bool {
	crossingCount := 0
	for _, poly := range list {
		crossingCount += poly.CrossingCount(p)
	}
	return crossingCount%2 == 1
}

// The pairs of consecutive points that form the polygon's sides. For an open
// chain the closing side is omitted.
func (poly Polygon) Sides() []Segment {
	n := len(poly.Points)
	if n < 2 {
		return nil
	}
	count := n
	if !poly.Closed {
		count = n - 1
	}
	sides := make([]Segment, 0, count)
	for i := 0; i < count; i++ {
		sides = append(sides, Segment{poly.Points[i], poly.Points[CircularIndex(i+1, n)]})
	}
	return sides
}

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}
