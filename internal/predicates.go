package internal

// This file contains the two geometric predicates the triangulation depends on.
// Both are first evaluated in plain floating point together with a
// conservative bound on the rounding error of that evaluation (the bounds are
// Shewchuk's "A" bounds). Only when the result falls inside the bound do we
// recompute the determinant exactly with math/big. The answers are therefore
// exact, which makes them consistent: the same configuration of points always
// gets the same classification, whatever order the caller asks in.
//
// Nothing outside this file should ever compare a determinant against zero.

import (
	"math"
	"math/big"
)

type Direction int

const (
	Clockwise        Direction = -1
	Collinear        Direction = 0
	CounterClockwise Direction = 1
)

func (d Direction) String() string {
	switch d {
	case Clockwise:
		return "Clockwise"
	case CounterClockwise:
		return "CounterClockwise"
	}
	return "Collinear"
}

type CircleSide int

const (
	Outside  CircleSide = -1
	OnCircle CircleSide = 0
	Inside   CircleSide = 1
)

func (s CircleSide) String() string {
	switch s {
	case Outside:
		return "Outside"
	case Inside:
		return "Inside"
	}
	return "OnCircle"
}

const (
	// Half an ulp of one.
	epsilon = 1.0 / (1 << 53)

	orientationErrBound = (3 + 16*epsilon) * epsilon
	inCircleErrBound    = (10 + 96*epsilon) * epsilon
)

// Orientation reports whether c lies to the left of the directed line a->b
// (CounterClockwise), to the right (Clockwise), or exactly on it (Collinear).
func Orientation(a, b, c Point) Direction {
	detLeft := (b.X - a.X) * (c.Y - a.Y)
	detRight := (b.Y - a.Y) * (c.X - a.X)
	det := detLeft - detRight
	errBound := orientationErrBound * (math.Abs(detLeft) + math.Abs(detRight))
	if det > errBound {
		return CounterClockwise
	}
	if -det > errBound {
		return Clockwise
	}
	return exactOrientation(a, b, c)
}

// InCircle reports where d lies relative to the circle through a, b and c. The
// first three points must be counterclockwise; for a clockwise triangle the
// Inside and Outside answers swap.
func InCircle(a, b, c, d Point) CircleSide {
	adx, ady := a.X-d.X, a.Y-d.Y
	bdx, bdy := b.X-d.X, b.Y-d.Y
	cdx, cdy := c.X-d.X, c.Y-d.Y

	bdxcdy, cdxbdy := bdx*cdy, cdx*bdy
	cdxady, adxcdy := cdx*ady, adx*cdy
	adxbdy, bdxady := adx*bdy, bdx*ady
	alift := adx*adx + ady*ady
	blift := bdx*bdx + bdy*bdy
	clift := cdx*cdx + cdy*cdy

	det := alift*(bdxcdy-cdxbdy) + blift*(cdxady-adxcdy) + clift*(adxbdy-bdxady)
	permanent := (math.Abs(bdxcdy)+math.Abs(cdxbdy))*alift +
		(math.Abs(cdxady)+math.Abs(adxcdy))*blift +
		(math.Abs(adxbdy)+math.Abs(bdxady))*clift
	errBound := inCircleErrBound * permanent
	if det > errBound {
		return Inside
	}
	if -det > errBound {
		return Outside
	}
	return exactInCircle(a, b, c, d)
}

// SameDirection reports whether p lies on the same side of a as b does, given
// that a, b and p are collinear. The sign of a float difference is always
// exact, so no fallback is needed.
func SameDirection(a, b, p Point) bool {
	if a.X != b.X {
		return (p.X > a.X) == (b.X > a.X) && p.X != a.X
	}
	return (p.Y > a.Y) == (b.Y > a.Y) && p.Y != a.Y
}

// newBigFloat constructs a new big.Float with maximum precision, so that the
// sums and products below are never rounded.
func newBigFloat() *big.Float { return new(big.Float).SetPrec(big.MaxPrec) }

func bigSub(x, y float64) *big.Float {
	return newBigFloat().Sub(newBigFloat().SetFloat64(x), newBigFloat().SetFloat64(y))
}

func bigMul(x, y *big.Float) *big.Float {
	return newBigFloat().Mul(x, y)
}

func exactOrientation(a, b, c Point) Direction {
	abx, aby := bigSub(b.X, a.X), bigSub(b.Y, a.Y)
	acx, acy := bigSub(c.X, a.X), bigSub(c.Y, a.Y)
	det := newBigFloat().Sub(bigMul(abx, acy), bigMul(aby, acx))
	return Direction(det.Sign())
}

func exactInCircle(a, b, c, d Point) CircleSide {
	adx, ady := bigSub(a.X, d.X), bigSub(a.Y, d.Y)
	bdx, bdy := bigSub(b.X, d.X), bigSub(b.Y, d.Y)
	cdx, cdy := bigSub(c.X, d.X), bigSub(c.Y, d.Y)

	lift := func(x, y *big.Float) *big.Float {
		return newBigFloat().Add(bigMul(x, x), bigMul(y, y))
	}
	cross := func(x1, y1, x2, y2 *big.Float) *big.Float {
		return newBigFloat().Sub(bigMul(x1, y2), bigMul(x2, y1))
	}

	det := bigMul(lift(adx, ady), cross(bdx, bdy, cdx, cdy))
	det.Add(det, bigMul(lift(bdx, bdy), cross(cdx, cdy, adx, ady)))
	det.Add(det, bigMul(lift(cdx, cdy), cross(adx, ady, bdx, bdy)))
	return CircleSide(det.Sign())
}
