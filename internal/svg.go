package internal

import (
	"io"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/pkg/errors"
)

// This is not a full (or even correct) svg reader. It pulls out the shapes a
// constrained triangulation can use:
//
//	<polygon points="...">   a closed constraint loop
//	<polyline points="...">  an open constraint chain
//	<circle cx=".." cy="..">  a lone point with no constraints
//
// Coordinates are taken as-is, so they are in svg user space (y grows down).
// Transforms and path data are ignored.
type SVGShapes struct {
	Polygons []Polygon
	Points   []Point
}

func ReadSVG(r io.Reader) (*SVGShapes, error) {
	rootEl, err := svgparser.Parse(r, true)
	if err != nil {
		return nil, errors.Wrap(err, "parsing svg")
	}

	shapes := &SVGShapes{}
	for _, kind := range []string{"polygon", "polyline"} {
		for _, el := range rootEl.FindAll(kind) {
			points, err := ParsePointList(el.Attributes["points"])
			if err != nil {
				return nil, errors.Wrapf(err, "in <%s>", kind)
			}
			if len(points) == 0 {
				continue
			}
			shapes.Polygons = append(shapes.Polygons, Polygon{Points: points, Closed: kind == "polygon"})
		}
	}

	for _, el := range rootEl.FindAll("circle") {
		x, err := strconv.ParseFloat(el.Attributes["cx"], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid cx %q", el.Attributes["cx"])
		}
		y, err := strconv.ParseFloat(el.Attributes["cy"], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid cy %q", el.Attributes["cy"])
		}
		shapes.Points = append(shapes.Points, Point{x, y})
	}
	return shapes, nil
}

// Parse an svg points attribute. Pairs may be separated by commas, whitespace,
// or both ("1,2 3,4" and "1 2 3 4" are the same list).
func ParsePointList(s string) ([]Point, error) {
	fields := strings.Fields(strings.ReplaceAll(s, ",", " "))
	if len(fields)%2 != 0 {
		return nil, errors.Errorf("odd number of coordinates in %q", s)
	}
	points := make([]Point, 0, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		x, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid x value %q", fields[i])
		}
		y, err := strconv.ParseFloat(fields[i+1], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid y value %q", fields[i+1])
		}
		points = append(points, Point{x, y})
	}
	return points, nil
}
