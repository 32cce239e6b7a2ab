package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/osuushi/cdt"
	"github.com/osuushi/cdt/advanced"
	"github.com/osuushi/cdt/internal"
)

// Demo of constrained triangulation. Polygons are read from stdin as newline
// separated points in the form "x y", with each polygon separated by an extra
// newline, or from an svg file. Every polygon side becomes a constraint where
// it can, and the result is rendered to a PNG.
var (
	svgPath    = kingpin.Flag("svg", "Read polygons, polylines and circles from an svg file instead of stdin.").ExistingFile()
	loadPath   = kingpin.Flag("load", "Start from a saved snapshot.").ExistingFile()
	savePath   = kingpin.Flag("save", "Save a snapshot of the result as yaml.").String()
	boxes      = kingpin.Flag("box", "Stamp a constrained square centered at x,y. Repeatable.").Strings()
	boxSize    = kingpin.Flag("box-size", "Half the side length of --box squares.").Default("25").Float64()
	locates    = kingpin.Flag("locate", "Print the location of x,y in the result. Repeatable.").Strings()
	pngPath    = kingpin.Flag("png", "Write the rendered mesh to this file.").String()
	scale      = kingpin.Flag("scale", "Scale factor for rendering.").Default("1").Float64()
	showImgcat = kingpin.Flag("imgcat", "Print the rendered mesh to the terminal.").Bool()
	verbose    = kingpin.Flag("verbose", "Log every insertion and constraint.").Short('v').Bool()
)

func main() {
	kingpin.Parse()

	logger := zap.NewNop()
	if *verbose {
		var err error
		logger, err = zap.NewDevelopment()
		kingpin.FatalIfError(err, "creating logger")
	}
	defer logger.Sync()

	tri, loops, err := build(logger)
	kingpin.FatalIfError(err, "")

	mesh := tri.Mesh()
	fmt.Printf("%d vertices, %d triangles, %d constraint edges\n",
		mesh.NumVertices(), mesh.NumFaces(), mesh.NumConstraints())
	if len(loops) > 0 {
		inside := 0
		for range mesh.FacesInside(loops) {
			inside++
		}
		fmt.Printf("%d triangles inside the input loops\n", inside)
	}

	for _, arg := range *locates {
		p, err := parsePair(arg)
		kingpin.FatalIfError(err, "--locate")
		loc, err := tri.Locate(p)
		kingpin.FatalIfError(err, "locating %v", p)
		fmt.Printf("%v: %v\n", p, loc)
	}

	if *pngPath != "" {
		kingpin.FatalIfError(mesh.SavePNG(*pngPath, *scale), "")
	}
	if *showImgcat {
		kingpin.FatalIfError(mesh.DbgDraw(*scale), "")
	}
	if *savePath != "" {
		kingpin.FatalIfError(save(tri, *savePath), "")
	}
}

// Build the triangulation from the flags and return it along with the closed
// loops that went into it.
func build(logger *zap.Logger) (*cdt.Triangulation, []cdt.Polygon, error) {
	tri := cdt.New(logger)
	if *loadPath != "" {
		f, err := os.Open(*loadPath)
		if err != nil {
			return nil, nil, errors.Wrap(err, "opening snapshot")
		}
		defer f.Close()
		snapshot, err := cdt.ReadSnapshot(f)
		if err != nil {
			return nil, nil, err
		}
		if tri, err = cdt.FromSnapshot(snapshot, logger); err != nil {
			return nil, nil, err
		}
	}

	var polygons []cdt.Polygon
	var points []cdt.Point
	if *svgPath != "" {
		f, err := os.Open(*svgPath)
		if err != nil {
			return nil, nil, errors.Wrap(err, "opening svg")
		}
		defer f.Close()
		shapes, err := internal.ReadSVG(f)
		if err != nil {
			return nil, nil, err
		}
		polygons, points = shapes.Polygons, shapes.Points
	} else if *loadPath == "" && len(*boxes) == 0 {
		var err error
		if polygons, err = readPolygons(os.Stdin); err != nil {
			return nil, nil, err
		}
	}

	for _, arg := range *boxes {
		center, err := parsePair(arg)
		if err != nil {
			return nil, nil, errors.Wrap(err, "--box")
		}
		polygons = append(polygons, advanced.BoxCorners(center, *boxSize))
	}

	for _, poly := range polygons {
		if _, err := tri.InsertPolygon(poly); err != nil {
			return nil, nil, err
		}
	}
	for _, p := range points {
		if _, err := tri.Insert(p); err != nil {
			return nil, nil, err
		}
	}

	var loops []cdt.Polygon
	for _, poly := range polygons {
		if poly.Closed {
			loops = append(loops, poly)
		}
	}
	return tri, loops, nil
}

func save(tri *cdt.Triangulation, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "creating snapshot file")
	}
	if err := tri.Snapshot().Write(f); err != nil {
		f.Close()
		return err
	}
	return errors.Wrap(f.Close(), "writing snapshot file")
}

func readPolygons(in io.Reader) ([]cdt.Polygon, error) {
	polygons := []cdt.Polygon{}
	scanner := bufio.NewScanner(in)
	points := []cdt.Point{}
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		// If it's empty, and we collected any points, this is the end of the polygon
		if line == "" {
			if len(points) > 0 {
				polygons = append(polygons, cdt.Polygon{Points: points, Closed: true})
				points = []cdt.Point{}
			}
			continue
		}

		point, err := parsePoint(line)
		if err != nil {
			return nil, err
		}
		points = append(points, point)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading polygons")
	}

	// Handle trailing polygon if any
	if len(points) > 0 {
		polygons = append(polygons, cdt.Polygon{Points: points, Closed: true})
	}
	return polygons, nil
}

func parsePoint(line string) (cdt.Point, error) {
	parts := strings.Fields(line)
	if len(parts) != 2 {
		return cdt.Point{}, errors.Errorf("expected \"x y\", got %q", line)
	}
	return parseCoordinates(parts[0], parts[1])
}

// Parse "x,y" as used by the flags.
func parsePair(arg string) (cdt.Point, error) {
	x, y, ok := strings.Cut(arg, ",")
	if !ok {
		return cdt.Point{}, errors.Errorf("expected x,y, got %q", arg)
	}
	return parseCoordinates(strings.TrimSpace(x), strings.TrimSpace(y))
}

func parseCoordinates(xs, ys string) (cdt.Point, error) {
	x, err := strconv.ParseFloat(xs, 64)
	if err != nil {
		return cdt.Point{}, errors.Wrapf(err, "invalid x %q", xs)
	}
	y, err := strconv.ParseFloat(ys, 64)
	if err != nil {
		return cdt.Point{}, errors.Wrapf(err, "invalid y %q", ys)
	}
	return cdt.Point{X: x, Y: y}, nil
}
