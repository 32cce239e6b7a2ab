package advanced

import (
	"math"
	"os"
	"path/filepath"

	"github.com/fogleman/gg"
	"github.com/golang/geo/r2"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/pkg/errors"
)

// Padding around the mesh so hull edges aren't clipped
const drawPadding = 20

// The bounding rectangle of all vertices, pending ones included. Empty for an
// empty mesh.
func (m *Mesh) Bounds() r2.Rect {
	bounds := r2.EmptyRect()
	for _, v := range m.vertices {
		bounds = bounds.AddPoint(r2.Point{X: v.pos.X, Y: v.pos.Y})
	}
	return bounds
}

// Render the mesh into a new image, scaled by scale and fitted to its bounds.
// Coordinates are drawn as screen coordinates, so y grows downward.
func (m *Mesh) Render(scale float64) *gg.Context {
	bounds := m.Bounds()
	if bounds.IsEmpty() {
		bounds = r2.RectFromPoints(r2.Point{})
	}
	width := int(math.Ceil(scale*bounds.X.Length())) + drawPadding*2
	height := int(math.Ceil(scale*bounds.Y.Length())) + drawPadding*2

	c := gg.NewContext(width, height)
	c.SetRGB(1, 1, 1)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	c.Translate(drawPadding, drawPadding)
	c.Scale(scale, scale)
	c.Translate(-bounds.X.Lo, -bounds.Y.Lo)
	m.Draw(c)
	return c
}

// Draw the mesh into c using c's current transform. Triangles with at least two
// constraint sides are shaded, constraint edges are thick and purple, and the
// remaining edges are thin and green.
func (m *Mesh) Draw(c *gg.Context) {
	for f := range m.InnerFaces() {
		if m.ConstraintEdgeCount(f) < 2 {
			continue
		}
		corners := m.FacePositions(f)
		c.MoveTo(corners[0].X, corners[0].Y)
		c.LineTo(corners[1].X, corners[1].Y)
		c.LineTo(corners[2].X, corners[2].Y)
		c.ClosePath()
		c.SetRGBA(0.5, 0, 0.5, 0.5)
		c.Fill()
	}

	for edge := range m.UndirectedEdges() {
		a, b := edge.Positions[0], edge.Positions[1]
		c.DrawLine(a.X, a.Y, b.X, b.Y)
		if edge.Constraint {
			c.SetRGB(0.5, 0, 0.5)
			c.SetLineWidth(2)
		} else {
			c.SetRGB(0, 0.6, 0)
			c.SetLineWidth(1)
		}
		c.Stroke()
	}

	// Pending vertices have no edges yet, so mark every vertex
	c.SetRGB(0, 0, 0)
	for _, v := range m.vertices {
		c.DrawPoint(v.pos.X, v.pos.Y, 1.5)
		c.Fill()
	}
}

func (m *Mesh) SavePNG(path string, scale float64) error {
	return errors.Wrapf(m.Render(scale).SavePNG(path), "saving %s", path)
}

// Render the mesh and print it to the terminal (iTerm only) for debugging.
func (m *Mesh) DbgDraw(scale float64) error {
	path := filepath.Join(os.TempDir(), "cdt_mesh.png")
	if err := m.SavePNG(path, scale); err != nil {
		return err
	}
	return imgcat.CatFile(path, os.Stdout)
}
