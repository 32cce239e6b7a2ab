package advanced

import (
	"io"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Everything needed to rebuild a mesh: the vertex coordinates in handle order
// (which is insertion order, duplicates aside), then the constraints in the
// order they were added. Replaying a snapshot into a fresh mesh reproduces the
// same vertex handles and constraint set. Edges also match unless four or more
// vertices are cocircular, where the Delaunay choice is not unique.
type Snapshot struct {
	Points      []SnapshotPoint      `yaml:"points"`
	Constraints []SnapshotConstraint `yaml:"constraints,omitempty"`
}

type SnapshotPoint struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type SnapshotConstraint struct {
	A VertexHandle `yaml:"a"`
	B VertexHandle `yaml:"b"`
}

func (m *Mesh) Snapshot() Snapshot {
	var s Snapshot
	for _, v := range m.vertices {
		s.Points = append(s.Points, SnapshotPoint{X: v.pos.X, Y: v.pos.Y})
	}
	for _, pair := range m.constraints {
		s.Constraints = append(s.Constraints, SnapshotConstraint{A: pair[0], B: pair[1]})
	}
	return s
}

// Insert the snapshot's points and constraints into m, which should be empty.
func (m *Mesh) Replay(s Snapshot) error {
	for i, p := range s.Points {
		if _, err := m.Insert(Point{X: p.X, Y: p.Y}); err != nil {
			return errors.Wrapf(err, "replaying point %d", i)
		}
	}
	for i, c := range s.Constraints {
		if err := m.AddConstraint(c.A, c.B); err != nil {
			return errors.Wrapf(err, "replaying constraint %d", i)
		}
	}
	return nil
}

func (s Snapshot) Write(w io.Writer) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(s); err != nil {
		return errors.Wrap(err, "encoding snapshot")
	}
	return errors.Wrap(encoder.Close(), "encoding snapshot")
}

func ReadSnapshot(r io.Reader) (Snapshot, error) {
	var s Snapshot
	if err := yaml.NewDecoder(r).Decode(&s); err != nil {
		return Snapshot{}, errors.Wrap(err, "decoding snapshot")
	}
	return s, nil
}
