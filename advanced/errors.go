package advanced

import "github.com/pkg/errors"

// Error kinds. Call sites wrap these with context, so compare with errors.Is.
var (
	// Inserting a coordinate that is already a vertex. Only returned when
	// Mesh.RejectDuplicates is set; otherwise duplicate insertion succeeds and
	// returns the existing vertex.
	ErrDuplicatePoint = errors.New("duplicate point")

	// A constraint whose endpoints coincide, or which would cross an existing
	// constraint.
	ErrDegenerateConstraint = errors.New("degenerate constraint")

	ErrInvalidHandle = errors.New("invalid handle")

	// NaN or infinite coordinates.
	ErrInvalidPoint = errors.New("invalid point")

	// An internal invariant was violated. This means either a predicate
	// inconsistency or a corrupt mesh, and is never expected.
	ErrPredicateFailure = errors.New("predicate failure")
)
