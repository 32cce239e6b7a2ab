package advanced

import "github.com/pkg/errors"

// Threading errors up and down through every flip and walk would add a ton of
// complexity for conditions that should never happen. Instead, internal
// invariant violations panic, and the public API recovers to convert to an
// error.

type TriangulateError struct {
	error
}

func (e TriangulateError) Unwrap() error {
	return e.error
}

// Panic with a TriangulateError wrapping ErrPredicateFailure.
func fatalf(format string, args ...interface{}) {
	panic(TriangulateError{errors.Wrapf(ErrPredicateFailure, format, args...)})
}

// Convert the result of recover() into an error. Panics that did not come from
// fatalf are real bugs, and are re-raised.
func HandleTriangulatePanicRecover(r interface{}) error {
	if r != nil {
		if triangulateError, ok := r.(TriangulateError); ok {
			return triangulateError
		}
		panic(r)
	}
	return nil
}
