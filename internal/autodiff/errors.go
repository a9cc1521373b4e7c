package autodiff

import (
	"github.com/pkg/errors"
)

// Sentinel errors for precondition violations. Operations panic with a
// stack-carrying wrap of these rather than returning them: arithmetic on
// Vars is expression building, and threading an error return through every
// elementary call would make composite expressions unwritable. Callers who
// want an ordinary error recover the panic with
// exceptions.TryCatch[error] and test it with errors.Is.
var (
	// ErrTapeMismatch reports a binary operation whose operands were
	// recorded on different tapes. Mixing tapes would write dependency
	// indices into the wrong log, so the operation aborts instead.
	ErrTapeMismatch = errors.New("autodiff: operands belong to different tapes")

	// ErrEmptySum reports a Sum over no variables. Without at least one
	// operand there is no tape to anchor a zero node on.
	ErrEmptySum = errors.New("autodiff: sum of an empty set of variables")
)

// SameTape reports whether two variables are recorded on the identical tape
// instance. Binary operations require this; callers can pre-check instead
// of recovering the panic.
func SameTape(a, b Var) bool {
	return a.tape == b.tape
}

// mustSameTape aborts the calling operation when the operands live on
// different tapes.
func mustSameTape(op string, a, b Var) {
	if a.tape != b.tape {
		panic(errors.Wrapf(ErrTapeMismatch, "%s", op))
	}
}
