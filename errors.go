package digitseq

import (
	"github.com/zeebo/errs"

	"github.com/computronium/digitseq/series"
)

var (
	// Error is the class for failures of this package that have no more
	// specific class.
	Error = errs.Class("digitseq")

	// FormatError is the class of text that is not a digit sequence.
	FormatError = &series.FormatError

	// BaseMismatchError is the class of operations on values of different
	// bases.
	BaseMismatchError = &series.BaseMismatchError

	// IndecisiveComparisonError is the class of operations that need the
	// order of two infinite magnitudes that cannot be ordered.
	IndecisiveComparisonError = &series.IndecisiveComparisonError
)
