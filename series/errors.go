package series

import "github.com/zeebo/errs"

var (
	// Error is the class for failures that have no more specific class.
	Error = errs.Class("series")

	// FormatError is returned when text does not match the digit sequence
	// grammar or names a digit outside its base.
	FormatError = errs.Class("format")

	// BaseMismatchError is returned when two series of different bases are
	// combined.
	BaseMismatchError = errs.Class("base mismatch")

	// IndecisiveComparisonError is returned when an operation needs the
	// relative order of two infinite magnitudes and it cannot be determined.
	IndecisiveComparisonError = errs.Class("indecisive comparison")
)
