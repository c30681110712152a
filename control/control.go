package control

import "github.com/zeebo/errs"

// Error is the class of every error returned by this package.
var Error = errs.Class("control")

// ErrInvalidOperation is returned when a block is read as something it is
// not.
var ErrInvalidOperation = Error.New("invalid operation")

// Expect advances d and checks that the block it reaches has type t.
func Expect(d Decoder, t Type) error {
	if !d.Next() {
		if err := d.Err(); err != nil {
			return err
		}

		return Error.New("expected %s, got end of input", t.Abbr)
	}

	if d.Type() != t {
		return Error.New("expected %s, got %s", t.Abbr, d.Type().Abbr)
	}

	return nil
}

// Each calls fn for every block directly inside the unbounded container d
// has just entered, and returns once the container's end is read. Blocks
// that fn reads itself are not passed to it again.
func Each(d Decoder, fn func(Decoder) error) error {
	target := d.Depth() - 1

	for d.Next() {
		if d.Type() == ContainerEnd && d.Depth() == target {
			return nil
		}

		err := fn(d)
		if err != nil {
			return err
		}
	}

	if err := d.Err(); err != nil {
		return err
	}

	return Error.New("unterminated container at depth %d", target+1)
}
