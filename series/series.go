package series

import (
	"math/big"
	"strconv"
	"strings"
)

// Digit is a single digit of a series. Valid digits lie in [0, base).
type Digit int

// Unknown is returned by DigitAt for positions past the known prefix of an
// infinite series.
const Unknown Digit = -1

// DefaultBase is the base of series that do not name one.
const DefaultBase = 10

// MaxBase is the largest supported base. Column sums of a product stay well
// inside an int64 below it.
const MaxBase = 1 << 16

// Series is an unsigned digit expansion in a given base. It is either finite,
// an exact value with no superfluous high-order zeros, or infinite, a known
// low-order prefix followed by an unknown tail identified by its provenance.
//
// An infinite series is the sum of its tails, each counted as often as its
// provenance says, plus an exact offset. The offset records the finite
// amounts added to or taken from the tails, so that two series made of the
// same tails can be ordered exactly.
//
// The zero value is the finite number 0 in base 10. A Series is immutable.
type Series struct {
	base   int
	digits []Digit
	prov   Provenance
	offset *big.Int
}

// New returns n in base 10. An infinite series treats the digits of n as the
// known prefix of a fresh unknown tail.
func New(n uint64, finite bool) Series {
	b := NewBuilder(DefaultBase)
	if !finite {
		b.AddToken(NewToken(), 1)
	}

	if n == 0 {
		b.AddDigit(0)
	}
	for ; n > 0; n /= DefaultBase {
		b.AddDigit(Digit(n % DefaultBase))
	}

	return b.build()
}

// Zero returns the finite number 0 in the given base.
func Zero(base int) Series {
	return NewBuilder(base).build()
}

// Base returns the base of s.
func (s Series) Base() int {
	if s.base == 0 {
		return DefaultBase
	}

	return s.base
}

// Len returns the number of stored digits: every digit of a finite series,
// the known prefix of an infinite one.
func (s Series) Len() int {
	if len(s.digits) == 0 {
		return 1
	}

	return len(s.digits)
}

// Finite reports whether s has no unknown tail.
func (s Series) Finite() bool {
	return len(s.prov) == 0
}

// IsZero reports whether s is the finite number 0.
func (s Series) IsZero() bool {
	return s.Finite() && s.Len() == 1 && s.DigitAt(0) == 0
}

// Digits returns a copy of the stored digits, least significant first.
func (s Series) Digits() []Digit {
	if len(s.digits) == 0 {
		return []Digit{0}
	}

	return append([]Digit(nil), s.digits...)
}

// Provenance returns a copy of the provenance of s.
func (s Series) Provenance() Provenance {
	return s.prov.Clone()
}

// Offset returns the exact amount by which an infinite series differs from
// the sum of its tails. It is zero for a finite series.
func (s Series) Offset() *big.Int {
	if s.offset == nil {
		return new(big.Int)
	}

	return new(big.Int).Set(s.offset)
}

// excess is the part of s not accounted for by its tails: the value of a
// finite series, the offset of an infinite one.
func (s Series) excess() *big.Int {
	if !s.Finite() {
		return s.Offset()
	}

	base := big.NewInt(int64(s.Base()))

	n := new(big.Int)
	for i := s.Len() - 1; i >= 0; i-- {
		n.Mul(n, base)
		n.Add(n, big.NewInt(int64(s.DigitAt(i))))
	}

	return n
}

// DigitAt returns the digit at position i, 0 being the least significant.
// Past the stored digits it returns 0 for a finite series and Unknown for an
// infinite one.
func (s Series) DigitAt(i int) Digit {
	switch {
	case i < len(s.digits):
		return s.digits[i]
	case s.Finite():
		return 0
	}

	return Unknown
}

// HasKnownDigitAt reports whether the digit at position i is determined.
func (s Series) HasKnownDigitAt(i int) bool {
	return s.Finite() || i < len(s.digits)
}

// Equal reports whether s and t have the same base, the same digits, the same
// provenance and the same offset. Infinite series with different provenance
// are never equal, whatever their known digits.
func (s Series) Equal(t Series) bool {
	if s.Base() != t.Base() || s.Len() != t.Len() {
		return false
	}

	if !s.prov.Equal(t.prov) || s.Offset().Cmp(t.Offset()) != 0 {
		return false
	}

	for i := 0; i < s.Len(); i++ {
		if s.DigitAt(i) != t.DigitAt(i) {
			return false
		}
	}

	return true
}

// String formats s as its most significant digit first, prefixed by "..."
// when infinite and suffixed by "bN" when the base N is not 10. A digit of ten
// or more is written in decimal between parentheses.
func (s Series) String() string {
	var sb strings.Builder

	if !s.Finite() {
		sb.WriteString("...")
	}

	for i := s.Len() - 1; i >= 0; i-- {
		d := s.DigitAt(i)
		if d < 10 {
			sb.WriteByte('0' + byte(d))

			continue
		}

		// Digits of bases above ten do not fit a single character.
		sb.WriteByte('(')
		sb.WriteString(strconv.Itoa(int(d)))
		sb.WriteByte(')')
	}

	if s.Base() != DefaultBase {
		sb.WriteByte('b')
		sb.WriteString(strconv.Itoa(s.Base()))
	}

	return sb.String()
}
