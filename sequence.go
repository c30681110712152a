package digitseq

import (
	"encoding/binary"
	"math/big"
	"strings"

	"github.com/cespare/xxhash/v2"

	"github.com/computronium/digitseq/series"
)

// Sequence is a signed digit sequence: a sign over a series.Series
// magnitude. The zero value is Zero. A Sequence is immutable; every operation
// returns a new value.
type Sequence struct {
	negative bool
	series   series.Series
}

var (
	// Zero is the finite number 0 in base 10.
	Zero = MustParse("0")

	// One is the finite number 1 in base 10.
	One = MustParse("1")
)

// New returns n in base 10. An infinite sequence treats the digits of n as
// the known prefix of a fresh unknown tail.
func New(n int64, finite bool) Sequence {
	mag := uint64(n)
	if n < 0 {
		mag = uint64(-(n + 1)) + 1
	}

	return FromSeries(n < 0, series.New(mag, finite))
}

// FromSeries returns the sequence with magnitude s, negated if negative is
// set. Zero is never negative.
func FromSeries(negative bool, s series.Series) Sequence {
	return Sequence{
		negative: negative && !s.IsZero(),
		series:   s,
	}
}

// Parse reads a sequence in the text format described in the package
// documentation.
func Parse(s string) (Sequence, error) {
	mag, err := series.Parse(strings.TrimPrefix(s, "-"))
	if err != nil {
		return Sequence{}, err
	}

	return FromSeries(strings.HasPrefix(s, "-"), mag), nil
}

// Series returns the magnitude of x.
func (x Sequence) Series() series.Series {
	return x.series
}

// Negative reports whether x is less than zero.
func (x Sequence) Negative() bool {
	return x.negative
}

// Sign returns:
//
//	-1 if x <  0
//	 0 if x == 0
//	+1 if x >  0
func (x Sequence) Sign() int {
	switch {
	case x.negative:
		return -1
	case x.series.IsZero():
		return 0
	}

	return 1
}

// IsZero reports whether x is the finite number 0.
func (x Sequence) IsZero() bool {
	return x.series.IsZero()
}

// IsFinite reports whether x has no unknown tail.
func (x Sequence) IsFinite() bool {
	return x.series.Finite()
}

// Base returns the base of x.
func (x Sequence) Base() int {
	return x.series.Base()
}

// Len returns the number of known digits of x.
func (x Sequence) Len() int {
	return x.series.Len()
}

// DigitAt returns the digit of the magnitude of x at position i; see
// series.Series.DigitAt.
func (x Sequence) DigitAt(i int) series.Digit {
	return x.series.DigitAt(i)
}

// Neg returns -x. Zero is returned unchanged.
func (x Sequence) Neg() Sequence {
	return FromSeries(!x.negative, x.series)
}

// Add returns x + y.
//
// When the signs differ the smaller magnitude is taken from the larger one.
// If the magnitudes cannot be ordered, Add fails with
// IndecisiveComparisonError.
//
// Zero is the same number in every base, so a zero operand is never a base
// mismatch: the other operand is returned as is.
func (x Sequence) Add(y Sequence) (Sequence, error) {
	switch {
	case y.IsZero():
		return x, nil
	case x.IsZero():
		return y, nil
	}

	if x.negative == y.negative {
		// x + y == x + y
		// (-x) + (-y) == -(x + y)
		sum, err := x.series.Add(y.series)
		if err != nil {
			return Sequence{}, err
		}

		return FromSeries(x.negative, sum), nil
	}

	// x + (-y) == x - y == -(y - x)
	// (-x) + y == y - x == -(x - y)
	ord, err := x.series.CompareTail(y.series)
	if err != nil {
		return Sequence{}, err
	}

	switch ord {
	case series.Equal:
		return FromSeries(false, series.Zero(x.Base())), nil
	case series.Greater:
		diff, err := x.series.Sub(y.series)
		if err != nil {
			return Sequence{}, err
		}

		return FromSeries(x.negative, diff), nil
	case series.Less:
		diff, err := y.series.Sub(x.series)
		if err != nil {
			return Sequence{}, err
		}

		return FromSeries(y.negative, diff), nil
	}

	return Sequence{}, IndecisiveComparisonError.New("cannot order magnitudes of %v and %v", x, y)
}

// Sub returns x - y, that is x + (-y).
func (x Sequence) Sub(y Sequence) (Sequence, error) {
	return x.Add(y.Neg())
}

// Mul returns x * y. A zero operand is returned as the product, whatever the
// base of the other operand.
func (x Sequence) Mul(y Sequence) (Sequence, error) {
	switch {
	case y.IsZero():
		return y, nil
	case x.IsZero():
		return x, nil
	}

	if err := x.series.SameBase(y.series); err != nil {
		return Sequence{}, err
	}

	// x * y == x * y
	// x * (-y) == -(x * y)
	// (-x) * y == -(x * y)
	// (-x) * (-y) == x * y
	product, err := x.series.Mul(y.series)
	if err != nil {
		return Sequence{}, err
	}

	return FromSeries(x.negative != y.negative, product), nil
}

// Compare orders x and y. It returns series.CantTell when the order depends
// on unknown digits. Zero compares with values of any base.
func (x Sequence) Compare(y Sequence) (series.Ordering, error) {
	if x.IsZero() || y.IsZero() {
		return series.Ordering(compareInts(x.Sign(), y.Sign())), nil
	}

	if err := x.series.SameBase(y.series); err != nil {
		return series.CantTell, err
	}

	switch {
	case x.negative && !y.negative:
		return series.Less, nil
	case !x.negative && y.negative:
		return series.Greater, nil
	}

	ord, err := x.series.CompareTail(y.series)
	if err != nil || !x.negative || ord == series.CantTell {
		return ord, err
	}

	// Both negative: the larger magnitude is the smaller value.
	return -ord, nil
}

// Equal reports whether x and y have the same sign, base, digits, provenance
// and offset. Infinite values with different tails are never equal.
func (x Sequence) Equal(y Sequence) bool {
	return x.negative == y.negative && x.series.Equal(y.series)
}

// Hash returns a hash of x consistent with Equal.
func (x Sequence) Hash() uint64 {
	h := xxhash.New()

	var buf [8]byte
	put := func(n uint64) {
		binary.LittleEndian.PutUint64(buf[:], n)
		_, _ = h.Write(buf[:])
	}

	if x.negative {
		put(1)
	} else {
		put(0)
	}
	put(uint64(x.Base()))

	digits := x.series.Digits()
	put(uint64(len(digits)))
	for _, d := range digits {
		put(uint64(d))
	}

	prov := x.series.Provenance()
	for _, tok := range prov.Tokens() {
		_, _ = h.Write(tok[:])
		put(uint64(prov[tok]))
	}

	off := x.series.Offset()
	put(uint64(off.Sign() + 1))
	_, _ = h.Write(off.Bytes())

	return h.Sum64()
}

func compareInts(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}

	return 0
}

// BigInt returns the value of a finite sequence.
func (x Sequence) BigInt() (*big.Int, error) {
	if !x.IsFinite() {
		return nil, Error.New("%v has no exact value", x)
	}

	base := big.NewInt(int64(x.Base()))

	n := new(big.Int)
	for i := x.Len() - 1; i >= 0; i-- {
		n.Mul(n, base)
		n.Add(n, big.NewInt(int64(x.DigitAt(i))))
	}

	if x.negative {
		n.Neg(n)
	}

	return n, nil
}

// String formats x in the text format described in the package
// documentation.
func (x Sequence) String() string {
	if x.negative {
		return "-" + x.series.String()
	}

	return x.series.String()
}

// MarshalText implements encoding.TextMarshaler.
func (x Sequence) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. An infinite value read
// from text gets a fresh tail.
func (x *Sequence) UnmarshalText(text []byte) error {
	y, err := Parse(string(text))
	if err != nil {
		return err
	}

	*x = y

	return nil
}
