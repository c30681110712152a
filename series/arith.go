package series

import (
	"math"
	"math/big"
)

// Ordering is the outcome of comparing two magnitudes.
type Ordering int

// Orderings. CantTell is returned when the known digits of two infinite
// series do not determine which is larger.
const (
	Less     Ordering = -1
	Equal    Ordering = 0
	Greater  Ordering = 1
	CantTell Ordering = 2
)

func (o Ordering) String() string {
	switch o {
	case Less:
		return "less"
	case Equal:
		return "equal"
	case Greater:
		return "greater"
	case CantTell:
		return "can't tell"
	}

	return "invalid"
}

// SameBase returns BaseMismatchError unless s and t share a base.
func (s Series) SameBase(t Series) error {
	if s.Base() != t.Base() {
		return BaseMismatchError.New("base %d and base %d", s.Base(), t.Base())
	}

	return nil
}

// Compare orders s and t by magnitude. Finite series are compared exactly, an
// infinite series is larger than any finite one, and two infinite series
// yield CantTell.
func (s Series) Compare(t Series) (Ordering, error) {
	if err := s.SameBase(t); err != nil {
		return CantTell, err
	}

	switch {
	case s.Finite() && t.Finite():
		// Both are trimmed, so the longer one is larger.
		if s.Len() != t.Len() {
			if s.Len() > t.Len() {
				return Greater, nil
			}

			return Less, nil
		}

		for i := s.Len() - 1; i >= 0; i-- {
			switch a, b := s.DigitAt(i), t.DigitAt(i); {
			case a > b:
				return Greater, nil
			case a < b:
				return Less, nil
			}
		}

		return Equal, nil
	case s.Finite():
		return Less, nil
	case t.Finite():
		return Greater, nil
	}

	return CantTell, nil
}

// CompareTail is Compare with two infinite series ordered by their tails.
// If every token of s outweighs its count in t, s is greater; if every token
// falls short, s is less. Series with identical provenance differ by exactly
// the difference of their offsets. Mixed provenance is still CantTell.
func (s Series) CompareTail(t Series) (Ordering, error) {
	ord, err := s.Compare(t)
	if err != nil || ord != CantTell {
		return ord, err
	}

	if diff := s.prov.Minus(t.prov); len(diff) > 0 {
		switch diff.sign() {
		case 1:
			return Greater, nil
		case -1:
			return Less, nil
		}

		return CantTell, nil
	}

	return Ordering(s.Offset().Cmp(t.Offset())), nil
}

// canComputeMoreDigits reports whether position i of a sum or difference is
// determined. Finite operands run until both are exhausted and the carry is
// spent. Otherwise the first unknown digit on either side ends the known
// prefix of the result.
func canComputeMoreDigits(carry int, a, b Series, i int) bool {
	if a.Finite() && b.Finite() {
		return carry > 0 || i < a.Len() || i < b.Len()
	}

	return a.HasKnownDigitAt(i) && b.HasKnownDigitAt(i)
}

// Add returns s + t. The provenance of the sum is the multiset sum of the
// operands' provenance and its offset the sum of their offsets.
func (s Series) Add(t Series) (Series, error) {
	if err := s.SameBase(t); err != nil {
		return Series{}, err
	}

	base := s.Base()
	prov := s.prov.Plus(t.prov)
	offset := new(big.Int).Add(s.excess(), t.excess())

	if len(prov) == 0 && !(s.Finite() && t.Finite()) {
		// The tails cancelled; only the offset is left.
		if offset.Sign() < 0 {
			return Series{}, Error.New("negative sum: %v + %v", s, t)
		}

		return fromBig(base, offset), nil
	}

	sum := NewBuilder(base).WithProvenance(prov).WithOffset(offset)

	carry := 0
	for i := 0; canComputeMoreDigits(carry, s, t, i); i++ {
		d := carry + int(s.DigitAt(i)) + int(t.DigitAt(i))
		sum.AddDigit(Digit(d % base))
		carry = d / base
	}

	return sum.build(), nil
}

// sub subtracts digit by digit and reports whether a borrow is left over.
func (s Series) sub(t Series) (digits []Digit, borrow bool) {
	base := Digit(s.Base())

	b := Digit(0)
	for i := 0; canComputeMoreDigits(0, s, t, i); i++ {
		d := s.DigitAt(i) - b - t.DigitAt(i)
		if d < 0 {
			d += base
			b = 1
		} else {
			b = 0
		}
		digits = append(digits, d)
	}

	return digits, b != 0
}

// Sub returns s - t. The provenance of the difference is that of s with the
// tokens of t taken away, so (s + t) - t carries exactly the tokens of s.
//
// The difference must not be negative. When the tails of the operands cancel
// completely the result is the finite difference of their offsets; otherwise
// it keeps the known prefix of the difference modulo base^n.
func (s Series) Sub(t Series) (Series, error) {
	if err := s.SameBase(t); err != nil {
		return Series{}, err
	}

	prov := s.prov.Minus(t.prov)
	offset := new(big.Int).Sub(s.excess(), t.excess())

	switch {
	case s.Finite() && t.Finite():
		digits, borrow := s.sub(t)
		if borrow {
			return Series{}, Error.New("negative difference: %v - %v", s, t)
		}

		diff := NewBuilder(s.Base())
		for _, d := range digits {
			diff.AddDigit(d)
		}

		return diff.build(), nil
	case len(prov) == 0:
		if offset.Sign() < 0 {
			return Series{}, Error.New("negative difference: %v - %v", s, t)
		}

		return fromBig(s.Base(), offset), nil
	}

	digits, _ := s.sub(t)

	diff := NewBuilder(s.Base()).WithProvenance(prov).WithOffset(offset)
	for _, d := range digits {
		diff.AddDigit(d)
	}

	return diff.build(), nil
}

// canKeepMultiplying reports whether column i of a product is determined.
// Column i needs every digit of both operands up to position i.
func canKeepMultiplying(carry int64, a, b Series, i int) bool {
	if a.Finite() && b.Finite() {
		return carry > 0 || i < a.Len()+b.Len()-1
	}

	return a.HasKnownDigitAt(i) && b.HasKnownDigitAt(i)
}

// Mul returns s * t by long multiplication, one column at a time.
//
// A finite factor k scales the provenance and the offset of an infinite one,
// so 2*x equals x + x. The product of two infinite series, or of an infinite
// series and a factor too large to count with, has a new unknown tail of its
// own.
func (s Series) Mul(t Series) (Series, error) {
	if err := s.SameBase(t); err != nil {
		return Series{}, err
	}

	base := int64(s.Base())
	prov, offset := s.productTails(t)
	product := NewBuilder(int(base)).WithProvenance(prov).WithOffset(offset)

	var carry int64
	for i := 0; canKeepMultiplying(carry, s, t, i); i++ {
		column := carry
		for k := 0; k <= i; k++ {
			column += int64(s.DigitAt(k)) * int64(t.DigitAt(i-k))
		}
		product.AddDigit(Digit(column % base))
		carry = column / base
	}

	return product.build(), nil
}

// productTails returns the provenance and offset of s * t.
func (s Series) productTails(t Series) (Provenance, *big.Int) {
	switch {
	case s.Finite() && t.Finite():
		return nil, new(big.Int)
	case s.Finite():
		return t.scaleBy(s)
	case t.Finite():
		return s.scaleBy(t)
	}

	return Provenance{NewToken(): 1}, new(big.Int)
}

func (s Series) scaleBy(k Series) (Provenance, *big.Int) {
	if n, ok := k.int64(); ok {
		if p, ok := s.prov.Scale(n); ok {
			return p, new(big.Int).Mul(s.Offset(), big.NewInt(n))
		}
	}

	return Provenance{NewToken(): 1}, new(big.Int)
}

// int64 returns the value of a finite series if it fits.
func (s Series) int64() (int64, bool) {
	if !s.Finite() {
		return 0, false
	}

	base := int64(s.Base())

	var n int64
	for i := s.Len() - 1; i >= 0; i-- {
		d := int64(s.DigitAt(i))
		if n > (math.MaxInt64-d)/base {
			return 0, false
		}
		n = n*base + d
	}

	return n, true
}
