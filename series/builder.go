package series

import "math/big"

// Builder assembles a Series one digit at a time, least significant first.
// Build canonicalizes the result, so arithmetic can append digits freely.
type Builder struct {
	base   int
	digits []Digit
	prov   Provenance
	offset *big.Int
}

// NewBuilder returns a builder for a series in the given base.
func NewBuilder(base int) *Builder {
	return &Builder{
		base: base,
		prov: Provenance{},
	}
}

// AddDigit appends d as the next more significant digit.
func (b *Builder) AddDigit(d Digit) *Builder {
	b.digits = append(b.digits, d)

	return b
}

// AddToken adjusts the multiplicity of tok by delta. A token whose
// multiplicity reaches zero is dropped.
func (b *Builder) AddToken(tok Token, delta int64) *Builder {
	b.prov.add(tok, delta)

	return b
}

// WithProvenance replaces the provenance with a copy of p.
func (b *Builder) WithProvenance(p Provenance) *Builder {
	b.prov = p.Clone()

	return b
}

// WithOffset sets the offset of an infinite result. It is ignored when the
// result is finite.
func (b *Builder) WithOffset(n *big.Int) *Builder {
	b.offset = new(big.Int).Set(n)

	return b
}

// Build validates the accumulated digits and returns the series.
func (b *Builder) Build() (Series, error) {
	if b.base < 2 || b.base > MaxBase {
		return Series{}, FormatError.New("base %d is outside [2, %d]", b.base, MaxBase)
	}

	for i, d := range b.digits {
		if d < 0 || int(d) >= b.base {
			return Series{}, FormatError.New("digit %d at position %d is out of range for base %d", d, i, b.base)
		}
	}

	return b.build(), nil
}

// build is Build without validation, for digits produced by arithmetic.
func (b *Builder) build() Series {
	digits := b.digits
	if len(digits) == 0 {
		digits = []Digit{0}
	}

	if len(b.prov) == 0 {
		for len(digits) > 1 && digits[len(digits)-1] == 0 {
			digits = digits[:len(digits)-1]
		}
	}

	var (
		prov   Provenance
		offset *big.Int
	)
	if len(b.prov) > 0 {
		prov = b.prov.Clone()

		if b.offset != nil && b.offset.Sign() != 0 {
			offset = new(big.Int).Set(b.offset)
		}
	}

	return Series{
		base:   b.base,
		digits: append([]Digit(nil), digits...),
		prov:   prov,
		offset: offset,
	}
}

// fromBig returns the finite series with value n, which must not be
// negative.
func fromBig(base int, n *big.Int) Series {
	b := NewBuilder(base)

	q := new(big.Int).Set(n)
	r := new(big.Int)
	m := big.NewInt(int64(base))
	for q.Sign() > 0 {
		q.QuoRem(q, m, r)
		b.AddDigit(Digit(r.Int64()))
	}

	return b.build()
}
