package series

import (
	"bytes"
	"math"
	"sort"

	"github.com/google/uuid"
)

// Token identifies one unknown infinite tail.
type Token = uuid.UUID

// NewToken mints a token that is unique to this process and every other.
func NewToken() Token {
	return uuid.New()
}

// Provenance counts how many times each unknown tail contributes to an
// infinite series. An empty provenance means the series is finite.
//
// A Provenance is never modified once attached to a series; every operation
// returns a fresh map.
type Provenance map[Token]int64

// Clone returns a copy of p.
func (p Provenance) Clone() Provenance {
	c := make(Provenance, len(p))
	for tok, n := range p {
		c[tok] = n
	}

	return c
}

// Plus returns the multiset sum p + q.
func (p Provenance) Plus(q Provenance) Provenance {
	r := p.Clone()
	for tok, n := range q {
		r.add(tok, n)
	}

	return r
}

// Minus returns the multiset difference p - q.
func (p Provenance) Minus(q Provenance) Provenance {
	r := p.Clone()
	for tok, n := range q {
		r.add(tok, -n)
	}

	return r
}

// Scale multiplies every multiplicity by k. It reports false if any
// multiplicity overflows.
func (p Provenance) Scale(k int64) (Provenance, bool) {
	r := make(Provenance, len(p))
	if k == 0 {
		return r, true
	}

	for tok, n := range p {
		m := n * k
		if m/k != n || (k == -1 && n == math.MinInt64) {
			return nil, false
		}
		r[tok] = m
	}

	return r, true
}

// Equal reports whether p and q hold the same tokens with the same
// multiplicities.
func (p Provenance) Equal(q Provenance) bool {
	if len(p) != len(q) {
		return false
	}

	for tok, n := range p {
		if m, ok := q[tok]; !ok || m != n {
			return false
		}
	}

	return true
}

// Tokens returns the tokens of p in byte order.
func (p Provenance) Tokens() []Token {
	toks := make([]Token, 0, len(p))
	for tok := range p {
		toks = append(toks, tok)
	}

	sort.Slice(toks, func(i, j int) bool {
		return bytes.Compare(toks[i][:], toks[j][:]) < 0
	})

	return toks
}

// sign reports 1 if every multiplicity is positive, -1 if every multiplicity
// is negative and 0 otherwise (including when p is empty).
func (p Provenance) sign() int {
	pos, neg := false, false
	for _, n := range p {
		if n > 0 {
			pos = true
		} else {
			neg = true
		}
	}

	switch {
	case pos && !neg:
		return 1
	case neg && !pos:
		return -1
	}

	return 0
}

func (p Provenance) add(tok Token, delta int64) {
	n := p[tok] + delta
	if n == 0 {
		delete(p, tok)

		return
	}

	p[tok] = n
}
