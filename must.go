package digitseq

import "fmt"

// MustParse is like Parse but panics if s cannot be parsed.
func MustParse(s string) Sequence {
	x, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("MustParse(%q) failed: %v", s, err))
	}
	return x
}

// MustAdd is like Add but panics if computing error.
func (x Sequence) MustAdd(y Sequence) Sequence {
	z, err := x.Add(y)
	if err != nil {
		panic(fmt.Sprintf("MustAdd(%v) failed: %v", y, err))
	}
	return z
}

// MustSub is like Sub but panics if computing error.
func (x Sequence) MustSub(y Sequence) Sequence {
	z, err := x.Sub(y)
	if err != nil {
		panic(fmt.Sprintf("MustSub(%v) failed: %v", y, err))
	}
	return z
}

// MustMul is like Mul but panics if computing error.
func (x Sequence) MustMul(y Sequence) Sequence {
	z, err := x.Mul(y)
	if err != nil {
		panic(fmt.Sprintf("MustMul(%v) failed: %v", y, err))
	}
	return z
}
