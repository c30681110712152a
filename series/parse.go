package series

import (
	"fmt"
	"strconv"
)

// Parse reads an unsigned series:
//
//	series := "..."? digit+ ("b" [0-9]+)?
//	digit  := [0-9] | "(" [0-9]+ ")"
//
// A leading "..." makes the series infinite with a freshly minted token. The
// optional suffix sets the base, 10 by default. Leading zeros of a finite
// series are dropped; those of an infinite series are part of its known
// prefix and kept.
func Parse(s string) (Series, error) {
	var (
		pos      int
		width    = len(s)
		infinite bool
		digits   []Digit
		base     = DefaultBase
	)

	// Infinite marker
	if pos+3 <= width && s[pos:pos+3] == "..." {
		infinite = true
		pos += 3
	}

	// Digits, most significant first
scan:
	for pos < width {
		switch c := s[pos]; {
		case c >= '0' && c <= '9':
			digits = append(digits, Digit(c-'0'))
			pos++
		case c == '(':
			end := pos + 1
			for end < width && s[end] >= '0' && s[end] <= '9' {
				end++
			}
			if end == pos+1 || end == width || s[end] != ')' {
				return Series{}, FormatError.New("malformed digit group in %q", s)
			}
			d, err := strconv.Atoi(s[pos+1 : end])
			if err != nil {
				return Series{}, FormatError.New("digit group in %q: %v", s, err)
			}
			digits = append(digits, Digit(d))
			pos = end + 1
		default:
			break scan
		}
	}

	if len(digits) == 0 {
		return Series{}, FormatError.New("no digits in %q", s)
	}

	// Base
	if pos < width && s[pos] == 'b' {
		pos++
		start := pos
		for pos < width && s[pos] >= '0' && s[pos] <= '9' {
			pos++
		}
		if pos == start {
			return Series{}, FormatError.New("no base in %q", s)
		}
		b, err := strconv.Atoi(s[start:pos])
		if err != nil {
			return Series{}, FormatError.New("base in %q: %v", s, err)
		}
		base = b
	}

	if pos != width {
		return Series{}, FormatError.New("invalid character %q in %q", s[pos], s)
	}

	b := NewBuilder(base)
	if infinite {
		b.AddToken(NewToken(), 1)
	}
	for i := len(digits) - 1; i >= 0; i-- {
		b.AddDigit(digits[i])
	}

	return b.Build()
}

// MustParse is like Parse but panics if s cannot be parsed.
func MustParse(s string) Series {
	ser, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("MustParse(%q) failed: %v", s, err))
	}

	return ser
}
