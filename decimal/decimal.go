package decimal

import (
	"fmt"

	"github.com/zeebo/errs"

	"github.com/calebcase/bbi/integer"
)

var (
	// Error is the class of all errors returned by this package.
	Error = errs.Class("decimal")

	// ParseError is the class of errors for input that is not a decimal
	// number. Every parse failure also belongs to Empty or InvalidDigit.
	ParseError = errs.Class("parse error")

	// Empty is the class of errors for input without any digits.
	Empty = errs.Class("empty")

	// InvalidDigit is the class of errors for input containing a byte
	// outside '0'..'9'.
	InvalidDigit = errs.Class("invalid digit")
)

// Parse returns the value of the decimal string s.
func Parse(s string) (x *integer.Int, err error) {
	defer Error.WrapP(&err)

	if len(s) == 0 {
		return nil, ParseError.Wrap(Empty.New("no digits"))
	}

	x = integer.New()
	scratch := integer.New()

	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return nil, ParseError.Wrap(InvalidDigit.New("%q at offset %d", c, i))
		}

		mulAdd10(x, scratch, integer.Limb(c-'0'))
	}

	return x, nil
}

// mulAdd10 sets x to x * 10 + d using t as scratch space.
func mulAdd10(x, t *integer.Int, d integer.Limb) {
	x.Add(x)        // 2x
	t.Set(x).Add(t) // 4x
	t.Add(t)        // 8x

	x.Add(t).AddLimb(d).Normalize()
}

// MustParse is like [Parse] but panics if s cannot be parsed. It is intended
// for constants and tests.
func MustParse(s string) *integer.Int {
	x, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("MustParse(%q) failed: %v", s, err))
	}

	return x
}
