package integer

import (
	"fmt"
	"math/bits"

	"github.com/zeebo/errs"
)

// Limb is the storage unit of an Int.
type Limb uint32

// LimbBits is the width of a Limb in bits.
const LimbBits = 32

var (
	// Error is the class of all errors returned by this package.
	Error = errs.Class("integer")

	// InvalidArgument is the class of errors for argument values an
	// operation does not accept.
	InvalidArgument = errs.Class("invalid argument")

	// OutOfRange is the class of errors for positions past the end of an
	// Int.
	OutOfRange = errs.Class("out of range")
)

// Int is an unsigned integer of arbitrary size. Create one with New, NewLen,
// FromLimbs, or FromUint64; the zero value is only usable as the target of
// UnmarshalBinary.
type Int struct {
	// limbs are stored least significant first so that growing the most
	// significant end is an append. Never empty while the Int is live.
	limbs    []Limb
	released bool
}

// New returns a zero Int with one limb.
func New() *Int {
	return NewLen(1)
}

// NewLen returns a zero Int with n limbs. Values of n below 1 yield one limb.
func NewLen(n int) *Int {
	if n < 1 {
		n = 1
	}

	return &Int{
		limbs: make([]Limb, n),
	}
}

// FromLimbs returns an Int holding limbs, most significant first.
func FromLimbs(limbs ...Limb) *Int {
	x := NewLen(len(limbs))

	for i, l := range limbs {
		x.limbs[len(limbs)-1-i] = l
	}

	return x
}

// FromUint64 returns an Int holding v in as few limbs as possible.
func FromUint64(v uint64) *Int {
	if v>>LimbBits == 0 {
		return FromLimbs(Limb(v))
	}

	return FromLimbs(Limb(v>>LimbBits), Limb(v))
}

// live returns the limbs and panics if the Int cannot be used.
func (x *Int) live() []Limb {
	if x.released {
		panic("integer: use of released Int")
	}

	if len(x.limbs) == 0 {
		panic("integer: use of uninitialized Int")
	}

	return x.limbs
}

// Len returns the number of limbs.
func (x *Int) Len() int {
	return len(x.live())
}

// pos converts a most significant first index into a storage position.
func (x *Int) pos(i int) int {
	n := x.Len()
	if i < 0 || i >= n {
		panic(fmt.Sprintf("integer: limb index %d out of range [0:%d]", i, n))
	}

	return n - 1 - i
}

// Limb returns the limb at index i, where index 0 is the most significant
// limb. It panics if i is out of range.
func (x *Int) Limb(i int) Limb {
	return x.limbs[x.pos(i)]
}

// SetLimb sets the limb at index i, where index 0 is the most significant
// limb. It panics if i is out of range.
func (x *Int) SetLimb(i int, v Limb) {
	x.limbs[x.pos(i)] = v
}

// Limbs returns a copy of the limbs, most significant first.
func (x *Int) Limbs() []Limb {
	l := x.live()
	out := make([]Limb, len(l))

	for i, v := range l {
		out[len(l)-1-i] = v
	}

	return out
}

// grow zero extends x on its most significant side to n limbs. It does
// nothing if x already has n limbs or more.
func (x *Int) grow(n int) {
	l := x.live()
	if n <= len(l) {
		return
	}

	// Appending zeros also clears anything Normalize or Set left past len.
	x.limbs = append(l, make([]Limb, n-len(l))...)
}

// Extend adds n zero limbs to the most significant end of x. Existing limbs
// keep their values.
func (x *Int) Extend(n int) (err error) {
	defer Error.WrapP(&err)

	if n <= 0 {
		return InvalidArgument.New("extend by %d limbs", n)
	}

	x.grow(x.Len() + n)

	return nil
}

// PadTo extends x so that it has at least as many limbs as y. y is not
// modified.
func (x *Int) PadTo(y *Int) {
	x.grow(y.Len())
}

// Pad extends the shorter of x and y so both have the same length.
func Pad(x, y *Int) {
	x.PadTo(y)
	y.PadTo(x)
}

// Copy returns a new Int with the same limbs as x. The copy shares no
// storage with x.
func (x *Int) Copy() *Int {
	return &Int{
		limbs: append([]Limb(nil), x.live()...),
	}
}

// Set sets x to the value and length of y and returns x.
func (x *Int) Set(y *Int) *Int {
	yl := y.live()
	x.limbs = append(x.live()[:0], yl...)

	return x
}

// Release wipes the limbs of x and drops its storage. x must not be used
// afterwards.
func (x *Int) Release() {
	l := x.live()
	for i := range l {
		l[i] = 0
	}

	x.limbs = nil
	x.released = true
}

// Normalize removes most significant zero limbs, keeping at least one, and
// returns x.
func (x *Int) Normalize() *Int {
	l := x.live()

	n := len(l)
	for n > 1 && l[n-1] == 0 {
		n--
	}

	x.limbs = l[:n]

	return x
}

// IsZero reports whether every limb of x is zero.
func (x *Int) IsZero() bool {
	for _, v := range x.live() {
		if v != 0 {
			return false
		}
	}

	return true
}

// at returns the limb at storage position i or zero past the end.
func at(l []Limb, i int) Limb {
	if i < len(l) {
		return l[i]
	}

	return 0
}

// Cmp compares the values of x and y and returns -1, 0, or +1. Leading zero
// limbs do not affect the result.
func (x *Int) Cmp(y *Int) int {
	xl, yl := x.live(), y.live()

	n := len(xl)
	if len(yl) > n {
		n = len(yl)
	}

	for i := n - 1; i >= 0; i-- {
		a, b := at(xl, i), at(yl, i)

		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		}
	}

	return 0
}

// Equal reports whether x and y hold the same value.
func (x *Int) Equal(y *Int) bool {
	return x.Cmp(y) == 0
}

// BitLen returns the number of significant bits in x. It is 0 for zero.
func (x *Int) BitLen() int {
	l := x.live()

	for i := len(l) - 1; i >= 0; i-- {
		if l[i] != 0 {
			return i*LimbBits + bits.Len32(uint32(l[i]))
		}
	}

	return 0
}

// Bit reports whether bit i of x is set. Bit 0 is the least significant bit
// of the least significant limb.
func (x *Int) Bit(i int) (_ bool, err error) {
	defer Error.WrapP(&err)

	n := x.Len() * LimbBits
	if i < 0 || i >= n {
		return false, OutOfRange.New("bit %d of %d", i, n)
	}

	return x.limbs[i/LimbBits]>>uint(i%LimbBits)&1 == 1, nil
}
