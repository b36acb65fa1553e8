package integer

// zip pads x to the length of y, then replaces each limb of x with op applied
// to it and the limb of y at the same position, least significant first. y is
// read as zero past its end, so limbs of x beyond y become op(a, 0): zero for
// And, unchanged for Or and Xor.
func (x *Int) zip(y *Int, op func(a, b Limb) Limb) *Int {
	// Taken before padding so that y == x sees its own limbs.
	yl := y.live()

	x.PadTo(y)

	xl := x.limbs
	for i := range xl {
		xl[i] = op(xl[i], at(yl, i))
	}

	return x
}

// Not flips every bit of every limb of x and returns x.
func (x *Int) Not() *Int {
	l := x.live()
	for i := range l {
		l[i] = ^l[i]
	}

	return x
}

// Not returns a new Int with every bit of x flipped.
func Not(x *Int) *Int {
	return x.Copy().Not()
}

// And sets x to x AND y and returns x.
func (x *Int) And(y *Int) *Int {
	return x.zip(y, func(a, b Limb) Limb { return a & b })
}

// And returns a new Int holding x AND y.
func And(x, y *Int) *Int {
	return x.Copy().And(y)
}

// Or sets x to x OR y and returns x.
func (x *Int) Or(y *Int) *Int {
	return x.zip(y, func(a, b Limb) Limb { return a | b })
}

// Or returns a new Int holding x OR y.
func Or(x, y *Int) *Int {
	return x.Copy().Or(y)
}

// Xor sets x to x XOR y and returns x.
func (x *Int) Xor(y *Int) *Int {
	return x.zip(y, func(a, b Limb) Limb { return a ^ b })
}

// Xor returns a new Int holding x XOR y.
func Xor(x, y *Int) *Int {
	return x.Copy().Xor(y)
}
