package integer

// Add sets x to x + y and returns x. A carry out of the most significant limb
// extends x by one limb.
func (x *Int) Add(y *Int) *Int {
	yl := y.live()

	x.PadTo(y)

	var carry uint64

	xl := x.limbs
	for i := range xl {
		if i >= len(yl) && carry == 0 {
			break
		}

		sum := uint64(xl[i]) + uint64(at(yl, i)) + carry
		xl[i] = Limb(sum)
		carry = sum >> LimbBits
	}

	if carry != 0 {
		x.limbs = append(xl, Limb(carry))
	}

	return x
}

// Add returns a new Int holding x + y.
func Add(x, y *Int) *Int {
	return x.Copy().Add(y)
}

// AddLimb sets x to x + v and returns x.
func (x *Int) AddLimb(v Limb) *Int {
	carry := uint64(v)

	xl := x.live()
	for i := 0; i < len(xl) && carry != 0; i++ {
		sum := uint64(xl[i]) + carry
		xl[i] = Limb(sum)
		carry = sum >> LimbBits
	}

	if carry != 0 {
		x.limbs = append(xl, Limb(carry))
	}

	return x
}
