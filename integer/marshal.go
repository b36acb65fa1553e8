package integer

import "encoding/binary"

// MarshalBinary implements encoding.BinaryMarshaler.
//
// The value is encoded big-endian without leading zero bytes. Zero is encoded
// as a single zero byte rather than an empty slice.
func (x *Int) MarshalBinary() (data []byte, err error) {
	l := x.live()

	data = make([]byte, 0, len(l)*LimbBits/8)
	for i := len(l) - 1; i >= 0; i-- {
		data = binary.BigEndian.AppendUint32(data, uint32(l[i]))
	}

	for len(data) > 1 && data[0] == 0 {
		data = data[1:]
	}

	return data, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. It accepts any
// big-endian byte string; empty data decodes as zero. The result has as many
// limbs as the data needs, and at least one.
func (x *Int) UnmarshalBinary(data []byte) (err error) {
	n := (len(data)*8 + LimbBits - 1) / LimbBits
	if n < 1 {
		n = 1
	}

	limbs := make([]Limb, n)
	for i := 0; i < len(data); i++ {
		b := data[len(data)-1-i]
		limbs[i*8/LimbBits] |= Limb(b) << uint(i*8%LimbBits)
	}

	x.limbs = limbs

	return nil
}
