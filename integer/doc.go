// Package integer provides an unsigned integer of arbitrary size stored as a
// sequence of fixed width limbs.
//
// # Layout
//
// An Int is an ordered sequence of 32 bit limbs. Limbs are indexed most
// significant first, so index 0 holds the highest order bits and index
// Len()-1 holds the lowest. Bits are numbered the other way around: bit 0 is
// the least significant bit of the least significant limb.
//
//	index  |     0     |     1     | ... |  Len()-1  |
//	bits   | 32n-1 ... |           | ... | 31 ... 0  |
//
// Limbs carry magnitude only. There is no sign bit and Not flips bits within
// each limb without any two's complement meaning.
//
// # Length
//
// An Int always has at least one limb; zero is a single zero limb. Leading
// (most significant) zero limbs are kept unless an operation says otherwise,
// so two Ints may hold the same value with different lengths. Use Equal or
// Cmp to compare values and Normalize to trim.
//
// # Binary operations
//
// And, Or, Xor, and Add come in two forms. The method form mutates and
// returns its receiver after padding the receiver to the argument's length.
// The function form copies its first argument and applies the method to the
// copy. The argument is never modified and is treated as zero extended on its
// most significant side.
//
// # Ownership
//
// An Int owns its limbs. Copy produces an independent Int. Release wipes and
// drops the storage; any later use of the released Int panics. An Int is not
// safe for concurrent use; give each goroutine its own Copy.
package integer
