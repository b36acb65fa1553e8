// Package decimal reads base 10 numbers into integer.Int values.
//
// Input is a non-empty run of ASCII digits '0' through '9'. There is no sign,
// no separator, and no surrounding whitespace. Leading zeros are allowed and
// do not change the result.
//
// Digits are consumed most significant first. For each digit d the
// accumulator, itself an integer.Int, becomes acc * 10 + d. The multiply is
// built from additions (10 * acc = 8 * acc + 2 * acc), so every step is a limb
// sequence addition with carries crossing limb boundaries and extending the
// accumulator whenever the top limb overflows.
//
// The result is normalized: it has no most significant zero limbs beyond the
// first, so "0" and "000" both give a single zero limb and "4294967296" gives
// exactly two limbs.
package decimal
