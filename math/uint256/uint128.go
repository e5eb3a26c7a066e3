// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package uint256

import (
	"fmt"
	"math/big"
)

// Uint128 implements unsigned 128-bit fixed-precision arithmetic modulo 2^128.
// It shares the word-based implementation with Uint256 and only provides the
// subset of operations needed for intermediate values that are known to fit.
type Uint128 struct {
	// n[0] is the least significant word.
	n [2]uint64
}

// SetUint64 sets the uint128 to the passed unsigned 64-bit integer.
//
// The uint128 is returned to support chaining.
func (n *Uint128) SetUint64(n2 uint64) *Uint128 {
	n.n[0] = n2
	n.n[1] = 0
	return n
}

// SetWords sets the uint128 from its high and low 64-bit halves.
//
// The uint128 is returned to support chaining.
func (n *Uint128) SetWords(hi, lo uint64) *Uint128 {
	n.n[0] = lo
	n.n[1] = hi
	return n
}

// Words returns the high and low 64-bit halves of the uint128.
func (n *Uint128) Words() (hi, lo uint64) {
	return n.n[1], n.n[0]
}

// IsZero returns whether or not the uint128 is equal to zero.
func (n *Uint128) IsZero() bool {
	return n.n[0] == 0 && n.n[1] == 0
}

// Uint64 returns the least significant 64 bits of the uint128.
func (n *Uint128) Uint64() uint64 {
	return n.n[0]
}

// Cmp compares the two uint128s and returns -1, 0, or 1 depending on whether
// the uint128 is less than, equal to, or greater than the given one.
func (n *Uint128) Cmp(n2 *Uint128) int {
	return wordsCmp(n.n[:], n2.n[:])
}

// Eq returns whether or not the two uint128s represent the same value.
func (n *Uint128) Eq(n2 *Uint128) bool {
	return n.n == n2.n
}

// BitLen returns the minimum number of bits required to represent the uint128.
func (n *Uint128) BitLen() uint16 {
	return uint16(wordsBitLen(n.n[:]))
}

// TrailingZeros returns the number of consecutive least significant zero bits
// of the uint128.  The result is 128 when the value is 0.
func (n *Uint128) TrailingZeros() uint16 {
	return uint16(wordsTrailingZeros(n.n[:]))
}

// Lsh shifts the uint128 left by the given number of bits.
//
// The uint128 is returned to support chaining.
func (n *Uint128) Lsh(bits uint32) *Uint128 {
	wordsLsh(n.n[:], n.n[:], bits)
	return n
}

// Rsh shifts the uint128 right by the given number of bits.
//
// The uint128 is returned to support chaining.
func (n *Uint128) Rsh(bits uint32) *Uint128 {
	wordsRsh(n.n[:], n.n[:], bits)
	return n
}

// Mask clears every bit at position bits and above.
//
// The uint128 is returned to support chaining.
func (n *Uint128) Mask(bits uint32) *Uint128 {
	wordsMask(n.n[:], bits)
	return n
}

// Not computes the bitwise not of the uint128.
//
// The uint128 is returned to support chaining.
func (n *Uint128) Not() *Uint128 {
	wordsNot(n.n[:], n.n[:])
	return n
}

// Add adds the passed uint128 modulo 2^128.
//
// The uint128 is returned to support chaining.
func (n *Uint128) Add(n2 *Uint128) *Uint128 {
	wordsAdd(n.n[:], n.n[:], n2.n[:])
	return n
}

// Increment adds one modulo 2^128.
//
// The uint128 is returned to support chaining.
func (n *Uint128) Increment() *Uint128 {
	wordsAddUint64(n.n[:], 1)
	return n
}

// Sub subtracts the passed uint128 modulo 2^128.
//
// The uint128 is returned to support chaining.
func (n *Uint128) Sub(n2 *Uint128) *Uint128 {
	wordsSub(n.n[:], n.n[:], n2.n[:])
	return n
}

// MulUint32 multiplies the uint128 by the passed uint32 modulo 2^128.
//
// The uint128 is returned to support chaining.
func (n *Uint128) MulUint32(n2 uint32) *Uint128 {
	wordsMulUint32(n.n[:], n2)
	return n
}

// Div stores the floor of n / divisor in n.  Dividing by zero results in zero.
//
// The uint128 is returned to support chaining.
func (n *Uint128) Div(divisor *Uint128) *Uint128 {
	wordsDiv(n.n[:], n.n[:], divisor.n[:])
	return n
}

// ToBig returns the uint128 as a big integer.
func (n *Uint128) ToBig() *big.Int {
	hi := new(big.Int).SetUint64(n.n[1])
	return hi.Lsh(hi, 64).Or(hi, new(big.Int).SetUint64(n.n[0]))
}

// Format implements fmt.Formatter with the same verbs and flags as big.Int.
func (n Uint128) Format(s fmt.State, ch rune) {
	n.ToBig().Format(s, ch)
}
