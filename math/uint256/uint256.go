// Copyright (c) 2021-2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package uint256 implements fixed precision unsigned 256-bit integer
// arithmetic.
package uint256

import (
	"encoding/binary"
	"fmt"
	"math/big"
)

// Uint256 implements zero-allocation, unsigned 256-bit fixed-precision
// arithmetic.  All operations are performed modulo 2^256, so callers may rely
// on "wrap around" semantics.  No operation panics, including division by zero
// which produces zero.
type Uint256 struct {
	// The uint256 is represented as 4 unsigned 64-bit integers in base 2^64.
	//
	// The following depicts the internal representation:
	//
	//  --------------------------------------------------------------------
	// |      n[3]      |      n[2]      |      n[1]      |      n[0]      |
	// | 64 bits        | 64 bits        | 64 bits        | 64 bits        |
	// | Mult: 2^(64*3) | Mult: 2^(64*2) | Mult: 2^(64*1) | Mult: 2^(64*0) |
	//  -------------------------------------------------------------------
	//
	// For example, consider the number:
	//  0x0000000000000000080000000000000000000000000001000000000000000001 =
	//  2^187 + 2^72 + 1
	//
	// It would be represented as:
	//  n[0] = 1
	//  n[1] = 2^8
	//  n[2] = 2^59
	//  n[3] = 0
	n [4]uint64
}

// Set sets the uint256 equal to the same value as the passed one.
//
// The uint256 is returned to support chaining.  This enables syntax like:
// n := new(Uint256).Set(n2).AddUint64(1) so that n = n2 + 1 where n2 is not
// modified.
func (n *Uint256) Set(n2 *Uint256) *Uint256 {
	*n = *n2
	return n
}

// SetUint64 sets the uint256 to the passed unsigned 64-bit integer.  This is a
// convenience function since it is fairly common to perform arithmetic with
// small native integers.
//
// The uint256 is returned to support chaining.  This enables syntax like:
// n := new(Uint256).SetUint64(2).MulUint32(n2) so that n = 2 * n2.
func (n *Uint256) SetUint64(n2 uint64) *Uint256 {
	n.n[0] = n2
	n.n[1] = 0
	n.n[2] = 0
	n.n[3] = 0
	return n
}

// SetBytes interprets the provided array as a 256-bit big-endian unsigned
// integer and sets the uint256 to the result.
//
// The uint256 is returned to support chaining.
func (n *Uint256) SetBytes(b *[32]byte) *Uint256 {
	n.n[3] = binary.BigEndian.Uint64(b[0:8])
	n.n[2] = binary.BigEndian.Uint64(b[8:16])
	n.n[1] = binary.BigEndian.Uint64(b[16:24])
	n.n[0] = binary.BigEndian.Uint64(b[24:32])
	return n
}

// SetByteSlice interprets the provided slice as a big-endian unsigned integer
// (meaning it is truncated to the final 32 bytes so that it is modulo 2^256),
// and sets the uint256 to the result.
//
// The uint256 is returned to support chaining.
func (n *Uint256) SetByteSlice(b []byte) *Uint256 {
	var b32 [32]byte
	if len(b) > 32 {
		b = b[len(b)-32:]
	}
	copy(b32[32-len(b):], b)
	return n.SetBytes(&b32)
}

// SetBytesLE interprets the provided array as a 256-bit little-endian unsigned
// integer and sets the uint256 to the result.
//
// The uint256 is returned to support chaining.
func (n *Uint256) SetBytesLE(b *[32]byte) *Uint256 {
	n.n[0] = binary.LittleEndian.Uint64(b[0:8])
	n.n[1] = binary.LittleEndian.Uint64(b[8:16])
	n.n[2] = binary.LittleEndian.Uint64(b[16:24])
	n.n[3] = binary.LittleEndian.Uint64(b[24:32])
	return n
}

// PutBytes unpacks the uint256 to a 32-byte big-endian value using the passed
// byte array.
func (n *Uint256) PutBytes(b *[32]byte) {
	binary.BigEndian.PutUint64(b[0:8], n.n[3])
	binary.BigEndian.PutUint64(b[8:16], n.n[2])
	binary.BigEndian.PutUint64(b[16:24], n.n[1])
	binary.BigEndian.PutUint64(b[24:32], n.n[0])
}

// PutBytesLE unpacks the uint256 to a 32-byte little-endian value using the
// passed byte array.
func (n *Uint256) PutBytesLE(b *[32]byte) {
	binary.LittleEndian.PutUint64(b[0:8], n.n[0])
	binary.LittleEndian.PutUint64(b[8:16], n.n[1])
	binary.LittleEndian.PutUint64(b[16:24], n.n[2])
	binary.LittleEndian.PutUint64(b[24:32], n.n[3])
}

// Bytes unpacks the uint256 to a 32-byte big-endian array.
func (n *Uint256) Bytes() [32]byte {
	var b [32]byte
	n.PutBytes(&b)
	return b
}

// BytesLE unpacks the uint256 to a 32-byte little-endian array.
func (n *Uint256) BytesLE() [32]byte {
	var b [32]byte
	n.PutBytesLE(&b)
	return b
}

// IsZero returns whether or not the uint256 is equal to zero.
func (n *Uint256) IsZero() bool {
	return n.n[0] == 0 && n.n[1] == 0 && n.n[2] == 0 && n.n[3] == 0
}

// IsUint64 returns whether or not the uint256 can be converted to a uint64
// without any loss of precision.  In other words, 0 <= n < 2^64.
func (n *Uint256) IsUint64() bool {
	return (n.n[1] | n.n[2] | n.n[3]) == 0
}

// Uint32 returns the least significant 32 bits of the uint256.
func (n *Uint256) Uint32() uint32 {
	return uint32(n.n[0])
}

// Uint64 returns the least significant 64 bits of the uint256.
func (n *Uint256) Uint64() uint64 {
	return n.n[0]
}

// Eq returns whether or not the two uint256s represent the same value.
func (n *Uint256) Eq(n2 *Uint256) bool {
	return n.n == n2.n
}

// EqUint64 returns whether or not the uint256 represents the same value as the
// given uint64.
func (n *Uint256) EqUint64(n2 uint64) bool {
	return n.n[0] == n2 && n.IsUint64()
}

// Cmp compares the two uint256s and returns -1, 0, or 1 depending on whether
// the uint256 is less than, equal to, or greater than the given one.  The
// comparison is lexicographic from the most significant word to the least.
func (n *Uint256) Cmp(n2 *Uint256) int {
	return wordsCmp(n.n[:], n2.n[:])
}

// Lt returns whether or not the uint256 is less than the given one.
func (n *Uint256) Lt(n2 *Uint256) bool {
	return n.Cmp(n2) < 0
}

// LtEq returns whether or not the uint256 is less than or equal to the given
// one.
func (n *Uint256) LtEq(n2 *Uint256) bool {
	return n.Cmp(n2) <= 0
}

// Gt returns whether or not the uint256 is greater than the given one.
func (n *Uint256) Gt(n2 *Uint256) bool {
	return n.Cmp(n2) > 0
}

// GtEq returns whether or not the uint256 is greater than or equal to the given
// one.
func (n *Uint256) GtEq(n2 *Uint256) bool {
	return n.Cmp(n2) >= 0
}

// BitLen returns the minimum number of bits required to represent the uint256.
// The result is 0 when the value is 0.
func (n *Uint256) BitLen() uint16 {
	return uint16(wordsBitLen(n.n[:]))
}

// TrailingZeros returns the number of consecutive least significant zero bits
// of the uint256.  The result is 256 when the value is 0.
func (n *Uint256) TrailingZeros() uint16 {
	return uint16(wordsTrailingZeros(n.n[:]))
}

// Lsh shifts the uint256 to the left by the given number of bits and stores the
// result in n.  Bits shifted beyond 256 are discarded, so shifting by 256 or
// more bits results in 0.
//
// The uint256 is returned to support chaining.
func (n *Uint256) Lsh(bits uint32) *Uint256 {
	wordsLsh(n.n[:], n.n[:], bits)
	return n
}

// LshVal shifts the passed uint256 to the left by the given number of bits and
// stores the result in n.
//
// The uint256 is returned to support chaining.
func (n *Uint256) LshVal(n2 *Uint256, bits uint32) *Uint256 {
	wordsLsh(n.n[:], n2.n[:], bits)
	return n
}

// Rsh shifts the uint256 to the right by the given number of bits and stores
// the result in n.  Shifting by 256 or more bits results in 0.
//
// The uint256 is returned to support chaining.
func (n *Uint256) Rsh(bits uint32) *Uint256 {
	wordsRsh(n.n[:], n.n[:], bits)
	return n
}

// RshVal shifts the passed uint256 to the right by the given number of bits and
// stores the result in n.
//
// The uint256 is returned to support chaining.
func (n *Uint256) RshVal(n2 *Uint256, bits uint32) *Uint256 {
	wordsRsh(n.n[:], n2.n[:], bits)
	return n
}

// Mask clears every bit at position bits and above while preserving the lower
// bits exactly.  Masking with 256 or more bits leaves the value unchanged.
//
// The uint256 is returned to support chaining.
func (n *Uint256) Mask(bits uint32) *Uint256 {
	wordsMask(n.n[:], bits)
	return n
}

// Not computes the bitwise not of the uint256 and stores the result in n.
//
// The uint256 is returned to support chaining.
func (n *Uint256) Not() *Uint256 {
	wordsNot(n.n[:], n.n[:])
	return n
}

// Negate computes the two's complement of the uint256 (2^256 - n) and stores
// the result in n.
//
// The uint256 is returned to support chaining.
func (n *Uint256) Negate() *Uint256 {
	return n.Not().Increment()
}

// Add adds the passed uint256 to the existing one modulo 2^256 and stores the
// result in n.
//
// The uint256 is returned to support chaining.
func (n *Uint256) Add(n2 *Uint256) *Uint256 {
	wordsAdd(n.n[:], n.n[:], n2.n[:])
	return n
}

// Add2 adds the passed two uint256s together modulo 2^256 and stores the
// result in n.
//
// The uint256 is returned to support chaining.
func (n *Uint256) Add2(n1, n2 *Uint256) *Uint256 {
	wordsAdd(n.n[:], n1.n[:], n2.n[:])
	return n
}

// AddUint64 adds the passed uint64 to the existing uint256 modulo 2^256 and
// stores the result in n.
//
// The uint256 is returned to support chaining.
func (n *Uint256) AddUint64(n2 uint64) *Uint256 {
	wordsAddUint64(n.n[:], n2)
	return n
}

// Increment adds one to the uint256 by rippling the carry through every word.
// The maximum value 2^256 - 1 wraps around to zero.
//
// The uint256 is returned to support chaining.
func (n *Uint256) Increment() *Uint256 {
	return n.AddUint64(1)
}

// Sub subtracts the passed uint256 from the existing one modulo 2^256 and
// stores the result in n.
//
// The uint256 is returned to support chaining.
func (n *Uint256) Sub(n2 *Uint256) *Uint256 {
	wordsSub(n.n[:], n.n[:], n2.n[:])
	return n
}

// Sub2 subtracts the second given uint256 from the first modulo 2^256 and
// stores the result in n.
//
// The uint256 is returned to support chaining.
func (n *Uint256) Sub2(n1, n2 *Uint256) *Uint256 {
	wordsSub(n.n[:], n1.n[:], n2.n[:])
	return n
}

// SubUint64 subtracts the given uint64 from the uint256 modulo 2^256 and
// stores the result in n.
//
// The uint256 is returned to support chaining.
func (n *Uint256) SubUint64(n2 uint64) *Uint256 {
	wordsSubUint64(n.n[:], n2)
	return n
}

// MulUint32 multiplies the uint256 by the passed uint32 modulo 2^256 and
// stores the result in n.
//
// The uint256 is returned to support chaining.
func (n *Uint256) MulUint32(n2 uint32) *Uint256 {
	wordsMulUint32(n.n[:], n2)
	return n
}

// Div divides the existing value in n by the passed divisor and stores the
// floor of the quotient in n.  Dividing by zero results in zero.
//
// The uint256 is returned to support chaining.
func (n *Uint256) Div(divisor *Uint256) *Uint256 {
	wordsDiv(n.n[:], n.n[:], divisor.n[:])
	return n
}

// Div2 divides the passed dividend by the passed divisor and stores the floor
// of the quotient in n.  Dividing by zero results in zero.
//
// The uint256 is returned to support chaining.
func (n *Uint256) Div2(dividend, divisor *Uint256) *Uint256 {
	wordsDiv(n.n[:], dividend.n[:], divisor.n[:])
	return n
}

// ToBig returns the uint256 as a big integer.
func (n *Uint256) ToBig() *big.Int {
	b := n.Bytes()
	return new(big.Int).SetBytes(b[:])
}

// SetBig sets the uint256 to the passed big integer modulo 2^256.  Negative
// values are interpreted as their two's complement modulo 2^256.
//
// The uint256 is returned to support chaining.
func (n *Uint256) SetBig(n2 *big.Int) *Uint256 {
	n.SetByteSlice(n2.Bytes())
	if n2.Sign() < 0 {
		n.Negate()
	}
	return n
}

// String returns the uint256 as a human-readable decimal string.
func (n Uint256) String() string {
	return n.ToBig().String()
}

// Format implements fmt.Formatter.  It accepts the same verbs and flags as
// big.Int, so for example %064x produces the value in hex with leading zeros.
func (n Uint256) Format(s fmt.State, ch rune) {
	n.ToBig().Format(s, ch)
}
