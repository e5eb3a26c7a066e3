// Copyright (c) 2021-2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package uint256

import "math/bits"

// The functions in this file implement fixed-precision unsigned arithmetic over
// little-endian word slices where index 0 is the least significant 64-bit word.
// Every fixed width type in this package is an explicit instantiation over a
// fixed size array that delegates to these functions, so the arithmetic itself
// only exists once.
//
// Unless otherwise noted, all slices passed to a single function must have the
// same length and the destination may alias any of the sources.

// maxWords is the number of words in the widest type built on these functions.
// It bounds the stack scratch space used by division.
const maxWords = 4

// wordsIsZero returns whether or not all words are zero.
func wordsIsZero(w []uint64) bool {
	for _, v := range w {
		if v != 0 {
			return false
		}
	}
	return true
}

// wordsZero sets all words to zero.
func wordsZero(w []uint64) {
	for i := range w {
		w[i] = 0
	}
}

// wordsBitLen returns the minimum number of bits required to represent the
// value.  The result is 0 when the value is 0.
func wordsBitLen(w []uint64) int {
	for i := len(w) - 1; i >= 0; i-- {
		if w[i] != 0 {
			return i*64 + bits.Len64(w[i])
		}
	}
	return 0
}

// wordsTrailingZeros returns the number of consecutive least significant zero
// bits.  The result is the full bit width when the value is 0.
func wordsTrailingZeros(w []uint64) int {
	for i, v := range w {
		if v != 0 {
			return i*64 + bits.TrailingZeros64(v)
		}
	}
	return len(w) * 64
}

// wordsCmp compares a and b starting from the most significant word and
// returns -1, 0, or +1 when a is less than, equal to, or greater than b.
func wordsCmp(a, b []uint64) int {
	for i := len(a) - 1; i >= 0; i-- {
		switch {
		case a[i] < b[i]:
			return -1
		case a[i] > b[i]:
			return 1
		}
	}
	return 0
}

// wordsLsh sets dst to src shifted left by n bits.  Bits shifted beyond the
// width are discarded and the result is zero for n >= the width.
func wordsLsh(dst, src []uint64, n uint32) {
	if uint64(n) >= uint64(len(src))*64 {
		wordsZero(dst)
		return
	}

	// Work from the most significant word down so that every source word is
	// read before the destination word at the same or a higher index is
	// overwritten when the slices alias.
	wordShift := int(n / 64)
	bitShift := n % 64
	for i := len(dst) - 1; i >= 0; i-- {
		j := i - wordShift
		if j < 0 {
			dst[i] = 0
			continue
		}
		v := src[j] << bitShift
		if bitShift != 0 && j > 0 {
			v |= src[j-1] >> (64 - bitShift)
		}
		dst[i] = v
	}
}

// wordsRsh sets dst to src shifted right by n bits.  The result is zero for
// n >= the width.
func wordsRsh(dst, src []uint64, n uint32) {
	if uint64(n) >= uint64(len(src))*64 {
		wordsZero(dst)
		return
	}

	// Work from the least significant word up for the same aliasing reason
	// as the left shift.
	wordShift := int(n / 64)
	bitShift := n % 64
	last := len(src) - 1
	for i := 0; i < len(dst); i++ {
		j := i + wordShift
		if j > last {
			dst[i] = 0
			continue
		}
		v := src[j] >> bitShift
		if bitShift != 0 && j < last {
			v |= src[j+1] << (64 - bitShift)
		}
		dst[i] = v
	}
}

// wordsMask clears all bits at positions n and above while leaving the lower
// bits untouched.  It is a no-op when n is at least the width.
func wordsMask(w []uint64, n uint32) {
	for i := range w {
		lo := uint64(i) * 64
		switch {
		case uint64(n) >= lo+64:
			continue
		case uint64(n) <= lo:
			w[i] = 0
		default:
			w[i] &= (uint64(1) << (uint64(n) - lo)) - 1
		}
	}
}

// wordsMulUint32 multiplies w by k in place.  The full high half of each
// 128-bit word product is carried into the next word and the carry out of the
// most significant word is discarded.
func wordsMulUint32(w []uint64, k uint32) {
	var carry uint64
	for i := range w {
		hi, lo := bits.Mul64(w[i], uint64(k))
		var c uint64
		w[i], c = bits.Add64(lo, carry, 0)

		// The high half of a 64x32-bit product is less than 2^32, so adding
		// the single carry bit can never overflow.
		carry = hi + c
	}
}

// wordsAdd sets dst to a + b and returns the carry out of the most significant
// word.
func wordsAdd(dst, a, b []uint64) uint64 {
	var carry uint64
	for i := range dst {
		dst[i], carry = bits.Add64(a[i], b[i], carry)
	}
	return carry
}

// wordsAddUint64 adds v to w in place, rippling the carry through every word,
// and returns the carry out of the most significant word.
func wordsAddUint64(w []uint64, v uint64) uint64 {
	carry := v
	for i := range w {
		if carry == 0 {
			break
		}
		w[i], carry = bits.Add64(w[i], carry, 0)
	}
	return carry
}

// wordsSub sets dst to a - b and returns the borrow out of the most
// significant word.
func wordsSub(dst, a, b []uint64) uint64 {
	var borrow uint64
	for i := range dst {
		dst[i], borrow = bits.Sub64(a[i], b[i], borrow)
	}
	return borrow
}

// wordsSubUint64 subtracts v from w in place and returns the borrow out of the
// most significant word.
func wordsSubUint64(w []uint64, v uint64) uint64 {
	borrow := v
	for i := range w {
		if borrow == 0 {
			break
		}
		w[i], borrow = bits.Sub64(w[i], borrow, 0)
	}
	return borrow
}

// wordsNot sets dst to the bitwise complement of src.
func wordsNot(dst, src []uint64) {
	for i := range dst {
		dst[i] = ^src[i]
	}
}

// wordsDiv sets quo to the floor of num / den using binary long division.
// There is no native instruction for dividing integers wider than a word, so
// each quotient bit is produced by shifting the next dividend bit into a
// running remainder, comparing it against the divisor, and subtracting when it
// is at least as large.  The result is exact.
//
// Division by zero produces a quotient of zero.  The slices must not be longer
// than maxWords.
func wordsDiv(quo, num, den []uint64) {
	if wordsIsZero(den) || wordsCmp(num, den) < 0 {
		wordsZero(quo)
		return
	}

	// Divisors that fit in a single word are common (notably in the work and
	// difficulty calculations), so use the native 128-by-64 division for them.
	n := len(num)
	if wordsBitLen(den) <= 64 {
		d := den[0]
		var q [maxWords]uint64
		var rem uint64
		for i := n - 1; i >= 0; i-- {
			q[i], rem = bits.Div64(rem, num[i], d)
		}
		copy(quo, q[:n])
		return
	}

	var q, r [maxWords]uint64
	rem := r[:n]
	for i := wordsBitLen(num) - 1; i >= 0; i-- {
		// The remainder is always less than the divisor, so when shifting it
		// left pushes a bit out of the top word, the true value necessarily
		// exceeds the divisor and the wrapped subtraction below is exact.
		overflow := rem[n-1] >> 63
		wordsLsh(rem, rem, 1)
		rem[0] |= (num[i/64] >> (uint(i) % 64)) & 1
		if overflow != 0 || wordsCmp(rem, den) >= 0 {
			wordsSub(rem, rem, den)
			q[i/64] |= 1 << (uint(i) % 64)
		}
	}
	copy(quo, q[:n])
}
