// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package standalone

import (
	"fmt"

	"github.com/decred/powcore/chaincfg"
	"github.com/decred/powcore/chaincfg/chainhash"
	"github.com/decred/powcore/math/uint256"
	"github.com/decred/powcore/wire"
)

// DiffBitsToUint256 converts the compact representation used to encode
// difficulty targets to an unsigned 256-bit integer.  The representation is
// similar to IEEE754 floating point numbers.
//
// Like IEEE754 floating point, there are three basic components: the sign,
// the exponent, and the mantissa.  They are broken out as follows:
//
//  1. the most significant 8 bits represent the unsigned base 256 exponent
//  2. zero-based bit 23 (the 24th bit) represents the sign bit
//  3. the least significant 23 bits represent the mantissa
//
// Diagram:
//
//	-------------------------------------------------
//	|   Exponent     |    Sign    |    Mantissa     |
//	|-----------------------------------------------|
//	| 8 bits [31-24] | 1 bit [23] | 23 bits [22-00] |
//	-------------------------------------------------
//
// The formula to calculate N is:
//
//	N = (-1^sign) * mantissa * 256^(exponent-3)
//
// The encoding is capable of representing values much larger than the maximum
// value of an unsigned 256-bit integer.  Such values are reduced modulo 2^256,
// that is, any bits shifted beyond the most significant word are discarded,
// and the overflows flag reports that the discarded bits were not all zero.
// The isNegative flag reports whether or not the sign bit is set.
func DiffBitsToUint256(bits uint32) (n uint256.Uint256, isNegative bool, overflows bool) {
	// Extract the mantissa, sign bit, and exponent.
	mantissa := bits & 0x007fffff
	isSignBitSet := bits&0x00800000 != 0
	exponent := bits >> 24

	// Nothing to do when the mantissa is zero as any multiple of it will
	// necessarily also be 0 and therefore it can never be negative or overflow.
	if mantissa == 0 {
		return n, false, false
	}

	// Since the base for the exponent is 256 = 2^8, the exponent is a multiple
	// of 8 and thus the full 256-bit number is computed by shifting the
	// mantissa right or left accordingly.
	if exponent <= 3 {
		n.SetUint64(uint64(mantissa >> (8 * (3 - exponent))))
		return n, isSignBitSet, false
	}

	// Any encoded exponent of 35 or greater shifts every mantissa bit out of
	// the 256-bit range because 256/8 + 3 = 35.  An exponent of 34 leaves 8
	// bits available and 33 leaves 16 bits, while 32 or lower can never lose
	// any of the 23 mantissa bits.
	overflows = exponent >= 35 || (exponent >= 34 && mantissa > 0xff) ||
		(exponent >= 33 && mantissa > 0xffff)
	n.SetUint64(uint64(mantissa))
	n.Lsh(8 * (exponent - 3))
	return n, isSignBitSet, overflows
}

// CompactToTarget converts the compact difficulty bits to the target
// difficulty the bits represent.
//
// Bits with the sign bit set do not describe a valid target and result in a
// target of zero which no hash can satisfy.  Bits with an exponent that pushes
// the mantissa beyond 256 bits result in the wrapped value described by
// DiffBitsToUint256.
func CompactToTarget(bits uint32) uint256.Uint256 {
	target, isNegative, _ := DiffBitsToUint256(bits)
	if isNegative {
		return uint256.Uint256{}
	}
	return target
}

// HeaderTarget returns the target difficulty encoded by the bits of the
// provided header.
func HeaderTarget(header *wire.BlockHeader) uint256.Uint256 {
	return CompactToTarget(header.Bits)
}

// uint256ToDiffBits converts a uint256 to a compact representation using an
// unsigned 32-bit integer.  The compact representation only provides 23 bits of
// precision, so values larger than (2^23 - 1) only encode the most significant
// digits of the number.  See DiffBitsToUint256 for details.
//
// NOTE: The only difference between this function and the exported variant is
// that this one accepts a parameter to indicate whether or not the encoding
// should be for a negative value.  It is only used to produce negative
// encodings for testing purposes.
func uint256ToDiffBits(n *uint256.Uint256, isNegative bool) uint32 {
	// No need to do any work if it's zero.
	if n.IsZero() {
		return 0
	}

	// Since the base for the exponent is 256, the exponent can be treated as
	// the number of bytes it takes to represent the value.  So, shift the
	// number right or left accordingly.  This is equivalent to:
	// mantissa = n / 256^(exponent-3)
	var mantissa uint32
	exponent := uint32((n.BitLen() + 7) / 8)
	if exponent <= 3 {
		mantissa = n.Uint32() << (8 * (3 - exponent))
	} else {
		// Use a copy to avoid modifying the caller's original value.
		mantissa = new(uint256.Uint256).RshVal(n, 8*(exponent-3)).Uint32()
	}

	// When the mantissa already has the sign bit set, the number is too large
	// to fit into the available 23-bits, so divide the number by 256 and
	// increment the exponent accordingly.
	if mantissa&0x00800000 != 0 {
		mantissa >>= 8
		exponent++
	}

	// Pack the exponent, sign bit, and mantissa into an unsigned 32-bit int and
	// return it.
	bits := exponent<<24 | mantissa
	if isNegative {
		bits |= 0x00800000
	}
	return bits
}

// Uint256ToDiffBits converts a uint256 to a compact representation using an
// unsigned 32-bit integer.  The compact representation only provides 23 bits of
// precision, so values larger than (2^23 - 1) only encode the most significant
// digits of the number.  See DiffBitsToUint256 for details.
func Uint256ToDiffBits(n *uint256.Uint256) uint32 {
	const isNegative = false
	return uint256ToDiffBits(n, isNegative)
}

// HashToUint256 converts the provided hash to an unsigned 256-bit integer that
// can be used to perform math comparisons.
func HashToUint256(hash *chainhash.Hash) uint256.Uint256 {
	// Hashes are a stream of bytes that do not have any inherent endianness to
	// them, so they are interpreted as little endian for the purposes of
	// treating them as a uint256.
	return *new(uint256.Uint256).SetBytesLE((*[32]byte)(hash))
}

// CalcWorkFromTarget calculates the amount of work represented by the provided
// target difficulty.  A lower target equates to higher actual difficulty, so
// the work value is the inverse of the target scaled by 2^256:
//
//	work = 2^256 / (target+1)
//
// Since 2^256 can't be represented by a uint256, the calc is performed as
// follows:
//
//	work = ((2^256-target-1) / (target+1))+1
//
// where 2^256-target-1 is the one's complement of target.  When target is
// 2^256-1, the divisor wraps to zero, the division results in zero, and the
// work is therefore 1 which is the exact result.  A target of zero also wraps
// and results in zero work.
func CalcWorkFromTarget(target *uint256.Uint256) uint256.Uint256 {
	divisor := new(uint256.Uint256).SetUint64(1).Add(target)
	work := new(uint256.Uint256).Set(target)
	return *work.Not().Div(divisor).AddUint64(1)
}

// CalcWork calculates a work value from difficulty bits.  The main chain is
// selected by choosing the chain that has the most proof of work, so the
// values returned from this function are summed to compare competing chains.
//
// See CompactToTarget for how invalid bits are decoded and CalcWorkFromTarget
// for how the work is derived from the target.
func CalcWork(diffBits uint32) uint256.Uint256 {
	target := CompactToTarget(diffBits)
	if target.IsZero() {
		return uint256.Uint256{}
	}
	return CalcWorkFromTarget(&target)
}

// CalcDifficulty returns the difficulty represented by the provided bits
// relative to the proof-of-work limit of the provided network.  It is the
// ratio of the limit to the target truncated to its low 64 bits, so bits that
// encode the limit itself have a difficulty of 1.  Bits that decode to a zero
// target have a difficulty of zero.
func CalcDifficulty(diffBits uint32, params *chaincfg.Params) uint64 {
	target := CompactToTarget(diffBits)
	if target.IsZero() {
		return 0
	}
	var difficulty uint256.Uint256
	difficulty.Div2(params.PowLimit, &target)
	return difficulty.Uint64()
}

// checkProofOfWorkRange ensures the provided target difficulty is in min/max
// range per the provided proof-of-work limit.
func checkProofOfWorkRange(diffBits uint32, powLimit *uint256.Uint256) (uint256.Uint256, error) {
	// The target difficulty must be larger than zero and not overflow and less
	// than the maximum value that can be represented by a uint256.
	target, isNegative, overflows := DiffBitsToUint256(diffBits)
	if isNegative {
		str := fmt.Sprintf("target difficulty bits %08x is a negative value",
			diffBits)
		log.Debug(str)
		return uint256.Uint256{}, ruleError(ErrUnexpectedDifficulty, str)
	}
	if overflows {
		str := fmt.Sprintf("target difficulty bits %08x is higher than the "+
			"max limit %064x", diffBits, powLimit)
		log.Debug(str)
		return uint256.Uint256{}, ruleError(ErrUnexpectedDifficulty, str)
	}
	if target.IsZero() {
		str := "target difficulty is zero"
		log.Debug(str)
		return uint256.Uint256{}, ruleError(ErrUnexpectedDifficulty, str)
	}

	// The target difficulty must not exceed the maximum allowed.
	if target.Gt(powLimit) {
		str := fmt.Sprintf("target difficulty %064x is higher than max %064x",
			target, powLimit)
		log.Debug(str)
		return uint256.Uint256{}, ruleError(ErrUnexpectedDifficulty, str)
	}

	return target, nil
}

// CheckProofOfWorkRange ensures the provided target difficulty represented by
// the given header bits is in min/max range per the provided proof-of-work
// limit.
func CheckProofOfWorkRange(diffBits uint32, powLimit *uint256.Uint256) error {
	_, err := checkProofOfWorkRange(diffBits, powLimit)
	return err
}

// checkProofOfWorkHash ensures the provided hash is not higher than the given
// target.
func checkProofOfWorkHash(powHash *chainhash.Hash, target *uint256.Uint256) error {
	hashNum := HashToUint256(powHash)
	if hashNum.Gt(target) {
		str := fmt.Sprintf("proof of work hash %064x is higher than expected "+
			"max of %064x", hashNum, target)
		log.Debug(str)
		return ruleError(ErrHighHash, str)
	}
	return nil
}

// CheckProofOfWork ensures the target difficulty encoded by the header bits is
// the provided required target and that the header hashes to a value that is
// not higher than it.
//
// The two conditions are reported as distinct error kinds.  A target that
// differs from the required one is always ErrTargetMismatch regardless of the
// header hash, while a matching target with a hash above it is ErrHighHash.
func CheckProofOfWork(header *wire.BlockHeader, requiredTarget *uint256.Uint256) error {
	target := HeaderTarget(header)
	if !target.Eq(requiredTarget) {
		str := fmt.Sprintf("block target difficulty of %064x (bits %08x) "+
			"does not match the required target of %064x", target,
			header.Bits, requiredTarget)
		log.Debug(str)
		return ruleError(ErrTargetMismatch, str)
	}

	// The block hash must be less than or equal to the target difficulty.
	hash := header.BlockHash()
	return checkProofOfWorkHash(&hash, &target)
}
