// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package difficulty provides the arithmetic between difficulty targets, their
// compact 32-bit representation, and the work they imply.
package difficulty

import (
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/holiman/uint256"
)

// CompactToTarget converts a compact representation of a whole number N to a
// 256-bit target. The representation is similar to IEEE754 floating point
// numbers.
//
// Like IEEE754 floating point, there are three basic components: the sign,
// the exponent, and the mantissa. They are broken out as follows:
//
//   - the most significant 8 bits represent the unsigned base 256 exponent
//   - bit 23 (the 24th bit) represents the sign bit
//   - the least significant 23 bits represent the mantissa
//
//	-------------------------------------------------
//	|   Exponent     |    Sign    |    Mantissa     |
//	-------------------------------------------------
//	| 8 bits [31-24] | 1 bit [23] | 23 bits [22-00] |
//	-------------------------------------------------
//
// The formula to calculate N is:
//
//	N = (-1^sign) * mantissa * 256^(exponent-3)
//
// Targets are unsigned 256-bit quantities, so a set sign bit has no valid
// interpretation and decodes to the zero target, which no hash can satisfy.
// The same goes for an exponent that would shift the mantissa past 256 bits;
// that case additionally reports overflow so callers can distinguish it from
// an honest zero.
func CompactToTarget(compact uint32) (target *uint256.Int, overflow bool) {
	// Extract the mantissa, sign bit, and exponent.
	mantissa := compact & 0x007fffff
	isNegative := compact&0x00800000 != 0
	exponent := uint(compact >> 24)

	if isNegative {
		return new(uint256.Int), false
	}

	// Since the base for the exponent is 256, the exponent can be treated
	// as the number of bytes to represent the full 256-bit number. So,
	// treat the exponent as the number of bytes and shift the mantissa
	// right or left accordingly. This is equivalent to:
	// N = mantissa * 256^(exponent-3)
	target = new(uint256.Int)
	if exponent <= 3 {
		return target.SetUint64(uint64(mantissa >> (8 * (3 - exponent)))), false
	}

	target.SetUint64(uint64(mantissa))
	shift := 8 * (exponent - 3)
	if target.BitLen()+int(shift) > 256 {
		return new(uint256.Int), true
	}
	return target.Lsh(target, shift), false
}

// TargetToCompact converts a 256-bit target to its compact representation.
// The compact representation only provides 23 bits of precision, so values
// larger than (2^23 - 1) only encode the most significant digits of the
// number. See CompactToTarget for details.
//
// The encoding is canonical: the minimal byte length is used and a mantissa
// whose top bit would collide with the sign bit is shifted down a byte with
// the exponent bumped to compensate. Re-encoding any decoded target therefore
// always yields the same compact value.
func TargetToCompact(target *uint256.Int) uint32 {
	// No need to do any work if it's zero.
	if target.IsZero() {
		return 0
	}

	// Since the base for the exponent is 256, the exponent can be treated
	// as the number of bytes. So, shift the number right or left
	// accordingly. This is equivalent to:
	// mantissa = target / 256^(exponent-3)
	var mantissa uint32
	exponent := uint(target.ByteLen())
	if exponent <= 3 {
		mantissa = uint32(target.Uint64() << (8 * (3 - exponent)))
	} else {
		shifted := new(uint256.Int).Rsh(target, 8*(exponent-3))
		mantissa = uint32(shifted.Uint64())
	}

	// When the mantissa already has the sign bit set, the number is too
	// large to fit into the available 23-bits, so divide the number by 256
	// and increment the exponent accordingly.
	if mantissa&0x00800000 != 0 {
		mantissa >>= 8
		exponent++
	}

	// Pack the exponent and mantissa into an unsigned 32-bit int and
	// return it. The sign bit is never set since targets are unsigned.
	return uint32(exponent)<<24 | mantissa
}

// CalcWork calculates a work value from difficulty bits. The difficulty for
// generating a block is raised by decreasing the value which the generated
// hash must be less than. Since a lower target difficulty value equates to
// higher actual difficulty, the work value accumulated along a chain must be
// the inverse of the target:
//
//	work = 2^256 / (target + 1)
//
// 2^256 does not fit in 256 bits, so the quotient is computed as
// (^target)/(target+1) + 1 in wrapping 256-bit arithmetic; the bitwise
// complement of target is exactly 2^256 - 1 - target.
//
// A zero target, including the decoding of any malformed compact value, is
// unsatisfiable by every hash, so its work saturates to the maximum 256-bit
// value.
func CalcWork(bits uint32) *uint256.Int {
	target, overflow := CompactToTarget(bits)
	if overflow || target.IsZero() {
		return new(uint256.Int).Not(new(uint256.Int))
	}

	work := new(uint256.Int).Not(target)
	denominator := new(uint256.Int).AddUint64(target, 1)
	work.Div(work, denominator)
	return work.AddUint64(work, 1)
}

// HashToTarget converts a chainhash.Hash into a 256-bit integer that can be
// compared against a target.
func HashToTarget(hash *chainhash.Hash) *uint256.Int {
	// A Hash is in little-endian, but uint256 wants the bytes in
	// big-endian, so reverse them.
	var buf [chainhash.HashSize]byte
	for i, b := range hash {
		buf[chainhash.HashSize-1-i] = b
	}

	return new(uint256.Int).SetBytes(buf[:])
}
