// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2025 The Embercoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"fmt"
	"math/big"

	"github.com/embercoin/go-embercoin/chaincfg/chainhash"
)

// maxCompactExponent is the largest exponent a compact difficulty value may
// carry.  Anything larger would decode to a target wider than 256 bits.
const maxCompactExponent = 34

// HashToBig converts a chainhash.Hash into a big.Int that can be used to
// perform math comparisons.  The hash bytes are interpreted as a big-endian
// 256-bit unsigned integer.
func HashToBig(hash *chainhash.Hash) *big.Int {
	return new(big.Int).SetBytes(hash[:])
}

// CompactToBig converts a compact representation of a whole number N to a
// big integer.  The representation is similar to IEEE754 floating point
// numbers.
//
// It is broken out as follows:
//
//   - the most significant 8 bits represent the unsigned base 256 exponent
//   - the least significant 24 bits represent the coefficient
//
// The formula to calculate N is:
//
//	N = coefficient * 256^(exponent-3)
//
// This compact form is only used in embercoin to encode unsigned 256-bit
// numbers which represent difficulty targets.  Exponents above 34 would
// overflow 256 bits; they indicate a programming error and panic.
func CompactToBig(compact uint32) *big.Int {
	exponent := uint(compact >> 24 & 0xff)
	coefficient := int64(compact & 0x00ffffff)
	if exponent > maxCompactExponent {
		panic(fmt.Sprintf("compact difficulty exponent %d overflows a "+
			"256-bit target", exponent))
	}

	// Since the base for the exponent is 256, the exponent can be treated
	// as the number of bytes to represent the full 256-bit number.  So,
	// treat the exponent as the number of bytes and shift the coefficient
	// right or left accordingly.
	bn := big.NewInt(coefficient)
	if exponent <= 3 {
		return bn.Rsh(bn, 8*(3-exponent))
	}
	return bn.Lsh(bn, 8*(exponent-3))
}

// BigToCompact converts a whole number N to a compact representation using
// an unsigned 32-bit number.  The compact representation only provides 24
// bits of precision, so values larger than (2^24 - 1) only encode the most
// significant digits of the number.  See CompactToBig for details.
func BigToCompact(n *big.Int) uint32 {
	// No need to do any work if it's zero.
	if n.Sign() == 0 {
		return 0
	}

	// Since the base for the exponent is 256, the exponent can be treated
	// as the number of bytes.  So, shift the number right or left
	// accordingly.  This is equivalent to:
	// coefficient = N / 256^(exponent-3)
	var coefficient uint32
	exponent := uint(len(n.Bytes()))
	if exponent <= 3 {
		coefficient = uint32(n.Uint64())
		coefficient <<= 8 * (3 - exponent)
	} else {
		// Use a copy to avoid modifying the caller's original number.
		tn := new(big.Int).Set(n)
		coefficient = uint32(tn.Rsh(tn, 8*(exponent-3)).Uint64())
	}

	// When the coefficient already needs more than 24 bits, divide the
	// number by 256 and bump the exponent instead.
	if coefficient&0xff000000 != 0 {
		coefficient >>= 8
		exponent++
	}

	return uint32(exponent<<24) | coefficient
}
