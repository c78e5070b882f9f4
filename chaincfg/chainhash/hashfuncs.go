// Copyright (c) 2015 The Decred developers
// Copyright (c) 2016-2017 The btcsuite developers
// Copyright (c) 2025 The Embercoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chainhash

import (
	"crypto/sha256"
	"io"
)

// HashB calculates hash(b) and returns the resulting bytes.
func HashB(b []byte) []byte {
	hash := sha256.Sum256(b)
	return hash[:]
}

// HashH calculates hash(b) and returns the resulting bytes as a Hash.
func HashH(b []byte) Hash {
	return Hash(sha256.Sum256(b))
}

// HashRaw computes the hash of the data written by the passed serialization
// function.  It only works with serialization functions that never error
// since writes to a hash cannot fail.
func HashRaw(serialize func(w io.Writer) error) Hash {
	h := sha256.New()
	_ = serialize(h)

	var hash Hash
	copy(hash[:], h.Sum(nil))
	return hash
}

// DoubleHashRaw computes hash(hash(x)) where x is the data written by the
// passed serialization function.
func DoubleHashRaw(serialize func(w io.Writer) error) Hash {
	first := HashRaw(serialize)
	return Hash(sha256.Sum256(first[:]))
}

// DoubleHashB calculates hash(hash(b)) and returns the resulting bytes.
func DoubleHashB(b []byte) []byte {
	first := sha256.Sum256(b)
	second := sha256.Sum256(first[:])
	return second[:]
}

// DoubleHashH calculates hash(hash(b)) and returns the resulting bytes as a
// Hash.
func DoubleHashH(b []byte) Hash {
	first := sha256.Sum256(b)
	return Hash(sha256.Sum256(first[:]))
}
