// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2025 The Embercoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"github.com/embercoin/go-embercoin/chaincfg/chainhash"
	"github.com/embercoin/go-embercoin/wire"
)

// hashMerkleBranches takes two hashes, treated as the left and right tree
// nodes, and returns the hash of their concatenation.  This is a helper
// function used to aid in the generation of a merkle tree.
func hashMerkleBranches(left, right *chainhash.Hash) chainhash.Hash {
	// Concatenate the left and right nodes.
	var hash [chainhash.HashSize * 2]byte
	copy(hash[:chainhash.HashSize], left[:])
	copy(hash[chainhash.HashSize:], right[:])

	return chainhash.DoubleHashH(hash[:])
}

// CalcMerkleRoot computes the merkle root over the passed transactions.
// The leaves are the double SHA-256 digests of the canonical transaction
// bytes.  At every level an odd count is handled by pairing the final
// digest with itself.  The transaction list must not be empty; every block
// carries at least its coinbase.
func CalcMerkleRoot(transactions []*wire.Tx) chainhash.Hash {
	if len(transactions) == 0 {
		panic("merkle root requested for an empty transaction list")
	}

	hashes := make([]chainhash.Hash, 0, len(transactions))
	for _, tx := range transactions {
		hashes = append(hashes, tx.TxDoubleHash())
	}

	for len(hashes) > 1 {
		if len(hashes)%2 != 0 {
			hashes = append(hashes, hashes[len(hashes)-1])
		}
		next := make([]chainhash.Hash, 0, len(hashes)/2)
		for i := 0; i < len(hashes); i += 2 {
			next = append(next, hashMerkleBranches(&hashes[i], &hashes[i+1]))
		}
		hashes = next
	}
	return hashes[0]
}
