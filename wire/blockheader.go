// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2025 The Embercoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"io"
	"time"

	"github.com/embercoin/go-embercoin/chaincfg/chainhash"
)

// MaxBlockHeaderPayload is the maximum number of bytes a block header can
// be.  Version 4 bytes + Timestamp 8 bytes + Bits 4 bytes + Nonce 4 bytes +
// PrevBlock and MerkleRoot hashes.
const MaxBlockHeaderPayload = 20 + (chainhash.HashSize * 2)

// BlockHeader defines information about a block and is the structure whose
// hash is ground down during mining.
type BlockHeader struct {
	// Version of the block.  This is not the same as the software
	// version.
	Version uint32

	// Hash of the previous block header in the block chain.  The zero
	// hash marks a genesis block.
	PrevBlock chainhash.Hash

	// Merkle tree reference to hash of all transactions for the block.
	MerkleRoot chainhash.Hash

	// Time the block was created, in seconds since the Unix epoch.
	Timestamp uint64

	// Difficulty target for the block in compact form.
	Bits uint32

	// Nonce used to generate the block.  It is nil until mining assigns
	// it; the header hash covers the nonce bytes only once set.
	Nonce *uint32
}

// SerializeTo writes the canonical bytes of the block header to w.  An
// unset nonce contributes no bytes, so the pre-mining hash of a header and
// the hashes probed during the nonce search are all well defined.
func (h *BlockHeader) SerializeTo(w io.Writer) error {
	if err := writeUint32(w, h.Version); err != nil {
		return err
	}
	if _, err := w.Write(h.PrevBlock[:]); err != nil {
		return err
	}
	if _, err := w.Write(h.MerkleRoot[:]); err != nil {
		return err
	}
	if err := writeUint64(w, h.Timestamp); err != nil {
		return err
	}
	if err := writeUint32(w, h.Bits); err != nil {
		return err
	}
	if h.Nonce != nil {
		return writeUint32(w, *h.Nonce)
	}
	return nil
}

// BlockHash computes the block identifier hash for the given block header.
func (h *BlockHeader) BlockHash() chainhash.Hash {
	return chainhash.HashRaw(h.SerializeTo)
}

// SetNonce assigns the header's nonce.  Mining is the only caller; headers
// are immutable once their block joins a chain.
func (h *BlockHeader) SetNonce(nonce uint32) {
	h.Nonce = &nonce
}

// ClearNonce unsets the header's nonce so the header hashes as it did
// before mining.
func (h *BlockHeader) ClearNonce() {
	h.Nonce = nil
}

// NewBlockHeader returns a new BlockHeader using the provided version,
// previous block hash, merkle root hash, and difficulty bits, with the
// timestamp set to the current time and the nonce unset.
func NewBlockHeader(version uint32, prevHash, merkleRootHash *chainhash.Hash,
	bits uint32) *BlockHeader {

	return &BlockHeader{
		Version:    version,
		PrevBlock:  *prevHash,
		MerkleRoot: *merkleRootHash,
		Timestamp:  uint64(time.Now().Unix()),
		Bits:       bits,
	}
}
