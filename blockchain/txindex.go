// Copyright (c) 2016 The btcsuite developers
// Copyright (c) 2025 The Embercoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"github.com/embercoin/go-embercoin/chaincfg/chainhash"
	"github.com/embercoin/go-embercoin/wire"
)

// TxIndex maps canonical transaction hashes to the transactions of every
// block it has processed, the coinbases included.  It tracks how many
// blocks of its chain it has already analyzed so repeated ingestion over a
// growing chain only touches the new tail.
//
// The index stores deep copies, so an indexed transaction's lifetime is
// independent of the block or mempool entry it arrived in.
type TxIndex struct {
	txByHash          map[chainhash.Hash]*wire.Tx
	numBlocksAnalyzed uint32
}

// NewTxIndex returns an empty transaction index.
func NewTxIndex() *TxIndex {
	return &TxIndex{
		txByHash: make(map[chainhash.Hash]*wire.Tx),
	}
}

// Ingest processes any blocks the index has not seen yet and inserts every
// transaction they contain.  Calling it again with an unchanged chain is a
// no-op, so ingestion is idempotent.
func (idx *TxIndex) Ingest(blocks []*wire.Block) {
	for _, block := range blocks[idx.numBlocksAnalyzed:] {
		for _, tx := range block.Transactions {
			txHash := tx.TxHash()
			idx.txByHash[txHash] = tx.Copy()
			log.Tracef("indexed transaction %v", txHash)
		}
		idx.numBlocksAnalyzed++
	}
}

// Lookup returns the transaction with the given canonical hash, or false
// when the index has never seen it.  The returned transaction is owned by
// the index and must not be mutated.
func (idx *TxIndex) Lookup(hash *chainhash.Hash) (*wire.Tx, bool) {
	tx, ok := idx.txByHash[*hash]
	return tx, ok
}

// NumBlocksAnalyzed returns how many blocks the index has processed.
func (idx *TxIndex) NumBlocksAnalyzed() uint32 {
	return idx.numBlocksAnalyzed
}

// NumTransactions returns how many transactions the index holds.
func (idx *TxIndex) NumTransactions() int {
	return len(idx.txByHash)
}
