// Copyright (c) 2024 The Flokicoin developers
// Copyright (c) 2025 The Embercoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"math"

	"github.com/embercoin/go-embercoin/blockchain"
	"github.com/embercoin/go-embercoin/chainutil"
	"github.com/embercoin/go-embercoin/wire"
)

// BlockStats aggregates commonly used statistics for a block.
type BlockStats struct {
	TotalSize        int64
	TotalOutputValue chainutil.Amount
	TotalFees        chainutil.Amount
	TotalInputs      int64
	TotalOutputs     int64
	NonCoinbaseCount int64
	MinTip           chainutil.Amount
	MaxTip           chainutil.Amount
	MinTxSize        int64
	MaxTxSize        int64
	TxCount          int64
}

// ComputeBlockStats returns aggregated statistics for the provided block.
// Input values of non-coinbase transactions resolve through the index, so
// the block must already have been processed by the chain that owns it.
func ComputeBlockStats(block *wire.Block, index *blockchain.TxIndex) (*BlockStats, error) {
	stats := &BlockStats{
		MinTip:    math.MaxInt64,
		MinTxSize: math.MaxInt64,
		TxCount:   int64(len(block.Transactions)),
	}

	for _, tx := range block.Transactions {
		txSize := int64(len(tx.CanonicalBytes()))
		stats.TotalSize += txSize
		stats.TotalInputs += int64(len(tx.TxIn))
		stats.TotalOutputs += int64(len(tx.TxOut))

		var outValue chainutil.Amount
		for _, to := range tx.TxOut {
			outValue += chainutil.Amount(to.Value)
		}
		stats.TotalOutputValue += outValue

		if txSize < stats.MinTxSize {
			stats.MinTxSize = txSize
		}
		if txSize > stats.MaxTxSize {
			stats.MaxTxSize = txSize
		}

		if blockchain.IsCoinBaseTx(tx) {
			continue
		}
		stats.NonCoinbaseCount++

		var inValue chainutil.Amount
		for _, ti := range tx.TxIn {
			prevIn, ok := ti.(*wire.PrevOutIn)
			if !ok {
				return nil, fmt.Errorf("non-coinbase transaction "+
					"%v carries a coinbase input", tx.TxHash())
			}
			prevTx, ok := index.Lookup(&prevIn.PrevTxHash)
			if !ok {
				return nil, fmt.Errorf("transaction %v not "+
					"indexed", prevIn.PrevTxHash)
			}
			if prevIn.PrevTxOutIndex >= uint32(len(prevTx.TxOut)) {
				return nil, fmt.Errorf("output index %d out of "+
					"range for transaction %v",
					prevIn.PrevTxOutIndex, prevIn.PrevTxHash)
			}
			inValue += chainutil.Amount(prevTx.TxOut[prevIn.PrevTxOutIndex].Value)
		}

		tip := inValue - outValue
		stats.TotalFees += tip
		if tip < stats.MinTip {
			stats.MinTip = tip
		}
		if tip > stats.MaxTip {
			stats.MaxTip = tip
		}
	}

	// Blocks with no fee-paying transactions report a zero minimum rather
	// than the sentinel.
	if stats.NonCoinbaseCount == 0 {
		stats.MinTip = 0
	}

	return stats, nil
}
