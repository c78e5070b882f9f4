// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2025 The Embercoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mempool

import (
	"container/heap"

	"github.com/decred/dcrd/lru"

	"github.com/embercoin/go-embercoin/chaincfg/chainhash"
	"github.com/embercoin/go-embercoin/chainutil"
	"github.com/embercoin/go-embercoin/wire"
)

// defaultRejectedCacheSize is the number of recently rejected transaction
// hashes remembered so callers can cheaply recognize resubmissions.
const defaultRejectedCacheSize = 1000

// TxDesc is a pending transaction along with the tip it pays the miner
// that includes it.
type TxDesc struct {
	// Tx is the pending transaction.
	Tx *wire.Tx

	// Tip is the amount the transaction's inputs exceed its outputs by.
	// The miner of the including block claims it.
	Tip chainutil.Amount

	// seq is the pool-assigned admission number used to break ties
	// between equal tips deterministically.
	seq uint64
}

// txPriorityQueue implements heap.Interface over pending transactions,
// surfacing the largest tip first.  Equal tips drain in admission order.
type txPriorityQueue []*TxDesc

func (pq txPriorityQueue) Len() int { return len(pq) }

func (pq txPriorityQueue) Less(i, j int) bool {
	if pq[i].Tip != pq[j].Tip {
		return pq[i].Tip > pq[j].Tip
	}
	return pq[i].seq < pq[j].seq
}

func (pq txPriorityQueue) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
}

func (pq *txPriorityQueue) Push(x interface{}) {
	*pq = append(*pq, x.(*TxDesc))
}

func (pq *txPriorityQueue) Pop() interface{} {
	old := *pq
	n := len(old)
	desc := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]
	return desc
}

// TxPool holds validated transactions waiting for inclusion in a block,
// ordered by miner tip.  It also remembers the hashes of recently rejected
// transactions so a resubmission can be recognized without revalidating.
//
// The pool performs no validation of its own; the chain manager admits
// transactions only after their scripts and values check out.
type TxPool struct {
	pq       txPriorityQueue
	nextSeq  uint64
	rejected lru.Cache
}

// New returns an empty transaction pool.
func New() *TxPool {
	return &TxPool{
		rejected: lru.NewCache(defaultRejectedCacheSize),
	}
}

// Add enqueues a validated transaction paying the given miner tip.
func (p *TxPool) Add(tx *wire.Tx, tip chainutil.Amount) {
	desc := &TxDesc{Tx: tx, Tip: tip, seq: p.nextSeq}
	p.nextSeq++
	heap.Push(&p.pq, desc)
	log.Debugf("accepted transaction %v (tip %v, pool size %d)",
		tx.TxHash(), tip, len(p.pq))
}

// Pop removes and returns the pending transaction with the largest tip.
// The boolean is false when the pool is empty.
func (p *TxPool) Pop() (*wire.Tx, chainutil.Amount, bool) {
	if len(p.pq) == 0 {
		return nil, 0, false
	}
	desc := heap.Pop(&p.pq).(*TxDesc)
	return desc.Tx, desc.Tip, true
}

// Len returns the number of pending transactions.
func (p *TxPool) Len() int {
	return len(p.pq)
}

// MarkRejected records that the transaction with the given hash failed
// admission.
func (p *TxPool) MarkRejected(hash *chainhash.Hash) {
	p.rejected.Add(*hash)
}

// RecentlyRejected reports whether a transaction with the given hash
// failed admission recently.  The underlying cache is bounded, so a false
// answer does not prove the transaction was never rejected.
func (p *TxPool) RecentlyRejected(hash *chainhash.Hash) bool {
	return p.rejected.Contains(*hash)
}
