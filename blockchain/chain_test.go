// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2025 The Embercoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/stretchr/testify/require"

	"github.com/embercoin/go-embercoin/chaincfg"
	"github.com/embercoin/go-embercoin/chaincfg/chainhash"
	"github.com/embercoin/go-embercoin/txscript"
	"github.com/embercoin/go-embercoin/wire"
)

// testPrivKey is a fixed key so test flows are reproducible.  Every mined
// coinbase in these tests pays to its public key.
var testPrivKey = secp256k1.PrivKeyFromBytes(
	[]byte("adamadamadamadamadamadamadamadam"))

// newTestChain returns a chain on the simulation network, whose trivial
// proof of work keeps the in-test mining loops fast.
func newTestChain(t *testing.T) *BlockChain {
	t.Helper()
	chain, err := New(&Config{ChainParams: &chaincfg.SimNetParams})
	require.NoError(t, err)
	return chain
}

// solveBlock grinds the block's nonce until the header meets its own
// difficulty target.  Simnet difficulty means this takes a couple of
// attempts on average.
func solveBlock(t *testing.T, block *wire.Block) {
	t.Helper()
	target := CompactToBig(block.Header.Bits)
	for nonce := uint32(0); ; nonce++ {
		block.Header.SetNonce(nonce)
		hash := block.Header.BlockHash()
		if HashToBig(&hash).Cmp(target) <= 0 {
			return
		}
	}
}

// mineBlock constructs, solves, and appends the next block, returning it.
func mineBlock(t *testing.T, chain *BlockChain) *wire.Block {
	t.Helper()
	block := chain.ConstructCandidateBlock(testPrivKey.PubKey())
	solveBlock(t, block)
	require.NoError(t, chain.ProcessBlock(block))
	return block
}

// buildSpend creates a signed transaction spending output outIdx of prevTx
// to a fresh output of the given value, locked back to the test key.
func buildSpend(prevTx *wire.Tx, outIdx uint32, value uint32) *wire.Tx {
	tx := wire.NewTx(1, 5)
	tx.AddTxIn(&wire.PrevOutIn{
		PrevTxHash:      prevTx.TxHash(),
		PrevTxOutIndex:  outIdx,
		UnlockingScript: txscript.SignatureScript(prevTx.CanonicalBytes(), testPrivKey),
		Sequence:        1234,
	})
	pubKeyHash := txscript.Hash160(testPrivKey.PubKey().SerializeCompressed())
	tx.AddTxOut(&wire.TxOut{
		Value:         value,
		LockingScript: txscript.PayToPubKeyHash(pubKeyHash),
	})
	return tx
}

// TestChainMining mines a few empty blocks and checks the chain invariants
// hold after every extension.
func TestChainMining(t *testing.T) {
	chain := newTestChain(t)
	const numBlocks = 3

	for i := 0; i < numBlocks; i++ {
		block := mineBlock(t, chain)

		if err := CheckProofOfWork(&block.Header); err != nil {
			t.Fatalf("appended block fails its own proof of work: "+
				"%v\n%s", err, spew.Sdump(block.Header))
		}
	}

	require.Equal(t, uint32(numBlocks), chain.Height())
	require.Equal(t, numBlocks, chain.TxIndex().NumTransactions())

	// Every block links the header hash of its predecessor; the genesis
	// links the zero hash.
	blocks := chain.Blocks()
	var prevHash chainhash.Hash
	for i, block := range blocks {
		require.True(t, block.Header.PrevBlock.IsEqual(&prevHash),
			"block %d previous hash mismatch", i)
		require.True(t, IsCoinBaseTx(block.Transactions[0]))
		prevHash = block.Header.BlockHash()
	}

	// Each coinbase pays exactly the subsidy for its height.
	for i, block := range blocks {
		want := CalcBlockSubsidy(uint32(i), &chaincfg.SimNetParams)
		got := block.Transactions[0].TxOut[0].Value
		require.Equal(t, int64(want), int64(got),
			"coinbase value at height %d", i)
	}
}

// TestAdmitTransactionCoinbaseSpend ensures reward-claiming transactions
// are rejected at admission (no one but the miner mints).
func TestAdmitTransactionCoinbaseSpend(t *testing.T) {
	chain := newTestChain(t)

	tx := wire.NewTx(1, 5)
	tx.AddTxIn(&wire.CoinbaseIn{Coinbase: 33, Sequence: 5580})
	tx.AddTxOut(&wire.TxOut{
		Value:         22,
		LockingScript: txscript.Script{txscript.OpDup},
	})

	err := chain.AdmitTransaction(tx)
	require.True(t, IsErrorCode(err, ErrCoinbaseSpend),
		"got %v, want ErrCoinbaseSpend", err)
	require.Equal(t, 0, chain.MempoolSize())

	// A transaction with no inputs at all is rejected the same way.
	empty := wire.NewTx(1, 5)
	empty.AddTxOut(&wire.TxOut{Value: 1})
	err = chain.AdmitTransaction(empty)
	require.True(t, IsErrorCode(err, ErrCoinbaseSpend),
		"got %v, want ErrCoinbaseSpend", err)
	require.Equal(t, 0, chain.MempoolSize())
}

// TestAdmitTransactionMissingInput ensures references to unknown
// transactions and out-of-range output indexes are rejected.
func TestAdmitTransactionMissingInput(t *testing.T) {
	chain := newTestChain(t)

	// A fresh chain has indexed nothing, so the zero hash resolves to
	// nothing.
	tx := wire.NewTx(1, 5)
	tx.AddTxIn(&wire.PrevOutIn{
		PrevTxHash:      chainhash.Hash{},
		PrevTxOutIndex:  0,
		UnlockingScript: txscript.Script{txscript.OpDup},
		Sequence:        1234,
	})
	tx.AddTxOut(&wire.TxOut{Value: 22})

	err := chain.AdmitTransaction(tx)
	require.True(t, IsErrorCode(err, ErrTxInNotFound),
		"got %v, want ErrTxInNotFound", err)
	require.Equal(t, 0, chain.MempoolSize())

	// A known transaction with an out-of-range output index fails the
	// same way.
	block := mineBlock(t, chain)
	coinbaseTx := block.Transactions[0]
	bad := buildSpend(coinbaseTx, 5, 1)
	err = chain.AdmitTransaction(bad)
	require.True(t, IsErrorCode(err, ErrTxInNotFound),
		"got %v, want ErrTxInNotFound", err)
	require.Equal(t, 0, chain.MempoolSize())
}

// TestAdmitTransactionInvalidScript ensures a spend signed with the wrong
// key is rejected.
func TestAdmitTransactionInvalidScript(t *testing.T) {
	chain := newTestChain(t)
	block := mineBlock(t, chain)
	coinbaseTx := block.Transactions[0]

	wrongKey := secp256k1.PrivKeyFromBytes(
		[]byte("evaneveneveneveneveneveneveneven"))
	tx := wire.NewTx(1, 5)
	tx.AddTxIn(&wire.PrevOutIn{
		PrevTxHash:      coinbaseTx.TxHash(),
		PrevTxOutIndex:  0,
		UnlockingScript: txscript.SignatureScript(coinbaseTx.CanonicalBytes(), wrongKey),
		Sequence:        1234,
	})
	tx.AddTxOut(&wire.TxOut{Value: 1})

	err := chain.AdmitTransaction(tx)
	require.True(t, IsErrorCode(err, ErrInvalidScript),
		"got %v, want ErrInvalidScript", err)
	require.Equal(t, 0, chain.MempoolSize())
}

// TestAdmitTransactionOverSpend mines the genesis reward and tries to spend
// one spark more than it is worth.
func TestAdmitTransactionOverSpend(t *testing.T) {
	chain := newTestChain(t)
	block := mineBlock(t, chain)
	coinbaseTx := block.Transactions[0]
	reward := coinbaseTx.TxOut[0].Value

	tx := buildSpend(coinbaseTx, 0, reward+1)
	err := chain.AdmitTransaction(tx)
	require.True(t, IsErrorCode(err, ErrOverSpend),
		"got %v, want ErrOverSpend", err)
	require.Equal(t, 0, chain.MempoolSize())
}

// TestAdmitTransactionValidSpend runs the full happy path: a signed spend
// is admitted, drained into the next candidate block, and gone from the
// one after.
func TestAdmitTransactionValidSpend(t *testing.T) {
	chain := newTestChain(t)
	block := mineBlock(t, chain)
	coinbaseTx := block.Transactions[0]
	reward := coinbaseTx.TxOut[0].Value

	// Spend all but one spark; the spark is the miner's tip.
	tx := buildSpend(coinbaseTx, 0, reward-1)
	require.NoError(t, chain.AdmitTransaction(tx))
	require.Equal(t, 1, chain.MempoolSize())

	second := chain.ConstructCandidateBlock(testPrivKey.PubKey())
	require.Equal(t, uint32(2), second.TransactionCount)
	require.Equal(t, 0, chain.MempoolSize())

	// The drained transaction is the one admitted.
	require.Equal(t, tx.TxHash(), second.Transactions[1].TxHash())

	// The candidate extends the chain once mined.
	solveBlock(t, second)
	require.NoError(t, chain.ProcessBlock(second))
	require.Equal(t, uint32(2), chain.Height())

	// With the mempool dry the next candidate is coinbase only.
	third := chain.ConstructCandidateBlock(testPrivKey.PubKey())
	require.Equal(t, uint32(1), third.TransactionCount)
}

// TestCandidateBlockTipOrdering ensures the mempool drains highest tip
// first into candidate blocks.
func TestCandidateBlockTipOrdering(t *testing.T) {
	chain := newTestChain(t)
	blockA := mineBlock(t, chain)
	blockB := mineBlock(t, chain)

	coinbaseA := blockA.Transactions[0]
	coinbaseB := blockB.Transactions[0]

	// The spend of coinbase A tips 1 spark, the spend of coinbase B tips
	// 5.
	lowTip := buildSpend(coinbaseA, 0, coinbaseA.TxOut[0].Value-1)
	highTip := buildSpend(coinbaseB, 0, coinbaseB.TxOut[0].Value-5)

	require.NoError(t, chain.AdmitTransaction(lowTip))
	require.NoError(t, chain.AdmitTransaction(highTip))

	candidate := chain.ConstructCandidateBlock(testPrivKey.PubKey())
	require.Equal(t, uint32(3), candidate.TransactionCount)
	require.Equal(t, highTip.TxHash(), candidate.Transactions[1].TxHash())
	require.Equal(t, lowTip.TxHash(), candidate.Transactions[2].TxHash())
}

// TestCandidateBlockCap ensures draining respects the per-block
// transaction cap, leaving the overflow in the mempool.
func TestCandidateBlockCap(t *testing.T) {
	chain, err := New(&Config{
		ChainParams:   &chaincfg.SimNetParams,
		MaxTxPerBlock: 2,
	})
	require.NoError(t, err)

	// Two spendable coinbase outputs.
	blockA := mineBlock(t, chain)
	blockB := mineBlock(t, chain)
	coinbaseA := blockA.Transactions[0]
	coinbaseB := blockB.Transactions[0]

	lowTip := buildSpend(coinbaseA, 0, coinbaseA.TxOut[0].Value-1)
	highTip := buildSpend(coinbaseB, 0, coinbaseB.TxOut[0].Value-5)
	require.NoError(t, chain.AdmitTransaction(lowTip))
	require.NoError(t, chain.AdmitTransaction(highTip))

	// Only the best-paying spend fits beside the coinbase.
	candidate := chain.ConstructCandidateBlock(testPrivKey.PubKey())
	require.Equal(t, uint32(2), candidate.TransactionCount)
	require.Equal(t, highTip.TxHash(), candidate.Transactions[1].TxHash())
	require.Equal(t, 1, chain.MempoolSize())
}

// TestProcessBlockValidation ensures externally supplied blocks are fully
// re-validated before joining the chain.
func TestProcessBlockValidation(t *testing.T) {
	chain := newTestChain(t)
	mineBlock(t, chain)

	// An unmined candidate is rejected.
	candidate := chain.ConstructCandidateBlock(testPrivKey.PubKey())
	err := chain.ProcessBlock(candidate)
	require.True(t, IsErrorCode(err, ErrMissingNonce),
		"got %v, want ErrMissingNonce", err)

	// A block pointing somewhere other than the tip is rejected.
	detached := chain.ConstructCandidateBlock(testPrivKey.PubKey())
	detached.Header.PrevBlock = chainhash.HashH([]byte("elsewhere"))
	solveBlock(t, detached)
	err = chain.ProcessBlock(detached)
	require.True(t, IsErrorCode(err, ErrPrevBlockMismatch),
		"got %v, want ErrPrevBlockMismatch", err)

	// A greedy coinbase paying more than subsidy plus fees is rejected.
	greedy := chain.ConstructCandidateBlock(testPrivKey.PubKey())
	greedy.Transactions[0].TxOut[0].Value++
	greedy.Header.MerkleRoot = CalcMerkleRoot(greedy.Transactions)
	solveBlock(t, greedy)
	err = chain.ProcessBlock(greedy)
	require.True(t, IsErrorCode(err, ErrBadCoinbaseValue),
		"got %v, want ErrBadCoinbaseValue", err)

	// Nothing above extended the chain.
	require.Equal(t, uint32(1), chain.Height())
}
