// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2025 The Embercoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"fmt"

	"github.com/embercoin/go-embercoin/chaincfg"
	"github.com/embercoin/go-embercoin/chainutil"
	"github.com/embercoin/go-embercoin/txscript"
	"github.com/embercoin/go-embercoin/wire"
)

// IsCoinBaseTx determines whether or not a transaction is a coinbase.  A
// coinbase is a special transaction created by miners that mints the block
// reward.  It has exactly one input, of the coinbase variant.
func IsCoinBaseTx(tx *wire.Tx) bool {
	if len(tx.TxIn) != 1 {
		return false
	}
	_, ok := tx.TxIn[0].(*wire.CoinbaseIn)
	return ok
}

// containsCoinbaseIn reports whether any input of the transaction is of the
// coinbase variant.
func containsCoinbaseIn(tx *wire.Tx) bool {
	for _, ti := range tx.TxIn {
		if _, ok := ti.(*wire.CoinbaseIn); ok {
			return true
		}
	}
	return false
}

// CheckTransactionSanity performs some preliminary checks on a transaction
// to ensure it is sane.  These checks are context free.
func CheckTransactionSanity(tx *wire.Tx) error {
	// A transaction must have at least one input.
	if len(tx.TxIn) == 0 {
		return ruleError(ErrNoTxInputs, "transaction has no inputs")
	}

	// A transaction must have at least one output.
	if len(tx.TxOut) == 0 {
		return ruleError(ErrNoTxOutputs, "transaction has no outputs")
	}

	return nil
}

// CheckProofOfWork ensures the block header hash is less than or equal to
// the target difficulty the header's compact bits decode to.  A header
// whose nonce was never assigned fails with ErrMissingNonce.
func CheckProofOfWork(header *wire.BlockHeader) error {
	if header.Nonce == nil {
		return ruleError(ErrMissingNonce, "block header has no nonce")
	}

	target := CompactToBig(header.Bits)
	hash := header.BlockHash()
	if HashToBig(&hash).Cmp(target) > 0 {
		str := fmt.Sprintf("block hash of %064x is higher than expected "+
			"max of %064x", HashToBig(&hash), target)
		return ruleError(ErrHighHash, str)
	}

	return nil
}

// CalcBlockSubsidy returns the subsidy amount a block at the provided
// height should have.  This is mainly used for determining how much the
// coinbase for newly generated blocks awards as well as validating the
// coinbase for blocks has the expected value.
//
// The subsidy is halved every SubsidyHalvingInterval blocks.
// Mathematically this is: BaseSubsidy / 2^(height/SubsidyHalvingInterval)
func CalcBlockSubsidy(height uint32, chainParams *chaincfg.Params) chainutil.Amount {
	if chainParams.SubsidyHalvingInterval == 0 {
		return chainutil.Amount(chainParams.BaseSubsidy)
	}

	halvings := height / chainParams.SubsidyHalvingInterval
	if halvings >= 32 {
		return 0
	}
	return chainutil.Amount(chainParams.BaseSubsidy >> halvings)
}

// checkBlockSanity performs the context-free checks on a block: it must
// carry at least one transaction, its transaction count must match the
// transactions it carries, the first and only the first may be a
// coinbase, every transaction must be structurally sane, and the header's
// merkle root must commit to the transaction list.
func checkBlockSanity(block *wire.Block) error {
	numTx := len(block.Transactions)
	if numTx == 0 {
		return ruleError(ErrNoTransactions, "block does not contain any "+
			"transactions")
	}
	if uint32(numTx) != block.TransactionCount {
		str := fmt.Sprintf("block transaction count %d does not match "+
			"the %d transactions carried", block.TransactionCount, numTx)
		return ruleError(ErrNoTransactions, str)
	}

	// The first transaction in a block must be a coinbase.
	if !IsCoinBaseTx(block.Transactions[0]) {
		return ruleError(ErrFirstTxNotCoinbase, "first transaction in "+
			"block is not the coinbase")
	}

	// A block must not have more than one coinbase, and no later
	// transaction may smuggle in a coinbase input.
	for i, tx := range block.Transactions[1:] {
		if containsCoinbaseIn(tx) {
			str := fmt.Sprintf("block contains second coinbase at "+
				"index %d", i+1)
			return ruleError(ErrMultipleCoinbases, str)
		}
	}

	for _, tx := range block.Transactions {
		if err := CheckTransactionSanity(tx); err != nil {
			return err
		}
	}

	// The merkle root in the header must match what the transaction list
	// computes to.
	calculatedMerkleRoot := CalcMerkleRoot(block.Transactions)
	if !block.Header.MerkleRoot.IsEqual(&calculatedMerkleRoot) {
		str := fmt.Sprintf("block merkle root is invalid - block header "+
			"indicates %v, but calculated value is %v",
			block.Header.MerkleRoot, calculatedMerkleRoot)
		return ruleError(ErrBadMerkleRoot, str)
	}

	return nil
}

// checkTransactionInputs resolves every input of a non-coinbase transaction
// against the index, verifies the unlocking scripts, and enforces value
// conservation.  It returns the fee the transaction pays.
func checkTransactionInputs(tx *wire.Tx, index *TxIndex) (chainutil.Amount, error) {
	var inSum chainutil.Amount
	for _, ti := range tx.TxIn {
		prevIn, ok := ti.(*wire.PrevOutIn)
		if !ok {
			// Callers have already rejected coinbase inputs; this
			// is a belt-and-suspenders check.
			return 0, ruleError(ErrCoinbaseSpend, "transaction "+
				"carries a coinbase input")
		}

		prevTx, ok := index.Lookup(&prevIn.PrevTxHash)
		if !ok {
			str := fmt.Sprintf("referenced transaction %v not found",
				prevIn.PrevTxHash)
			return 0, ruleError(ErrTxInNotFound, str)
		}
		if prevIn.PrevTxOutIndex >= uint32(len(prevTx.TxOut)) {
			str := fmt.Sprintf("output index %d out of range for "+
				"transaction %v with %d outputs",
				prevIn.PrevTxOutIndex, prevIn.PrevTxHash,
				len(prevTx.TxOut))
			return 0, ruleError(ErrTxInNotFound, str)
		}

		txOutToUnlock := prevTx.TxOut[prevIn.PrevTxOutIndex]
		valid := txscript.EvaluateScripts(prevIn.UnlockingScript,
			txOutToUnlock.LockingScript, prevTx.CanonicalBytes())
		if !valid {
			str := fmt.Sprintf("unlocking script for input spending "+
				"%v:%d failed", prevIn.PrevTxHash,
				prevIn.PrevTxOutIndex)
			return 0, ruleError(ErrInvalidScript, str)
		}

		inSum += chainutil.Amount(txOutToUnlock.Value)
	}

	var outSum chainutil.Amount
	for _, to := range tx.TxOut {
		outSum += chainutil.Amount(to.Value)
	}
	if outSum > inSum {
		str := fmt.Sprintf("transaction spends %v but is only funded "+
			"with %v", outSum, inSum)
		return 0, ruleError(ErrOverSpend, str)
	}

	return inSum - outSum, nil
}
