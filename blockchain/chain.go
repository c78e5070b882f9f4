// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2025 The Embercoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/embercoin/go-embercoin/chaincfg"
	"github.com/embercoin/go-embercoin/chaincfg/chainhash"
	"github.com/embercoin/go-embercoin/chainutil"
	"github.com/embercoin/go-embercoin/mempool"
	"github.com/embercoin/go-embercoin/txscript"
	"github.com/embercoin/go-embercoin/wire"
)

// zeroHash is the sentinel previous block hash carried by a genesis block
// header.
var zeroHash chainhash.Hash

// Config is a descriptor which specifies the blockchain instance
// configuration.
type Config struct {
	// ChainParams identifies which chain parameters the chain is
	// associated with.
	//
	// This field is required.
	ChainParams *chaincfg.Params

	// DifficultyBits optionally overrides the starting difficulty from
	// the chain parameters.  It is primarily useful when restoring a
	// persisted chain.  Zero means use ChainParams.PowLimitBits.
	DifficultyBits uint32

	// MaxTxPerBlock optionally overrides the candidate block transaction
	// cap from the chain parameters.  Zero means use
	// ChainParams.MaxTxPerBlock.
	MaxTxPerBlock uint32
}

// BlockChain provides functions for working with the embercoin block chain:
// admitting transactions to the mempool, building candidate blocks for the
// miner, and extending the chain with mined blocks.
//
// The chain is the sole owner of its block sequence, mempool, and
// transaction index; all three are mutated only through its methods, on the
// caller's goroutine.
type BlockChain struct {
	chainParams    *chaincfg.Params
	difficultyBits uint32
	maxTxPerBlock  uint32

	blocks  []*wire.Block
	txPool  *mempool.TxPool
	txIndex *TxIndex
}

// New returns a BlockChain instance using the provided configuration
// details.
func New(config *Config) (*BlockChain, error) {
	if config.ChainParams == nil {
		return nil, fmt.Errorf("blockchain.New chain parameters nil")
	}

	params := config.ChainParams
	difficultyBits := config.DifficultyBits
	if difficultyBits == 0 {
		difficultyBits = params.PowLimitBits
	}
	maxTxPerBlock := config.MaxTxPerBlock
	if maxTxPerBlock == 0 {
		maxTxPerBlock = params.MaxTxPerBlock
	}

	return &BlockChain{
		chainParams:    params,
		difficultyBits: difficultyBits,
		maxTxPerBlock:  maxTxPerBlock,
		txPool:         mempool.New(),
		txIndex:        NewTxIndex(),
	}, nil
}

// Height returns the number of blocks in the chain.
func (b *BlockChain) Height() uint32 {
	return uint32(len(b.blocks))
}

// DifficultyBits returns the chain's current compact difficulty target.
func (b *BlockChain) DifficultyBits() uint32 {
	return b.difficultyBits
}

// MaxTxPerBlock returns the candidate block transaction cap.
func (b *BlockChain) MaxTxPerBlock() uint32 {
	return b.maxTxPerBlock
}

// MempoolSize returns the number of pending transactions.
func (b *BlockChain) MempoolSize() int {
	return b.txPool.Len()
}

// TxIndex returns the chain's transaction index.
func (b *BlockChain) TxIndex() *TxIndex {
	return b.txIndex
}

// Blocks returns the chain's block sequence.  The slice and the blocks it
// holds are owned by the chain and must not be mutated.
func (b *BlockChain) Blocks() []*wire.Block {
	return b.blocks
}

// BestBlockHash returns the header hash of the chain tip, or the zero hash
// when the chain is empty.
func (b *BlockChain) BestBlockHash() chainhash.Hash {
	if len(b.blocks) == 0 {
		return zeroHash
	}
	return b.blocks[len(b.blocks)-1].Header.BlockHash()
}

// AdmitTransaction validates a transaction submitted from outside and, on
// success, enqueues it on the mempool keyed by the tip it pays.  The
// returned error is a RuleError carrying one of ErrCoinbaseSpend,
// ErrTxInNotFound, ErrInvalidScript, or ErrOverSpend; on any failure the
// mempool and chain are untouched apart from the rejected-hash cache.
func (b *BlockChain) AdmitTransaction(tx *wire.Tx) error {
	// Only the miner may mint: a submitted transaction must fund itself
	// entirely from previous outputs.  An input-less transaction is
	// rejected for the same reason since it would be indistinguishable
	// from a reward claim.
	if len(tx.TxIn) == 0 || containsCoinbaseIn(tx) {
		err := ruleError(ErrCoinbaseSpend, "submitted transaction "+
			"carries no spendable inputs or claims a coinbase")
		b.rejectTransaction(tx, err)
		return err
	}

	tip, err := checkTransactionInputs(tx, b.txIndex)
	if err != nil {
		b.rejectTransaction(tx, err)
		return err
	}

	b.txPool.Add(tx, tip)
	return nil
}

// rejectTransaction records a failed admission for cheap duplicate
// detection and logging.
func (b *BlockChain) rejectTransaction(tx *wire.Tx, err error) {
	txHash := tx.TxHash()
	b.txPool.MarkRejected(&txHash)
	log.Debugf("rejected transaction %v: %v", txHash, err)
}

// constructCoinbaseTx builds the reward-minting transaction for a block at
// the current height, paying the full subsidy to the canonical
// pay-to-pubkey-hash script of the recipient key.  The coinbase payload is
// the height, which keeps coinbase hashes distinct across blocks.
func (b *BlockChain) constructCoinbaseTx(recipient *secp256k1.PublicKey) *wire.Tx {
	params := b.chainParams
	height := b.Height()
	reward := CalcBlockSubsidy(height, params)

	pubKeyHash := txscript.Hash160(recipient.SerializeCompressed())

	tx := wire.NewTx(params.TxVersion, params.CoinbaseLockTime)
	tx.AddTxIn(&wire.CoinbaseIn{
		Coinbase: height,
		Sequence: params.CoinbaseSequence,
	})
	tx.AddTxOut(&wire.TxOut{
		Value:         uint32(reward),
		LockingScript: txscript.PayToPubKeyHash(pubKeyHash),
	})
	return tx
}

// ConstructCandidateBlock assembles the next block to be mined: a fresh
// coinbase paying the recipient, followed by mempool transactions drained
// highest tip first up to the per-block cap.  The mempool is left alone for
// the genesis block.  The returned block binds the current tip and
// difficulty and has an unset nonce; it does not join the chain until it is
// mined and handed to ProcessBlock.
func (b *BlockChain) ConstructCandidateBlock(recipient *secp256k1.PublicKey) *wire.Block {
	coinbaseTx := b.constructCoinbaseTx(recipient)
	transactions := []*wire.Tx{coinbaseTx}

	if b.Height() > 0 {
		for b.txPool.Len() > 0 &&
			uint32(len(transactions)) < b.maxTxPerBlock {

			tx, tip, _ := b.txPool.Pop()
			log.Tracef("including transaction %v (tip %v)",
				tx.TxHash(), tip)
			transactions = append(transactions, tx)
		}
	}

	merkleRoot := CalcMerkleRoot(transactions)
	prevHash := b.BestBlockHash()
	header := wire.NewBlockHeader(b.chainParams.BlockVersion, &prevHash,
		&merkleRoot, b.difficultyBits)

	block := wire.NewBlock(header)
	blockSize := uint32(wire.MaxBlockHeaderPayload)
	for _, tx := range transactions {
		block.AddTransaction(tx)
		blockSize += uint32(len(tx.CanonicalBytes()))
	}
	block.BlockSize = blockSize

	log.Debugf("constructed candidate block at height %d with %d "+
		"transactions", b.Height(), block.TransactionCount)
	return block
}

// ProcessBlock validates a mined block against the current chain state and,
// when every rule holds, appends it and feeds its transactions to the
// index.  The block may come from this node's own miner or from an external
// source, so nothing about it is trusted: the proof of work, the tip
// linkage, the merkle commitment, every unlocking script, and the coinbase
// value are all checked.
func (b *BlockChain) ProcessBlock(block *wire.Block) error {
	if err := checkBlockSanity(block); err != nil {
		return err
	}

	// The block must extend the current tip.
	prevHash := b.BestBlockHash()
	if !block.Header.PrevBlock.IsEqual(&prevHash) {
		str := fmt.Sprintf("block previous hash %v does not reference "+
			"the chain tip %v", block.Header.PrevBlock, prevHash)
		return ruleError(ErrPrevBlockMismatch, str)
	}

	if err := CheckProofOfWork(&block.Header); err != nil {
		return err
	}

	// Resolve and verify every non-coinbase transaction, accumulating
	// the fees they pay.
	var totalFees chainutil.Amount
	for _, tx := range block.Transactions[1:] {
		fee, err := checkTransactionInputs(tx, b.txIndex)
		if err != nil {
			return err
		}
		totalFees += fee
	}

	// The coinbase may pay out at most the subsidy plus the fees the
	// block collects.
	var coinbasePaid chainutil.Amount
	for _, to := range block.Transactions[0].TxOut {
		coinbasePaid += chainutil.Amount(to.Value)
	}
	expected := CalcBlockSubsidy(b.Height(), b.chainParams) + totalFees
	if coinbasePaid > expected {
		str := fmt.Sprintf("coinbase transaction for block pays %v "+
			"which is more than expected value of %v", coinbasePaid,
			expected)
		return ruleError(ErrBadCoinbaseValue, str)
	}

	b.blocks = append(b.blocks, block)
	b.txIndex.Ingest(b.blocks)

	blockHash := block.Header.BlockHash()
	log.Infof("added block %v at height %d (%d transactions, fees %v)",
		blockHash, b.Height()-1, block.TransactionCount, totalFees)
	return nil
}
