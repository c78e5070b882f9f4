// Copyright (c) 2014-2017 The btcsuite developers
// Copyright (c) 2025 The Embercoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chainjson

import (
	"encoding/json"
	"fmt"

	"github.com/embercoin/go-embercoin/blockchain"
	"github.com/embercoin/go-embercoin/chaincfg"
	"github.com/embercoin/go-embercoin/chaincfg/chainhash"
	"github.com/embercoin/go-embercoin/txscript"
	"github.com/embercoin/go-embercoin/wire"
)

// ChainDump is the top-level object of the persistence format: a
// self-describing rendering of a chain's durable state.  The mempool and
// transaction index are deliberately absent; pending transactions do not
// survive a restart and the index is rebuilt by replaying the blocks.
type ChainDump struct {
	DifficultyBits uint32      `json:"difficultyBits"`
	MaxTxPerBlock  uint32      `json:"maxTxPerBlock"`
	Blocks         []BlockDump `json:"blocks"`
}

// BlockDump models a single block of the dump.
type BlockDump struct {
	BlockSize        uint32     `json:"blockSize"`
	Header           HeaderDump `json:"header"`
	TransactionCount uint32     `json:"transactionCount"`
	Transactions     []TxDump   `json:"transactions"`
}

// HeaderDump models a block header.  Hashes render as big-endian hex.  A
// missing nonce marks a header that was never mined, which a valid dump
// never contains but the format can express.
type HeaderDump struct {
	Version    uint32  `json:"version"`
	PrevBlock  string  `json:"prevBlock"`
	MerkleRoot string  `json:"merkleRoot"`
	Timestamp  uint64  `json:"timestamp"`
	Bits       uint32  `json:"bits"`
	Nonce      *uint32 `json:"nonce,omitempty"`
}

// TxDump models a transaction.
type TxDump struct {
	Version  uint32      `json:"version"`
	LockTime uint32      `json:"lockTime"`
	TxIn     []TxInDump  `json:"txIn"`
	TxOut    []TxOutDump `json:"txOut"`
}

// TxInDump models a transaction input.  Exactly one of the two variant
// fields is populated.
type TxInDump struct {
	Coinbase *CoinbaseInDump `json:"coinbase,omitempty"`
	PrevOut  *PrevOutInDump  `json:"prevOut,omitempty"`
}

// CoinbaseInDump models the reward-minting input variant.
type CoinbaseInDump struct {
	Coinbase uint32 `json:"coinbase"`
	Sequence uint32 `json:"sequence"`
}

// PrevOutInDump models the spending input variant.
type PrevOutInDump struct {
	PrevTxHash      string          `json:"prevTxHash"`
	PrevTxOutIndex  uint32          `json:"prevTxOutIndex"`
	UnlockingScript txscript.Script `json:"unlockingScript"`
	Sequence        uint32          `json:"sequence"`
}

// TxOutDump models a transaction output.
type TxOutDump struct {
	Value         uint32          `json:"value"`
	LockingScript txscript.Script `json:"lockingScript"`
}

// dumpTx converts a wire transaction into its dump form.
func dumpTx(tx *wire.Tx) TxDump {
	dump := TxDump{
		Version:  tx.Version,
		LockTime: tx.LockTime,
		TxIn:     make([]TxInDump, 0, len(tx.TxIn)),
		TxOut:    make([]TxOutDump, 0, len(tx.TxOut)),
	}
	for _, ti := range tx.TxIn {
		switch in := ti.(type) {
		case *wire.CoinbaseIn:
			dump.TxIn = append(dump.TxIn, TxInDump{
				Coinbase: &CoinbaseInDump{
					Coinbase: in.Coinbase,
					Sequence: in.Sequence,
				},
			})
		case *wire.PrevOutIn:
			dump.TxIn = append(dump.TxIn, TxInDump{
				PrevOut: &PrevOutInDump{
					PrevTxHash:      in.PrevTxHash.String(),
					PrevTxOutIndex:  in.PrevTxOutIndex,
					UnlockingScript: in.UnlockingScript,
					Sequence:        in.Sequence,
				},
			})
		}
	}
	for _, to := range tx.TxOut {
		dump.TxOut = append(dump.TxOut, TxOutDump{
			Value:         to.Value,
			LockingScript: to.LockingScript,
		})
	}
	return dump
}

// restoreTx converts a dumped transaction back into its wire form.
func restoreTx(dump *TxDump) (*wire.Tx, error) {
	tx := wire.NewTx(dump.Version, dump.LockTime)
	for i, ti := range dump.TxIn {
		switch {
		case ti.Coinbase != nil && ti.PrevOut == nil:
			tx.AddTxIn(&wire.CoinbaseIn{
				Coinbase: ti.Coinbase.Coinbase,
				Sequence: ti.Coinbase.Sequence,
			})
		case ti.PrevOut != nil && ti.Coinbase == nil:
			prevHash, err := chainhash.NewHashFromStr(ti.PrevOut.PrevTxHash)
			if err != nil {
				return nil, fmt.Errorf("input %d: invalid "+
					"previous tx hash: %w", i, err)
			}
			tx.AddTxIn(&wire.PrevOutIn{
				PrevTxHash:      *prevHash,
				PrevTxOutIndex:  ti.PrevOut.PrevTxOutIndex,
				UnlockingScript: ti.PrevOut.UnlockingScript,
				Sequence:        ti.PrevOut.Sequence,
			})
		default:
			return nil, fmt.Errorf("input %d carries neither or "+
				"both variants", i)
		}
	}
	for _, to := range dump.TxOut {
		tx.AddTxOut(&wire.TxOut{
			Value:         to.Value,
			LockingScript: to.LockingScript,
		})
	}
	return tx, nil
}

// dumpBlock converts a wire block into its dump form.
func dumpBlock(block *wire.Block) BlockDump {
	header := &block.Header
	dump := BlockDump{
		BlockSize: block.BlockSize,
		Header: HeaderDump{
			Version:    header.Version,
			PrevBlock:  header.PrevBlock.String(),
			MerkleRoot: header.MerkleRoot.String(),
			Timestamp:  header.Timestamp,
			Bits:       header.Bits,
		},
		TransactionCount: block.TransactionCount,
		Transactions:     make([]TxDump, 0, len(block.Transactions)),
	}
	if header.Nonce != nil {
		nonce := *header.Nonce
		dump.Header.Nonce = &nonce
	}
	for _, tx := range block.Transactions {
		dump.Transactions = append(dump.Transactions, dumpTx(tx))
	}
	return dump
}

// restoreBlock converts a dumped block back into its wire form.
func restoreBlock(dump *BlockDump) (*wire.Block, error) {
	prevBlock, err := chainhash.NewHashFromStr(dump.Header.PrevBlock)
	if err != nil {
		return nil, fmt.Errorf("invalid previous block hash: %w", err)
	}
	merkleRoot, err := chainhash.NewHashFromStr(dump.Header.MerkleRoot)
	if err != nil {
		return nil, fmt.Errorf("invalid merkle root: %w", err)
	}

	header := wire.BlockHeader{
		Version:    dump.Header.Version,
		PrevBlock:  *prevBlock,
		MerkleRoot: *merkleRoot,
		Timestamp:  dump.Header.Timestamp,
		Bits:       dump.Header.Bits,
	}
	if dump.Header.Nonce != nil {
		header.SetNonce(*dump.Header.Nonce)
	}

	block := wire.NewBlock(&header)
	block.BlockSize = dump.BlockSize
	for i := range dump.Transactions {
		tx, err := restoreTx(&dump.Transactions[i])
		if err != nil {
			return nil, fmt.Errorf("transaction %d: %w", i, err)
		}
		block.AddTransaction(tx)
	}
	return block, nil
}

// MarshalChain renders the durable state of a chain as indented JSON.
func MarshalChain(chain *blockchain.BlockChain) ([]byte, error) {
	dump := ChainDump{
		DifficultyBits: chain.DifficultyBits(),
		MaxTxPerBlock:  chain.MaxTxPerBlock(),
	}
	for _, block := range chain.Blocks() {
		dump.Blocks = append(dump.Blocks, dumpBlock(block))
	}
	return json.MarshalIndent(&dump, "", "  ")
}

// UnmarshalChain rebuilds a chain from a dump produced by MarshalChain.
// Every block replays through the chain manager's full validation, so a
// tampered dump fails to load rather than producing a chain that violates
// the consensus invariants.  The transaction index is rebuilt as a side
// effect of the replay.
func UnmarshalChain(data []byte, params *chaincfg.Params) (*blockchain.BlockChain, error) {
	var dump ChainDump
	if err := json.Unmarshal(data, &dump); err != nil {
		return nil, err
	}

	chain, err := blockchain.New(&blockchain.Config{
		ChainParams:    params,
		DifficultyBits: dump.DifficultyBits,
		MaxTxPerBlock:  dump.MaxTxPerBlock,
	})
	if err != nil {
		return nil, err
	}

	for i := range dump.Blocks {
		block, err := restoreBlock(&dump.Blocks[i])
		if err != nil {
			return nil, fmt.Errorf("block %d: %w", i, err)
		}
		if err := chain.ProcessBlock(block); err != nil {
			return nil, fmt.Errorf("block %d failed validation: %w",
				i, err)
		}
	}
	return chain, nil
}
