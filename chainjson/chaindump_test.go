// Copyright (c) 2014-2017 The btcsuite developers
// Copyright (c) 2025 The Embercoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chainjson

import (
	"encoding/json"
	"testing"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/stretchr/testify/require"

	"github.com/embercoin/go-embercoin/blockchain"
	"github.com/embercoin/go-embercoin/chaincfg"
	"github.com/embercoin/go-embercoin/txscript"
	"github.com/embercoin/go-embercoin/wire"
)

// buildTestChain mines a small simnet chain holding a signed spend, so the
// dump covers both input variants and every script entry shape used by the
// standard flow.
func buildTestChain(t *testing.T) *blockchain.BlockChain {
	t.Helper()

	privKey := secp256k1.PrivKeyFromBytes(
		[]byte("adamadamadamadamadamadamadamadam"))
	chain, err := blockchain.New(&blockchain.Config{
		ChainParams: &chaincfg.SimNetParams,
	})
	require.NoError(t, err)

	mine := func() *wire.Block {
		block := chain.ConstructCandidateBlock(privKey.PubKey())
		target := blockchain.CompactToBig(block.Header.Bits)
		for nonce := uint32(0); ; nonce++ {
			block.Header.SetNonce(nonce)
			hash := block.Header.BlockHash()
			if blockchain.HashToBig(&hash).Cmp(target) <= 0 {
				break
			}
		}
		require.NoError(t, chain.ProcessBlock(block))
		return block
	}

	genesis := mine()

	// Spend the genesis reward, tipping one spark.
	coinbaseTx := genesis.Transactions[0]
	spend := wire.NewTx(1, 5)
	spend.AddTxIn(&wire.PrevOutIn{
		PrevTxHash:      coinbaseTx.TxHash(),
		PrevTxOutIndex:  0,
		UnlockingScript: txscript.SignatureScript(coinbaseTx.CanonicalBytes(), privKey),
		Sequence:        1234,
	})
	pubKeyHash := txscript.Hash160(privKey.PubKey().SerializeCompressed())
	spend.AddTxOut(&wire.TxOut{
		Value:         coinbaseTx.TxOut[0].Value - 1,
		LockingScript: txscript.PayToPubKeyHash(pubKeyHash),
	})
	require.NoError(t, chain.AdmitTransaction(spend))
	mine()

	return chain
}

// TestChainDumpRoundTrip saves a chain and restores it, expecting an equal
// chain back.
func TestChainDumpRoundTrip(t *testing.T) {
	chain := buildTestChain(t)

	data, err := MarshalChain(chain)
	require.NoError(t, err)

	restored, err := UnmarshalChain(data, &chaincfg.SimNetParams)
	require.NoError(t, err)

	require.Equal(t, chain.Height(), restored.Height())
	require.Equal(t, chain.DifficultyBits(), restored.DifficultyBits())
	require.Equal(t, chain.MaxTxPerBlock(), restored.MaxTxPerBlock())
	require.Equal(t, chain.BestBlockHash(), restored.BestBlockHash())
	require.Equal(t, chain.TxIndex().NumTransactions(),
		restored.TxIndex().NumTransactions())

	// Equal chains render equal dumps.
	restoredData, err := MarshalChain(restored)
	require.NoError(t, err)
	require.Equal(t, string(data), string(restoredData))
}

// TestChainDumpRejectsTampering rewrites the previous block hash of a mined
// header and expects the restore to fail validation.
func TestChainDumpRejectsTampering(t *testing.T) {
	chain := buildTestChain(t)

	data, err := MarshalChain(chain)
	require.NoError(t, err)

	var dump ChainDump
	require.NoError(t, json.Unmarshal(data, &dump))
	dump.Blocks[1].Header.PrevBlock = dump.Blocks[0].Header.MerkleRoot
	tampered, err := json.Marshal(&dump)
	require.NoError(t, err)

	_, err = UnmarshalChain(tampered, &chaincfg.SimNetParams)
	require.Error(t, err)
}

// TestRestoreTxRejectsMalformedInputs ensures input variant confusion is
// caught.
func TestRestoreTxRejectsMalformedInputs(t *testing.T) {
	// Neither variant populated.
	_, err := restoreTx(&TxDump{
		Version: 1,
		TxIn:    []TxInDump{{}},
	})
	require.Error(t, err)

	// Both variants populated.
	_, err = restoreTx(&TxDump{
		Version: 1,
		TxIn: []TxInDump{{
			Coinbase: &CoinbaseInDump{},
			PrevOut:  &PrevOutInDump{},
		}},
	})
	require.Error(t, err)
}
