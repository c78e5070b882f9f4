// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2025 The Embercoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"bytes"
	"io"

	"github.com/embercoin/go-embercoin/chaincfg/chainhash"
	"github.com/embercoin/go-embercoin/txscript"
)

// TxIn is a single input of a transaction.  It is a closed sum of exactly
// two variants: *CoinbaseIn, which creates new value and may only appear as
// the sole input of a block's first transaction, and *PrevOutIn, which
// spends the output of an earlier transaction.
type TxIn interface {
	// SerializeTo writes the canonical wire bytes of the input to w.
	SerializeTo(w io.Writer) error

	// Copy returns a deep copy of the input.
	Copy() TxIn

	// isTxIn seals the interface to the two variants above.
	isTxIn()
}

// CoinbaseIn is the input variant that mints the block reward.  The
// coinbase payload is arbitrary; the chain sets it to the block height so
// coinbase transactions at different heights never hash alike.
type CoinbaseIn struct {
	Coinbase uint32
	Sequence uint32
}

var _ TxIn = (*CoinbaseIn)(nil)

func (ti *CoinbaseIn) isTxIn() {}

// SerializeTo writes the canonical wire bytes of the input to w.
func (ti *CoinbaseIn) SerializeTo(w io.Writer) error {
	if err := writeUint32(w, ti.Coinbase); err != nil {
		return err
	}
	return writeUint32(w, ti.Sequence)
}

// Copy returns a deep copy of the input.
func (ti *CoinbaseIn) Copy() TxIn {
	c := *ti
	return &c
}

// PrevOutIn is the input variant that spends an output of a previous
// transaction, identified by that transaction's hash and the output's
// position within it.  The unlocking script must satisfy the referenced
// output's locking script.
type PrevOutIn struct {
	PrevTxHash      chainhash.Hash
	PrevTxOutIndex  uint32
	UnlockingScript txscript.Script
	Sequence        uint32
}

var _ TxIn = (*PrevOutIn)(nil)

func (ti *PrevOutIn) isTxIn() {}

// SerializeTo writes the canonical wire bytes of the input to w.
func (ti *PrevOutIn) SerializeTo(w io.Writer) error {
	if _, err := w.Write(ti.PrevTxHash[:]); err != nil {
		return err
	}
	if err := writeUint32(w, ti.PrevTxOutIndex); err != nil {
		return err
	}
	if err := ti.UnlockingScript.SerializeTo(w); err != nil {
		return err
	}
	return writeUint32(w, ti.Sequence)
}

// Copy returns a deep copy of the input.
func (ti *PrevOutIn) Copy() TxIn {
	c := *ti
	c.UnlockingScript = ti.UnlockingScript.Copy()
	return &c
}

// TxOut is a single output of a transaction: an amount in sparks locked
// behind a script a future spender must satisfy.
type TxOut struct {
	Value         uint32
	LockingScript txscript.Script
}

// SerializeTo writes the canonical wire bytes of the output to w.
func (to *TxOut) SerializeTo(w io.Writer) error {
	if err := writeUint32(w, to.Value); err != nil {
		return err
	}
	return to.LockingScript.SerializeTo(w)
}

// Copy returns a deep copy of the output.
func (to *TxOut) Copy() *TxOut {
	return &TxOut{
		Value:         to.Value,
		LockingScript: to.LockingScript.Copy(),
	}
}

// Tx is an embercoin transaction: a batch of value transfers from inputs to
// outputs.  A valid transaction carries at least one input and one output.
// Transactions are never mutated once constructed.
type Tx struct {
	Version  uint32
	LockTime uint32
	TxIn     []TxIn
	TxOut    []*TxOut
}

// NewTx returns a transaction with the given version and lock time and no
// inputs or outputs.
func NewTx(version, lockTime uint32) *Tx {
	return &Tx{Version: version, LockTime: lockTime}
}

// AddTxIn appends a transaction input.
func (tx *Tx) AddTxIn(ti TxIn) {
	tx.TxIn = append(tx.TxIn, ti)
}

// AddTxOut appends a transaction output.
func (tx *Tx) AddTxOut(to *TxOut) {
	tx.TxOut = append(tx.TxOut, to)
}

// SerializeTo writes the canonical byte serialization of the transaction to
// w: the version and lock time, then each input and each output in order.
// This byte sequence is the interoperability contract: it feeds the
// transaction hash and is the message signed when spending an output.
func (tx *Tx) SerializeTo(w io.Writer) error {
	if err := writeUint32(w, tx.Version); err != nil {
		return err
	}
	if err := writeUint32(w, tx.LockTime); err != nil {
		return err
	}
	for _, ti := range tx.TxIn {
		if err := ti.SerializeTo(w); err != nil {
			return err
		}
	}
	for _, to := range tx.TxOut {
		if err := to.SerializeTo(w); err != nil {
			return err
		}
	}
	return nil
}

// CanonicalBytes returns the canonical byte serialization of the
// transaction.
func (tx *Tx) CanonicalBytes() []byte {
	var buf bytes.Buffer
	_ = tx.SerializeTo(&buf)
	return buf.Bytes()
}

// TxHash returns the canonical transaction hash: a single SHA-256 over the
// canonical bytes.
func (tx *Tx) TxHash() chainhash.Hash {
	return chainhash.HashRaw(tx.SerializeTo)
}

// TxDoubleHash returns the double SHA-256 of the canonical bytes.  The
// merkle tree is built over these digests.
func (tx *Tx) TxDoubleHash() chainhash.Hash {
	return chainhash.DoubleHashRaw(tx.SerializeTo)
}

// Copy returns a deep copy of the transaction.  The copy shares no state
// with the original, so holders of a copy, such as the transaction index,
// are isolated from the original's owner.
func (tx *Tx) Copy() *Tx {
	c := &Tx{
		Version:  tx.Version,
		LockTime: tx.LockTime,
		TxIn:     make([]TxIn, 0, len(tx.TxIn)),
		TxOut:    make([]*TxOut, 0, len(tx.TxOut)),
	}
	for _, ti := range tx.TxIn {
		c.TxIn = append(c.TxIn, ti.Copy())
	}
	for _, to := range tx.TxOut {
		c.TxOut = append(c.TxOut, to.Copy())
	}
	return c
}
