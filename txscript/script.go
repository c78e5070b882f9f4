// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2025 The Embercoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import (
	"encoding/binary"
	"io"

	"github.com/embercoin/go-embercoin/chaincfg/chainhash"
)

// Script is an ordered sequence of script entries.  Scripts are plain data;
// they only gain meaning inside EvaluateScripts.
type Script []ScriptOp

// Serialization tags for the canonical script entry encoding.  These values
// are part of the wire contract: transaction hashing folds serialized script
// entries into the digest, so two implementations must agree on them
// byte for byte.
const (
	tagBool     = 0x00
	tagInt      = 0x01
	tagData     = 0x02
	tagAdd      = 0x10
	tagSub      = 0x11
	tagDup      = 0x12
	tagEqual    = 0x13
	tagHash160  = 0x14
	tagCheckSig = 0x15
	tagVerify   = 0x16
	tagEqVerify = 0x17
)

// kindTags maps every entry kind to its serialization tag.
var kindTags = map[opKind]byte{
	kindBool:     tagBool,
	kindInt:      tagInt,
	kindData:     tagData,
	kindAdd:      tagAdd,
	kindSub:      tagSub,
	kindDup:      tagDup,
	kindEqual:    tagEqual,
	kindHash160:  tagHash160,
	kindCheckSig: tagCheckSig,
	kindVerify:   tagVerify,
	kindEqVerify: tagEqVerify,
}

// SerializeTo writes the canonical encoding of the script entry to w.  The
// encoding is a single tag byte followed by a payload that depends on the
// variant: one byte for a boolean (0 or 1), a big-endian 4-byte two's
// complement value for an integer, and a big-endian 4-byte length followed
// by the raw bytes for a data push.  Bare operations are a tag byte alone.
func (op ScriptOp) SerializeTo(w io.Writer) error {
	if _, err := w.Write([]byte{kindTags[op.kind]}); err != nil {
		return err
	}

	switch op.kind {
	case kindBool:
		b := byte(0)
		if op.bval {
			b = 1
		}
		_, err := w.Write([]byte{b})
		return err

	case kindInt:
		var buf [4]byte
		binary.BigEndian.PutUint32(buf[:], uint32(op.ival))
		_, err := w.Write(buf[:])
		return err

	case kindData:
		var buf [4]byte
		binary.BigEndian.PutUint32(buf[:], uint32(len(op.data)))
		if _, err := w.Write(buf[:]); err != nil {
			return err
		}
		_, err := w.Write(op.data)
		return err
	}

	return nil
}

// SerializeTo writes the canonical encoding of every entry of the script to
// w in order.
func (s Script) SerializeTo(w io.Writer) error {
	for _, op := range s {
		if err := op.SerializeTo(w); err != nil {
			return err
		}
	}
	return nil
}

// IsEqual returns whether other holds the same entries as s.
func (s Script) IsEqual(other Script) bool {
	if len(s) != len(other) {
		return false
	}
	for i, op := range s {
		if !op.IsEqual(other[i]) {
			return false
		}
	}
	return true
}

// Copy returns a deep copy of the script.  Data pushes are cloned so the
// copy shares no bytes with the original.
func (s Script) Copy() Script {
	if s == nil {
		return nil
	}
	c := make(Script, len(s))
	for i, op := range s {
		if op.kind == kindData {
			data := make([]byte, len(op.data))
			copy(data, op.data)
			op.data = data
		}
		c[i] = op
	}
	return c
}

// Hash160 returns the short hash of the passed bytes.  Unlike bitcoin's
// HASH160, the embercoin short hash is a single round of SHA-256 with no
// RIPEMD-160 stage, so the result is a full 32 bytes.
func Hash160(b []byte) []byte {
	return chainhash.HashB(b)
}

// PayToPubKeyHash returns the canonical locking script that pays to the
// given public key hash: a spender must supply a signature and a public key
// whose short hash matches.
func PayToPubKeyHash(pubKeyHash []byte) Script {
	return Script{OpDup, OpHash160, PushData(pubKeyHash), OpEqVerify, OpCheckSig}
}
