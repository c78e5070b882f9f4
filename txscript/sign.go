// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2025 The Embercoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import (
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"

	"github.com/embercoin/go-embercoin/chaincfg/chainhash"
)

// CompactSigSize is the size of a serialized signature: the R then S values
// of the ECDSA signature as fixed-width big-endian 32-byte integers.
const CompactSigSize = 64

// serializeCompactSignature returns the fixed-size wire form of sig.
func serializeCompactSignature(sig *ecdsa.Signature) []byte {
	var b [CompactSigSize]byte
	r := sig.R()
	s := sig.S()
	rBytes := r.Bytes()
	sBytes := s.Bytes()
	copy(b[0:32], rBytes[:])
	copy(b[32:64], sBytes[:])
	return b[:]
}

// parseCompactSignature deserializes the fixed-size wire form of a
// signature.  Out-of-range and zero component values are rejected.
func parseCompactSignature(b []byte) (*ecdsa.Signature, error) {
	if len(b) != CompactSigSize {
		return nil, fmt.Errorf("malformed signature: wrong size %d", len(b))
	}

	var r, s secp256k1.ModNScalar
	if overflow := r.SetByteSlice(b[0:32]); overflow {
		return nil, fmt.Errorf("malformed signature: R >= group order")
	}
	if r.IsZero() {
		return nil, fmt.Errorf("malformed signature: R is 0")
	}
	if overflow := s.SetByteSlice(b[32:64]); overflow {
		return nil, fmt.Errorf("malformed signature: S >= group order")
	}
	if s.IsZero() {
		return nil, fmt.Errorf("malformed signature: S is 0")
	}
	return ecdsa.NewSignature(&r, &s), nil
}

// SignatureScript returns the unlocking script that satisfies a canonical
// pay-to-pubkey-hash locking script for the given key: the signature over
// the message followed by the SEC1 compressed serialization of the public
// key.  The message must be the canonical bytes of the transaction whose
// output is being spent.
func SignatureScript(message []byte, privKey *secp256k1.PrivateKey) Script {
	digest := chainhash.HashB(message)
	sig := ecdsa.Sign(privKey, digest)
	pubKeyBytes := privKey.PubKey().SerializeCompressed()
	return Script{
		PushData(serializeCompactSignature(sig)),
		PushData(pubKeyBytes),
	}
}
