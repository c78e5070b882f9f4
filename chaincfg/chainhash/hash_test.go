// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2025 The Embercoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chainhash

import (
	"bytes"
	"encoding/hex"
	"io"
	"testing"
)

// mainNetGenesisHash is used in the tests as a convenient source of a known
// hash value.
var mainNetGenesisHash = Hash([HashSize]byte{
	0x00, 0x00, 0x00, 0x00, 0x00, 0x19, 0xd6, 0x68,
	0x9c, 0x08, 0x5a, 0xe1, 0x65, 0x83, 0x1e, 0x93,
	0x4f, 0xf7, 0x63, 0xae, 0x46, 0xa2, 0xa6, 0xc1,
	0x72, 0xb3, 0xf1, 0xb6, 0x0a, 0x8c, 0xe2, 0x6f,
})

// TestHash tests the Hash API.
func TestHash(t *testing.T) {
	hashStr := "0000000000000000000000000000000000000000000000000000000000000064"
	hash, err := NewHashFromStr(hashStr)
	if err != nil {
		t.Errorf("NewHashFromStr: %v", err)
	}
	if hash.String() != hashStr {
		t.Errorf("String: wrong hash string - got %v, want %v",
			hash.String(), hashStr)
	}

	// Short strings decode as numbers with leading zeros.
	short, err := NewHashFromStr("64")
	if err != nil {
		t.Errorf("NewHashFromStr: %v", err)
	}
	if !short.IsEqual(hash) {
		t.Errorf("IsEqual: short decode mismatch - got %v, want %v",
			short, hash)
	}

	buf := make([]byte, HashSize)
	buf[HashSize-1] = 0x64
	var setHash Hash
	if err := setHash.SetBytes(buf); err != nil {
		t.Errorf("SetBytes: %v", err)
	}
	if !setHash.IsEqual(hash) {
		t.Errorf("IsEqual: SetBytes mismatch - got %v, want %v",
			setHash, hash)
	}

	// Invalid size for SetBytes.
	if err := setHash.SetBytes([]byte{0x00}); err == nil {
		t.Errorf("SetBytes: failed to received expected err - got nil")
	}

	// Invalid size for NewHash.
	if _, err := NewHash([]byte{0x00}); err == nil {
		t.Errorf("NewHash: failed to received expected err - got nil")
	}

	// Too long for NewHashFromStr.
	if _, err := NewHashFromStr(hashStr + "00"); err != ErrHashStrSize {
		t.Errorf("NewHashFromStr: unexpected err - got %v, want %v",
			err, ErrHashStrSize)
	}

	if !mainNetGenesisHash.IsEqual(&mainNetGenesisHash) {
		t.Errorf("IsEqual: hash not equal to itself")
	}
	if mainNetGenesisHash.IsEqual(hash) {
		t.Errorf("IsEqual: unexpectedly equal hashes %v and %v",
			mainNetGenesisHash, hash)
	}

	if !bytes.Equal(mainNetGenesisHash.CloneBytes(), mainNetGenesisHash[:]) {
		t.Errorf("CloneBytes: byte mismatch")
	}
}

// TestHashFuncs ensures the hash functions produce the expected digests for
// known inputs.
func TestHashFuncs(t *testing.T) {
	// Well-known SHA-256 vectors.
	tests := []struct {
		in     string
		single string
		double string
	}{
		{
			in:     "",
			single: "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
			double: "5df6e0e2761359d30a8275058e299fcc0381534545f55cf43e41983f5d4c9456",
		},
		{
			in:     "abc",
			single: "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad",
			double: "4f8b42c22dd3729b519ba6f68d2da7cc5b2d606d05daed5ad5128cc03e6c6358",
		},
	}

	for _, test := range tests {
		single := hex.EncodeToString(HashB([]byte(test.in)))
		if single != test.single {
			t.Errorf("HashB(%q): got %s, want %s", test.in, single,
				test.single)
		}
		if HashH([]byte(test.in)).String() != test.single {
			t.Errorf("HashH(%q): mismatch with HashB", test.in)
		}

		double := hex.EncodeToString(DoubleHashB([]byte(test.in)))
		if double != test.double {
			t.Errorf("DoubleHashB(%q): got %s, want %s", test.in,
				double, test.double)
		}
		if DoubleHashH([]byte(test.in)).String() != test.double {
			t.Errorf("DoubleHashH(%q): mismatch with DoubleHashB",
				test.in)
		}
	}
}

// TestHashRaw ensures the serialization-driven hashers agree with the
// byte-slice hashers.
func TestHashRaw(t *testing.T) {
	payload := []byte("embercoin")
	serialize := func(w io.Writer) error {
		_, err := w.Write(payload)
		return err
	}

	if single := HashRaw(serialize); single != HashH(payload) {
		t.Errorf("HashRaw: got %v, want %v", single, HashH(payload))
	}
	if double := DoubleHashRaw(serialize); double != DoubleHashH(payload) {
		t.Errorf("DoubleHashRaw: got %v, want %v", double,
			DoubleHashH(payload))
	}
}
