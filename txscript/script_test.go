// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2025 The Embercoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestScriptSerialization locks down the canonical entry encoding byte for
// byte.  These bytes feed transaction hashing, so any change here is a
// consensus break.
func TestScriptSerialization(t *testing.T) {
	tests := []struct {
		name   string
		script Script
		want   []byte
	}{
		{
			name:   "bool true",
			script: Script{PushBool(true)},
			want:   []byte{0x00, 0x01},
		},
		{
			name:   "bool false",
			script: Script{PushBool(false)},
			want:   []byte{0x00, 0x00},
		},
		{
			name:   "positive int",
			script: Script{PushInt(5)},
			want:   []byte{0x01, 0x00, 0x00, 0x00, 0x05},
		},
		{
			name:   "negative int is two's complement",
			script: Script{PushInt(-2)},
			want:   []byte{0x01, 0xff, 0xff, 0xff, 0xfe},
		},
		{
			name:   "data push is length prefixed",
			script: Script{PushData([]byte{0xaa, 0xbb})},
			want:   []byte{0x02, 0x00, 0x00, 0x00, 0x02, 0xaa, 0xbb},
		},
		{
			name:   "empty data push",
			script: Script{PushData(nil)},
			want:   []byte{0x02, 0x00, 0x00, 0x00, 0x00},
		},
		{
			name: "bare operations",
			script: Script{OpAdd, OpSub, OpDup, OpEqual, OpHash160,
				OpCheckSig, OpVerify, OpEqVerify},
			want: []byte{0x10, 0x11, 0x12, 0x13, 0x14, 0x15, 0x16, 0x17},
		},
		{
			name:   "p2pkh shape",
			script: PayToPubKeyHash([]byte{0x01}),
			want: []byte{
				0x12,                         // dup
				0x14,                         // hash160
				0x02, 0x00, 0x00, 0x00, 0x01, // push hash
				0x01, // hash byte
				0x17, // eqverify
				0x15, // checksig
			},
		},
	}

	for _, test := range tests {
		var buf bytes.Buffer
		if err := test.script.SerializeTo(&buf); err != nil {
			t.Errorf("%q: unexpected error: %v", test.name, err)
			continue
		}
		if !bytes.Equal(buf.Bytes(), test.want) {
			t.Errorf("%q: got %x, want %x", test.name, buf.Bytes(),
				test.want)
		}
	}
}

// TestScriptCopy ensures copies share no backing bytes with the original.
func TestScriptCopy(t *testing.T) {
	data := []byte{0x01, 0x02}
	orig := Script{PushData(data), OpDup}
	cp := orig.Copy()

	require.True(t, orig.IsEqual(cp))

	// Mutating the source slice must not leak into the copy.
	data[0] = 0xff
	cpData, _ := cp[0].Data()
	require.Equal(t, []byte{0x01, 0x02}, cpData)
}

// TestScriptJSON round-trips every entry variant through the JSON encoding
// used by chain dumps.
func TestScriptJSON(t *testing.T) {
	script := Script{
		PushBool(false),
		PushBool(true),
		PushInt(-7),
		PushData([]byte{0xde, 0xad}),
		OpDup, OpHash160, OpEqVerify, OpCheckSig, OpAdd, OpSub,
		OpEqual, OpVerify,
	}

	encoded, err := json.Marshal(script)
	require.NoError(t, err)

	var decoded Script
	require.NoError(t, json.Unmarshal(encoded, &decoded))
	require.True(t, script.IsEqual(decoded))

	// Unknown operations and entries with no variant must be rejected.
	var bad Script
	require.Error(t, json.Unmarshal([]byte(`[{"op":"nop"}]`), &bad))
	require.Error(t, json.Unmarshal([]byte(`[{}]`), &bad))
}
