// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2025 The Embercoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"encoding/binary"
	"io"
)

// Every fixed-width integer on the wire is big endian, so a serialized
// value reads the same as its numeric rendering.
var bigEndian = binary.BigEndian

// writeUint32 serializes the provided uint32 to w in canonical form.
func writeUint32(w io.Writer, val uint32) error {
	var buf [4]byte
	bigEndian.PutUint32(buf[:], val)
	_, err := w.Write(buf[:])
	return err
}

// writeUint64 serializes the provided uint64 to w in canonical form.
func writeUint64(w io.Writer, val uint64) error {
	var buf [8]byte
	bigEndian.PutUint64(buf[:], val)
	_, err := w.Write(buf[:])
	return err
}
