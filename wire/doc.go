// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2025 The Embercoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package wire implements the embercoin canonical data structures and their
byte serialization.

The serialization produced by this package is the interoperability
contract of the system: transaction hashes, block header hashes, and
spend-authorization messages are all computed over these exact bytes, with
every fixed-width integer encoded big endian.  Two implementations that
agree on this package's output agree on every hash in the chain.
*/
package wire
