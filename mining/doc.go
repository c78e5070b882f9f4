// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2025 The Embercoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package mining provides the proof-of-work nonce search used to seal
// candidate blocks.
package mining
