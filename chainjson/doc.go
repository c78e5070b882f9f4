// Copyright (c) 2014-2017 The btcsuite developers
// Copyright (c) 2025 The Embercoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package chainjson provides the JSON persistence format for a block chain.

A dump is a self-describing structured rendering of a chain's durable
state: the difficulty bits, the candidate block transaction cap, and every
block with its header and transactions.  Loading a dump replays the blocks
through the chain manager's validation, so save-then-load round-trips an
equal chain and a corrupted dump is rejected instead of restored.
*/
package chainjson
