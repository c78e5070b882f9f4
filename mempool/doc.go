// Copyright (c) 2016 The btcsuite developers
// Copyright (c) 2025 The Embercoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package mempool provides the pool of validated, unconfirmed transactions.

The pool is a max-priority queue keyed on the miner tip each transaction
pays, so draining it hands the block builder the most profitable
transactions first.  Ties between equal tips break by admission order,
keeping drains deterministic.  Validation is the chain manager's job; the
pool only stores what has already been accepted.
*/
package mempool
