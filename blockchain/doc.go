// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2025 The Embercoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package blockchain implements embercoin block handling and validation
rules.  It keeps a single chain: a block is accepted only when it extends
the current tip, and no fork choice is made.

The package ties the other core packages together: it owns the append-only
block sequence, the mempool of validated pending transactions, and the
transaction index.  Transactions submitted from outside pass full
script-level validation before they reach the mempool, candidate blocks
assemble the highest-tipping pending transactions behind a fresh coinbase,
and mined blocks are re-validated from scratch before they extend the
chain.

# Errors

Errors returned by this package are either the vanilla error interface or
of type blockchain.RuleError.  Callers can use type assertions, or the
IsErrorCode convenience function, to determine whether a failure was due to
a rule violation and which one.
*/
package blockchain
