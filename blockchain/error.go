// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2025 The Embercoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import "fmt"

// ErrorCode identifies a kind of error.
type ErrorCode int

// These constants are used to identify a specific RuleError.
const (
	// ErrCoinbaseSpend indicates a transaction submitted for mempool
	// admission has no inputs at all or carries a coinbase input.  Only
	// the miner constructs coinbase transactions.
	ErrCoinbaseSpend ErrorCode = iota

	// ErrTxInNotFound indicates a transaction input references a
	// transaction that is not in the index, or an output index beyond
	// the referenced transaction's outputs.
	ErrTxInNotFound

	// ErrInvalidScript indicates an input's unlocking script failed to
	// satisfy the locking script of the output it spends.
	ErrInvalidScript

	// ErrOverSpend indicates a transaction's outputs sum to more than
	// the outputs it spends.
	ErrOverSpend

	// ErrNoTransactions indicates a block does not have at least one
	// transaction, or that its transaction count field does not match
	// the transactions it carries.  A valid block must have at least the
	// coinbase transaction.
	ErrNoTransactions

	// ErrNoTxInputs indicates a transaction does not have any inputs.
	ErrNoTxInputs

	// ErrNoTxOutputs indicates a transaction does not have any outputs.
	ErrNoTxOutputs

	// ErrFirstTxNotCoinbase indicates the first transaction in a block
	// is not a coinbase transaction.
	ErrFirstTxNotCoinbase

	// ErrMultipleCoinbases indicates a block contains more than one
	// coinbase transaction.
	ErrMultipleCoinbases

	// ErrMissingNonce indicates a block header submitted for chain
	// extension was never mined.
	ErrMissingNonce

	// ErrHighHash indicates the block does not hash to a value which is
	// less than or equal to the required target difficulty.
	ErrHighHash

	// ErrPrevBlockMismatch indicates a block's previous block hash does
	// not reference the current chain tip.
	ErrPrevBlockMismatch

	// ErrBadMerkleRoot indicates the calculated merkle root does not
	// match the expected value in the block header.
	ErrBadMerkleRoot

	// ErrBadCoinbaseValue indicates the amount paid by the coinbase
	// exceeds the expected block subsidy plus the fees collected from
	// the block's transactions.
	ErrBadCoinbaseValue
)

// Map of ErrorCode values back to their constant names for pretty printing.
var errorCodeStrings = map[ErrorCode]string{
	ErrCoinbaseSpend:      "ErrCoinbaseSpend",
	ErrTxInNotFound:       "ErrTxInNotFound",
	ErrInvalidScript:      "ErrInvalidScript",
	ErrOverSpend:          "ErrOverSpend",
	ErrNoTransactions:     "ErrNoTransactions",
	ErrNoTxInputs:         "ErrNoTxInputs",
	ErrNoTxOutputs:        "ErrNoTxOutputs",
	ErrFirstTxNotCoinbase: "ErrFirstTxNotCoinbase",
	ErrMultipleCoinbases:  "ErrMultipleCoinbases",
	ErrMissingNonce:       "ErrMissingNonce",
	ErrHighHash:           "ErrHighHash",
	ErrPrevBlockMismatch:  "ErrPrevBlockMismatch",
	ErrBadMerkleRoot:      "ErrBadMerkleRoot",
	ErrBadCoinbaseValue:   "ErrBadCoinbaseValue",
}

// String returns the ErrorCode as a human-readable name.
func (e ErrorCode) String() string {
	if s := errorCodeStrings[e]; s != "" {
		return s
	}
	return fmt.Sprintf("Unknown ErrorCode (%d)", int(e))
}

// RuleError identifies a rule violation.  It is used to indicate that
// processing of a transaction or block failed due to one of the many
// validation rules.  The caller can use type assertions to determine if a
// failure was specifically due to a rule violation and access the ErrorCode
// field to ascertain the specific reason for the rule violation.
type RuleError struct {
	ErrorCode   ErrorCode // Describes the kind of error
	Description string    // Human readable description of the issue
}

// Error satisfies the error interface and prints human-readable errors.
func (e RuleError) Error() string {
	return e.Description
}

// ruleError creates a RuleError given a set of arguments.
func ruleError(c ErrorCode, desc string) RuleError {
	return RuleError{ErrorCode: c, Description: desc}
}

// IsErrorCode reports whether err is a RuleError with the given code.
func IsErrorCode(err error, c ErrorCode) bool {
	ruleErr, ok := err.(RuleError)
	return ok && ruleErr.ErrorCode == c
}
