// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2025 The Embercoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import (
	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/embercoin/go-embercoin/chaincfg/chainhash"
)

// stack is the evaluation stack.  Entries reuse the ScriptOp literal
// variants; only boolean, integer, and data values ever appear on it.
type stack []ScriptOp

func (s *stack) push(op ScriptOp) {
	*s = append(*s, op)
}

// pop removes and returns the top entry.  The second return is false on
// underflow.
func (s *stack) pop() (ScriptOp, bool) {
	if len(*s) == 0 {
		return ScriptOp{}, false
	}
	op := (*s)[len(*s)-1]
	*s = (*s)[:len(*s)-1]
	return op, true
}

// EvaluateScripts executes the unlocking script followed by the locking
// script on a shared stack that starts empty and reports whether the
// combined script authorizes the spend.  The message is the canonical byte
// serialization of the transaction whose output is being unlocked; OpCheckSig
// verifies signatures against the SHA-256 digest of it.
//
// Evaluation fails, yielding false, when any operation underflows the stack
// or meets operands of the wrong kind, when OpVerify or OpEqVerify finds an
// unsatisfied condition, or when a public key or signature fails to decode.
// When the combined script runs to completion the result is the value of
// the top stack entry, which must be a boolean.
func EvaluateScripts(unlocking, locking Script, message []byte) bool {
	var stk stack
	combined := make(Script, 0, len(unlocking)+len(locking))
	combined = append(combined, unlocking...)
	combined = append(combined, locking...)

	for _, op := range combined {
		log.Tracef("executing %v, stack depth %d", op, len(stk))

		switch op.kind {
		case kindBool, kindInt, kindData:
			stk.push(op)

		case kindAdd, kindSub:
			top, ok := stk.pop()
			if !ok {
				return false
			}
			bottom, ok := stk.pop()
			if !ok {
				return false
			}
			topVal, topOK := top.Int()
			bottomVal, bottomOK := bottom.Int()
			if !topOK || !bottomOK {
				return false
			}
			if op.kind == kindAdd {
				stk.push(PushInt(bottomVal + topVal))
			} else {
				stk.push(PushInt(bottomVal - topVal))
			}

		case kindDup:
			top, ok := stk.pop()
			if !ok {
				return false
			}
			if top.kind != kindInt && top.kind != kindData {
				return false
			}
			stk.push(top)
			stk.push(top)

		case kindEqual:
			equal, ok := popEqualOperands(&stk)
			if !ok {
				return false
			}
			stk.push(PushBool(equal))

		case kindEqVerify:
			equal, ok := popEqualOperands(&stk)
			if !ok || !equal {
				return false
			}

		case kindHash160:
			top, ok := stk.pop()
			if !ok {
				return false
			}
			data, isData := top.Data()
			if !isData {
				return false
			}
			stk.push(PushData(Hash160(data)))

		case kindCheckSig:
			top, ok := stk.pop()
			if !ok {
				return false
			}
			below, ok := stk.pop()
			if !ok {
				return false
			}
			pubKeyBytes, pubOK := top.Data()
			sigBytes, sigOK := below.Data()
			if !pubOK || !sigOK {
				return false
			}

			pubKey, err := secp256k1.ParsePubKey(pubKeyBytes)
			if err != nil {
				log.Debugf("checksig: invalid public key: %v", err)
				return false
			}
			sig, err := parseCompactSignature(sigBytes)
			if err != nil {
				log.Debugf("checksig: invalid signature: %v", err)
				return false
			}
			digest := chainhash.HashB(message)
			stk.push(PushBool(sig.Verify(digest, pubKey)))

		case kindVerify:
			top, ok := stk.pop()
			if !ok {
				return false
			}
			val, isBool := top.Bool()
			if !isBool || !val {
				return false
			}
		}
	}

	// Nothing triggered an early failure, so the verdict is the boolean on
	// top of the stack.  A non-boolean, or an empty stack, is a failure.
	top, ok := stk.pop()
	if !ok {
		return false
	}
	val, isBool := top.Bool()
	return isBool && val
}

// popEqualOperands pops two entries and compares them.  Both must be
// integers or both data pushes; any other pairing is a kind mismatch and
// reports failure.
func popEqualOperands(stk *stack) (equal bool, ok bool) {
	first, ok := stk.pop()
	if !ok {
		return false, false
	}
	second, ok := stk.pop()
	if !ok {
		return false, false
	}

	if v1, isInt := first.Int(); isInt {
		v2, isInt := second.Int()
		if !isInt {
			return false, false
		}
		return v1 == v2, true
	}
	if b1, isData := first.Data(); isData {
		b2, isData := second.Data()
		if !isData {
			return false, false
		}
		return string(b1) == string(b2), true
	}
	return false, false
}
