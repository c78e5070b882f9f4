// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2025 The Embercoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import (
	"encoding/hex"
	"fmt"
)

// opKind identifies the variant held by a ScriptOp.  The first three kinds
// carry a literal payload which is pushed onto the stack when executed; the
// remainder are operations.
type opKind uint8

const (
	kindBool opKind = iota
	kindInt
	kindData
	kindAdd
	kindSub
	kindDup
	kindEqual
	kindHash160
	kindCheckSig
	kindVerify
	kindEqVerify
)

// ScriptOp is a single entry of a script: a pushed literal or an operation.
// The zero value pushes boolean false.  ScriptOp values are immutable once
// constructed and may be freely copied, with the caveat that a data push
// shares its underlying byte slice.
type ScriptOp struct {
	kind opKind
	bval bool
	ival int32
	data []byte
}

// These operations form the executable vocabulary of the script language.
var (
	// OpAdd pops two integers and pushes their sum.
	OpAdd = ScriptOp{kind: kindAdd}

	// OpSub pops two integers and pushes the bottom minus the top.
	OpSub = ScriptOp{kind: kindSub}

	// OpDup pops an integer or data push and pushes two copies of it.
	OpDup = ScriptOp{kind: kindDup}

	// OpEqual pops two values of the same kind and pushes whether they
	// are equal.
	OpEqual = ScriptOp{kind: kindEqual}

	// OpHash160 pops a data push and pushes its short hash.
	OpHash160 = ScriptOp{kind: kindHash160}

	// OpCheckSig pops a public key and a signature and pushes whether the
	// signature is a valid commitment to the evaluation message.
	OpCheckSig = ScriptOp{kind: kindCheckSig}

	// OpVerify pops a boolean and fails evaluation when it is false.
	OpVerify = ScriptOp{kind: kindVerify}

	// OpEqVerify pops two values of the same kind and fails evaluation
	// when they are unequal.
	OpEqVerify = ScriptOp{kind: kindEqVerify}
)

// PushBool returns a script entry that pushes the given boolean.
func PushBool(b bool) ScriptOp {
	return ScriptOp{kind: kindBool, bval: b}
}

// PushInt returns a script entry that pushes the given signed integer.
func PushInt(n int32) ScriptOp {
	return ScriptOp{kind: kindInt, ival: n}
}

// PushData returns a script entry that pushes the given byte payload.  The
// slice is retained, not copied.
func PushData(b []byte) ScriptOp {
	return ScriptOp{kind: kindData, data: b}
}

// Bool returns the pushed boolean and true when the entry is a boolean push.
func (op ScriptOp) Bool() (bool, bool) {
	return op.bval, op.kind == kindBool
}

// Int returns the pushed integer and true when the entry is an integer push.
func (op ScriptOp) Int() (int32, bool) {
	return op.ival, op.kind == kindInt
}

// Data returns the pushed payload and true when the entry is a data push.
func (op ScriptOp) Data() ([]byte, bool) {
	return op.data, op.kind == kindData
}

// IsEqual returns whether other holds the same variant and payload as op.
func (op ScriptOp) IsEqual(other ScriptOp) bool {
	if op.kind != other.kind {
		return false
	}
	switch op.kind {
	case kindBool:
		return op.bval == other.bval
	case kindInt:
		return op.ival == other.ival
	case kindData:
		return string(op.data) == string(other.data)
	default:
		return true
	}
}

// opNames maps operation kinds to the human-readable names used by String
// and by the JSON encoding.
var opNames = map[opKind]string{
	kindAdd:      "add",
	kindSub:      "sub",
	kindDup:      "dup",
	kindEqual:    "equal",
	kindHash160:  "hash160",
	kindCheckSig: "checksig",
	kindVerify:   "verify",
	kindEqVerify: "eqverify",
}

// opByName is the inverse of opNames.
var opByName = func() map[string]opKind {
	m := make(map[string]opKind, len(opNames))
	for kind, name := range opNames {
		m[name] = kind
	}
	return m
}()

// String returns a human-readable rendering of the script entry.
func (op ScriptOp) String() string {
	switch op.kind {
	case kindBool:
		return fmt.Sprintf("push(%t)", op.bval)
	case kindInt:
		return fmt.Sprintf("push(%d)", op.ival)
	case kindData:
		return fmt.Sprintf("push(0x%s)", hex.EncodeToString(op.data))
	default:
		return opNames[op.kind]
	}
}
