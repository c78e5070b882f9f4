// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2025 The Embercoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package txscript implements the embercoin transaction script language.

Embercoin transaction scripts are written in a stack-based, FORTH-like
language.  A script is an ordered sequence of entries, each of which either
pushes a literal value (a boolean, a 32-bit signed integer, or an opaque
byte payload) onto the stack or performs an operation on the values already
there.  Scripts are processed from left to right and intentionally do not
provide loops.

An output's locking script formally describes the conditions needed to
spend it, usually requiring a signature from a specific key.  A spending
input supplies an unlocking script; the two are evaluated back to back on a
shared stack and the spend is authorized when nothing triggers failure and
the top stack item is true when the combined script exits.

Every execution fault, from a stack underflow to a malformed signature,
collapses to a boolean false result.  Callers never observe a typed error
from evaluation.
*/
package txscript
