// Copyright (c) 2014 The btcsuite developers
// Copyright (c) 2025 The Embercoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// scriptOpJSON is the self-describing JSON form of a script entry.  Exactly
// one field is populated: a literal for pushes, or the operation name.
type scriptOpJSON struct {
	Bool *bool   `json:"bool,omitempty"`
	Int  *int32  `json:"int,omitempty"`
	Data *string `json:"data,omitempty"`
	Op   string  `json:"op,omitempty"`
}

// MarshalJSON implements the json.Marshaler interface.  The encoding is used
// by the chain dump format and is intentionally structural rather than a
// hex blob so dumps stay greppable.
func (op ScriptOp) MarshalJSON() ([]byte, error) {
	var enc scriptOpJSON
	switch op.kind {
	case kindBool:
		enc.Bool = &op.bval
	case kindInt:
		enc.Int = &op.ival
	case kindData:
		data := hex.EncodeToString(op.data)
		enc.Data = &data
	default:
		enc.Op = opNames[op.kind]
	}
	return json.Marshal(&enc)
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (op *ScriptOp) UnmarshalJSON(b []byte) error {
	var enc scriptOpJSON
	if err := json.Unmarshal(b, &enc); err != nil {
		return err
	}

	switch {
	case enc.Bool != nil:
		*op = PushBool(*enc.Bool)
	case enc.Int != nil:
		*op = PushInt(*enc.Int)
	case enc.Data != nil:
		data, err := hex.DecodeString(*enc.Data)
		if err != nil {
			return fmt.Errorf("invalid script data push: %w", err)
		}
		*op = PushData(data)
	case enc.Op != "":
		kind, ok := opByName[enc.Op]
		if !ok {
			return fmt.Errorf("unknown script operation %q", enc.Op)
		}
		*op = ScriptOp{kind: kind}
	default:
		return fmt.Errorf("script entry with no variant")
	}
	return nil
}
