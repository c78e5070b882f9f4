// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2025 The Embercoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/embercoin/go-embercoin/chaincfg"
)

// config defines the configuration options for embercoind.
type config struct {
	DebugLevel string `short:"d" long:"debuglevel" description:"Logging level {trace, debug, info, warn, error, critical}" default:"info"`
	LogFile    string `long:"logfile" description:"Write logs to this file in addition to stdout, rotated at 10 MiB"`
	MiningKey  string `long:"miningkey" description:"Hex-encoded secp256k1 private key whose public key collects block rewards; a fresh key is generated when omitted"`
	SimNet     bool   `long:"simnet" description:"Use the simulation test network (trivial proof of work)"`
}

// activeNetParams returns the chain parameters selected by the
// configuration.
func (c *config) activeNetParams() *chaincfg.Params {
	if c.SimNet {
		return &chaincfg.SimNetParams
	}
	return &chaincfg.MainNetParams
}

// miningKey returns the private key block rewards are paid to.  When the
// configuration carries no key a fresh one is generated and logged, since
// rewards mined to it are otherwise unrecoverable.
func (c *config) miningKey() (*secp256k1.PrivateKey, error) {
	if c.MiningKey == "" {
		privKey, err := secp256k1.GeneratePrivateKey()
		if err != nil {
			return nil, err
		}
		embrLog.Infof("Generated mining key; rewards pay to public "+
			"key %x", privKey.PubKey().SerializeCompressed())
		embrLog.Infof("Restart with --miningkey=%x to keep mining to "+
			"the same key", privKey.Serialize())
		return privKey, nil
	}

	keyBytes, err := hex.DecodeString(c.MiningKey)
	if err != nil {
		return nil, fmt.Errorf("malformed mining key: %w", err)
	}
	if len(keyBytes) != 32 {
		return nil, fmt.Errorf("malformed mining key: want 32 bytes, "+
			"got %d", len(keyBytes))
	}
	return secp256k1.PrivKeyFromBytes(keyBytes), nil
}

// newCmd implements the "new" command: start an empty chain and mine onto
// it, optionally persisting the result on shutdown.
type newCmd struct {
	Args struct {
		SavePath string `positional-arg-name:"save-path"`
	} `positional-args:"yes"`
}

// Execute satisfies the go-flags Commander interface.
func (c *newCmd) Execute(args []string) error {
	return runNode("", c.Args.SavePath)
}

// fromCmd implements the "from" command: load a persisted chain and
// continue mining onto it.
type fromCmd struct {
	Args struct {
		LoadPath string `positional-arg-name:"load-path" required:"yes"`
		SavePath string `positional-arg-name:"save-path"`
	} `positional-args:"yes"`
}

// Execute satisfies the go-flags Commander interface.
func (c *fromCmd) Execute(args []string) error {
	return runNode(c.Args.LoadPath, c.Args.SavePath)
}
