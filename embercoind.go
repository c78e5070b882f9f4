// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2025 The Embercoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"os"

	flags "github.com/jessevdk/go-flags"

	"github.com/embercoin/go-embercoin/blockchain"
	"github.com/embercoin/go-embercoin/blockchain/stats"
	"github.com/embercoin/go-embercoin/chainjson"
	"github.com/embercoin/go-embercoin/mining"
)

// cfg is the parsed configuration.  It is populated by flag parsing before
// any command's Execute method runs.
var cfg = &config{}

// runNode drives the node: it creates or loads a chain, mines onto it until
// an interrupt arrives, and optionally persists the result.
func runNode(loadPath, savePath string) error {
	if cfg.LogFile != "" {
		if err := initLogRotator(cfg.LogFile); err != nil {
			return err
		}
		defer logRotator.Close()
	}
	if err := setLogLevels(cfg.DebugLevel); err != nil {
		return err
	}

	params := cfg.activeNetParams()

	var chain *blockchain.BlockChain
	if loadPath != "" {
		data, err := os.ReadFile(loadPath)
		if err != nil {
			return fmt.Errorf("unable to read chain from %q: %w",
				loadPath, err)
		}
		chain, err = chainjson.UnmarshalChain(data, params)
		if err != nil {
			return fmt.Errorf("unable to restore chain from %q: %w",
				loadPath, err)
		}
		embrLog.Infof("Restored chain from %q at height %d", loadPath,
			chain.Height())
	} else {
		var err error
		chain, err = blockchain.New(&blockchain.Config{
			ChainParams: params,
		})
		if err != nil {
			return err
		}
		embrLog.Infof("Starting a new %s chain", params.Name)
	}

	privKey, err := cfg.miningKey()
	if err != nil {
		return err
	}
	pubKey := privKey.PubKey()

	interrupt := interruptListener()
	miner := mining.New(&mining.Config{
		ShouldContinue: func() bool {
			return !interruptRequested(interrupt)
		},
	})

	for !interruptRequested(interrupt) {
		block := chain.ConstructCandidateBlock(pubKey)
		if !miner.SolveBlock(block) {
			// The nonce search was interrupted; the unsolved
			// candidate is discarded.
			break
		}
		if err := chain.ProcessBlock(block); err != nil {
			return fmt.Errorf("mined block failed validation: %w", err)
		}

		blockStats, err := stats.ComputeBlockStats(block, chain.TxIndex())
		if err != nil {
			embrLog.Warnf("Unable to compute block stats: %v", err)
			continue
		}
		embrLog.Debugf("Block totals: %d bytes, %d transactions, "+
			"%v paid out, %v in fees", blockStats.TotalSize,
			blockStats.TxCount, blockStats.TotalOutputValue,
			blockStats.TotalFees)
	}

	if savePath != "" {
		data, err := chainjson.MarshalChain(chain)
		if err != nil {
			return fmt.Errorf("unable to serialize chain: %w", err)
		}
		if err := os.WriteFile(savePath, data, 0644); err != nil {
			return fmt.Errorf("unable to save chain to %q: %w",
				savePath, err)
		}
		embrLog.Infof("Saved chain with %d blocks to %q",
			chain.Height(), savePath)
	}

	return nil
}

func main() {
	parser := flags.NewParser(cfg, flags.HelpFlag|flags.PassDoubleDash)
	parser.AddCommand("new", "Start a new chain",
		"Start an empty chain and mine onto it.  When save-path is "+
			"given the chain is persisted there on shutdown.",
		&newCmd{})
	parser.AddCommand("from", "Continue a persisted chain",
		"Load a chain from load-path and continue mining onto it.  "+
			"When save-path is given the chain is persisted there "+
			"on shutdown.",
		&fromCmd{})

	if _, err := parser.Parse(); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			fmt.Println(err)
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
