// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2025 The Embercoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mining

import (
	"math"
	"time"

	"github.com/embercoin/go-embercoin/blockchain"
	"github.com/embercoin/go-embercoin/wire"
)

const (
	// maxNonce is the highest nonce value a header can carry.  When the
	// search exhausts it the header timestamp is refreshed and the
	// search restarts, since the new header prefix reshuffles the hash
	// space.
	maxNonce = math.MaxUint32

	// hashUpdateInterval is how many nonces are tried between polls of
	// the caller's continuation hook.
	hashUpdateInterval = 1 << 16
)

// Config is a descriptor containing the cpu miner configuration.
type Config struct {
	// ShouldContinue, when non-nil, is polled periodically during the
	// nonce search.  Returning false abandons the block being solved.
	// A nil hook means the search runs until it succeeds.
	ShouldContinue func() bool
}

// CPUMiner searches block header nonces on the caller's goroutine.  The
// search is deterministic: nonces are probed in increasing order from
// zero, so for a fixed header prefix the smallest satisfying nonce wins.
type CPUMiner struct {
	cfg Config
}

// New returns a new instance of a CPU miner for the provided configuration.
func New(cfg *Config) *CPUMiner {
	return &CPUMiner{cfg: *cfg}
}

// SolveBlock attempts to find a nonce which makes the passed block's header
// hash to a value less than or equal to the target decoded from the
// header's difficulty bits.  On success the nonce is left assigned in the
// header and true is returned.  False is returned only when the
// configured continuation hook asks the search to stop; the block's nonce
// is cleared in that case.
//
// Solving can occupy the calling goroutine for an arbitrary amount of
// wall-clock time, so long-running callers should supply a continuation
// hook wired to their shutdown signal.
func (m *CPUMiner) SolveBlock(block *wire.Block) bool {
	header := &block.Header
	target := blockchain.CompactToBig(header.Bits)

	hashesCompleted := uint64(0)
	started := time.Now()

	for {
		for nonce := uint32(0); ; nonce++ {
			if hashesCompleted%hashUpdateInterval == 0 &&
				hashesCompleted != 0 &&
				m.cfg.ShouldContinue != nil &&
				!m.cfg.ShouldContinue() {

				header.ClearNonce()
				log.Debugf("abandoning block after %d hashes",
					hashesCompleted)
				return false
			}

			header.SetNonce(nonce)
			hash := header.BlockHash()
			hashesCompleted++

			if blockchain.HashToBig(&hash).Cmp(target) <= 0 {
				log.Debugf("found nonce %d after %d hashes in %v",
					nonce, hashesCompleted,
					time.Since(started))
				return true
			}

			if nonce == maxNonce {
				break
			}
		}

		// The whole nonce space came up empty, which at sane
		// difficulties takes a fresh header prefix to escape.  Bump
		// the timestamp and run the search again.
		header.Timestamp = uint64(time.Now().Unix())
		log.Debugf("nonce space exhausted, refreshed header timestamp")
	}
}
