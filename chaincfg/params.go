// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2025 The Embercoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

// Params defines an embercoin network by its parameters.  These parameters
// may be used by embercoin applications to differentiate networks as well as
// addresses and keys for one network from those intended for use on another
// network.
type Params struct {
	// Name defines a human-readable identifier for the network.
	Name string

	// PowLimitBits defines the proof of work target of the network in
	// compact form.  Every mined block header hash must be less than or
	// equal to the target this decodes to.
	PowLimitBits uint32

	// SubsidyHalvingInterval is the interval of blocks before the base
	// block subsidy is reduced by half.
	SubsidyHalvingInterval uint32

	// BaseSubsidy is the starting subsidy amount, in sparks, for mined
	// blocks.  This value is halved every SubsidyHalvingInterval blocks.
	BaseSubsidy uint32

	// MaxTxPerBlock is the soft cap on the number of transactions that a
	// candidate block may carry, the coinbase included.  It is a policy
	// knob rather than a consensus rule.
	MaxTxPerBlock uint32

	// BlockVersion is the version assigned to newly constructed block
	// headers.
	BlockVersion uint32

	// TxVersion is the version assigned to internally constructed
	// transactions such as the coinbase.
	TxVersion uint32

	// CoinbaseSequence is the sequence number carried by every coinbase
	// input the chain constructs.
	CoinbaseSequence uint32

	// CoinbaseLockTime is the lock time assigned to internally
	// constructed coinbase transactions.  Lock times are carried through
	// hashing but have no enforced semantics.
	CoinbaseLockTime uint32
}

// MainNetParams defines the network parameters for the main embercoin
// network.
var MainNetParams = Params{
	Name: "mainnet",

	// The starting bits are intentionally generous compared to bitcoin's
	// 0x1d00ffff so a lone CPU can extend the chain at a usable pace.
	PowLimitBits:           0x1ec3a30c,
	SubsidyHalvingInterval: 210000,
	BaseSubsidy:            1050000000,
	MaxTxPerBlock:          1000,
	BlockVersion:           1,
	TxVersion:              1,
	CoinbaseSequence:       5580,
	CoinbaseLockTime:       100,
}

// SimNetParams defines the network parameters for the simulation test
// network.  The proof of work target is trivial so tests can mine blocks
// without meaningful work.
var SimNetParams = Params{
	Name: "simnet",

	PowLimitBits:           0x207fffff,
	SubsidyHalvingInterval: 210000,
	BaseSubsidy:            1050000000,
	MaxTxPerBlock:          1000,
	BlockVersion:           1,
	TxVersion:              1,
	CoinbaseSequence:       5580,
	CoinbaseLockTime:       100,
}
