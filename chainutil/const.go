// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2025 The Embercoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chainutil

const (
	// SparkPerEmbercent is the number of sparks in one embercoin cent.
	SparkPerEmbercent = 1e6

	// SparkPerEmber is the number of sparks in one embercoin (1 EMB).
	SparkPerEmber = 1e8

	// MaxSpark is the maximum transaction amount allowed in sparks.
	MaxSpark = 21e6 * SparkPerEmber
)
