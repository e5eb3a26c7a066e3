// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2015-2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"time"
)

// MainNetParams returns the network parameters for the main network.
func MainNetParams() *Params {
	// powLimit is the highest proof of work value a block can have for the
	// network.  It is the value 2^224 - 1.
	powLimit := hexToUint256("00000000ffffffffffffffffffffffffffffffffffffffffffffffffffffffff")

	// powLimitBits is the proof of work limit in its compact representation.
	//
	// Note that due to the limited precision of the compact representation,
	// this is not exactly equal to the pow limit.  It is the value:
	//
	// 0x00000000ffff0000000000000000000000000000000000000000000000000000
	const powLimitBits = 0x1d00ffff

	genesisBlock := newGenesisBlock(1704067200, powLimitBits)
	return &Params{
		Name:         "mainnet",
		Net:          0xd9b4bef9,
		GenesisBlock: genesisBlock,
		GenesisHash:  genesisBlock.BlockHash(),
		PowLimit:     powLimit,
		PowLimitBits: powLimitBits,

		TargetTimePerBlock:      time.Minute * 10,
		WitnessCommitmentPrefix: witnessCommitmentPrefix(),
	}
}
