// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2015-2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"time"
)

// TestNetParams returns the network parameters for the test network.
func TestNetParams() *Params {
	// powLimit is the highest proof of work value a block can have for the
	// network.  It is the value 2^232 - 1.
	powLimit := hexToUint256("000000ffffffffffffffffffffffffffffffffffffffffffffffffffffffffff")

	// powLimitBits is the proof of work limit in its compact representation.
	//
	// It is the value:
	//
	// 0x000000ffff000000000000000000000000000000000000000000000000000000
	const powLimitBits = 0x1e00ffff

	genesisBlock := newGenesisBlock(1704067201, powLimitBits)
	return &Params{
		Name:         "testnet",
		Net:          0x0709110b,
		GenesisBlock: genesisBlock,
		GenesisHash:  genesisBlock.BlockHash(),
		PowLimit:     powLimit,
		PowLimitBits: powLimitBits,

		TargetTimePerBlock:      time.Minute * 10,
		WitnessCommitmentPrefix: witnessCommitmentPrefix(),
	}
}
